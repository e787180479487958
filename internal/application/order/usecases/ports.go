package usecases

// EmailSender sends the transactional emails of the order lifecycle.
type EmailSender interface {
	SendSaleNotificationEmail(to, productTitle string, sellerAmountCents int64, currency string) error
	SendPurchaseReceiptEmail(to, productTitle string, amountCents int64, currency string) error
}
