package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for email links (e.g., "http://localhost:8080")
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendWelcomeEmail(to, displayName string) error {
	subject := "Welcome to SequenceHUB"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome to SequenceHUB, %s!</h2>
			<p>Your account is ready. Browse the marketplace, buy sequences, and if you're a creator, start selling your own light shows.</p>
			<p><a href="%s/products">Browse sequences</a></p>
		</body>
		</html>
	`, displayName, s.config.BaseURL)

	plainBody := fmt.Sprintf(`
Welcome to SequenceHUB, %s!

Your account is ready. Browse the marketplace, buy sequences, and if you're a creator, start selling your own light shows.

%s/products
	`, displayName, s.config.BaseURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendPasswordResetEmail(to, token string) error {
	resetURL := fmt.Sprintf("%s/auth/reset-password?token=%s", s.config.BaseURL, token)

	subject := "Reset Your Password"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Password Reset Request</h2>
			<p>We received a request to reset your password. Click the link below to reset it:</p>
			<p><a href="%s">Reset Password</a></p>
			<p>Or copy and paste this URL into your browser:</p>
			<p>%s</p>
			<p>This link will expire in 30 minutes.</p>
			<p>If you didn't request a password reset, please ignore this email and your password will remain unchanged.</p>
		</body>
		</html>
	`, resetURL, resetURL)

	plainBody := fmt.Sprintf(`
Password Reset Request

We received a request to reset your password. Visit the following URL to reset it:
%s

This link will expire in 30 minutes.

If you didn't request a password reset, please ignore this email and your password will remain unchanged.
	`, resetURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendPasswordChangedEmail(to string) error {
	subject := "Password Changed Successfully"
	htmlBody := `
		<html>
		<body>
			<h2>Password Changed</h2>
			<p>Your password has been successfully changed.</p>
			<p>If you didn't make this change, please contact support immediately.</p>
		</body>
		</html>
	`

	plainBody := `
Password Changed

Your password has been successfully changed.

If you didn't make this change, please contact support immediately.
	`

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendSaleNotificationEmail(to, productTitle string, sellerAmountCents int64, currency string) error {
	amount := fmt.Sprintf("%.2f %s", float64(sellerAmountCents)/100, currency)

	subject := fmt.Sprintf("You made a sale: %s", productTitle)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>You made a sale!</h2>
			<p>Someone just purchased <strong>%s</strong>.</p>
			<p>Your earnings after the platform fee: <strong>%s</strong></p>
			<p><a href="%s/dashboard/sales">View your sales dashboard</a></p>
		</body>
		</html>
	`, productTitle, amount, s.config.BaseURL)

	plainBody := fmt.Sprintf(`
You made a sale!

Someone just purchased %s.
Your earnings after the platform fee: %s

%s/dashboard/sales
	`, productTitle, amount, s.config.BaseURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendPurchaseReceiptEmail(to, productTitle string, amountCents int64, currency string) error {
	amount := fmt.Sprintf("%.2f %s", float64(amountCents)/100, currency)

	subject := fmt.Sprintf("Your SequenceHUB purchase: %s", productTitle)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Thanks for your purchase!</h2>
			<p>You bought <strong>%s</strong> for %s.</p>
			<p>Your downloads are available in your library:</p>
			<p><a href="%s/library">Go to my library</a></p>
		</body>
		</html>
	`, productTitle, amount, s.config.BaseURL)

	plainBody := fmt.Sprintf(`
Thanks for your purchase!

You bought %s for %s.
Your downloads are available in your library:

%s/library
	`, productTitle, amount, s.config.BaseURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromAddress)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
