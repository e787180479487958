package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	auditapp "github.com/sequencehub/sequencehub/internal/application/audit"
	auditusecases "github.com/sequencehub/sequencehub/internal/application/audit/usecases"
	entitlementusecases "github.com/sequencehub/sequencehub/internal/application/entitlement/usecases"
	orderusecases "github.com/sequencehub/sequencehub/internal/application/order/usecases"
	productusecases "github.com/sequencehub/sequencehub/internal/application/product/usecases"
	reviewusecases "github.com/sequencehub/sequencehub/internal/application/review/usecases"
	uploadusecases "github.com/sequencehub/sequencehub/internal/application/upload/usecases"
	userusecases "github.com/sequencehub/sequencehub/internal/application/user/usecases"
	"github.com/sequencehub/sequencehub/internal/infrastructure/auth"
	"github.com/sequencehub/sequencehub/internal/infrastructure/config"
	"github.com/sequencehub/sequencehub/internal/infrastructure/email"
	"github.com/sequencehub/sequencehub/internal/infrastructure/payment"
	"github.com/sequencehub/sequencehub/internal/infrastructure/repository"
	"github.com/sequencehub/sequencehub/internal/infrastructure/storage"
	"github.com/sequencehub/sequencehub/internal/infrastructure/token"
	"github.com/sequencehub/sequencehub/internal/interfaces/http/handlers"
	"github.com/sequencehub/sequencehub/internal/interfaces/http/middleware"
	"github.com/sequencehub/sequencehub/internal/shared/authorization"
	shareddb "github.com/sequencehub/sequencehub/internal/shared/db"
	"github.com/sequencehub/sequencehub/internal/shared/logger"
	"github.com/sequencehub/sequencehub/internal/shared/services/markdown"
)

// Router represents the HTTP router configuration
type Router struct {
	engine          *gin.Engine
	authHandler     *handlers.AuthHandler
	userHandler     *handlers.UserHandler
	productHandler  *handlers.ProductHandler
	uploadHandler   *handlers.UploadHandler
	orderHandler    *handlers.OrderHandler
	webhookHandler  *handlers.WebhookHandler
	downloadHandler *handlers.DownloadHandler
	reviewHandler   *handlers.ReviewHandler
	adminHandler    *handlers.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
	rateLimiter     *middleware.RateLimiter
	allowedOrigins  []string
	logger          logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	userRepo := repository.NewUserRepository(db, log)
	resetRepo := repository.NewPasswordResetRepository(db, log)
	productRepo := repository.NewProductRepository(db, log)
	versionRepo := repository.NewVersionRepository(db, log)
	fileRepo := repository.NewFileRepository(db, log)
	sessionRepo := repository.NewUploadSessionRepository(db, log)
	orderRepo := repository.NewOrderRepository(db, log)
	entitlementRepo := repository.NewEntitlementRepository(db, log)
	tokenRepo := repository.NewDownloadTokenRepository(db, log)
	reviewRepo := repository.NewReviewRepository(db, log)
	auditRepo := repository.NewAuditRepository(db, log)
	txMgr := shareddb.NewTransactionManager(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	tokenGenerator := token.NewGenerator()

	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		BaseURL:     cfg.Server.BaseURL,
	})

	store, err := storage.NewFilesystemStorage(cfg.Storage.RootPath, log)
	if err != nil {
		return nil, err
	}

	gateway := payment.NewConnectGateway(&cfg.Payment, log)
	markdownService := markdown.NewService()
	recorder := auditapp.NewRecorder(auditRepo, log)

	resetTTL := time.Duration(cfg.Auth.Token.ResetExpiresMinutes) * time.Minute
	baseURL := cfg.Server.BaseURL

	registerUC := userusecases.NewRegisterUserUseCase(userRepo, hasher, emailService, recorder, log)
	loginUC := userusecases.NewLoginUserUseCase(userRepo, hasher, jwtService, log)
	refreshTokenUC := userusecases.NewRefreshTokenUseCase(userRepo, jwtService, log)
	requestResetUC := userusecases.NewRequestPasswordResetUseCase(userRepo, resetRepo, tokenGenerator, emailService, resetTTL, log)
	resetPasswordUC := userusecases.NewResetPasswordUseCase(userRepo, resetRepo, hasher, emailService, log)
	changePasswordUC := userusecases.NewChangePasswordUseCase(userRepo, hasher, emailService, log)
	getProfileUC := userusecases.NewGetProfileUseCase(userRepo)
	updateProfileUC := userusecases.NewUpdateProfileUseCase(userRepo, log)
	listUsersUC := userusecases.NewListUsersUseCase(userRepo)
	deactivateUserUC := userusecases.NewDeactivateUserUseCase(userRepo, recorder, log)

	createProductUC := productusecases.NewCreateProductUseCase(productRepo, log)
	updateProductUC := productusecases.NewUpdateProductUseCase(productRepo, log)
	submitProductUC := productusecases.NewSubmitProductUseCase(productRepo, versionRepo, fileRepo)
	archiveProductUC := productusecases.NewArchiveProductUseCase(productRepo, log)
	listProductsUC := productusecases.NewListProductsUseCase(productRepo)
	listSellerProductsUC := productusecases.NewListSellerProductsUseCase(productRepo)
	listModerationProductsUC := productusecases.NewListModerationProductsUseCase(productRepo)
	getProductUC := productusecases.NewGetProductUseCase(productRepo, versionRepo, fileRepo, markdownService, log)
	createVersionUC := productusecases.NewCreateVersionUseCase(productRepo, versionRepo, log)
	moderateProductUC := productusecases.NewModerateProductUseCase(productRepo, recorder, log)

	initUploadUC := uploadusecases.NewInitUploadUseCase(sessionRepo, versionRepo, productRepo, cfg.Storage.MaxUploadSize, log)
	uploadChunkUC := uploadusecases.NewUploadChunkUseCase(sessionRepo, store, log)
	completeUploadUC := uploadusecases.NewCompleteUploadUseCase(sessionRepo, fileRepo, store, recorder, log)
	abortUploadUC := uploadusecases.NewAbortUploadUseCase(sessionRepo, store, log)

	createCheckoutUC := orderusecases.NewCreateCheckoutUseCase(orderRepo, productRepo, versionRepo, userRepo, entitlementRepo, gateway, &cfg.Payment, baseURL, log)
	handleWebhookUC := orderusecases.NewHandleWebhookUseCase(orderRepo, entitlementRepo, productRepo, userRepo, emailService, txMgr, recorder, log)
	startOnboardingUC := orderusecases.NewStartOnboardingUseCase(userRepo, gateway, baseURL, log)
	listOrdersUC := orderusecases.NewListOrdersUseCase(orderRepo)
	getOrderUC := orderusecases.NewGetOrderUseCase(orderRepo)
	refundOrderUC := orderusecases.NewRefundOrderUseCase(orderRepo, gateway, log)

	issueDownloadLinkUC := entitlementusecases.NewIssueDownloadLinkUseCase(entitlementRepo, tokenRepo, fileRepo, versionRepo, tokenGenerator, recorder, &cfg.Download, baseURL, log)
	serveDownloadUC := entitlementusecases.NewServeDownloadUseCase(tokenRepo, fileRepo, store, recorder, log)
	listMyEntitlementsUC := entitlementusecases.NewListMyEntitlementsUseCase(entitlementRepo)

	recomputer := reviewusecases.NewRatingRecomputer(reviewRepo, productRepo, log)
	createReviewUC := reviewusecases.NewCreateReviewUseCase(reviewRepo, productRepo, entitlementRepo, markdownService, log)
	updateReviewUC := reviewusecases.NewUpdateReviewUseCase(reviewRepo, recomputer, markdownService, log)
	deleteReviewUC := reviewusecases.NewDeleteReviewUseCase(reviewRepo, recomputer, log)
	moderateReviewUC := reviewusecases.NewModerateReviewUseCase(reviewRepo, recomputer, recorder, log)
	listProductReviewsUC := reviewusecases.NewListProductReviewsUseCase(reviewRepo, productRepo)
	listModerationQueueUC := reviewusecases.NewListModerationQueueUseCase(reviewRepo)

	listAuditLogsUC := auditusecases.NewListAuditLogsUseCase(auditRepo, log)

	authHandler := handlers.NewAuthHandler(
		registerUC, loginUC, refreshTokenUC, requestResetUC, resetPasswordUC,
		changePasswordUC, getProfileUC, updateProfileUC, log,
	)
	userHandler := handlers.NewUserHandler(listUsersUC, deactivateUserUC, log)
	productHandler := handlers.NewProductHandler(
		createProductUC, updateProductUC, submitProductUC, archiveProductUC,
		listProductsUC, listSellerProductsUC, getProductUC, createVersionUC,
		listProductReviewsUC, log,
	)
	uploadHandler := handlers.NewUploadHandler(initUploadUC, uploadChunkUC, completeUploadUC, abortUploadUC, log)
	orderHandler := handlers.NewOrderHandler(createCheckoutUC, listOrdersUC, getOrderUC, startOnboardingUC, refundOrderUC, log)
	webhookHandler := handlers.NewWebhookHandler(gateway, handleWebhookUC, log)
	downloadHandler := handlers.NewDownloadHandler(issueDownloadLinkUC, serveDownloadUC, listMyEntitlementsUC, log)
	reviewHandler := handlers.NewReviewHandler(createReviewUC, updateReviewUC, deleteReviewUC, log)
	adminHandler := handlers.NewAdminHandler(
		moderateProductUC, listModerationProductsUC, moderateReviewUC,
		listModerationQueueUC, listAuditLogsUC, log,
	)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)
	rateLimiter := middleware.NewRateLimiter(redisClient, 100, 1*time.Minute)

	return &Router{
		engine:          engine,
		authHandler:     authHandler,
		userHandler:     userHandler,
		productHandler:  productHandler,
		uploadHandler:   uploadHandler,
		orderHandler:    orderHandler,
		webhookHandler:  webhookHandler,
		downloadHandler: downloadHandler,
		reviewHandler:   reviewHandler,
		adminHandler:    adminHandler,
		authMiddleware:  authMiddleware,
		rateLimiter:     rateLimiter,
		allowedOrigins:  cfg.Server.AllowedOrigins,
		logger:          log,
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.ErrorHandler())
	r.engine.Use(middleware.CORS(r.allowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.engine.Group("/api/v1")

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", r.rateLimiter.Limit(), r.authHandler.Register)
		authGroup.POST("/login", r.rateLimiter.Limit(), r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/forgot-password", r.rateLimiter.Limit(), r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
		authGroup.POST("/change-password", r.authMiddleware.RequireAuth(), r.authHandler.ChangePassword)
		authGroup.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.GetMe)
		authGroup.PUT("/me", r.authMiddleware.RequireAuth(), r.authHandler.UpdateMe)
	}

	products := v1.Group("/products")
	{
		products.GET("", r.productHandler.ListProducts)
		products.GET("/:id", r.authMiddleware.OptionalAuth(), r.productHandler.GetProduct)
		products.GET("/:id/reviews", r.productHandler.ListProductReviews)
	}

	seller := v1.Group("/seller")
	seller.Use(r.authMiddleware.RequireAuth(), authorization.RequireSeller())
	{
		seller.GET("/products", r.productHandler.ListMyProducts)
		seller.POST("/products", r.productHandler.CreateProduct)
		seller.PUT("/products/:id", r.productHandler.UpdateProduct)
		seller.POST("/products/:id/submit", r.productHandler.SubmitProduct)
		seller.POST("/products/:id/archive", r.productHandler.ArchiveProduct)
		seller.POST("/products/:id/versions", r.productHandler.CreateVersion)

		seller.POST("/uploads", r.uploadHandler.InitUpload)
		seller.PUT("/uploads/:id/chunk", r.uploadHandler.UploadChunk)
		seller.POST("/uploads/:id/complete", r.uploadHandler.CompleteUpload)
		seller.POST("/uploads/:id/abort", r.uploadHandler.AbortUpload)

		seller.POST("/onboarding", r.orderHandler.StartOnboarding)
	}

	authed := v1.Group("")
	authed.Use(r.authMiddleware.RequireAuth())
	{
		authed.POST("/checkout", r.orderHandler.CreateCheckout)
		authed.GET("/orders", r.orderHandler.ListMyOrders)
		authed.GET("/orders/:id", r.orderHandler.GetOrder)

		authed.GET("/entitlements", r.downloadHandler.ListMyEntitlements)
		authed.POST("/downloads/links", r.downloadHandler.IssueDownloadLink)

		authed.POST("/reviews", r.reviewHandler.CreateReview)
		authed.PUT("/reviews/:id", r.reviewHandler.UpdateReview)
		authed.DELETE("/reviews/:id", r.reviewHandler.DeleteReview)
	}

	// Download links carry their own single-use token, so no session auth
	// here. The wildcard captures the storage key the link was issued for.
	r.engine.GET("/api/media/*storageKey", r.downloadHandler.ServeDownload)

	v1.POST("/webhooks/payment", r.webhookHandler.HandlePaymentWebhook)

	admin := v1.Group("/admin")
	admin.Use(r.authMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		admin.GET("/users", r.userHandler.ListUsers)
		admin.POST("/users/:id/deactivate", r.userHandler.DeactivateUser)

		admin.GET("/products/pending", r.adminHandler.ListPendingProducts)
		admin.POST("/products/:id/moderate", r.adminHandler.ModerateProduct)

		admin.GET("/reviews/pending", r.adminHandler.ListReviewModerationQueue)
		admin.POST("/reviews/:id/moderate", r.adminHandler.ModerateReview)

		admin.POST("/orders/:id/refund", r.orderHandler.RefundOrder)

		admin.GET("/audit-logs", r.adminHandler.ListAuditLogs)
	}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
