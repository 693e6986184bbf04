// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-app/backend/config"
	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/application/usecase/auth"
	"github.com/finance-app/backend/internal/application/usecase/bill"
	billitem "github.com/finance-app/backend/internal/application/usecase/bill_item"
	"github.com/finance-app/backend/internal/application/usecase/category"
	"github.com/finance-app/backend/internal/application/usecase/period"
	"github.com/finance-app/backend/internal/domain/entity"
	"github.com/finance-app/backend/internal/infra/db"
	"github.com/finance-app/backend/internal/infra/server/router"
	"github.com/finance-app/backend/internal/integration/adapters"
	"github.com/finance-app/backend/internal/integration/email"
	"github.com/finance-app/backend/internal/integration/email/templates"
	"github.com/finance-app/backend/internal/integration/entrypoint/controller"
	"github.com/finance-app/backend/internal/integration/entrypoint/middleware"
	"github.com/finance-app/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
	// EmailSender is the mock sender when no Resend key is configured, nil otherwise.
	EmailSender *email.MockEmailSender
	Registry    *prometheus.Registry
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case login attempts are counted in memory.
func NewInjector(cfg *config.Config, database *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Repositories
	userRepo := persistence.NewUserRepository(database)
	tokenRepo := persistence.NewTokenRepository(database)
	categoryRepo := persistence.NewCategoryRepository(database)
	billItemRepo := persistence.NewBillItemRepository(database)
	billRepo := persistence.NewBillRepository(database)
	periodRepo := persistence.NewPeriodRepository(database)
	emailQueueRepo := persistence.NewEmailQueueRepository(database)

	// Services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(adapters.TokenConfig{
		Secret:          cfg.JWT.Secret,
		AccessTokenTTL:  cfg.JWT.AccessTokenTTL,
		RefreshTokenTTL: cfg.JWT.RefreshTokenTTL,
	}, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	emailService := email.NewService(emailQueueRepo)

	var suggester adapter.CategorySuggester
	if cfg.AI.GeminiAPIKey != "" {
		suggester = adapters.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.Model)
	} else {
		slog.Warn("GEMINI_API_KEY not set, category suggestions are disabled")
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("loading email templates: %w", err)
	}
	var sender adapter.EmailSender
	var mockSender *email.MockEmailSender
	if cfg.Email.ResendAPIKey != "" {
		resendClient := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromAddress)
		if cfg.Email.ResendBaseURL != "" {
			if err := resendClient.SetBaseURL(cfg.Email.ResendBaseURL); err != nil {
				return nil, err
			}
		}
		sender = resendClient
	} else {
		slog.Warn("RESEND_API_KEY not set, emails are recorded but not delivered")
		mockSender = email.NewMockEmailSender()
		sender = mockSender
	}
	workerCfg := email.DefaultWorkerConfig()
	if cfg.Email.WorkerInterval > 0 {
		workerCfg.PollInterval = cfg.Email.WorkerInterval
	}
	if cfg.Email.WorkerBatchSize > 0 {
		workerCfg.BatchSize = cfg.Email.WorkerBatchSize
	}
	worker := email.NewWorker(emailQueueRepo, sender, renderer, workerCfg)

	appURL := cfg.Server.AppBaseURL

	// Controllers
	authController := controller.NewAuthController(
		auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, emailService, appURL),
		auth.NewLoginUserUseCase(userRepo, passwordService, tokenService),
		auth.NewRefreshTokenUseCase(userRepo, tokenService),
		auth.NewLogoutUserUseCase(tokenService),
		auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, appURL),
		auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService, tokenService),
	)

	categoryController := controller.NewCategoryController(
		category.NewCreateCategoryUseCase(categoryRepo),
		category.NewGetCategoryUseCase(categoryRepo),
		category.NewListCategoriesUseCase(categoryRepo),
		category.NewUpdateCategoryUseCase(categoryRepo),
		category.NewDeleteCategoryUseCase(categoryRepo),
	)

	billItemController := controller.NewBillItemController(
		billitem.NewCreateBillItemUseCase(billItemRepo, categoryRepo),
		billitem.NewGetBillItemUseCase(billItemRepo),
		billitem.NewListBillItemsUseCase(billItemRepo),
		billitem.NewUpdateBillItemUseCase(billItemRepo, categoryRepo, billRepo),
		billitem.NewDeleteBillItemUseCase(billItemRepo),
		billitem.NewSuggestCategoryUseCase(categoryRepo, suggester),
	)

	billController := controller.NewBillController(
		bill.NewCreateBillUseCase(billRepo, billItemRepo),
		bill.NewGetBillUseCase(billRepo),
		bill.NewListBillsUseCase(billRepo),
		bill.NewUpdateBillUseCase(billRepo),
		bill.NewDeleteBillUseCase(billRepo),
		bill.NewAddBillItemUseCase(billRepo, billItemRepo),
		bill.NewRemoveBillItemUseCase(billRepo, billItemRepo),
	)

	periodController := controller.NewPeriodController(
		period.NewCreatePeriodUseCase(periodRepo, billRepo),
		period.NewGetPeriodUseCase(periodRepo),
		period.NewListPeriodsUseCase(periodRepo),
		period.NewUpdatePeriodUseCase(periodRepo),
		period.NewDeletePeriodUseCase(periodRepo),
		period.NewAddBillUseCase(periodRepo, billRepo),
		period.NewRemoveBillUseCase(periodRepo, billRepo),
	)

	healthController := controller.NewHealthController(func(ctx context.Context) error {
		return db.Ping(ctx, database)
	})

	// Middleware
	var store middleware.RateLimitStore
	if redisClient != nil {
		store = middleware.NewRedisRateLimitStore(redisClient)
	} else {
		store = middleware.NewMemoryRateLimitStore()
	}
	loginRateLimiter := middleware.NewRateLimiterWithConfig(store, cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window)
	if cfg.IsTest() {
		loginRateLimiter.Disable()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(registry)

	r := router.NewRouter(router.Controllers{
		Health:   healthController,
		Auth:     authController,
		Category: categoryController,
		BillItem: billItemController,
		Bill:     billController,
		Period:   periodController,
	}, loginRateLimiter, authMiddleware, metrics, registry)

	return &Injector{
		Config:      cfg,
		DB:          database,
		Router:      r,
		EmailWorker: worker,
		EmailSender: mockSender,
		Registry:    registry,
	}, nil
}

// SeedPredefinedCategories stores the predefined categories that are missing.
func SeedPredefinedCategories(ctx context.Context, database *gorm.DB) error {
	return persistence.NewCategoryRepository(database).SeedPredefined(ctx, entity.PredefinedCategories())
}
