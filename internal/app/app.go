package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hrm8/hrm8-backend/internal/config"
	"github.com/hrm8/hrm8-backend/internal/database"
	"github.com/hrm8/hrm8-backend/internal/gateway"
	"github.com/hrm8/hrm8-backend/internal/handlers"
	"github.com/hrm8/hrm8-backend/internal/logger"
	"github.com/hrm8/hrm8-backend/internal/repository"
	"github.com/hrm8/hrm8-backend/internal/service"
	"go.uber.org/zap"
)

type App struct {
	server  *http.Server
	db      *sql.DB
	updater *service.SettlementUpdater

	userService service.UserService
	cfg         *config.Config
}

func NewApp() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ParseFlags()

	if err := logger.Initialize("debug"); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Error("Database connection failed", zap.Error(err))
		return nil, err
	}

	userRepo := repository.NewUserRepository(db)
	commissionRepo := repository.NewCommissionRepository(db)
	withdrawalRepo := repository.NewWithdrawalRepository(db)

	gatewayClient := gateway.NewClient(cfg.GatewayAddress)

	userService := service.NewUserService(userRepo)
	commissionService := service.NewCommissionService(commissionRepo)
	withdrawalService := service.NewWithdrawalService(withdrawalRepo, commissionRepo, gatewayClient)

	handler := handlers.NewHandler(userService, withdrawalService, commissionService, cfg.SecretKey)
	r := handlers.NewRouter(handler, cfg.SecretKey)

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	updater := service.NewSettlementUpdater(withdrawalRepo, commissionRepo, gatewayClient, cfg.PollInterval)

	return &App{
		server:      server,
		db:          db,
		updater:     updater,
		userService: userService,
		cfg:         cfg,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	if err := a.userService.EnsureAdmin(ctx, a.cfg.AdminLogin, a.cfg.AdminPassword); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	go a.updater.Run(ctx)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	logger.Log.Info("shutting down server...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("server shutdown failed", zap.Error(err))
		return err
	}

	logger.Log.Info("closing database connection...")
	if err := a.db.Close(); err != nil {
		logger.Log.Error("failed to close database", zap.Error(err))
		return err
	}

	return nil
}
