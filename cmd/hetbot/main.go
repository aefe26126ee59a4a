package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/hetmobile/hetbot/internal/config"
	"github.com/hetmobile/hetbot/internal/domain"
	"github.com/hetmobile/hetbot/internal/gateway/hetapi"
	"github.com/hetmobile/hetbot/internal/gateway/static"
	logpkg "github.com/hetmobile/hetbot/internal/logger"
	"github.com/hetmobile/hetbot/internal/metrics"
	"github.com/hetmobile/hetbot/internal/ops"
	accountrepo "github.com/hetmobile/hetbot/internal/repository/account"
	"github.com/hetmobile/hetbot/internal/repository/credential"
	"github.com/hetmobile/hetbot/internal/repository/session"
	usagerepo "github.com/hetmobile/hetbot/internal/repository/usage"
	"github.com/hetmobile/hetbot/internal/scheduler"
	"github.com/hetmobile/hetbot/internal/store"
	"github.com/hetmobile/hetbot/internal/texts"
	"github.com/hetmobile/hetbot/internal/transport/telegram"
	accountsuc "github.com/hetmobile/hetbot/internal/usecase/accounts"
	consumptionuc "github.com/hetmobile/hetbot/internal/usecase/consumption"
	healthuc "github.com/hetmobile/hetbot/internal/usecase/health"
	notifyuc "github.com/hetmobile/hetbot/internal/usecase/notify"
	"github.com/hetmobile/hetbot/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting hetbot",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.String("provider_mode", cfg.Provider.Mode),
		zap.Int("ops_port", cfg.Ops.Port),
	)

	if err := os.MkdirAll(cfg.Storage.Dir, 0o755); err != nil {
		logger.Fatal("Failed to create storage directory", zap.Error(err))
	}

	// Register bot metrics explicitly (no init())
	metrics.RegisterBotMetrics()

	// Storage collections and repositories
	accountsCol := store.NewCollection[domain.Account](cfg.Storage.AccountsPath(), logger)
	usageCol := store.NewCollection[domain.UsageRecord](cfg.Storage.UsagePath(), logger)

	accountRepo := accountrepo.New(accountsCol)
	usageRepo := usagerepo.New(usageCol)

	sessions := session.New()
	creds := credential.New()

	// Consumption gateway — composition root.
	// Pass nil interfaces (not typed nil pointers!) in static mode.
	// Go gotcha: (*hetapi.Client)(nil) wrapped in GraphSource != nil.
	var gateway consumptionuc.Gateway
	var graphs consumptionuc.GraphSource
	var providerCheck healthuc.ProviderChecker
	switch cfg.Provider.Mode {
	case config.ProviderRemote:
		client := hetapi.New(hetapi.Config{
			BaseURL: cfg.Provider.BaseURL,
			Timeout: time.Duration(cfg.Provider.TimeoutSec) * time.Second,
			Logger:  logger,
		})
		gateway = client
		graphs = client
		providerCheck = client
	case config.ProviderStatic:
		gateway = static.New()
	default:
		logger.Fatal("Unknown provider mode", zap.String("mode", cfg.Provider.Mode))
	}

	// Use case services
	accountsSvc := accountsuc.New(accountRepo, logger)
	consumptionSvc := consumptionuc.New(gateway, usageRepo, creds, consumptionuc.Options{
		Graphs:        graphs,
		RequireKey:    cfg.Provider.Mode == config.ProviderRemote,
		LocalGraphDir: cfg.Graphs.LocalDir,
	})
	healthSvc := healthuc.New(accountsCol, providerCheck)

	tbl, err := texts.Load(cfg.Texts.Path)
	if err != nil {
		logger.Fatal("Failed to load message texts", zap.Error(err))
	}

	// Telegram transport
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		logger.Fatal("Failed to connect to Telegram", zap.Error(err))
	}
	logger.Info("Authorized on Telegram", zap.String("username", api.Self.UserName))

	bot := telegram.New(telegram.Config{
		API:         api,
		Accounts:    accountsSvc,
		Consumption: consumptionSvc,
		Sessions:    sessions,
		Credentials: creds,
		Texts:       tbl,
		APIKeyFlow:  cfg.Provider.Mode == config.ProviderRemote,
		Logger:      logger,
	})

	// Daily reminder
	reminderSvc := notifyuc.New(accountsSvc, bot, tbl.Get("daily_report"), logger)
	sched := scheduler.New(logger)
	if cfg.Reminder.Enabled {
		err := sched.ScheduleDaily(cfg.Reminder.Hour, cfg.Reminder.Minute, func() {
			reminderSvc.Broadcast(context.Background())
		})
		if err != nil {
			logger.Fatal("Failed to schedule the daily reminder", zap.Error(err))
		}
		sched.Start()
	}

	// Ops HTTP server (health + metrics)
	opsAddr := fmt.Sprintf(":%d", cfg.Ops.Port)
	opsSrv := &http.Server{
		Addr:         opsAddr,
		Handler:      ops.NewRouter(healthSvc, logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("Starting ops HTTP server", zap.String("addr", opsAddr))
		if err := opsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Ops HTTP server error", zap.Error(err))
		}
	}()

	// Long polling loop
	updateCfg := tgbotapi.NewUpdate(0)
	updateCfg.Timeout = cfg.Telegram.PollTimeoutSec
	updates := api.GetUpdatesChan(updateCfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		bot.Run(ctx, updates)
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.Info("Received shutdown signal")

	if cfg.Reminder.Enabled {
		sched.Stop()
	}
	api.StopReceivingUpdates()
	cancel()
	<-done

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := opsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during ops server shutdown", zap.Error(err))
	}

	logger.Info("Bot stopped gracefully")
}
