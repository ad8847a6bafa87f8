package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"reminder-engine/internal/config"
	"reminder-engine/internal/logging"
	"reminder-engine/internal/notify"
	"reminder-engine/internal/repository"
	"reminder-engine/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(cfg.LogLevel, os.Stderr)

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	itemRepo := repository.NewItemRepository(db)
	userRepo := repository.NewUserRepository(db)

	gateway, err := buildGateway(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("notification gateway")
	}

	dispatchSvc := service.NewDispatchService(itemRepo, userRepo, gateway, log, cfg.DueWindow, cfg.DispatchWorkers)

	scheduler := service.NewSchedulerService(time.Local, log)
	if _, err := scheduler.ScheduleInterval(cfg.ScanInterval, "reminder-scan", func() {
		tickCtx, cancel := context.WithTimeout(context.Background(), cfg.ScanInterval*2)
		defer cancel()
		if err := dispatchSvc.RunCycle(tickCtx); err != nil {
			log.Error().Err(err).Msg("scan cycle failed; will retry on next fire")
		}
	}); err != nil {
		log.Fatal().Err(err).Msg("schedule reminder scan")
	}
	scheduler.Start()
	defer scheduler.Stop()

	log.Info().
		Dur("interval", cfg.ScanInterval).
		Dur("window", cfg.DueWindow).
		Str("gateway", cfg.Gateway).
		Msg("reminder engine started")

	<-ctx.Done()
	log.Info().Msg("shutdown complete")
}

func buildGateway(cfg config.Config, log zerolog.Logger) (notify.Gateway, error) {
	switch cfg.Gateway {
	case config.GatewayTelegram:
		return notify.NewTelegramGateway(cfg.TelegramToken)
	case config.GatewayEmail:
		return notify.NewSendgridGateway(cfg.SendgridAPIKey, cfg.FromName, cfg.FromEmail), nil
	default:
		return notify.NewConsoleGateway(log), nil
	}
}
