package main

import (
	"context"
	"log"

	"github.com/teamtrack-hr/teamtrack-backend/config"
	authservice "github.com/teamtrack-hr/teamtrack-backend/internal/auth/service"
	"github.com/teamtrack-hr/teamtrack-backend/internal/auth/session"
	"github.com/teamtrack-hr/teamtrack-backend/internal/bootstrap"
	"github.com/teamtrack-hr/teamtrack-backend/internal/mail"
	"github.com/teamtrack-hr/teamtrack-backend/internal/projects/repository"
	"github.com/teamtrack-hr/teamtrack-backend/internal/reports"
	cronjob "github.com/teamtrack-hr/teamtrack-backend/internal/reports/cron"
	"github.com/teamtrack-hr/teamtrack-backend/internal/sheets"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	sheetsClient, err := sheets.NewClient(ctx, cfg.Google)
	if err != nil {
		log.Fatalf("sheets client: %v", err)
	}

	store := repository.NewRecordStore(sheetsClient)
	store.VerifySchema(ctx)

	redisClient := bootstrap.NewRedisClient(cfg.Redis)
	sessions := session.NewStore(redisClient)

	sender := mail.NewSender(mail.Config{
		Host:       cfg.SMTP.Host,
		Port:       cfg.SMTP.Port,
		Username:   cfg.SMTP.Username,
		Password:   cfg.SMTP.Password,
		From:       cfg.SMTP.From,
		Recipients: cfg.SMTP.HRRecipients,
	})

	reportSvc := reports.NewService(store, sender)

	if cfg.Cron.Enabled {
		scheduler := cronjob.NewScheduler(reportSvc, cfg.Cron.Schedule)
		if err := scheduler.Start(); err != nil {
			log.Fatalf("start scheduler: %v", err)
		}
		defer scheduler.Stop()
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "teamtrack-backend",
		Cfg:         cfg,
		Redis:       redisClient,
		Sheets:      sheetsClient,
		Store:       store,
		Sessions:    sessions,
		Auth:        authservice.NewAuthService(cfg.Google, cfg.Server.BaseURL),
		Reports:     reportSvc,
		Sender:      sender,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
