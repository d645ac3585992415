// Command reporter sends the weekly project report once and exits. It runs
// the same code path as the in-process cron trigger, for deployments that
// prefer an external scheduler.
package main

import (
	"context"
	"log"
	"time"

	"github.com/teamtrack-hr/teamtrack-backend/config"
	"github.com/teamtrack-hr/teamtrack-backend/internal/mail"
	"github.com/teamtrack-hr/teamtrack-backend/internal/projects/repository"
	"github.com/teamtrack-hr/teamtrack-backend/internal/reports"
	"github.com/teamtrack-hr/teamtrack-backend/internal/sheets"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	sheetsClient, err := sheets.NewClient(ctx, cfg.Google)
	if err != nil {
		log.Fatalf("sheets client: %v", err)
	}

	store := repository.NewRecordStore(sheetsClient)

	sender := mail.NewSender(mail.Config{
		Host:       cfg.SMTP.Host,
		Port:       cfg.SMTP.Port,
		Username:   cfg.SMTP.Username,
		Password:   cfg.SMTP.Password,
		From:       cfg.SMTP.From,
		Recipients: cfg.SMTP.HRRecipients,
	})

	if err := reports.NewService(store, sender).SendWeekly(ctx); err != nil {
		log.Fatalf("send weekly report: %v", err)
	}

	log.Println("weekly report sent")
}
