package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/teamtrack-hr/teamtrack-backend/internal/reports"
)

// Scheduler runs the weekly report on an in-process cron schedule. Failures
// are logged and the schedule keeps running; nothing here is fatal.
type Scheduler struct {
	c    *cron.Cron
	svc  *reports.Service
	spec string
}

func NewScheduler(svc *reports.Service, spec string) *Scheduler {
	return &Scheduler{svc: svc, spec: spec}
}

// Start initializes cron tasks.
func (s *Scheduler) Start() error {
	s.c = cron.New(cron.WithSeconds())

	_, err := s.c.AddFunc(s.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		if err := s.svc.SendWeekly(ctx); err != nil {
			log.Printf("[reports] scheduled report failed: %v", err)
			return
		}
		log.Println("[reports] scheduled report sent at:", time.Now().Format(time.RFC1123))
	})
	if err != nil {
		return err
	}

	log.Printf("[reports] cron scheduler started (spec %q)", s.spec)
	s.c.Start()
	return nil
}

func (s *Scheduler) Stop() {
	if s.c != nil {
		s.c.Stop()
	}
}
