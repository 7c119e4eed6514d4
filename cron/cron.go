package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/meinhoongagan/tourbook/models"
	"github.com/robfig/cron/v3"
)

type BacklogSource interface {
	StaleBacklog(ctx context.Context, before time.Time) ([]models.GuideBacklog, error)
}

// PendingDigest reports booking requests that guides have left unconfirmed
// for longer than staleAfter. It only reads.
type PendingDigest struct {
	source     BacklogSource
	staleAfter time.Duration
	logger     *log.Logger
	now        func() time.Time
}

func NewPendingDigest(source BacklogSource, staleAfter time.Duration, logger *log.Logger) *PendingDigest {
	if logger == nil {
		logger = log.Default()
	}
	return &PendingDigest{source: source, staleAfter: staleAfter, logger: logger, now: time.Now}
}

// Run logs one line per guide with stale requests and returns the backlog.
func (d *PendingDigest) Run(ctx context.Context) ([]models.GuideBacklog, error) {
	now := d.now()
	backlog, err := d.source.StaleBacklog(ctx, now.Add(-d.staleAfter))
	if err != nil {
		return nil, fmt.Errorf("pending booking digest: %w", err)
	}

	d.logger.Printf("Found %d guides with bookings unconfirmed for over %s", len(backlog), d.staleAfter)
	for _, b := range backlog {
		d.logger.Printf("guide %d: %d guide bookings, %d tour bookings waiting, oldest since %s",
			b.GuideID, b.GuideCount, b.TourCount, b.OldestWaiting.Format(time.RFC3339))
	}
	return backlog, nil
}

// Start schedules the digest and starts the cron scheduler
func Start(schedule string, digest *PendingDigest) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		if _, err := digest.Run(context.Background()); err != nil {
			log.Printf("Error running pending booking digest: %v", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule pending booking digest %q: %w", schedule, err)
	}
	c.Start()
	log.Printf("Cron scheduler started for pending booking digest (%s)", schedule)
	return c, nil
}
