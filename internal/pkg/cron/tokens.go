package cron

import (
	"context"
	"log/slog"
	"time"
)

// TokenPurger is the part of the JWT service the purge job needs.
type TokenPurger interface {
	PurgeExpired(now time.Time) int
}

type TokenJobs struct {
	purger TokenPurger
	now    func() time.Time
}

func NewTokenJobs(purger TokenPurger) *TokenJobs {
	return &TokenJobs{purger: purger, now: time.Now}
}

func (j *TokenJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("purge_revoked_tokens", interval, j.PurgeRevokedTokens)
}

// PurgeRevokedTokens forgets logged-out tokens whose expiry has passed.
func (j *TokenJobs) PurgeRevokedTokens(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if purged := j.purger.PurgeExpired(j.now()); purged > 0 {
		slog.Info("Purged revoked tokens", "count", purged)
	}
	return nil
}
