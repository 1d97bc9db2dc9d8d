package schedule

import "context"

type ScheduleRepository interface {
	// Get returns the single schedule row or ErrScheduleNotConfigured.
	Get(ctx context.Context) (Config, error)
	Upsert(ctx context.Context, cfg Config) (Config, error)
}
