package schedule

import "context"

type ScheduleService interface {
	Get(ctx context.Context) (ScheduleResponse, error)
	Update(ctx context.Context, req UpdateScheduleRequest) (ScheduleResponse, error)
}
