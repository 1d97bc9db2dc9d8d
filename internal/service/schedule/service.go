package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/limatime/attendance-backend-go/internal/domain/schedule"
	"github.com/limatime/attendance-backend-go/internal/pkg/timeutil"
)

type ScheduleServiceImpl struct {
	schedule.ScheduleRepository
}

func NewScheduleService(scheduleRepo schedule.ScheduleRepository) schedule.ScheduleService {
	return &ScheduleServiceImpl{ScheduleRepository: scheduleRepo}
}

// Get implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Get(ctx context.Context) (schedule.ScheduleResponse, error) {
	cfg, err := s.ScheduleRepository.Get(ctx)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	return toResponse(cfg), nil
}

// Update implements schedule.ScheduleService. A nil workdays rule keeps the stored one.
func (s *ScheduleServiceImpl) Update(ctx context.Context, req schedule.UpdateScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	rule := schedule.DefaultWorkdaysRule
	current, err := s.ScheduleRepository.Get(ctx)
	switch {
	case err == nil:
		rule = current.WorkdaysRule
	case !errors.Is(err, schedule.ErrScheduleNotConfigured):
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to get schedule config: %w", err)
	}
	if req.WorkdaysRule != nil {
		rule = *req.WorkdaysRule
	}

	saved, err := s.ScheduleRepository.Upsert(ctx, schedule.Config{
		ID:               schedule.ConfigID,
		ExpectedCheckIn:  canonicalClock(req.ExpectedCheckIn),
		ExpectedLunchOut: canonicalClock(req.ExpectedLunchOut),
		ExpectedLunchIn:  canonicalClock(req.ExpectedLunchIn),
		ExpectedCheckOut: canonicalClock(req.ExpectedCheckOut),
		ToleranceMinutes: req.ToleranceMinutes,
		WorkdaysRule:     rule,
	})
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to save schedule config: %w", err)
	}

	slog.Info("schedule updated",
		"check_in", saved.ExpectedCheckIn,
		"check_out", saved.ExpectedCheckOut,
		"tolerance_minutes", saved.ToleranceMinutes,
	)
	return toResponse(saved), nil
}

// canonicalClock turns a validated HH:MM[:SS] into HH:MM:00.
func canonicalClock(s string) string {
	m, _ := timeutil.ParseClock(s)
	return timeutil.FormatMinutes(m) + ":00"
}

func toResponse(cfg schedule.Config) schedule.ScheduleResponse {
	resp := schedule.ScheduleResponse{
		ExpectedCheckIn:  cfg.ExpectedCheckIn,
		ExpectedLunchOut: cfg.ExpectedLunchOut,
		ExpectedLunchIn:  cfg.ExpectedLunchIn,
		ExpectedCheckOut: cfg.ExpectedCheckOut,
		ToleranceMinutes: cfg.ToleranceMinutes,
		WorkdaysRule:     cfg.WorkdaysRule,
	}
	if !cfg.UpdatedAt.IsZero() {
		resp.UpdatedAt = cfg.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}
