package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/limatime/attendance-backend-go/internal/domain/attendance"
	"github.com/limatime/attendance-backend-go/internal/domain/schedule"
	"github.com/limatime/attendance-backend-go/internal/pkg/database"
	"github.com/limatime/attendance-backend-go/internal/pkg/jwt"
	"github.com/limatime/attendance-backend-go/internal/pkg/keylock"
	"github.com/limatime/attendance-backend-go/internal/pkg/timeutil"
	"golang.org/x/sync/errgroup"
)

// punchAttempts bounds the read-apply-write loop; a lost insert race costs one extra pass.
const punchAttempts = 2

type AttendanceServiceImpl struct {
	tx database.Transactor
	attendance.AttendanceRepository
	schedule.ScheduleRepository
	locks *keylock.KeyLock
	now   func() time.Time
}

func NewAttendanceService(
	tx database.Transactor,
	attendanceRepo attendance.AttendanceRepository,
	scheduleRepo schedule.ScheduleRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:                   tx,
		AttendanceRepository: attendanceRepo,
		ScheduleRepository:   scheduleRepo,
		locks:                keylock.New(),
		now:                  time.Now,
	}
}

// Punch implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Punch(ctx context.Context, req attendance.PunchRequest) (attendance.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PunchResponse{}, err
	}
	kind, _ := attendance.ParsePunchKind(req.PunchKind)

	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return attendance.PunchResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	now := a.now()
	date := timeutil.DateOf(now)

	unlock := a.locks.Lock(claims.EmployeeID + "|" + date.Format("2006-01-02"))
	defer unlock()

	var saved attendance.Attendance
	err = a.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		for attempt := 0; attempt < punchAttempts; attempt++ {
			existing, err := a.AttendanceRepository.GetForUpdate(txCtx, claims.EmployeeID, date)
			if err != nil {
				return fmt.Errorf("failed to get attendance: %w", err)
			}

			day := attendance.Attendance{EmployeeID: claims.EmployeeID, Date: date}
			if existing != nil {
				day = *existing
			}

			updated, err := attendance.ApplyPunch(day, kind, now)
			if err != nil {
				return err
			}

			if existing != nil {
				saved, err = a.AttendanceRepository.UpdatePunch(txCtx, updated, kind)
				if err != nil {
					return err
				}
				return nil
			}

			created, inserted, err := a.AttendanceRepository.CreateIfAbsent(txCtx, updated)
			if err != nil {
				return fmt.Errorf("failed to create attendance: %w", err)
			}
			if inserted {
				saved = created
				return nil
			}
			// Another request created the row first; re-read it under lock and re-check the sequence.
		}
		return attendance.ErrConcurrentPunch
	})
	if err != nil {
		return attendance.PunchResponse{}, err
	}

	cfg := a.loadSchedule(ctx)
	evaluation := attendance.EvaluateDay(saved, cfg).ByKind(kind)
	marked := timeutil.Clock(*saved.Punch(kind))

	return attendance.PunchResponse{
		PunchKind:  kind,
		Label:      kind.Label(),
		Date:       saved.Date.Format("2006-01-02"),
		Time:       marked,
		Message:    fmt.Sprintf("%s recorded at %s", kind.Label(), marked),
		Evaluation: evaluation,
		Summary:    attendance.Summarize(&saved),
	}, nil
}

// Today implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Today(ctx context.Context) (attendance.TodayResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return attendance.TodayResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	date := timeutil.DateOf(a.now())

	var (
		cfg    *schedule.Config
		record *attendance.Attendance
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cfg = a.loadSchedule(gctx)
		return nil
	})
	g.Go(func() error {
		var err error
		record, err = a.AttendanceRepository.GetByEmployeeAndDate(gctx, claims.EmployeeID, date)
		if err != nil {
			return fmt.Errorf("failed to get today's attendance: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return attendance.TodayResponse{}, err
	}

	isWorkday := true
	if cfg != nil {
		isWorkday, err = cfg.IsWorkday(date)
		if err != nil {
			slog.Error("failed to expand workdays rule", "error", err)
			isWorkday = true
		}
	}

	resp := attendance.TodayResponse{
		Date:      date.Format("2006-01-02"),
		IsWorkday: isWorkday,
		Summary:   attendance.Summarize(record),
	}

	switch {
	case record != nil:
		mapped := mapAttendanceToResponse(*record, cfg)
		resp.Record = &mapped
		if resp.Summary.NextAction == attendance.NextActionComplete {
			resp.Message = "All punches recorded for today"
		}
	case !isWorkday:
		resp.Message = "Today is not a workday"
	default:
		resp.Message = "No attendance recorded yet today"
	}

	return resp, nil
}

// History implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) History(ctx context.Context, filter attendance.HistoryFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	rows, total, err := a.AttendanceRepository.ListByEmployee(ctx, claims.EmployeeID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance history: %w", err)
	}

	return a.buildList(ctx, rows, total, filter.Page, filter.Limit), nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	rows, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	limit := filter.Limit
	if filter.All {
		limit = int(total)
	}
	return a.buildList(ctx, rows, total, filter.Page, limit), nil
}

func (a *AttendanceServiceImpl) buildList(ctx context.Context, rows []attendance.Attendance, total int64, page, limit int) attendance.ListAttendanceResponse {
	cfg := a.loadSchedule(ctx)

	responses := make([]attendance.AttendanceResponse, 0, len(rows))
	for _, att := range rows {
		responses = append(responses, mapAttendanceToResponse(att, cfg))
	}

	totalPages := 1
	if limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	showing := fmt.Sprintf("%d-%d of %d", (page-1)*limit+1, min(page*limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
		totalPages = 0
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		Showing:     showing,
		Attendances: responses,
	}
}

// loadSchedule returns nil when no schedule is configured or it cannot be read; evaluations
// then degrade to not_applicable instead of failing the request.
func (a *AttendanceServiceImpl) loadSchedule(ctx context.Context) *schedule.Config {
	cfg, err := a.ScheduleRepository.Get(ctx)
	if err != nil {
		if !errors.Is(err, schedule.ErrScheduleNotConfigured) {
			slog.Error("failed to load schedule config", "error", err)
		}
		return nil
	}
	return &cfg
}

func mapAttendanceToResponse(att attendance.Attendance, cfg *schedule.Config) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		EmployeeCode: att.EmployeeCode,
		EmployeeName: att.EmployeeName,
		Date:         att.Date.Format("2006-01-02"),
		CheckIn:      timeutil.ClockPtr(att.CheckIn),
		LunchOut:     timeutil.ClockPtr(att.LunchOut),
		LunchIn:      timeutil.ClockPtr(att.LunchIn),
		CheckOut:     timeutil.ClockPtr(att.CheckOut),
		Summary:      attendance.Summarize(&att),
		Evaluation:   attendance.EvaluateDay(att, cfg),
		CreatedAt:    att.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    att.UpdatedAt.Format(time.RFC3339),
	}
}
