package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/limatime/attendance-backend-go/internal/domain/schedule"
	"github.com/limatime/attendance-backend-go/internal/pkg/database"
)

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepository{db: db}
}

// TIME columns are read as text (HH:MM:SS) so the evaluator can parse them directly.
const scheduleColumns = `id, expected_check_in::text, expected_lunch_out::text, expected_lunch_in::text,
	expected_check_out::text, tolerance_minutes, workdays_rule, updated_at`

func scanSchedule(row pgx.Row) (schedule.Config, error) {
	var cfg schedule.Config
	err := row.Scan(
		&cfg.ID, &cfg.ExpectedCheckIn, &cfg.ExpectedLunchOut, &cfg.ExpectedLunchIn,
		&cfg.ExpectedCheckOut, &cfg.ToleranceMinutes, &cfg.WorkdaysRule, &cfg.UpdatedAt,
	)
	return cfg, err
}

// Get implements schedule.ScheduleRepository.
func (s *scheduleRepository) Get(ctx context.Context) (schedule.Config, error) {
	q := GetQuerier(ctx, s.db)

	cfg, err := scanSchedule(q.QueryRow(ctx, `SELECT `+scheduleColumns+` FROM schedule_config WHERE id = $1`, schedule.ConfigID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Config{}, schedule.ErrScheduleNotConfigured
		}
		return schedule.Config{}, fmt.Errorf("failed to get schedule config: %w", err)
	}
	return cfg, nil
}

// Upsert implements schedule.ScheduleRepository.
func (s *scheduleRepository) Upsert(ctx context.Context, cfg schedule.Config) (schedule.Config, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO schedule_config (id, expected_check_in, expected_lunch_out, expected_lunch_in,
			expected_check_out, tolerance_minutes, workdays_rule, updated_at)
		VALUES ($1, $2::text::time, $3::text::time, $4::text::time, $5::text::time, $6, $7, NOW())
		ON CONFLICT (id) DO UPDATE SET
			expected_check_in = EXCLUDED.expected_check_in,
			expected_lunch_out = EXCLUDED.expected_lunch_out,
			expected_lunch_in = EXCLUDED.expected_lunch_in,
			expected_check_out = EXCLUDED.expected_check_out,
			tolerance_minutes = EXCLUDED.tolerance_minutes,
			workdays_rule = EXCLUDED.workdays_rule,
			updated_at = NOW()
		RETURNING ` + scheduleColumns

	saved, err := scanSchedule(q.QueryRow(ctx, query,
		schedule.ConfigID, cfg.ExpectedCheckIn, cfg.ExpectedLunchOut, cfg.ExpectedLunchIn,
		cfg.ExpectedCheckOut, cfg.ToleranceMinutes, cfg.WorkdaysRule,
	))
	if err != nil {
		return schedule.Config{}, fmt.Errorf("failed to save schedule config: %w", err)
	}
	return saved, nil
}
