package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/limatime/attendance-backend-go/internal/domain/attendance"
	"github.com/limatime/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `a.id, a.employee_id, a.date, a.check_in, a.lunch_out, a.lunch_in, a.check_out, a.created_at, a.updated_at`

func scanAttendance(row pgx.Row, extra ...any) (attendance.Attendance, error) {
	var att attendance.Attendance
	dest := []any{
		&att.ID, &att.EmployeeID, &att.Date,
		&att.CheckIn, &att.LunchOut, &att.LunchIn, &att.CheckOut,
		&att.CreatedAt, &att.UpdatedAt,
	}
	err := row.Scan(append(dest, extra...)...)
	return att, err
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	return a.getDay(ctx, employeeID, date, false)
}

// GetForUpdate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetForUpdate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	return a.getDay(ctx, employeeID, date, true)
}

func (a *attendanceRepository) getDay(ctx context.Context, employeeID string, date time.Time, lock bool) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1 AND a.date = $2`
	if lock {
		query += ` FOR UPDATE`
	}

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance for employee %s on %s: %w", employeeID, date.Format("2006-01-02"), err)
	}
	return &att, nil
}

// CreateIfAbsent implements attendance.AttendanceRepository.
func (a *attendanceRepository) CreateIfAbsent(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, bool, error) {
	q := GetQuerier(ctx, a.db)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Attendance{}, false, fmt.Errorf("failed to generate attendance id: %w", err)
	}

	query := `
		INSERT INTO attendances AS a (id, employee_id, date, check_in, lunch_out, lunch_in, check_out)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id, date) DO NOTHING
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query,
		id.String(), newAttendance.EmployeeID, newAttendance.Date,
		newAttendance.CheckIn, newAttendance.LunchOut, newAttendance.LunchIn, newAttendance.CheckOut,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, false, nil
		}
		return attendance.Attendance{}, false, fmt.Errorf("failed to create attendance: %w", err)
	}
	return created, true, nil
}

var punchColumns = map[attendance.PunchKind]string{
	attendance.PunchCheckIn:  "check_in",
	attendance.PunchLunchOut: "lunch_out",
	attendance.PunchLunchIn:  "lunch_in",
	attendance.PunchCheckOut: "check_out",
}

// UpdatePunch implements attendance.AttendanceRepository.
func (a *attendanceRepository) UpdatePunch(ctx context.Context, att attendance.Attendance, kind attendance.PunchKind) (attendance.Attendance, error) {
	column, ok := punchColumns[kind]
	if !ok {
		return attendance.Attendance{}, attendance.ErrInvalidPunchKind
	}
	q := GetQuerier(ctx, a.db)

	// Only fills an empty slot; a recorded punch is never overwritten.
	query := fmt.Sprintf(`
		UPDATE attendances AS a
		SET %[1]s = $1, updated_at = NOW()
		WHERE a.id = $2 AND a.%[1]s IS NULL
		RETURNING `+attendanceColumns, column)

	updated, err := scanAttendance(q.QueryRow(ctx, query, att.Punch(kind), att.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrConcurrentPunch
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update %s for attendance %s: %w", column, att.ID, err)
	}
	return updated, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, filter attendance.HistoryFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "a.employee_id = $1"
	args := []interface{}{employeeID}
	argIdx := 2

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendances a WHERE `+baseWhere, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendances a
		WHERE %s
		ORDER BY a.date DESC
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, baseWhere, argIdx, argIdx+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance history: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendance history: %w", err)
	}

	return attendances, total, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	// Build WHERE clause
	baseWhere := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	if filter.Date != nil && *filter.Date != "" {
		baseWhere += fmt.Sprintf(" AND a.date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Month != nil {
		baseWhere += fmt.Sprintf(" AND EXTRACT(MONTH FROM a.date) = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		baseWhere += fmt.Sprintf(" AND EXTRACT(YEAR FROM a.date) = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.EmployeeCode != nil && *filter.EmployeeCode != "" {
		baseWhere += fmt.Sprintf(" AND e.employee_code = $%d", argIdx)
		args = append(args, *filter.EmployeeCode)
		argIdx++
	}

	countQuery := `
		SELECT COUNT(*)
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s,
			e.employee_code,
			e.first_name || ' ' || e.last_name AS employee_name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY a.date %s, e.employee_code ASC
	`, attendanceColumns, baseWhere, sortOrder)

	if !filter.All {
		limit := filter.Limit
		if limit == 0 {
			limit = 20
		}
		page := filter.Page
		if page < 1 {
			page = 1
		}
		selectQuery += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
		args = append(args, limit, (page-1)*limit)
	}

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var code, name string
		att, err := scanAttendance(rows, &code, &name)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		att.EmployeeCode = &code
		att.EmployeeName = &name
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return attendances, total, nil
}
