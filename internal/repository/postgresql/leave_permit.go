package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/limatime/attendance-backend-go/internal/domain/leave"
	"github.com/limatime/attendance-backend-go/internal/pkg/database"
)

type permitRepository struct {
	db *database.DB
}

func NewPermitRepository(db *database.DB) leave.PermitRepository {
	return &permitRepository{db: db}
}

// Create implements leave.PermitRepository.
func (p *permitRepository) Create(ctx context.Context, permit leave.Permit) (leave.Permit, error) {
	q := GetQuerier(ctx, p.db)

	id, err := uuid.NewV7()
	if err != nil {
		return leave.Permit{}, fmt.Errorf("failed to generate permit id: %w", err)
	}

	query := `
		INSERT INTO leave_permits (id, employee_id, date, reason)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_id, date, reason, created_at
	`

	var created leave.Permit
	err = q.QueryRow(ctx, query, id.String(), permit.EmployeeID, permit.Date, permit.Reason).Scan(
		&created.ID, &created.EmployeeID, &created.Date, &created.Reason, &created.CreatedAt,
	)
	if err != nil {
		if uniqueConstraint(err) != "" {
			return leave.Permit{}, leave.ErrPermitAlreadyFiled
		}
		return leave.Permit{}, fmt.Errorf("failed to create leave permit: %w", err)
	}
	return created, nil
}

// List implements leave.PermitRepository.
func (p *permitRepository) List(ctx context.Context, filter leave.PermitFilter) ([]leave.Permit, int64, error) {
	q := GetQuerier(ctx, p.db)

	where, args := datedFilter("lp", filter.EmployeeID, filter.EmployeeCode, filter.StartDate, filter.EndDate)
	argIdx := len(args) + 1

	countQuery := `
		SELECT COUNT(*)
		FROM leave_permits lp
		JOIN employees e ON e.id = lp.employee_id
		WHERE ` + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave permits: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT lp.id, lp.employee_id, lp.date, lp.reason, lp.created_at,
			e.employee_code, e.first_name || ' ' || e.last_name AS employee_name
		FROM leave_permits lp
		JOIN employees e ON e.id = lp.employee_id
		WHERE %s
		ORDER BY lp.date DESC, lp.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query leave permits: %w", err)
	}
	defer rows.Close()

	var permits []leave.Permit
	for rows.Next() {
		var permit leave.Permit
		err := rows.Scan(
			&permit.ID, &permit.EmployeeID, &permit.Date, &permit.Reason, &permit.CreatedAt,
			&permit.EmployeeCode, &permit.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave permit: %w", err)
		}
		permits = append(permits, permit)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate leave permits: %w", err)
	}

	return permits, total, nil
}

// datedFilter builds the WHERE clause shared by the per-employee dated lists.
// alias is the table alias of the dated table; employees is always joined as e.
func datedFilter(alias string, employeeID, employeeCode, startDate, endDate *string) (string, []interface{}) {
	where := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	if employeeID != nil && *employeeID != "" {
		where += fmt.Sprintf(" AND %s.employee_id = $%d", alias, argIdx)
		args = append(args, *employeeID)
		argIdx++
	}
	if employeeCode != nil && *employeeCode != "" {
		where += fmt.Sprintf(" AND e.employee_code = $%d", argIdx)
		args = append(args, *employeeCode)
		argIdx++
	}
	if startDate != nil && *startDate != "" {
		where += fmt.Sprintf(" AND %s.date >= $%d", alias, argIdx)
		args = append(args, *startDate)
		argIdx++
	}
	if endDate != nil && *endDate != "" {
		where += fmt.Sprintf(" AND %s.date <= $%d", alias, argIdx)
		args = append(args, *endDate)
	}
	return where, args
}
