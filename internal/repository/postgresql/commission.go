package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/limatime/attendance-backend-go/internal/domain/commission"
	"github.com/limatime/attendance-backend-go/internal/pkg/database"
)

type commissionRepository struct {
	db *database.DB
}

func NewCommissionRepository(db *database.DB) commission.CommissionRepository {
	return &commissionRepository{db: db}
}

const commissionColumns = `fc.id, fc.employee_id, fc.date, fc.reason, fc.departed_at, fc.returned_at, fc.created_at, fc.updated_at`

func scanCommission(row pgx.Row, extra ...any) (commission.Commission, error) {
	var c commission.Commission
	dest := []any{
		&c.ID, &c.EmployeeID, &c.Date, &c.Reason, &c.DepartedAt, &c.ReturnedAt, &c.CreatedAt, &c.UpdatedAt,
	}
	err := row.Scan(append(dest, extra...)...)
	return c, err
}

// Create implements commission.CommissionRepository.
func (r *commissionRepository) Create(ctx context.Context, c commission.Commission) (commission.Commission, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return commission.Commission{}, fmt.Errorf("failed to generate commission id: %w", err)
	}

	query := `
		INSERT INTO field_commissions AS fc (id, employee_id, date, reason)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + commissionColumns

	created, err := scanCommission(q.QueryRow(ctx, query, id.String(), c.EmployeeID, c.Date, c.Reason))
	if err != nil {
		return commission.Commission{}, fmt.Errorf("failed to create commission: %w", err)
	}
	return created, nil
}

// GetForUpdate implements commission.CommissionRepository.
func (r *commissionRepository) GetForUpdate(ctx context.Context, id string) (commission.Commission, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + commissionColumns + ` FROM field_commissions fc WHERE fc.id = $1 FOR UPDATE`
	c, err := scanCommission(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return commission.Commission{}, commission.ErrCommissionNotFound
		}
		return commission.Commission{}, fmt.Errorf("failed to get commission with id %s: %w", id, err)
	}
	return c, nil
}

// UpdateMarks implements commission.CommissionRepository.
func (r *commissionRepository) UpdateMarks(ctx context.Context, c commission.Commission) (commission.Commission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE field_commissions AS fc
		SET departed_at = $1, returned_at = $2, updated_at = NOW()
		WHERE fc.id = $3
		RETURNING ` + commissionColumns

	updated, err := scanCommission(q.QueryRow(ctx, query, c.DepartedAt, c.ReturnedAt, c.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return commission.Commission{}, commission.ErrCommissionNotFound
		}
		return commission.Commission{}, fmt.Errorf("failed to update commission with id %s: %w", c.ID, err)
	}
	return updated, nil
}

// List implements commission.CommissionRepository.
func (r *commissionRepository) List(ctx context.Context, filter commission.CommissionFilter) ([]commission.Commission, int64, error) {
	q := GetQuerier(ctx, r.db)

	where, args := datedFilter("fc", filter.EmployeeID, filter.EmployeeCode, filter.StartDate, filter.EndDate)
	argIdx := len(args) + 1

	countQuery := `
		SELECT COUNT(*)
		FROM field_commissions fc
		JOIN employees e ON e.id = fc.employee_id
		WHERE ` + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count commissions: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s, e.employee_code, e.first_name || ' ' || e.last_name AS employee_name
		FROM field_commissions fc
		JOIN employees e ON e.id = fc.employee_id
		WHERE %s
		ORDER BY fc.date DESC, fc.created_at DESC
		LIMIT $%d OFFSET $%d
	`, commissionColumns, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query commissions: %w", err)
	}
	defer rows.Close()

	var commissions []commission.Commission
	for rows.Next() {
		var code, name string
		c, err := scanCommission(rows, &code, &name)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan commission: %w", err)
		}
		c.EmployeeCode = &code
		c.EmployeeName = &name
		commissions = append(commissions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate commissions: %w", err)
	}

	return commissions, total, nil
}
