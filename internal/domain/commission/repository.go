package commission

import "context"

type CommissionRepository interface {
	Create(ctx context.Context, c Commission) (Commission, error)

	// GetForUpdate locks the commission row; ErrCommissionNotFound when missing.
	GetForUpdate(ctx context.Context, id string) (Commission, error)

	UpdateMarks(ctx context.Context, c Commission) (Commission, error)
	List(ctx context.Context, filter CommissionFilter) ([]Commission, int64, error)
}
