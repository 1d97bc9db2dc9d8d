package leave

import "context"

type PermitRepository interface {
	Create(ctx context.Context, permit Permit) (Permit, error)
	List(ctx context.Context, filter PermitFilter) ([]Permit, int64, error)
}
