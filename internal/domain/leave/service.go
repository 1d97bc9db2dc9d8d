package leave

import "context"

type PermitService interface {
	// Create files a permit for the authenticated employee
	Create(ctx context.Context, req CreatePermitRequest) (PermitResponse, error)

	// ListMine lists the authenticated employee's permits
	ListMine(ctx context.Context, filter PermitFilter) (ListPermitResponse, error)

	// List lists everyone's permits (supervisor only)
	List(ctx context.Context, filter PermitFilter) (ListPermitResponse, error)
}
