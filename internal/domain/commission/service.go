package commission

import "context"

type CommissionService interface {
	Create(ctx context.Context, req CreateCommissionRequest) (CommissionResponse, error)
	MarkDeparture(ctx context.Context, id string) (CommissionResponse, error)
	MarkReturn(ctx context.Context, id string) (CommissionResponse, error)
	ListMine(ctx context.Context, filter CommissionFilter) (ListCommissionResponse, error)
	List(ctx context.Context, filter CommissionFilter) (ListCommissionResponse, error)
}
