package commission

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/limatime/attendance-backend-go/internal/domain/commission"
	"github.com/limatime/attendance-backend-go/internal/pkg/database"
	"github.com/limatime/attendance-backend-go/internal/pkg/jwt"
	"github.com/limatime/attendance-backend-go/internal/pkg/timeutil"
)

type CommissionServiceImpl struct {
	tx database.Transactor
	commission.CommissionRepository
	now func() time.Time
}

func NewCommissionService(tx database.Transactor, commissionRepo commission.CommissionRepository) commission.CommissionService {
	return &CommissionServiceImpl{
		tx:                   tx,
		CommissionRepository: commissionRepo,
		now:                  time.Now,
	}
}

// Create implements commission.CommissionService.
func (s *CommissionServiceImpl) Create(ctx context.Context, req commission.CreateCommissionRequest) (commission.CommissionResponse, error) {
	if err := req.Validate(); err != nil {
		return commission.CommissionResponse{}, err
	}

	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return commission.CommissionResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	created, err := s.CommissionRepository.Create(ctx, commission.Commission{
		EmployeeID: claims.EmployeeID,
		Date:       date,
		Reason:     req.Reason,
	})
	if err != nil {
		return commission.CommissionResponse{}, err
	}
	return toResponse(created), nil
}

// MarkDeparture implements commission.CommissionService.
func (s *CommissionServiceImpl) MarkDeparture(ctx context.Context, id string) (commission.CommissionResponse, error) {
	return s.mark(ctx, id, commission.Commission.MarkDeparture)
}

// MarkReturn implements commission.CommissionService.
func (s *CommissionServiceImpl) MarkReturn(ctx context.Context, id string) (commission.CommissionResponse, error) {
	return s.mark(ctx, id, commission.Commission.MarkReturn)
}

func (s *CommissionServiceImpl) mark(ctx context.Context, id string, apply func(commission.Commission, time.Time) (commission.Commission, error)) (commission.CommissionResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return commission.CommissionResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	var saved commission.Commission
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		current, err := s.CommissionRepository.GetForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if current.EmployeeID != claims.EmployeeID {
			return commission.ErrNotCommissionOwner
		}

		updated, err := apply(current, s.now())
		if err != nil {
			return err
		}

		saved, err = s.CommissionRepository.UpdateMarks(txCtx, updated)
		return err
	})
	if err != nil {
		return commission.CommissionResponse{}, err
	}
	return toResponse(saved), nil
}

// ListMine implements commission.CommissionService.
func (s *CommissionServiceImpl) ListMine(ctx context.Context, filter commission.CommissionFilter) (commission.ListCommissionResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return commission.ListCommissionResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	filter.EmployeeID = &claims.EmployeeID
	filter.EmployeeCode = nil
	return s.list(ctx, filter)
}

// List implements commission.CommissionService.
func (s *CommissionServiceImpl) List(ctx context.Context, filter commission.CommissionFilter) (commission.ListCommissionResponse, error) {
	filter.EmployeeID = nil
	return s.list(ctx, filter)
}

func (s *CommissionServiceImpl) list(ctx context.Context, filter commission.CommissionFilter) (commission.ListCommissionResponse, error) {
	if err := filter.Validate(); err != nil {
		return commission.ListCommissionResponse{}, err
	}

	commissions, total, err := s.CommissionRepository.List(ctx, filter)
	if err != nil {
		return commission.ListCommissionResponse{}, fmt.Errorf("failed to list commissions: %w", err)
	}

	responses := make([]commission.CommissionResponse, 0, len(commissions))
	for _, c := range commissions {
		responses = append(responses, toResponse(c))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min(filter.Page*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return commission.ListCommissionResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Showing:     showing,
		Commissions: responses,
	}, nil
}

func toResponse(c commission.Commission) commission.CommissionResponse {
	return commission.CommissionResponse{
		ID:           c.ID,
		EmployeeID:   c.EmployeeID,
		EmployeeCode: c.EmployeeCode,
		EmployeeName: c.EmployeeName,
		Date:         c.Date.Format("2006-01-02"),
		Reason:       c.Reason,
		DepartedAt:   timeutil.ClockPtr(c.DepartedAt),
		ReturnedAt:   timeutil.ClockPtr(c.ReturnedAt),
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
	}
}
