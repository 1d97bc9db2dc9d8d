package leave

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/limatime/attendance-backend-go/internal/domain/leave"
	"github.com/limatime/attendance-backend-go/internal/pkg/jwt"
)

type PermitServiceImpl struct {
	leave.PermitRepository
}

func NewPermitService(permitRepo leave.PermitRepository) leave.PermitService {
	return &PermitServiceImpl{PermitRepository: permitRepo}
}

// Create implements leave.PermitService.
func (s *PermitServiceImpl) Create(ctx context.Context, req leave.CreatePermitRequest) (leave.PermitResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.PermitResponse{}, err
	}

	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return leave.PermitResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	created, err := s.PermitRepository.Create(ctx, leave.Permit{
		EmployeeID: claims.EmployeeID,
		Date:       date,
		Reason:     req.Reason,
	})
	if err != nil {
		return leave.PermitResponse{}, err
	}
	return toResponse(created), nil
}

// ListMine implements leave.PermitService.
func (s *PermitServiceImpl) ListMine(ctx context.Context, filter leave.PermitFilter) (leave.ListPermitResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return leave.ListPermitResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	filter.EmployeeID = &claims.EmployeeID
	filter.EmployeeCode = nil
	return s.list(ctx, filter)
}

// List implements leave.PermitService.
func (s *PermitServiceImpl) List(ctx context.Context, filter leave.PermitFilter) (leave.ListPermitResponse, error) {
	filter.EmployeeID = nil
	return s.list(ctx, filter)
}

func (s *PermitServiceImpl) list(ctx context.Context, filter leave.PermitFilter) (leave.ListPermitResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListPermitResponse{}, err
	}

	permits, total, err := s.PermitRepository.List(ctx, filter)
	if err != nil {
		return leave.ListPermitResponse{}, fmt.Errorf("failed to list leave permits: %w", err)
	}

	responses := make([]leave.PermitResponse, 0, len(permits))
	for _, p := range permits {
		responses = append(responses, toResponse(p))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min(filter.Page*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return leave.ListPermitResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Showing:    showing,
		Permits:    responses,
	}, nil
}

func toResponse(p leave.Permit) leave.PermitResponse {
	return leave.PermitResponse{
		ID:           p.ID,
		EmployeeID:   p.EmployeeID,
		EmployeeCode: p.EmployeeCode,
		EmployeeName: p.EmployeeName,
		Date:         p.Date.Format("2006-01-02"),
		Reason:       p.Reason,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
}
