package leave

import (
	"github.com/limatime/attendance-backend-go/internal/pkg/validator"
)

type CreatePermitRequest struct {
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Reason string `json:"reason" validate:"required,max=500"`
}

func (r *CreatePermitRequest) Validate() error {
	return validator.ValidateStruct(r)
}

type PermitResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	Reason       string  `json:"reason"`
	CreatedAt    string  `json:"created_at"`
}

type PermitFilter struct {
	EmployeeID   *string `json:"-"`
	EmployeeCode *string `json:"employee_code,omitempty" validate:"omitempty,max=20"`
	StartDate    *string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate      *string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`

	// Pagination
	Page  int `json:"page" validate:"gte=0"`
	Limit int `json:"limit" validate:"gte=0,lte=100"`
}

func (f *PermitFilter) Validate() error {
	if err := validator.ValidateStruct(f); err != nil {
		return err
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	return nil
}

type ListPermitResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Showing    string           `json:"showing"`
	Permits    []PermitResponse `json:"permits"`
}
