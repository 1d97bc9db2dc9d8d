package employee

import (
	"strings"
	"time"

	"github.com/limatime/attendance-backend-go/internal/domain/user"
	"github.com/limatime/attendance-backend-go/internal/pkg/validator"
)

type EmployeeResponse struct {
	ID           string  `json:"id"`
	DNI          string  `json:"dni"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	DOB          *string `json:"dob,omitempty"`
	EmployeeCode string  `json:"employee_code"`
	HireDate     string  `json:"hire_date"`
	IsActive     bool    `json:"is_active"`
	Role         string  `json:"role"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// ToResponse maps an entity to its public shape, never exposing the password hash.
func ToResponse(e Employee) EmployeeResponse {
	var dob *string
	if e.DOB != nil {
		s := e.DOB.Format("2006-01-02")
		dob = &s
	}
	return EmployeeResponse{
		ID:           e.ID,
		DNI:          e.DNI,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		FullName:     e.FullName(),
		Email:        e.Email,
		PhoneNumber:  e.PhoneNumber,
		DOB:          dob,
		EmployeeCode: e.EmployeeCode,
		HireDate:     e.HireDate.Format("2006-01-02"),
		IsActive:     e.IsActive,
		Role:         string(e.Role),
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    e.UpdatedAt.Format(time.RFC3339),
	}
}

type EmployeeFilter struct {
	Search   *string `json:"search,omitempty"` // name, code or DNI
	IsActive *bool   `json:"is_active,omitempty"`
	Role     *string `json:"role,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Role != nil && !user.Role(*f.Role).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: employee, supervisor",
		})
	}

	if f.Search != nil {
		s := strings.TrimSpace(*f.Search)
		f.Search = &s
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Showing    string             `json:"showing"`
	Employees  []EmployeeResponse `json:"employees"`
}

type UpdateEmployeeRequest struct {
	ID       string  `json:"-"`
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}
	if r.Role == nil && r.IsActive == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: ErrNothingToUpdate.Error(),
		})
	}
	if r.Role != nil && !user.Role(*r.Role).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: employee, supervisor",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
