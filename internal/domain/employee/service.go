package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// ListEmployees lists employees with filters (supervisor only)
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)

	// ListActiveEmployees lists every active employee without pagination
	ListActiveEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// UpdateEmployee changes role or active flag (supervisor only, never on self)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
}
