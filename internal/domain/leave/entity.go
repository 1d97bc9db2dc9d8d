package leave

import "time"

// Permit is a dated leave permission filed by an employee.
type Permit struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Reason     string
	CreatedAt  time.Time

	// DTO / Join
	EmployeeCode *string
	EmployeeName *string
}
