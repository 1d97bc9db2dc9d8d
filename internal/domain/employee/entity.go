package employee

import (
	"time"

	"github.com/limatime/attendance-backend-go/internal/domain/user"
)

type Employee struct {
	ID           string
	DNI          string
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  *string
	DOB          *time.Time
	EmployeeCode string
	PasswordHash string
	HireDate     time.Time
	IsActive     bool
	Role         user.Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
