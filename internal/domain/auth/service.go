package auth

import (
	"context"

	"github.com/limatime/attendance-backend-go/internal/domain/employee"
)

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context) (employee.EmployeeResponse, error)
}
