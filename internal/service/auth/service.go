package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/limatime/attendance-backend-go/internal/domain/auth"
	"github.com/limatime/attendance-backend-go/internal/domain/employee"
	"github.com/limatime/attendance-backend-go/internal/domain/user"
	"github.com/limatime/attendance-backend-go/internal/pkg/jwt"
	"github.com/limatime/attendance-backend-go/internal/pkg/timeutil"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	employee.EmployeeRepository
	jwt.Service
	now func() time.Time
}

func NewAuthService(employeeRepository employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		EmployeeRepository: employeeRepository,
		Service:            jwtService,
		now:                time.Now,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// Register implements auth.AuthService. New accounts always start as active employees.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	passwordHash, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	hireDate := timeutil.DateOf(a.now())
	if req.HireDate != nil && *req.HireDate != "" {
		hireDate, _ = time.Parse("2006-01-02", *req.HireDate)
	}

	var dob *time.Time
	if req.DOB != nil && *req.DOB != "" {
		parsed, _ := time.Parse("2006-01-02", *req.DOB)
		dob = &parsed
	}

	created, err := a.EmployeeRepository.Create(ctx, employee.Employee{
		DNI:          req.DNI,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		DOB:          dob,
		EmployeeCode: req.EmployeeCode,
		PasswordHash: passwordHash,
		HireDate:     hireDate,
		IsActive:     true,
		Role:         user.RoleEmployee,
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return a.issueToken(created)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	employeeData, err := a.EmployeeRepository.GetByEmployeeCode(ctx, req.EmployeeCode)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee by code: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employeeData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	// Checked after the password so the response does not reveal which codes exist.
	if !employeeData.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	return a.issueToken(employeeData)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return auth.ErrInvalidToken
	}
	if err := a.Service.RevokeToken(token); err != nil {
		return fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}
	return nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context) (employee.EmployeeResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeData, err := a.EmployeeRepository.GetByID(ctx, claims.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, auth.ErrUserNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return employee.ToResponse(employeeData), nil
}

func (a *AuthServiceImpl) issueToken(emp employee.Employee) (auth.TokenResponse, error) {
	token, expiresAt, err := a.Service.GenerateAccessToken(emp.ID, emp.EmployeeCode, emp.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		Employee:    employee.ToResponse(emp),
	}, nil
}
