package auth

import (
	"strings"
	"time"

	"github.com/limatime/attendance-backend-go/internal/domain/employee"
	"github.com/limatime/attendance-backend-go/internal/pkg/validator"
)

type RegisterRequest struct {
	DNI             string  `json:"dni"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Email           string  `json:"email"`
	PhoneNumber     *string `json:"phone_number,omitempty"`
	DOB             *string `json:"dob,omitempty"`
	EmployeeCode    string  `json:"employee_code"`
	HireDate        *string `json:"hire_date,omitempty"`
	Password        string  `json:"password"`
	ConfirmPassword string  `json:"confirm_password"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmployeeCode = strings.ToUpper(strings.TrimSpace(r.EmployeeCode))
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))

	// Identity
	if !validator.IsValidDNI(r.DNI) {
		errs = append(errs, validator.ValidationError{
			Field:   "dni",
			Message: "dni must be exactly 8 digits",
		})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}
	if len(r.FirstName) > 100 || len(r.LastName) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "first_name and last_name must not exceed 100 characters",
		})
	}

	// Contact
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if r.PhoneNumber != nil && *r.PhoneNumber != "" && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number must be a 9 digit mobile number starting with 9",
		})
	}

	// Dates
	if r.DOB != nil && *r.DOB != "" {
		dob, valid := validator.IsValidDate(*r.DOB)
		if !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "dob",
				Message: "dob must be in YYYY-MM-DD format",
			})
		} else if dob.After(time.Now()) {
			errs = append(errs, validator.ValidationError{
				Field:   "dob",
				Message: "dob cannot be in the future",
			})
		}
	}
	if r.HireDate != nil && *r.HireDate != "" {
		if _, valid := validator.IsValidDate(*r.HireDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}

	// Account
	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code must look like ADM001 (2-5 letters then 3-6 digits)",
		})
	}
	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters long",
		})
	}
	if len(r.Password) > 72 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must not exceed 72 characters",
		})
	}
	if r.Password != r.ConfirmPassword {
		errs = append(errs, validator.ValidationError{
			Field:   "confirm_password",
			Message: "confirm_password must match password",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginRequest struct {
	EmployeeCode string `json:"employee_code"`
	Password     string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmployeeCode = strings.ToUpper(strings.TrimSpace(r.EmployeeCode))

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	AccessToken string                    `json:"access_token"`
	TokenType   string                    `json:"token_type"`
	ExpiresAt   int64                     `json:"expires_at"`
	Employee    employee.EmployeeResponse `json:"employee"`
}
