package attendance

import (
	"strings"

	"github.com/limatime/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// PUNCH DTOs
// ========================================

type PunchRequest struct {
	PunchKind string `json:"punch_kind"`
}

func (r *PunchRequest) Validate() error {
	if validator.IsEmpty(r.PunchKind) {
		return validator.ValidationErrors{{
			Field:   "punch_kind",
			Message: "punch_kind is required",
		}}
	}
	if _, err := ParsePunchKind(r.PunchKind); err != nil {
		return err
	}
	return nil
}

type PunchResponse struct {
	PunchKind  PunchKind  `json:"punch_kind"`
	Label      string     `json:"label"`
	Date       string     `json:"date"`
	Time       string     `json:"time"`
	Message    string     `json:"message"`
	Evaluation Evaluation `json:"evaluation"`
	Summary    Summary    `json:"summary"`
}

// ========================================
// READ DTOs
// ========================================

type AttendanceResponse struct {
	ID           string        `json:"id"`
	EmployeeID   string        `json:"employee_id"`
	EmployeeCode *string       `json:"employee_code,omitempty"`
	EmployeeName *string       `json:"employee_name,omitempty"`
	Date         string        `json:"date"`
	CheckIn      *string       `json:"check_in"`
	LunchOut     *string       `json:"lunch_out"`
	LunchIn      *string       `json:"lunch_in"`
	CheckOut     *string       `json:"check_out"`
	Summary      Summary       `json:"summary"`
	Evaluation   DayEvaluation `json:"evaluation"`
	CreatedAt    string        `json:"created_at"`
	UpdatedAt    string        `json:"updated_at"`
}

type TodayResponse struct {
	Date      string              `json:"date"`
	IsWorkday bool                `json:"is_workday"`
	Record    *AttendanceResponse `json:"record"`
	Summary   Summary             `json:"summary"`
	Message   string              `json:"message,omitempty"`
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Showing     string               `json:"showing"`
	Attendances []AttendanceResponse `json:"attendances"`
}

// ========================================
// FILTERS
// ========================================

// HistoryFilter scopes the caller's own records.
type HistoryFilter struct {
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *HistoryFilter) Validate() error {
	var errs validator.ValidationErrors

	errs = append(errs, validatePagination(&f.Page, &f.Limit)...)
	errs = append(errs, validateRange(f.StartDate, f.EndDate)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceFilter scopes the supervisor listing and the spreadsheet export.
type AttendanceFilter struct {
	// Search & Filter
	Date         *string `json:"date,omitempty"`       // YYYY-MM-DD
	StartDate    *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate      *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Month        *int    `json:"month,omitempty"`
	Year         *int    `json:"year,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`

	// All disables pagination
	All bool `json:"all"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting by date
	SortOrder string `json:"sort_order"` // asc, desc
}

// HasCriteria reports whether at least one narrowing filter is present.
func (f *AttendanceFilter) HasCriteria() bool {
	return nonEmpty(f.Date) || nonEmpty(f.StartDate) || nonEmpty(f.EndDate) ||
		f.Month != nil || f.Year != nil || nonEmpty(f.EmployeeCode)
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.All {
		f.Page = 1
	} else {
		errs = append(errs, validatePagination(&f.Page, &f.Limit)...)
	}

	if nonEmpty(f.Date) {
		if _, valid := validator.IsValidDate(*f.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	errs = append(errs, validateRange(f.StartDate, f.EndDate)...)

	if f.Month != nil {
		if *f.Month < 1 || *f.Month > 12 {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be between 1 and 12",
			})
		}
		if f.Year == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "year",
				Message: "year is required when month is given",
			})
		}
	}

	if f.Year != nil && (*f.Year < 2000 || *f.Year > 2100) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if nonEmpty(f.EmployeeCode) {
		code := strings.ToUpper(strings.TrimSpace(*f.EmployeeCode))
		f.EmployeeCode = &code
	}

	if f.SortOrder != "" {
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), []string{"asc", "desc"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "desc" // Default descending (newest first)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validatePagination(page, limit *int) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if *page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if *page == 0 {
		*page = 1 // Default page
	}

	if *limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if *limit == 0 {
		*limit = 20 // Default limit
	}
	if *limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}
	return errs
}

func validateRange(start, end *string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	startOK, endOK := false, false
	if nonEmpty(start) {
		if _, startOK = validator.IsValidDate(*start); !startOK {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if nonEmpty(end) {
		if _, endOK = validator.IsValidDate(*end); !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	// ISO dates compare lexically
	if startOK && endOK && *start > *end {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}
	return errs
}

func nonEmpty(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
