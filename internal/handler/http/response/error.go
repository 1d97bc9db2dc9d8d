package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/limatime/attendance-backend-go/internal/domain/attendance"
	"github.com/limatime/attendance-backend-go/internal/domain/auth"
	"github.com/limatime/attendance-backend-go/internal/domain/commission"
	"github.com/limatime/attendance-backend-go/internal/domain/employee"
	"github.com/limatime/attendance-backend-go/internal/domain/leave"
	"github.com/limatime/attendance-backend-go/internal/domain/report"
	"github.com/limatime/attendance-backend-go/internal/domain/schedule"
	"github.com/limatime/attendance-backend-go/internal/domain/user"
	"github.com/limatime/attendance-backend-go/internal/pkg/timeutil"
	"github.com/limatime/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Punch errors carry the offending punch in details
	var markedErr *attendance.AlreadyMarkedError
	if errors.As(err, &markedErr) {
		BadRequestWithCode(w, "ALREADY_MARKED", markedErr.Error(), map[string]string{
			"punch_kind": string(markedErr.Kind),
			"marked_at":  timeutil.Clock(markedErr.MarkedAt),
		})
		return
	}
	var sequenceErr *attendance.SequenceError
	if errors.As(err, &sequenceErr) {
		BadRequestWithCode(w, "OUT_OF_SEQUENCE", sequenceErr.Error(), map[string]string{
			"punch_kind": string(sequenceErr.Kind),
			"requires":   string(sequenceErr.Requires),
		})
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidPunchKind):
		BadRequestWithCode(w, "INVALID_PUNCH_KIND", err.Error(), nil)
	case errors.Is(err, attendance.ErrConcurrentPunch):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountInactive), errors.Is(err, user.ErrInactiveAccount):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrSupervisorAccessRequired), errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrDNIExists):
		Conflict(w, "DNI already registered")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrCannotChangeSelf):
		Forbidden(w, err.Error())

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotConfigured):
		NotFound(w, "Schedule is not configured")
	case errors.Is(err, schedule.ErrInvalidWorkdaysRule), errors.Is(err, schedule.ErrScheduleOutOfOrder):
		BadRequest(w, err.Error(), nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrPermitNotFound):
		NotFound(w, "Leave permit not found")
	case errors.Is(err, leave.ErrPermitAlreadyFiled):
		Conflict(w, err.Error())

	// Commission domain errors
	case errors.Is(err, commission.ErrCommissionNotFound):
		NotFound(w, "Commission not found")
	case errors.Is(err, commission.ErrNotCommissionOwner):
		Forbidden(w, err.Error())
	case errors.Is(err, commission.ErrDepartureAlreadyMarked),
		errors.Is(err, commission.ErrDepartureRequired),
		errors.Is(err, commission.ErrReturnAlreadyMarked):
		BadRequest(w, err.Error(), nil)

	// Report domain errors
	case errors.Is(err, report.ErrNoExportFilter):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
