package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/limatime/attendance-backend-go/internal/domain/attendance"
	"github.com/limatime/attendance-backend-go/internal/domain/auth"
	"github.com/limatime/attendance-backend-go/internal/domain/employee"
	"github.com/limatime/attendance-backend-go/internal/domain/report"
	"github.com/limatime/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandleError_StatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", validator.ValidationErrors{{Field: "punch_kind", Message: "punch_kind is required"}}, http.StatusBadRequest},
		{"invalid kind", attendance.ErrInvalidPunchKind, http.StatusBadRequest},
		{"sequence", &attendance.SequenceError{Kind: attendance.PunchLunchOut, Requires: attendance.PunchCheckIn, Message: "must check in before lunch out"}, http.StatusBadRequest},
		{"concurrent", attendance.ErrConcurrentPunch, http.StatusConflict},
		{"credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"inactive", auth.ErrAccountInactive, http.StatusForbidden},
		{"not found wrapped", fmt.Errorf("lookup: %w", employee.ErrEmployeeNotFound), http.StatusNotFound},
		{"duplicate dni", employee.ErrDNIExists, http.StatusConflict},
		{"no export filter", report.ErrNoExportFilter, http.StatusBadRequest},
		{"storage", errors.New("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)
			assert.Equal(t, tt.code, rec.Code)
			assert.False(t, decode(t, rec).Success)
		})
	}
}

func TestHandleError_AlreadyMarkedDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	markedAt := time.Date(2025, 10, 8, 13, 2, 9, 0, time.UTC)

	HandleError(rec, &attendance.AlreadyMarkedError{Kind: attendance.PunchCheckIn, MarkedAt: markedAt})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "ALREADY_MARKED", resp.Error.Code)
	assert.Equal(t, "Check-in already marked at 08:02:09", resp.Error.Message)
	assert.Equal(t, "08:02:09", resp.Error.Details["marked_at"])
}

func TestValidationError_Is400(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"date": "date is required"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "date is required", resp.Error.Details["date"])
}
