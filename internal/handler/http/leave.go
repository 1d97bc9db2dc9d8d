package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/limatime/attendance-backend-go/internal/domain/leave"
	"github.com/limatime/attendance-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	CreatePermit(w http.ResponseWriter, r *http.Request)
	GetMyPermits(w http.ResponseWriter, r *http.Request)
	ListPermits(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	permitService leave.PermitService
}

// CreatePermit implements LeaveHandler.
func (l *LeaveHandlerImpl) CreatePermit(w http.ResponseWriter, r *http.Request) {
	var req leave.CreatePermitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreatePermit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := l.permitService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave permit filed successfully", result)
}

// GetMyPermits implements LeaveHandler.
func (l *LeaveHandlerImpl) GetMyPermits(w http.ResponseWriter, r *http.Request) {
	filter, err := parsePermitFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := l.permitService.ListMine(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListPermits implements LeaveHandler.
func (l *LeaveHandlerImpl) ListPermits(w http.ResponseWriter, r *http.Request) {
	filter, err := parsePermitFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := l.permitService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func parsePermitFilter(r *http.Request) (leave.PermitFilter, error) {
	q := newQueryParams(r)
	filter := leave.PermitFilter{
		EmployeeCode: q.String("employee_code"),
		StartDate:    q.String("start_date", "start"),
		EndDate:      q.String("end_date", "end"),
		Page:         q.IntOr("page", 0),
		Limit:        q.IntOr("limit", 0),
	}
	return filter, q.Err()
}

func NewLeaveHandler(permitService leave.PermitService) LeaveHandler {
	return &LeaveHandlerImpl{
		permitService: permitService,
	}
}
