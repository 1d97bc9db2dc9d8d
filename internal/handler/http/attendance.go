package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/limatime/attendance-backend-go/internal/domain/attendance"
	"github.com/limatime/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Punch(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Punch implements AttendanceHandler.
func (h *attendanceHandlerImpl) Punch(w http.ResponseWriter, r *http.Request) {
	var req attendance.PunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Punch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Punch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.Today(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

// History implements AttendanceHandler.
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := attendance.HistoryFilter{
		StartDate: q.String("start_date", "start"),
		EndDate:   q.String("end_date", "end"),
		Page:      q.IntOr("page", 0),
		Limit:     q.IntOr("limit", 0),
	}
	if err := q.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.History(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, listMeta(result))
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseAttendanceFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.ListAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, listMeta(result))
}

// parseAttendanceFilter reads the supervisor filters shared by the listing and the export.
func parseAttendanceFilter(r *http.Request) (attendance.AttendanceFilter, error) {
	q := newQueryParams(r)
	filter := attendance.AttendanceFilter{
		Date:         q.String("date"),
		StartDate:    q.String("start_date", "start"),
		EndDate:      q.String("end_date", "end"),
		Month:        q.Int("month"),
		Year:         q.Int("year"),
		EmployeeCode: q.String("employee_code"),
		Page:         q.IntOr("page", 0),
		Limit:        q.IntOr("limit", 0),
	}
	if sortOrder := q.String("sort_order"); sortOrder != nil {
		filter.SortOrder = *sortOrder
	}
	if all := q.Bool("all"); all != nil {
		filter.All = *all
	}
	return filter, q.Err()
}

func listMeta(result attendance.ListAttendanceResponse) *response.Meta {
	return &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	}
}
