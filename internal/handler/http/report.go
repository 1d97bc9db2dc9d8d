package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/limatime/attendance-backend-go/internal/domain/report"
	"github.com/limatime/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Attendance spreadsheet
	ExportAttendance(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// ExportAttendance handles GET /attendance/export
func (h *reportHandlerImpl) ExportAttendance(w http.ResponseWriter, r *http.Request) {
	filter, err := parseAttendanceFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.ExportAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Content); err != nil {
		slog.Error("Failed to write export", "error", err, "filename", result.Filename)
	}
}
