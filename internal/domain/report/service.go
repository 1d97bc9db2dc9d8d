package report

import (
	"context"

	"github.com/limatime/attendance-backend-go/internal/domain/attendance"
)

type ReportService interface {
	// ExportAttendance renders the filtered attendance as an .xlsx workbook
	ExportAttendance(ctx context.Context, filter attendance.AttendanceFilter) (ExportResult, error)
}
