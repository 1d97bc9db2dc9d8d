package report

import (
	"fmt"
	"strings"

	"github.com/limatime/attendance-backend-go/internal/domain/attendance"
)

const SpreadsheetContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportResult is a generated workbook ready to be streamed.
type ExportResult struct {
	Filename    string
	ContentType string
	Content     []byte
	RowCount    int
}

// ExportFilename names the workbook after the filters applied, e.g. attendance_2025-10_PLA004.xlsx.
func ExportFilename(f attendance.AttendanceFilter) string {
	parts := []string{"attendance"}

	switch {
	case f.Date != nil && *f.Date != "":
		parts = append(parts, *f.Date)
	case f.Month != nil && f.Year != nil:
		parts = append(parts, fmt.Sprintf("%04d-%02d", *f.Year, *f.Month))
	case f.Year != nil:
		parts = append(parts, fmt.Sprintf("%04d", *f.Year))
	}

	if f.StartDate != nil && *f.StartDate != "" {
		parts = append(parts, "from-"+*f.StartDate)
	}
	if f.EndDate != nil && *f.EndDate != "" {
		parts = append(parts, "to-"+*f.EndDate)
	}
	if f.EmployeeCode != nil && *f.EmployeeCode != "" {
		parts = append(parts, *f.EmployeeCode)
	}

	return strings.Join(parts, "_") + ".xlsx"
}
