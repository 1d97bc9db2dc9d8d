package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/limatime/attendance-backend-go/internal/domain/attendance"
	"github.com/limatime/attendance-backend-go/internal/domain/report"
	"github.com/limatime/attendance-backend-go/internal/domain/schedule"
	"github.com/limatime/attendance-backend-go/internal/pkg/timeutil"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
)

const (
	attendanceSheet = "Attendance"
	summarySheet    = "Summary"

	lateFill  = "#FFC7CE"
	earlyFill = "#BDD7EE"
)

var attendanceHeader = []interface{}{
	"Date", "Employee code", "Employee name", "Check-in", "Lunch out", "Lunch return", "Check-out", "Hours worked",
}

// punch columns D..G follow attendance.PunchOrder
var punchColumns = map[attendance.PunchKind]int{
	attendance.PunchCheckIn:  4,
	attendance.PunchLunchOut: 5,
	attendance.PunchLunchIn:  6,
	attendance.PunchCheckOut: 7,
}

type ReportServiceImpl struct {
	attendance.AttendanceRepository
	schedule.ScheduleRepository
}

func NewReportService(attendanceRepo attendance.AttendanceRepository, scheduleRepo schedule.ScheduleRepository) report.ReportService {
	return &ReportServiceImpl{
		AttendanceRepository: attendanceRepo,
		ScheduleRepository:   scheduleRepo,
	}
}

// ExportAttendance implements report.ReportService.
func (s *ReportServiceImpl) ExportAttendance(ctx context.Context, filter attendance.AttendanceFilter) (report.ExportResult, error) {
	if err := filter.Validate(); err != nil {
		return report.ExportResult{}, err
	}
	if !filter.HasCriteria() {
		return report.ExportResult{}, report.ErrNoExportFilter
	}

	filter.All = true
	filter.SortOrder = "asc"

	var (
		cfg  *schedule.Config
		rows []attendance.Attendance
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		loaded, err := s.ScheduleRepository.Get(gctx)
		if err != nil {
			if errors.Is(err, schedule.ErrScheduleNotConfigured) {
				return nil
			}
			return fmt.Errorf("failed to get schedule config: %w", err)
		}
		cfg = &loaded
		return nil
	})
	g.Go(func() error {
		var err error
		rows, _, err = s.AttendanceRepository.List(gctx, filter)
		if err != nil {
			return fmt.Errorf("failed to list attendances: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return report.ExportResult{}, err
	}

	content, err := buildWorkbook(rows, cfg, filter)
	if err != nil {
		return report.ExportResult{}, fmt.Errorf("failed to build workbook: %w", err)
	}

	slog.Info("attendance exported", "rows", len(rows), "bytes", len(content))

	return report.ExportResult{
		Filename:    report.ExportFilename(filter),
		ContentType: report.SpreadsheetContentType,
		Content:     content,
		RowCount:    len(rows),
	}, nil
}

type workbookStyles struct {
	header int
	late   int
	early  int
}

func newStyles(f *excelize.File) (workbookStyles, error) {
	var styles workbookStyles
	var err error

	styles.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9D9D9"}, Pattern: 1},
	})
	if err != nil {
		return styles, err
	}
	styles.late, err = f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{lateFill}, Pattern: 1},
	})
	if err != nil {
		return styles, err
	}
	styles.early, err = f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{earlyFill}, Pattern: 1},
	})
	return styles, err
}

func buildWorkbook(rows []attendance.Attendance, cfg *schedule.Config, filter attendance.AttendanceFilter) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("failed to close workbook", "error", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", attendanceSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}

	styles, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	if err := writeAttendanceSheet(f, styles, rows, cfg); err != nil {
		return nil, err
	}
	if err := writeSummarySheet(f, styles, rows, cfg, filter); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeAttendanceSheet(f *excelize.File, styles workbookStyles, rows []attendance.Attendance, cfg *schedule.Config) error {
	if err := f.SetSheetRow(attendanceSheet, "A1", &attendanceHeader); err != nil {
		return err
	}
	if err := f.SetCellStyle(attendanceSheet, "A1", "H1", styles.header); err != nil {
		return err
	}
	if err := f.SetColWidth(attendanceSheet, "A", "B", 14); err != nil {
		return err
	}
	if err := f.SetColWidth(attendanceSheet, "C", "C", 30); err != nil {
		return err
	}
	if err := f.SetColWidth(attendanceSheet, "D", "H", 13); err != nil {
		return err
	}

	for i, att := range rows {
		rowNum := i + 2
		values := []interface{}{
			att.Date.Format("2006-01-02"),
			deref(att.EmployeeCode),
			deref(att.EmployeeName),
			timeutil.ShortClock(att.CheckIn),
			timeutil.ShortClock(att.LunchOut),
			timeutil.ShortClock(att.LunchIn),
			timeutil.ShortClock(att.CheckOut),
		}
		start, _ := excelize.CoordinatesToCellName(1, rowNum)
		if err := f.SetSheetRow(attendanceSheet, start, &values); err != nil {
			return err
		}

		hoursCell, _ := excelize.CoordinatesToCellName(8, rowNum)
		if hours := hoursWorked(att); hours != nil {
			if err := f.SetCellFloat(attendanceSheet, hoursCell, hours.InexactFloat64(), 2, 64); err != nil {
				return err
			}
		} else if err := f.SetCellValue(attendanceSheet, hoursCell, timeutil.EmptyCell); err != nil {
			return err
		}

		eval := attendance.EvaluateDay(att, cfg)
		for _, kind := range attendance.PunchOrder {
			style := 0
			switch eval.ByKind(kind).Status {
			case attendance.StatusLate:
				style = styles.late
			case attendance.StatusEarly:
				style = styles.early
			default:
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(punchColumns[kind], rowNum)
			if err := f.SetCellStyle(attendanceSheet, cell, cell, style); err != nil {
				return err
			}
		}
	}

	return f.SetPanes(attendanceSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// hoursWorked is check-out minus check-in minus the lunch break, in hours rounded to 2 places.
// A day without both check-in and check-out has no value.
func hoursWorked(att attendance.Attendance) *decimal.Decimal {
	if att.CheckIn == nil || att.CheckOut == nil {
		return nil
	}

	worked := att.CheckOut.Sub(*att.CheckIn)
	if att.LunchOut != nil && att.LunchIn != nil {
		worked -= att.LunchIn.Sub(*att.LunchOut)
	}
	if worked < 0 {
		worked = 0
	}

	hours := decimal.NewFromInt(int64(worked / time.Minute)).Div(decimal.NewFromInt(60)).Round(2)
	return &hours
}

type employeeTotals struct {
	code  string
	name  string
	days  int
	late  int
	early int
	hours decimal.Decimal
}

func writeSummarySheet(f *excelize.File, styles workbookStyles, rows []attendance.Attendance, cfg *schedule.Config, filter attendance.AttendanceFilter) error {
	start, end, hasPeriod := exportPeriod(filter, rows)

	rules := schedule.Config{WorkdaysRule: schedule.DefaultWorkdaysRule}
	if cfg != nil {
		rules = *cfg
	}

	workdays := 0
	period := timeutil.EmptyCell
	if hasPeriod {
		days, err := rules.Workdays(start, end)
		if err != nil {
			return err
		}
		workdays = len(days)
		period = fmt.Sprintf("%s to %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	dates := make(map[string]struct{})
	byEmployee := make(map[string]*employeeTotals)
	totalHours := decimal.Zero
	lateCount, earlyCount := 0, 0

	for _, att := range rows {
		dates[att.Date.Format("2006-01-02")] = struct{}{}

		totals, ok := byEmployee[att.EmployeeID]
		if !ok {
			totals = &employeeTotals{code: deref(att.EmployeeCode), name: deref(att.EmployeeName)}
			byEmployee[att.EmployeeID] = totals
		}
		totals.days++

		eval := attendance.EvaluateDay(att, cfg)
		if eval.CheckIn.Status == attendance.StatusLate {
			totals.late++
			lateCount++
		}
		if eval.CheckOut.Status == attendance.StatusEarly {
			totals.early++
			earlyCount++
		}
		if hours := hoursWorked(att); hours != nil {
			totals.hours = totals.hours.Add(*hours)
			totalHours = totalHours.Add(*hours)
		}
	}

	overview := [][]interface{}{
		{"Period", period},
		{"Workdays in period", workdays},
		{"Days recorded", len(dates)},
		{"Records", len(rows)},
		{"Late arrivals", lateCount},
		{"Early departures", earlyCount},
		{"Hours worked", totalHours.InexactFloat64()},
	}
	for i, row := range overview {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(summarySheet, "A1", fmt.Sprintf("A%d", len(overview)), styles.header); err != nil {
		return err
	}

	headerRow := len(overview) + 2
	header := []interface{}{"Employee code", "Employee name", "Days recorded", "Late arrivals", "Early departures", "Hours worked"}
	headerCell, _ := excelize.CoordinatesToCellName(1, headerRow)
	if err := f.SetSheetRow(summarySheet, headerCell, &header); err != nil {
		return err
	}
	headerEnd, _ := excelize.CoordinatesToCellName(len(header), headerRow)
	if err := f.SetCellStyle(summarySheet, headerCell, headerEnd, styles.header); err != nil {
		return err
	}

	employees := make([]*employeeTotals, 0, len(byEmployee))
	for _, totals := range byEmployee {
		employees = append(employees, totals)
	}
	sort.Slice(employees, func(i, j int) bool { return employees[i].code < employees[j].code })

	for i, totals := range employees {
		row := []interface{}{totals.code, totals.name, totals.days, totals.late, totals.early, totals.hours.InexactFloat64()}
		cell, _ := excelize.CoordinatesToCellName(1, headerRow+1+i)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(summarySheet, "A", "A", 20); err != nil {
		return err
	}
	return f.SetColWidth(summarySheet, "B", "B", 30)
}

// exportPeriod derives the reporting window from the filter, falling back to the span of rows.
func exportPeriod(filter attendance.AttendanceFilter, rows []attendance.Attendance) (time.Time, time.Time, bool) {
	parse := func(s *string) (time.Time, bool) {
		if s == nil || *s == "" {
			return time.Time{}, false
		}
		t, err := time.Parse("2006-01-02", *s)
		return t, err == nil
	}

	if day, ok := parse(filter.Date); ok {
		return day, day, true
	}

	var start, end time.Time
	switch {
	case filter.Month != nil && filter.Year != nil:
		start = time.Date(*filter.Year, time.Month(*filter.Month), 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(0, 1, -1)
	case filter.Year != nil:
		start = time.Date(*filter.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(*filter.Year, time.December, 31, 0, 0, 0, 0, time.UTC)
	}

	if from, ok := parse(filter.StartDate); ok && (start.IsZero() || from.After(start)) {
		start = from
	}
	if to, ok := parse(filter.EndDate); ok && (end.IsZero() || to.Before(end)) {
		end = to
	}

	if len(rows) > 0 {
		if start.IsZero() {
			start = rows[0].Date
		}
		if end.IsZero() {
			end = rows[len(rows)-1].Date
		}
	}

	if start.IsZero() || end.IsZero() || end.Before(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
