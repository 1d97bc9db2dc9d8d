package report

import "errors"

var (
	ErrNoExportFilter = errors.New("at least one filter is required: date, start_date, end_date, month and year, year or employee_code")
)
