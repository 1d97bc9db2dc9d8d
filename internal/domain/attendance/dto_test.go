package attendance

import (
	"testing"

	"github.com/limatime/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestPunchRequest_Validate(t *testing.T) {
	assert.NoError(t, (&PunchRequest{PunchKind: "lunch_in"}).Validate())
	assert.ErrorIs(t, (&PunchRequest{PunchKind: "salida"}).Validate(), ErrInvalidPunchKind)

	var errs validator.ValidationErrors
	require.ErrorAs(t, (&PunchRequest{}).Validate(), &errs)
	assert.Equal(t, "punch_kind is required", errs.ToMap()["punch_kind"])
}

func TestHistoryFilter_Validate_Defaults(t *testing.T) {
	f := HistoryFilter{}
	require.NoError(t, f.Validate())
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 20, f.Limit)
}

func TestHistoryFilter_Validate_RangeOrder(t *testing.T) {
	f := HistoryFilter{StartDate: strPtr("2025-10-09"), EndDate: strPtr("2025-10-01")}

	var errs validator.ValidationErrors
	require.ErrorAs(t, f.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "end_date")
}

func TestAttendanceFilter_Validate(t *testing.T) {
	month, year := 13, 2025
	f := AttendanceFilter{Month: &month, Limit: 500}

	var errs validator.ValidationErrors
	require.ErrorAs(t, f.Validate(), &errs)
	details := errs.ToMap()
	assert.Contains(t, details, "month")
	assert.Contains(t, details, "year")
	assert.Contains(t, details, "limit")

	month = 10
	ok := AttendanceFilter{Month: &month, Year: &year, EmployeeCode: strPtr(" pla004 ")}
	require.NoError(t, ok.Validate())
	assert.Equal(t, "PLA004", *ok.EmployeeCode)
	assert.Equal(t, "desc", ok.SortOrder)
}

func TestAttendanceFilter_AllSkipsPagination(t *testing.T) {
	f := AttendanceFilter{All: true, Limit: 100000}
	require.NoError(t, f.Validate())
	assert.Equal(t, 1, f.Page)
}

func TestAttendanceFilter_HasCriteria(t *testing.T) {
	assert.False(t, (&AttendanceFilter{}).HasCriteria())
	assert.False(t, (&AttendanceFilter{All: true, Date: strPtr("  ")}).HasCriteria())
	assert.True(t, (&AttendanceFilter{Date: strPtr("2025-10-08")}).HasCriteria())
	assert.True(t, (&AttendanceFilter{EmployeeCode: strPtr("PLA004")}).HasCriteria())
}
