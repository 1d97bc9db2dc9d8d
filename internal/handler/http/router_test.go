package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/limatime/attendance-backend-go/internal/domain/attendance"
	"github.com/limatime/attendance-backend-go/internal/domain/auth"
	"github.com/limatime/attendance-backend-go/internal/domain/commission"
	"github.com/limatime/attendance-backend-go/internal/domain/employee"
	"github.com/limatime/attendance-backend-go/internal/domain/leave"
	"github.com/limatime/attendance-backend-go/internal/domain/report"
	"github.com/limatime/attendance-backend-go/internal/domain/schedule"
	"github.com/limatime/attendance-backend-go/internal/domain/user"
	"github.com/limatime/attendance-backend-go/internal/handler/http/response"
	"github.com/limatime/attendance-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ========================================
// FAKES
// ========================================

type fakeAttendanceService struct {
	punchResult   attendance.PunchResponse
	punchErr      error
	lastHistory   attendance.HistoryFilter
	lastListQuery attendance.AttendanceFilter
}

func (f *fakeAttendanceService) Punch(ctx context.Context, req attendance.PunchRequest) (attendance.PunchResponse, error) {
	return f.punchResult, f.punchErr
}

func (f *fakeAttendanceService) Today(ctx context.Context) (attendance.TodayResponse, error) {
	return attendance.TodayResponse{Date: "2025-10-06", IsWorkday: true, Message: "No attendance recorded yet today"}, nil
}

func (f *fakeAttendanceService) History(ctx context.Context, filter attendance.HistoryFilter) (attendance.ListAttendanceResponse, error) {
	f.lastHistory = filter
	return attendance.ListAttendanceResponse{Page: 1, Limit: 20, Showing: "0 of 0", Attendances: []attendance.AttendanceResponse{}}, nil
}

func (f *fakeAttendanceService) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	f.lastListQuery = filter
	return attendance.ListAttendanceResponse{TotalCount: 1, Page: 1, Limit: 1, TotalPages: 1, Showing: "1-1 of 1"}, nil
}

type fakeReportService struct{}

func (fakeReportService) ExportAttendance(ctx context.Context, filter attendance.AttendanceFilter) (report.ExportResult, error) {
	if !filter.HasCriteria() {
		return report.ExportResult{}, report.ErrNoExportFilter
	}
	return report.ExportResult{
		Filename:    report.ExportFilename(filter),
		ContentType: report.SpreadsheetContentType,
		Content:     []byte("xlsx-bytes"),
	}, nil
}

type fakeAuthService struct {
	jwtService jwt.Service
}

func (f *fakeAuthService) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	return auth.TokenResponse{}, nil
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	return auth.TokenResponse{}, auth.ErrInvalidCredentials
}

func (f *fakeAuthService) Logout(ctx context.Context, token string) error {
	return f.jwtService.RevokeToken(token)
}

func (f *fakeAuthService) Me(ctx context.Context) (employee.EmployeeResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.EmployeeResponse{ID: claims.EmployeeID, EmployeeCode: claims.EmployeeCode, Role: string(claims.Role)}, nil
}

type fakeEmployeeService struct{ employee.EmployeeService }
type fakeScheduleService struct{ schedule.ScheduleService }
type fakePermitService struct{ leave.PermitService }

type fakeCommissionService struct{ commission.CommissionService }

func (fakeCommissionService) MarkReturn(ctx context.Context, id string) (commission.CommissionResponse, error) {
	return commission.CommissionResponse{}, commission.ErrDepartureRequired
}

// ========================================
// HELPERS
// ========================================

type testServer struct {
	handler    http.Handler
	jwtService jwt.Service
	attendance *fakeAttendanceService
}

func newTestServer() *testServer {
	jwtService := jwt.NewJWTService("router-test-secret", "1h")
	att := &fakeAttendanceService{}

	router := NewRouter(jwtService, Handlers{
		Auth:       NewAuthHandler(&fakeAuthService{jwtService: jwtService}),
		Attendance: NewAttendanceHandler(att),
		Report:     NewReportHandler(fakeReportService{}),
		Employee:   NewEmployeeHandler(fakeEmployeeService{}),
		Schedule:   NewScheduleHandler(fakeScheduleService{}),
		Leave:      NewLeaveHandler(fakePermitService{}),
		Commission: NewCommissionHandler(fakeCommissionService{}),
	}, RouterOptions{AllowedOrigins: []string{"http://localhost:5173"}})

	return &testServer{handler: router, jwtService: jwtService, attendance: att}
}

func (s *testServer) token(t *testing.T, role user.Role) string {
	t.Helper()
	token, _, err := s.jwtService.GenerateAccessToken("0199a1b2-0000-7000-8000-000000000001", "ADM001", role)
	require.NoError(t, err)
	return token
}

func (s *testServer) do(method, path, token string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// ========================================
// TESTS
// ========================================

func TestRouter_Heartbeat(t *testing.T) {
	s := newTestServer()
	rec := s.do(http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	s := newTestServer()
	rec := s.do(http.MethodGet, "/api/v1/nowhere", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeBody(t, rec).Error.Code)
}

func TestPunch_RequiresToken(t *testing.T) {
	s := newTestServer()
	rec := s.do(http.MethodPost, "/api/v1/attendance/punch", "", []byte(`{"punch_kind":"check_in"}`))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPunch_Success(t *testing.T) {
	s := newTestServer()
	s.attendance.punchResult = attendance.PunchResponse{
		PunchKind: attendance.PunchCheckIn,
		Label:     "Check-in",
		Date:      "2025-10-06",
		Time:      "08:03:00",
		Message:   "Check-in recorded at 08:03:00",
	}

	rec := s.do(http.MethodPost, "/api/v1/attendance/punch", s.token(t, user.RoleEmployee), []byte(`{"punch_kind":"check_in"}`))
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Check-in recorded at 08:03:00", resp.Message)
}

func TestPunch_BadBody(t *testing.T) {
	s := newTestServer()
	rec := s.do(http.MethodPost, "/api/v1/attendance/punch", s.token(t, user.RoleEmployee), []byte(`{not json`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPunch_AlreadyMarked(t *testing.T) {
	s := newTestServer()
	s.attendance.punchErr = &attendance.AlreadyMarkedError{
		Kind:     attendance.PunchCheckIn,
		MarkedAt: time.Date(2025, 10, 6, 13, 3, 0, 0, time.UTC),
	}

	rec := s.do(http.MethodPost, "/api/v1/attendance/punch", s.token(t, user.RoleEmployee), []byte(`{"punch_kind":"check_in"}`))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeBody(t, rec)
	assert.Equal(t, "ALREADY_MARKED", resp.Error.Code)
	assert.Equal(t, "check_in", resp.Error.Details["punch_kind"])
}

func TestToday_EmptyIsSuccess(t *testing.T) {
	s := newTestServer()
	rec := s.do(http.MethodGet, "/api/v1/attendance/today", s.token(t, user.RoleEmployee), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "No attendance recorded yet today", decodeBody(t, rec).Message)
}

func TestHistory_AcceptsRangeAliases(t *testing.T) {
	s := newTestServer()
	rec := s.do(http.MethodGet, "/api/v1/attendance/history?start=2025-10-01&end=2025-10-31&limit=5", s.token(t, user.RoleEmployee), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, s.attendance.lastHistory.StartDate)
	require.NotNil(t, s.attendance.lastHistory.EndDate)
	assert.Equal(t, "2025-10-01", *s.attendance.lastHistory.StartDate)
	assert.Equal(t, "2025-10-31", *s.attendance.lastHistory.EndDate)
	assert.Equal(t, 5, s.attendance.lastHistory.Limit)
}

func TestListAll_SupervisorOnly(t *testing.T) {
	s := newTestServer()

	rec := s.do(http.MethodGet, "/api/v1/attendance/all?month=10&year=2025", s.token(t, user.RoleEmployee), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/attendance/all?month=10&year=2025&employee_code=pla004&all=true", s.token(t, user.RoleSupervisor), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	f := s.attendance.lastListQuery
	require.NotNil(t, f.Month)
	require.NotNil(t, f.Year)
	assert.Equal(t, 10, *f.Month)
	assert.Equal(t, 2025, *f.Year)
	assert.True(t, f.All)
	assert.Equal(t, "pla004", *f.EmployeeCode)

	resp := decodeBody(t, rec)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(1), resp.Meta.TotalItems)
}

func TestListAll_BadQuery(t *testing.T) {
	s := newTestServer()
	rec := s.do(http.MethodGet, "/api/v1/attendance/all?month=october", s.token(t, user.RoleSupervisor), nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeBody(t, rec).Error.Code)
}

func TestExport(t *testing.T) {
	s := newTestServer()
	supervisor := s.token(t, user.RoleSupervisor)

	rec := s.do(http.MethodGet, "/api/v1/attendance/export", supervisor, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/attendance/export?month=10&year=2025", supervisor, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, report.SpreadsheetContentType, rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Disposition"), "attachment;"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attendance_2025-10.xlsx")
	assert.Equal(t, "xlsx-bytes", rec.Body.String())

	rec = s.do(http.MethodGet, "/api/v1/attendance/export?month=10&year=2025", s.token(t, user.RoleEmployee), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestLogout_RevokesToken(t *testing.T) {
	s := newTestServer()
	token := s.token(t, user.RoleEmployee)

	rec := s.do(http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	s := newTestServer()
	rec := s.do(http.MethodPost, "/api/v1/auth/login", "", []byte(`{"employee_code":"ADM001","password":"wrong"}`))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCommission_ReturnBeforeDeparture(t *testing.T) {
	s := newTestServer()
	rec := s.do(http.MethodPost, "/api/v1/commissions/0199a1b2-0000-7000-8000-00000000000a/return", s.token(t, user.RoleEmployee), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
