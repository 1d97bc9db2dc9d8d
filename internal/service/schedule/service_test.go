package schedule

import (
	"context"
	"testing"

	"github.com/limatime/attendance-backend-go/internal/domain/schedule"
	"github.com/limatime/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScheduleRepo struct {
	cfg *schedule.Config
}

func (f *fakeScheduleRepo) Get(ctx context.Context) (schedule.Config, error) {
	if f.cfg == nil {
		return schedule.Config{}, schedule.ErrScheduleNotConfigured
	}
	return *f.cfg, nil
}

func (f *fakeScheduleRepo) Upsert(ctx context.Context, cfg schedule.Config) (schedule.Config, error) {
	f.cfg = &cfg
	return cfg, nil
}

func validUpdate() schedule.UpdateScheduleRequest {
	return schedule.UpdateScheduleRequest{
		ExpectedCheckIn:  "8:00",
		ExpectedLunchOut: "13:00",
		ExpectedLunchIn:  "14:00:00",
		ExpectedCheckOut: "17:30",
		ToleranceMinutes: 10,
	}
}

func TestGet_NotConfigured(t *testing.T) {
	svc := NewScheduleService(&fakeScheduleRepo{})

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, schedule.ErrScheduleNotConfigured)
}

func TestUpdate_FirstTimeUsesDefaultRule(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewScheduleService(repo)

	resp, err := svc.Update(context.Background(), validUpdate())
	require.NoError(t, err)
	assert.Equal(t, "08:00:00", resp.ExpectedCheckIn)
	assert.Equal(t, "17:30:00", resp.ExpectedCheckOut)
	assert.Equal(t, 10, resp.ToleranceMinutes)
	assert.Equal(t, schedule.DefaultWorkdaysRule, resp.WorkdaysRule)
}

func TestUpdate_KeepsOrReplacesRule(t *testing.T) {
	saturdays := "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR,SA"
	repo := &fakeScheduleRepo{cfg: &schedule.Config{WorkdaysRule: saturdays}}
	svc := NewScheduleService(repo)

	resp, err := svc.Update(context.Background(), validUpdate())
	require.NoError(t, err)
	assert.Equal(t, saturdays, resp.WorkdaysRule)

	req := validUpdate()
	everyDay := ""
	req.WorkdaysRule = &everyDay
	resp, err = svc.Update(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "", resp.WorkdaysRule)
}

func TestUpdate_RejectsOutOfOrderTimes(t *testing.T) {
	svc := NewScheduleService(&fakeScheduleRepo{})

	req := validUpdate()
	req.ExpectedLunchIn = "12:00"
	_, err := svc.Update(context.Background(), req)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "expected_times")
}
