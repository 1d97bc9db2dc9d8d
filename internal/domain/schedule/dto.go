package schedule

import (
	"github.com/limatime/attendance-backend-go/internal/pkg/timeutil"
	"github.com/limatime/attendance-backend-go/internal/pkg/validator"
)

type UpdateScheduleRequest struct {
	ExpectedCheckIn  string  `json:"expected_check_in" validate:"required,clock"`
	ExpectedLunchOut string  `json:"expected_lunch_out" validate:"required,clock"`
	ExpectedLunchIn  string  `json:"expected_lunch_in" validate:"required,clock"`
	ExpectedCheckOut string  `json:"expected_check_out" validate:"required,clock"`
	ToleranceMinutes int     `json:"tolerance_minutes" validate:"gte=0,lte=240"`
	WorkdaysRule     *string `json:"workdays_rule,omitempty"`
}

func (r *UpdateScheduleRequest) Validate() error {
	if err := validator.ValidateStruct(r); err != nil {
		return err
	}

	var errs validator.ValidationErrors

	times := []string{r.ExpectedCheckIn, r.ExpectedLunchOut, r.ExpectedLunchIn, r.ExpectedCheckOut}
	prev := -1
	for _, s := range times {
		m, _ := timeutil.ParseClock(s)
		if m <= prev {
			errs = append(errs, validator.ValidationError{
				Field:   "expected_times",
				Message: ErrScheduleOutOfOrder.Error(),
			})
			break
		}
		prev = m
	}

	if r.WorkdaysRule != nil && *r.WorkdaysRule != "" {
		if err := ValidateWorkdaysRule(*r.WorkdaysRule); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "workdays_rule",
				Message: "workdays_rule must be an RRULE such as " + DefaultWorkdaysRule,
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScheduleResponse struct {
	ExpectedCheckIn  string `json:"expected_check_in"`
	ExpectedLunchOut string `json:"expected_lunch_out"`
	ExpectedLunchIn  string `json:"expected_lunch_in"`
	ExpectedCheckOut string `json:"expected_check_out"`
	ToleranceMinutes int    `json:"tolerance_minutes"`
	WorkdaysRule     string `json:"workdays_rule"`
	UpdatedAt        string `json:"updated_at"`
}
