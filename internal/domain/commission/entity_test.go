package commission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommission_Marks(t *testing.T) {
	now := time.Date(2025, 10, 8, 15, 0, 0, 0, time.UTC)
	c := Commission{ID: "c-1"}

	_, err := c.MarkReturn(now)
	assert.ErrorIs(t, err, ErrDepartureRequired)

	departed, err := c.MarkDeparture(now)
	require.NoError(t, err)
	require.NotNil(t, departed.DepartedAt)
	assert.Nil(t, c.DepartedAt, "receiver must not be modified")

	_, err = departed.MarkDeparture(now)
	assert.ErrorIs(t, err, ErrDepartureAlreadyMarked)

	returned, err := departed.MarkReturn(now.Add(2 * time.Hour))
	require.NoError(t, err)
	require.NotNil(t, returned.ReturnedAt)

	_, err = returned.MarkReturn(now.Add(3 * time.Hour))
	assert.ErrorIs(t, err, ErrReturnAlreadyMarked)
}

func TestCreateCommissionRequest_Validate(t *testing.T) {
	assert.NoError(t, (&CreateCommissionRequest{Date: "2025-10-08"}).Validate())
	assert.Error(t, (&CreateCommissionRequest{Date: "08-10-2025"}).Validate())
	assert.Error(t, (&CreateCommissionRequest{}).Validate())
}
