package dtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ladybug-tools/ladybug-go/pkg/dtime"
	"github.com/ladybug-tools/ladybug-go/pkg/testutil"
)

func TestDateTimeRoundTrip(t *testing.T) {
	t.Parallel()
	// every hour of the year must survive a MOY round-trip
	for moy := 0; moy < dtime.MinutesPerYear; moy += 60 {
		dt, err := dtime.FromMOY(moy, false)
		require.NoError(t, err)
		assert.Equal(t, moy, dt.MOY())
	}
}

func TestDateTimeHOY(t *testing.T) {
	t.Parallel()
	testcases := map[string]struct {
		dt  dtime.DateTime
		hoy float64
	}{
		"new-years-midnight": {dtime.MustDateTime(1, 1, 0, 0), 0},
		"jan-1-noon":         {dtime.MustDateTime(1, 1, 12, 0), 12},
		"feb-1-midnight":     {dtime.MustDateTime(2, 1, 0, 0), 744},
		"six-fifteen":        {dtime.MustDateTime(1, 1, 6, 15), 6.25},
		"last-hour":          {dtime.MustDateTime(12, 31, 23, 0), 8759},
	}
	for name, tc := range testcases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.hoy, tc.dt.HOY())
			back, err := dtime.FromHOY(tc.hoy, false)
			require.NoError(t, err)
			assert.Equal(t, tc.dt, back)
		})
	}
}

func TestDateTimeValidation(t *testing.T) {
	t.Parallel()
	testcases := map[string][4]int{
		"month-zero":    {0, 1, 0, 0},
		"month-13":      {13, 1, 0, 0},
		"feb-30":        {2, 30, 0, 0},
		"apr-31":        {4, 31, 0, 0},
		"hour-24":       {1, 1, 24, 0},
		"minute-60":     {1, 1, 0, 60},
		"negative-hour": {1, 1, -1, 0},
	}
	for name, in := range testcases {
		in := in
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := dtime.NewDateTime(in[0], in[1], in[2], in[3], false)
			assert.Error(t, err)
		})
	}
}

func TestLeapYear(t *testing.T) {
	t.Parallel()

	_, err := dtime.NewDate(2, 29, false)
	assert.Error(t, err)
	feb29, err := dtime.NewDate(2, 29, true)
	require.NoError(t, err)
	assert.Equal(t, 60, feb29.DOY())

	_, err = dtime.FromMOY(dtime.MinutesPerYear, false)
	assert.Error(t, err)
	last, err := dtime.FromMOY(dtime.MinutesPerLeapYear-1, true)
	require.NoError(t, err)
	assert.Equal(t, 12, last.Month)
	assert.Equal(t, 31, last.Day)
}

func TestDateTimeString(t *testing.T) {
	t.Parallel()

	dt := dtime.MustDateTime(6, 21, 12, 0)
	assert.Equal(t, "21 Jun 12:00", dt.String())

	parsed, err := dtime.Parse("21 Jun 12:00")
	require.NoError(t, err)
	assert.Equal(t, dt, parsed)

	_, err = dtime.Parse("21 Floreal 12:00")
	assert.Error(t, err)
}

func TestAddMinutes(t *testing.T) {
	t.Parallel()

	dt := dtime.MustDateTime(12, 31, 23, 30)
	rolled := dt.AddMinutes(45)
	assert.Equal(t, dtime.MustDateTime(1, 1, 0, 15), rolled)
	assert.Equal(t, dt, rolled.AddMinutes(-45))

	assert.Equal(t, dtime.MustDateTime(1, 2, 0, 0),
		dtime.MustDateTime(1, 1, 12, 0).AddHours(12))
}

func TestHourAndMinute(t *testing.T) {
	t.Parallel()
	hour, minute := dtime.HourAndMinute(6.25)
	assert.Equal(t, 6, hour)
	assert.Equal(t, 15, minute)

	hour, minute = dtime.HourAndMinute(12.9999)
	assert.Equal(t, 13, hour)
	assert.Equal(t, 0, minute)
}

func TestMOYRoundTripQuick(t *testing.T) {
	t.Parallel()
	testutil.QuickCheck(t,
		func(raw int) bool {
			moy := ((raw % dtime.MinutesPerYear) + dtime.MinutesPerYear) % dtime.MinutesPerYear
			dt, err := dtime.FromMOY(moy, false)
			return err == nil && dt.MOY() == moy
		},
		testutil.QuickConfig{MaxCount: 500},
		[]interface{}{0},
		[]interface{}{dtime.MinutesPerYear - 1},
	)
}
