package dtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ladybug-tools/ladybug-go/pkg/dtime"
)

func TestAnnualPeriod(t *testing.T) {
	t.Parallel()

	ap := dtime.Annual()
	assert.True(t, ap.IsAnnual())
	assert.False(t, ap.Reversed())
	assert.False(t, ap.Overnight())
	assert.Len(t, ap.HOYs(), 8760)
	assert.Equal(t, "1/1 to 12/31 between 0 and 23 @1", ap.String())
}

func TestPeriodStringRoundTrip(t *testing.T) {
	t.Parallel()

	ap, err := dtime.NewAnalysisPeriod(6, 21, 9, 9, 21, 17, 1)
	require.NoError(t, err)
	parsed, err := dtime.ParseAnalysisPeriod(ap.String())
	require.NoError(t, err)
	assert.Equal(t, ap, parsed)
}

func TestReversedPeriod(t *testing.T) {
	t.Parallel()

	ap, err := dtime.NewAnalysisPeriod(12, 1, 0, 1, 31, 23, 1)
	require.NoError(t, err)
	assert.True(t, ap.Reversed())
	// December plus January, every hour
	assert.Equal(t, (31+31)*24, ap.Len())

	hoys := ap.HOYs()
	assert.Equal(t, ap.StTime().HOY(), hoys[0])
	assert.Equal(t, ap.EndTime().HOY(), hoys[len(hoys)-1])
}

func TestOvernightPeriod(t *testing.T) {
	t.Parallel()

	ap, err := dtime.NewAnalysisPeriod(1, 1, 21, 1, 2, 3, 1)
	require.NoError(t, err)
	assert.True(t, ap.Overnight())
	assert.True(t, ap.IsPossibleHour(22))
	assert.True(t, ap.IsPossibleHour(2))
	assert.False(t, ap.IsPossibleHour(12))
	// hours 21-23 of the first day and 0-3 of the second
	assert.Equal(t, 7, ap.Len())
}

func TestPeriodEndDayClamped(t *testing.T) {
	t.Parallel()

	ap, err := dtime.NewAnalysisPeriod(1, 1, 0, 2, 31, 23, 1)
	require.NoError(t, err)
	assert.Equal(t, 28, ap.EndDay)
}

func TestPeriodTimestep(t *testing.T) {
	t.Parallel()

	_, err := dtime.NewAnalysisPeriod(1, 1, 0, 12, 31, 23, 7)
	assert.Error(t, err)

	ap, err := dtime.NewAnalysisPeriod(1, 1, 0, 1, 1, 23, 4)
	require.NoError(t, err)
	assert.Equal(t, 24*4, ap.Len())
}

func TestIsTimeIncluded(t *testing.T) {
	t.Parallel()

	ap, err := dtime.NewAnalysisPeriod(2, 20, 9, 2, 22, 17, 1)
	require.NoError(t, err)
	assert.True(t, ap.IsTimeIncluded(dtime.MustDateTime(2, 21, 12, 0)))
	// the hour range applies to every day of the period
	assert.False(t, ap.IsTimeIncluded(dtime.MustDateTime(2, 21, 5, 0)))
	assert.False(t, ap.IsTimeIncluded(dtime.MustDateTime(3, 1, 12, 0)))
}
