package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestParsePeriodicity(t *testing.T) {
	p, err := ParsePeriodicity("30d")
	require.NoError(t, err)
	assert.Equal(t, Periodicity{Days: 30}, p)

	p, err = ParsePeriodicity("6m")
	require.NoError(t, err)
	assert.Equal(t, Periodicity{Months: 6}, p)

	p, err = ParsePeriodicity("1y")
	require.NoError(t, err)
	assert.Equal(t, Periodicity{Years: 1}, p)

	for _, invalid := range []string{"", "30", "d30", "0d", "30w", "monthly"} {
		_, err := ParsePeriodicity(invalid)
		assert.ErrorIs(t, err, ErrInvalidPeriodicity, "input %q", invalid)
	}
}

func TestNextDueFromCreation(t *testing.T) {
	p := Periodicity{Days: 30}
	created := date(2024, time.January, 10)

	assert.Equal(t, date(2024, time.February, 9), p.NextDue(nil, created))
}

func TestNextDuePrefersLastExecution(t *testing.T) {
	p := Periodicity{Days: 30}
	created := date(2024, time.January, 10)
	executed := date(2024, time.March, 1)

	assert.Equal(t, date(2024, time.March, 31), p.NextDue(&executed, created))
}

func TestNextDueClampsToShorterMonth(t *testing.T) {
	p := Periodicity{Months: 1}

	assert.Equal(t, date(2024, time.February, 29), p.NextDue(nil, date(2024, time.January, 31)))
	assert.Equal(t, date(2025, time.February, 28), p.NextDue(nil, date(2025, time.January, 31)))

	sixMonths := Periodicity{Months: 6}
	assert.Equal(t, date(2025, time.February, 28), sixMonths.NextDue(nil, date(2024, time.August, 31)))
}

func TestNextDueYearAddition(t *testing.T) {
	p := Periodicity{Years: 1}

	assert.Equal(t, date(2025, time.February, 28), p.NextDue(nil, date(2024, time.February, 29)))
	assert.Equal(t, date(2025, time.June, 15), p.NextDue(nil, date(2024, time.June, 15)))
}

func TestNextDueIgnoresTimeOfDay(t *testing.T) {
	p := Periodicity{Days: 30}
	created := time.Date(2024, time.January, 10, 23, 55, 0, 0, time.UTC)

	assert.Equal(t, date(2024, time.February, 9), p.NextDue(nil, created))
}

func TestPeriodicityWireRoundTrip(t *testing.T) {
	for _, wire := range []string{"30d", "6m", "1y", "90d"} {
		p, err := ParsePeriodicity(wire)
		require.NoError(t, err)
		assert.Equal(t, wire, p.String())
	}
}
