package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBoundaries(t *testing.T) {
	now := date(2024, time.June, 1)

	assert.Equal(t, ClassificationIminente, Classify(now.AddDate(0, 0, 15), now, false))
	assert.Equal(t, ClassificationAgendado, Classify(now.AddDate(0, 0, 16), now, false))
	assert.Equal(t, ClassificationAtrasado, Classify(now.AddDate(0, 0, -1), now, false))
	assert.Equal(t, ClassificationIminente, Classify(now, now, false))
}

func TestClassifyExecutedWins(t *testing.T) {
	now := date(2024, time.June, 1)

	assert.Equal(t, ClassificationExecutado, Classify(now.AddDate(0, 0, -10), now, true))
}

func TestClassifyDateGranularity(t *testing.T) {
	// 23:59 on the due date is still due today, not overdue.
	due := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, time.June, 1, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, ClassificationIminente, Classify(due, now, false))
}

func TestThirtyDayScenario(t *testing.T) {
	// Asset created 2024-01-10 with a 30 day requirement.
	p := Periodicity{Days: 30}
	nextDue := p.NextDue(nil, date(2024, time.January, 10))
	assert.Equal(t, date(2024, time.February, 9), nextDue)

	assert.Equal(t, ClassificationIminente, Classify(nextDue, date(2024, time.February, 1), false))
	assert.Equal(t, ClassificationAtrasado, Classify(nextDue, date(2024, time.February, 10), false))
}

func TestDaysUntilDue(t *testing.T) {
	now := date(2024, time.June, 1)

	assert.Equal(t, 7, DaysUntilDue(now.AddDate(0, 0, 7), now))
	assert.Equal(t, -3, DaysUntilDue(now.AddDate(0, 0, -3), now))
	assert.Equal(t, 0, DaysUntilDue(now, now))
}
