package domain

import (
	"time"

	"predial-server/internal/infra/utils"
)

// Classification is the dashboard status of a plan relative to its due date.
type Classification string

const (
	ClassificationExecutado Classification = "executado"
	ClassificationAtrasado  Classification = "atrasado"
	ClassificationIminente  Classification = "iminente"
	ClassificationAgendado  Classification = "agendado"
)

// ImminentWindowDays is the fixed lookahead that turns a scheduled plan
// imminent. The boundary itself counts as imminent.
const ImminentWindowDays = 15

// Classify works at date granularity: both instants are truncated to their
// UTC calendar date before comparison.
func Classify(nextDue, now time.Time, executed bool) Classification {
	if executed {
		return ClassificationExecutado
	}

	daysUntil := utils.DaysBetween(now, nextDue)
	if daysUntil < 0 {
		return ClassificationAtrasado
	}
	if daysUntil <= ImminentWindowDays {
		return ClassificationIminente
	}

	return ClassificationAgendado
}

// DaysUntilDue returns how many whole days remain until the due date,
// negative when overdue.
func DaysUntilDue(nextDue, now time.Time) int {
	return utils.DaysBetween(now, nextDue)
}
