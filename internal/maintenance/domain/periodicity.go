package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"predial-server/internal/infra/utils"
)

var ErrInvalidPeriodicity = errors.New("invalid periodicity")

var periodicityPattern = regexp.MustCompile(`^(\d+)([dmy])$`)

// Periodicity is a calendar interval. Month and year additions land on the
// same day-of-month, clamped to the last valid day when the target month is
// shorter.
type Periodicity struct {
	Years  int
	Months int
	Days   int
}

// ParsePeriodicity reads the wire form used by the requirement catalog:
// "30d", "6m", "1y".
func ParsePeriodicity(value string) (Periodicity, error) {
	matches := periodicityPattern.FindStringSubmatch(value)
	if matches == nil {
		return Periodicity{}, fmt.Errorf("%w: %q", ErrInvalidPeriodicity, value)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil || amount == 0 {
		return Periodicity{}, fmt.Errorf("%w: %q", ErrInvalidPeriodicity, value)
	}

	switch matches[2] {
	case "d":
		return Periodicity{Days: amount}, nil
	case "m":
		return Periodicity{Months: amount}, nil
	default:
		return Periodicity{Years: amount}, nil
	}
}

func (p Periodicity) IsZero() bool {
	return p.Years == 0 && p.Months == 0 && p.Days == 0
}

func (p Periodicity) String() string {
	switch {
	case p.Years != 0:
		return fmt.Sprintf("%dy", p.Years)
	case p.Months != 0:
		return fmt.Sprintf("%dm", p.Months)
	default:
		return fmt.Sprintf("%dd", p.Days)
	}
}

// NextDue computes the next due date from the last execution, falling back
// to the creation date when the plan was never executed. Pure.
func (p Periodicity) NextDue(lastExecutedAt *time.Time, createdAt time.Time) time.Time {
	base := createdAt
	if lastExecutedAt != nil {
		base = *lastExecutedAt
	}

	return p.addTo(utils.DateOnly(base))
}

func (p Periodicity) addTo(date time.Time) time.Time {
	if p.Days != 0 {
		return date.AddDate(0, 0, p.Days)
	}

	// AddDate normalizes Jan 31 + 1 month to Mar 2/3; clamp to the last
	// day of the target month instead.
	year, month, day := date.Date()
	targetYear := year + p.Years
	targetMonth := int(month) + p.Months
	for targetMonth > 12 {
		targetMonth -= 12
		targetYear++
	}
	for targetMonth < 1 {
		targetMonth += 12
		targetYear--
	}

	if last := lastDayOfMonth(targetYear, time.Month(targetMonth)); day > last {
		day = last
	}

	return time.Date(targetYear, time.Month(targetMonth), day, 0, 0, 0, 0, time.UTC)
}

func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
