package utils

import (
	"testing"
	"time"
)

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name     string
		a        time.Time
		b        time.Time
		expected int
	}{
		{
			name:     "same day",
			a:        time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC),
			b:        time.Date(2024, 2, 1, 23, 0, 0, 0, time.UTC),
			expected: 0,
		},
		{
			name:     "forward across month boundary",
			a:        time.Date(2024, 1, 30, 12, 0, 0, 0, time.UTC),
			b:        time.Date(2024, 2, 2, 1, 0, 0, 0, time.UTC),
			expected: 3,
		},
		{
			name:     "backward is negative",
			a:        time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
			b:        time.Date(2024, 2, 9, 23, 59, 0, 0, time.UTC),
			expected: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.a, tt.b); got != tt.expected {
				t.Errorf("DaysBetween() = %d, want %d", got, tt.expected)
			}
		})
	}
}
