package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time {
		return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
	}

	tests := []struct {
		name string
		s1   time.Time
		e1   time.Time
		s2   time.Time
		e2   time.Time
		want bool
	}{
		{"identical intervals", at(10, 0), at(11, 0), at(10, 0), at(11, 0), true},
		{"partial overlap", at(10, 0), at(11, 0), at(10, 59), at(11, 30), true},
		{"contained interval", at(10, 0), at(12, 0), at(10, 30), at(11, 0), true},
		{"touching endpoints do not overlap", at(10, 0), at(11, 0), at(11, 0), at(12, 0), false},
		{"touching endpoints reversed", at(11, 0), at(12, 0), at(10, 0), at(11, 0), false},
		{"disjoint intervals", at(8, 0), at(9, 0), at(10, 0), at(11, 0), false},
		{"one minute of overlap", at(10, 0), at(11, 1), at(11, 0), at(12, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.s1, tt.e1, tt.s2, tt.e2))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, Overlaps(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}

func TestBlockingStatusSets(t *testing.T) {
	assert.ElementsMatch(t, []Status{StatusPending, StatusConfirmed}, RequestBlocking())
	assert.ElementsMatch(t, []Status{StatusConfirmed}, ConfirmBlocking())
}
