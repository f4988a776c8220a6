package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatRemaining(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		deadline time.Time
		want     string
	}{
		{"zero deadline", time.Time{}, "-"},
		{"already past", now.Add(-time.Minute), "expired"},
		{"exactly now", now, "expired"},
		{"truncates sub-second", now.Add(90*time.Minute + 500*time.Millisecond), "in 1h30m0s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRemaining(tt.deadline, now))
		})
	}
}
