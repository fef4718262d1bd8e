package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRiskLevel(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	daysAgo := func(d int) *time.Time {
		ts := now.AddDate(0, 0, -d)
		return &ts
	}

	tests := []struct {
		name           string
		lastAttendance *time.Time
		want           string
	}{
		{"never attended", nil, RiskHigh},
		{"20 days ago", daysAgo(20), RiskHigh},
		{"exactly 14 days ago", daysAgo(14), RiskHigh},
		{"13 days ago", daysAgo(13), RiskMedium},
		{"10 days ago", daysAgo(10), RiskMedium},
		{"exactly 7 days ago", daysAgo(7), RiskMedium},
		{"6 days ago", daysAgo(6), RiskNone},
		{"3 days ago", daysAgo(3), RiskNone},
		{"today", daysAgo(0), RiskNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RiskLevel(tt.lastAttendance, now))
		})
	}
}

func TestRiskLevelPartialDays(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	// 13 days and 20 hours is still only 13 full days: medium, not high.
	last := now.Add(-13*24*time.Hour - 20*time.Hour)
	assert.Equal(t, RiskMedium, RiskLevel(&last, now))

	// 6 days and 23 hours has not crossed the 7-day line.
	last = now.Add(-6*24*time.Hour - 23*time.Hour)
	assert.Equal(t, RiskNone, RiskLevel(&last, now))
}
