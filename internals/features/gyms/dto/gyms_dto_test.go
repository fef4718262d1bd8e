package dto

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var subdomainPattern = regexp.MustCompile(`^[a-z0-9-]+-[0-9a-f]{8}$`)

func TestGenerateSubdomain(t *testing.T) {
	tests := []struct {
		name    string
		gymName string
		prefix  string
	}{
		{"simple name", "Iron Temple", "iron-temple-"},
		{"punctuation stripped", "Gracie's Academy!", "gracies-academy-"},
		{"uppercase folded", "ALPHA GYM", "alpha-gym-"},
		{"all symbols falls back", "!!!", "gym-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateSubdomain(tt.gymName)
			assert.True(t, subdomainPattern.MatchString(got), "got %q", got)
			assert.Contains(t, got, tt.prefix)
		})
	}
}

func TestGenerateSubdomainUniqueSuffix(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		got := GenerateSubdomain("Iron Temple")
		assert.False(t, seen[got], "duplicate subdomain %q", got)
		seen[got] = true
	}
}

func TestGymInfoToModelTrimsFields(t *testing.T) {
	req := &GymInfoRequest{
		GymName:    "  Iron Temple  ",
		OwnerName:  " Jordan Silva ",
		OwnerEmail: " owner@irontemple.com ",
	}

	m := req.ToModel("SECRET123")
	assert.Equal(t, "Iron Temple", m.GymName)
	assert.Equal(t, "Jordan Silva", m.GymOwnerName)
	assert.Equal(t, "owner@irontemple.com", m.GymOwnerEmail)
	assert.Equal(t, "SECRET123", m.GymAccessCode)
	assert.NotEmpty(t, m.GymSubdomain)
}
