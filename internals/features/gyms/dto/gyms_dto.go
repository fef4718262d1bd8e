package dto

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"unicode"

	"gympro_backend/internals/features/gyms/model"
)

// Request to redeem an access code and open a gym account.
type RedeemAccessCodeRequest struct {
	AccessCode string         `json:"access_code" validate:"required"`
	GymInfo    GymInfoRequest `json:"gym_info" validate:"required"`
}

type GymInfoRequest struct {
	GymName    string `json:"gym_name" validate:"required,min=2,max=255"`
	OwnerName  string `json:"owner_name" validate:"required,min=2,max=255"`
	OwnerEmail string `json:"owner_email" validate:"required,email"`
	Phone      string `json:"phone" validate:"omitempty,max=50"`
	Address    string `json:"address" validate:"omitempty,max=500"`
}

type RedeemAccessCodeResponse struct {
	GymID         string `json:"gym_id"`
	GymName       string `json:"gym_name"`
	Subdomain     string `json:"subdomain"`
	DashboardURL  string `json:"dashboard_url"`
	Plan          string `json:"plan"`
	TrialDays     int    `json:"trial_days"`
	AdminPassword string `json:"admin_password"` // shown once, never stored in plain text
}

// GenerateSubdomain builds a unique subdomain from the gym name plus a
// random hex suffix.
func GenerateSubdomain(gymName string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(gymName) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('-')
		}
	}
	suffix := make([]byte, 4)
	_, _ = rand.Read(suffix)
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "gym"
	}
	return slug + "-" + hex.EncodeToString(suffix)
}

func (r *GymInfoRequest) ToModel(accessCode string) *model.GymModel {
	return &model.GymModel{
		GymName:       strings.TrimSpace(r.GymName),
		GymSubdomain:  GenerateSubdomain(r.GymName),
		GymOwnerName:  strings.TrimSpace(r.OwnerName),
		GymOwnerEmail: strings.TrimSpace(r.OwnerEmail),
		GymPhone:      strings.TrimSpace(r.Phone),
		GymAddress:    strings.TrimSpace(r.Address),
		GymAccessCode: accessCode,
	}
}
