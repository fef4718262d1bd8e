package model

import (
	"time"

	"github.com/google/uuid"
)

type GymModel struct {
	GymID        uuid.UUID `gorm:"column:gym_id;type:uuid;default:gen_random_uuid();primaryKey" json:"gym_id"`
	GymName      string    `gorm:"column:gym_name;type:varchar(255);not null" json:"gym_name"`
	GymSubdomain string    `gorm:"column:gym_subdomain;type:varchar(120);uniqueIndex" json:"gym_subdomain"`
	GymOwnerName  string   `gorm:"column:gym_owner_name;type:varchar(255);not null" json:"gym_owner_name"`
	GymOwnerEmail string   `gorm:"column:gym_owner_email;type:varchar(255);not null" json:"gym_owner_email"`
	GymPhone      string   `gorm:"column:gym_phone;type:varchar(50)" json:"gym_phone"`
	GymAddress    string   `gorm:"column:gym_address;type:text" json:"gym_address"`

	GymSubscriptionPlan   string     `gorm:"column:gym_subscription_plan;type:varchar(50);default:professional" json:"gym_subscription_plan"`
	GymSubscriptionStatus string     `gorm:"column:gym_subscription_status;type:varchar(50);default:trial" json:"gym_subscription_status"`
	GymTrialEndDate       *time.Time `gorm:"column:gym_trial_end_date;type:timestamptz" json:"gym_trial_end_date,omitempty"`
	GymAccessCode         string     `gorm:"column:gym_access_code;type:varchar(100)" json:"-"`

	GymCreatedAt time.Time `gorm:"column:gym_created_at;type:timestamptz;autoCreateTime" json:"gym_created_at"`
	GymUpdatedAt time.Time `gorm:"column:gym_updated_at;type:timestamptz;autoUpdateTime" json:"gym_updated_at"`
}

func (GymModel) TableName() string {
	return "gyms"
}
