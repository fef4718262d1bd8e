package model

import (
	"time"

	"github.com/google/uuid"
)

type GymAdminModel struct {
	GymAdminID    uuid.UUID `gorm:"column:gym_admin_id;type:uuid;default:gen_random_uuid();primaryKey" json:"gym_admin_id"`
	GymAdminGymID uuid.UUID `gorm:"column:gym_admin_gym_id;type:uuid;not null;index:idx_gym_admins_gym_id" json:"gym_admin_gym_id"`

	GymAdminName         string `gorm:"column:gym_admin_name;type:varchar(255);not null" json:"gym_admin_name"`
	GymAdminEmail        string `gorm:"column:gym_admin_email;type:varchar(255)" json:"gym_admin_email"`
	GymAdminCardCode     string `gorm:"column:gym_admin_card_code;type:varchar(100);uniqueIndex" json:"gym_admin_card_code"`
	GymAdminPasswordHash string `gorm:"column:gym_admin_password_hash;type:varchar(255)" json:"-"`
	GymAdminRole         string `gorm:"column:gym_admin_role;type:varchar(50);default:admin" json:"gym_admin_role"`

	// Lockout bookkeeping: 5 consecutive failures lock the account for a
	// fixed cool-down window; a successful login resets both columns.
	GymAdminFailedLogins int        `gorm:"column:gym_admin_failed_logins;default:0" json:"-"`
	GymAdminLockedUntil  *time.Time `gorm:"column:gym_admin_locked_until;type:timestamptz" json:"-"`

	GymAdminCreatedAt time.Time `gorm:"column:gym_admin_created_at;type:timestamptz;autoCreateTime" json:"gym_admin_created_at"`
	GymAdminUpdatedAt time.Time `gorm:"column:gym_admin_updated_at;type:timestamptz;autoUpdateTime" json:"gym_admin_updated_at"`
}

func (GymAdminModel) TableName() string {
	return "gym_admins"
}
