package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationModel records a notification intent. Nothing is delivered;
// this is an audit log of who asked to message whom.
type NotificationModel struct {
	NotificationID    uuid.UUID `gorm:"column:notification_id;type:uuid;default:gen_random_uuid();primaryKey" json:"notification_id"`
	NotificationGymID uuid.UUID `gorm:"column:notification_gym_id;type:uuid;not null;index:idx_notifications_gym_id" json:"notification_gym_id"`

	NotificationSubject        string `gorm:"column:notification_subject;type:varchar(255);not null" json:"notification_subject"`
	NotificationMessage        string `gorm:"column:notification_message;type:text;not null" json:"notification_message"`
	NotificationType           string `gorm:"column:notification_type;type:varchar(50);default:general" json:"notification_type"`
	NotificationRecipientType  string `gorm:"column:notification_recipient_type;type:varchar(50);default:students" json:"notification_recipient_type"`
	NotificationRecipientCount int    `gorm:"column:notification_recipient_count;default:0" json:"notification_recipient_count"`

	// Who asked for the send, by id and display name.
	NotificationSentByID uuid.UUID `gorm:"column:notification_sent_by_id;type:uuid;not null" json:"notification_sent_by_id"`
	NotificationSentBy   string    `gorm:"column:notification_sent_by;type:varchar(255);not null" json:"notification_sent_by"`

	NotificationMetadata datatypes.JSON `gorm:"column:notification_metadata;type:jsonb" json:"notification_metadata,omitempty"`

	NotificationSentAt time.Time `gorm:"column:notification_sent_at;type:timestamptz;autoCreateTime" json:"notification_sent_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
