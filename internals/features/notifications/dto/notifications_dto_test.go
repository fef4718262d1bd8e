package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNotificationToModelDefaultsAndProvenance(t *testing.T) {
	gymID, adminID := uuid.New(), uuid.New()

	req := &NotificationCreateRequest{
		Subject: "  Belt promotion ceremony  ",
		Message: "Saturday 10:00, everyone welcome.",
	}
	m := req.ToModel(gymID, adminID, "Jordan Silva")

	assert.Equal(t, gymID, m.NotificationGymID)
	assert.Equal(t, adminID, m.NotificationSentByID)
	assert.Equal(t, "Jordan Silva", m.NotificationSentBy)
	assert.Equal(t, "Belt promotion ceremony", m.NotificationSubject)
	assert.Equal(t, "general", m.NotificationType)
	assert.Equal(t, "students", m.NotificationRecipientType)
}
