package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"gympro_backend/internals/features/notifications/model"
)

type NotificationCreateRequest struct {
	Subject        string         `json:"subject" validate:"required,min=1,max=255"`
	Message        string         `json:"message" validate:"required,min=1"`
	Type           string         `json:"notification_type" validate:"omitempty,oneof=general reminder promotion alert"`
	RecipientType  string         `json:"recipient_type" validate:"omitempty,oneof=students admins all"`
	RecipientCount int            `json:"recipient_count" validate:"omitempty,min=0"`
	Metadata       datatypes.JSON `json:"metadata" validate:"omitempty"`
}

type NotificationResponse struct {
	NotificationID uuid.UUID      `json:"notification_id"`
	Subject        string         `json:"subject"`
	Message        string         `json:"message"`
	Type           string         `json:"notification_type"`
	RecipientType  string         `json:"recipient_type"`
	RecipientCount int            `json:"recipient_count"`
	SentByID       uuid.UUID      `json:"sent_by_id"`
	SentBy         string         `json:"sent_by"`
	Metadata       datatypes.JSON `json:"metadata,omitempty"`
	SentAt         string         `json:"sent_at"`
}

func (r *NotificationCreateRequest) ToModel(gymID, sentByID uuid.UUID, sentBy string) *model.NotificationModel {
	notifType := strings.TrimSpace(r.Type)
	if notifType == "" {
		notifType = "general"
	}
	recipientType := strings.TrimSpace(r.RecipientType)
	if recipientType == "" {
		recipientType = "students"
	}
	return &model.NotificationModel{
		NotificationGymID:          gymID,
		NotificationSubject:        strings.TrimSpace(r.Subject),
		NotificationMessage:        r.Message,
		NotificationType:           notifType,
		NotificationRecipientType:  recipientType,
		NotificationRecipientCount: r.RecipientCount,
		NotificationSentByID:       sentByID,
		NotificationSentBy:         sentBy,
		NotificationMetadata:       r.Metadata,
	}
}

func ToNotificationResponse(m *model.NotificationModel) *NotificationResponse {
	return &NotificationResponse{
		NotificationID: m.NotificationID,
		Subject:        m.NotificationSubject,
		Message:        m.NotificationMessage,
		Type:           m.NotificationType,
		RecipientType:  m.NotificationRecipientType,
		RecipientCount: m.NotificationRecipientCount,
		SentByID:       m.NotificationSentByID,
		SentBy:         m.NotificationSentBy,
		Metadata:       m.NotificationMetadata,
		SentAt:         m.NotificationSentAt.Format(time.RFC3339),
	}
}

func ToNotificationResponseList(models []model.NotificationModel) []NotificationResponse {
	result := make([]NotificationResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToNotificationResponse(&models[i]))
	}
	return result
}
