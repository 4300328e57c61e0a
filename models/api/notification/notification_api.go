package notificationapimodels

import (
	"hr-pipeline-backend/models"
	apimodels "hr-pipeline-backend/models/api"
	dbmodels "hr-pipeline-backend/models/db"
	"time"

	"gorm.io/datatypes"
)

type NotificationFilter struct {
	apimodels.Pagination
	UnreadOnly bool `json:"unread_only" query:"unread_only"` // Только непрочитанные
}

func (r NotificationFilter) Validate() error {
	return nil
}

type NotificationView struct {
	ID        string                  `json:"id"`
	CreatedAt time.Time               `json:"created_at"`
	SenderID  *string                 `json:"sender_id"`
	Type      models.NotificationType `json:"type"`
	Title     string                  `json:"title"`
	Message   string                  `json:"message"`
	Metadata  datatypes.JSON          `json:"metadata" swaggertype:"object"`
	IsRead    bool                    `json:"is_read"`
	ReadAt    *time.Time              `json:"read_at"`
}

func Convert(rec dbmodels.Notification) NotificationView {
	return NotificationView{
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt,
		SenderID:  rec.SenderID,
		Type:      rec.Type,
		Title:     rec.Title,
		Message:   rec.Message,
		Metadata:  rec.Metadata,
		IsRead:    rec.IsRead,
		ReadAt:    rec.ReadAt,
	}
}
