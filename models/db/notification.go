package dbmodels

import (
	"hr-pipeline-backend/models"
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	SenderID   *string                 `gorm:"type:varchar(36)"`
	ReceiverID string                  `gorm:"type:varchar(36);index:idx_notification_receiver"`
	Type       models.NotificationType `gorm:"type:varchar(100)"`
	Title      string                  `gorm:"type:varchar(255)"`
	Message    string
	Metadata   datatypes.JSON
	IsRead     bool `gorm:"index:idx_notification_receiver"`
	ReadAt     *time.Time
}
