package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"hr-pipeline-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

type AuditLog struct {
	BaseModel
	ActorID    string             `gorm:"type:varchar(36);index"`
	Action     models.AuditAction `gorm:"type:varchar(100)"`
	EntityType models.EntityType  `gorm:"type:varchar(50);index:idx_audit_entity"`
	EntityID   string             `gorm:"type:varchar(36);index:idx_audit_entity"`
	Changes    EntityChanges
	Origin     string `gorm:"type:varchar(255)"`
}

type EntityChanges struct {
	Description string         `json:"description"` // Комментрий
	Data        []FieldChanges `json:"data"`        // Список изменений
}

type FieldChanges struct {
	Field    string `json:"field"`     // Измененное поле
	OldValue any    `json:"old_value"` // Старое значение
	NewValue any    `json:"new_value"` // Новое значение
}

func (j EntityChanges) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *EntityChanges) Scan(value any) error {
	return scanJSON(value, j)
}

func (EntityChanges) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return jsonDBDataType(db)
}
