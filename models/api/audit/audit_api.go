package auditapimodels

import (
	"hr-pipeline-backend/models"
	apimodels "hr-pipeline-backend/models/api"
	dbmodels "hr-pipeline-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

type AuditFilter struct {
	apimodels.Pagination
	EntityType models.EntityType `json:"entity_type" query:"entity_type"` // Тип сущности
	EntityID   string            `json:"entity_id" query:"entity_id"`     // Идентификатор сущности
	ActorID    string            `json:"actor_id" query:"actor_id"`       // Инициатор
}

func (r AuditFilter) Validate() error {
	if r.EntityType != "" {
		if err := r.EntityType.Validate(); err != nil {
			return err
		}
	}
	if r.EntityID != "" && r.EntityType == "" {
		return errors.New("не указан тип сущности")
	}
	return nil
}

type AuditView struct {
	ID         string                 `json:"id"`
	CreatedAt  time.Time              `json:"created_at"`
	ActorID    string                 `json:"actor_id"`
	Action     models.AuditAction     `json:"action"`
	EntityType models.EntityType      `json:"entity_type"`
	EntityID   string                 `json:"entity_id"`
	Changes    dbmodels.EntityChanges `json:"changes"`
	Origin     string                 `json:"origin"`
}

func Convert(rec dbmodels.AuditLog) AuditView {
	return AuditView{
		ID:         rec.ID,
		CreatedAt:  rec.CreatedAt,
		ActorID:    rec.ActorID,
		Action:     rec.Action,
		EntityType: rec.EntityType,
		EntityID:   rec.EntityID,
		Changes:    rec.Changes,
		Origin:     rec.Origin,
	}
}
