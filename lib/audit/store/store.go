package auditstore

import (
	auditapimodels "hr-pipeline-backend/models/api/audit"
	dbmodels "hr-pipeline-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.AuditLog) (id string, err error)
	ListCount(filter auditapimodels.AuditFilter) (count int64, err error)
	List(filter auditapimodels.AuditFilter) (list []dbmodels.AuditLog, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AuditLog) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListCount(filter auditapimodels.AuditFilter) (count int64, err error) {
	err = i.filteredTx(filter).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) List(filter auditapimodels.AuditFilter) (list []dbmodels.AuditLog, err error) {
	list = []dbmodels.AuditLog{}
	tx := i.filteredTx(filter)
	page, limit := filter.GetPage()
	tx = tx.Limit(limit).Offset((page - 1) * limit)
	err = tx.Order("created_at").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) filteredTx(filter auditapimodels.AuditFilter) *gorm.DB {
	tx := i.db.Model(dbmodels.AuditLog{})
	if filter.EntityType != "" {
		tx = tx.Where("entity_type = ?", filter.EntityType)
	}
	if filter.EntityID != "" {
		tx = tx.Where("entity_id = ?", filter.EntityID)
	}
	if filter.ActorID != "" {
		tx = tx.Where("actor_id = ?", filter.ActorID)
	}
	return tx
}
