package applicationstore

import (
	dbmodels "hr-pipeline-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrVersionConflict запись изменена параллельным запросом
var ErrVersionConflict = errors.New("отклик изменен другим запросом")

type Provider interface {
	Create(rec dbmodels.Application) (id string, err error)
	GetByID(id string) (rec *dbmodels.Application, err error)
	GetForUpdate(id string) (rec *dbmodels.Application, err error)
	FindByVacancyAndApplicant(vacancyID, applicantID string) (rec *dbmodels.Application, err error)
	UpdateVersioned(id string, version int, updMap map[string]interface{}) error
	ListCount(filter dbmodels.ApplicationFilter) (count int64, err error)
	List(filter dbmodels.ApplicationFilter) (list []dbmodels.Application, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Application) (id string, err error) {
	if rec.Version == 0 {
		rec.Version = 1
	}
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Application, err error) {
	err = i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Preload("Vacancy").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

// GetForUpdate чтение с блокировкой строки до конца транзакции
func (i impl) GetForUpdate(id string) (rec *dbmodels.Application, err error) {
	err = i.db.
		Model(&dbmodels.Application{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) FindByVacancyAndApplicant(vacancyID, applicantID string) (rec *dbmodels.Application, err error) {
	err = i.db.
		Model(&dbmodels.Application{}).
		Where("vacancy_id = ?", vacancyID).
		Where("applicant_id = ?", applicantID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

// UpdateVersioned обновляет запись только если версия не изменилась, версия увеличивается на 1
func (i impl) UpdateVersioned(id string, version int, updMap map[string]interface{}) error {
	values := map[string]interface{}{}
	for key, value := range updMap {
		values[key] = value
	}
	values["version"] = gorm.Expr("version + 1")
	tx := i.db.
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Where("version = ?", version).
		Updates(values)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrVersionConflict
	}
	return nil
}

func (i impl) ListCount(filter dbmodels.ApplicationFilter) (count int64, err error) {
	err = i.filteredTx(filter).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) List(filter dbmodels.ApplicationFilter) (list []dbmodels.Application, err error) {
	list = []dbmodels.Application{}
	err = i.filteredTx(filter).
		Preload("Vacancy").
		Order("created_at desc").
		Limit(filter.Limit).
		Offset((filter.Page - 1) * filter.Limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) filteredTx(filter dbmodels.ApplicationFilter) *gorm.DB {
	tx := i.db.Model(&dbmodels.Application{})
	if filter.VacancyID != "" {
		tx = tx.Where("vacancy_id = ?", filter.VacancyID)
	}
	if filter.ApplicantID != "" {
		tx = tx.Where("applicant_id = ?", filter.ApplicantID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	return tx
}
