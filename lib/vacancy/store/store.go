package vacancystore

import (
	vacancyapimodels "hr-pipeline-backend/models/api/vacancy"
	dbmodels "hr-pipeline-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.Vacancy) (id string, err error)
	GetByID(id string) (rec *dbmodels.Vacancy, err error)
	Update(id string, updMap map[string]interface{}) error
	ListCount(filter vacancyapimodels.VacancyFilter, onlyPublished bool) (count int64, err error)
	List(filter vacancyapimodels.VacancyFilter, onlyPublished bool) (list []dbmodels.Vacancy, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Vacancy) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Vacancy, error) {
	rec := dbmodels.Vacancy{}
	err := i.db.
		Model(&dbmodels.Vacancy{}).
		Where("id = ?", id).
		Preload(clause.Associations).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Vacancy{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) ListCount(filter vacancyapimodels.VacancyFilter, onlyPublished bool) (count int64, err error) {
	err = i.filteredTx(filter, onlyPublished).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) List(filter vacancyapimodels.VacancyFilter, onlyPublished bool) (list []dbmodels.Vacancy, err error) {
	list = []dbmodels.Vacancy{}
	page, limit := filter.GetPage()
	err = i.filteredTx(filter, onlyPublished).
		Preload(clause.Associations).
		Order("created_at desc").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) filteredTx(filter vacancyapimodels.VacancyFilter, onlyPublished bool) *gorm.DB {
	tx := i.db.Model(&dbmodels.Vacancy{})
	if onlyPublished {
		tx = tx.Where("is_published = ?", true)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.DepartmentID != "" {
		tx = tx.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.Search != "" {
		tx = tx.Where("LOWER(title) like ?", "%"+strings.ToLower(filter.Search)+"%")
	}
	return tx
}
