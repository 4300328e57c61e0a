package db

import (
	dbmodels "hr-pipeline-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func AutoMigrateDB() error {
	log.Info("Запуск миграций")
	if err := Migrate(DB); err != nil {
		return err
	}
	log.Info("Миграция прошла успешно")
	return nil
}

func Migrate(tx *gorm.DB) error {
	if err := tx.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	if err := tx.AutoMigrate(&dbmodels.Department{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Department")
	}
	if err := tx.AutoMigrate(&dbmodels.Vacancy{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Vacancy")
	}
	if err := tx.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Application")
	}
	if err := tx.AutoMigrate(&dbmodels.Evaluation{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Evaluation")
	}
	if err := tx.AutoMigrate(&dbmodels.ManagerRecommendation{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ManagerRecommendation")
	}
	if err := tx.AutoMigrate(&dbmodels.Interview{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Interview")
	}
	if err := tx.AutoMigrate(&dbmodels.InterviewerAssignment{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры InterviewerAssignment")
	}
	if err := tx.AutoMigrate(&dbmodels.Test{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Test")
	}
	if err := tx.AutoMigrate(&dbmodels.TestAttempt{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры TestAttempt")
	}
	if err := tx.AutoMigrate(&dbmodels.AuditLog{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры AuditLog")
	}
	if err := tx.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Notification")
	}
	return nil
}
