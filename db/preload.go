package db

import (
	"hr-pipeline-backend/config"
	authutils "hr-pipeline-backend/lib/utils/auth-utils"
	"hr-pipeline-backend/models"
	dbmodels "hr-pipeline-backend/models/db"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func InitPreload() {
	addAdmin(DB)
}

// addAdmin первичный администратор, без него некому выдать роли остальным пользователям
func addAdmin(tx *gorm.DB) {
	adminConf := config.Conf.Admin
	if adminConf.Email == "" {
		log.Warn("администратор не добавлен, отсутствует настройка ADMIN_EMAIL")
		return
	}
	logger := log.WithField("email", adminConf.Email)
	var rec dbmodels.User
	err := tx.Where("email = ?", adminConf.Email).First(&rec).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.WithError(err).Error("ошибка добавления администратора")
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		rec = dbmodels.User{
			Email:        adminConf.Email,
			FirstName:    adminConf.FirstName,
			LastName:     adminConf.LastName,
			Capabilities: models.Capabilities{models.CapabilityAdmin},
			IsActive:     true,
		}
		if err = tx.Create(&rec).Error; err != nil {
			logger.WithError(err).Error("ошибка добавления администратора")
			return
		}
		logger.WithField("user_id", rec.ID).Info("добавлен администратор")
	}
	if !adminConf.PrintToken || config.Conf.Auth.JWTSecret == "" {
		return
	}
	token, err := authutils.GetToken(config.Conf.Auth.JWTSecret, rec.ID, rec.Capabilities,
		time.Duration(config.Conf.Auth.JWTExpireInSec)*time.Second)
	if err != nil {
		logger.WithError(err).Error("ошибка выпуска токена администратора")
		return
	}
	logger.WithField("token", token).Info("токен администратора")
}
