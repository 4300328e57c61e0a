package usershandler

import (
	"hr-pipeline-backend/db"
	usersstore "hr-pipeline-backend/lib/users/store"
	apperrors "hr-pipeline-backend/lib/utils/app-errors"
	"hr-pipeline-backend/models"
	usersapimodels "hr-pipeline-backend/models/api/users"
	dbmodels "hr-pipeline-backend/models/db"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	CreateUser(actor models.Actor, request usersapimodels.CreateUser) (string, error)
	UpdateUser(actor models.Actor, userID string, request usersapimodels.UpdateUser) error
	GetByID(actor models.Actor, userID string) (usersapimodels.UserView, error)
	GetList(actor models.Actor, page, limit int) ([]usersapimodels.UserView, error)
	CreateDepartment(actor models.Actor, request usersapimodels.CreateDepartment) (string, error)
	GetDepartmentList() ([]usersapimodels.DepartmentView, error)
}

var Instance Provider

func NewHandler() {
	Instance = New(db.DB)
}

func New(DB *gorm.DB) Provider {
	return impl{
		store: usersstore.NewInstance(DB),
	}
}

type impl struct {
	store usersstore.Provider
}

func (i impl) CreateUser(actor models.Actor, request usersapimodels.CreateUser) (string, error) {
	if !actor.Has(models.CapabilityAdmin) {
		return "", apperrors.Forbidden("создавать пользователей может только администратор")
	}
	email := strings.ToLower(strings.TrimSpace(request.Email))
	logger := log.WithField("email", email)
	existed, err := i.store.FindByEmail(email)
	if err != nil {
		logger.WithError(err).Error("ошибка проверки уже существующего пользователя")
		return "", errors.New("ошибка проверки уже существующего пользователя")
	}
	if existed != nil {
		return "", apperrors.Conflict("пользователь с такой почтой уже существует")
	}
	id, err := i.store.Create(dbmodels.User{
		Email:        email,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Capabilities: models.ParseCapabilities(request.Capabilities),
		IsActive:     true,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка создания пользователя")
		return "", errors.New("ошибка создания пользователя")
	}
	return id, nil
}

func (i impl) UpdateUser(actor models.Actor, userID string, request usersapimodels.UpdateUser) error {
	if !actor.Has(models.CapabilityAdmin) {
		return apperrors.Forbidden("изменять пользователей может только администратор")
	}
	logger := log.WithField("user_id", userID)
	user, err := i.store.GetByID(userID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения пользователя")
		return errors.New("ошибка получения пользователя")
	}
	if user == nil {
		return apperrors.NotFound("пользователь не найден")
	}
	updMap := map[string]interface{}{}
	if request.Capabilities != nil {
		updMap["capabilities"] = models.ParseCapabilities(request.Capabilities)
	}
	if request.IsActive != nil {
		updMap["is_active"] = *request.IsActive
	}
	if len(updMap) == 0 {
		return nil
	}
	if err = i.store.Update(userID, updMap); err != nil {
		logger.WithError(err).Error("ошибка изменения пользователя")
		return errors.New("ошибка изменения пользователя")
	}
	return nil
}

func (i impl) GetByID(actor models.Actor, userID string) (usersapimodels.UserView, error) {
	if actor.ID != userID && !actor.Capabilities.IsStaff() {
		return usersapimodels.UserView{}, apperrors.Forbidden("нет доступа к пользователю")
	}
	user, err := i.store.GetByID(userID)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Error("ошибка получения пользователя")
		return usersapimodels.UserView{}, errors.New("ошибка получения пользователя")
	}
	if user == nil {
		return usersapimodels.UserView{}, apperrors.NotFound("пользователь не найден")
	}
	return usersapimodels.Convert(*user), nil
}

func (i impl) GetList(actor models.Actor, page, limit int) ([]usersapimodels.UserView, error) {
	if !actor.Capabilities.IsStaff() {
		return nil, apperrors.Forbidden("нет доступа к списку пользователей")
	}
	list, err := i.store.GetList(page, limit)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка пользователей")
		return nil, errors.New("ошибка получения списка пользователей")
	}
	result := make([]usersapimodels.UserView, 0, len(list))
	for _, rec := range list {
		result = append(result, usersapimodels.Convert(rec))
	}
	return result, nil
}

func (i impl) CreateDepartment(actor models.Actor, request usersapimodels.CreateDepartment) (string, error) {
	if !actor.Has(models.CapabilityAdmin) {
		return "", apperrors.Forbidden("создавать подразделения может только администратор")
	}
	manager, err := i.store.GetByID(request.ManagerID)
	if err != nil {
		log.WithField("user_id", request.ManagerID).WithError(err).Error("ошибка получения руководителя")
		return "", errors.New("ошибка получения руководителя")
	}
	if manager == nil {
		return "", apperrors.NotFound("руководитель не найден")
	}
	if !manager.Capabilities.Has(models.CapabilityManager) {
		return "", apperrors.Validation("пользователь %v не является руководителем", manager.GetFullName())
	}
	id, err := i.store.CreateDepartment(dbmodels.Department{
		Name:      request.Name,
		ManagerID: manager.ID,
	})
	if err != nil {
		log.WithError(err).Error("ошибка создания подразделения")
		return "", errors.New("ошибка создания подразделения")
	}
	return id, nil
}

func (i impl) GetDepartmentList() ([]usersapimodels.DepartmentView, error) {
	list, err := i.store.GetDepartmentList()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка подразделений")
		return nil, errors.New("ошибка получения списка подразделений")
	}
	result := make([]usersapimodels.DepartmentView, 0, len(list))
	for _, rec := range list {
		result = append(result, usersapimodels.ConvertDepartment(rec))
	}
	return result, nil
}
