package usersapimodels

import (
	"hr-pipeline-backend/models"
	dbmodels "hr-pipeline-backend/models/db"
	"net/mail"

	"github.com/pkg/errors"
)

type CreateUser struct {
	Email        string   `json:"email"`        // Почта
	FirstName    string   `json:"first_name"`   // Имя
	LastName     string   `json:"last_name"`    // Фамилия
	Capabilities []string `json:"capabilities"` // Роли: applicant, recruiter, interviewer, manager, admin
}

func (r CreateUser) Validate() error {
	if r.Email == "" {
		return errors.New("не указана почта")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("некорректная почта")
	}
	if r.FirstName == "" {
		return errors.New("не указано имя")
	}
	if len(r.Capabilities) == 0 {
		return errors.New("не указаны роли пользователя")
	}
	for _, capability := range r.Capabilities {
		if err := models.Capability(capability).Validate(); err != nil {
			return err
		}
	}
	return nil
}

type UpdateUser struct {
	Capabilities []string `json:"capabilities"` // Роли
	IsActive     *bool    `json:"is_active"`    // Активен
}

func (r UpdateUser) Validate() error {
	for _, capability := range r.Capabilities {
		if err := models.Capability(capability).Validate(); err != nil {
			return err
		}
	}
	return nil
}

type UserView struct {
	ID           string              `json:"id"`
	Email        string              `json:"email"`
	FirstName    string              `json:"first_name"`
	LastName     string              `json:"last_name"`
	Capabilities models.Capabilities `json:"capabilities"`
	IsActive     bool                `json:"is_active"`
}

func Convert(rec dbmodels.User) UserView {
	return UserView{
		ID:           rec.ID,
		Email:        rec.Email,
		FirstName:    rec.FirstName,
		LastName:     rec.LastName,
		Capabilities: rec.Capabilities,
		IsActive:     rec.IsActive,
	}
}

type CreateDepartment struct {
	Name      string `json:"name"`       // Название
	ManagerID string `json:"manager_id"` // Руководитель
}

func (r CreateDepartment) Validate() error {
	if r.Name == "" {
		return errors.New("не указано название подразделения")
	}
	if r.ManagerID == "" {
		return errors.New("не указан руководитель подразделения")
	}
	return nil
}

type DepartmentView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ManagerID string `json:"manager_id"`
}

func ConvertDepartment(rec dbmodels.Department) DepartmentView {
	return DepartmentView{
		ID:        rec.ID,
		Name:      rec.Name,
		ManagerID: rec.ManagerID,
	}
}
