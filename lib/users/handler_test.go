package usershandler

import (
	"hr-pipeline-backend/db"
	apperrors "hr-pipeline-backend/lib/utils/app-errors"
	"hr-pipeline-backend/models"
	usersapimodels "hr-pipeline-backend/models/api/users"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUsers(t *testing.T) {
	DB, err := db.OpenInMemory("users_handler")
	require.NoError(t, err)
	handler := New(DB)
	admin := models.Actor{ID: "admin", Capabilities: models.Capabilities{models.CapabilityAdmin}}
	recruiter := models.Actor{ID: "hr", Capabilities: models.Capabilities{models.CapabilityRecruiter}}

	t.Run(`create user`, func(t *testing.T) {
		request := usersapimodels.CreateUser{Email: " Head@Example.com ", FirstName: "Ольга", Capabilities: []string{"manager", "interviewer"}}
		_, err := handler.CreateUser(recruiter, request)
		require.True(t, apperrors.Is(err, apperrors.KindForbidden))

		id, err := handler.CreateUser(admin, request)
		require.NoError(t, err)
		view, err := handler.GetByID(recruiter, id)
		require.NoError(t, err)
		require.Equal(t, "head@example.com", view.Email)
		require.True(t, view.IsActive)
		require.True(t, view.Capabilities.CanInterview())

		_, err = handler.CreateUser(admin, usersapimodels.CreateUser{Email: "head@example.com", FirstName: "Ольга", Capabilities: []string{"manager"}})
		require.True(t, apperrors.Is(err, apperrors.KindConflict))
	})

	t.Run(`update user`, func(t *testing.T) {
		id, err := handler.CreateUser(admin, usersapimodels.CreateUser{Email: "cand@example.com", FirstName: "Иван", Capabilities: []string{"applicant"}})
		require.NoError(t, err)
		self := models.Actor{ID: id, Capabilities: models.Capabilities{models.CapabilityApplicant}}

		_, err = handler.GetByID(self, id)
		require.NoError(t, err)
		_, err = handler.GetByID(self, "other")
		require.True(t, apperrors.Is(err, apperrors.KindForbidden))
		_, err = handler.GetList(self, 1, 10)
		require.True(t, apperrors.Is(err, apperrors.KindForbidden))

		inactive := false
		require.True(t, apperrors.Is(handler.UpdateUser(recruiter, id, usersapimodels.UpdateUser{IsActive: &inactive}), apperrors.KindForbidden))
		require.True(t, apperrors.Is(handler.UpdateUser(admin, "missing", usersapimodels.UpdateUser{IsActive: &inactive}), apperrors.KindNotFound))
		require.NoError(t, handler.UpdateUser(admin, id, usersapimodels.UpdateUser{IsActive: &inactive, Capabilities: []string{"applicant", "interviewer"}}))

		view, err := handler.GetByID(admin, id)
		require.NoError(t, err)
		require.False(t, view.IsActive)
		require.True(t, view.Capabilities.Has(models.CapabilityInterviewer))

		list, err := handler.GetList(recruiter, 1, 10)
		require.NoError(t, err)
		require.Len(t, list, 2)
	})

	t.Run(`departments`, func(t *testing.T) {
		recruiterID, err := handler.CreateUser(admin, usersapimodels.CreateUser{Email: "hr@example.com", FirstName: "Анна", Capabilities: []string{"recruiter"}})
		require.NoError(t, err)
		_, err = handler.CreateDepartment(admin, usersapimodels.CreateDepartment{Name: "Разработка", ManagerID: recruiterID})
		require.True(t, apperrors.Is(err, apperrors.KindValidation))
		_, err = handler.CreateDepartment(admin, usersapimodels.CreateDepartment{Name: "Разработка", ManagerID: "missing"})
		require.True(t, apperrors.Is(err, apperrors.KindNotFound))

		list, err := handler.GetList(admin, 1, 10)
		require.NoError(t, err)
		managerID := ""
		for _, user := range list {
			if user.Email == "head@example.com" {
				managerID = user.ID
			}
		}
		_, err = handler.CreateDepartment(recruiter, usersapimodels.CreateDepartment{Name: "Разработка", ManagerID: managerID})
		require.True(t, apperrors.Is(err, apperrors.KindForbidden))
		_, err = handler.CreateDepartment(admin, usersapimodels.CreateDepartment{Name: "Разработка", ManagerID: managerID})
		require.NoError(t, err)

		departments, err := handler.GetDepartmentList()
		require.NoError(t, err)
		require.Len(t, departments, 1)
	})
}
