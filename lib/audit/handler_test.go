package audithandler

import (
	"context"
	"hr-pipeline-backend/db"
	apperrors "hr-pipeline-backend/lib/utils/app-errors"
	"hr-pipeline-backend/models"
	apimodels "hr-pipeline-backend/models/api"
	auditapimodels "hr-pipeline-backend/models/api/audit"
	dbmodels "hr-pipeline-backend/models/db"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAudit(t *testing.T) {
	DB, err := db.OpenInMemory("audit_handler")
	require.NoError(t, err)
	handler := New(DB)
	ctx := context.Background()
	admin := models.Actor{ID: "admin", Capabilities: models.Capabilities{models.CapabilityAdmin}}
	recruiter := models.Actor{ID: "hr", Capabilities: models.Capabilities{models.CapabilityRecruiter}}

	require.NoError(t, handler.Record(ctx, dbmodels.AuditLog{
		ActorID:    recruiter.ID,
		Action:     models.AuditApplicationStatus,
		EntityType: models.EntityApplication,
		EntityID:   "app1",
		Origin:     "10.0.0.1",
		Changes: dbmodels.EntityChanges{
			Description: "Изменен статус отклика",
			Data:        []dbmodels.FieldChanges{{Field: "status", OldValue: "APPLIED", NewValue: "SCREENING"}},
		},
	}))
	require.NoError(t, handler.Record(ctx, dbmodels.AuditLog{
		ActorID:    recruiter.ID,
		Action:     models.AuditInterviewScheduled,
		EntityType: models.EntityInterview,
		EntityID:   "int1",
	}))
	require.NoError(t, handler.Record(ctx, dbmodels.AuditLog{
		ActorID:    admin.ID,
		Action:     models.AuditApplicationStatus,
		EntityType: models.EntityApplication,
		EntityID:   "app2",
	}))

	t.Run(`admin only`, func(t *testing.T) {
		_, _, err := handler.List(recruiter, auditapimodels.AuditFilter{})
		require.True(t, apperrors.Is(err, apperrors.KindForbidden))
	})

	t.Run(`filters`, func(t *testing.T) {
		list, count, err := handler.List(admin, auditapimodels.AuditFilter{})
		require.NoError(t, err)
		require.Equal(t, int64(3), count)
		require.Len(t, list, 3)

		list, count, err = handler.List(admin, auditapimodels.AuditFilter{EntityType: models.EntityApplication, EntityID: "app1"})
		require.NoError(t, err)
		require.Equal(t, int64(1), count)
		require.Equal(t, "10.0.0.1", list[0].Origin)
		require.Equal(t, "SCREENING", list[0].Changes.Data[0].NewValue)

		_, count, err = handler.List(admin, auditapimodels.AuditFilter{ActorID: recruiter.ID})
		require.NoError(t, err)
		require.Equal(t, int64(2), count)

		list, count, err = handler.List(admin, auditapimodels.AuditFilter{Pagination: apimodels.Pagination{Limit: 2, Page: 3}})
		require.NoError(t, err)
		require.Equal(t, int64(3), count)
		require.Empty(t, list)
	})

	t.Run(`filter validation`, func(t *testing.T) {
		require.Error(t, auditapimodels.AuditFilter{EntityID: "app1"}.Validate())
		require.Error(t, auditapimodels.AuditFilter{EntityType: "payroll"}.Validate())
		require.NoError(t, auditapimodels.AuditFilter{EntityType: models.EntityTest}.Validate())
	})
}
