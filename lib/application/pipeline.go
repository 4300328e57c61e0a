package applicationhandler

import (
	applicationstore "hr-pipeline-backend/lib/application/store"
	apperrors "hr-pipeline-backend/lib/utils/app-errors"
	"hr-pipeline-backend/models"
	dbmodels "hr-pipeline-backend/models/db"

	"gorm.io/gorm"
)

// CheckRuleGate бизнес-условия перехода сверх графа статусов
func CheckRuleGate(current, target models.ApplicationStatus, stats dbmodels.EvaluationSummary) error {
	switch target {
	case models.ApplicationStatusOffered:
		return checkRating(stats, "выставить оффер")
	case models.ApplicationStatusAccepted:
		if current != models.ApplicationStatusOffered {
			return apperrors.RuleViolation("принять кандидата можно только из статуса '%v'", models.ApplicationStatusOffered.ToHuman())
		}
		return checkRating(stats, "принять кандидата")
	}
	return nil
}

func checkRating(stats dbmodels.EvaluationSummary, action string) error {
	if stats.TotalEvaluations == 0 {
		return apperrors.RuleViolation("%v нельзя: у кандидата нет ни одной оценки", action)
	}
	if stats.AverageRating < models.MinOfferRating {
		return apperrors.RuleViolation("%v нельзя: средняя оценка %.2f ниже %.0f", action, stats.AverageRating, models.MinOfferRating)
	}
	return nil
}

// MoveToSubStatus перевод отклика в подстатус движками собеседований и тестирования.
// Вызывается внутри транзакции вызывающего, app должен быть прочитан с блокировкой.
// Движок может перевести отклик сразу через этап, откат на более ранний этап запрещен.
// changed=false, если отклик уже в target
func MoveToSubStatus(tx *gorm.DB, app *dbmodels.Application, target models.ApplicationStatus) (changed bool, err error) {
	if app.Status == target {
		return false, nil
	}
	if app.Status.IsTerminal() {
		return false, apperrors.AlreadyInTerminalState("отклик уже в финальном статусе '%v'", app.Status.ToHuman())
	}
	if !target.IsSubStatus() || !app.Status.IsForwardOrSame(target) {
		return false, transitionError(app.Status, target)
	}
	err = applicationstore.NewInstance(tx).UpdateVersioned(app.ID, app.Version, map[string]interface{}{
		"status": target,
	})
	if err != nil {
		return false, versionError(err)
	}
	app.Status = target
	app.Version++
	return true, nil
}

// AdvanceToSubStatus перевод в подстатус без отката: отклик, ушедший по воронке дальше,
// остается на своем этапе
func AdvanceToSubStatus(tx *gorm.DB, app *dbmodels.Application, target models.ApplicationStatus) (changed bool, err error) {
	if !app.Status.IsTerminal() && !app.Status.IsForwardOrSame(target) {
		return false, nil
	}
	return MoveToSubStatus(tx, app, target)
}

// StatusChangeAudit запись аудита о смене статуса отклика
func StatusChangeAudit(actor models.Actor, applicationID string, from, to models.ApplicationStatus, description string) dbmodels.AuditLog {
	return dbmodels.AuditLog{
		ActorID:    actor.ID,
		Action:     models.AuditApplicationStatus,
		EntityType: models.EntityApplication,
		EntityID:   applicationID,
		Origin:     actor.Origin,
		Changes: dbmodels.EntityChanges{
			Description: description,
			Data:        []dbmodels.FieldChanges{{Field: "status", OldValue: from, NewValue: to}},
		},
	}
}

func statusNames(list []models.ApplicationStatus) []string {
	result := make([]string, 0, len(list))
	for _, status := range list {
		result = append(result, string(status))
	}
	return result
}

func transitionError(from, to models.ApplicationStatus) error {
	allowed := statusNames(from.AllowedTransitions())
	if len(allowed) == 0 {
		return apperrors.InvalidTransition(nil, "отклик в финальном статусе '%v', смена статуса невозможна", from.ToHuman())
	}
	return apperrors.InvalidTransition(allowed, "переход отклика из '%v' в '%v' недопустим", from.ToHuman(), to.ToHuman())
}
