package models

import (
	"slices"

	"github.com/pkg/errors"
)

type ApplicationStatus string

const (
	ApplicationStatusApplied   ApplicationStatus = "APPLIED"
	ApplicationStatusScreening ApplicationStatus = "SCREENING"
	ApplicationStatusInterview ApplicationStatus = "INTERVIEW"
	ApplicationStatusOffered   ApplicationStatus = "OFFERED"
	ApplicationStatusAccepted  ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected  ApplicationStatus = "REJECTED"
	ApplicationStatusWithdrawn ApplicationStatus = "WITHDRAWN"

	// подстатусы этапа SCREENING
	ApplicationStatusTestInvited   ApplicationStatus = "TEST_INVITED"
	ApplicationStatusTestCompleted ApplicationStatus = "TEST_COMPLETED"
	// подстатусы этапа INTERVIEW
	ApplicationStatusInterviewR1 ApplicationStatus = "INTERVIEW_R1"
	ApplicationStatusInterviewR2 ApplicationStatus = "INTERVIEW_R2"
)

// MinOfferRating минимальная средняя оценка для оффера и принятия
const MinOfferRating = 6.0

var applicationStatusHumanName = map[ApplicationStatus]string{
	ApplicationStatusApplied:       "Отклик получен",
	ApplicationStatusScreening:     "Скрининг",
	ApplicationStatusInterview:     "Собеседование",
	ApplicationStatusOffered:       "Оффер",
	ApplicationStatusAccepted:      "Принят",
	ApplicationStatusRejected:      "Отклонен",
	ApplicationStatusWithdrawn:     "Отозван кандидатом",
	ApplicationStatusTestInvited:   "Приглашен на тестирование",
	ApplicationStatusTestCompleted: "Тестирование пройдено",
	ApplicationStatusInterviewR1:   "Собеседование, 1 раунд",
	ApplicationStatusInterviewR2:   "Собеседование, 2+ раунд",
}

var applicationStatusPhase = map[ApplicationStatus]ApplicationStatus{
	ApplicationStatusTestInvited:   ApplicationStatusScreening,
	ApplicationStatusTestCompleted: ApplicationStatusScreening,
	ApplicationStatusInterviewR1:   ApplicationStatusInterview,
	ApplicationStatusInterviewR2:   ApplicationStatusInterview,
}

// граф переходов между этапами, отсутствие ребра - переход запрещен
var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationStatusApplied:   {ApplicationStatusScreening, ApplicationStatusRejected, ApplicationStatusWithdrawn},
	ApplicationStatusScreening: {ApplicationStatusInterview, ApplicationStatusRejected, ApplicationStatusWithdrawn},
	ApplicationStatusInterview: {ApplicationStatusOffered, ApplicationStatusRejected, ApplicationStatusWithdrawn},
	ApplicationStatusOffered:   {ApplicationStatusAccepted, ApplicationStatusRejected, ApplicationStatusWithdrawn},
}

var applicationPhaseOrder = map[ApplicationStatus]int{
	ApplicationStatusApplied:   0,
	ApplicationStatusScreening: 1,
	ApplicationStatusInterview: 2,
	ApplicationStatusOffered:   3,
}

func (s ApplicationStatus) ToHuman() string {
	if human, exist := applicationStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ApplicationStatus) Validate() error {
	if _, exist := applicationStatusHumanName[s]; !exist {
		return errors.Errorf("неизвестный статус отклика: %v", s)
	}
	return nil
}

// Phase основной этап воронки, для подстатусов - родительский этап
func (s ApplicationStatus) Phase() ApplicationStatus {
	if phase, ok := applicationStatusPhase[s]; ok {
		return phase
	}
	return s
}

func (s ApplicationStatus) IsSubStatus() bool {
	_, ok := applicationStatusPhase[s]
	return ok
}

func (s ApplicationStatus) IsTerminal() bool {
	switch s.Phase() {
	case ApplicationStatusAccepted, ApplicationStatusRejected, ApplicationStatusWithdrawn:
		return true
	}
	return false
}

// AllowedTransitions этапы, на которые можно перейти из текущего статуса
func (s ApplicationStatus) AllowedTransitions() []ApplicationStatus {
	return slices.Clone(applicationTransitions[s.Phase()])
}

// IsAllowChange проверка по графу переходов. Переход между значениями одного этапа
// (TEST_COMPLETED -> SCREENING, INTERVIEW_R1 -> INTERVIEW) допустим
func (s ApplicationStatus) IsAllowChange(newStatus ApplicationStatus) bool {
	from := s.Phase()
	to := newStatus.Phase()
	if s.IsTerminal() {
		return false
	}
	if from == to {
		return true
	}
	return slices.Contains(applicationTransitions[from], to)
}

// IsForwardOrSame переход в подстатус не должен откатывать отклик на более ранний этап
func (s ApplicationStatus) IsForwardOrSame(newStatus ApplicationStatus) bool {
	from, okFrom := applicationPhaseOrder[s.Phase()]
	to, okTo := applicationPhaseOrder[newStatus.Phase()]
	if !okFrom || !okTo {
		return false
	}
	return to >= from
}

// CanWithdraw отозвать можно из любого нетерминального статуса
func (s ApplicationStatus) CanWithdraw() bool {
	return !s.IsTerminal()
}

func InterviewRoundStatus(round int) ApplicationStatus {
	if round <= 1 {
		return ApplicationStatusInterviewR1
	}
	return ApplicationStatusInterviewR2
}
