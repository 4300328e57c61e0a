package models

import (
	"slices"

	"github.com/pkg/errors"
)

type VacancyStatus string

const (
	VacancyStatusDraft  VacancyStatus = "DRAFT"
	VacancyStatusOpen   VacancyStatus = "OPEN"
	VacancyStatusClosed VacancyStatus = "CLOSED"
)

var vacancyStatusHumanName = map[VacancyStatus]string{
	VacancyStatusDraft:  "Черновик",
	VacancyStatusOpen:   "Открыта",
	VacancyStatusClosed: "Закрыта",
}

var vacancyTransitions = map[VacancyStatus][]VacancyStatus{
	VacancyStatusDraft:  {VacancyStatusOpen, VacancyStatusClosed},
	VacancyStatusOpen:   {VacancyStatusClosed},
	VacancyStatusClosed: {VacancyStatusOpen},
}

func (s VacancyStatus) ToHuman() string {
	if human, exist := vacancyStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s VacancyStatus) Validate() error {
	if _, exist := vacancyStatusHumanName[s]; !exist {
		return errors.Errorf("неизвестный статус вакансии: %v", s)
	}
	return nil
}

func (s VacancyStatus) IsAllowChange(newStatus VacancyStatus) bool {
	return slices.Contains(vacancyTransitions[s], newStatus)
}
