package models

import "github.com/pkg/errors"

type InterviewStatus string

const (
	InterviewStatusScheduled   InterviewStatus = "SCHEDULED"
	InterviewStatusRescheduled InterviewStatus = "RESCHEDULED"
	InterviewStatusCompleted   InterviewStatus = "COMPLETED"
	InterviewStatusCancelled   InterviewStatus = "CANCELLED"
)

var interviewStatusHumanName = map[InterviewStatus]string{
	InterviewStatusScheduled:   "Назначено",
	InterviewStatusRescheduled: "Перенесено",
	InterviewStatusCompleted:   "Проведено",
	InterviewStatusCancelled:   "Отменено",
}

func (s InterviewStatus) ToHuman() string {
	if human, exist := interviewStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s InterviewStatus) Validate() error {
	if _, exist := interviewStatusHumanName[s]; !exist {
		return errors.Errorf("неизвестный статус собеседования: %v", s)
	}
	return nil
}

func (s InterviewStatus) IsTerminal() bool {
	return s == InterviewStatusCompleted || s == InterviewStatusCancelled
}

// IsOpen собеседование можно переносить, отменять и менять состав интервьюеров
func (s InterviewStatus) IsOpen() bool {
	return s == InterviewStatusScheduled || s == InterviewStatusRescheduled
}
