package models

import (
	"fmt"
	"time"
)

type NotificationType string

type NotificationTpl struct {
	Name  string
	Title string
	Msg   string
}

const NotificationTimeLayout = "02.01.2006 15:04"

var NotificationTplMap = map[NotificationType]NotificationTpl{
	NotifyApplicationReceived:  {Name: "Новый отклик на вакансию", Title: "Новый отклик", Msg: "На вакансию «%v» поступил новый отклик."},
	NotifyApplicationWithdrawn: {Name: "Кандидат отозвал отклик", Title: "Отклик отозван", Msg: "Кандидат отозвал отклик на вакансию «%v». Причина: %v."},
	NotifyApplicationRejected:  {Name: "Отклик отклонен", Title: "Решение по отклику", Msg: "К сожалению, ваш отклик на вакансию «%v» отклонен."},
	NotifyApplicationAccepted:  {Name: "Кандидат принят", Title: "Поздравляем!", Msg: "Ваша кандидатура на вакансию «%v» одобрена."},

	NotifyInterviewScheduled:   {Name: "Назначено собеседование", Title: "Назначено собеседование", Msg: "Собеседование «%v» назначено на %v (%v мин.), место: %v."},
	NotifyInterviewRescheduled: {Name: "Собеседование перенесено", Title: "Собеседование перенесено", Msg: "Собеседование «%v» перенесено с %v на %v. Причина: %v."},
	NotifyInterviewCancelled:   {Name: "Собеседование отменено", Title: "Собеседование отменено", Msg: "Собеседование «%v» отменено. Причина: %v."},
	NotifyInterviewerAssigned:  {Name: "Назначение интервьюером", Title: "Вы назначены интервьюером", Msg: "Вы назначены интервьюером на собеседование «%v» %v."},

	NotifyTestInvitation: {Name: "Приглашение на тестирование", Title: "Приглашение на тестирование", Msg: "Вы приглашены пройти тест «%v». Пройти тест необходимо до %v."},
}

const (
	NotifyApplicationReceived  NotificationType = "APPLICATION_RECEIVED"
	NotifyApplicationWithdrawn NotificationType = "APPLICATION_WITHDRAWN"
	NotifyApplicationRejected  NotificationType = "APPLICATION_REJECTED"
	NotifyApplicationAccepted  NotificationType = "APPLICATION_ACCEPTED"

	NotifyInterviewScheduled   NotificationType = "INTERVIEW_SCHEDULED"
	NotifyInterviewRescheduled NotificationType = "INTERVIEW_RESCHEDULED"
	NotifyInterviewCancelled   NotificationType = "INTERVIEW_CANCELLED"
	NotifyInterviewerAssigned  NotificationType = "INTERVIEWER_ASSIGNED"

	NotifyTestInvitation NotificationType = "TEST_INVITATION"
)

type NotificationData struct {
	Type  NotificationType
	Title string
	Msg   string
}

func formatTime(t time.Time) string {
	return t.UTC().Format(NotificationTimeLayout)
}

func GetNotifyApplicationReceived(vacancyTitle string) NotificationData {
	code := NotifyApplicationReceived
	return NotificationData{
		Type:  code,
		Title: NotificationTplMap[code].Title,
		Msg:   fmt.Sprintf(NotificationTplMap[code].Msg, vacancyTitle),
	}
}

func GetNotifyApplicationWithdrawn(vacancyTitle, reason string) NotificationData {
	code := NotifyApplicationWithdrawn
	if reason == "" {
		reason = "не указана"
	}
	return NotificationData{
		Type:  code,
		Title: NotificationTplMap[code].Title,
		Msg:   fmt.Sprintf(NotificationTplMap[code].Msg, vacancyTitle, reason),
	}
}

// GetNotifyApplicationDecision уведомление кандидату о финальном решении, для прочих статусов ok=false
func GetNotifyApplicationDecision(vacancyTitle string, status ApplicationStatus) (data NotificationData, ok bool) {
	var code NotificationType
	switch status {
	case ApplicationStatusRejected:
		code = NotifyApplicationRejected
	case ApplicationStatusAccepted:
		code = NotifyApplicationAccepted
	default:
		return NotificationData{}, false
	}
	return NotificationData{
		Type:  code,
		Title: NotificationTplMap[code].Title,
		Msg:   fmt.Sprintf(NotificationTplMap[code].Msg, vacancyTitle),
	}, true
}

func GetNotifyInterviewScheduled(title string, scheduledAt time.Time, durationMinutes int, location string) NotificationData {
	code := NotifyInterviewScheduled
	if location == "" {
		location = "будет сообщено дополнительно"
	}
	return NotificationData{
		Type:  code,
		Title: NotificationTplMap[code].Title,
		Msg:   fmt.Sprintf(NotificationTplMap[code].Msg, title, formatTime(scheduledAt), durationMinutes, location),
	}
}

func GetNotifyInterviewRescheduled(title string, oldTime, newTime time.Time, reason string) NotificationData {
	code := NotifyInterviewRescheduled
	return NotificationData{
		Type:  code,
		Title: NotificationTplMap[code].Title,
		Msg:   fmt.Sprintf(NotificationTplMap[code].Msg, title, formatTime(oldTime), formatTime(newTime), reason),
	}
}

func GetNotifyInterviewCancelled(title, reason string) NotificationData {
	code := NotifyInterviewCancelled
	return NotificationData{
		Type:  code,
		Title: NotificationTplMap[code].Title,
		Msg:   fmt.Sprintf(NotificationTplMap[code].Msg, title, reason),
	}
}

func GetNotifyInterviewerAssigned(title string, scheduledAt time.Time) NotificationData {
	code := NotifyInterviewerAssigned
	return NotificationData{
		Type:  code,
		Title: NotificationTplMap[code].Title,
		Msg:   fmt.Sprintf(NotificationTplMap[code].Msg, title, formatTime(scheduledAt)),
	}
}

func GetNotifyTestInvitation(testTitle string, deadline time.Time) NotificationData {
	code := NotifyTestInvitation
	return NotificationData{
		Type:  code,
		Title: NotificationTplMap[code].Title,
		Msg:   fmt.Sprintf(NotificationTplMap[code].Msg, testTitle, formatTime(deadline)),
	}
}
