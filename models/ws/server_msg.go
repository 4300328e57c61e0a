package wsmodels

type ServerMessage struct {
	ToUserID       string `json:"-"`
	NotificationID string `json:"notification_id"` // идентификатор уведомления
	Time           string `json:"time"`            // время события
	Code           string `json:"code"`            // код события
	Title          string `json:"title"`           // заголовок события
	Msg            string `json:"msg"`             // текст события
}

const TimeLayout = "02.01.2006 15:04:05"
