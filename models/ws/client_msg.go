package wsmodels

type ClientAction string

const (
	// ClientActionRead пользователь прочитал уведомление
	ClientActionRead ClientAction = "read"
)

type ClientMessage struct {
	Action         ClientAction `json:"action"`
	NotificationID string       `json:"notification_id"`
}
