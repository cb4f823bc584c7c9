package push

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/ingestion"
)

var validate = validator.New()

type PushRequest struct {
	MessageID    string              `json:"message_id" validate:"max=256"`
	Notification NotificationRequest `json:"notification"`
	Data         map[string]string   `json:"data" validate:"omitempty,dive,keys,required,max=64,endkeys,max=4096"`
	SentAt       time.Time           `json:"sent_at"`
}

type NotificationRequest struct {
	Title string `json:"title" validate:"max=256"`
	Body  string `json:"body" validate:"max=4096"`
}

func (r *PushRequest) validate() error {
	return validate.Struct(r)
}

func (r *PushRequest) toServiceRepresentation() ingestion.RemoteMessage {
	return ingestion.RemoteMessage{
		MessageID: r.MessageID,
		Notification: ingestion.Notification{
			Title: r.Notification.Title,
			Body:  r.Notification.Body,
		},
		Data:   r.Data,
		SentAt: r.SentAt,
	}
}
