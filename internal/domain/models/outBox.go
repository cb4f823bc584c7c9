package models

import (
	"time"

	"github.com/google/uuid"
)

type TokenAction string

const (
	TokenActionRegister   TokenAction = "register"
	TokenActionUnregister TokenAction = "unregister"
)

type OutBoxMessage struct {
	EventUUID uuid.UUID   `db:"event_uuid" json:"event_uuid"`
	UserID    string      `db:"user_id" json:"user_id"`
	Token     string      `db:"token" json:"token"`
	Action    TokenAction `db:"action" json:"action"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
}
