package models

type ChannelID string

const (
	ChannelOrderReady   ChannelID = "order_ready"
	ChannelOrderUpdates ChannelID = "order_updates"
	ChannelWallet       ChannelID = "wallet"
	ChannelGeneral      ChannelID = "general"
)

type Priority string

const (
	PriorityDefault Priority = "default"
	PriorityHigh    Priority = "high"
	PriorityMax     Priority = "max"
)

// Channel is a named presentation profile on the device notification surface.
type Channel struct {
	ID                ChannelID `json:"id"`
	Name              string    `json:"name"`
	Priority          Priority  `json:"priority"`
	Sound             string    `json:"sound"`
	Vibration         []int64   `json:"vibration,omitempty"`
	LockscreenVisible bool      `json:"lockscreen_visible"`
	BypassDND         bool      `json:"bypass_dnd"`
}

// CategoryAlarm marks a full-screen presentation that may show over the lock screen.
const CategoryAlarm = "alarm"

type Presentation struct {
	EventKey   string            `json:"event_key"`
	ChannelID  ChannelID         `json:"channel_id"`
	Title      string            `json:"title"`
	Body       string            `json:"body"`
	Priority   Priority          `json:"priority"`
	FullScreen bool              `json:"full_screen"`
	Category   string            `json:"category,omitempty"`
	Payload    map[string]string `json:"payload"`
}
