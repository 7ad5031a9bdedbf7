package model

import "time"

const (
	NotificationMissedCall = "missedCall"
	NotificationChat       = "chat"
)

type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Number    string    `json:"number,omitempty"`
	Message   string    `json:"message,omitempty"`
	Queue     string    `json:"queue,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	IsRead    bool      `json:"isRead"`
}
