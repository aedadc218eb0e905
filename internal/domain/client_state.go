package domain

import "time"

// Well-known client state keys. Each browser owns one namespace of them.
const (
	StateKeySession        = "userData"
	StateKeyPendingBooking = "pendingBooking"
	StateKeyPendingPayment = "pendingPayment"
)

// ClientState is one key of a browser's persisted key-value namespace.
type ClientState struct {
	ClientID  string    `json:"client_id" gorm:"primaryKey;size:64"`
	Key       string    `json:"key" gorm:"primaryKey;size:64"`
	Value     string    `json:"value" gorm:"type:text;not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime;index"`
}

func (ClientState) TableName() string {
	return "client_state"
}
