package notification

type DecisionRequest struct {
	NotificationID int64 `json:"notificationId" validate:"required,gt=0"`
}

// ClientMessage is a command sent by the browser over the websocket.
type ClientMessage struct {
	Type           string `json:"type"`
	NotificationID int64  `json:"notificationId,omitempty"`
	BookingID      int64  `json:"bookingId,omitempty"`
}

type ServerMessage struct {
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

const (
	MsgRefresh = "refresh"
	MsgRead    = "read"
	MsgReadAll = "read_all"
	MsgAccept  = "accept"
	MsgReject  = "reject"
	MsgPing    = "ping"
	MsgPong    = "pong"
	MsgError   = "error"
)
