package ws

import (
	"encoding/json"

	"chatrelaygo/internal/presence"
)

// Envelope wraps every WS frame in both directions.
type Envelope struct {
	Event string          `json:"event"`          // e.g. "enterRoom"
	Body  json.RawMessage `json:"body,omitempty"` // arbitrary JSON
}

// Inbound event names.
const (
	evtEnterRoom = "enterRoom"
	evtMessage   = "message"
	evtActivity  = "activity"
)

// Outbound event names. evtMessage and evtActivity are reused on the way
// out; these two are server-initiated only.
const (
	evtUserList    = "userList"
	evtActiveUsers = "activeUsersUpdate"
)

// ──────────────────────────── Request DTOs ───────────────────────────────

// EnterRoomBody is the body for "enterRoom".
type EnterRoomBody struct {
	Name string `json:"name"`
	Room string `json:"room"`
}

// MessageBody is the body for an inbound "message".
type MessageBody struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// ──────────────────────────── Outbound DTOs ──────────────────────────────

// ChatMessage is the body of every outbound "message" frame, chat text and
// admin notices alike. Time is stamped at broadcast time.
type ChatMessage struct {
	Name string `json:"name"`
	Text string `json:"text"`
	Time string `json:"time"` // hh:mm:ss
}

// UserListBody carries a room's refreshed occupant list.
type UserListBody struct {
	Users []presence.Record `json:"users"`
}

// ActiveUsersBody carries the global (name, room) directory.
type ActiveUsersBody struct {
	ActiveUsers []presence.ActiveUser `json:"activeUsers"`
}

// envelope marshals an outbound frame. The bodies above cannot fail to
// marshal, so the error is dropped.
func envelope(event string, body any) []byte {
	raw, _ := json.Marshal(body)
	data, _ := json.Marshal(Envelope{Event: event, Body: raw})
	return data
}
