package ws

import (
	"sync"
	"time"

	"chatrelaygo/internal/presence"
)

// adminName is the sender of every server-generated notice.
const adminName = "Admin"

const welcomeText = "Welcome to Chat For Fun!"

// Broadcaster routes connection events to the right set of recipients. It
// is the only writer of the presence registry; all registry reads, writes
// and broadcast emissions for one event finish before the next event is
// handled, guarded by a single mutex. The individual sends behind each
// broadcast are non-blocking enqueues, so one stuck recipient cannot stall
// the handler.
type Broadcaster struct {
	mu  sync.Mutex
	hub *Hub
	reg *presence.Registry
}

func NewBroadcaster(hub *Hub, reg *presence.Registry) *Broadcaster {
	return &Broadcaster{hub: hub, reg: reg}
}

// Connect greets a newly accepted connection. No room membership yet, no
// registry mutation.
func (b *Broadcaster) Connect(c *clientConn) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.hub.Register(c)
	c.enqueue(envelope(evtMessage, buildMsg(adminName, welcomeText)))
}

// EnterRoom moves a connection into a room, creating or overwriting its
// presence record. Re-entering the current room (possibly under a new name)
// skips the prior-room notices but still fires the full room-enter side
// effects.
func (b *Broadcaster) EnterRoom(c *clientConn, name, room string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	prev, hadPrev := b.reg.Find(c.id)
	rec := b.reg.Activate(c.id, name, room)

	// The record is updated before the prior room is notified, so the
	// refreshed occupant list no longer carries the mover.
	if hadPrev && prev.Room != rec.Room {
		b.hub.Leave(prev.Room, c)
		b.hub.Broadcast(prev.Room, envelope(evtMessage, buildMsg(adminName, name+" has left the room")))
		b.hub.Broadcast(prev.Room, envelope(evtUserList, UserListBody{Users: b.reg.ListInRoom(prev.Room)}))
	}

	b.hub.Join(rec.Room, c)

	c.enqueue(envelope(evtMessage, buildMsg(adminName, "You have joined the "+rec.Room+" chat room")))
	b.hub.BroadcastExcept(rec.Room, c, envelope(evtMessage, buildMsg(adminName, rec.Name+" has joined the room")))
	b.hub.Broadcast(rec.Room, envelope(evtUserList, UserListBody{Users: b.reg.ListInRoom(rec.Room)}))

	// The directory goes to everyone, not just room occupants: any
	// connected party may render who is online across all rooms.
	b.hub.BroadcastAll(envelope(evtActiveUsers, ActiveUsersBody{ActiveUsers: b.reg.ListAll()}))
}

// Message relays chat text to every occupant of the sender's current room,
// sender included. A sender with no room is dropped silently.
func (b *Broadcaster) Message(c *clientConn, name, text string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	rec, ok := b.reg.Find(c.id)
	if !ok {
		return
	}
	b.hub.Broadcast(rec.Room, envelope(evtMessage, buildMsg(name, text)))
}

// Activity tells everyone else in the sender's room that name is typing.
// Never echoed to the sender; dropped silently without a room.
func (b *Broadcaster) Activity(c *clientConn, name string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	rec, ok := b.reg.Find(c.id)
	if !ok {
		return
	}
	b.hub.BroadcastExcept(rec.Room, c, envelope(evtActivity, name))
}

// Disconnect tears a connection down. Idempotent: a connection that never
// joined, or was already torn down, causes no notices. The record is
// removed before the notices go out, so the lists exclude the departed.
func (b *Broadcaster) Disconnect(c *clientConn) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if rec, ok := b.reg.Find(c.id); ok {
		b.reg.Remove(c.id)
		b.hub.Leave(rec.Room, c)
		b.hub.Broadcast(rec.Room, envelope(evtMessage, buildMsg(adminName, rec.Name+" has left the room")))
		b.hub.Broadcast(rec.Room, envelope(evtUserList, UserListBody{Users: b.reg.ListInRoom(rec.Room)}))
		b.hub.BroadcastAll(envelope(evtActiveUsers, ActiveUsersBody{ActiveUsers: b.reg.ListAll()}))
	}
	b.hub.Unregister(c)
}

func buildMsg(name, text string) ChatMessage {
	return ChatMessage{
		Name: name,
		Text: text,
		Time: time.Now().Format("15:04:05"),
	}
}
