package ws

import "sync"

// Hub keeps the transport-side connection sets: one subscription set per
// room name plus the set of every live connection, which exists so that
// events like the global active-user directory can reach parties that have
// not joined any room yet.
type Hub struct {
	rooms sync.Map // room name -> *room

	mu      sync.RWMutex
	clients map[*clientConn]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*clientConn]struct{})}
}

// Register adds a newly accepted connection to the global set.
func (h *Hub) Register(c *clientConn) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

// Unregister drops a connection from the global set. Safe to call twice.
func (h *Hub) Unregister(c *clientConn) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}

// Join attaches c to the named room's subscription, creating it on first use.
func (h *Hub) Join(name string, c *clientConn) {
	r, _ := h.rooms.LoadOrStore(name, newRoom())
	r.(*room).add(c)
}

// Leave detaches c from the named room. The room entry is deleted once its
// last connection leaves; an empty room has no existence of its own.
func (h *Hub) Leave(name string, c *clientConn) {
	if v, ok := h.rooms.Load(name); ok {
		if v.(*room).remove(c) == 0 {
			h.rooms.Delete(name)
		}
	}
}

// Broadcast enqueues msg for every connection attached to the named room.
func (h *Hub) Broadcast(name string, msg []byte) {
	if v, ok := h.rooms.Load(name); ok {
		v.(*room).broadcast(msg, nil)
	}
}

// BroadcastExcept is Broadcast minus one connection, for "everyone else in
// the room" notices.
func (h *Hub) BroadcastExcept(name string, skip *clientConn, msg []byte) {
	if v, ok := h.rooms.Load(name); ok {
		v.(*room).broadcast(msg, skip)
	}
}

// BroadcastAll enqueues msg for every live connection, room member or not.
func (h *Hub) BroadcastAll(msg []byte) {
	h.mu.RLock()
	conns := make([]*clientConn, 0, len(h.clients))
	for c := range h.clients {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	for _, c := range conns {
		c.enqueue(msg)
	}
}
