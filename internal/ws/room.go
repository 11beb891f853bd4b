package ws

import "sync"

// room is the transport-level subscription set for one room name: just the
// connections currently attached. Who is *in* a room, by name, is the
// presence registry's business.
type room struct {
	mu    sync.RWMutex
	conns map[*clientConn]struct{}
}

func newRoom() *room { return &room{conns: map[*clientConn]struct{}{}} }

func (r *room) add(c *clientConn) {
	r.mu.Lock()
	r.conns[c] = struct{}{}
	r.mu.Unlock()
}

// remove detaches c and reports how many connections remain.
func (r *room) remove(c *clientConn) int {
	r.mu.Lock()
	delete(r.conns, c)
	n := len(r.conns)
	r.mu.Unlock()
	return n
}

// broadcast enqueues msg for every attached connection except skip (which
// may be nil). The snapshot keeps the lock out of the enqueue path.
func (r *room) broadcast(msg []byte, skip *clientConn) {
	r.mu.RLock()
	conns := make([]*clientConn, 0, len(r.conns))
	for c := range r.conns {
		if c != skip {
			conns = append(conns, c)
		}
	}
	r.mu.RUnlock()

	for _, c := range conns {
		c.enqueue(msg)
	}
}
