package presence

import "sync"

// Record associates one live connection with a display name and a room.
// ConnID is the process-unique token handed out at websocket accept time;
// it never leaves the process.
type Record struct {
	ConnID string `json:"id"`
	Name   string `json:"name"`
	Room   string `json:"room"`
}

// ActiveUser is the identity-free projection used for the global directory.
type ActiveUser struct {
	Name string `json:"name"`
	Room string `json:"room"`
}

// Registry is the authoritative in-memory presence set: at most one record
// per connection, keyed by connection id. Rooms have no stored existence of
// their own; a room is simply a distinct Room value among live records.
// All mutations go through the registry's lock; reads may run concurrently
// with each other but never with a mutation.
type Registry struct {
	mu      sync.RWMutex
	records map[string]Record
}

func NewRegistry() *Registry {
	return &Registry{records: make(map[string]Record)}
}

// Activate inserts or replaces the record for connID. A re-join overwrites
// name and room in place; it never produces a second record.
func (r *Registry) Activate(connID, name, room string) Record {
	rec := Record{ConnID: connID, Name: name, Room: room}
	r.mu.Lock()
	r.records[connID] = rec
	r.mu.Unlock()
	return rec
}

// Remove deletes the record for connID. Removing an unknown id is a no-op.
func (r *Registry) Remove(connID string) {
	r.mu.Lock()
	delete(r.records, connID)
	r.mu.Unlock()
}

// Find returns the record for connID, if any.
func (r *Registry) Find(connID string) (Record, bool) {
	r.mu.RLock()
	rec, ok := r.records[connID]
	r.mu.RUnlock()
	return rec, ok
}

// ListInRoom returns every record whose room matches. Order is unspecified.
func (r *Registry) ListInRoom(room string) []Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Record, 0, len(r.records))
	for _, rec := range r.records {
		if rec.Room == room {
			out = append(out, rec)
		}
	}
	return out
}

// ListAllRooms returns the distinct room names across all live records.
func (r *Registry) ListAllRooms() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	rooms := make([]string, 0)
	for _, rec := range r.records {
		if _, ok := seen[rec.Room]; ok {
			continue
		}
		seen[rec.Room] = struct{}{}
		rooms = append(rooms, rec.Room)
	}
	return rooms
}

// ListAll snapshots every live record as a (name, room) pair, omitting
// connection identity.
func (r *Registry) ListAll() []ActiveUser {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ActiveUser, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, ActiveUser{Name: rec.Name, Room: rec.Room})
	}
	return out
}
