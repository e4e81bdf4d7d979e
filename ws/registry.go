package ws

import "sync"

// Conn is a live handle the server can push to.
type Conn interface {
	ID() string
	Emit(event string, data interface{}) error
	Close() error
}

// Registry maps a user id to its live connections. A user with no connection has no entry.
type Registry struct {
	mutex sync.RWMutex
	conns map[string]map[Conn]struct{}
}

func NewRegistry() *Registry {
	return &Registry{conns: make(map[string]map[Conn]struct{})}
}

func (r *Registry) Register(userID string, conn Conn) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	set, ok := r.conns[userID]
	if !ok {
		set = make(map[Conn]struct{})
		r.conns[userID] = set
	}
	set[conn] = struct{}{}
}

// Deregister removes conn and reports whether it was registered.
func (r *Registry) Deregister(userID string, conn Conn) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	set, ok := r.conns[userID]
	if !ok {
		return false
	}
	if _, ok := set[conn]; !ok {
		return false
	}
	delete(set, conn)
	if len(set) == 0 {
		delete(r.conns, userID)
	}
	return true
}

// ConnectionsFor returns a snapshot; callers may emit without holding the lock.
func (r *Registry) ConnectionsFor(userID string) []Conn {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	set := r.conns[userID]
	conns := make([]Conn, 0, len(set))
	for conn := range set {
		conns = append(conns, conn)
	}
	return conns
}

func (r *Registry) IsOnline(userID string) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.conns[userID]) > 0
}

// Count returns the number of online users.
func (r *Registry) Count() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.conns)
}
