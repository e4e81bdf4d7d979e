package ws

import (
	"errors"
	"sync"
)

type fakeConn struct {
	id string

	mutex    sync.Mutex
	emitted  []Envelope
	failEmit bool
	closes   int
}

func newFakeConn(id string) *fakeConn {
	return &fakeConn{id: id}
}

func (c *fakeConn) ID() string { return c.id }

func (c *fakeConn) Emit(event string, data interface{}) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.failEmit {
		return errors.New("broken pipe")
	}
	c.emitted = append(c.emitted, Envelope{Event: event, Data: data})
	return nil
}

func (c *fakeConn) Close() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.closes++
	return nil
}

func (c *fakeConn) events() []Envelope {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return append([]Envelope(nil), c.emitted...)
}

func (c *fakeConn) closeCount() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.closes
}
