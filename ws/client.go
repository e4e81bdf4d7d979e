package ws

import (
	"errors"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

const (
	writeWait = 10 * time.Second
	// sendBuffer is how many envelopes may wait for a slow socket before it is dropped.
	sendBuffer = 64
)

var (
	ErrClientClosed = errors.New("websocket client closed")
	ErrSendOverflow = errors.New("websocket send buffer full")
)

// Transport is the subset of *websocket.Conn a Client writes through.
type Transport interface {
	WriteJSON(v interface{}) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Client queues outbound envelopes for one websocket and drains them on its own goroutine,
// so Emit never waits on the network. Reads stay with the connection's own goroutine.
type Client struct {
	id        string
	transport Transport
	send      chan Envelope

	writeMutex sync.Mutex
	closeOnce  sync.Once
	closed     chan struct{}
}

// NewClient starts the write loop; it ends when the client closes.
func NewClient(transport Transport) *Client {
	client := &Client{
		id:        uuid.NewString(),
		transport: transport,
		send:      make(chan Envelope, sendBuffer),
		closed:    make(chan struct{}),
	}
	go client.writeLoop()
	return client
}

func (c *Client) ID() string {
	return c.id
}

// Emit queues an envelope. A full queue means the peer stopped reading: the client is closed
// and ErrSendOverflow returned.
func (c *Client) Emit(event string, data interface{}) error {
	if c.isClosed() {
		return ErrClientClosed
	}
	select {
	case c.send <- Envelope{Event: event, Data: data}:
		return nil
	case <-c.closed:
		return ErrClientClosed
	default:
		_ = c.Close()
		return ErrSendOverflow
	}
}

func (c *Client) writeLoop() {
	for {
		select {
		case <-c.closed:
			return
		case envelope := <-c.send:
			if err := c.write(envelope); err != nil {
				_ = c.Close()
				return
			}
		}
	}
}

func (c *Client) write(envelope Envelope) error {
	c.writeMutex.Lock()
	defer c.writeMutex.Unlock()

	if c.isClosed() {
		return ErrClientClosed
	}
	if err := c.transport.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.transport.WriteJSON(envelope)
}

func (c *Client) Ping() error {
	c.writeMutex.Lock()
	defer c.writeMutex.Unlock()

	if c.isClosed() {
		return ErrClientClosed
	}
	return c.transport.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// KeepAlive pings every interval until the client closes or a ping fails, then closes the client.
func (c *Client) KeepAlive(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.closed:
			return
		case <-ticker.C:
			if err := c.Ping(); err != nil {
				_ = c.Close()
				return
			}
		}
	}
}

// Done is closed once the client is closed.
func (c *Client) Done() <-chan struct{} {
	return c.closed
}

// Close stops the write loop and closes the transport. Envelopes still queued are discarded.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.closed)
		err = c.transport.Close()
	})
	return err
}

func (c *Client) isClosed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}
