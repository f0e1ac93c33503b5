package server

import "sync"

// clientQueueSize is how many messages may wait for one socket. A socket
// that falls further behind is dropped from its session.
const clientQueueSize = 16

// client is one socket on a session. Messages are queued under the session
// lock and written by writeLoop, so a slow socket never blocks the game.
type client struct {
	conn jsonWriter
	send chan Message
	once sync.Once
}

func newClient(conn jsonWriter) *client {
	return &client{conn: conn, send: make(chan Message, clientQueueSize)}
}

// enqueue queues msg without blocking. It returns false if the queue is full.
func (c *client) enqueue(msg Message) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// close ends writeLoop once the queued messages are written.
func (c *client) close() {
	c.once.Do(func() { close(c.send) })
}

// writeLoop writes queued messages until the queue is closed. It stops at
// the first failed write and passes the error to onError.
func (c *client) writeLoop(onError func(error)) {
	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			onError(err)
			return
		}
	}
}
