// Package mailbox holds per-session queues of narration messages awaiting the
// next status poll. Push-to-mailbox / pull-to-drain; neither call session ever
// blocks on the other.
package mailbox

import "sync"

type Mailbox struct {
	mu     sync.Mutex
	queues map[string][]string
}

func NewMailbox() *Mailbox {
	return &Mailbox{
		queues: make(map[string][]string),
	}
}

// Enqueue appends message to the session's queue. An empty session id means
// there is no recipient; the message is dropped silently.
func (m *Mailbox) Enqueue(sessionID, message string) {
	if sessionID == "" {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.queues[sessionID] = append(m.queues[sessionID], message)
}

// Drain atomically removes and returns all pending messages in enqueue order.
// Concurrent drains on one session are linearized by the mutex: a message is
// delivered exactly once, to exactly one caller.
func (m *Mailbox) Drain(sessionID string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	pending, ok := m.queues[sessionID]
	if !ok {
		return nil
	}
	delete(m.queues, sessionID)
	return pending
}
