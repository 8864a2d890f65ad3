package notify

import (
	"sync"
)

// Publisher is the producer-side view of the hub. Publish never blocks and
// never fails: a missing mailbox means the user is offline and the event is
// dropped, which callers observe through the return value only.
type Publisher interface {
	Publish(userID int64, event Event) bool
}

// Hub fans events out to per-user mailboxes. A mailbox exists only while a
// stream is attached; events published to an offline user are not queued,
// so nothing survives a detach or a process restart.
type Hub struct {
	mu        sync.Mutex
	mailboxes map[int64]*Mailbox
}

func NewHub() *Hub {
	return &Hub{
		mailboxes: make(map[int64]*Mailbox),
	}
}

// Attach creates the mailbox for userID and returns it. An existing mailbox
// for the same user is closed first, so a reconnecting client always starts
// from a fresh queue and the stale stream observes Done.
func (h *Hub) Attach(userID int64) *Mailbox {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, ok := h.mailboxes[userID]; ok {
		old.close()
	}

	mb := newMailbox()
	h.mailboxes[userID] = mb
	return mb
}

// Detach releases the mailbox, but only if mb is still the current one for
// userID. A stale stream detaching after a reconnect must not tear down the
// replacement mailbox.
func (h *Hub) Detach(userID int64, mb *Mailbox) {
	h.mu.Lock()
	if current, ok := h.mailboxes[userID]; ok && current == mb {
		delete(h.mailboxes, userID)
	}
	h.mu.Unlock()

	mb.close()
}

// Publish appends to the user's mailbox and wakes the attached stream.
// Returns false when the user has no mailbox.
func (h *Hub) Publish(userID int64, event Event) bool {
	h.mu.Lock()
	mb, ok := h.mailboxes[userID]
	h.mu.Unlock()

	if !ok {
		return false
	}
	return mb.push(event)
}

// Attached reports whether a stream is currently attached for userID.
func (h *Hub) Attached(userID int64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.mailboxes[userID]
	return ok
}

// Mailbox holds the not-yet-delivered events of one attached stream.
// Producers push, exactly one stream drains; per-user delivery order is
// publish order.
type Mailbox struct {
	mu     sync.Mutex
	queue  []Event
	wake   chan struct{}
	done   chan struct{}
	closed bool
}

func newMailbox() *Mailbox {
	return &Mailbox{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

func (m *Mailbox) push(event Event) bool {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return false
	}
	m.queue = append(m.queue, event)
	m.mu.Unlock()

	// Coalesced wakeup; the stream drains the whole queue per wake.
	select {
	case m.wake <- struct{}{}:
	default:
	}
	return true
}

// Drain returns and clears all pending events in publish order.
func (m *Mailbox) Drain() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	events := m.queue
	m.queue = nil
	return events
}

// Wake signals that at least one event is pending.
func (m *Mailbox) Wake() <-chan struct{} {
	return m.wake
}

// Done is closed when the mailbox has been replaced or released.
func (m *Mailbox) Done() <-chan struct{} {
	return m.done
}

func (m *Mailbox) close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.closed {
		m.closed = true
		close(m.done)
	}
}
