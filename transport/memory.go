package transport

import (
	"errors"
	"sync"

	"github.com/quorumkey/dkg/dkg"
)

// ErrUnknownParticipant is returned by SendPrivate when addressed to an
// id the transport was never constructed with.
var ErrUnknownParticipant = errors.New("transport: unknown participant id")

// InMemory is a local, single-process [dkg.Transport] backed by one
// FIFO mailbox per participant, safe for concurrent use — multiple
// participants' goroutines may Deal, Verify, and Receive against the
// same InMemory simultaneously, the way cmd/dkgdemo drives them.
type InMemory struct {
	mu      sync.Mutex
	inboxes map[dkg.ParticipantId][]dkg.Message
}

// NewInMemory constructs a mailbox for exactly the given participant
// ids. Messages addressed to an id outside this set are rejected by
// SendPrivate and silently skipped by Broadcast.
func NewInMemory(participantIDs []dkg.ParticipantId) *InMemory {
	inboxes := make(map[dkg.ParticipantId][]dkg.Message, len(participantIDs))
	for _, id := range participantIDs {
		inboxes[id] = nil
	}
	return &InMemory{inboxes: inboxes}
}

// SendPrivate implements [dkg.Transport].
func (m *InMemory) SendPrivate(to dkg.ParticipantId, msg dkg.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.inboxes[to]; !ok {
		return ErrUnknownParticipant
	}
	m.inboxes[to] = append(m.inboxes[to], msg)
	return nil
}

// Broadcast implements [dkg.Transport]. It delivers to every
// participant the transport was constructed with, including the
// sender — Phase V relies on this.
func (m *InMemory) Broadcast(msg dkg.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id := range m.inboxes {
		m.inboxes[id] = append(m.inboxes[id], msg)
	}
	return nil
}

// Receive implements [dkg.Transport]. It drains self's mailbox in FIFO
// order.
func (m *InMemory) Receive(self dkg.ParticipantId) ([]dkg.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inbox, ok := m.inboxes[self]
	if !ok {
		return nil, ErrUnknownParticipant
	}
	m.inboxes[self] = nil
	return inbox, nil
}
