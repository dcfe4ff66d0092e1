package dkg

// Transport is the capability set the DKG engine requires from its
// caller: deliver messages with the addressing semantics the engine
// asks for. It is the only contract between the protocol core and
// whatever moves bytes between participants — an in-memory mailbox for
// tests, or a real network transport in production. The core never
// depends on a concrete implementation.
//
// No guarantees beyond these three methods are assumed: no
// authentication (the engine trusts a message's From field), no
// delivery ordering across participants, no retries. Broadcast must
// include the sender among the recipients — Phase V relies on a dealer
// processing its own commitment exactly like everyone else's.
type Transport interface {
	// SendPrivate enqueues msg into recipient to's mailbox only.
	SendPrivate(to ParticipantId, msg Message) error

	// Broadcast enqueues a copy of msg into every known participant's
	// mailbox, including the sender's own.
	Broadcast(msg Message) error

	// Receive atomically drains and returns self's mailbox in FIFO
	// order. Messages addressed to other participants that happen to be
	// visible (a shared-mailbox test double, say) are the caller's to
	// filter; Verify already ignores DistributeShare messages not
	// addressed to it.
	Receive(self ParticipantId) ([]Message, error)
}
