package dkg

import (
	"github.com/quorumkey/dkg/poly"
	"github.com/quorumkey/dkg/sss"
)

// ParticipantId identifies a participant in the DKG ceremony. Valid ids
// are the integers 1..n; id 0 is reserved — it is the implicit
// interpolation point of the group secret and must never be used as a
// share index.
type ParticipantId int

// ReservedParticipantID is the one id value that must never be assigned
// to a real participant.
const ReservedParticipantID ParticipantId = 0

// MessageKind tags which of the three wire messages a [Message] is. The
// protocol treats messages as a small tagged variant; an implementation
// encountering a kind it does not recognize must reject it explicitly
// rather than silently ignore it.
type MessageKind int

const (
	KindDistributeShare MessageKind = iota
	KindBroadcastCommitment
	KindBroadcastComplaint
)

// Message is the common interface satisfied by every DKG wire message.
type Message interface {
	Kind() MessageKind
}

// DistributeShare is sent privately from a dealer to exactly one
// recipient, carrying that recipient's evaluation of the dealer's secret
// polynomial. This must travel over a confidential channel.
type DistributeShare struct {
	From  ParticipantId
	To    ParticipantId
	Share sss.Share
}

// Kind implements Message.
func (DistributeShare) Kind() MessageKind { return KindDistributeShare }

// BroadcastCommitment is sent by a dealer to every participant,
// including itself, publishing the commitment to its secret polynomial.
type BroadcastCommitment struct {
	From       ParticipantId
	Commitment *poly.Commitment
}

// Kind implements Message.
func (BroadcastCommitment) Kind() MessageKind { return KindBroadcastCommitment }

// BroadcastComplaint is raised by a participant whose received share
// failed verification against the sender's commitment. Ingesting and
// acting on complaints beyond [Participant.ResolveDisputes]'s reveal
// round is the caller's responsibility.
type BroadcastComplaint struct {
	From    ParticipantId
	Against ParticipantId
	Reason  string
}

// Kind implements Message.
func (BroadcastComplaint) Kind() MessageKind { return KindBroadcastComplaint }
