package transport

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/quorumkey/dkg/dkg"
	"github.com/quorumkey/dkg/group"
	"github.com/quorumkey/dkg/poly"
	"github.com/quorumkey/dkg/sss"
)

// wireEnvelope is the CBOR-serializable shape of a [dkg.Message]. Group
// elements never travel as anything but their canonical Bytes(); Kind
// discriminates which of the optional field groups below is populated,
// mirroring the tagged-variant Message design on the wire.
type wireEnvelope struct {
	Kind dkg.MessageKind

	From ParticipantID
	To   ParticipantID

	ShareX []byte
	ShareY []byte

	CommitmentPoints [][]byte

	Against ParticipantID
	Reason  string
}

// ParticipantID is a type alias for dkg.ParticipantId: the envelope's
// id fields have exactly the protocol package's type and are encoded as
// its underlying integer.
type ParticipantID = dkg.ParticipantId

// Wire is a [dkg.Transport] that CBOR-encodes every message before
// handing it to an underlying [InMemory] mailbox and decodes it again
// on receipt, the way a process boundary or a real network link would.
// It exists to exercise group.Scalar/group.Point's Bytes/SetBytes
// contract against a real wire codec rather than only in-process
// pointer passing.
type Wire struct {
	inner *InMemory
	group group.Group
}

// NewWire constructs a CBOR-backed transport over the given
// participant ids. g is used to reconstruct scalars and points from
// their wire bytes on decode.
func NewWire(g group.Group, participantIDs []dkg.ParticipantId) *Wire {
	return &Wire{inner: NewInMemory(participantIDs), group: g}
}

// SendPrivate implements [dkg.Transport].
func (w *Wire) SendPrivate(to dkg.ParticipantId, msg dkg.Message) error {
	encoded, err := w.encode(msg)
	if err != nil {
		return err
	}
	return w.inner.SendPrivate(to, encoded)
}

// Broadcast implements [dkg.Transport].
func (w *Wire) Broadcast(msg dkg.Message) error {
	encoded, err := w.encode(msg)
	if err != nil {
		return err
	}
	return w.inner.Broadcast(encoded)
}

// Receive implements [dkg.Transport], decoding every message in self's
// mailbox back into its concrete [dkg.Message] type.
func (w *Wire) Receive(self dkg.ParticipantId) ([]dkg.Message, error) {
	raw, err := w.inner.Receive(self)
	if err != nil {
		return nil, err
	}
	messages := make([]dkg.Message, 0, len(raw))
	for _, m := range raw {
		decoded, ok := m.(wireOnWire)
		if !ok {
			return nil, fmt.Errorf("transport: unexpected message on wire mailbox: %T", m)
		}
		decodedMsg, err := w.decode(decoded)
		if err != nil {
			return nil, err
		}
		messages = append(messages, decodedMsg)
	}
	return messages, nil
}

// wireOnWire carries already-CBOR-encoded bytes through the underlying
// [InMemory] mailbox. It satisfies [dkg.Message] only so it can share
// that mailbox's slice type; Kind() must never be consulted by protocol
// code — only [Wire.Receive] unwraps it.
type wireOnWire struct {
	encoded []byte
}

func (wireOnWire) Kind() dkg.MessageKind { return -1 }

func (w *Wire) encode(msg dkg.Message) (wireOnWire, error) {
	var env wireEnvelope

	switch m := msg.(type) {
	case dkg.DistributeShare:
		env = wireEnvelope{
			Kind:   dkg.KindDistributeShare,
			From:   m.From,
			To:     m.To,
			ShareX: m.Share.X.Bytes(),
			ShareY: m.Share.Y.Bytes(),
		}
	case dkg.BroadcastCommitment:
		points := make([][]byte, m.Commitment.Len())
		for i := range points {
			points[i] = m.Commitment.Point(i).Bytes()
		}
		env = wireEnvelope{
			Kind:             dkg.KindBroadcastCommitment,
			From:             m.From,
			CommitmentPoints: points,
		}
	case dkg.BroadcastComplaint:
		env = wireEnvelope{
			Kind:    dkg.KindBroadcastComplaint,
			From:    m.From,
			Against: m.Against,
			Reason:  m.Reason,
		}
	default:
		return wireOnWire{}, fmt.Errorf("transport: cannot encode message kind %T", msg)
	}

	encoded, err := cbor.Marshal(env)
	if err != nil {
		return wireOnWire{}, err
	}
	return wireOnWire{encoded: encoded}, nil
}

func (w *Wire) decode(on wireOnWire) (dkg.Message, error) {
	var env wireEnvelope
	if err := cbor.Unmarshal(on.encoded, &env); err != nil {
		return nil, err
	}

	switch env.Kind {
	case dkg.KindDistributeShare:
		x, err := w.group.NewScalar().SetBytes(env.ShareX)
		if err != nil {
			return nil, err
		}
		y, err := w.group.NewScalar().SetBytes(env.ShareY)
		if err != nil {
			return nil, err
		}
		return dkg.DistributeShare{
			From:  env.From,
			To:    env.To,
			Share: sss.Share{X: x, Y: y},
		}, nil

	case dkg.KindBroadcastCommitment:
		points := make([]group.Point, len(env.CommitmentPoints))
		for i, raw := range env.CommitmentPoints {
			p, err := w.group.NewPoint().SetBytes(raw)
			if err != nil {
				return nil, err
			}
			points[i] = p
		}
		commitment, err := poly.NewCommitment(w.group, points)
		if err != nil {
			return nil, err
		}
		return dkg.BroadcastCommitment{From: env.From, Commitment: commitment}, nil

	case dkg.KindBroadcastComplaint:
		return dkg.BroadcastComplaint{From: env.From, Against: env.Against, Reason: env.Reason}, nil

	default:
		return nil, dkg.ErrUnknownMessageKind
	}
}
