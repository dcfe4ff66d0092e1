package session

import (
	"encoding/hex"
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/quorumkey/dkg/dkg"
	"github.com/quorumkey/dkg/group"
)

// ErrResolveDisputesBeforeVerify is returned by ResolveDisputes when
// Verify has not run in this ceremony yet, so there are no complaints
// to resolve against.
var ErrResolveDisputesBeforeVerify = errors.New("session: Verify must run before ResolveDisputes")

// Result is a ceremony's output once ComputeKeys has succeeded.
type Result struct {
	// GroupPublicKey is the combined public key for the threshold
	// group. Identical across every honest participant.
	GroupPublicKey group.Point

	// SecretShare is this participant's local signing share. Keep it
	// confidential; it is never sent anywhere by this package.
	SecretShare group.Scalar

	// QualSet lists the dealer ids this participant admitted.
	QualSet []dkg.ParticipantId
}

// NewCeremonyID returns a fresh correlation id for a DKG ceremony, for
// tagging log lines and out-of-band dispute traffic across
// participants that otherwise share no request context.
func NewCeremonyID() uuid.UUID {
	return uuid.New()
}

// Ceremony drives one [dkg.Participant] through a full DKG ceremony
// over a [dkg.Transport], logging phase transitions under a shared
// ceremony id.
type Ceremony struct {
	id             uuid.UUID
	participant    *dkg.Participant
	transport      dkg.Transport
	log            zerolog.Logger
	lastComplaints []dkg.Message
}

// NewCeremony constructs a ceremony for one participant. id should be
// the same value across every participant in the ceremony, typically
// obtained once from [NewCeremonyID] by whoever convenes it.
func NewCeremony(id uuid.UUID, participant *dkg.Participant, transport dkg.Transport) *Ceremony {
	return &Ceremony{
		id:          id,
		participant: participant,
		transport:   transport,
		log: log.With().
			Str("ceremony_id", id.String()).
			Int("participant_id", int(participant.ID())).
			Logger(),
	}
}

// Deal runs Phase D and publishes the resulting messages over the
// ceremony's transport: the commitment is broadcast, and each share is
// sent privately to its recipient, including this participant itself.
func (c *Ceremony) Deal(r io.Reader) error {
	messages, err := c.participant.Deal(r)
	if err != nil {
		c.log.Error().Err(err).Msg("deal failed")
		return err
	}

	var commitment *dkg.BroadcastCommitment
	for _, msg := range messages {
		switch m := msg.(type) {
		case dkg.BroadcastCommitment:
			commitment = &m
			if err := c.transport.Broadcast(m); err != nil {
				return err
			}
		case dkg.DistributeShare:
			if err := c.transport.SendPrivate(m.To, m); err != nil {
				return err
			}
		}
	}

	event := c.log.Info()
	if commitment != nil {
		event = event.Str("commitment_fingerprint", hex.EncodeToString(dkg.TranscriptFingerprint(commitment.Commitment)))
	}
	event.Msg("dealt commitment and shares")
	return nil
}

// Verify receives this participant's mailbox and runs Phase V. Any
// resulting complaints are broadcast to the ceremony so the accused
// dealer can answer them with a reveal (see ResolveDisputes), and are
// also returned so
// the caller can decide whether to proceed straight to ComputeKeys
// (no complaints) or convene a dispute round.
func (c *Ceremony) Verify() ([]dkg.Message, error) {
	inbox, err := c.transport.Receive(c.participant.ID())
	if err != nil {
		return nil, err
	}

	complaints, err := c.participant.Verify(inbox)
	if err != nil {
		c.log.Error().Err(err).Msg("verify failed")
		return nil, err
	}
	c.lastComplaints = append([]dkg.Message{}, complaints...)

	if len(complaints) == 0 {
		c.log.Info().Int("qual_size", len(c.participant.QualSet())).Msg("verified with no complaints")
		return nil, nil
	}

	for _, msg := range complaints {
		complaint := msg.(dkg.BroadcastComplaint)
		c.log.Warn().
			Int("against", int(complaint.Against)).
			Str("reason", complaint.Reason).
			Msg("raising complaint")
		if err := c.transport.Broadcast(msg); err != nil {
			return nil, err
		}
	}

	return complaints, nil
}

// ResolveDisputes runs Phase R using the complaints this ceremony
// raised during Verify and the reveal messages gathered from the
// accused dealers. It is only meaningful to call after Verify has
// returned at least one complaint.
func (c *Ceremony) ResolveDisputes(revealed []dkg.Message) error {
	if c.lastComplaints == nil {
		return ErrResolveDisputesBeforeVerify
	}

	if err := c.participant.ResolveDisputes(c.lastComplaints, revealed); err != nil {
		c.log.Error().Err(err).Msg("resolve disputes failed")
		return err
	}

	c.log.Info().Int("qual_size", len(c.participant.QualSet())).Msg("resolved disputes")
	return nil
}

// ComputeKeys runs Phase K and returns this participant's result.
func (c *Ceremony) ComputeKeys() (*Result, error) {
	if err := c.participant.ComputeKeys(); err != nil {
		c.log.Error().Err(err).Msg("compute keys failed")
		return nil, err
	}

	groupKey, _ := c.participant.GroupPublicKey()
	secretShare, _ := c.participant.SecretShare()

	c.log.Info().Msg("ceremony complete")
	return &Result{
		GroupPublicKey: groupKey,
		SecretShare:    secretShare,
		QualSet:        c.participant.QualSet(),
	}, nil
}
