package dkg

import (
	"io"
	"sort"

	"github.com/quorumkey/dkg/group"
	"github.com/quorumkey/dkg/poly"
	"github.com/quorumkey/dkg/sss"
	"github.com/quorumkey/dkg/vss"
)

// Phase is a participant's position in the DKG state machine. Phases
// only move forward: Fresh -> Dealt -> Verified -> Ready. Apart from
// [Participant.Zeroize], no field is mutated once a participant reaches
// Ready.
type Phase int

const (
	PhaseFresh Phase = iota
	PhaseDealt
	PhaseVerified
	PhaseReady
)

// Participant holds one local party's state through a DKG ceremony.
// Construct with [NewParticipant]. A Participant owns its secret
// polynomial and signing share exclusively — nothing escapes its
// lifetime except through its accessor methods, and [Participant.Zeroize]
// should be called once that secret material is no longer needed.
type Participant struct {
	id              ParticipantId
	threshold       int
	numParticipants int
	group           group.Group
	phase           Phase

	secretPolynomial *poly.Polynomial
	ownCommitment    *poly.Commitment

	receivedShares      map[ParticipantId]sss.Share
	receivedCommitments map[ParticipantId]*poly.Commitment
	qualSet             map[ParticipantId]struct{}

	secretShare    group.Scalar
	groupPublicKey group.Point
}

// NewParticipant constructs a participant for a (threshold, n) ceremony.
// id must be in 1..n; id 0 is reserved. t and n must satisfy
// 1 <= t <= n. These are programmer-misuse conditions: a correct caller
// must never reach them.
func NewParticipant(g group.Group, id ParticipantId, threshold, numParticipants int) (*Participant, error) {
	if id == ReservedParticipantID {
		return nil, ErrReservedParticipantID
	}
	if id < 1 || int(id) > numParticipants {
		return nil, ErrParticipantIDOutOfRange
	}
	if threshold < 1 || threshold > numParticipants {
		return nil, ErrInvalidThreshold
	}

	return &Participant{
		id:                  id,
		threshold:           threshold,
		numParticipants:     numParticipants,
		group:               g,
		phase:               PhaseFresh,
		receivedShares:      make(map[ParticipantId]sss.Share),
		receivedCommitments: make(map[ParticipantId]*poly.Commitment),
		qualSet:             make(map[ParticipantId]struct{}),
	}, nil
}

// ID returns this participant's id.
func (p *Participant) ID() ParticipantId { return p.id }

// CurrentPhase returns this participant's position in the state
// machine.
func (p *Participant) CurrentPhase() Phase { return p.phase }

// Deal runs Phase D: it draws a fresh degree-(threshold-1) polynomial
// whose constant term is this participant's own secret, commits to it,
// and returns the messages the caller must forward to the transport —
// one BroadcastCommitment and one DistributeShare per participant id
// 1..n, including this participant's own id (the dealer sends itself a
// share too, so Phase V can treat every dealer, including itself,
// uniformly).
func (p *Participant) Deal(r io.Reader) ([]Message, error) {
	if p.phase != PhaseFresh {
		return nil, ErrAlreadyDealt
	}

	coeffs := make([]group.Scalar, p.threshold)
	for i := 0; i < p.threshold; i++ {
		c, err := p.group.RandomScalar(r)
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}

	polynomial, err := poly.NewPolynomial(p.group, coeffs)
	if err != nil {
		return nil, err
	}
	commitment := poly.CommitPolynomial(p.group, polynomial)

	p.secretPolynomial = polynomial
	p.ownCommitment = commitment

	messages := make([]Message, 0, p.numParticipants+1)
	messages = append(messages, BroadcastCommitment{From: p.id, Commitment: commitment})
	for i := 1; i <= p.numParticipants; i++ {
		to := ParticipantId(i)
		x := sss.ScalarFromUint(p.group, uint64(i))
		share := sss.Share{X: x, Y: polynomial.Evaluate(x)}
		messages = append(messages, DistributeShare{From: p.id, To: to, Share: share})
	}

	p.phase = PhaseDealt
	return messages, nil
}

// Verify runs Phase V over the bag of messages addressed to this
// participant since the last drain. Commitments and shares use
// first-write-wins per dealer: a second commitment or share from a
// dealer already on file is dropped, so an equivocating dealer cannot
// retroactively change what this participant already accepted.
// DistributeShare messages not addressed to this participant are
// ignored. BroadcastComplaint messages are not consulted here — see
// [Participant.ResolveDisputes].
//
// After ingestion, every (dealer, share) pair with a matching
// commitment is checked with [vss.VerifyShare]; successes join qual_set,
// failures produce a BroadcastComplaint in the returned slice. A share or
// commitment still missing its counterpart is not complained about; Verify
// runs once per participant, so that dealer is left out of qual_set.
func (p *Participant) Verify(messages []Message) ([]Message, error) {
	if p.phase != PhaseDealt {
		return nil, ErrDealRequired
	}

	for _, msg := range messages {
		switch m := msg.(type) {
		case BroadcastCommitment:
			if _, exists := p.receivedCommitments[m.From]; !exists {
				p.receivedCommitments[m.From] = m.Commitment
			}
		case DistributeShare:
			if m.To != p.id {
				continue
			}
			if _, exists := p.receivedShares[m.From]; !exists {
				p.receivedShares[m.From] = m.Share
			}
		case BroadcastComplaint:
			continue
		default:
			return nil, ErrUnknownMessageKind
		}
	}

	var complaints []Message
	for dealer, share := range p.receivedShares {
		commitment, ok := p.receivedCommitments[dealer]
		if !ok {
			continue
		}
		if vss.VerifyShare(p.group, share, commitment) {
			p.qualSet[dealer] = struct{}{}
		} else {
			complaints = append(complaints, BroadcastComplaint{
				From:    p.id,
				Against: dealer,
				Reason:  "Share verification failed",
			})
		}
	}

	p.phase = PhaseVerified
	return complaints, nil
}

// RevealShare recomputes, from this participant's own retained
// polynomial, the share it dealt to recipient `to`. It is used to answer
// a dispute raised against this participant as a dealer
// ([Participant.ResolveDisputes] on the complaining side): the dealer
// reveals the disputed share in the clear rather than fabricating new
// secret material, since the value is already a deterministic function
// of the polynomial it committed to.
func (p *Participant) RevealShare(to ParticipantId) (Message, error) {
	if p.phase < PhaseDealt {
		return nil, ErrDealRequired
	}
	if p.secretPolynomial == nil {
		return nil, ErrPolynomialZeroized
	}
	x := sss.ScalarFromUint(p.group, uint64(to))
	share := sss.Share{X: x, Y: p.secretPolynomial.Evaluate(x)}
	return DistributeShare{From: p.id, To: to, Share: share}, nil
}

// ResolveDisputes processes complaints left over from Verify (Phase R).
// For every BroadcastComplaint against a
// dealer this participant has a commitment from, it looks for a
// corresponding revealed share (produced by that dealer's
// [Participant.RevealShare]) and re-runs [vss.VerifyShare] against it. A
// dealer whose revealed share verifies is admitted to qual_set — the
// original discrepancy is treated as a private-channel fault, not
// evidence of a bad polynomial; a dealer whose revealed share still
// fails verification is excluded from qual_set. Complaints with no
// matching reveal, or against a dealer with no commitment on file, are
// left unresolved and have no effect.
//
// This is purely additive: in an all-honest run complaints is always
// empty and this call is a no-op.
func (p *Participant) ResolveDisputes(complaints []Message, revealed []Message) error {
	if p.phase != PhaseVerified {
		return ErrVerifyRequired
	}

	revealByDealer := make(map[ParticipantId]sss.Share, len(revealed))
	for _, msg := range revealed {
		ds, ok := msg.(DistributeShare)
		if !ok {
			return ErrUnknownMessageKind
		}
		if ds.To != p.id {
			continue
		}
		revealByDealer[ds.From] = ds.Share
	}

	for _, msg := range complaints {
		complaint, ok := msg.(BroadcastComplaint)
		if !ok {
			return ErrUnknownMessageKind
		}

		commitment, hasCommitment := p.receivedCommitments[complaint.Against]
		if !hasCommitment {
			continue
		}
		revealedShare, hasReveal := revealByDealer[complaint.Against]
		if !hasReveal {
			continue
		}

		if vss.VerifyShare(p.group, revealedShare, commitment) {
			p.qualSet[complaint.Against] = struct{}{}
			p.receivedShares[complaint.Against] = revealedShare
		} else {
			delete(p.qualSet, complaint.Against)
		}
	}

	return nil
}

// ComputeKeys runs Phase K: it sums the constant-term commitment of
// every QUAL dealer into the group public key, and the scalar shares
// this participant received from every QUAL dealer into its own signing
// share. Because every dealer d contributes a polynomial P_d with
// P_d(0) = a_{d,0}, the virtual group polynomial is P = Σ_d P_d, the
// group secret is P(0) = Σ_d a_{d,0}, and the group public key is
// g*P(0) = Σ_d g*a_{d,0} — the same sum this participant computes here,
// which is why every honest participant arrives at the same key.
func (p *Participant) ComputeKeys() error {
	if p.phase == PhaseReady {
		return ErrAlreadyComputed
	}
	if p.phase != PhaseVerified {
		return ErrVerifyRequired
	}

	secretShare := p.group.NewScalar()
	groupPublicKey := p.group.NewPoint()

	for _, dealer := range p.sortedQual() {
		share := p.receivedShares[dealer]
		secretShare = p.group.NewScalar().Add(secretShare, share.Y)

		commitment := p.receivedCommitments[dealer]
		groupPublicKey = p.group.NewPoint().Add(groupPublicKey, commitment.Point(0))
	}

	p.secretShare = secretShare
	p.groupPublicKey = groupPublicKey
	p.phase = PhaseReady
	return nil
}

// QualSet returns the ids of dealers this participant has qualified,
// sorted ascending.
func (p *Participant) QualSet() []ParticipantId {
	return p.sortedQual()
}

func (p *Participant) sortedQual() []ParticipantId {
	ids := make([]ParticipantId, 0, len(p.qualSet))
	for id := range p.qualSet {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// GroupPublicKey returns the combined group public key, and false if
// ComputeKeys has not yet run — a phase-precondition miss reports
// "absent", not an error.
func (p *Participant) GroupPublicKey() (group.Point, bool) {
	if p.phase != PhaseReady {
		return nil, false
	}
	return p.groupPublicKey, true
}

// SecretShare returns this participant's local signing share, and false
// if ComputeKeys has not yet run.
func (p *Participant) SecretShare() (group.Scalar, bool) {
	if p.phase != PhaseReady {
		return nil, false
	}
	return p.secretShare, true
}

// SecretPolynomialIntercept returns a0, the dealer secret this
// participant contributed, and false if Deal has not yet run or the
// polynomial has since been zeroized.
func (p *Participant) SecretPolynomialIntercept() (group.Scalar, bool) {
	if p.secretPolynomial == nil {
		return nil, false
	}
	return p.secretPolynomial.Evaluate(p.group.NewScalar()), true
}

// OwnCommitment returns the commitment this participant broadcast during
// Deal, and false if Deal has not yet run.
func (p *Participant) OwnCommitment() (*poly.Commitment, bool) {
	if p.ownCommitment == nil {
		return nil, false
	}
	return p.ownCommitment, true
}

// Zeroize overwrites this participant's secret polynomial so its
// coefficients are no longer recoverable. Go has no destructors; callers
// that no longer need Deal-phase secret material (RevealShare will no
// longer work afterward) should call this explicitly.
func (p *Participant) Zeroize() {
	if p.secretPolynomial != nil {
		p.secretPolynomial.Zeroize()
		p.secretPolynomial = nil
	}
}
