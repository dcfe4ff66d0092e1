package transport

import (
	"crypto/rand"
	"testing"

	"github.com/quorumkey/dkg/curve/bls12381"
	"github.com/quorumkey/dkg/dkg"
)

func participantIDs(n int) []dkg.ParticipantId {
	ids := make([]dkg.ParticipantId, n)
	for i := range ids {
		ids[i] = dkg.ParticipantId(i + 1)
	}
	return ids
}

func testCeremonyOver(t *testing.T, newTransport func(ids []dkg.ParticipantId) dkg.Transport) {
	t.Helper()

	g := &bls12381.BLS12381{}
	threshold, n := 3, 4
	ids := participantIDs(n)
	tr := newTransport(ids)

	handles := make(map[dkg.ParticipantId]*participantHandle, n)
	for _, id := range ids {
		p, err := dkg.NewParticipant(g, id, threshold, n)
		if err != nil {
			t.Fatalf("NewParticipant(%d): %v", id, err)
		}
		handles[id] = &participantHandle{p: p}
	}

	for _, id := range ids {
		dealt, err := handles[id].p.Deal(rand.Reader)
		if err != nil {
			t.Fatalf("Deal(%d): %v", id, err)
		}
		for _, msg := range dealt {
			switch m := msg.(type) {
			case dkg.BroadcastCommitment:
				if err := tr.Broadcast(m); err != nil {
					t.Fatalf("Broadcast: %v", err)
				}
			case dkg.DistributeShare:
				if err := tr.SendPrivate(m.To, m); err != nil {
					t.Fatalf("SendPrivate: %v", err)
				}
			}
		}
	}

	for _, id := range ids {
		inbox, err := tr.Receive(id)
		if err != nil {
			t.Fatalf("Receive(%d): %v", id, err)
		}
		complaints, err := handles[id].p.Verify(inbox)
		if err != nil {
			t.Fatalf("Verify(%d): %v", id, err)
		}
		if len(complaints) != 0 {
			t.Fatalf("participant %d: unexpected complaints %v", id, complaints)
		}
		if err := handles[id].p.ComputeKeys(); err != nil {
			t.Fatalf("ComputeKeys(%d): %v", id, err)
		}
	}

	first, ok := handles[ids[0]].p.GroupPublicKey()
	if !ok {
		t.Fatalf("participant %d has no group public key", ids[0])
	}
	for _, id := range ids[1:] {
		pk, ok := handles[id].p.GroupPublicKey()
		if !ok {
			t.Fatalf("participant %d has no group public key", id)
		}
		if !pk.Equal(first) {
			t.Fatalf("participant %d disagrees on the group public key", id)
		}
	}
}

type participantHandle struct {
	p *dkg.Participant
}

func TestInMemoryTransportCeremony(t *testing.T) {
	testCeremonyOver(t, func(ids []dkg.ParticipantId) dkg.Transport {
		return NewInMemory(ids)
	})
}

func TestWireTransportCeremony(t *testing.T) {
	g := &bls12381.BLS12381{}
	testCeremonyOver(t, func(ids []dkg.ParticipantId) dkg.Transport {
		return NewWire(g, ids)
	})
}

func TestInMemorySendPrivateRejectsUnknownParticipant(t *testing.T) {
	tr := NewInMemory(participantIDs(3))
	err := tr.SendPrivate(99, dkg.BroadcastComplaint{})
	if err != ErrUnknownParticipant {
		t.Fatalf("expected ErrUnknownParticipant, got %v", err)
	}
}

func TestWireTransportRoundTripsCommitment(t *testing.T) {
	g := &bls12381.BLS12381{}
	ids := participantIDs(2)
	tr := NewWire(g, ids)

	p, err := dkg.NewParticipant(g, 1, 2, 2)
	if err != nil {
		t.Fatalf("NewParticipant: %v", err)
	}
	dealt, err := p.Deal(rand.Reader)
	if err != nil {
		t.Fatalf("Deal: %v", err)
	}

	var sent dkg.BroadcastCommitment
	for _, msg := range dealt {
		if m, ok := msg.(dkg.BroadcastCommitment); ok {
			sent = m
			if err := tr.Broadcast(m); err != nil {
				t.Fatalf("Broadcast: %v", err)
			}
		}
	}

	received, err := tr.Receive(2)
	if err != nil {
		t.Fatalf("Receive: %v", err)
	}
	if len(received) != 1 {
		t.Fatalf("expected 1 message, got %d", len(received))
	}
	got, ok := received[0].(dkg.BroadcastCommitment)
	if !ok {
		t.Fatalf("expected BroadcastCommitment, got %T", received[0])
	}
	if got.Commitment.Len() != sent.Commitment.Len() {
		t.Fatalf("commitment length mismatch after wire round-trip")
	}
	for i := 0; i < sent.Commitment.Len(); i++ {
		if !got.Commitment.Point(i).Equal(sent.Commitment.Point(i)) {
			t.Fatalf("commitment point %d mismatch after wire round-trip", i)
		}
	}
}
