// Command dkgdemo runs a distributed key generation ceremony entirely
// in-process and prints the resulting group public key. It exists to
// exercise the dkg/session/transport/dkgconfig packages together the
// way a real deployment would wire them, not as a production ceremony
// coordinator — a real deployment would run one process per
// participant and a network transport, not [transport.InMemory].
package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/quorumkey/dkg/curve/bls12381"
	"github.com/quorumkey/dkg/dkg"
	"github.com/quorumkey/dkg/dkgconfig"
	"github.com/quorumkey/dkg/group"
	"github.com/quorumkey/dkg/session"
	"github.com/quorumkey/dkg/transport"
)

func main() {
	root := &cobra.Command{
		Use:   "dkgdemo",
		Short: "Run a distributed key generation ceremony in-process",
		Long: `dkgdemo simulates an n-participant, t-threshold DKG ceremony in a
single process, logging every phase transition and printing the
resulting group public key once every participant reaches Phase K.

Flags are parsed by dkgconfig, which also reads DKGDEMO_* environment
variables; see the dkgconfig package for the full flag set.`,
		DisableFlagParsing: true,
		RunE:               runDemo,
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := dkgconfig.Load(args)
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)

	g := &bls12381.BLS12381{}
	ids := make([]dkg.ParticipantId, cfg.Participants)
	for i := range ids {
		ids[i] = dkg.ParticipantId(i + 1)
	}
	tr := transport.NewWire(g, ids)
	ceremonyID := session.NewCeremonyID()

	participants := make([]*dkg.Participant, cfg.Participants)
	for i, id := range ids {
		p, err := dkg.NewParticipant(g, id, cfg.Threshold, cfg.Participants)
		if err != nil {
			return err
		}
		participants[i] = p
	}

	log.Info().
		Str("ceremony_id", ceremonyID.String()).
		Int("threshold", cfg.Threshold).
		Int("participants", cfg.Participants).
		Bool("dispute_round", cfg.EnableDisputeRound).
		Msg("starting ceremony")

	// Deal runs outside the session package here so this demo can
	// corrupt one in-flight share below; a real caller would just use
	// session.Ceremony.Deal directly, as the session package doc shows.
	tamperTarget := dkg.ReservedParticipantID
	if cfg.EnableDisputeRound && cfg.Participants >= 2 {
		tamperTarget = ids[1]
	}

	var dealGroup errgroup.Group
	for _, p := range participants {
		p := p
		dealGroup.Go(func() error {
			messages, err := p.Deal(rand.Reader)
			if err != nil {
				return err
			}
			for _, msg := range messages {
				if err := deliver(tr, g, p.ID(), tamperTarget, msg); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := dealGroup.Wait(); err != nil {
		return fmt.Errorf("dkgdemo: deal phase failed: %w", err)
	}

	ceremonies := make([]*session.Ceremony, cfg.Participants)
	for i, p := range participants {
		ceremonies[i] = session.NewCeremony(ceremonyID, p, tr)
	}

	complaintsByVictim := make(map[dkg.ParticipantId][]dkg.Message, cfg.Participants)
	for _, c := range ceremonies {
		complaints, err := c.Verify()
		if err != nil {
			return fmt.Errorf("dkgdemo: verify phase failed: %w", err)
		}
		if len(complaints) > 0 {
			victim := complaints[0].(dkg.BroadcastComplaint).From
			complaintsByVictim[victim] = complaints
		}
	}

	if len(complaintsByVictim) > 0 {
		log.Warn().Int("count", len(complaintsByVictim)).Msg("resolving disputes")
		for i, c := range ceremonies {
			complaints, disputed := complaintsByVictim[participants[i].ID()]
			if !disputed {
				continue
			}
			against := complaints[0].(dkg.BroadcastComplaint).Against
			reveal, err := dealerByID(participants, against).RevealShare(participants[i].ID())
			if err != nil {
				return fmt.Errorf("dkgdemo: reveal share failed: %w", err)
			}
			if err := c.ResolveDisputes([]dkg.Message{reveal}); err != nil {
				return fmt.Errorf("dkgdemo: resolve disputes failed: %w", err)
			}
		}
	}

	var groupKey string
	for _, c := range ceremonies {
		result, err := c.ComputeKeys()
		if err != nil {
			return fmt.Errorf("dkgdemo: compute keys failed: %w", err)
		}
		groupKey = hex.EncodeToString(result.GroupPublicKey.Bytes())
	}

	fmt.Printf("group public key: %s\n", groupKey)
	return nil
}

// deliver routes one Deal-phase message to the transport. When target
// is not [dkg.ReservedParticipantID] and msg is the DistributeShare
// dealt by participant 1 to target, it corrupts the share's value
// first — simulating a faulty private channel so the demo exercises
// Phase R end to end.
func deliver(tr dkg.Transport, g group.Group, from, target dkg.ParticipantId, msg dkg.Message) error {
	switch m := msg.(type) {
	case dkg.BroadcastCommitment:
		return tr.Broadcast(m)
	case dkg.DistributeShare:
		if from == 1 && m.To == target {
			corrupted, err := g.RandomScalar(rand.Reader)
			if err != nil {
				return err
			}
			m.Share.Y = corrupted
		}
		return tr.SendPrivate(m.To, m)
	default:
		return fmt.Errorf("dkgdemo: unexpected deal-phase message %T", msg)
	}
}

func dealerByID(participants []*dkg.Participant, id dkg.ParticipantId) *dkg.Participant {
	for _, p := range participants {
		if p.ID() == id {
			return p
		}
	}
	return nil
}
