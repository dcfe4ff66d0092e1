// Package session provides a high-level API for running a distributed
// key generation ceremony end to end. It wraps the low-level state
// machine in [github.com/quorumkey/dkg/dkg] with a ceremony-scoped
// correlation id and structured logging, and drives it over a
// [github.com/quorumkey/dkg/dkg.Transport].
//
// The session package is for application developers who want to run a
// DKG ceremony without hand-rolling Phase D/V/R/K orchestration. For
// full control over the protocol, use the dkg package directly.
//
// # Ceremony
//
// Every participant in a ceremony runs the same code independently:
//
//	ceremony := session.NewCeremony(ceremonyID, participant, transport)
//	if err := ceremony.Deal(rand.Reader); err != nil {
//		return err
//	}
//	complaints, err := ceremony.Verify()
//	if err != nil {
//		return err
//	}
//	// If Verify surfaced complaints, a coordinator gathers RevealShare
//	// responses from the accused dealers and every participant calls:
//	//   ceremony.ResolveDisputes(revealed)
//	result, err := ceremony.ComputeKeys()
//
// Deal and Verify exchange messages through the supplied transport;
// ResolveDisputes does not — reveal messages are out-of-band because
// only the accused dealer, not the transport's broadcast/private
// addressing, decides who receives a reveal.
//
// # Transport Agnostic
//
// This package does not pick a transport. Use
// [github.com/quorumkey/dkg/transport.InMemory] for tests and
// single-process demos, [github.com/quorumkey/dkg/transport.Wire] to
// exercise a CBOR wire codec, or any other
// [github.com/quorumkey/dkg/dkg.Transport] implementation.
package session
