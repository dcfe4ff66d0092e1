// Package dkg implements the distributed key generation protocol that
// runs every participant simultaneously as both dealer and verifier: it
// combines every accepted dealer's [vss] contribution into a joint group
// public key, and derives each participant's threshold-signing share,
// without the group secret ever being materialized at a single location.
//
// # Protocol shape
//
// Every participant moves through the same phases, driven by the caller:
//
//	Fresh --Deal--> Dealt --Verify--> Verified --ComputeKeys--> Ready
//
// Deal generates the participant's own secret polynomial and the
// messages ([DistributeShare], [BroadcastCommitment]) it must emit.
// Verify ingests every message addressed to this participant since the
// last drain, checks each received share against its sender's
// commitment via [vss.VerifyShare], and returns any resulting
// [BroadcastComplaint] messages. A participant whose share is confirmed
// (directly, or via [Participant.ResolveDisputes]) enters the qualified
// set (QUAL). ComputeKeys sums the intercepts of every QUAL dealer's
// commitment into the group public key, and the scalars this
// participant received from every QUAL dealer into its own signing
// share.
//
// # Transport
//
// This package depends only on the small [Transport] capability
// interface — send_private, broadcast, receive — and never on a
// concrete implementation. See the sibling transport package for an
// in-memory mailbox and a CBOR-encoded variant.
//
// # Non-goals
//
// This package does not generate threshold signatures, does not persist
// participant state, and does not select or validate a transport's
// delivery guarantees — it trusts the `from` field of every message it
// is handed.
package dkg
