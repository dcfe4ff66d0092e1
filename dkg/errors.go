package dkg

import "errors"

// Errors below fall into two categories. Programmer-misuse errors
// (invalid construction, calling a phase out of order) must never be
// reached in correct use and should be treated as unrecoverable by
// callers. Protocol-level faults are not errors at all — they surface
// as BroadcastComplaint messages returned from Verify.
// Precondition-not-met cases (reading a key before its phase ran) are
// not errors either — they return a zero value and false.

var (
	// ErrReservedParticipantID is returned when constructing a
	// participant with id 0, the interpolation point of the group
	// secret.
	ErrReservedParticipantID = errors.New("dkg: participant id 0 is reserved")

	// ErrParticipantIDOutOfRange is returned when a participant id is
	// not in 1..n.
	ErrParticipantIDOutOfRange = errors.New("dkg: participant id must be in 1..n")

	// ErrInvalidThreshold is returned when a (t, n) pair violates
	// 1 <= t <= n.
	ErrInvalidThreshold = errors.New("dkg: threshold must satisfy 1 <= t <= n")

	// ErrAlreadyDealt is returned by Deal when called more than once.
	ErrAlreadyDealt = errors.New("dkg: Deal has already been called")

	// ErrDealRequired is returned by Verify when the participant is not
	// in the Dealt phase: Deal has not yet run, or Verify already has.
	ErrDealRequired = errors.New("dkg: Deal must be called before Verify")

	// ErrVerifyRequired is returned by ComputeKeys and ResolveDisputes
	// when Verify has not yet run.
	ErrVerifyRequired = errors.New("dkg: Verify must be called before this operation")

	// ErrAlreadyComputed is returned by ComputeKeys when called more
	// than once.
	ErrAlreadyComputed = errors.New("dkg: ComputeKeys has already been called")

	// ErrUnknownMessageKind is returned by Verify when it is handed a
	// Message whose concrete type it does not recognize. Unknown kinds
	// are rejected explicitly rather than silently skipped.
	ErrUnknownMessageKind = errors.New("dkg: unrecognized message kind")

	// ErrPolynomialZeroized is returned by RevealShare once the
	// participant's secret polynomial has been zeroized.
	ErrPolynomialZeroized = errors.New("dkg: secret polynomial has been zeroized")
)
