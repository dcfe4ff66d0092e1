// Package transport provides [github.com/quorumkey/dkg/dkg.Transport]
// implementations. [InMemory] is a local, FIFO mailbox per participant,
// suitable for tests and single-process demos. [Wire] layers a CBOR
// wire codec on top of it so a ceremony's messages can be round-tripped
// as bytes, the way a real network transport would carry them.
package transport
