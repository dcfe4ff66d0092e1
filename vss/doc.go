// Package vss implements Feldman's verifiable secret sharing: it extends
// [sss] with a public commitment vector that lets any recipient check
// their share against the dealer's polynomial without learning the
// polynomial itself.
package vss
