// Package sss implements Shamir secret sharing over a [group.Group]'s
// scalar field: split a secret scalar into n shares such that any t of
// them reconstruct it via Lagrange interpolation at zero, while any
// fewer reveal nothing about it.
package sss
