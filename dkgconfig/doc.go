// Package dkgconfig loads the parameters of a demo DKG ceremony from
// flags, environment variables, and defaults. It is consumed only by
// cmd/dkgdemo — the dkg package itself takes no configuration, it is
// handed a (threshold, n) pair directly by its caller.
//
// Grounded on vocdoni-davinci-node's cmd/davinci-sequencer config
// loader: a viper.Viper with defaults, pflag-defined flags bound onto
// it, and a single Unmarshal into a mapstructure-tagged struct.
package dkgconfig
