// Package tally builds pairwise preference matrices from ranked ballots and
// ranks the options with the Schulze (beat-path) method.
//
// 🚀 Pipeline
//
//	options + ballots
//	    │  WeightedPreferential: per-ballot indicator matrix × weight, summed
//	    ▼
//	Matrix        cell(i,j) = weighted support for option i over option j
//	    │  BeatPaths: keep winning directions, widest-path closure
//	    ▼
//	Matrix        cell(i,j) = strength of the strongest path i → j
//	    │  OptionsByPreference: peel the undefeated set until empty
//	    ▼
//	[][]O         tiers, most preferred first; ties share a tier
//
// All arithmetic is exact (see package count). A Matrix is immutable:
// Margins and BeatPaths return new matrices with the same option order.
//
// ⚙️ Usage:
//
//	tiers, err := tally.Schulze[string, count.Rat](options, ballots)
//
// Configuration uses functional options (WithLogger, WithWorkers); derived
// matrices inherit the options of the matrix they come from.
//
// OptionsByPreference is meant for closure matrices, whose beat relation is
// transitive. On a raw count matrix containing a Condorcet cycle it fails
// with ErrNotTransitive instead of looping or guessing.
package tally
