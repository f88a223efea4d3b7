// Package condorcet tabulates ranked-ballot elections with the Schulze
// (beat-path) method, using exact rational arithmetic throughout.
//
// 🚀 What is condorcet?
//
//	A small generic library that turns ranked ballots into a total, tiered
//	ordering of the options:
//		• Exact numbers: Number interface + immutable big-rational Rat
//		• Ballots: preferences, rankings, weighted ballots, a row builder
//		• Dense matrices: generic storage, elementwise ops, widest paths
//		• Tally: pairwise matrix, margins, beat-path closure, tiers
//
// ✨ Why condorcet?
//
//   - Exact – weights like 1/3 or 0.1 never round; ties are real ties
//   - Generic – options are any comparable type, counts any Number
//   - Safe – matrices are immutable; invalid input fails, never half-built
//   - Parallel – the O(N³) closure can fan rows out over goroutines
//
// Packages:
//
//	count/   — Number interface, Rat
//	ballot/  — Preference, Ranking, Weighted, Ranked, Builder
//	matrix/  — Dense[T], validators, Add/Sub/Scale/Transpose/Sum, widest paths
//	tally/   — Matrix[O,T], Pair, aggregation, BeatPaths, OptionsByPreference
//	examples/ — runnable scenarios
//
// Quick example:
//
//	tiers, err := tally.Schulze[string, count.Rat](options, ballots)
//	// [[E] [A] [C] [B] [D]]
//
//	go get github.com/katalvlaran/condorcet
package condorcet
