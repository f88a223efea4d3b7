// Package ballot models ranked ballots and the pairwise Preference they express.
//
// A ballot maps each option it mentions to an integer rank; lower ranks are
// more preferred and equal ranks are ties. Options the voter left out are
// unranked: Rank reports ok=false for any pair that involves them, which the
// tally treats as "no opinion" rather than as an error.
//
// Capabilities:
//   - Ranking[O]   — Rank(a, b) (Preference, bool)
//   - Weighted[T]  — Weight() T and an explicit in-place Rescale
//   - Ballot[O, T] — both; what tally.WeightedPreferential consumes
//
// Ranked is the concrete ballot. It is immutable except for its weight,
// which only Rescale may change (for multi-pass weighting done by callers).
//
//	b, err := ballot.FromGroups([][]string{{"A"}, {"B", "C"}}, count.FromInt(1))
//	p, ok := b.Rank("A", "C") // PreferA, true
package ballot
