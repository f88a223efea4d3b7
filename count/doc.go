// Package count defines the exact numeric abstraction used for every tally
// in condorcet, together with Rat, the default exact-rational implementation.
//
// Why exact?
//
//	Election results must be reproducible bit for bit. A floating point
//	rounding step can flip a 41 vs 41.0000001 comparison and with it the
//	winner, so nothing above this package ever touches float64.
//
// Number is deliberately small:
//
//	Zero, One          — identities, obtainable from the zero value of T
//	Add, Sub, Mul      — closed, exact, non-mutating
//	Cmp                — total order (-1, 0, +1)
//
// Any type satisfying Number[T] can be plugged into ballot and tally; the
// tests and examples use Rat.
//
//	w := count.NewRat(2, 3)
//	fmt.Println(w.Mul(count.FromInt(3))) // 2
package count
