// SPDX-License-Identifier: MIT

package count

// Number is an exact, totally ordered field element.
//
// Contract:
//   - Add, Sub and Mul never mutate the receiver or the argument.
//   - Cmp returns -1, 0 or +1 and is consistent with Sub (x.Cmp(y) == 0 iff x.Sub(y) is Zero).
//   - Zero and One must not depend on the receiver value, so callers may
//     invoke them on the zero value of T.
type Number[T any] interface {
	Zero() T
	One() T
	Add(T) T
	Sub(T) T
	Mul(T) T
	Cmp(T) int
}

// Zero returns the additive identity of T.
func Zero[T Number[T]]() T {
	var t T

	return t.Zero()
}

// One returns the multiplicative identity of T.
func One[T Number[T]]() T {
	var t T

	return t.One()
}

// IsZero reports whether x equals the additive identity.
func IsZero[T Number[T]](x T) bool {
	return x.Cmp(x.Zero()) == 0
}

// Equal reports whether x and y compare equal.
func Equal[T Number[T]](x, y T) bool {
	return x.Cmp(y) == 0
}

// Min returns the smaller of x and y (x on ties).
func Min[T Number[T]](x, y T) T {
	if y.Cmp(x) < 0 {
		return y
	}

	return x
}

// Max returns the larger of x and y (x on ties).
func Max[T Number[T]](x, y T) T {
	if y.Cmp(x) > 0 {
		return y
	}

	return x
}
