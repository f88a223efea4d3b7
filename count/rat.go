// SPDX-License-Identifier: MIT

package count

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrParse is returned by ParseRat for strings that are not exact rationals.
var ErrParse = errors.New("count: invalid rational literal")

const panicZeroDenominator = "count: NewRat: zero denominator"

// Rat is an immutable exact rational number backed by math/big.
// The zero value is 0 and ready to use. Every operation allocates a fresh
// big.Rat, so Rat values can be shared freely between matrices and ballots.
type Rat struct {
	v *big.Rat // nil means 0; never mutated after construction
}

// Compile-time assertions.
var (
	_ Number[Rat]  = Rat{}
	_ fmt.Stringer = Rat{}
)

// NewRat returns num/den. It panics when den == 0 (programmer error).
func NewRat(num, den int64) Rat {
	if den == 0 {
		panic(panicZeroDenominator)
	}

	return Rat{v: big.NewRat(num, den)}
}

// FromInt returns the integer n as a Rat.
func FromInt(n int64) Rat {
	return Rat{v: new(big.Rat).SetInt64(n)}
}

// FromBig returns a Rat holding a copy of r. A nil r yields 0.
func FromBig(r *big.Rat) Rat {
	if r == nil {
		return Rat{}
	}

	return Rat{v: new(big.Rat).Set(r)}
}

// ParseRat parses "a", "a/b" or a finite decimal such as "0.25".
// Decimal input is converted exactly (0.1 is 1/10, not a binary float).
func ParseRat(s string) (Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rat{}, fmt.Errorf("ParseRat(%q): %w", s, ErrParse)
	}

	return Rat{v: r}, nil
}

// rat returns the backing value, substituting 0 for the zero Rat.
func (x Rat) rat() *big.Rat {
	if x.v == nil {
		return new(big.Rat)
	}

	return x.v
}

// Zero returns 0.
func (Rat) Zero() Rat { return Rat{} }

// One returns 1.
func (Rat) One() Rat { return FromInt(1) }

// Add returns x + y.
func (x Rat) Add(y Rat) Rat {
	return Rat{v: new(big.Rat).Add(x.rat(), y.rat())}
}

// Sub returns x - y.
func (x Rat) Sub(y Rat) Rat {
	return Rat{v: new(big.Rat).Sub(x.rat(), y.rat())}
}

// Mul returns x * y.
func (x Rat) Mul(y Rat) Rat {
	return Rat{v: new(big.Rat).Mul(x.rat(), y.rat())}
}

// Neg returns -x.
func (x Rat) Neg() Rat {
	return Rat{v: new(big.Rat).Neg(x.rat())}
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Rat) Cmp(y Rat) int {
	return x.rat().Cmp(y.rat())
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Rat) Sign() int {
	if x.v == nil {
		return 0
	}

	return x.v.Sign()
}

// Equal reports whether x == y. go-cmp picks this method up automatically.
func (x Rat) Equal(y Rat) bool {
	return x.Cmp(y) == 0
}

// Big returns a copy of x as a *big.Rat.
func (x Rat) Big() *big.Rat {
	return new(big.Rat).Set(x.rat())
}

// String formats x as "a" for integers and "a/b" otherwise.
func (x Rat) String() string {
	return x.rat().RatString()
}
