// SPDX-License-Identifier: MIT
// Package tally: sentinel error set.
// Every failure matches one category (ErrValidation or ErrNotFound) and one
// specific sentinel; test both with errors.Is. Matrix-level sentinels are
// re-exported from package matrix so either name matches.

package tally

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/condorcet/matrix"
)

// Categories.
var (
	// ErrValidation marks input that violates a matrix invariant.
	// Construction is all-or-nothing: no partial matrix is ever returned.
	ErrValidation = errors.New("tally: validation failed")

	// ErrNotFound marks a lookup of an unknown option or index.
	ErrNotFound = errors.New("tally: not found")
)

// Validation sentinels.
var (
	// ErrNonSquare aliases matrix.ErrNonSquare.
	ErrNonSquare = matrix.ErrNonSquare

	// ErrDimensionMismatch aliases matrix.ErrDimensionMismatch; also returned
	// when the matrix dimension differs from the number of options.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrNonZeroDiagonal aliases matrix.ErrNonZeroDiagonal.
	ErrNonZeroDiagonal = matrix.ErrNonZeroDiagonal

	// ErrDuplicateOption is returned when the option list repeats an entry.
	ErrDuplicateOption = errors.New("tally: duplicate option")

	// ErrNilBallot is returned by aggregation for a nil ballot.
	ErrNilBallot = errors.New("tally: nil ballot")

	// ErrNotTransitive is returned by OptionsByPreference when some round has
	// no undefeated option, i.e. the matrix is not a beat-path closure.
	ErrNotTransitive = errors.New("tally: beat relation has a cycle; run BeatPaths first")
)

// Lookup sentinels.
var (
	// ErrUnknownOption is returned for an option that is not in the matrix.
	ErrUnknownOption = errors.New("tally: unknown option")

	// ErrOutOfRange aliases matrix.ErrOutOfRange for numeric indices.
	ErrOutOfRange = matrix.ErrOutOfRange
)

// invalid tags err as a validation failure of op.
func invalid(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrValidation, err)
}

// notFound tags err as a lookup failure of op.
func notFound(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrNotFound, err)
}
