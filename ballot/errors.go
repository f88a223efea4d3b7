// SPDX-License-Identifier: MIT

package ballot

import (
	"errors"
	"fmt"
)

// ErrValidation is the category shared by every construction failure in
// this package. Match it with errors.Is to catch any invalid input.
var ErrValidation = errors.New("ballot: validation failed")

var (
	// ErrDuplicateOption is returned when an option occurs more than once in
	// the tie groups of FromGroups or in the option list of NewBuilder.
	ErrDuplicateOption = fmt.Errorf("%w: option repeated", ErrValidation)

	// ErrRankLength is returned by Builder when the rank list length differs
	// from the number of options.
	ErrRankLength = fmt.Errorf("%w: ranks must have the same length as options", ErrValidation)
)

// panic messages for programmer errors.
const panicUnranked = "ballot: Compare: pair is not ranked on this ballot"
