// Package matrix provides dense, row-major matrices over exact numbers and the
// path-closure kernel the Schulze method is built on.
//
// The matrix package provides:
//
//   - Dense[T], a flat row-major buffer of count.Number values with safe
//     At/Set accessors (errors, never panics, on bad indices).
//   - Elementwise algebra (Add, Sub, Scale, Transpose, Sum) that always
//     returns fresh matrices and leaves operands untouched.
//   - Central validators (ValidateSquare, ValidateZeroDiagonal, ...).
//   - WidestPaths, an in-place bottleneck (max-min) all-pairs closure with a
//     fixed intermediate-outermost loop order and optional row fan-out.
//
// Matrices are O(n²) memory; closure is O(n³) time.
package matrix
