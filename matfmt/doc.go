// SPDX-License-Identifier: MIT

// Package matfmt pretty-prints a linalg.Mat4 as an aligned text block.
//
// Every row is enclosed in bars, cells are separated by two spaces and a
// newline terminates each row:
//
//	|   1    0   5  9 |
//	| -23  325  24  4 |
//
// Three modes are offered:
//
//   - Uniform: every cell right-aligned to the widest element of the matrix.
//   - PerColumn: every cell right-aligned to the widest element of its column.
//   - Fractional: integer parts right-aligned, fraction parts (delimiter
//     included) left-aligned, per column; WithPrecision caps and truncates
//     the fraction.
//
// Output is plain UTF-8 with no locale handling; widths are counted in runes.
package matfmt
