// SPDX-License-Identifier: MIT

// Package matfmt - layout kernels.
//
// Implementation outline shared by every mode:
//   - Stage 1: render the 16 elements once (linalg.FormatScalar).
//   - Stage 2: measure widths in runes (whole matrix, per column, or per
//     column split into integer and fraction parts).
//   - Stage 3: emit "| " + cells joined by two spaces + " |\n" per row.
//
// Complexity: O(16) element renders plus output size; one strings.Builder.

package matfmt

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/glmath/linalg"
)

// ---------- Layout literals ----------
const (
	_rowOpen  = "| "
	_rowClose = " |\n"
	_cellSep  = "  "
	_pad      = " "
)

// Mode selects the alignment strategy.
type Mode int

const (
	// ModeUniform aligns every cell to the widest element of the matrix.
	ModeUniform Mode = iota
	// ModePerColumn aligns every cell to the widest element of its column.
	ModePerColumn
	// ModeFractional aligns the fraction delimiter within each column.
	ModeFractional
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeUniform:
		return "uniform"
	case ModePerColumn:
		return "per-column"
	case ModeFractional:
		return "fractional"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// grid holds the rendered text of each element, grid[r][c].
type grid [4][4]string

// renderGrid formats every element of m with the configured delimiter.
func renderGrid[T linalg.Number](m linalg.Mat4[T], delim rune) grid {
	var g grid
	var r, c int
	for r = 0; r < 4; r++ {
		for c = 0; c < 4; c++ {
			s := linalg.FormatScalar(m[r*4+c])
			if delim != DefaultDelimiter {
				s = strings.Replace(s, string(DefaultDelimiter), string(delim), 1)
			}
			g[r][c] = s
		}
	}

	return g
}

// width counts runes, not bytes.
func width(s string) int { return utf8.RuneCountInString(s) }

// padLeft right-aligns s in a field of n runes.
func padLeft(s string, n int) string {
	if w := width(s); w < n {
		return strings.Repeat(_pad, n-w) + s
	}

	return s
}

// padRight left-aligns s in a field of n runes.
func padRight(s string, n int) string {
	if w := width(s); w < n {
		return s + strings.Repeat(_pad, n-w)
	}

	return s
}

// writeRows joins pre-padded cells into the barred block.
func writeRows(cells grid) string {
	var b strings.Builder
	var r, c int
	for r = 0; r < 4; r++ {
		b.WriteString(_rowOpen)
		for c = 0; c < 4; c++ {
			if c > 0 {
				b.WriteString(_cellSep)
			}
			b.WriteString(cells[r][c])
		}
		b.WriteString(_rowClose)
	}

	return b.String()
}

// Uniform right-aligns every element in a field as wide as the widest
// element of the whole matrix.
func Uniform[T linalg.Number](m linalg.Mat4[T]) string {
	g := renderGrid(m, DefaultDelimiter)
	maxW := 0
	for r := range g {
		for c := range g[r] {
			maxW = max(maxW, width(g[r][c]))
		}
	}
	for r := range g {
		for c := range g[r] {
			g[r][c] = padLeft(g[r][c], maxW)
		}
	}

	return writeRows(g)
}

// PerColumn right-aligns every element in a field as wide as the widest
// element of its column.
func PerColumn[T linalg.Number](m linalg.Mat4[T]) string {
	g := renderGrid(m, DefaultDelimiter)
	var colW [4]int
	for r := range g {
		for c := range g[r] {
			colW[c] = max(colW[c], width(g[r][c]))
		}
	}
	for r := range g {
		for c := range g[r] {
			g[r][c] = padLeft(g[r][c], colW[c])
		}
	}

	return writeRows(g)
}

// splitFraction cuts s at the first delimiter; frac keeps the delimiter.
// Values without a delimiter return frac == "".
func splitFraction(s string, delim rune) (intPart, frac string) {
	if i := strings.IndexRune(s, delim); i >= 0 {
		return s[:i], s[i:]
	}

	return s, ""
}

// truncateFraction applies the precision cap to a fraction (delimiter included).
func truncateFraction(frac string, precision int) string {
	if precision < 0 || frac == "" {
		return frac
	}
	if precision == 0 {
		return ""
	}
	limit := precision + 1 // +1 for the delimiter
	if width(frac) <= limit {
		return frac
	}
	runes := []rune(frac)

	return string(runes[:limit])
}

// Fractional aligns the fraction delimiter within every column.
// Implementation:
//   - Stage 1: render and split every element into integer and fraction
//     part; apply the precision cap (truncation) to the fraction.
//   - Stage 2: per column, widest integer part and widest fraction part.
//   - Stage 3: integer part right-aligned, fraction part left-aligned;
//     elements without a delimiter pad the fraction field with spaces.
//
// Behavior highlights:
//   - Integer element types have no delimiter and degrade to PerColumn.
//   - Truncation happens before measuring, so a capped column is exactly
//     precision+1 wide in its fraction field.
//
// Options:
//   - WithPrecision(n), WithDelimiter(r).
//
// Complexity:
//   - Time O(16 + output), Space O(output).
func Fractional[T linalg.Number](m linalg.Mat4[T], opts ...Option) string {
	o := gatherOptions(opts...)
	g := renderGrid(m, o.delimiter)

	var ints, fracs grid
	var intW, fracW [4]int
	for r := range g {
		for c := range g[r] {
			ip, fp := splitFraction(g[r][c], o.delimiter)
			fp = truncateFraction(fp, o.precision)
			ints[r][c], fracs[r][c] = ip, fp
			intW[c] = max(intW[c], width(ip))
			fracW[c] = max(fracW[c], width(fp))
		}
	}
	for r := range g {
		for c := range g[r] {
			g[r][c] = padLeft(ints[r][c], intW[c]) + padRight(fracs[r][c], fracW[c])
		}
	}

	return writeRows(g)
}

// Format dispatches to the layout named by mode. Options apply to
// ModeFractional only. Unknown modes fall back to ModeUniform.
func Format[T linalg.Number](m linalg.Mat4[T], mode Mode, opts ...Option) string {
	switch mode {
	case ModePerColumn:
		return PerColumn(m)
	case ModeFractional:
		return Fractional(m, opts...)
	default:
		return Uniform(m)
	}
}
