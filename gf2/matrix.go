package gf2

import "github.com/soniakeys/bits"

// Internal panic messages (no magic strings).
const (
	panicBadShape    = "gf2: New: rows and cols must be non-negative"
	panicRowRange    = "gf2: row index out of range"
	panicColRange    = "gf2: column index out of range"
	panicPivotCount  = "gf2: pivot list does not match matrix"
	panicBadRowWidth = "gf2: SetRow: width mismatch"
)

// Matrix is a dense row-major matrix over GF(2). Each row is a single
// bitset spanning all columns, coefficient and RHS columns alike.
//
// Memory: O(rows·cols / word_size) bits.
type Matrix struct {
	rows []bits.Bits
	cols int
}

// New allocates a zero rows×cols matrix. Panics on negative dimensions.
func New(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic(panicBadShape)
	}
	m := &Matrix{rows: make([]bits.Bits, rows), cols: cols}
	for i := range m.rows {
		m.rows[i] = bits.New(cols)
	}

	return m
}

// Rows reports the number of rows.
func (m *Matrix) Rows() int { return len(m.rows) }

// Cols reports the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Bit returns the entry at (i, j) as 0 or 1.
func (m *Matrix) Bit(i, j int) int {
	m.check(i, j)

	return m.rows[i].Bit(j)
}

// SetBit sets the entry at (i, j) to b (0 or 1).
func (m *Matrix) SetBit(i, j, b int) {
	m.check(i, j)
	m.rows[i].SetBit(j, b)
}

// FlipBit toggles the entry at (i, j).
func (m *Matrix) FlipBit(i, j int) {
	m.check(i, j)
	m.rows[i].SetBit(j, 1-m.rows[i].Bit(j))
}

// XorRows replaces row dst with row dst ⊕ row src.
//
// Time Complexity: O(cols / word_size)
func (m *Matrix) XorRows(dst, src int) {
	if dst < 0 || dst >= len(m.rows) || src < 0 || src >= len(m.rows) {
		panic(panicRowRange)
	}
	m.rows[dst].Xor(m.rows[dst], m.rows[src])
}

// SwapRows exchanges rows i and j.
func (m *Matrix) SwapRows(i, j int) {
	if i < 0 || i >= len(m.rows) || j < 0 || j >= len(m.rows) {
		panic(panicRowRange)
	}
	m.rows[i], m.rows[j] = m.rows[j], m.rows[i]
}

// Eliminate performs in-place Gauss–Jordan elimination, considering only
// the first uptoCol columns as pivot candidates. Columns at uptoCol and
// beyond (the RHS block) are carried along by the row operations.
//
// On return the matrix is in reduced row-echelon form over the pivot block:
// pivot rows are packed at the top, each pivot column has a single 1, and
// every row past the returned pivots is all-zero within the pivot block.
//
// Returns the pivot column of each pivoted row, in row order; the rank is
// the length of the returned slice.
//
// Steps:
//  1. For each candidate column c, find the first unpivoted row with a 1 at c.
//  2. Swap it up to the next pivot position.
//  3. XOR it into every other row holding a 1 at c (full Jordan reduction,
//     so back-substitution later is a plain bit lookup).
//
// Time Complexity: O(rows² · cols / word_size)
func (m *Matrix) Eliminate(uptoCol int) []int {
	if uptoCol < 0 || uptoCol > m.cols {
		panic(panicColRange)
	}
	pivots := make([]int, 0, min(len(m.rows), uptoCol))
	r := 0
	for c := 0; c < uptoCol && r < len(m.rows); c++ {
		// 1) locate a pivot row for column c
		p := -1
		for i := r; i < len(m.rows); i++ {
			if m.rows[i].Bit(c) == 1 {
				p = i
				break
			}
		}
		if p < 0 {
			continue
		}
		// 2) move it into position
		m.SwapRows(r, p)
		// 3) clear column c everywhere else
		for i := range m.rows {
			if i != r && m.rows[i].Bit(c) == 1 {
				m.XorRows(i, r)
			}
		}
		pivots = append(pivots, c)
		r++
	}

	return pivots
}

// Solvable reports whether the system with RHS column rhsCol is consistent,
// given the pivots returned by a prior Eliminate. The system is inconsistent
// exactly when some rank-deficient row (all-zero in the pivot block) holds a
// 1 in the RHS column.
//
// Time Complexity: O(rows)
func (m *Matrix) Solvable(pivots []int, rhsCol int) bool {
	if len(pivots) > len(m.rows) {
		panic(panicPivotCount)
	}
	if rhsCol < 0 || rhsCol >= m.cols {
		panic(panicColRange)
	}
	for i := len(pivots); i < len(m.rows); i++ {
		if m.rows[i].Bit(rhsCol) == 1 {
			return false
		}
	}

	return true
}

// Solution back-substitutes the RHS column rhsCol against the reduced form,
// assigning zero to every free variable, and returns the solution as a
// bitset over the pivot-block columns [0, uptoCol). With free variables
// pinned to zero the result is the lexicographically smallest solution
// bitset. The caller must have checked Solvable first.
//
// Time Complexity: O(rank)
func (m *Matrix) Solution(pivots []int, uptoCol, rhsCol int) bits.Bits {
	if rhsCol < 0 || rhsCol >= m.cols || uptoCol < 0 || uptoCol > m.cols {
		panic(panicColRange)
	}
	x := bits.New(uptoCol)
	for i, c := range pivots {
		if m.rows[i].Bit(rhsCol) == 1 {
			x.SetBit(c, 1)
		}
	}

	return x
}

// check validates a (row, col) pair.
func (m *Matrix) check(i, j int) {
	if i < 0 || i >= len(m.rows) {
		panic(panicRowRange)
	}
	if j < 0 || j >= m.cols {
		panic(panicColRange)
	}
}
