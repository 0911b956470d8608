// Package scalar: Matrix is a concrete, row-major grid of Scalars, storing
// entries in a flat slice for cache friendliness, mirroring the shape
// discipline of a dense float64 matrix but over the mixed numeric/symbolic
// domain. All mutation is whole-row: swap, scale, add-multiple, combine.
package scalar

import (
	"fmt"
	"math"
	"strings"
)

// matrixErrorf wraps an underlying error with method context.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a row-major r×c grid of Scalars.
// r is rows, c is columns, and data holds r*c entries in row-major order.
// Zero-dimension matrices (r==0 or c==0) are legal and behave as no-ops in
// every algorithm; negative dimensions are rejected at construction.
type Matrix struct {
	r, c int      // number of rows and columns
	data []Scalar // flat backing storage, length == r*c
}

// NewMatrix creates an r×c Matrix initialized to numeric zeros.
// Stage 1 (Validate): ensure rows ≥ 0 and cols ≥ 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Matrix or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewMatrix(rows, cols int) (*Matrix, error) {
	// Validate dimensions
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}

	// Allocate flat slice; Scalar zero value is the numeric 0.
	return &Matrix{r: rows, c: cols, data: make([]Scalar, rows*cols)}, nil
}

// FromRows builds a Matrix from per-row Scalar slices.
// Stage 1 (Validate): all rows must have equal length (rectangular input).
// Stage 2 (Execute): copy entries into fresh flat storage.
// Returns ErrBadShape on ragged input. Complexity: O(r*c).
func FromRows(rows [][]Scalar) (*Matrix, error) {
	if len(rows) == 0 {
		return &Matrix{}, nil
	}
	cols := len(rows[0])
	for _, row := range rows {
		if len(row) != cols {
			return nil, ErrBadShape
		}
	}
	m := &Matrix{r: len(rows), c: cols, data: make([]Scalar, len(rows)*cols)}
	for i, row := range rows {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// FromFloats builds a numeric Matrix from per-row float64 slices.
// Convenience for classroom data; same shape rules as FromRows, plus a
// finiteness check: NaN or ±Inf entries are rejected with ErrNaNInf before
// they can poison zero tests downstream.
func FromFloats(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return &Matrix{}, nil
	}
	cols := len(rows[0])
	for _, row := range rows {
		if len(row) != cols {
			return nil, ErrBadShape
		}
	}
	m := &Matrix{r: len(rows), c: cols, data: make([]Scalar, len(rows)*cols)}
	for i, row := range rows {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNaNInf
			}
			m.data[i*cols+j] = Num(v)
		}
	}

	return m, nil
}

// Identity returns the n×n identity matrix with numeric entries.
func Identity(n int) (*Matrix, error) {
	m, err := NewMatrix(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = Num(1)
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.c }

// IsEmpty reports whether the matrix has no entries (zero rows or columns).
func (m *Matrix) IsEmpty() bool { return m.r == 0 || m.c == 0 }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, matrixErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, matrixErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the entry at (row, col) or ErrOutOfRange. Complexity: O(1).
func (m *Matrix) At(row, col int) (Scalar, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return Scalar{}, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col) or returns ErrOutOfRange. Complexity: O(1).
func (m *Matrix) Set(row, col int, v Scalar) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns an independent copy of row i. Complexity: O(c).
func (m *Matrix) Row(i int) ([]Scalar, error) {
	if i < 0 || i >= m.r {
		return nil, matrixErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]Scalar, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy of the Matrix, independent of the original.
// Complexity: O(r*c) time and memory.
func (m *Matrix) Clone() *Matrix {
	cp := make([]Scalar, len(m.data))
	copy(cp, m.data)

	return &Matrix{r: m.r, c: m.c, data: cp}
}

// SwapRows exchanges rows i and j in place.
// Stage 1 (Validate): bounds-check both indices.
// Stage 2 (Execute): element-wise swap over the two row slices.
// Complexity: O(c).
func (m *Matrix) SwapRows(i, j int) error {
	if i < 0 || i >= m.r {
		return matrixErrorf("SwapRows", i, 0, ErrOutOfRange)
	}
	if j < 0 || j >= m.r {
		return matrixErrorf("SwapRows", j, 0, ErrOutOfRange)
	}
	if i == j {
		return nil // no-op swap
	}
	ri, rj := m.data[i*m.c:(i+1)*m.c], m.data[j*m.c:(j+1)*m.c]
	for k := 0; k < m.c; k++ {
		ri[k], rj[k] = rj[k], ri[k]
	}

	return nil
}

// ScaleRow replaces row i with s · row_i in place. Complexity: O(c).
func (m *Matrix) ScaleRow(i int, s Scalar) error {
	if i < 0 || i >= m.r {
		return matrixErrorf("ScaleRow", i, 0, ErrOutOfRange)
	}
	row := m.data[i*m.c : (i+1)*m.c]
	for k := range row {
		row[k] = s.Mul(row[k])
	}

	return nil
}

// AddScaledRow replaces row i with row_i + s · row_j in place (i ≠ j not
// required; i == j degenerates to scaling by 1+s). Complexity: O(c).
func (m *Matrix) AddScaledRow(i, j int, s Scalar) error {
	if i < 0 || i >= m.r {
		return matrixErrorf("AddScaledRow", i, 0, ErrOutOfRange)
	}
	if j < 0 || j >= m.r {
		return matrixErrorf("AddScaledRow", j, 0, ErrOutOfRange)
	}
	ri, rj := m.data[i*m.c:(i+1)*m.c], m.data[j*m.c:(j+1)*m.c]
	for k := 0; k < m.c; k++ {
		ri[k] = ri[k].Add(s.Mul(rj[k]))
	}

	return nil
}

// CombineRows replaces row i with a · row_i + b · row_j in place.
// This is the multiply-and-subtract elimination form used when the pivot
// carries free parameters: the row's overall scale changes, which is
// acceptable because row-echelon form is scale-invariant per row.
// Complexity: O(c).
func (m *Matrix) CombineRows(i int, a Scalar, j int, b Scalar) error {
	if i < 0 || i >= m.r {
		return matrixErrorf("CombineRows", i, 0, ErrOutOfRange)
	}
	if j < 0 || j >= m.r {
		return matrixErrorf("CombineRows", j, 0, ErrOutOfRange)
	}
	ri, rj := m.data[i*m.c:(i+1)*m.c], m.data[j*m.c:(j+1)*m.c]
	for k := 0; k < m.c; k++ {
		ri[k] = a.Mul(ri[k]).Add(b.Mul(rj[k]))
	}

	return nil
}

// SimplifyRow normalizes every symbolic entry of row i through the engine.
// Numeric entries pass through unchanged. Complexity: O(c · expr size).
func (m *Matrix) SimplifyRow(i int) error {
	if i < 0 || i >= m.r {
		return matrixErrorf("SimplifyRow", i, 0, ErrOutOfRange)
	}
	row := m.data[i*m.c : (i+1)*m.c]
	for k := range row {
		row[k] = row[k].Simplify()
	}

	return nil
}

// SimplifyAll normalizes every entry of the matrix. Complexity: O(r*c).
func (m *Matrix) SimplifyAll() {
	for k := range m.data {
		m.data[k] = m.data[k].Simplify()
	}
}

// HasSymbolic reports whether any entry is on the symbolic arm.
func (m *Matrix) HasSymbolic() bool {
	for _, s := range m.data {
		if s.IsSymbolic() {
			return true
		}
	}

	return false
}

// Transpose returns a new c×r matrix with entries mirrored over the diagonal.
// Complexity: O(r*c).
func (m *Matrix) Transpose() *Matrix {
	out := &Matrix{r: m.c, c: m.r, data: make([]Scalar, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*out.c+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// Mul returns the matrix product m · other, or ErrDimensionMismatch when
// m.Cols() != other.Rows(). A fresh Matrix is allocated; operands are not
// mutated. Complexity: O(r*n*c).
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if other == nil {
		return nil, ErrNilMatrix
	}
	if m.c != other.r {
		return nil, ErrDimensionMismatch
	}
	out := &Matrix{r: m.r, c: other.c, data: make([]Scalar, m.r*other.c)}
	for i := 0; i < m.r; i++ {
		for j := 0; j < other.c; j++ {
			acc := Num(0)
			for k := 0; k < m.c; k++ {
				acc = acc.Add(m.data[i*m.c+k].Mul(other.data[k*other.c+j]))
			}
			out.data[i*out.c+j] = acc
		}
	}

	return out, nil
}

// MulVec returns the product m · v as a Vector, or ErrDimensionMismatch
// when len(v) != m.Cols(). Complexity: O(r*c).
func (m *Matrix) MulVec(v Vector) (Vector, error) {
	if len(v) != m.c {
		return nil, ErrDimensionMismatch
	}
	out := make(Vector, m.r)
	for i := 0; i < m.r; i++ {
		acc := Num(0)
		for k := 0; k < m.c; k++ {
			acc = acc.Add(m.data[i*m.c+k].Mul(v[k]))
		}
		out[i] = acc
	}

	return out, nil
}

// Augment returns the block matrix [m | other]: same rows, concatenated
// columns. Returns ErrDimensionMismatch when row counts differ.
// Complexity: O(r*(c1+c2)).
func (m *Matrix) Augment(other *Matrix) (*Matrix, error) {
	if other == nil {
		return nil, ErrNilMatrix
	}
	if m.r != other.r {
		return nil, ErrDimensionMismatch
	}
	cols := m.c + other.c
	out := &Matrix{r: m.r, c: cols, data: make([]Scalar, m.r*cols)}
	for i := 0; i < m.r; i++ {
		copy(out.data[i*cols:i*cols+m.c], m.data[i*m.c:(i+1)*m.c])
		copy(out.data[i*cols+m.c:(i+1)*cols], other.data[i*other.c:(i+1)*other.c])
	}

	return out, nil
}

// AugmentVec returns [m | v] for a column vector v of length m.Rows().
func (m *Matrix) AugmentVec(v Vector) (*Matrix, error) {
	if len(v) != m.r {
		return nil, ErrDimensionMismatch
	}
	col := &Matrix{r: m.r, c: 1, data: make([]Scalar, m.r)}
	copy(col.data, v)

	return m.Augment(col)
}

// Column returns an independent copy of column j as a Vector.
func (m *Matrix) Column(j int) (Vector, error) {
	if j < 0 || j >= m.c {
		return nil, matrixErrorf("Column", 0, j, ErrOutOfRange)
	}
	out := make(Vector, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// SubMatrix returns the block of columns [fromCol, toCol) across all rows.
// Used to split augmented matrices back into coefficient and constant blocks.
func (m *Matrix) SubMatrix(fromCol, toCol int) (*Matrix, error) {
	if fromCol < 0 || toCol > m.c || fromCol > toCol {
		return nil, matrixErrorf("SubMatrix", 0, fromCol, ErrOutOfRange)
	}
	cols := toCol - fromCol
	out := &Matrix{r: m.r, c: cols, data: make([]Scalar, m.r*cols)}
	for i := 0; i < m.r; i++ {
		copy(out.data[i*cols:(i+1)*cols], m.data[i*m.c+fromCol:i*m.c+toCol])
	}

	return out, nil
}

// LeadingCol returns the column index of the first nonzero entry of row i,
// or -1 when the row is entirely zero. Complexity: O(c).
func (m *Matrix) LeadingCol(i int) (int, error) {
	if i < 0 || i >= m.r {
		return 0, matrixErrorf("LeadingCol", i, 0, ErrOutOfRange)
	}
	row := m.data[i*m.c : (i+1)*m.c]
	for j, s := range row {
		if !s.IsZero() {
			return j, nil
		}
	}

	return -1, nil
}

// String implements fmt.Stringer for traces and debugging.
// Complexity: O(r*c) for string construction.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.data[i*m.c+j].String())
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
