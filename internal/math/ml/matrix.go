package ml

import "fmt"

// Vector is a sparse row. Indices are sorted and unique.
type Vector struct {
	Indices []int
	Values  []float64
}

// At returns the value at column j.
func (v Vector) At(j int) float64 {
	lo, hi := 0, len(v.Indices)
	for lo < hi {
		m := (lo + hi) / 2
		switch {
		case v.Indices[m] == j:
			return v.Values[m]
		case v.Indices[m] < j:
			lo = m + 1
		default:
			hi = m
		}
	}
	return 0
}

// Dense expands the vector to the given number of columns.
func (v Vector) Dense(cols int) []float64 {
	d := make([]float64, cols)
	for k, j := range v.Indices {
		d[j] = v.Values[k]
	}
	return d
}

// Matrix is a row oriented sparse matrix.
type Matrix struct {
	rows []Vector
	cols int
}

// NewMatrix creates a matrix from the given rows.
func NewMatrix(rows []Vector, cols int) (*Matrix, error) {
	for i, row := range rows {
		if len(row.Indices) != len(row.Values) {
			return nil, fmt.Errorf("row %d has %d indices and %d values", i, len(row.Indices), len(row.Values))
		}
		for k, j := range row.Indices {
			if j < 0 || j >= cols {
				return nil, fmt.Errorf("row %d column %d out of range [0,%d)", i, j, cols)
			}
			if k > 0 && row.Indices[k-1] >= j {
				return nil, fmt.Errorf("row %d indices are not sorted at %d", i, k)
			}
		}
	}
	return &Matrix{rows: rows, cols: cols}, nil
}

func (m *Matrix) Rows() int {
	return len(m.rows)
}

func (m *Matrix) Cols() int {
	return m.cols
}

func (m *Matrix) Row(i int) Vector {
	return m.rows[i]
}

func (m *Matrix) At(i, j int) float64 {
	return m.rows[i].At(j)
}

// Dense returns row i as a dense slice.
func (m *Matrix) Dense(i int) []float64 {
	return m.rows[i].Dense(m.cols)
}

// NNZ returns the number of stored values.
func (m *Matrix) NNZ() int {
	n := 0
	for _, row := range m.rows {
		n += len(row.Indices)
	}
	return n
}

// Select returns the matrix made of the given rows, in the given order.
// Rows are shared, not copied.
func (m *Matrix) Select(rows []int) *Matrix {
	selected := make([]Vector, len(rows))
	for k, i := range rows {
		selected[k] = m.rows[i]
	}
	return &Matrix{rows: selected, cols: m.cols}
}
