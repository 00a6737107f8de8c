// Copyright (c) 2023 Colin McRae

// Package binmatrix represents a matrix over GF(2) and the reduction
// routines used to turn boolean matrices into gate layers.
package binmatrix

import (
	"fmt"
	"strings"
)

type Matrix struct {
	bits    []bool
	numRows int
	numCols int
}

// New returns a numRows x numCols zero matrix. Negative numRows or
// numCols is interpreted as 0, and a 0 x n or n x 0 matrix is
// interpreted as 0 x 0.
func New(numRows int, numCols int) *Matrix {
	if numRows < 0 {
		numRows = 0
	}
	if numCols < 0 {
		numCols = 0
	}
	if numRows == 0 || numCols == 0 {
		return &Matrix{}
	}
	return &Matrix{
		bits:    make([]bool, numRows*numCols),
		numRows: numRows,
		numCols: numCols,
	}
}

// NewIdentity returns a dim x dim identity matrix. If dim < 1, an
// error is returned.
func NewIdentity(dim int) (*Matrix, error) {
	if dim < 1 {
		return nil, fmt.Errorf("NewIdentity: dimension %d < 1", dim)
	}
	retVal := New(dim, dim)
	for i := 0; i < dim; i++ {
		retVal.bits[i*dim+i] = true
	}
	return retVal, nil
}

// NewFromInts creates a matrix from input with dimensions
// numRowsIn x numColsIn; nonzero entries become 1. If the number of
// rows and columns are not positive and/or do not match the length of
// the input, an error is returned.
func NewFromInts(input []int, numRowsIn int, numColsIn int) (*Matrix, error) {
	if numRowsIn <= 0 || numColsIn <= 0 {
		return nil, fmt.Errorf(
			"NewFromInts: illegal number of rows %d or columns %d", numRowsIn, numColsIn,
		)
	}
	if len(input) != numRowsIn*numColsIn {
		return nil, fmt.Errorf("NewFromInts: length of input does not match dimensions")
	}
	retVal := New(numRowsIn, numColsIn)
	for index, value := range input {
		retVal.bits[index] = value != 0
	}
	return retVal, nil
}

func (m *Matrix) checkRow(i int) {
	if i < 0 || m.numRows <= i {
		panic(fmt.Sprintf("row index %d outside range {0,...,%d}", i, m.numRows-1))
	}
}

func (m *Matrix) checkCol(j int) {
	if j < 0 || m.numCols <= j {
		panic(fmt.Sprintf("column index %d outside range {0,...,%d}", j, m.numCols-1))
	}
}

// At returns the entry in row i, column j.
func (m *Matrix) At(i int, j int) bool {
	m.checkRow(i)
	m.checkCol(j)
	return m.bits[i*m.numCols+j]
}

// Set sets the entry in row i, column j to x.
func (m *Matrix) Set(i int, j int, x bool) {
	m.checkRow(i)
	m.checkCol(j)
	m.bits[i*m.numCols+j] = x
}

// Copy returns a deep copy of m.
func (m *Matrix) Copy() *Matrix {
	retVal := New(m.numRows, m.numCols)
	copy(retVal.bits, m.bits)
	return retVal
}

// XorCol XORs column src into column dst, leaving column src unchanged.
func (m *Matrix) XorCol(src int, dst int) {
	m.checkCol(src)
	m.checkCol(dst)
	for i := 0; i < m.numRows; i++ {
		m.bits[i*m.numCols+dst] = m.bits[i*m.numCols+dst] != m.bits[i*m.numCols+src]
	}
}

// Transpose returns the transpose of m as a new matrix.
func (m *Matrix) Transpose() *Matrix {
	retVal := New(m.numCols, m.numRows)
	for i := 0; i < m.numRows; i++ {
		for j := 0; j < m.numCols; j++ {
			retVal.bits[j*m.numRows+i] = m.bits[i*m.numCols+j]
		}
	}
	return retVal
}

// Mul returns the matrix product xy over GF(2). If the dimensions of x
// and y do not match, an error is returned.
func Mul(x *Matrix, y *Matrix) (*Matrix, error) {
	if x.numCols != y.numRows {
		return nil, fmt.Errorf(
			"Mul: mismatched dimensions for operands x (%d x %d) and y (%d x %d)",
			x.numRows, x.numCols, y.numRows, y.numCols,
		)
	}
	retVal := New(x.numRows, y.numCols)
	for i := 0; i < x.numRows; i++ {
		for j := 0; j < y.numCols; j++ {
			entry := false
			for k := 0; k < x.numCols; k++ {
				if x.bits[i*x.numCols+k] && y.bits[k*y.numCols+j] {
					entry = !entry
				}
			}
			retVal.bits[i*y.numCols+j] = entry
		}
	}
	return retVal, nil
}

// Equals returns whether m and x have the same dimensions and entries.
func (m *Matrix) Equals(x *Matrix) bool {
	if m.numRows != x.numRows || m.numCols != x.numCols {
		return false
	}
	for i := range m.bits {
		if m.bits[i] != x.bits[i] {
			return false
		}
	}
	return true
}

// IsIdentity returns whether m is a square identity matrix.
func (m *Matrix) IsIdentity() bool {
	if m.numRows != m.numCols {
		return false
	}
	for i := 0; i < m.numRows; i++ {
		for j := 0; j < m.numCols; j++ {
			if m.bits[i*m.numCols+j] != (i == j) {
				return false
			}
		}
	}
	return true
}

// IsZero returns whether every entry of m is 0.
func (m *Matrix) IsZero() bool {
	for i := range m.bits {
		if m.bits[i] {
			return false
		}
	}
	return true
}

// IsSymmetric returns whether m is square and equal to its transpose.
func (m *Matrix) IsSymmetric() bool {
	if m.numRows != m.numCols {
		return false
	}
	for i := 0; i < m.numRows; i++ {
		for j := i + 1; j < m.numCols; j++ {
			if m.bits[i*m.numCols+j] != m.bits[j*m.numCols+i] {
				return false
			}
		}
	}
	return true
}

// Dimensions returns the number of rows and columns in m, in that order.
func (m *Matrix) Dimensions() (int, int) {
	return m.numRows, m.numCols
}

// NumRows returns the number of rows in m.
func (m *Matrix) NumRows() int {
	return m.numRows
}

// NumCols returns the number of columns in m.
func (m *Matrix) NumCols() int {
	return m.numCols
}

// String returns a string representing m with rows separated by newlines.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.numRows; i++ {
		for j := 0; j < m.numCols; j++ {
			if m.bits[i*m.numCols+j] {
				sb.WriteString("1")
			} else {
				sb.WriteString("0")
			}
			if j+1 < m.numCols {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
