// Copyright (c) 2023 Colin McRae

package binmatrix

import "fmt"

// ColOp records the column operation "XOR column Src into column Dst".
// Applied to a stabilizer tableau as a CX gate, Src is the control and
// Dst is the target.
type ColOp struct {
	Src int
	Dst int
}

// GaussianElimColOps returns an ordered sequence of column operations
// that reduces the square matrix m to the identity when applied in
// order. m must be invertible over GF(2), or an error is returned.
// Pivots are chosen by ascending index so the sequence is fully
// determined by m. m itself is not modified.
func GaussianElimColOps(m *Matrix) ([]ColOp, error) {
	if m.numRows != m.numCols {
		return nil, fmt.Errorf(
			"GaussianElimColOps: matrix is %d x %d, not square", m.numRows, m.numCols,
		)
	}
	n := m.numRows
	w := m.Copy()
	var ops []ColOp
	apply := func(src, dst int) {
		w.XorCol(src, dst)
		ops = append(ops, ColOp{Src: src, Dst: dst})
	}
	for r := 0; r < n; r++ {
		// Rows above r are already reduced to unit rows, so any
		// pivot for row r must lie in columns r and beyond.
		if !w.At(r, r) {
			pivot := -1
			for j := r + 1; j < n; j++ {
				if w.At(r, j) {
					pivot = j
					break
				}
			}
			if pivot < 0 {
				return nil, fmt.Errorf("GaussianElimColOps: matrix is singular")
			}
			apply(pivot, r)
		}
		for j := 0; j < n; j++ {
			if j != r && w.At(r, j) {
				apply(r, j)
			}
		}
	}
	return ops, nil
}

// BinaryLLT decomposes a symmetric matrix d over GF(2) as
// d = low·lowᵗ + diag, where low is invertible (unit lower triangular)
// and diag is a diagonal correction returned as one flag per index. A
// set flag signals that the corresponding diagonal entry of d could
// not be matched by the factorization and needs a separate fix-up by
// the caller. The all-zero matrix flows through the same loop as the
// general case, yielding low = I and every flag set.
func BinaryLLT(d *Matrix) (*Matrix, []bool, error) {
	if !d.IsSymmetric() {
		return nil, nil, fmt.Errorf(
			"BinaryLLT: matrix (%d x %d) is not symmetric", d.numRows, d.numCols,
		)
	}
	n := d.numRows
	r := d.Copy()
	diag := make([]bool, n)
	low, err := NewIdentity(n)
	if err != nil {
		return nil, nil, fmt.Errorf("BinaryLLT: %s", err.Error())
	}
	for i := 0; i < n; i++ {
		if !r.At(i, i) {
			// No usable pivot; flag the index and factor d + e_i e_iᵗ
			// instead.
			diag[i] = true
			r.Set(i, i, true)
		}
		// Column i of the remainder becomes column i of the factor.
		// Entries above the diagonal were cleared by earlier steps.
		col := make([]bool, n)
		for j := 0; j < n; j++ {
			col[j] = r.At(j, i)
		}
		for j := i + 1; j < n; j++ {
			low.Set(j, i, col[j])
		}
		// Subtract the outer product col·colᵗ from the remainder,
		// zeroing row i and column i.
		for j := 0; j < n; j++ {
			if !col[j] {
				continue
			}
			for k := 0; k < n; k++ {
				if col[k] {
					r.Set(j, k, !r.At(j, k))
				}
			}
		}
	}
	return low, diag, nil
}
