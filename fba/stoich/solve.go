package stoich

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/sutyum/ecoli-code/fba"
)

// lpTol is the pivot tolerance handed to the simplex solver and used when
// reducing redundant balance rows.
const lpTol = 1e-10

// rankTol separates genuine balance constraints from rows that are linear
// combinations of others (conserved moieties).
const rankTol = 1e-9

// Solve implements fba.Model: one steady-state LP solve maximizing the
// current objective reaction subject to S·v = 0 and the per-reaction flux
// bounds. Infeasibility and unboundedness come back as statuses; the error
// return is reserved for solver plumbing failures.
//
// The bounded problem is converted to simplex standard form by the shift
// y = v − l (so y ≥ 0) with one slack row per reaction enforcing
// y + s = u − l.
func (n *Network) Solve() (fba.Solution, error) {
	if n.objectiveID == "" {
		return fba.Solution{}, fmt.Errorf("stoich: no objective set")
	}

	nRxn := len(n.rxnOrder)
	nMet := len(n.metOrder)
	metIdx := make(map[string]int, nMet)
	for i, id := range n.metOrder {
		metIdx[id] = i
	}

	lower := make([]float64, nRxn)
	upper := make([]float64, nRxn)
	// S in dense row-major form, one row per metabolite balance.
	S := make([][]float64, nMet)
	for i := range S {
		S[i] = make([]float64, nRxn)
	}
	for j, id := range n.rxnOrder {
		r := n.reactions[id]
		lower[j], upper[j] = r.Lower, r.Upper
		for metID, coeff := range r.Stoich {
			S[metIdx[metID]][j] = coeff
		}
	}

	// Balance rows: S·y = −S·l. Drop dependent rows up front; the simplex
	// implementation requires full row rank.
	balB := make([]float64, nMet)
	for i := range S {
		for j, coeff := range S[i] {
			balB[i] -= coeff * lower[j]
		}
	}
	balRows, balB, consistent := reduceRows(S, balB, rankTol)
	if !consistent {
		return fba.Solution{Status: fba.StatusInfeasible}, nil
	}

	// Standard form over x = [y; s]:
	//   [ S 0 ] x = −S·l
	//   [ I I ] x = u − l
	mRows := len(balRows) + nRxn
	nCols := 2 * nRxn
	A := mat.NewDense(mRows, nCols, nil)
	b := make([]float64, mRows)
	for i, row := range balRows {
		for j, coeff := range row {
			A.Set(i, j, coeff)
		}
		b[i] = balB[i]
	}
	for j := 0; j < nRxn; j++ {
		i := len(balRows) + j
		A.Set(i, j, 1)
		A.Set(i, nRxn+j, 1)
		b[i] = upper[j] - lower[j]
	}
	// Simplex expects b ≥ 0.
	for i := 0; i < mRows; i++ {
		if b[i] < 0 {
			b[i] = -b[i]
			for j := 0; j < nCols; j++ {
				A.Set(i, j, -A.At(i, j))
			}
		}
	}

	objIdx := 0
	for j, id := range n.rxnOrder {
		if id == n.objectiveID {
			objIdx = j
			break
		}
	}
	// Maximize v_obj == minimize −y_obj (the constant l_obj drops out).
	c := make([]float64, nCols)
	c[objIdx] = -1

	_, x, err := lp.Simplex(c, A, b, lpTol, nil)
	switch {
	case err == nil:
	case errors.Is(err, lp.ErrInfeasible):
		return fba.Solution{Status: fba.StatusInfeasible}, nil
	case errors.Is(err, lp.ErrUnbounded):
		return fba.Solution{Status: fba.StatusUnbounded}, nil
	default:
		return fba.Solution{}, fmt.Errorf("stoich: simplex failed: %w", err)
	}

	fluxes := make(map[string]float64, nRxn)
	for j, id := range n.rxnOrder {
		v := x[j] + lower[j]
		if math.Abs(v) < lpTol {
			v = 0
		}
		fluxes[id] = v
	}
	return fba.Solution{
		Status:    fba.StatusOptimal,
		Objective: fluxes[n.objectiveID],
		Fluxes:    fluxes,
	}, nil
}

// reduceRows performs Gaussian elimination with partial pivoting on the
// augmented system [rows | b] and returns an equivalent subsystem with
// linearly independent rows. A dependent row with a non-zero right-hand
// side makes the system inconsistent (consistent = false).
func reduceRows(rows [][]float64, b []float64, tol float64) ([][]float64, []float64, bool) {
	m := len(rows)
	if m == 0 {
		return rows, b, true
	}
	nCols := len(rows[0])

	aug := make([][]float64, m)
	for i := range rows {
		aug[i] = make([]float64, nCols+1)
		copy(aug[i], rows[i])
		aug[i][nCols] = b[i]
	}

	rank := 0
	for col := 0; col < nCols && rank < m; col++ {
		pivot := -1
		best := tol
		for i := rank; i < m; i++ {
			if v := math.Abs(aug[i][col]); v > best {
				best, pivot = v, i
			}
		}
		if pivot < 0 {
			continue
		}
		aug[rank], aug[pivot] = aug[pivot], aug[rank]
		for i := rank + 1; i < m; i++ {
			if aug[i][col] == 0 {
				continue
			}
			f := aug[i][col] / aug[rank][col]
			for j := col; j <= nCols; j++ {
				aug[i][j] -= f * aug[rank][j]
			}
		}
		rank++
	}

	for i := rank; i < m; i++ {
		if math.Abs(aug[i][nCols]) > tol {
			return nil, nil, false
		}
	}

	outRows := make([][]float64, rank)
	outB := make([]float64, rank)
	for i := 0; i < rank; i++ {
		outRows[i] = aug[i][:nCols]
		outB[i] = aug[i][nCols]
	}
	return outRows, outB, true
}
