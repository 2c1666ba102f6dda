//Package assign establishes the correspondence between the vibrational modes
//of two related calculations (the same molecule under a perturbation, two
//conformers) from the geometry of their displacement vectors. Frequency order
//is useless for this: close-lying modes swap ranks under small structural
//changes, while the motion pattern itself is preserved.
package assign

import (
	"fmt"
	"sort"

	raman "github.com/ramanchem/goraman"
	v3 "github.com/ramanchem/goraman/v3"
	"gonum.org/v1/gonum/mat"
)

//DefaultThreshold is a conservative acceptance threshold for Match: an
//overlap of 0.5 already means the two motions share most of their character.
const DefaultThreshold = 0.5

//Overlap returns the overlap between two displacement matrices: the absolute
//value of the normalized dot product of the flattened vectors, in [0,1]. 1
//means identical motion up to sign and scale, 0 orthogonal motions. The
//absolute value is taken because a normal-mode displacement has no intrinsic
//sign convention. If either displacement has zero norm, the overlap is 0.
//Both matrices must span the same number of atoms.
func Overlap(a, b *v3.Matrix) float64 {
	na := a.Norm()
	nb := b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	dot := a.Dot(b)
	if dot < 0 {
		dot = -dot
	}
	ret := dot / (na * nb)
	//clamp rounding noise so callers can rely on the [0,1] contract
	if ret > 1 {
		ret = 1
	}
	return ret
}

//Scores returns the dense overlap matrix between every mode of A (rows) and
//every mode of B (columns). Both tables must carry displacements over the
//same number of atoms. The matrix is plain gonum data: callers wanting a
//globally optimal assignment instead of the greedy policy of Match can feed
//it to any bipartite matching algorithm and keep the rest of the pipeline.
func Scores(A, B *raman.ModeTable) (*mat.Dense, error) {
	if A == nil || B == nil || A.Len() == 0 || B.Len() == 0 {
		return nil, Error{raman.ErrInvalidParameter, "both mode tables must be non-empty", []string{"Scores"}, true}
	}
	if !A.HasDisp() || !B.HasDisp() || A.NAtoms() != B.NAtoms() {
		return nil, Error{raman.ErrAtomCountMismatch, fmt.Sprintf("tables carry displacements over %d and %d atoms", A.NAtoms(), B.NAtoms()), []string{"Scores"}, true}
	}
	for i := 0; i < A.Len(); i++ {
		if A.Mode(i).Disp == nil {
			return nil, Error{raman.ErrAtomCountMismatch, fmt.Sprintf("mode %d of the first table has no displacement", i), []string{"Scores"}, true}
		}
	}
	for j := 0; j < B.Len(); j++ {
		if B.Mode(j).Disp == nil {
			return nil, Error{raman.ErrAtomCountMismatch, fmt.Sprintf("mode %d of the second table has no displacement", j), []string{"Scores"}, true}
		}
	}
	ret := mat.NewDense(A.Len(), B.Len(), nil)
	for i := 0; i < A.Len(); i++ {
		for j := 0; j < B.Len(); j++ {
			ret.Set(i, j, Overlap(A.Mode(i).Disp, B.Mode(j).Disp))
		}
	}
	return ret, nil
}

//Pair is one committed correspondence: mode A of the first table matches mode
//B of the second, with the realized overlap score, so callers can audit the
//quality of each match.
type Pair struct {
	A     int     `json:"a"`
	B     int     `json:"b"`
	Score float64 `json:"score"`
}

//Assignment is a partial one-to-one mapping between the modes of two tables.
//Every index of either table appears exactly once, either in Pairs or in the
//corresponding Unmatched list; nothing is silently dropped. Unmatched modes
//are valid output, not a failure.
type Assignment struct {
	Pairs      []Pair `json:"pairs"`
	UnmatchedA []int  `json:"unmatched_a"`
	UnmatchedB []int  `json:"unmatched_b"`
}

//AtoB returns the assignment as a map from first-table to second-table
//indexes.
func (A *Assignment) AtoB() map[int]int {
	ret := make(map[int]int, len(A.Pairs))
	for _, p := range A.Pairs {
		ret[p.A] = p.B
	}
	return ret
}

func (A *Assignment) String() string {
	return fmt.Sprintf("Assignment: %d pairs, %d+%d unmatched", len(A.Pairs), len(A.UnmatchedA), len(A.UnmatchedB))
}

//Match computes the overlap matrix between the modes of A and B and resolves
//a one-to-one assignment with FromScores. tau is the acceptance threshold in
//[0,1]; a pair scoring exactly tau is accepted, below tau never.
func Match(A, B *raman.ModeTable, tau float64) (*Assignment, error) {
	scores, err := Scores(A, B)
	if err != nil {
		return nil, errDecorate(err, "Match")
	}
	ret, err := FromScores(scores, tau)
	if err != nil {
		return nil, errDecorate(err, "Match")
	}
	return ret, nil
}

//FromScores resolves an assignment from an already computed score matrix,
//greedily: the highest remaining score is committed, both indexes retired,
//and so on, until nothing at or above tau remains. Ties in score are broken
//by the lower sum of indexes, then by the lower row index, so runs are
//reproducible. The greedy policy is an approximation to optimal bipartite
//matching, traded for simplicity; substitute your own resolver on the same
//matrix if you need global optimality.
func FromScores(scores mat.Matrix, tau float64) (*Assignment, error) {
	if tau < 0 || tau > 1 {
		return nil, Error{raman.ErrInvalidParameter, fmt.Sprintf("threshold %v outside [0,1]", tau), []string{"FromScores"}, true}
	}
	n, m := scores.Dims()
	cand := make([]Pair, 0, n*m)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if s := scores.At(i, j); s >= tau {
				cand = append(cand, Pair{A: i, B: j, Score: s})
			}
		}
	}
	sort.SliceStable(cand, func(i, j int) bool {
		a, b := cand[i], cand[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.A+a.B != b.A+b.B {
			return a.A+a.B < b.A+b.B
		}
		return a.A < b.A
	})
	usedA := make([]bool, n)
	usedB := make([]bool, m)
	ret := &Assignment{Pairs: []Pair{}, UnmatchedA: []int{}, UnmatchedB: []int{}}
	for _, p := range cand {
		if usedA[p.A] || usedB[p.B] {
			continue
		}
		usedA[p.A] = true
		usedB[p.B] = true
		ret.Pairs = append(ret.Pairs, p)
	}
	for i, v := range usedA {
		if !v {
			ret.UnmatchedA = append(ret.UnmatchedA, i)
		}
	}
	for j, v := range usedB {
		if !v {
			ret.UnmatchedB = append(ret.UnmatchedB, j)
		}
	}
	return ret, nil
}

//Errors

//Error is the concrete error of this package. It implements raman.Errorer.
type Error struct {
	kind     string //one of the raman.Err* constants
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("goRaman/assign: %s: %s", err.kind, err.message)
}

//Kind returns the failure kind, one of the raman.Err* constants.
func (err Error) Kind() string { return err.kind }

//Decorate adds the deco string to the decoration slice of the error and
//returns the resulting slice.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored.
func (err Error) Critical() bool { return err.critical }

func errDecorate(err error, caller string) error {
	err2 := err.(raman.Errorer)
	err2.Decorate(caller)
	return err2
}
