/* Copyright (C) 2016 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package pssmscan

/* -------------------------------------------------------------------------- */

import (
	"math"
	"math/rand"
	"testing"
)

/* -------------------------------------------------------------------------- */

func randomScoringMatrix(rng *rand.Rand, l int) *ScoringMatrix {
	k := DNA.K()
	counts := NewDenseMatrix[uint32](l, k)
	for i := 0; i < l; i++ {
		for s := 0; s < k; s++ {
			if s == int(DNA.Default()) {
				continue
			}
			counts.Set(i, s, uint32(rng.Intn(20)+1))
		}
	}
	cm, _ := NewCountMatrix(DNA, counts)
	fm := cm.ToFrequency(PseudocountScalar(DNA, 0.1))
	bg, _ := UniformBackground(DNA)
	return fm.ToScoring(bg)
}

// TestBackendEquivalence is spec.md §8 property 6: the scalar and striped
// backends must agree exactly for every logical offset.
func TestBackendEquivalence(test *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for trial := 0; trial < 20; trial++ {
		n := rng.Intn(200) + 30
		l := rng.Intn(min(n, 26)) + 4
		if l > n {
			l = n
		}
		c := []int{1, 2, 4, 8, 16}[rng.Intn(5)]
		s := randomDnaString(rng, n)
		seq := mustSeq(test, s)
		sm := randomScoringMatrix(rng, l)

		scalar := seq.ToStriped(c)
		striped := seq.ToStriped(c)

		scalarOut := NewScalarPipeline().Score(scalar, sm)
		stripedOut := NewStripedPipeline().Score(striped, sm)

		a := scalarOut.ToVec()
		b := stripedOut.ToVec()
		if len(a) != len(b) {
			test.Fatalf("n=%d l=%d c=%d: length mismatch %d vs %d", n, l, c, len(a), len(b))
		}
		for i := range a {
			if a[i] != b[i] {
				test.Fatalf("n=%d l=%d c=%d offset %d: scalar %f != striped %f", n, l, c, i, a[i], b[i])
			}
		}
	}
}

// TestScanScenarioS4 is spec.md §8 scenario S4: scoring a sequence against
// its own consensus-derived matrix should rank the true motif occurrence
// highest.
func TestScanScenarioS4(test *testing.T) {
	motif := mustSeq(test, "ACGT")
	seqs := []*EncodedSequence{motif, motif, motif, motif}
	cm, err := CountMatrixFromSequences(DNA, seqs)
	if err != nil {
		test.Fatalf("CountMatrixFromSequences failed: %v", err)
	}
	fm := cm.ToFrequency(PseudocountScalar(DNA, 0.1))
	bg, _ := UniformBackground(DNA)
	sm := fm.ToScoring(bg)

	seq := mustSeq(test, "TTTTACGTTTTT")
	for _, pipe := range []*Pipeline{NewScalarPipeline(), NewStripedPipeline()} {
		st := seq.ToStriped(4)
		out := pipe.Score(st, sm)
		best, _, ok := out.Argmax()
		if !ok {
			test.Fatalf("%s: expected a best offset", pipe.Backend.Name())
		}
		if best != 4 {
			test.Errorf("%s: expected best offset 4, got %d", pipe.Backend.Name(), best)
		}
	}
}

// TestArgmaxTieBreak is spec.md §8 property 7: ties resolve to the smallest
// offset.
func TestArgmaxTieBreak(test *testing.T) {
	scores := NewStripedScores(2, 2)
	scores.Length = 4
	scores.Data.Set(0, 0, 5)
	scores.Data.Set(1, 0, 5)
	scores.Data.Set(0, 1, 1)
	scores.Data.Set(1, 1, 1)
	best, score, ok := scores.Argmax()
	if !ok || best != 0 || score != 5 {
		test.Errorf("expected tie to resolve to offset 0 with score 5, got offset %d score %f ok=%v", best, score, ok)
	}
}

func TestArgmaxEmpty(test *testing.T) {
	scores := NewStripedScores(2, 2)
	_, _, ok := scores.Argmax()
	if ok {
		test.Error("expected Argmax on a zero-length buffer to report no result")
	}
}

// TestMaskBeyondLength is spec.md §8 property 8.
func TestMaskBeyondLength(test *testing.T) {
	rng := rand.New(rand.NewSource(8))
	n := 40
	l := 5
	c := 4
	s := randomDnaString(rng, n)
	seq := mustSeq(test, s)
	sm := randomScoringMatrix(rng, l)
	st := seq.ToStriped(c)

	pipe := NewScalarPipeline()
	out := pipe.Score(st, sm)

	rows := out.Data.Rows()
	total := rows * out.Data.Cols()
	for i := out.Length; i < total; i++ {
		v := out.Data.At(i%rows, i/rows)
		if !math.IsInf(float64(v), -1) {
			test.Errorf("cell %d beyond length %d should be -Inf, got %f", i, out.Length, v)
		}
	}
}

func TestScoreIntoPanicsOnShapeMismatch(test *testing.T) {
	defer func() {
		if recover() == nil {
			test.Error("expected a panic on a mismatched output buffer shape")
		}
	}()
	seq := mustSeq(test, "ACGTACGT")
	sm := randomScoringMatrix(rand.New(rand.NewSource(9)), 3)
	st := seq.ToStriped(4)
	st.Configure(sm.Len())
	out := NewStripedScores(st.RowsMain(), st.Data.Cols()+1)
	NewScalarPipeline().ScoreInto(st, sm, out)
}

func TestScoreIntoPanicsOnInsufficientWrap(test *testing.T) {
	defer func() {
		if recover() == nil {
			test.Error("expected a panic when the sequence is not configured for the motif length")
		}
	}()
	seq := mustSeq(test, "ACGTACGTACGT")
	sm := randomScoringMatrix(rand.New(rand.NewSource(10)), 5)
	st := seq.ToStriped(4) // never configured for length 5
	out := NewStripedScores(st.RowsMain(), st.Data.Cols())
	NewScalarPipeline().ScoreInto(st, sm, out)
}

func TestScoreIntoPanicsOnOversizedMotif(test *testing.T) {
	defer func() {
		if recover() == nil {
			test.Error("expected a panic when the motif is longer than the sequence")
		}
	}()
	seq := mustSeq(test, "AC")
	sm := randomScoringMatrix(rand.New(rand.NewSource(11)), 5)
	st := seq.ToStriped(4)
	st.Configure(sm.Len())
	out := NewStripedScores(st.RowsMain(), st.Data.Cols())
	NewScalarPipeline().ScoreInto(st, sm, out)
}
