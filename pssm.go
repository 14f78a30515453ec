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

import "math"

/* -------------------------------------------------------------------------- */

// CountMatrix is an L x K matrix of nonnegative symbol counts per motif
// column, learned from a set of aligned sequences of identical length.
type CountMatrix struct {
	Alphabet Alphabet
	Data     *DenseMatrix[uint32]
}

// NewCountMatrix validates that data's column count matches the alphabet
// and wraps it, for callers that already have counts from an external
// matrix parser (spec.md §6).
func NewCountMatrix(a Alphabet, data *DenseMatrix[uint32]) (*CountMatrix, error) {
	if data.Cols() != a.K() {
		return nil, InvalidShapeError{ExpectedCols: a.K(), GotCols: data.Cols()}
	}
	return &CountMatrix{Alphabet: a, Data: data}, nil
}

// CountMatrixFromSequences tallies, for each column i, how many input
// sequences have symbol s at position i. All sequences must share the
// first sequence's length; empty input yields a zero-row matrix.
func CountMatrixFromSequences(a Alphabet, seqs []*EncodedSequence) (*CountMatrix, error) {
	if len(seqs) == 0 {
		return &CountMatrix{Alphabet: a, Data: NewDenseMatrix[uint32](0, a.K())}, nil
	}
	l := seqs[0].Len()
	m := NewDenseMatrix[uint32](l, a.K())
	for _, seq := range seqs {
		if seq.Len() != l {
			return nil, InconsistentLengthError{Expected: l, Got: seq.Len()}
		}
		for i, sym := range seq.Data {
			m.Set(i, int(sym), m.At(i, int(sym))+1)
		}
	}
	return &CountMatrix{Alphabet: a, Data: m}, nil
}

func (cm *CountMatrix) Len() int { return cm.Data.Rows() }

/* -------------------------------------------------------------------------- */

// Pseudocount is a nonnegative, length-K additive smoothing term applied to
// raw counts before normalization.
type Pseudocount struct {
	Values []float32
}

// PseudocountScalar fills every non-wildcard position with x and zeros the
// alphabet's default (wildcard) position, so wildcard symbols never
// contribute smoothed mass (the Open Question decision recorded in
// SPEC_FULL.md §10).
func PseudocountScalar(a Alphabet, x float32) Pseudocount {
	v := make([]float32, a.K())
	def := int(a.Default())
	for i := range v {
		if i == def {
			continue
		}
		v[i] = x
	}
	return Pseudocount{Values: v}
}

// PseudocountVector takes an explicit length-K pseudocount array verbatim,
// including any mass placed on the wildcard position.
func PseudocountVector(values []float32) Pseudocount {
	return Pseudocount{Values: append([]float32(nil), values...)}
}

/* -------------------------------------------------------------------------- */

// Background is an a priori distribution over alphabet symbols, the
// log-odds denominator.
type Background struct {
	Frequencies []float32
}

// UniformBackground spreads 1/(K-1) over the non-wildcard symbols and
// places zero mass on the wildcard, matching PseudocountScalar's policy.
func UniformBackground(a Alphabet) (Background, error) {
	k := a.K()
	def := int(a.Default())
	n := k - 1
	if n <= 0 {
		return Background{}, InvalidBackgroundError{Reason: "alphabet has no non-wildcard symbols"}
	}
	v := make([]float32, k)
	p := float32(1.0) / float32(n)
	for i := range v {
		if i == def {
			continue
		}
		v[i] = p
	}
	return Background{Frequencies: v}, nil
}

// NewBackground validates that freqs are nonnegative and sum to 1 within
// 1e-6 before accepting them.
func NewBackground(freqs []float32) (Background, error) {
	var sum float32
	for _, f := range freqs {
		if f < 0 {
			return Background{}, InvalidBackgroundError{Reason: "negative frequency"}
		}
		sum += f
	}
	if math.Abs(float64(sum)-1) > 1e-6 {
		return Background{}, InvalidBackgroundError{Reason: "frequencies do not sum to 1"}
	}
	return Background{Frequencies: append([]float32(nil), freqs...)}, nil
}

/* -------------------------------------------------------------------------- */

// FrequencyMatrix is a row-stochastic L x K matrix of symbol frequencies.
type FrequencyMatrix struct {
	Alphabet Alphabet
	Data     *DenseMatrix[float32]
}

// ToFrequency builds a row-stochastic frequency matrix by adding
// pseudocounts to raw counts and normalizing each row independently.
func (cm *CountMatrix) ToFrequency(p Pseudocount) *FrequencyMatrix {
	l := cm.Data.Rows()
	k := cm.Data.Cols()
	out := NewDenseMatrix[float32](l, k)
	for i := 0; i < l; i++ {
		var sum float32
		for s := 0; s < k; s++ {
			v := float32(cm.Data.At(i, s)) + p.Values[s]
			out.Set(i, s, v)
			sum += v
		}
		if sum > 0 {
			for s := 0; s < k; s++ {
				out.Set(i, s, out.At(i, s)/sum)
			}
		}
	}
	return &FrequencyMatrix{Alphabet: cm.Alphabet, Data: out}
}

/* -------------------------------------------------------------------------- */

// ScoringMatrix is an L x K matrix of log2 odds scores. Background is kept
// only for diagnostics: scoring depends solely on Data's values.
type ScoringMatrix struct {
	Alphabet   Alphabet
	Background Background
	Data       *DenseMatrix[float32]
}

// ToScoring computes log2(FM[i][s] / background[s]) per cell. A zero
// frequency produces -Inf (the exact mathematical value, representable in
// IEEE-754); a zero background with nonzero frequency produces +Inf.
func (fm *FrequencyMatrix) ToScoring(b Background) *ScoringMatrix {
	l := fm.Data.Rows()
	k := fm.Data.Cols()
	out := NewDenseMatrix[float32](l, k)
	for i := 0; i < l; i++ {
		for s := 0; s < k; s++ {
			freq := fm.Data.At(i, s)
			bg := b.Frequencies[s]
			var v float32
			switch {
			case freq == 0 && bg == 0:
				v = float32(math.NaN())
			case freq == 0:
				v = float32(math.Inf(-1))
			case bg == 0:
				v = float32(math.Inf(1))
			default:
				v = float32(math.Log2(float64(freq) / float64(bg)))
			}
			out.Set(i, s, v)
		}
	}
	return &ScoringMatrix{Alphabet: fm.Alphabet, Background: b, Data: out}
}

func (sm *ScoringMatrix) Len() int { return sm.Data.Rows() }
