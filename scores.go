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

// StripedScores holds per-position log-odds scores in the same striped
// layout as the sequence they were computed from. Length is the number of
// logical output positions (N - L + 1); cells beyond Length are masked to
// -Inf by MaskBeyondLength so a reused buffer never leaks a stale score
// from a previous, longer scan.
type StripedScores struct {
	Data   *DenseMatrix[float32]
	Length int
}

// NewStripedScores allocates a zero-valued output buffer shaped to scan a
// striped sequence with rowsMain body rows and c lanes. Reuse the same
// buffer across scans of identical shape to amortize allocation to zero
// (spec.md §5).
func NewStripedScores(rowsMain, c int) *StripedScores {
	return &StripedScores{Data: NewDenseMatrix[float32](rowsMain, c)}
}

// ToVec flattens the striped layout back into logical offset order.
func (s *StripedScores) ToVec() []float32 {
	rows := s.Data.Rows()
	out := make([]float32, s.Length)
	for i := 0; i < s.Length; i++ {
		out[i] = s.Data.At(i%rows, i/rows)
	}
	return out
}

// Argmax returns the logical offset maximizing the stored score, breaking
// ties by the smallest offset. The second return value is that offset's
// score; the third is false iff Length is 0.
func (s *StripedScores) Argmax() (int, float32, bool) {
	if s.Length == 0 {
		return 0, 0, false
	}
	rows := s.Data.Rows()
	best := 0
	bestScore := s.Data.At(0, 0)
	for i := 1; i < s.Length; i++ {
		v := s.Data.At(i%rows, i/rows)
		if v > bestScore {
			bestScore = v
			best = i
		}
	}
	return best, bestScore, true
}

// MaskBeyondLength sets every cell at or beyond the logical offset Length,
// within the allocated rows x cols body, to -Inf. This is what lets a
// buffer-protocol consumer (spec.md §6) and Argmax/ToVec (which both
// already stop at Length) agree on what "no data here" means even if a
// caller reads the raw buffer directly.
func (s *StripedScores) MaskBeyondLength() {
	rows := s.Data.Rows()
	total := rows * s.Data.Cols()
	negInf := float32(math.Inf(-1))
	for i := s.Length; i < total; i++ {
		s.Data.Set(i%rows, i/rows, negInf)
	}
}
