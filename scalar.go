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

// ScoreBackend fills out with per-position log-odds scores for seq scored
// against sm. Preconditions (spec.md §4.4) are the caller's responsibility:
// seq must be configured with enough wrap for sm's length, and out must be
// shaped to match seq's lane count. Violating a precondition is a
// programming error and panics rather than returning an error -- scoring
// itself performs no I/O and cannot otherwise fail.
type ScoreBackend interface {
	Name() string
	ScoreInto(seq *StripedSequence, sm *ScoringMatrix, out *StripedScores)
}

/* -------------------------------------------------------------------------- */

// checkPreconditions validates the shared ScoreInto preconditions and
// returns (rowsMain, outputLength).
func checkPreconditions(seq *StripedSequence, sm *ScoringMatrix, out *StripedScores) (int, int) {
	l := sm.Len()
	if l == 0 {
		panic("pssmscan: scoring matrix has zero length")
	}
	if l > seq.Length {
		panic("pssmscan: motif is longer than the sequence")
	}
	if seq.Wrap < l-1 {
		panic("pssmscan: striped sequence is not configured for this motif length")
	}
	rowsMain := seq.RowsMain()
	if out.Data.Rows() < rowsMain || out.Data.Cols() != seq.Data.Cols() {
		panic("pssmscan: output buffer shape does not match the striped sequence")
	}
	length := seq.Length - l + 1
	if length < 0 {
		length = 0
	}
	return rowsMain, length
}

/* -------------------------------------------------------------------------- */

// scalarBackend is the reference oracle: it walks logical offsets directly,
// recomputing the (row, col) address on every motif column via mod/div,
// exactly as spec.md §4.4's scalar algorithm describes.
type scalarBackend struct{}

func (scalarBackend) Name() string { return "scalar" }

func (scalarBackend) ScoreInto(seq *StripedSequence, sm *ScoringMatrix, out *StripedScores) {
	rowsMain, length := checkPreconditions(seq, sm, out)
	l := sm.Len()

	for i := 0; i < length; i++ {
		var score float32
		for j := 0; j < l; j++ {
			off := i + j
			sym := seq.Data.At(off%rowsMain, off/rowsMain)
			score += sm.Data.At(j, int(sym))
		}
		out.Data.Set(i%rowsMain, i/rowsMain, score)
	}
	out.Length = length
	out.MaskBeyondLength()
}
