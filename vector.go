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

// stripedBackend implements the stripe-parallel algorithm of spec.md §4.4:
// for each stripe row r, the C lanes of that row hold C symbols from C
// alignment offsets spaced rowsMain apart. For each motif column j, the
// packed symbol row seq.Data.Row(r+j) supplies, per lane, a gather index
// into the K-entry scoring row sm.Data.Row(j) -- the portable-Go analogue
// of the broadcast-and-gather step the original source performs with
// _mm256_shuffle_epi8 / _mm256_i32gather_ps (see DESIGN.md for why this
// backend is plain Go rather than hand-written vector assembly).
//
// Accumulation order is j = 0..L-1 within each lane, same as scalarBackend,
// so the two backends agree exactly rather than merely within tolerance --
// but the row-major traversal (fixed r, varying lane) is the
// cache-friendly access pattern a real SIMD kernel would use, unlike the
// scalar backend's per-offset mod/div addressing.
type stripedBackend struct{}

func (stripedBackend) Name() string { return "striped" }

func (stripedBackend) ScoreInto(seq *StripedSequence, sm *ScoringMatrix, out *StripedScores) {
	rowsMain, length := checkPreconditions(seq, sm, out)
	l := sm.Len()
	c := seq.Data.Cols()

	lanes := make([]float32, c)
	for r := 0; r < rowsMain; r++ {
		for lane := range lanes {
			lanes[lane] = 0
		}
		for j := 0; j < l; j++ {
			symRow := seq.Data.Row(r + j)
			scoreRow := sm.Data.Row(j)
			for lane := 0; lane < c; lane++ {
				lanes[lane] += scoreRow[symRow[lane]]
			}
		}
		copy(out.Data.Row(r), lanes)
	}
	out.Length = length
	out.MaskBeyondLength()
}
