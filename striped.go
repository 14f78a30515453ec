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

// StripedSequence is an EncodedSequence laid out column-major into a
// rows x C matrix, with extra wrap rows appended so that reading L
// consecutive rows starting at any valid row never runs off the allocated
// buffer, for any motif length the sequence has been configured for.
//
// Length is the original sequence length N, not the striped row count.
// Wrap only ever grows in place via Configure/ConfigureWrap; once grown
// to cover a given motif length, read-only references to a
// StripedSequence may be shared across goroutines (spec.md §5).
type StripedSequence struct {
	Alphabet Alphabet
	Length   int
	Wrap     int
	Data     *DenseMatrix[Symbol]
}

// RowsMain is the number of stripe-body rows, excluding wrap rows.
func (s *StripedSequence) RowsMain() int {
	return s.Data.Rows() - s.Wrap
}

// Configure ensures enough wrap rows are present to score a motif of the
// given length. It is the caller-facing entry point named in spec.md §4.2.
func (s *StripedSequence) Configure(motifLength int) {
	s.ConfigureWrap(motifLength)
}

// ConfigureWrap grows the wrap region to at least m-1 rows, where m is a
// motif length. Configuring again with a motif length that needs no more
// wrap than is already present is a no-op, per spec.md §3's monotonicity
// invariant.
func (s *StripedSequence) ConfigureWrap(m int) {
	required := m - 1
	if required < 0 {
		required = 0
	}
	if required <= s.Wrap {
		return
	}
	rowsMain := s.RowsMain()
	s.Data.Resize(rowsMain + required)
	c := s.Data.Cols()
	def := s.Alphabet.Default()
	for r := s.Wrap; r < required; r++ {
		for j := 0; j < c-1; j++ {
			s.Data.Set(rowsMain+r, j, s.Data.At(r, j+1))
		}
		if c > 0 {
			s.Data.Set(rowsMain+r, c-1, def)
		}
	}
	s.Wrap = required
}
