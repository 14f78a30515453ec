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

// EncodedSequence is a flat vector of alphabet symbols decoded from text.
type EncodedSequence struct {
	Alphabet Alphabet
	Data     []Symbol
}

// FromText decodes s character by character, stopping at the first
// character outside a. No partial state is returned on failure.
func FromText(a Alphabet, s string) (*EncodedSequence, error) {
	data := make([]Symbol, len(s))
	for i := 0; i < len(s); i++ {
		sym, err := a.Decode(s[i])
		if err != nil {
			return nil, err
		}
		data[i] = sym
	}
	return &EncodedSequence{Alphabet: a, Data: data}, nil
}

func (e *EncodedSequence) Len() int { return len(e.Data) }

// ToStriped lays the sequence out column-major into a rows x c matrix so
// that a vector register can hold c symbols from c independent alignment
// offsets spaced rows_main apart (spec.md §4.2). Trailing cells beyond the
// sequence's length are padded with the alphabet's default symbol.
func (e *EncodedSequence) ToStriped(c int) *StripedSequence {
	n := e.Len()
	rowsMain := ceilDiv(n, c)
	m := NewDenseMatrix[Symbol](rowsMain, c)
	if rowsMain > 0 {
		def := e.Alphabet.Default()
		total := rowsMain * c
		for i := 0; i < total; i++ {
			row := i % rowsMain
			col := i / rowsMain
			if i < n {
				m.Set(row, col, e.Data[i])
			} else {
				m.Set(row, col, def)
			}
		}
	}
	return &StripedSequence{
		Alphabet: e.Alphabet,
		Length:   n,
		Wrap:     0,
		Data:     m,
	}
}

func ceilDiv(n, c int) int {
	if n == 0 {
		return 0
	}
	return (n + c - 1) / c
}
