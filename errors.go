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

import "fmt"

/* -------------------------------------------------------------------------- */

// InvalidSymbolError is returned by sequence decoding on the first
// character that is not part of the target alphabet.
type InvalidSymbolError struct {
	Char byte
}

func (e InvalidSymbolError) Error() string {
	return fmt.Sprintf("pssmscan: invalid symbol `%c'", e.Char)
}

// InconsistentLengthError is returned when sequences submitted to
// CountMatrixFromSequences do not all share the first sequence's length.
type InconsistentLengthError struct {
	Expected int
	Got      int
}

func (e InconsistentLengthError) Error() string {
	return fmt.Sprintf("pssmscan: inconsistent sequence length: expected %d, got %d", e.Expected, e.Got)
}

// InvalidBackgroundError is returned when a background frequency vector is
// negative somewhere or does not sum to 1 within tolerance.
type InvalidBackgroundError struct {
	Reason string
}

func (e InvalidBackgroundError) Error() string {
	return fmt.Sprintf("pssmscan: invalid background: %s", e.Reason)
}

// InvalidShapeError is returned when a dense matrix's column count does not
// match the alphabet it is declared against.
type InvalidShapeError struct {
	ExpectedCols int
	GotCols      int
}

func (e InvalidShapeError) Error() string {
	return fmt.Sprintf("pssmscan: invalid matrix shape: expected %d columns, got %d", e.ExpectedCols, e.GotCols)
}
