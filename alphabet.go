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

import "fmt"

/* -------------------------------------------------------------------------- */

// Symbol is an alphabet-relative index in 0..K-1. It is the element type
// stored in encoded and striped sequences, and the column index into a
// scoring matrix row.
type Symbol uint8

// Alphabet is a finite, totally ordered symbol set with a distinguished
// default symbol used for padding and as "unknown". Indices are fixed by
// the implementation and MUST be stable across runs: a scoring matrix
// built against one order cannot be read with another.
type Alphabet interface {
	// K returns the alphabet size.
	K() int
	// Default returns the symbol used for stripe padding and wrap filler.
	Default() Symbol
	// Decode maps a character to its symbol, failing on the first
	// character outside the alphabet.
	Decode(c byte) (Symbol, error)
	// Encode is the inverse of Decode, used for diagnostics.
	Encode(s Symbol) (byte, error)
	String() string
}

/* -------------------------------------------------------------------------- */

// DNA symbol order is fixed: A, C, T, G, then the wildcard N. Reordering
// this is a breaking change, since every scoring matrix encodes columns by
// this index.
const (
	DnaA Symbol = iota
	DnaC
	DnaT
	DnaG
	DnaN
)

type dnaAlphabet struct{}

// DNA is the canonical nucleotide alphabet: K=5, wildcard N.
var DNA Alphabet = dnaAlphabet{}

func (dnaAlphabet) K() int { return 5 }

func (dnaAlphabet) Default() Symbol { return DnaN }

func (dnaAlphabet) Decode(c byte) (Symbol, error) {
	switch c {
	case 'A', 'a':
		return DnaA, nil
	case 'C', 'c':
		return DnaC, nil
	case 'T', 't':
		return DnaT, nil
	case 'G', 'g':
		return DnaG, nil
	case 'N', 'n':
		return DnaN, nil
	default:
		return 0, InvalidSymbolError{Char: c}
	}
}

func (dnaAlphabet) Encode(s Symbol) (byte, error) {
	switch s {
	case DnaA:
		return 'A', nil
	case DnaC:
		return 'C', nil
	case DnaT:
		return 'T', nil
	case DnaG:
		return 'G', nil
	case DnaN:
		return 'N', nil
	default:
		return 0, fmt.Errorf("pssmscan: %d is not a valid DNA symbol code", s)
	}
}

func (dnaAlphabet) String() string {
	return "nucleotide alphabet (A,C,T,G,N)"
}
