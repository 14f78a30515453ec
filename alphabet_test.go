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

import "testing"

/* -------------------------------------------------------------------------- */

func TestDnaDecode(test *testing.T) {
	cases := []struct {
		c byte
		s Symbol
	}{
		{'A', DnaA}, {'a', DnaA},
		{'C', DnaC}, {'c', DnaC},
		{'T', DnaT}, {'t', DnaT},
		{'G', DnaG}, {'g', DnaG},
		{'N', DnaN}, {'n', DnaN},
	}
	for _, c := range cases {
		s, err := DNA.Decode(c.c)
		if err != nil {
			test.Errorf("Decode(%c) failed: %v", c.c, err)
		}
		if s != c.s {
			test.Errorf("Decode(%c): expected %d, got %d", c.c, c.s, s)
		}
	}
}

func TestDnaDecodeInvalid(test *testing.T) {
	_, err := DNA.Decode('X')
	if err == nil {
		test.Error("expected an error decoding `X'")
	}
	if e, ok := err.(InvalidSymbolError); !ok || e.Char != 'X' {
		test.Errorf("expected InvalidSymbolError{'X'}, got %#v", err)
	}
}

func TestDnaRoundTrip(test *testing.T) {
	for _, s := range []Symbol{DnaA, DnaC, DnaT, DnaG, DnaN} {
		c, err := DNA.Encode(s)
		if err != nil {
			test.Fatalf("Encode(%d) failed: %v", s, err)
		}
		s2, err := DNA.Decode(c)
		if err != nil {
			test.Fatalf("Decode(%c) failed: %v", c, err)
		}
		if s2 != s {
			test.Errorf("round trip failed: %d -> %c -> %d", s, c, s2)
		}
	}
}

func TestDnaDefaultIsWildcard(test *testing.T) {
	if DNA.Default() != DnaN {
		test.Error("default DNA symbol should be the wildcard N")
	}
}
