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
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

/* -------------------------------------------------------------------------- */

// PlotScores renders a diagnostic line plot of a score profile (score vs.
// logical offset) and saves it to filename, format inferred from the
// extension (e.g. "profile.pdf", "profile.svg"). This is a plain library
// function, not a CLI tool -- a caller decides if and when to call it.
func PlotScores(scores *StripedScores, filename string) error {
	vec := scores.ToVec()
	xy := make(plotter.XYs, len(vec))
	for i, v := range vec {
		xy[i].X = float64(i)
		xy[i].Y = float64(v)
	}

	p := plot.New()
	p.Title.Text = "PSSM score profile"
	p.X.Label.Text = "offset"
	p.Y.Label.Text = "log-odds score"

	if err := plotutil.AddLines(p, xy); err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, filename)
}
