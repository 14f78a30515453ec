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

// Pipeline is the scoring engine entry point: a ScoreBackend plus the
// convenience of configuring wrap and allocating an output buffer on the
// caller's behalf. Pipeline holds no state shared between calls and is
// safe to use from multiple goroutines provided each call operates on its
// own StripedSequence/StripedScores (spec.md §5).
type Pipeline struct {
	Backend ScoreBackend
}

// NewPipeline selects a backend via SelectBackend.
func NewPipeline() *Pipeline {
	return &Pipeline{Backend: SelectBackend()}
}

// NewScalarPipeline pins the pipeline to the scalar oracle backend,
// regardless of detected CPU capability.
func NewScalarPipeline() *Pipeline {
	return &Pipeline{Backend: scalarBackend{}}
}

// NewStripedPipeline pins the pipeline to the striped lane-parallel
// backend, regardless of detected CPU capability.
func NewStripedPipeline() *Pipeline {
	return &Pipeline{Backend: stripedBackend{}}
}

// Score configures seq for sm's length, allocates a fresh StripedScores,
// and scores into it.
func (p *Pipeline) Score(seq *StripedSequence, sm *ScoringMatrix) *StripedScores {
	seq.Configure(sm.Len())
	out := NewStripedScores(seq.RowsMain(), seq.Data.Cols())
	p.Backend.ScoreInto(seq, sm, out)
	return out
}

// ScoreInto scores seq against sm into the caller-provided out buffer,
// reusing its allocation. seq must already be configured for sm's length
// (e.g. via a prior Score call or an explicit seq.Configure), and out must
// be shaped to match seq's lane count -- see ScoreBackend.
func (p *Pipeline) ScoreInto(seq *StripedSequence, sm *ScoringMatrix, out *StripedScores) {
	p.Backend.ScoreInto(seq, sm, out)
}
