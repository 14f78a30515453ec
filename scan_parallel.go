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
	"fmt"
	"log"

	"github.com/pbenner/threadpool"
)

/* -------------------------------------------------------------------------- */

// ScanJob pairs one striped sequence with one scoring matrix for a batch
// scan. Sequence must already carry enough wrap for Matrix's length, or be
// left unconfigured -- ParallelScan configures each job's own sequence,
// which is safe only if no other goroutine is scanning that sequence
// concurrently with a shorter motif (spec.md §5: Configure is a
// single-owner operation).
type ScanJob struct {
	Sequence *StripedSequence
	Matrix   *ScoringMatrix
}

// ScanResult is one job's outcome. Err is set instead of Scores if the
// backend panicked on a violated precondition (e.g. a motif longer than
// its sequence), so one bad job in a batch does not take down the rest.
type ScanResult struct {
	Scores *StripedScores
	Err    error
}

// ParallelScan runs one independent Pipeline.Score per job, fanned out
// across a threadpool.ThreadPool with `threads` workers. Each job gets its
// own StripedScores output and each worker gets its own Pipeline, so no
// state is shared across jobs -- the engine itself remains single-threaded
// and synchronous per call (spec.md §5); this is caller-level parallelism
// across disjoint scans, grounded in the same threadpool.RangeJob idiom
// the teacher's own pwmScanSequences/countKmers tools use to fan a scan
// out across bins or sequences. logger may be nil.
func ParallelScan(jobs []ScanJob, threads int, logger *log.Logger) []ScanResult {
	pool := threadpool.New(threads, 100*threads)

	pipelines := make([]*Pipeline, pool.NumberOfThreads())
	for i := range pipelines {
		pipelines[i] = NewPipeline()
	}

	results := make([]ScanResult, len(jobs))

	pool.RangeJob(0, len(jobs), func(i int, pool threadpool.ThreadPool, erf func() error) (err error) {
		defer func() {
			if r := recover(); r != nil {
				results[i] = ScanResult{Err: fmt.Errorf("pssmscan: scan job %d panicked: %v", i, r)}
			}
		}()
		job := jobs[i]
		p := pipelines[pool.GetThreadId()]
		scores := p.Score(job.Sequence, job.Matrix)
		results[i] = ScanResult{Scores: scores}
		if logger != nil {
			logger.Printf("scan job %d: %d positions scored", i, scores.Length)
		}
		return nil
	})

	return results
}
