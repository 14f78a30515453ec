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

import "github.com/klauspost/cpuid/v2"

/* -------------------------------------------------------------------------- */

// SelectBackend chooses a ScoreBackend at process start based on detected
// CPU capability, the Go-idiomatic equivalent of the original source's
// #[cfg(target_feature = "avx2")] compile-time backend split (spec.md
// §4.4 "Backend selection"). Machines reporting AVX2 get the striped,
// lane-parallel backend the design targets; everything else falls back to
// the scalar oracle. Both backends are correct everywhere -- see
// DESIGN.md for why this module ships no true vector-intrinsics backend.
func SelectBackend() ScoreBackend {
	if cpuid.CPU.Supports(cpuid.AVX2) {
		return stripedBackend{}
	}
	return scalarBackend{}
}

// DetectedFeatures reports which of AVX2 (the feature SelectBackend
// consults) and SSE4.1 the CPU supports, for diagnostics (e.g. logging
// which backend a Pipeline picked).
func DetectedFeatures() []string {
	var features []string
	if cpuid.CPU.Supports(cpuid.AVX2) {
		features = append(features, "AVX2")
	}
	if cpuid.CPU.Supports(cpuid.SSE41) {
		features = append(features, "SSE4.1")
	}
	return features
}
