// Copyright (C) 2020 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package combine

import (
	"github.com/mlnoga/pixelstack/internal/qsort"
)

// zipSamples gathers the caller's parallel value and weight slices into
// sample pairs, so partitioning moves a value and its weight together.
// A nil weight slice means unweighted; pair weights then default to 1.
func zipSamples(values, weights []float64) []qsort.Sample {
	s:=make([]qsort.Sample, len(values))
	for i,v:=range values {
		w:=1.0
		if weights!=nil { w=weights[i] }
		s[i]=qsort.Sample{Value: v, Weight: w}
	}
	return s
}

// unzipSamplesInto splits sample pairs back into the given parallel scratch
// slices for the estimator call. ws may be nil for unweighted input; the
// returned weight slice is then nil as well, preserving the caller's
// unweighted contract downstream.
func unzipSamplesInto(s []qsort.Sample, vals, ws []float64) (values, weights []float64) {
	vals=vals[:len(s)]
	for i,smp:=range s { vals[i]=smp.Value }
	if ws==nil {
		return vals, nil
	}
	ws=ws[:len(s)]
	for i,smp:=range s { ws[i]=smp.Weight }
	return vals, ws
}
