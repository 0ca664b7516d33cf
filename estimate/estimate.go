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


// Package estimate provides central tendency estimators for pixel stacking.
// An estimator reduces one pixel's samples across frames to a representative
// center and a dispersion measure. Rejection strategies in package combine
// are generic over the Estimator contract.
package estimate

import (
	"math"
	"gonum.org/v1/gonum/stat"
	"github.com/mlnoga/pixelstack/internal/qsort"
)

// Estimator reduces a sample range to a center and a dispersion measure.
// A nil weight slice means unweighted input; otherwise weights must parallel
// values. Implementations must not modify their inputs, must be well-defined
// for empty and single-sample ranges, must be deterministic for identical
// input order and content, and must be stateless so one instance can serve
// concurrent pixel columns. Clone returns an independent copy for callers
// that need single-owner semantics.
type Estimator interface {
	Estimate(values, weights []float64) (center, dispersion float64)
	Clone() Estimator
}

// Mean estimates the arithmetic mean and the unbiased sample variance.
// With weights given, both moments are weighted. Empty input yields
// (NaN, NaN); a single sample yields (value, 0).
type Mean struct{}

func (m Mean) Estimate(values, weights []float64) (center, dispersion float64) {
	switch len(values) {
	case 0:
		return math.NaN(), math.NaN()
	case 1:
		return values[0], 0
	}
	return stat.MeanVariance(values, weights)
}

func (m Mean) Clone() Estimator { return m }

// WeightedMean estimates the weighted arithmetic mean and the unbiased
// weighted sample variance. A nil weight slice degrades to the unweighted
// mean; the type exists as a distinct configuration identifier. Empty input
// yields (NaN, NaN); a single sample yields (value, 0).
type WeightedMean struct{}

func (m WeightedMean) Estimate(values, weights []float64) (center, dispersion float64) {
	switch len(values) {
	case 0:
		return math.NaN(), math.NaN()
	case 1:
		return values[0], 0
	}
	return stat.MeanVariance(values, weights)
}

func (m WeightedMean) Clone() Estimator { return m }

// Median estimates the median by quickselect, averaging the two middle
// elements for even lengths, and the unbiased variance of the values about
// the median as dispersion. Weights are ignored. Empty input yields
// (NaN, NaN); a single sample yields (value, 0).
type Median struct{}

func (m Median) Estimate(values, weights []float64) (center, dispersion float64) {
	switch len(values) {
	case 0:
		return math.NaN(), math.NaN()
	case 1:
		return values[0], 0
	}
	tmp:=make([]float64, len(values))
	copy(tmp, values)
	median:=qsort.QSelectMedianFloat64(tmp)

	ss:=0.0
	for _,v:=range values {
		diff:=v-median
		ss+=diff*diff
	}
	return median, ss/float64(len(values)-1)
}

func (m Median) Clone() Estimator { return m }
