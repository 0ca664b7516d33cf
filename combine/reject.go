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


// Package combine implements per-pixel stack combination with outlier
// rejection. Given one pixel's samples across N aligned frames, a rejection
// strategy filters outliers and a central tendency estimator reduces the
// survivors to a robust center, a dispersion measure, and the count of
// samples used. Strategies are generic over the estimator for call sites
// that fix it at compile time; the RejectMethod interface serves call sites
// that select the strategy per job, e.g. via Policy.
//
// Strategies never modify the caller's slices, hold no per-pixel state, and
// are safe to invoke concurrently on disjoint pixel columns as long as the
// wrapped estimator is stateless. Degenerate outcomes are signaled through
// values: an empty post-rejection set yields numUsed 0 and whatever the
// estimator returns for an empty range.
package combine

import (
	"math"
	"github.com/mlnoga/pixelstack/estimate"
	"github.com/mlnoga/pixelstack/internal/qsort"
)

// RejectMethod combines one pixel's samples across frames into a center,
// a dispersion measure and the number of samples used. All rejection
// strategies implement it.
type RejectMethod interface {
	Combine(values, weights []float64) (center, dispersion float64, numUsed int)
}


// RejectNone combines without rejection.
type RejectNone[E estimate.Estimator] struct {
	Central E
}

func NewRejectNone[E estimate.Estimator](central E) RejectNone[E] {
	return RejectNone[E]{Central: central}
}

// Combine forwards the full sample set to the estimator and passes its
// native dispersion through unchanged.
func (r RejectNone[E]) Combine(values, weights []float64) (center, dispersion float64, numUsed int) {
	center, dispersion=r.Central.Estimate(values, weights)
	return center, dispersion, len(values)
}


// RejectMinMax discards a fixed count of the lowest and highest values
// before estimation.
type RejectMinMax[E estimate.Estimator] struct {
	Central E
	NMin    int
	NMax    int
}

func NewRejectMinMax[E estimate.Estimator](central E, nmin, nmax int) RejectMinMax[E] {
	return RejectMinMax[E]{Central: central, NMin: nmin, NMax: nmax}
}

// Combine separates the NMin smallest and NMax largest values by partial
// selection, without fully sorting the remainder, and estimates on the
// middle. Weights travel with their values. If NMin+NMax meets or exceeds
// the sample count, the set is exhausted and the estimator runs on an empty
// range. Which of several equal-valued boundary samples is discarded is
// unspecified; the resulting counts are deterministic. The estimator's
// native dispersion passes through unchanged.
func (r RejectMinMax[E]) Combine(values, weights []float64) (center, dispersion float64, numUsed int) {
	s:=zipSamples(values, weights)
	mid:=qsort.SelectMinMaxSamples(s, r.NMin, r.NMax)

	vals:=make([]float64, len(mid))
	var ws []float64
	if weights!=nil { ws=make([]float64, len(mid)) }
	v, w:=unzipSamplesInto(mid, vals, ws)

	center, dispersion=r.Central.Estimate(v, w)
	return center, dispersion, len(mid)
}


// RejectSigmaClip iteratively discards values outside the band
// (center - SigmaLow*sigma, center + SigmaHigh*sigma), recomputing center
// and sigma on the survivors each pass, until no further values fall
// outside.
type RejectSigmaClip[E estimate.Estimator] struct {
	Central   E
	SigmaLow  float64
	SigmaHigh float64
}

func NewRejectSigmaClip[E estimate.Estimator](central E, sigmaLow, sigmaHigh float64) RejectSigmaClip[E] {
	return RejectSigmaClip[E]{Central: central, SigmaLow: sigmaLow, SigmaHigh: sigmaHigh}
}

// Combine returns the center and standard deviation from the last completed
// estimate, and the surviving count. Note the dispersion is a standard
// deviation here, not the estimator's native unit: sigma is what the clip
// loop computes, and it is emitted as-is. The band is strictly exclusive at
// both ends, so a value exactly on a bound is rejected; in particular a
// surviving set with zero sigma rejects itself entirely on the next pass
// and the result degenerates to the estimator's empty-range output with
// numUsed 0. Termination is guaranteed: the survivor count is strictly
// decreasing until the loop exits, and rejected samples are never
// re-admitted.
func (r RejectSigmaClip[E]) Combine(values, weights []float64) (center, dispersion float64, numUsed int) {
	s:=zipSamples(values, weights)
	vals:=make([]float64, len(s))
	var ws []float64
	if weights!=nil { ws=make([]float64, len(s)) }

	for {
		v, w:=unzipSamplesInto(s, vals, ws)
		mean, variance:=r.Central.Estimate(v, w)
		sigma:=math.Sqrt(variance)

		// remove out-of-bounds values
		lowBound :=mean - r.SigmaLow *sigma
		highBound:=mean + r.SigmaHigh*sigma
		prev:=len(s)
		for j:=0; j<len(s); {
			if x:=s[j].Value; x>lowBound && x<highBound {
				j++
			} else {
				s[j]=s[len(s)-1]
				s=s[:len(s)-1]
			}
		}

		// terminate once a pass no longer rejects anything
		if len(s)==prev {
			return mean, sigma, len(s)
		}
	}
}


// RejectWinsorSigmaClip iteratively discards values like RejectSigmaClip,
// but derives sigma from a winsorized copy of the survivors, which tightens
// the estimate against the very outliers being rejected.
type RejectWinsorSigmaClip[E estimate.Estimator] struct {
	Central   E
	SigmaLow  float64
	SigmaHigh float64
}

func NewRejectWinsorSigmaClip[E estimate.Estimator](central E, sigmaLow, sigmaHigh float64) RejectWinsorSigmaClip[E] {
	return RejectWinsorSigmaClip[E]{Central: central, SigmaLow: sigmaLow, SigmaHigh: sigmaHigh}
}

// Combine returns the estimator's center, the winsorized standard deviation
// and the surviving count. Each pass winsorizes the survivors at
// center +- 1.5*sigma, re-estimates sigma with a 1.134 correction factor,
// and repeats until sigma moves by no more than 0.05%; the clip band
// center +- SigmaLow/SigmaHigh * sigma is inclusive at the bounds, so a
// zero-dispersion survivor set is a fixed point rather than rejecting
// itself.
func (r RejectWinsorSigmaClip[E]) Combine(values, weights []float64) (center, dispersion float64, numUsed int) {
	s:=zipSamples(values, weights)
	vals:=make([]float64, len(s))
	winsorized:=make([]float64, len(s))
	var ws []float64
	if weights!=nil { ws=make([]float64, len(s)) }

	for {
		v, w:=unzipSamplesInto(s, vals, ws)
		c, variance:=r.Central.Estimate(v, w)
		sigma:=math.Sqrt(variance)

		// calculate winsorized standard deviation (removes outliers/tighter)
		wins:=winsorized[:len(s)]
		copy(wins, v)
		for {
			// replace outliers with low/high bound
			lowBound :=c - 1.5*sigma
			highBound:=c + 1.5*sigma
			changed:=0
			for i,x:=range wins {
				if x<lowBound {
					wins[i]=lowBound
					changed++
				} else if x>highBound {
					wins[i]=highBound
					changed++
				}
			}
			oldSigma:=sigma
			_, winsVariance:=r.Central.Estimate(wins, w)
			sigma=1.134*math.Sqrt(winsVariance)

			if changed==0 || math.Abs(sigma-oldSigma)<=0.0005*oldSigma {
				break
			}
		}

		// remove out-of-bounds values
		lowBound :=c - r.SigmaLow *sigma
		highBound:=c + r.SigmaHigh*sigma
		prev:=len(s)
		for j:=0; j<len(s); {
			if x:=s[j].Value; x<lowBound || x>highBound {
				s[j]=s[len(s)-1]
				s=s[:len(s)-1]
			} else {
				j++
			}
		}

		// terminate once a pass no longer rejects anything
		if len(s)==prev {
			return c, sigma, len(s)
		}
	}
}


// RejectMADClip discards values in a single pass whose distance from the
// median exceeds SigmaLow/SigmaHigh times the Gaussian-normalized median
// absolute deviation, then estimates on the remainder.
type RejectMADClip[E estimate.Estimator] struct {
	Central   E
	SigmaLow  float64
	SigmaHigh float64
}

func NewRejectMADClip[E estimate.Estimator](central E, sigmaLow, sigmaHigh float64) RejectMADClip[E] {
	return RejectMADClip[E]{Central: central, SigmaLow: sigmaLow, SigmaHigh: sigmaHigh}
}

// Combine clips once around the median with sigma = 1.4826*MAD, inclusive
// at the band bounds, then passes the estimator's native center and
// dispersion through for the survivors.
func (r RejectMADClip[E]) Combine(values, weights []float64) (center, dispersion float64, numUsed int) {
	if len(values)==0 {
		center, dispersion=r.Central.Estimate(values, weights)
		return center, dispersion, 0
	}

	s:=zipSamples(values, weights)
	vals:=make([]float64, len(s))
	var ws []float64
	if weights!=nil { ws=make([]float64, len(s)) }

	v, _:=unzipSamplesInto(s, vals, ws)
	median:=qsort.QSelectMedianFloat64(v)

	// calculate median absolute distance (MAD)
	for i,smp:=range s {
		ad:=smp.Value-median
		if ad<0 { ad=-ad }
		vals[i]=ad
	}
	mad:=qsort.QSelectMedianFloat64(vals)
	sigma:=1.4826*mad  // normalize to Gaussian std dev equivalent value

	// remove out-of-bounds values
	lowBound :=median - r.SigmaLow *sigma
	highBound:=median + r.SigmaHigh*sigma
	for j:=0; j<len(s); {
		if x:=s[j].Value; x<lowBound || x>highBound {
			s[j]=s[len(s)-1]
			s=s[:len(s)-1]
		} else {
			j++
		}
	}

	v, w:=unzipSamplesInto(s, vals, ws)
	center, dispersion=r.Central.Estimate(v, w)
	return center, dispersion, len(s)
}
