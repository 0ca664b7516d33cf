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


package qsort

import (
	"testing"
	"github.com/valyala/fastrand"
)


func TestMedian(t *testing.T) {
	rng:=fastrand.RNG{}
	for i:=1; i<1000; i++ {
		// prepare array of given length with a random permutation of 1..n
		arr:=make([]float64, i)
		for j:=0; j<len(arr); j++ {
			arr[j]=float64(j+1)
		}
		for j:=0; j<len(arr); j++ {
			k:=rng.Uint32n(uint32(len(arr)))
			arr[j], arr[k] = arr[k], arr[j]
		}

		// calculate expected result
		var expect float64
		if (i&1)!=0 {
			expect=float64((i+1)/2)
		} else {
			expect=0.5*(float64(i/2) + float64(i/2+1))
		}

		// calculate actual result and compare
		res:=QSelectMedianFloat64(arr)
		if res!=expect {
			t.Logf("median(1..%d) got %f expect %f\n", i ,res, expect)
			t.Fail()
		}
	}
}


func TestSelectMinMaxSamples(t *testing.T) {
	rng:=fastrand.RNG{}
	for i:=1; i<200; i++ {
		// prepare samples with a random permutation of values 1..n,
		// weights tagged to their value to verify lockstep movement
		s:=make([]Sample, i)
		for j:=0; j<len(s); j++ {
			s[j]=Sample{Value: float64(j+1), Weight: float64(j+1)*10}
		}
		for j:=0; j<len(s); j++ {
			k:=rng.Uint32n(uint32(len(s)))
			s[j], s[k] = s[k], s[j]
		}

		nmin:=int(rng.Uint32n(uint32(i+1)))
		nmax:=int(rng.Uint32n(uint32(i+1)))
		mid:=SelectMinMaxSamples(s, nmin, nmax)

		if nmin+nmax>=i {
			if len(mid)!=0 {
				t.Errorf("n=%d nmin=%d nmax=%d: expected exhausted set, got %d samples", i, nmin, nmax, len(mid))
			}
			continue
		}
		if len(mid)!=i-nmin-nmax {
			t.Errorf("n=%d nmin=%d nmax=%d: got %d samples expect %d", i, nmin, nmax, len(mid), i-nmin-nmax)
			continue
		}

		// values 1..n are distinct, so the kept multiset must be exactly nmin+1 .. n-nmax
		seen:=make(map[float64]bool, len(mid))
		for _,smp:=range mid {
			if smp.Value<float64(nmin+1) || smp.Value>float64(i-nmax) {
				t.Errorf("n=%d nmin=%d nmax=%d: kept out-of-range value %f", i, nmin, nmax, smp.Value)
			}
			if smp.Weight!=smp.Value*10 {
				t.Errorf("n=%d nmin=%d nmax=%d: weight %f detached from value %f", i, nmin, nmax, smp.Weight, smp.Value)
			}
			if seen[smp.Value] {
				t.Errorf("n=%d nmin=%d nmax=%d: duplicate kept value %f", i, nmin, nmax, smp.Value)
			}
			seen[smp.Value]=true
		}
	}
}
