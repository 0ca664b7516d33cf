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
	"encoding/json"
	"testing"
	"github.com/stretchr/testify/require"
)


func TestPolicyUnmarshalDefaults(t *testing.T) {
	var p Policy
	err:=json.Unmarshal([]byte(`{"method":"minmax","nmin":1,"nmax":2}`), &p)
	require.NoError(t, err)

	require.Equal(t, MethodMinMax, p.Method)
	require.Equal(t, 1, p.NMin)
	require.Equal(t, 2, p.NMax)
	require.Equal(t, 2.75, p.SigmaLow)
	require.Equal(t, 2.75, p.SigmaHigh)
	require.Equal(t, EstimatorMean, p.Estimator)
}

func TestPolicyValidate(t *testing.T) {
	require.NoError(t, NewPolicyDefault().Validate())

	p:=NewPolicyDefault()
	p.Method="bogus"
	require.Error(t, p.Validate())

	p=NewPolicyDefault()
	p.NMin=-1
	require.Error(t, p.Validate())

	p=NewPolicyDefault()
	p.SigmaLow=-0.5
	require.Error(t, p.Validate())

	p=NewPolicyDefault()
	p.Estimator="bogus"
	require.Error(t, p.Validate())
}

func TestPolicyRejectMethodDispatch(t *testing.T) {
	for _, tc:=range []struct {
		method string
		check  func(m RejectMethod) bool
	}{
		{MethodNone, func(m RejectMethod) bool { _, ok:=m.(RejectNone[CentralTendency]); return ok }},
		{MethodMinMax, func(m RejectMethod) bool { _, ok:=m.(RejectMinMax[CentralTendency]); return ok }},
		{MethodSigmaClip, func(m RejectMethod) bool { _, ok:=m.(RejectSigmaClip[CentralTendency]); return ok }},
		{MethodWinsorSigmaClip, func(m RejectMethod) bool { _, ok:=m.(RejectWinsorSigmaClip[CentralTendency]); return ok }},
		{MethodMADClip, func(m RejectMethod) bool { _, ok:=m.(RejectMADClip[CentralTendency]); return ok }},
	} {
		p:=NewPolicyDefault()
		p.Method=tc.method
		m, err:=p.RejectMethod()
		require.NoError(t, err, tc.method)
		require.True(t, tc.check(m), "method %s built %T", tc.method, m)
	}
}

func TestPolicyRejectMethodUnknown(t *testing.T) {
	p:=NewPolicyDefault()
	p.Method="bogus"
	_, err:=p.RejectMethod()
	require.Error(t, err)

	p=NewPolicyDefault()
	p.Estimator="bogus"
	_, err=p.RejectMethod()
	require.Error(t, err)
}

func TestPolicyEndToEnd(t *testing.T) {
	var p Policy
	err:=json.Unmarshal([]byte(`{"method":"minmax","nmin":1,"nmax":1,"estimator":"mean"}`), &p)
	require.NoError(t, err)
	require.NoError(t, p.Validate())

	m, err:=p.RejectMethod()
	require.NoError(t, err)

	c, d, n:=m.Combine([]float64{5, 3, 9, 1, 7}, nil)
	require.Equal(t, 3, n)
	require.InDelta(t, 5, c, 1e-12)
	require.InDelta(t, 4, d, 1e-12)
}
