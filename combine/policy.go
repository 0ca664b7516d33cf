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
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/mlnoga/pixelstack/estimate"
)

// Rejection method identifiers for Policy.Method.
const (
	MethodNone            = "none"
	MethodMinMax          = "minmax"
	MethodSigmaClip       = "sigmaclip"
	MethodWinsorSigmaClip = "winsorsigmaclip"
	MethodMADClip         = "madclip"
)

// Estimator identifiers for Policy.Estimator.
const (
	EstimatorMean         = "mean"
	EstimatorWeightedMean = "weightedmean"
	EstimatorMedian       = "median"
)

// Policy parameterizes the rejection strategy and estimator for one
// combination job. It is constructed once per job and immutable afterwards;
// the strategy it builds holds no per-pixel state. Fields irrelevant to the
// chosen method are ignored. The strategies themselves never validate these
// parameters; running a configuration layer's Validate is the caller's
// responsibility, and malformed counts simply exhaust the sample set.
type Policy struct {
	Method    string  `json:"method"    validate:"oneof=none minmax sigmaclip winsorsigmaclip madclip"`
	NMin      int     `json:"nmin"      validate:"gte=0"`
	NMax      int     `json:"nmax"      validate:"gte=0"`
	SigmaLow  float64 `json:"sigmaLow"  validate:"gte=0"`
	SigmaHigh float64 `json:"sigmaHigh" validate:"gte=0"`
	Estimator string  `json:"estimator" validate:"oneof=mean weightedmean median"`
}

func NewPolicyDefault() *Policy {
	return &Policy{
		Method   : MethodSigmaClip,
		NMin     : 0,
		NMax     : 0,
		SigmaLow : 2.75,
		SigmaHigh: 2.75,
		Estimator: EstimatorMean,
	}
}

// Unmarshal the type from JSON with default values for missing entries
func (p *Policy) UnmarshalJSON(data []byte) error {
	type defaults Policy
	def:=defaults( *NewPolicyDefault() )
	err:=json.Unmarshal(data, &def)
	if err!=nil { return err }
	*p=Policy(def)
	return nil
}

var policyValidate = validator.New()

// Validate checks the policy's identifiers and parameter ranges.
func (p *Policy) Validate() error {
	return policyValidate.Struct(p)
}

// RejectMethod builds the configured rejection strategy, wrapping the named
// estimator behind a CentralTendency adaptor. Unknown identifiers are
// errors; parameter values are not validated here.
func (p *Policy) RejectMethod() (RejectMethod, error) {
	var est estimate.Estimator
	switch p.Estimator {
	case EstimatorMean:
		est=estimate.Mean{}
	case EstimatorWeightedMean:
		est=estimate.WeightedMean{}
	case EstimatorMedian:
		est=estimate.Median{}
	default:
		return nil, fmt.Errorf("unknown estimator %q", p.Estimator)
	}
	central:=NewCentralTendency(est)

	switch p.Method {
	case MethodNone:
		return NewRejectNone(central), nil
	case MethodMinMax:
		return NewRejectMinMax(central, p.NMin, p.NMax), nil
	case MethodSigmaClip:
		return NewRejectSigmaClip(central, p.SigmaLow, p.SigmaHigh), nil
	case MethodWinsorSigmaClip:
		return NewRejectWinsorSigmaClip(central, p.SigmaLow, p.SigmaHigh), nil
	case MethodMADClip:
		return NewRejectMADClip(central, p.SigmaLow, p.SigmaHigh), nil
	default:
		return nil, fmt.Errorf("unknown rejection method %q", p.Method)
	}
}
