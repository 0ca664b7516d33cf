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
	"github.com/mlnoga/pixelstack/estimate"
)

// CentralTendency type-erases a concrete estimator so a rejection strategy
// can be composed with an estimator chosen at runtime. It satisfies
// estimate.Estimator itself, so it slots into the strategies' type
// parameter. Plain struct copies share the wrapped estimator; Clone
// deep-clones it for single-owner semantics. The zero value holds no
// estimator and must not be used.
type CentralTendency struct {
	est estimate.Estimator
}

func NewCentralTendency(est estimate.Estimator) CentralTendency {
	return CentralTendency{est: est}
}

func (c CentralTendency) Estimate(values, weights []float64) (center, dispersion float64) {
	return c.est.Estimate(values, weights)
}

func (c CentralTendency) Clone() estimate.Estimator {
	return CentralTendency{est: c.est.Clone()}
}
