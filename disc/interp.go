/*
Copyright © 2026 the BattMesh authors.
This file is part of BattMesh.

BattMesh is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

BattMesh is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with BattMesh.  If not, see <http://www.gnu.org/licenses/>.
*/

package disc

import (
	"fmt"
	"sort"

	"github.com/cellmodel/battmesh/mesh/uniform"
)

// Interp linearly interpolates a profile sampled at positions xs with
// values ys onto the nodes of m. The positions must be strictly
// increasing. Nodes outside the sampled range take the nearest
// endpoint value.
func Interp(m *uniform.Mesh1D, xs, ys []float64) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("disc: profile has %d positions but %d values", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("disc: empty profile")
	}
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return nil, fmt.Errorf("disc: profile positions must be strictly increasing; position %d (%g) <= position %d (%g)",
				i, xs[i], i-1, xs[i-1])
		}
	}
	o := make([]float64, m.Len())
	for i, x := range m.Nodes() {
		o[i] = interp1(xs, ys, x)
	}
	return o, nil
}

// interp1 evaluates the piecewise-linear profile (xs, ys) at x,
// holding constant beyond the endpoints.
func interp1(xs, ys []float64, x float64) float64 {
	j := sort.SearchFloat64s(xs, x)
	switch {
	case j == 0:
		return ys[0]
	case j == len(xs):
		return ys[len(ys)-1]
	}
	frac := (x - xs[j-1]) / (xs[j] - xs[j-1])
	return ys[j-1]*(1-frac) + ys[j]*frac
}
