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

package plot

import (
	"fmt"

	"github.com/cellmodel/battmesh/mesh/uniform"
)

// XYs implements the gonum.org/v1/plot/plotter.XYer interface.
type XYs []XY

// XY is an x and y value.
type XY struct{ X, Y float64 }

// Len returns the number of X,Y pairs.
func (xys XYs) Len() int {
	return len(xys)
}

// XY return the x and y values at index i, where i < Len()
func (xys XYs) XY(i int) (float64, float64) {
	return xys[i].X, xys[i].Y
}

// Profile pairs the node positions of m with the corresponding values.
func Profile(m *uniform.Mesh1D, values []float64) (XYs, error) {
	nodes := m.Nodes()
	if len(values) != len(nodes) {
		return nil, fmt.Errorf("plot: mesh has %d nodes but profile has %d values", len(nodes), len(values))
	}
	o := make(XYs, len(nodes))
	for i, x := range nodes {
		o[i].X = x
		o[i].Y = values[i]
	}
	return o, nil
}

// CellWidths pairs the node positions of m with the cell widths,
// which is useful for inspecting resolution changes between
// subdomains.
func CellWidths(m *uniform.Mesh1D) XYs {
	o := make(XYs, m.Len())
	for i, x := range m.Nodes() {
		o[i].X = x
		o[i].Y = m.CellWidth(i)
	}
	return o
}
