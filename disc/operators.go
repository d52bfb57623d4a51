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

	"gonum.org/v1/gonum/mat"

	"github.com/cellmodel/battmesh/mesh/uniform"
)

// Gradient returns the finite-volume gradient operator for m: the
// matrix that maps values at the mesh nodes to gradients at the
// interior faces. The result has one row per interior face and one
// column per node.
func Gradient(m *uniform.Mesh1D) (*mat.Dense, error) {
	if m.Faces() == 0 {
		return nil, fmt.Errorf("disc: mesh with %d cells has no interior faces", m.Len())
	}
	nodes := m.Nodes()
	g := mat.NewDense(m.Faces(), m.Len(), nil)
	for i := 0; i < m.Faces(); i++ {
		d := nodes[i+1] - nodes[i]
		g.Set(i, i, -1/d)
		g.Set(i, i+1, 1/d)
	}
	return g, nil
}

// Divergence returns the finite-volume divergence operator for m: the
// matrix that maps fluxes at the cell edges to divergences at the cell
// centres. The result has one row per cell and one column per edge.
func Divergence(m *uniform.Mesh1D) *mat.Dense {
	n := m.Len()
	d := mat.NewDense(n, n+1, nil)
	for i := 0; i < n; i++ {
		w := m.CellWidth(i)
		d.Set(i, i, -1/w)
		d.Set(i, i+1, 1/w)
	}
	return d
}
