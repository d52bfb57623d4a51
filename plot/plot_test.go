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
	"testing"

	"github.com/cellmodel/battmesh/mesh/uniform"
)

func TestProfile(t *testing.T) {
	m, err := uniform.New(0, 1, 4)
	if err != nil {
		t.Fatal(err)
	}
	xys, err := Profile(m, []float64{1, 2, 3, 4})
	if err != nil {
		t.Fatal(err)
	}
	if xys.Len() != 4 {
		t.Fatalf("len: %d != 4", xys.Len())
	}
	x, y := xys.XY(1)
	if x != 0.375 || y != 2 {
		t.Errorf("point 1: (%g, %g) != (0.375, 2)", x, y)
	}

	if _, err := Profile(m, []float64{1, 2}); err == nil {
		t.Error("expected error for length mismatch")
	}
}

func TestCellWidths(t *testing.T) {
	m, err := uniform.NewFromEdges([]float64{0, 1, 3})
	if err != nil {
		t.Fatal(err)
	}
	xys := CellWidths(m)
	if xys.Len() != 2 {
		t.Fatalf("len: %d != 2", xys.Len())
	}
	if _, w := xys.XY(0); w != 1 {
		t.Errorf("cell 0 width: %g != 1", w)
	}
	if _, w := xys.XY(1); w != 2 {
		t.Errorf("cell 1 width: %g != 2", w)
	}
}
