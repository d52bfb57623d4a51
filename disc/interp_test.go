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
	"math"
	"testing"

	"github.com/cellmodel/battmesh/mesh/uniform"
)

func TestInterpLinear(t *testing.T) {
	m, err := uniform.New(0, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	// A linear profile is reproduced exactly by linear interpolation.
	xs := []float64{0, 0.25, 1}
	ys := []float64{1, 1.5, 3} // y = 1 + 2x
	got, err := Interp(m, xs, ys)
	if err != nil {
		t.Fatal(err)
	}
	for i, x := range m.Nodes() {
		want := 1 + 2*x
		if math.Abs(got[i]-want) > 1e-12 {
			t.Errorf("node %d (x=%g): %g != %g", i, x, got[i], want)
		}
	}
}

func TestInterpClamp(t *testing.T) {
	m, err := uniform.New(0, 1, 4)
	if err != nil {
		t.Fatal(err)
	}
	// Samples cover only the middle of the mesh; nodes outside take
	// the nearest endpoint value.
	got, err := Interp(m, []float64{0.25, 0.75}, []float64{2, 4})
	if err != nil {
		t.Fatal(err)
	}
	// Nodes are at 0.125, 0.375, 0.625, 0.875.
	want := []float64{2, 2.5, 3.5, 4}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("node %d: %g != %g", i, got[i], want[i])
		}
	}
}

func TestInterpErrors(t *testing.T) {
	m, err := uniform.New(0, 1, 4)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		xs   []float64
		ys   []float64
	}{
		{name: "length mismatch", xs: []float64{0, 1}, ys: []float64{1}},
		{name: "empty", xs: nil, ys: nil},
		{name: "not increasing", xs: []float64{0, 0.5, 0.5}, ys: []float64{1, 2, 3}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := Interp(m, test.xs, test.ys); err == nil {
				t.Error("expected error")
			}
		})
	}
}
