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

package params

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	v, err := Load("testdata/cell.toml")
	require.NoError(t, err)

	assert.InDelta(t, 88e-6, v.NegativeElectrode.Value(), 1e-12)
	assert.InDelta(t, 20e-6, v.Separator.Value(), 1e-12)
	assert.InDelta(t, 80e-6, v.PositiveElectrode.Value(), 1e-12)
	assert.InDelta(t, 188e-6, v.CellThickness().Value(), 1e-12)
}

func TestLoadStringValues(t *testing.T) {
	// Thicknesses given as quoted numbers still parse.
	v, err := Load("testdata/cell_strings.toml")
	require.NoError(t, err)
	assert.InDelta(t, 100e-6, v.NegativeElectrode.Value(), 1e-12)
	assert.InDelta(t, 25e-6, v.Separator.Value(), 1e-12)
	assert.InDelta(t, 100e-6, v.PositiveElectrode.Value(), 1e-12)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{name: "missing file", file: "testdata/nonexistent.toml"},
		{name: "missing attribute", file: "testdata/cell_missing.toml"},
		{name: "negative thickness", file: "testdata/cell_negative.toml"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(test.file)
			assert.Error(t, err)
		})
	}
}

func TestNew(t *testing.T) {
	_, err := New(100e-6, 25e-6, 100e-6)
	assert.NoError(t, err)

	for _, bad := range [][3]float64{
		{0, 25e-6, 100e-6},
		{100e-6, -25e-6, 100e-6},
		{100e-6, 25e-6, math.NaN()},
		{math.Inf(1), 25e-6, 100e-6},
	} {
		_, err := New(bad[0], bad[1], bad[2])
		assert.Errorf(t, err, "thicknesses %v", bad)
	}
}

func TestDefault(t *testing.T) {
	v := Default()
	assert.Equal(t, 100e-6, v.NegativeElectrode.Value())
	assert.Equal(t, 25e-6, v.Separator.Value())
	assert.Equal(t, 100e-6, v.PositiveElectrode.Value())
}
