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

// Package params provides the geometric parameters that define the
// subdomains of a battery cell.
package params

import (
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
	"github.com/ctessum/unit"
	"github.com/spf13/cast"
)

// length wraps a value in a length-dimensioned unit.
func length(v float64) *unit.Unit {
	return unit.New(v, unit.Dimensions{unit.LengthDim: 1})
}

// Values holds the parameters defining the battery cell subdomain
// sizes. All lengths are in meters.
type Values struct {
	// NegativeElectrode is the negative electrode thickness.
	NegativeElectrode *unit.Unit

	// Separator is the separator thickness.
	Separator *unit.Unit

	// PositiveElectrode is the positive electrode thickness.
	PositiveElectrode *unit.Unit
}

// New returns parameter values for the given subdomain thicknesses
// in meters.
func New(lNeg, lSep, lPos float64) (*Values, error) {
	for _, l := range []struct {
		name string
		v    float64
	}{
		{"negative electrode", lNeg},
		{"separator", lSep},
		{"positive electrode", lPos},
	} {
		if math.IsNaN(l.v) || math.IsInf(l.v, 0) || l.v <= 0 {
			return nil, fmt.Errorf("params: %s thickness must be positive and finite; got %g", l.name, l.v)
		}
	}
	return &Values{
		NegativeElectrode: length(lNeg),
		Separator:         length(lSep),
		PositiveElectrode: length(lPos),
	}, nil
}

// Default returns parameter values for a typical lithium-ion cell:
// 100 μm electrodes separated by a 25 μm separator.
func Default() *Values {
	v, err := New(100e-6, 25e-6, 100e-6)
	if err != nil {
		panic(err)
	}
	return v
}

// CellThickness returns the total thickness of the cell, the sum of
// the three subdomain thicknesses.
func (v *Values) CellThickness() *unit.Unit {
	return length(v.NegativeElectrode.Value() +
		v.Separator.Value() +
		v.PositiveElectrode.Value())
}

// paramFile is the on-disk TOML layout. Thickness values may be
// numbers or numeric strings.
type paramFile struct {
	Geometry struct {
		NegativeElectrodeThickness interface{} `toml:"negative_electrode_thickness"`
		SeparatorThickness         interface{} `toml:"separator_thickness"`
		PositiveElectrodeThickness interface{} `toml:"positive_electrode_thickness"`
	} `toml:"geometry"`
}

// Load reads parameter values from the TOML file at the given path.
func Load(filename string) (*Values, error) {
	var f paramFile
	if _, err := toml.DecodeFile(filename, &f); err != nil {
		return nil, fmt.Errorf("params: decoding %s: %w", filename, err)
	}
	lNeg, err := toFloat("negative_electrode_thickness", f.Geometry.NegativeElectrodeThickness)
	if err != nil {
		return nil, err
	}
	lSep, err := toFloat("separator_thickness", f.Geometry.SeparatorThickness)
	if err != nil {
		return nil, err
	}
	lPos, err := toFloat("positive_electrode_thickness", f.Geometry.PositiveElectrodeThickness)
	if err != nil {
		return nil, err
	}
	return New(lNeg, lSep, lPos)
}

func toFloat(name string, v interface{}) (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("params: missing geometry attribute %s", name)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("params: parsing geometry attribute %s: %w", name, err)
	}
	return f, nil
}
