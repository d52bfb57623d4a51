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

// Package disc discretises a battery cell in space and time.
package disc

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cellmodel/battmesh/mesh/uniform"
	"github.com/cellmodel/battmesh/params"
)

// Config holds the scalar settings for a discretisation.
type Config struct {
	// TargetNPoints is the target number of points in each spatial
	// subdomain. The mesh is created in such a way that the cell sizes
	// are as similar as possible between subdomains.
	TargetNPoints int

	// TimeSteps is the number of time steps to take.
	TimeSteps int

	// EndTime is the finishing time for the simulation, in seconds.
	EndTime float64
}

// DefaultConfig returns the default discretisation settings.
func DefaultConfig() Config {
	return Config{TargetNPoints: 10, TimeSteps: 100, EndTime: 1}
}

// Mesh discretises a battery cell in space and time. It holds a
// uniform time grid and one submesh for each named spatial subdomain
// of the cell. A Mesh is immutable once constructed.
type Mesh struct {
	time              []float64
	negativeElectrode *uniform.Mesh1D
	separator         *uniform.Mesh1D
	positiveElectrode *uniform.Mesh1D
	wholeCell         *uniform.Mesh1D
}

// New creates a discretisation of the cell described by p. The time
// grid has cfg.TimeSteps values evenly spaced over [0, cfg.EndTime].
// Subdomain cell counts are derived from cfg.TargetNPoints: the
// smallest subdomain gets the target number of cells and the others
// get as many cells of the same width as fit their thickness.
func New(p *params.Values, cfg Config) (*Mesh, error) {
	if p == nil {
		return nil, fmt.Errorf("disc: nil parameter values")
	}
	if cfg.TargetNPoints < 1 {
		return nil, fmt.Errorf("disc: target point count must be at least 1; got %d", cfg.TargetNPoints)
	}
	if cfg.TimeSteps < 1 {
		return nil, fmt.Errorf("disc: time step count must be at least 1; got %d", cfg.TimeSteps)
	}
	if math.IsNaN(cfg.EndTime) || cfg.EndTime < 0 {
		return nil, fmt.Errorf("disc: invalid end time %g", cfg.EndTime)
	}

	lNeg := p.NegativeElectrode.Value()
	lSep := p.Separator.Value()
	lPos := p.PositiveElectrode.Value()

	// The smallest subdomain sets the cell width for all three.
	h := math.Min(lNeg, math.Min(lSep, lPos)) / float64(cfg.TargetNPoints)

	neg, err := uniform.New(0, lNeg, cells(lNeg, h))
	if err != nil {
		return nil, fmt.Errorf("disc: negative electrode: %w", err)
	}
	sep, err := uniform.New(lNeg, lNeg+lSep, cells(lSep, h))
	if err != nil {
		return nil, fmt.Errorf("disc: separator: %w", err)
	}
	pos, err := uniform.New(lNeg+lSep, lNeg+lSep+lPos, cells(lPos, h))
	if err != nil {
		return nil, fmt.Errorf("disc: positive electrode: %w", err)
	}
	whole, err := uniform.Join(neg, sep, pos)
	if err != nil {
		return nil, fmt.Errorf("disc: whole cell: %w", err)
	}

	return &Mesh{
		time:              linspace(0, cfg.EndTime, cfg.TimeSteps),
		negativeElectrode: neg,
		separator:         sep,
		positiveElectrode: pos,
		wholeCell:         whole,
	}, nil
}

// cells returns the number of cells of width approximately h needed to
// cover a subdomain of thickness l.
func cells(l, h float64) int {
	n := int(math.Round(l / h))
	if n < 1 {
		n = 1
	}
	return n
}

// linspace returns n evenly spaced values from lo to hi inclusive.
// A single-point span contains only lo.
func linspace(lo, hi float64, n int) []float64 {
	if n == 1 {
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// Time returns the simulation times: TimeSteps values evenly spaced
// from 0 to EndTime inclusive. The returned slice is backing storage
// and must not be modified.
func (m *Mesh) Time() []float64 { return m.time }

// NegativeElectrode returns the submesh covering the negative
// electrode.
func (m *Mesh) NegativeElectrode() *uniform.Mesh1D { return m.negativeElectrode }

// Separator returns the submesh covering the separator.
func (m *Mesh) Separator() *uniform.Mesh1D { return m.separator }

// PositiveElectrode returns the submesh covering the positive
// electrode.
func (m *Mesh) PositiveElectrode() *uniform.Mesh1D { return m.positiveElectrode }

// WholeCell returns the mesh covering the whole cell, the union of the
// three subdomains with shared interface edges.
func (m *Mesh) WholeCell() *uniform.Mesh1D { return m.wholeCell }
