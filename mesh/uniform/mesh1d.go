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

// Package uniform implements one-dimensional cell-centred meshes
// with uniformly sized cells.
package uniform

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cellmodel/battmesh/mesh"
)

// Make sure our mesh fulfills the interface.
var _ mesh.Mesh = &Mesh1D{}

// Mesh1D represents a one-dimensional cell-centred mesh defined by its
// cell edge positions. Node positions are the cell centres. Meshes
// created by New have equal-width cells; meshes created by Join may
// have cell widths that vary between the joined sections.
type Mesh1D struct {
	edges []float64
	nodes []float64
	faces []*face0D
}

// New returns a mesh of n equal-width cells covering the interval
// [x0, x1].
func New(x0, x1 float64, n int) (*Mesh1D, error) {
	if n < 1 {
		return nil, fmt.Errorf("battmesh: mesh must have at least 1 cell; got %d", n)
	}
	if !(x1 > x0) {
		return nil, fmt.Errorf("battmesh: invalid mesh interval [%g, %g]", x0, x1)
	}
	edges := make([]float64, n+1)
	w := (x1 - x0) / float64(n)
	for i := range edges {
		edges[i] = x0 + w*float64(i)
	}
	// Set the end point exactly to avoid accumulated rounding.
	edges[n] = x1
	m := &Mesh1D{edges: edges}
	m.build()
	return m, nil
}

// NewFromEdges returns a mesh whose cells are bounded by the given
// edge positions, which must be strictly increasing.
func NewFromEdges(edges []float64) (*Mesh1D, error) {
	if len(edges) < 2 {
		return nil, fmt.Errorf("battmesh: mesh needs at least 2 edges; got %d", len(edges))
	}
	for i := 1; i < len(edges); i++ {
		if !(edges[i] > edges[i-1]) {
			return nil, fmt.Errorf("battmesh: mesh edges must be strictly increasing; edge %d (%g) <= edge %d (%g)",
				i, edges[i], i-1, edges[i-1])
		}
	}
	m := &Mesh1D{edges: append([]float64(nil), edges...)}
	m.build()
	return m, nil
}

// Join concatenates the given meshes into a single mesh. Each mesh
// must begin exactly where the previous one ends, so that the joined
// meshes share their interface edges.
func Join(ms ...*Mesh1D) (*Mesh1D, error) {
	if len(ms) == 0 {
		return nil, fmt.Errorf("battmesh: no meshes to join")
	}
	edges := append([]float64(nil), ms[0].edges...)
	for _, m := range ms[1:] {
		if m.edges[0] != edges[len(edges)-1] {
			return nil, fmt.Errorf("battmesh: meshes are not contiguous: %g != %g",
				m.edges[0], edges[len(edges)-1])
		}
		edges = append(edges, m.edges[1:]...)
	}
	o := &Mesh1D{edges: edges}
	o.build()
	return o, nil
}

// build creates the mesh nodes and interior faces.
func (m *Mesh1D) build() {
	n := len(m.edges) - 1
	m.nodes = make([]float64, n)
	for i := 0; i < n; i++ {
		m.nodes[i] = 0.5 * (m.edges[i] + m.edges[i+1])
	}
	m.faces = make([]*face0D, 0, n-1)
	for i := 1; i < n; i++ {
		m.faces = append(m.faces, &face0D{
			x:       m.edges[i],
			lesser:  m.cell(i - 1),
			greater: m.cell(i),
		})
	}
}

func (m *Mesh1D) cell(i int) cell1D {
	return cell1D{left: m.edges[i], right: m.edges[i+1]}
}

// Dims returns that this mesh is 1D.
func (m *Mesh1D) Dims() int { return 1 }

// Len returns the number of cells in this mesh.
func (m *Mesh1D) Len() int { return len(m.nodes) }

// Cell returns the cell at the given index (where i < Len()).
func (m *Mesh1D) Cell(i int) mesh.Cell { return m.cell(i) }

// Faces returns the number of interior faces in the mesh.
func (m *Mesh1D) Faces() int { return len(m.faces) }

// Face returns the interior face at the given index, where i < Faces().
// The face has 0 dimensions.
func (m *Mesh1D) Face(i int) mesh.Face { return m.faces[i] }

// Nodes returns the cell centre positions. The returned slice is
// backing storage and must not be modified.
func (m *Mesh1D) Nodes() []float64 { return m.nodes }

// Edges returns the cell edge positions. The returned slice is
// backing storage and must not be modified.
func (m *Mesh1D) Edges() []float64 { return m.edges }

// Span returns the interval covered by the mesh.
func (m *Mesh1D) Span() (x0, x1 float64) {
	return m.edges[0], m.edges[len(m.edges)-1]
}

// CellWidth returns the width of cell i.
func (m *Mesh1D) CellWidth(i int) float64 {
	return m.edges[i+1] - m.edges[i]
}

type cell1D struct {
	left, right float64
}

// Centroid returns the centre of the cell.
func (c cell1D) Centroid() mesh.Point { return point1D(0.5 * (c.left + c.right)) }

// Measure returns the width of the cell in meters.
func (c cell1D) Measure() float64 { return c.right - c.left }

type face0D struct {
	x               float64
	lesser, greater cell1D
}

// Centroid returns the position of the face.
func (f *face0D) Centroid() mesh.Point { return point1D(f.x) }

// Lesser returns the cell that is on the lesser side
// of this face (the side that has a lower value in whatever
// coordinate system is being used).
func (f *face0D) Lesser() mesh.Cell { return f.lesser }

// Greater returns the cell that is
// on the greater side of this face.
func (f *face0D) Greater() mesh.Cell { return f.greater }

type point1D float64

// Len returns the number of dimensions of this point.
func (p point1D) Len() int { return 1 }

// D returns the point value in the specified dimension.
func (p point1D) D(i int) float64 {
	if i != 0 {
		panic("not possible")
	}
	return float64(p)
}

// MarshalBinary serializes this mesh into a byte array.
func (m *Mesh1D) MarshalBinary() ([]byte, error) {
	b := bytes.NewBuffer(nil)
	if err := binary.Write(b, binary.LittleEndian, m.edges); err != nil {
		return nil, fmt.Errorf("marshalling mesh: %w", err)
	}
	return b.Bytes(), nil
}

// UnmarshalBinary initializes this mesh from a byte array.
func (m *Mesh1D) UnmarshalBinary(b []byte) error {
	r := bytes.NewReader(b)
	var edges []float64
	for {
		var v float64
		if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("unmarshalling mesh: %w", err)
		}
		edges = append(edges, v)
	}
	o, err := NewFromEdges(edges)
	if err != nil {
		return fmt.Errorf("unmarshalling mesh: %w", err)
	}
	*m = *o
	return nil
}
