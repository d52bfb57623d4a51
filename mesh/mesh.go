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

/*Package mesh defines interfaces for spatial discretisation meshes.*/
package mesh

// Mesh describes a spatial discretisation mesh.
type Mesh interface {
	// Dims returns the number of spatial dimensions
	// in this mesh.
	Dims() int

	// Len is the total number of cells in this Mesh.
	Len() int

	// Cell returns the mesh cell at index i (where i < Len()).
	Cell(i int) Cell

	// Faces returns the number of interior faces in the mesh.
	Faces() int

	// Face returns the interior face at index i (where i < Faces()).
	// The face has one fewer dimensions than the mesh cells.
	Face(i int) Face

	// MarshalBinary serializes this mesh into a byte array.
	MarshalBinary() ([]byte, error)

	// UnmarshalBinary initializes this mesh from a byte array.
	UnmarshalBinary([]byte) error
}

// Cell specifies a cell in a mesh.
type Cell interface {
	// Centroid returns the centroid of this cell.
	Centroid() Point

	// Measure returns the characteristic measure of the cell:
	// its length, area or volume depending on the mesh dimension.
	Measure() float64
}

// Face represents the boundary between two neighboring cells.
type Face interface {
	// Centroid returns the centroid of this face.
	Centroid() Point

	// Lesser returns the cell that is on the lesser side
	// of this face (the side that has a lower value in whatever
	// coordinate system is being used).
	Lesser() Cell

	// Greater returns the cell that is
	// on the greater side of this face.
	Greater() Cell
}

// Point represents a point in vector space.
type Point interface {
	// Len returns the number of dimensions of this point.
	Len() int

	// D returns the point value in the specified dimension.
	D(int) float64
}
