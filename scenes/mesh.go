// seehuhn.de/go/raster3d - a software 3D triangle rasterizer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scenes

import (
	"github.com/go-gl/mathgl/mgl32"

	"seehuhn.de/go/raster3d"
)

// Mesh is an indexed triangle list. Every three consecutive indices form
// one triangle.
type Mesh struct {
	Vertices []Vertex
	Indices  []int
}

// DrawMesh rasterizes every triangle of the mesh through the given
// programs. It stops at the first error.
func DrawMesh[VP raster3d.VertexProgram[Uniform, Vertex, Varying], FP raster3d.FragmentProgram[Uniform, Varying], T raster3d.TargetBuffer](
	vertexProgram VP,
	fragmentProgram FP,
	depth *raster3d.DepthBuffer,
	target T,
	uniform *Uniform,
	mesh *Mesh,
) error {
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		err := raster3d.Triangle[Uniform, Vertex, Varying](
			vertexProgram, fragmentProgram, depth, target, uniform,
			&mesh.Vertices[mesh.Indices[i]],
			&mesh.Vertices[mesh.Indices[i+1]],
			&mesh.Vertices[mesh.Indices[i+2]],
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// corner colors and texture coordinates shared by Cube and Quad
var (
	faceColors = [4]mgl32.Vec4{
		{1, 0, 0, 1},
		{0, 1, 0, 1},
		{0, 0, 1, 1},
		{1, 1, 1, 1},
	}
	faceUVs = [4]mgl32.Vec2{
		{0, 0},
		{1, 0},
		{1, 1},
		{0, 1},
	}
)

// Cube returns an axis-aligned cube with half-extent s centered at the
// origin, 4 vertices and 2 triangles per face.
func Cube(s float32) *Mesh {
	type face struct {
		normal  mgl32.Vec3
		corners [4]mgl32.Vec3
	}
	faces := []face{
		{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-s, -s, s}, {s, -s, s}, {s, s, s}, {-s, s, s}}},
		{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{s, -s, -s}, {-s, -s, -s}, {-s, s, -s}, {s, s, -s}}},
		{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-s, s, s}, {s, s, s}, {s, s, -s}, {-s, s, -s}}},
		{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-s, -s, -s}, {s, -s, -s}, {s, -s, s}, {-s, -s, s}}},
		{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{s, -s, s}, {s, -s, -s}, {s, s, -s}, {s, s, s}}},
		{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-s, -s, -s}, {-s, -s, s}, {-s, s, s}, {-s, s, -s}}},
	}

	m := &Mesh{
		Vertices: make([]Vertex, 0, 4*len(faces)),
		Indices:  make([]int, 0, 6*len(faces)),
	}
	for _, f := range faces {
		base := len(m.Vertices)
		for i, p := range f.corners {
			m.Vertices = append(m.Vertices, Vertex{
				Position: mgl32.Vec4{p.X(), p.Y(), p.Z(), 1},
				Color:    faceColors[i],
				Normal:   f.normal,
				UV:       faceUVs[i],
			})
		}
		m.Indices = append(m.Indices,
			base, base+1, base+2,
			base, base+2, base+3)
	}
	return m
}

// Quad returns a square with half-extent s in the z=0 plane, facing +z,
// with red/green/blue/white corner colors.
func Quad(s float32) *Mesh {
	corners := [4]mgl32.Vec3{{-s, -s, 0}, {s, -s, 0}, {s, s, 0}, {-s, s, 0}}

	m := &Mesh{
		Vertices: make([]Vertex, 0, 4),
		Indices:  []int{0, 1, 2, 0, 2, 3},
	}
	for i, p := range corners {
		m.Vertices = append(m.Vertices, Vertex{
			Position: mgl32.Vec4{p.X(), p.Y(), p.Z(), 1},
			Color:    faceColors[i],
			Normal:   mgl32.Vec3{0, 0, 1},
			UV:       faceUVs[i],
		})
	}
	return m
}
