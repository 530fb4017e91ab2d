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

package raster3d

import "github.com/go-gl/mathgl/mgl32"

// Color is a 4-component RGBA color with float32 channels, nominally in
// the range [0, 1]. Target buffers decide how out-of-range values are
// handled; [ImageTarget] clamps.
type Color = mgl32.Vec4

// VertexProgram transforms one application-defined vertex into a
// homogeneous clip-space position, populating varying with the
// per-vertex outputs to be interpolated across the triangle.
//
// U is the per-draw-call uniform type, V the vertex type and W the
// varying type. The uniform is shared read-only between all three vertex
// invocations of one triangle; implementations must not retain varying
// past the call.
type VertexProgram[U, V, W any] interface {
	Vertex(uniform *U, vertex *V, varying *W) mgl32.Vec4
}

// FragmentProgram computes the final color of one fragment from the
// interpolated varying and the draw call's uniform.
type FragmentProgram[U, W any] interface {
	Fragment(uniform *U, varying *W) Color
}

// TargetBuffer is the sink the rasterizer writes shaded pixels to.
// The rasterizer only borrows the buffer for the duration of one
// [Triangle] call and guarantees 0 <= x < Width() and 0 <= y < Height()
// for every Set call, with y increasing downwards.
type TargetBuffer interface {
	Width() int
	Height() int
	Set(x, y int, color Color)
}
