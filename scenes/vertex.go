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

// Package scenes provides ready-made vertex formats, shader programs and
// meshes for the raster3d pipeline. The package is used by the tests,
// the benchmarks and the demo command; applications with their own
// vertex layouts do not need it.
package scenes

import "github.com/go-gl/mathgl/mgl32"

// Vertex is the standard vertex format used by the programs in this
// package: a homogeneous position plus color, normal and texture
// coordinates.
type Vertex struct {
	Position mgl32.Vec4
	Color    mgl32.Vec4
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// Uniform holds the per-draw-call constants shared by all programs in
// this package. Sampler may be nil for programs that do not sample.
type Uniform struct {
	Projection mgl32.Mat4
	View       mgl32.Mat4
	Model      mgl32.Mat4
	Light      mgl32.Vec3 // world-space light position
	Sampler    Sampler
}

// MVP returns the combined model-view-projection matrix.
func (u *Uniform) MVP() mgl32.Mat4 {
	return u.Projection.Mul4(u.View).Mul4(u.Model)
}

// Varying is the per-fragment payload produced by the programs in this
// package. It satisfies the raster3d interpolation contract.
type Varying struct {
	Position mgl32.Vec4
	Color    mgl32.Vec4
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// Interpolate returns the field-wise weighted sum v*wa + b*wb + c*wc.
func (v Varying) Interpolate(b, c Varying, wa, wb, wc float32) Varying {
	return Varying{
		Position: v.Position.Mul(wa).Add(b.Position.Mul(wb)).Add(c.Position.Mul(wc)),
		Color:    v.Color.Mul(wa).Add(b.Color.Mul(wb)).Add(c.Color.Mul(wc)),
		Normal:   v.Normal.Mul(wa).Add(b.Normal.Mul(wb)).Add(c.Normal.Mul(wc)),
		UV:       v.UV.Mul(wa).Add(b.UV.Mul(wb)).Add(c.UV.Mul(wc)),
	}
}

// Correct returns the varying with every field divided by w.
func (v Varying) Correct(w float32) Varying {
	s := 1 / w
	return Varying{
		Position: v.Position.Mul(s),
		Color:    v.Color.Mul(s),
		Normal:   v.Normal.Mul(s),
		UV:       v.UV.Mul(s),
	}
}
