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
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"seehuhn.de/go/raster3d"
)

// ambient is the base illumination used by TextureProgram so that faces
// turned away from the light stay barely visible.
const ambient = 0.1

// ColorProgram shades fragments with the interpolated vertex colors.
type ColorProgram struct{}

// Vertex transforms the position by the MVP matrix and passes all
// attributes through.
func (ColorProgram) Vertex(u *Uniform, in *Vertex, out *Varying) mgl32.Vec4 {
	out.Position = in.Position
	out.Color = in.Color
	out.Normal = in.Normal
	out.UV = in.UV
	return u.MVP().Mul4x1(in.Position)
}

// Fragment returns the interpolated vertex color.
func (ColorProgram) Fragment(u *Uniform, v *Varying) raster3d.Color {
	return v.Color
}

// TextureProgram samples the uniform's Sampler and applies a point light
// with Lambertian falloff.
type TextureProgram struct{}

// Vertex moves position and normal to world space for lighting and
// returns the clip-space position.
func (TextureProgram) Vertex(u *Uniform, in *Vertex, out *Varying) mgl32.Vec4 {
	world := u.Model.Mul4x1(in.Position)
	n := in.Normal
	out.Position = world
	out.Color = in.Color
	out.Normal = u.Model.Mul4x1(mgl32.Vec4{n.X(), n.Y(), n.Z(), 0}).Vec3()
	out.UV = in.UV
	return u.Projection.Mul4(u.View).Mul4x1(world)
}

// Fragment samples the texture and scales it by the diffuse term.
func (TextureProgram) Fragment(u *Uniform, v *Varying) raster3d.Color {
	n := v.Normal.Normalize()
	l := u.Light.Sub(v.Position.Vec3()).Normalize()
	diffuse := math32.Max(n.Dot(l), 0)
	shade := ambient + (1-ambient)*diffuse

	base := u.Sampler.At(v.UV.X(), v.UV.Y())
	return mgl32.Vec4{
		base.X() * shade,
		base.Y() * shade,
		base.Z() * shade,
		base.W(),
	}
}

// DepthProgram visualizes depth: near fragments are white, far ones
// black. Useful for debugging depth-test problems.
type DepthProgram struct{}

// Vertex stores the clip-space position in the varying so the fragment
// stage can recover the NDC depth.
func (DepthProgram) Vertex(u *Uniform, in *Vertex, out *Varying) mgl32.Vec4 {
	clip := u.MVP().Mul4x1(in.Position)
	out.Position = clip
	return clip
}

// Fragment maps NDC depth [-1, 1] to a grey level.
func (DepthProgram) Fragment(u *Uniform, v *Varying) raster3d.Color {
	z := v.Position.Z() / v.Position.W()
	g := math32.Max(0, math32.Min(1, 1-(z*0.5+0.5)))
	return mgl32.Vec4{g, g, g, 1}
}
