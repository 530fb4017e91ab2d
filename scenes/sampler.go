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

import "github.com/go-gl/mathgl/mgl32"

// Sampler produces a texel color for a texture coordinate. Samplers are
// ordinary user data owned by the fragment program; the rasterizer knows
// nothing about them.
type Sampler interface {
	At(u, v float32) mgl32.Vec4
}

// Checker is a procedural checkerboard texture.
type Checker struct {
	Frequency float32    // number of cells per unit of texture space
	A, B      mgl32.Vec4 // cell colors
}

// NewChecker returns a white/grey checkerboard with the given frequency.
func NewChecker(frequency float32) Checker {
	return Checker{
		Frequency: frequency,
		A:         mgl32.Vec4{1, 1, 1, 1},
		B:         mgl32.Vec4{0.5, 0.5, 0.5, 1},
	}
}

// At returns the cell color at (u, v).
func (c Checker) At(u, v float32) mgl32.Vec4 {
	x := int(u * c.Frequency)
	y := int(v * c.Frequency)
	if (x+y)%2 == 0 {
		return c.A
	}
	return c.B
}
