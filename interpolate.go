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

// Varying is the constraint every per-fragment payload must satisfy.
//
// A varying is produced once per vertex by a [VertexProgram] and
// interpolated across the triangle's surface before being handed to the
// [FragmentProgram]. Implementations are plain value types; both methods
// return a new value and must not mutate their receiver.
//
// Interpolate returns the field-wise weighted sum a*wa + b*wb + c*wc,
// where a is the receiver. The rasterizer guarantees wa+wb+wc == 1 up to
// floating-point tolerance.
//
// Correct returns the varying with every numeric field divided by w. The
// rasterizer calls it twice per fragment path: once per vertex with the
// clip-space w to move attributes into reciprocal space, and once per
// fragment with the interpolated reciprocal-w to move the blended result
// back. This two-step division is what makes attribute interpolation
// match true 3D-space linearity instead of screen-space linearity.
type Varying[T any] interface {
	Interpolate(b, c T, wa, wb, wc float32) T
	Correct(w float32) T
}
