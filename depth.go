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

import (
	"fmt"

	"github.com/chewxy/math32"
)

// DepthBuffer stores one depth value per target pixel. Smaller values are
// nearer to the eye; every cell starts at the far sentinel
// (math32.MaxFloat32).
//
// A DepthBuffer is created once by the caller and reused across draw
// calls; [Triangle] borrows it for the duration of one call. It is not
// safe for concurrent use.
type DepthBuffer struct {
	width  int
	height int
	data   []float32
}

// NewDepthBuffer allocates a width×height depth buffer with every cell
// set to the far sentinel. It returns an error if either dimension is
// not positive.
func NewDepthBuffer(width, height int) (*DepthBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster3d: invalid depth buffer dimensions %dx%d", width, height)
	}
	b := &DepthBuffer{
		width:  width,
		height: height,
		data:   make([]float32, width*height),
	}
	b.Clear()
	return b, nil
}

// Width returns the buffer width in pixels.
func (b *DepthBuffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *DepthBuffer) Height() int { return b.height }

// Clear resets every cell to the far sentinel. Callers rendering
// multiple frames into the same buffer must clear between frames.
func (b *DepthBuffer) Clear() {
	for i := range b.data {
		b.data[i] = math32.MaxFloat32
	}
}

// TestAndSet performs the depth test at (x, y). If depth is strictly
// less than the stored value, the cell is updated and TestAndSet returns
// true (fragment visible). Otherwise the buffer is unchanged and the
// result is false; ties lose.
//
// (x, y) must be inside the buffer. The rasterizer's bounding box clamp
// guarantees this, so an out-of-range access indicates an internal
// defect and panics.
func (b *DepthBuffer) TestAndSet(x, y int, depth float32) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		panic(fmt.Sprintf("raster3d: depth access (%d,%d) outside %dx%d buffer", x, y, b.width, b.height))
	}
	i := y*b.width + x
	if depth < b.data[i] {
		b.data[i] = depth
		return true
	}
	return false
}

// At returns the stored depth at (x, y). It panics if (x, y) is outside
// the buffer.
func (b *DepthBuffer) At(x, y int) float32 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		panic(fmt.Sprintf("raster3d: depth access (%d,%d) outside %dx%d buffer", x, y, b.width, b.height))
	}
	return b.data[y*b.width+x]
}
