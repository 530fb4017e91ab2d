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
	"image"

	"github.com/chewxy/math32"
)

// ImageTarget adapts an *image.RGBA to the [TargetBuffer] interface.
// Color channels are clamped to [0, 1] and quantized to 8 bits on write.
type ImageTarget struct {
	img    *image.RGBA
	width  int
	height int
}

// NewImageTarget wraps img as a render target. Pixel (0,0) of the target
// is the top-left pixel of the image.
func NewImageTarget(img *image.RGBA) *ImageTarget {
	b := img.Bounds()
	return &ImageTarget{
		img:    img,
		width:  b.Dx(),
		height: b.Dy(),
	}
}

// Width returns the target width in pixels.
func (t *ImageTarget) Width() int { return t.width }

// Height returns the target height in pixels.
func (t *ImageTarget) Height() int { return t.height }

// Set writes one shaded pixel.
func (t *ImageTarget) Set(x, y int, color Color) {
	min := t.img.Rect.Min
	o := t.img.PixOffset(min.X+x, min.Y+y)
	p := t.img.Pix[o : o+4 : o+4]
	p[0] = quantize(color.X())
	p[1] = quantize(color.Y())
	p[2] = quantize(color.Z())
	p[3] = quantize(color.W())
}

// quantize clamps v to [0, 1] and rounds to an 8-bit channel value.
func quantize(v float32) uint8 {
	return uint8(math32.Max(0, math32.Min(1, v))*255 + 0.5)
}
