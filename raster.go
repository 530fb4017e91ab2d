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
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrDimensionMismatch is returned by [Triangle] when the depth buffer
// and the target buffer do not have the same dimensions.
var ErrDimensionMismatch = errors.New("raster3d: depth and target buffer dimensions differ")

// screenVertex is a projected vertex in pixel coordinates.
// x grows rightward, y downward; z is the normalized device depth.
type screenVertex struct {
	x, y, z float32
}

// Triangle rasterizes a single triangle into target, using depth to
// resolve visibility.
//
// The vertex program is invoked once per vertex to produce a clip-space
// position and a varying; the fragment program is invoked once per
// covered pixel that passes the depth test. Coverage is decided at pixel
// centers (x+0.5, y+0.5) using edge functions, with ties on shared edges
// resolved by a top-left fill rule so that adjacent triangles cover each
// boundary pixel exactly once. Both winding orders are accepted.
//
// Triangles with any vertex at clip-space w <= 0 (behind the eye) and
// triangles with zero screen-space area are discarded silently.
// Non-finite coordinates are not special-cased: NaN propagates and
// simply shades no pixels.
//
// Triangle returns an error, before any pixel work, if depth and target
// disagree about the buffer dimensions.
func Triangle[U, V any, W Varying[W], VP VertexProgram[U, V, W], FP FragmentProgram[U, W], T TargetBuffer](
	vertexProgram VP,
	fragmentProgram FP,
	depth *DepthBuffer,
	target T,
	uniform *U,
	v0, v1, v2 *V,
) error {
	width := target.Width()
	height := target.Height()
	if depth.width != width || depth.height != height {
		return fmt.Errorf("%w: depth %dx%d, target %dx%d",
			ErrDimensionMismatch, depth.width, depth.height, width, height)
	}

	// Vertex stage. The three invocations are independent; the uniform is
	// the only shared state.
	var vr0, vr1, vr2 W
	c0 := vertexProgram.Vertex(uniform, v0, &vr0)
	c1 := vertexProgram.Vertex(uniform, v1, &vr1)
	c2 := vertexProgram.Vertex(uniform, v2, &vr2)

	// A non-positive w places the vertex at or behind the eye, where the
	// perspective divide is meaningless. Discard instead of clipping.
	if c0.W() <= 0 || c1.W() <= 0 || c2.W() <= 0 {
		return nil
	}

	invW0 := 1 / c0.W()
	invW1 := 1 / c1.W()
	invW2 := 1 / c2.W()

	fw := float32(width)
	fh := float32(height)
	s0 := toScreen(c0, invW0, fw, fh)
	s1 := toScreen(c1, invW1, fw, fh)
	s2 := toScreen(c2, invW2, fw, fh)

	// Signed area (doubled) of the screen-space triangle. Zero means
	// collinear vertices; the sign captures the winding order.
	area := edgeFunc(s0.x, s0.y, s1.x, s1.y, s2.x, s2.y)
	if area == 0 {
		return nil
	}
	sign := float32(1)
	if area < 0 {
		sign = -1
	}
	invArea := 1 / (sign * area)

	// Integer pixel bounding box, clamped to the target. This bounds the
	// scan to O(bbox area) instead of O(buffer area).
	minX := max(0, int(math32.Floor(min3(s0.x, s1.x, s2.x))))
	maxX := min(width-1, int(math32.Ceil(max3(s0.x, s1.x, s2.x))))
	minY := max(0, int(math32.Floor(min3(s0.y, s1.y, s2.y))))
	maxY := min(height-1, int(math32.Ceil(max3(s0.y, s1.y, s2.y))))
	if minX > maxX || minY > maxY {
		return nil
	}

	// Move the varyings into reciprocal space so that screen-linear
	// interpolation below becomes perspective-correct.
	vr0 = vr0.Correct(c0.W())
	vr1 = vr1.Correct(c1.W())
	vr2 = vr2.Correct(c2.W())

	// Edge function setup, one edge opposite each vertex. Values are
	// sign-normalized so the triangle interior is positive regardless of
	// winding, and evaluated incrementally: stepX/stepY are the exact
	// per-pixel deltas.
	e0 := newEdge(s1, s2, sign, minX, minY)
	e1 := newEdge(s2, s0, sign, minX, minY)
	e2 := newEdge(s0, s1, sign, minX, minY)

	for y := minY; y <= maxY; y++ {
		w0 := e0.row
		w1 := e1.row
		w2 := e2.row
		for x := minX; x <= maxX; x++ {
			if covered(w0, e0.topLeft) && covered(w1, e1.topLeft) && covered(w2, e2.topLeft) {
				// Normalized barycentric weights, summing to 1.
				wa := w0 * invArea
				wb := w1 * invArea
				wc := w2 * invArea

				// Depth interpolates screen-linearly by raster convention.
				z := wa*s0.z + wb*s1.z + wc*s2.z
				if depth.TestAndSet(x, y, z) {
					invW := wa*invW0 + wb*invW1 + wc*invW2
					vr := vr0.Interpolate(vr1, vr2, wa, wb, wc).Correct(invW)
					target.Set(x, y, fragmentProgram.Fragment(uniform, &vr))
				}
			}
			w0 += e0.stepX
			w1 += e1.stepX
			w2 += e2.stepX
		}
		e0.row += e0.stepY
		e1.row += e1.stepY
		e2.row += e2.stepY
	}
	return nil
}

// toScreen applies the perspective divide and the viewport transform.
// NDC [-1,1]² maps to [0,width)×[0,height) with y flipped so that NDC +y
// (up) becomes decreasing pixel rows. z/w is kept as normalized depth.
func toScreen(c mgl32.Vec4, invW, width, height float32) screenVertex {
	return screenVertex{
		x: (c.X()*invW*0.5 + 0.5) * width,
		y: (0.5 - c.Y()*invW*0.5) * height,
		z: c.Z() * invW,
	}
}

// edgeFunc is the signed parallelogram area of (a→b, a→p). Its sign says
// which side of the directed edge a→b the point p lies on.
func edgeFunc(ax, ay, bx, by, px, py float32) float32 {
	return (px-ax)*(by-ay) - (py-ay)*(bx-ax)
}

// edge holds the incremental state of one sign-normalized edge function.
type edge struct {
	row     float32 // value at the current row's first pixel center
	stepX   float32 // delta per pixel step in +x
	stepY   float32 // delta per pixel step in +y
	topLeft bool    // whether zero-valued pixels belong to this edge
}

// newEdge prepares the edge a→b, evaluated at the center of pixel
// (minX, minY) and sign-normalized so the triangle interior is positive.
func newEdge(a, b screenVertex, sign float32, minX, minY int) edge {
	dx := sign * (b.x - a.x)
	dy := sign * (b.y - a.y)
	px := float32(minX) + 0.5
	py := float32(minY) + 0.5
	return edge{
		row:   sign * edgeFunc(a.x, a.y, b.x, b.y, px, py),
		stepX: dy,
		stepY: -dx,
		// Top edges are horizontal with the interior below them (dx < 0
		// after normalization); left edges descend (dy > 0).
		topLeft: (dy == 0 && dx < 0) || dy > 0,
	}
}

// covered reports whether a pixel with edge value w is inside with
// respect to this edge. Pixels exactly on the edge count only for
// top-left edges, so adjacent triangles never shade a shared pixel twice.
func covered(w float32, topLeft bool) bool {
	return w > 0 || (w == 0 && topLeft)
}

func min3(a, b, c float32) float32 {
	return math32.Min(a, math32.Min(b, c))
}

func max3(a, b, c float32) float32 {
	return math32.Max(a, math32.Max(b, c))
}
