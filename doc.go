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

// Package raster3d implements a CPU-only triangle rasterization pipeline
// with programmable vertex and fragment stages.
//
// The pipeline mirrors the fixed-function part of a GPU: a vertex program
// maps application-defined vertices to homogeneous clip-space positions and
// per-vertex varyings, the rasterizer projects the triangle to screen space
// and scans its bounding box using edge functions, a depth buffer gates
// fragment work, and a fragment program produces the final color for each
// covered pixel. All per-vertex attributes are interpolated
// perspective-correctly.
//
// The rasterizer itself is stateless: [Triangle] takes every mutable
// resource (depth buffer, target buffer) as an explicit parameter and can be
// called concurrently as long as no two calls share a buffer.
package raster3d
