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

package raster3d_test

import (
	"fmt"
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"seehuhn.de/go/raster3d"
	"seehuhn.de/go/raster3d/scenes"
)

func BenchmarkCube(b *testing.B) {
	for _, size := range []int{64, 256} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			img := image.NewRGBA(image.Rect(0, 0, size, size))
			target := raster3d.NewImageTarget(img)
			depth, err := raster3d.NewDepthBuffer(size, size)
			if err != nil {
				b.Fatal(err)
			}

			u := &scenes.Uniform{
				Projection: mgl32.Perspective(mgl32.DegToRad(60), 1, 0.1, 10),
				View:       mgl32.LookAtV(mgl32.Vec3{2, 1.5, 2}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}),
				Model:      mgl32.Ident4(),
				Light:      mgl32.Vec3{3, 3, 3},
				Sampler:    scenes.NewChecker(8),
			}
			mesh := scenes.Cube(1)

			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				depth.Clear()
				err := scenes.DrawMesh(scenes.TextureProgram{}, scenes.TextureProgram{},
					depth, target, u, mesh)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkTriangle measures the per-fragment cost without any mesh or
// lighting overhead: one triangle covering most of a 256x256 target.
func BenchmarkTriangle(b *testing.B) {
	const size = 256
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	target := raster3d.NewImageTarget(img)
	depth, err := raster3d.NewDepthBuffer(size, size)
	if err != nil {
		b.Fatal(err)
	}

	u := &scenes.Uniform{
		Projection: mgl32.Ident4(),
		View:       mgl32.Ident4(),
		Model:      mgl32.Ident4(),
	}
	v0 := scenes.Vertex{Position: mgl32.Vec4{-0.9, -0.9, 0, 1}, Color: mgl32.Vec4{1, 0, 0, 1}}
	v1 := scenes.Vertex{Position: mgl32.Vec4{0.9, -0.9, 0, 1}, Color: mgl32.Vec4{0, 1, 0, 1}}
	v2 := scenes.Vertex{Position: mgl32.Vec4{0, 0.9, 0, 1}, Color: mgl32.Vec4{0, 0, 1, 1}}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		depth.Clear()
		err := raster3d.Triangle[scenes.Uniform, scenes.Vertex, scenes.Varying](
			scenes.ColorProgram{}, scenes.ColorProgram{},
			depth, target, u, &v0, &v1, &v2)
		if err != nil {
			b.Fatal(err)
		}
	}
}
