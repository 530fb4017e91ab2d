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

// Spin opens a window and shows a rotating, checker-textured cube
// rendered entirely in software. The scene is rasterized at half
// resolution and upscaled, which keeps the demo interactive even
// without any parallelism in the rasterizer.
package main

import (
	"image"
	"image/color"
	"image/draw"
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	xdraw "golang.org/x/image/draw"

	"seehuhn.de/go/raster3d"
	"seehuhn.de/go/raster3d/scenes"
)

const (
	screenWidth  = 640
	screenHeight = 480
	pixelSize    = 2
)

var background = image.NewUniform(color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff})

type game struct {
	frame  *image.RGBA
	scaled *image.RGBA
	target *raster3d.ImageTarget
	depth  *raster3d.DepthBuffer

	uniform scenes.Uniform
	mesh    *scenes.Mesh
	angle   float32
}

func newGame() (*game, error) {
	w := screenWidth / pixelSize
	h := screenHeight / pixelSize
	depth, err := raster3d.NewDepthBuffer(w, h)
	if err != nil {
		return nil, err
	}

	frame := image.NewRGBA(image.Rect(0, 0, w, h))
	g := &game{
		frame:  frame,
		scaled: image.NewRGBA(image.Rect(0, 0, screenWidth, screenHeight)),
		target: raster3d.NewImageTarget(frame),
		depth:  depth,
		mesh:   scenes.Cube(1),
	}
	g.uniform = scenes.Uniform{
		Projection: mgl32.Perspective(mgl32.DegToRad(60), float32(w)/float32(h), 0.1, 100),
		View:       mgl32.LookAtV(mgl32.Vec3{0, 1.2, 4}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}),
		Model:      mgl32.Ident4(),
		Light:      mgl32.Vec3{4, 4, 4},
		Sampler:    scenes.NewChecker(8),
	}
	return g, nil
}

func (g *game) Update() error {
	g.angle += 0.02
	g.uniform.Model = mgl32.HomogRotate3DY(g.angle).Mul4(mgl32.HomogRotate3DX(0.4))

	draw.Draw(g.frame, g.frame.Bounds(), background, image.Point{}, draw.Src)
	g.depth.Clear()
	return scenes.DrawMesh(scenes.TextureProgram{}, scenes.TextureProgram{},
		g.depth, g.target, &g.uniform, g.mesh)
}

func (g *game) Draw(screen *ebiten.Image) {
	xdraw.NearestNeighbor.Scale(g.scaled, g.scaled.Bounds(), g.frame, g.frame.Bounds(), xdraw.Src, nil)
	screen.WritePixels(g.scaled.Pix)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	g, err := newGame()
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("spinning cube")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
