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
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestVaryingInterpolate(t *testing.T) {
	a := Varying{Color: mgl32.Vec4{1, 0, 0, 1}, UV: mgl32.Vec2{0, 0}}
	b := Varying{Color: mgl32.Vec4{0, 1, 0, 1}, UV: mgl32.Vec2{1, 0}}
	c := Varying{Color: mgl32.Vec4{0, 0, 1, 1}, UV: mgl32.Vec2{0, 1}}

	got := a.Interpolate(b, c, 0.25, 0.25, 0.5)
	want := Varying{
		Color: mgl32.Vec4{0.25, 0.25, 0.5, 1},
		UV:    mgl32.Vec2{0.25, 0.5},
	}
	if !got.Color.ApproxEqual(want.Color) || !got.UV.ApproxEqual(want.UV) {
		t.Errorf("got %v, want %v", got, want)
	}

	// weight 1 on the receiver reproduces the receiver
	if got := a.Interpolate(b, c, 1, 0, 0); !got.Color.ApproxEqual(a.Color) {
		t.Errorf("identity weights changed the value: %v", got)
	}
}

func TestVaryingCorrect(t *testing.T) {
	v := Varying{
		Position: mgl32.Vec4{2, 4, 6, 8},
		Color:    mgl32.Vec4{1, 1, 1, 1},
	}
	got := v.Correct(2)
	if !got.Position.ApproxEqual(mgl32.Vec4{1, 2, 3, 4}) {
		t.Errorf("Position: got %v", got.Position)
	}
	if !got.Color.ApproxEqual(mgl32.Vec4{0.5, 0.5, 0.5, 0.5}) {
		t.Errorf("Color: got %v", got.Color)
	}

	// Correct(w) followed by Correct(1/w) is the identity
	back := got.Correct(0.5)
	if !back.Position.ApproxEqual(v.Position) {
		t.Errorf("round trip: got %v, want %v", back.Position, v.Position)
	}
}

func TestCube(t *testing.T) {
	m := Cube(1)
	if len(m.Vertices) != 24 {
		t.Errorf("got %d vertices, want 24", len(m.Vertices))
	}
	if len(m.Indices) != 36 {
		t.Errorf("got %d indices, want 36", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if idx < 0 || idx >= len(m.Vertices) {
			t.Fatalf("index %d out of range at position %d", idx, i)
		}
	}
	for i, v := range m.Vertices {
		if d := math32.Abs(v.Normal.Len() - 1); d > 1e-6 {
			t.Errorf("vertex %d: normal %v is not unit length", i, v.Normal)
		}
		if v.Position.W() != 1 {
			t.Errorf("vertex %d: w = %g, want 1", i, v.Position.W())
		}
	}

	// face normals from the winding must agree with the stored normals,
	// so that all faces point outward
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Vertices[m.Indices[i]]
		b := m.Vertices[m.Indices[i+1]]
		c := m.Vertices[m.Indices[i+2]]
		e1 := b.Position.Vec3().Sub(a.Position.Vec3())
		e2 := c.Position.Vec3().Sub(a.Position.Vec3())
		if e1.Cross(e2).Dot(a.Normal) <= 0 {
			t.Errorf("triangle %d winds against its normal", i/3)
		}
	}
}

func TestQuad(t *testing.T) {
	m := Quad(2)
	if len(m.Vertices) != 4 || len(m.Indices) != 6 {
		t.Fatalf("got %d vertices and %d indices", len(m.Vertices), len(m.Indices))
	}
	for i, v := range m.Vertices {
		if v.Position.Z() != 0 {
			t.Errorf("vertex %d not in the z=0 plane: %v", i, v.Position)
		}
		if v.Normal != (mgl32.Vec3{0, 0, 1}) {
			t.Errorf("vertex %d: normal %v", i, v.Normal)
		}
	}
}

func TestChecker(t *testing.T) {
	c := NewChecker(4)
	if got := c.At(0.1, 0.1); got != c.A {
		t.Errorf("cell (0,0): got %v, want %v", got, c.A)
	}
	if got := c.At(0.3, 0.1); got != c.B {
		t.Errorf("cell (1,0): got %v, want %v", got, c.B)
	}
	if got := c.At(0.3, 0.3); got != c.A {
		t.Errorf("cell (1,1): got %v, want %v", got, c.A)
	}
}

func TestMVP(t *testing.T) {
	u := Uniform{
		Projection: mgl32.Perspective(mgl32.DegToRad(60), 1, 0.1, 10),
		View:       mgl32.Translate3D(0, 0, -3),
		Model:      mgl32.HomogRotate3DY(0.5),
	}
	want := u.Projection.Mul4(u.View).Mul4(u.Model)
	if got := u.MVP(); !got.ApproxEqual(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
