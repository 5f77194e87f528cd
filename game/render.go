package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/juicy/gfx"
)

type Vec2 struct {
	X, Y float64
}

// DrawCall draws Source of Texture so that Origin (in source pixels) lands on Position
// after scaling by Scale. A negative X scale mirrors the sprite around its origin.
type DrawCall struct {
	Texture  *gfx.Texture
	Source   image.Rectangle
	Position Vec2
	Origin   Vec2
	Scale    Vec2
}

// GeoM returns the transform for the call: move the origin to (0,0), scale, then move to Position.
func (c DrawCall) GeoM() ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-c.Origin.X, -c.Origin.Y)
	m.Scale(c.Scale.X, c.Scale.Y)
	m.Translate(c.Position.X, c.Position.Y)
	return m
}

// Renderer receives draw calls during the draw pass.
type Renderer interface {
	Draw(call DrawCall)
}

// EbitenRenderer draws onto an ebiten image.
type EbitenRenderer struct {
	Screen *ebiten.Image
}

func (r *EbitenRenderer) Draw(call DrawCall) {
	src := call.Texture.Sub(call.Source)
	if src == nil || r.Screen == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = call.GeoM()
	op.Filter = ebiten.FilterNearest
	r.Screen.DrawImage(src, op)
}

// Recorder keeps every draw call it receives.
type Recorder struct {
	Calls []DrawCall
}

func (r *Recorder) Draw(call DrawCall) {
	r.Calls = append(r.Calls, call)
}

// Reset drops recorded calls, keeping the backing array.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
