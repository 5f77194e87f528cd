package gfx

import "image"

// Animation is a looping clip: an ordered list of source rectangles over a shared
// texture, each shown for a fixed duration.
type Animation struct {
	texture      *Texture
	frames       []image.Rectangle
	frameSeconds float64

	current int
	timer   float64
}

// NewAnimation creates a clip over texture. It panics if frames is empty or
// frameSeconds is not positive.
func NewAnimation(texture *Texture, frames []image.Rectangle, frameSeconds float64) *Animation {
	if len(frames) == 0 {
		panic("gfx: animation needs at least one frame")
	}
	if frameSeconds <= 0 {
		panic("gfx: animation frame duration must be positive")
	}
	return &Animation{
		texture:      texture,
		frames:       frames,
		frameSeconds: frameSeconds,
	}
}

// Row returns count rectangles of size w x h laid side by side starting at (x, y).
func Row(x, y, w, h, count int) []image.Rectangle {
	rects := make([]image.Rectangle, count)
	for i := range rects {
		left := x + i*w
		rects[i] = image.Rect(left, y, left+w, y+h)
	}
	return rects
}

// Advance moves the clip forward by dt seconds. Leftover time carries into the
// next frame, and several frames are skipped if dt spans them.
func (a *Animation) Advance(dt float64) {
	a.timer += dt
	for a.timer >= a.frameSeconds {
		a.timer -= a.frameSeconds
		a.current = (a.current + 1) % len(a.frames)
	}
}

// Restart rewinds to the first frame.
func (a *Animation) Restart() {
	a.current = 0
	a.timer = 0
}

// CurrentFrame returns the index of the frame being shown.
func (a *Animation) CurrentFrame() int {
	return a.current
}

// Elapsed returns the time spent on the current frame so far.
func (a *Animation) Elapsed() float64 {
	return a.timer
}

// Frames returns the clip's source rectangles. The slice must not be modified.
func (a *Animation) Frames() []image.Rectangle {
	return a.frames
}

// Source returns the source rectangle of the current frame.
func (a *Animation) Source() image.Rectangle {
	return a.frames[a.current]
}

// Texture returns the texture the clip draws from.
func (a *Animation) Texture() *Texture {
	return a.texture
}
