package game

import (
	"errors"
	"image/color"
)

type drawCall struct {
	op     string
	sprite Sprite
	rect   Rect
	color  color.Color
	text   string
	style  TextStyle
}

type fakeSurface struct {
	calls []drawCall
}

func (f *fakeSurface) Clear() {
	f.calls = append(f.calls, drawCall{op: "clear"})
}

func (f *fakeSurface) FillRect(r Rect, c color.Color) {
	f.calls = append(f.calls, drawCall{op: "rect", rect: r, color: c})
}

func (f *fakeSurface) DrawSprite(sprite Sprite, r Rect) {
	f.calls = append(f.calls, drawCall{op: "sprite", sprite: sprite, rect: r})
}

func (f *fakeSurface) DrawText(str string, x, y float64, style TextStyle) {
	f.calls = append(f.calls, drawCall{op: "text", text: str, rect: Rect{X: x, Y: y}, style: style})
}

func (f *fakeSurface) texts() []string {
	var out []string
	for _, c := range f.calls {
		if c.op == "text" {
			out = append(out, c.text)
		}
	}
	return out
}

func (f *fakeSurface) count(op string) int {
	n := 0
	for _, c := range f.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

// fakeDisplay 同步模拟浏览器的全屏切换和 fullscreenchange 通知
type fakeDisplay struct {
	state        *State
	active       bool
	fail         bool
	viewW, viewH int
	requests     int
}

func (d *fakeDisplay) Fullscreen() bool {
	return d.active
}

func (d *fakeDisplay) SetFullscreen(on bool) error {
	d.requests++
	if on && d.fail {
		return errors.New("request denied")
	}
	d.active = on
	d.state.FullscreenChanged(on, d.viewW, d.viewH)
	return nil
}

type fakeSound struct {
	plays int
	err   error
}

func (s *fakeSound) Play() error {
	s.plays++
	return s.err
}
