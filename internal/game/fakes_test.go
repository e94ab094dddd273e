package game

import (
	"image"
	"image/color"
	"time"

	"chosenoffset.com/vspaces/internal/render"
)

type fakeInput struct {
	render.Dispatcher
	just map[render.Key]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{just: make(map[render.Key]bool)}
}

func (f *fakeInput) IsKeyJustPressed(key render.Key) bool { return f.just[key] }

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type fakeImage struct {
	w, h   int
	filled color.Color
}

func (i *fakeImage) Bounds() image.Rectangle { return image.Rect(0, 0, i.w, i.h) }
func (i *fakeImage) Size() (int, int)        { return i.w, i.h }
func (i *fakeImage) Fill(clr color.Color)    { i.filled = clr }

type drawCall struct {
	op   string
	x, y float32
	text string
}

type fakeRenderer struct {
	calls []drawCall
}

func (r *fakeRenderer) FillRect(_ render.Image, x, y, _, _ float32, _ color.Color) {
	r.calls = append(r.calls, drawCall{op: "fillRect", x: x, y: y})
}

func (r *fakeRenderer) StrokeRect(_ render.Image, x, y, _, _, _ float32, _ color.Color) {
	r.calls = append(r.calls, drawCall{op: "strokeRect", x: x, y: y})
}

func (r *fakeRenderer) FillCircle(_ render.Image, x, y, _ float32, _ color.Color) {
	r.calls = append(r.calls, drawCall{op: "fillCircle", x: x, y: y})
}

func (r *fakeRenderer) StrokeCircle(_ render.Image, x, y, _ float32, _ float32, _ color.Color) {
	r.calls = append(r.calls, drawCall{op: "strokeCircle", x: x, y: y})
}

func (r *fakeRenderer) StrokeLine(_ render.Image, x0, y0, _, _, _ float32, _ color.Color) {
	r.calls = append(r.calls, drawCall{op: "strokeLine", x: x0, y: y0})
}

func (r *fakeRenderer) DrawText(_ render.Image, text string, x, y int, _ color.Color, _ float64) {
	r.calls = append(r.calls, drawCall{op: "text", x: float32(x), y: float32(y), text: text})
}

func (r *fakeRenderer) MeasureText(text string, scale float64) (int, int) {
	return len(text) * 6, 16
}

func (r *fakeRenderer) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

func (r *fakeRenderer) texts() []string {
	var out []string
	for _, c := range r.calls {
		if c.op == "text" {
			out = append(out, c.text)
		}
	}
	return out
}
