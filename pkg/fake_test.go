package pkg

import (
	"image"
)

type op struct {
	name string
	pen  Pen
	rect image.Rectangle
	text string
	size float64
}

// fakeDisplay records drawing calls. Text measures 10 pixels per rune at
// size 1.0.
type fakeDisplay struct {
	bounds image.Rectangle
	pen    Pen
	ops    []op

	led       uint8
	speed     UpdateSpeed
	thickness int

	updateErr  error
	partialErr error
	ledErr     error
	speedErr   error
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{bounds: image.Rect(0, 0, 296, 128), pen: PenBlack}
}

func (f *fakeDisplay) Bounds() image.Rectangle { return f.bounds }

func (f *fakeDisplay) SetPen(p Pen) {
	f.pen = p
	f.ops = append(f.ops, op{name: "pen", pen: p})
}

func (f *fakeDisplay) Clear() {
	f.ops = append(f.ops, op{name: "clear", pen: f.pen})
}

func (f *fakeDisplay) Rectangle(x, y, w, h int) {
	f.ops = append(f.ops, op{name: "rect", pen: f.pen, rect: image.Rect(x, y, x+w, y+h)})
}

func (f *fakeDisplay) Text(s string, x, y int, size float64) {
	f.ops = append(f.ops, op{name: "text", pen: f.pen, rect: image.Rect(x, y, x, y), text: s, size: size})
}

func (f *fakeDisplay) MeasureText(s string, size float64) int {
	return int(float64(len([]rune(s))) * size * 10)
}

func (f *fakeDisplay) Image(img image.Image, x, y int) {
	f.ops = append(f.ops, op{name: "image", rect: img.Bounds().Add(image.Pt(x, y))})
}

func (f *fakeDisplay) Update() error {
	f.ops = append(f.ops, op{name: "update"})
	return f.updateErr
}

func (f *fakeDisplay) PartialUpdate(r image.Rectangle) error {
	f.ops = append(f.ops, op{name: "partial", rect: r})
	return f.partialErr
}

func (f *fakeDisplay) SetLED(level uint8) error {
	f.led = level
	return f.ledErr
}

func (f *fakeDisplay) SetUpdateSpeed(s UpdateSpeed) error {
	if f.speedErr != nil {
		return f.speedErr
	}
	f.speed = s
	return nil
}

func (f *fakeDisplay) SetThickness(t int) {
	f.thickness = t
}

func (f *fakeDisplay) named(name string) []op {
	var out []op
	for _, o := range f.ops {
		if o.name == name {
			out = append(out, o)
		}
	}
	return out
}

type refresh struct {
	r       image.Rectangle
	partial bool
}

type fakePanel struct {
	bounds    image.Rectangle
	refreshes []refresh
	last      image.Image
	err       error
	speed     UpdateSpeed
	speedErr  error
	closed    bool
}

func (p *fakePanel) Bounds() image.Rectangle { return p.bounds }

func (p *fakePanel) Refresh(img image.Image, r image.Rectangle, partial bool) error {
	if p.err != nil {
		return p.err
	}
	p.last = img
	p.refreshes = append(p.refreshes, refresh{r: r, partial: partial})
	return nil
}

func (p *fakePanel) SetSpeed(s UpdateSpeed) error {
	if p.speedErr != nil {
		return p.speedErr
	}
	p.speed = s
	return nil
}

func (p *fakePanel) Close() error {
	p.closed = true
	return nil
}

type fakeLED struct {
	levels []uint8
}

func (l *fakeLED) SetLevel(level uint8) error {
	l.levels = append(l.levels, level)
	return nil
}
