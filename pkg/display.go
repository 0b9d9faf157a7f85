package pkg

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Pen is a 4-bit gray level, 0 black to 15 white.
type Pen uint8

const (
	PenBlack Pen = 0
	PenWhite Pen = 15
)

func (p Pen) Color() color.Gray {
	if p > PenWhite {
		p = PenWhite
	}
	return color.Gray{Y: uint8(p) * 17}
}

type UpdateSpeed int

const (
	UpdateNormal UpdateSpeed = iota
	UpdateMedium
	UpdateFast
	UpdateTurbo
)

// textScale is the pixel size of text drawn at size 1.0.
const textScale = 24

var (
	ErrUnaligned = errors.New("partial update region y and height must be multiples of 8")
	ErrSpeed     = errors.New("update speed must be between 0 and 3")
)

// Display is the drawing surface of a badge panel. Drawing calls only touch
// the buffer; Update and PartialUpdate push it to the glass.
type Display interface {
	Bounds() image.Rectangle
	SetPen(p Pen)
	Clear()
	Rectangle(x, y, w, h int)
	// Text draws s with its left edge at x, vertically centred on y.
	Text(s string, x, y int, size float64)
	MeasureText(s string, size float64) int
	Image(img image.Image, x, y int)
	Update() error
	PartialUpdate(r image.Rectangle) error
	SetLED(level uint8) error
	SetUpdateSpeed(s UpdateSpeed) error
	SetThickness(t int)
}

type speedSetter interface {
	SetSpeed(UpdateSpeed) error
}

// Surface is a Display that draws on an in-memory gg context and refreshes
// a Panel.
type Surface struct {
	dc    *gg.Context
	panel Panel
	led   Backlight

	font  *truetype.Font
	faces map[float64]font.Face

	pen       Pen
	thickness int
	speed     UpdateSpeed
}

// NewSurface creates a white surface sized to panel. led may be nil.
func NewSurface(panel Panel, led Backlight) (*Surface, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("loading font: %w", err)
	}
	b := panel.Bounds()
	s := &Surface{
		dc:        gg.NewContext(b.Dx(), b.Dy()),
		panel:     panel,
		led:       led,
		font:      f,
		faces:     map[float64]font.Face{},
		thickness: 1,
	}
	s.SetPen(PenWhite)
	s.Clear()
	s.SetPen(PenBlack)
	return s, nil
}

func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.dc.Width(), s.dc.Height())
}

func (s *Surface) SetPen(p Pen) {
	s.pen = p
	s.dc.SetColor(p.Color())
}

func (s *Surface) Pen() Pen {
	return s.pen
}

// Clear fills the whole buffer with the current pen.
func (s *Surface) Clear() {
	s.dc.Clear()
}

func (s *Surface) Rectangle(x, y, w, h int) {
	s.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	s.dc.Fill()
}

func (s *Surface) face(size float64) font.Face {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(s.font, &truetype.Options{
		Size:    size * textScale,
		Hinting: font.HintingFull,
	})
	s.faces[size] = f
	return f
}

func (s *Surface) Text(text string, x, y int, size float64) {
	s.dc.SetFontFace(s.face(size))
	s.dc.DrawStringAnchored(text, float64(x), float64(y), 0, 0.5)
}

func (s *Surface) MeasureText(text string, size float64) int {
	s.dc.SetFontFace(s.face(size))
	w, _ := s.dc.MeasureString(text)
	return int(math.Ceil(w))
}

func (s *Surface) Image(img image.Image, x, y int) {
	s.dc.DrawImage(img, x, y)
}

// Snapshot returns the current buffer.
func (s *Surface) Snapshot() image.Image {
	return s.dc.Image()
}

func (s *Surface) Update() error {
	if err := s.panel.Refresh(s.dc.Image(), s.Bounds(), false); err != nil {
		return fmt.Errorf("full update: %w", err)
	}
	return nil
}

func (s *Surface) PartialUpdate(r image.Rectangle) error {
	if r.Min.Y%8 != 0 || r.Dy()%8 != 0 {
		return fmt.Errorf("%w: %v", ErrUnaligned, r)
	}
	if err := s.panel.Refresh(s.dc.Image(), r, true); err != nil {
		return fmt.Errorf("partial update %v: %w", r, err)
	}
	return nil
}

func (s *Surface) SetLED(level uint8) error {
	if s.led == nil {
		return nil
	}
	return s.led.SetLevel(level)
}

func (s *Surface) SetUpdateSpeed(sp UpdateSpeed) error {
	if sp < UpdateNormal || sp > UpdateTurbo {
		return fmt.Errorf("%w: %d", ErrSpeed, sp)
	}
	if ss, ok := s.panel.(speedSetter); ok {
		if err := ss.SetSpeed(sp); err != nil {
			return err
		}
	}
	s.speed = sp
	return nil
}

func (s *Surface) SetThickness(t int) {
	s.thickness = t
	s.dc.SetLineWidth(float64(t))
}

var _ Display = &Surface{}
