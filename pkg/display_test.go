package pkg

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSurface(t *testing.T) (*Surface, *fakePanel, *fakeLED) {
	t.Helper()
	p := &fakePanel{bounds: image.Rect(0, 0, 296, 128)}
	led := &fakeLED{}
	s, err := NewSurface(p, led)
	require.NoError(t, err)
	return s, p, led
}

func grayAt(img image.Image, x, y int) uint8 {
	return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
}

func TestPenColor(t *testing.T) {
	assert.Equal(t, color.Gray{Y: 0}, PenBlack.Color())
	assert.Equal(t, color.Gray{Y: 255}, PenWhite.Color())
	assert.Equal(t, color.Gray{Y: 119}, Pen(7).Color())
	assert.Equal(t, color.Gray{Y: 255}, Pen(40).Color())
}

func TestSurfaceDrawing(t *testing.T) {
	s, p, _ := newTestSurface(t)

	assert.Equal(t, image.Rect(0, 0, 296, 128), s.Bounds())
	assert.Equal(t, PenBlack, s.Pen())
	assert.Equal(t, uint8(255), grayAt(s.Snapshot(), 10, 10))

	s.Rectangle(0, 0, 8, 8)
	assert.Equal(t, uint8(0), grayAt(s.Snapshot(), 3, 3))
	assert.Equal(t, uint8(255), grayAt(s.Snapshot(), 8, 8))

	s.SetPen(PenBlack)
	s.Clear()
	assert.Equal(t, uint8(0), grayAt(s.Snapshot(), 200, 100))

	s.SetPen(PenWhite)
	s.Image(image.NewRGBA(image.Rect(0, 0, 8, 8)), 0, 0)
	s.Text("Acme", 5, 16, 0.6)

	assert.Empty(t, p.refreshes)
}

func TestSurfaceText(t *testing.T) {
	s, _, _ := newTestSurface(t)

	assert.Equal(t, 0, s.MeasureText("", 1.0))
	small := s.MeasureText("ATTENDEE_NAME", 0.5)
	large := s.MeasureText("ATTENDEE_NAME", 1.0)
	assert.Greater(t, small, 0)
	assert.Greater(t, large, small)
	assert.Greater(t, s.MeasureText("ATTENDEE_NAME_LONGER", 1.0), large)

	s.Text("WWWW", 10, 64, 1.0)
	black := false
	for x := 10; x < 10+s.MeasureText("WWWW", 1.0); x++ {
		if grayAt(s.Snapshot(), x, 64) < 128 {
			black = true
			break
		}
	}
	assert.True(t, black, "expected text pixels on the centre line")
}

func TestSurfaceUpdates(t *testing.T) {
	s, p, _ := newTestSurface(t)

	require.NoError(t, s.Update())
	require.NoError(t, s.PartialUpdate(image.Rect(168, 0, 296, 128)))
	assert.Equal(t, []refresh{
		{r: image.Rect(0, 0, 296, 128)},
		{r: image.Rect(168, 0, 296, 128), partial: true},
	}, p.refreshes)

	assert.ErrorIs(t, s.PartialUpdate(image.Rect(0, 4, 10, 20)), ErrUnaligned)
	assert.ErrorIs(t, s.PartialUpdate(image.Rect(0, 0, 10, 20)), ErrUnaligned)
	assert.Len(t, p.refreshes, 2)

	p.err = errors.New("busy")
	assert.ErrorContains(t, s.Update(), "busy")
	assert.ErrorContains(t, s.PartialUpdate(image.Rect(0, 0, 8, 8)), "busy")
}

func TestSurfaceSettings(t *testing.T) {
	s, p, led := newTestSurface(t)

	require.NoError(t, s.SetLED(5))
	assert.Equal(t, []uint8{5}, led.levels)

	require.NoError(t, s.SetUpdateSpeed(UpdateFast))
	assert.Equal(t, UpdateFast, p.speed)
	assert.ErrorIs(t, s.SetUpdateSpeed(4), ErrSpeed)
	assert.ErrorIs(t, s.SetUpdateSpeed(-1), ErrSpeed)

	p.speedErr = errors.New("unsupported")
	assert.Error(t, s.SetUpdateSpeed(UpdateTurbo))

	s.SetThickness(2)
	assert.Equal(t, 2, s.thickness)

	bare, err := NewSurface(&fakePanel{bounds: image.Rect(0, 0, 8, 8)}, nil)
	require.NoError(t, err)
	assert.NoError(t, bare.SetLED(255))
}
