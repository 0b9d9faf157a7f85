package pkg

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLetterbox(t *testing.T) {
	assert.Equal(t, image.Rect(0, 68, 240, 171), letterbox(296, 128, 240))
	assert.Equal(t, image.Rect(0, 0, 240, 240), letterbox(128, 128, 240))
	assert.Equal(t, image.Rect(60, 0, 180, 240), letterbox(100, 200, 240))
}

func TestScaleToSquare(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 296, 128))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}

	frame := scaleToSquare(src, 240)

	assert.Equal(t, image.Rect(0, 0, 240, 240), frame.Bounds())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, frame.RGBAAt(120, 120))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, frame.RGBAAt(120, 10))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, frame.RGBAAt(120, 230))
}
