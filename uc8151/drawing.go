package uc8151

import (
	"image"

	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// packFrame converts img into the controller's column major layout for a
// w x h panel.
func packFrame(img *image1bit.VerticalLSB, w, h int) []byte {
	banks := h / 8
	frame := make([]byte, w*banks)
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X && x < w; x++ {
		for y := b.Min.Y; y < b.Max.Y && y < h; y++ {
			if img.BitAt(x, y) {
				frame[y/8+x*banks] |= 0x80 >> (y & 7)
			}
		}
	}
	return frame
}

// frameColumns returns the bytes of frame covering r, one run of banks per
// column, in the order the controller expects after a PTL command.
func frameColumns(frame []byte, h int, r image.Rectangle) []byte {
	banks := h / 8
	first, last := r.Min.Y/8, r.Max.Y/8
	out := make([]byte, 0, r.Dx()*(last-first))
	for x := r.Min.X; x < r.Max.X; x++ {
		off := x * banks
		out = append(out, frame[off+first:off+last]...)
	}
	return out
}
