package pkg

import (
	"image"

	"github.com/kubesail/pibox-badge/bitmatrix"
)

type QROptions struct {
	// Stride is the distance between cell origins. Zero uses the cell size.
	Stride int

	// Centered pads by half the unused space instead of half the remainder
	// of the region size divided by the cell size.
	Centered bool
}

// qrGeometry returns the cell size, padding and stride along one axis.
func qrGeometry(extent, cells, stride int, centered bool) (size, pad, step int) {
	size = extent / cells
	if size == 0 {
		return 0, 0, stride
	}
	if centered {
		pad = (extent - size*cells) / 2
	} else {
		pad = (extent%size + 1) / 2
	}
	step = stride
	if step == 0 {
		step = size
	}
	return size, pad, step
}

// DrawQRCode paints m into region, one filled rectangle per cell in the
// cell's pen, then issues a single partial update of region.
func DrawQRCode(d Display, m bitmatrix.Matrix, region image.Rectangle, opts QROptions) error {
	rows, cols := m.Rows(), m.Cols()
	if rows > 0 && cols > 0 {
		cw, xPad, xStep := qrGeometry(region.Dx(), cols, opts.Stride, opts.Centered)
		ch, yPad, yStep := qrGeometry(region.Dy(), rows, opts.Stride, opts.Centered)

		for r, row := range m {
			for c, cell := range row {
				x := region.Min.X + xPad + c*xStep
				y := region.Min.Y + yPad + r*yStep
				d.SetPen(Pen(cell))
				d.Rectangle(x, y, cw, ch)
			}
		}
	}
	return d.PartialUpdate(region)
}
