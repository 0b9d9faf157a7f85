package pkg

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/rubiojr/go-pirateaudio/st7789"
	xdraw "golang.org/x/image/draw"
	"periph.io/x/conn/v3/driver/driverreg"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// lcdSize is the Pirate Audio ST7789 resolution.
const lcdSize = 240

var (
	hostOnce sync.Once
	hostErr  error
)

func initHost() error {
	hostOnce.Do(func() {
		if _, hostErr = host.Init(); hostErr != nil {
			return
		}
		_, hostErr = driverreg.Init()
	})
	return hostErr
}

// LCDPanel previews the badge on the 240x240 Pirate Audio screen, scaled to
// its width and centred vertically. Its backlight follows the LED level.
type LCDPanel struct {
	p      spi.PortCloser
	dev    *st7789.Device
	bounds image.Rectangle
}

func OpenLCDPanel(cfg Config) (*LCDPanel, error) {
	if err := initHost(); err != nil {
		return nil, err
	}
	p, err := spireg.Open("SPI0.1")
	if err != nil {
		return nil, err
	}
	// USE GPIO9 to send data/commands
	// https://pinout.xyz/pinout/pirate_audio_line_out#
	dev, err := st7789.NewSPI(p.(spi.Port), gpioreg.ByName("GPIO9"), &st7789.DefaultOpts)
	if err != nil {
		p.Close()
		return nil, err
	}
	fmt.Println("Displaying on st7789")
	return &LCDPanel{
		p:      p,
		dev:    dev,
		bounds: image.Rect(0, 0, cfg.Layout.Width, cfg.Layout.Height),
	}, nil
}

func (l *LCDPanel) Bounds() image.Rectangle {
	return l.bounds
}

// letterbox returns the destination of a w x h image scaled to fit a
// size x size square.
func letterbox(w, h, size int) image.Rectangle {
	if w >= h {
		dh := h * size / w
		y := (size - dh) / 2
		return image.Rect(0, y, size, y+dh)
	}
	dw := w * size / h
	x := (size - dw) / 2
	return image.Rect(x, 0, x+dw, size)
}

func scaleToSquare(img image.Image, size int) *image.RGBA {
	frame := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.Draw(frame, frame.Bounds(), image.NewUniform(color.Black), image.Point{}, xdraw.Src)
	b := img.Bounds()
	xdraw.ApproxBiLinear.Scale(frame, letterbox(b.Dx(), b.Dy(), size), img, b, xdraw.Over, nil)
	return frame
}

func (l *LCDPanel) Refresh(img image.Image, r image.Rectangle, partial bool) error {
	l.dev.DrawRAW(scaleToSquare(img, lcdSize))
	return nil
}

// SetLevel switches the screen off at level 0 and on otherwise.
func (l *LCDPanel) SetLevel(level uint8) error {
	if level == 0 {
		l.dev.PowerOff()
	} else {
		l.dev.PowerOn()
	}
	return nil
}

func (l *LCDPanel) Close() error {
	return l.p.Close()
}
