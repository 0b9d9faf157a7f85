package pkg

import (
	"fmt"
	"image"
	"os"

	human "github.com/dustin/go-humanize"
	"github.com/fogleman/gg"
)

// Panel is the physical output behind a Surface.
type Panel interface {
	Bounds() image.Rectangle
	// Refresh shows the r part of img. partial is a hint that only r
	// changed; panels without partial refresh redraw everything.
	Refresh(img image.Image, r image.Rectangle, partial bool) error
	Close() error
}

// Backlight drives the board LED or a screen backlight.
type Backlight interface {
	SetLevel(level uint8) error
}

// PNGPanel writes every refresh to a PNG file, for previewing a badge
// without hardware.
type PNGPanel struct {
	path   string
	bounds image.Rectangle

	Refreshes int
}

func NewPNGPanel(path string, width, height int) *PNGPanel {
	return &PNGPanel{path: path, bounds: image.Rect(0, 0, width, height)}
}

func (p *PNGPanel) Bounds() image.Rectangle {
	return p.bounds
}

func (p *PNGPanel) Refresh(img image.Image, r image.Rectangle, partial bool) error {
	if err := gg.SavePNG(p.path, img); err != nil {
		return err
	}
	p.Refreshes++
	if st, err := os.Stat(p.path); err == nil {
		fmt.Printf("Wrote %s (%s)\n", p.path, human.Bytes(uint64(st.Size())))
	}
	return nil
}

func (p *PNGPanel) Close() error {
	return nil
}

// OpenPanel opens the panel named by cfg.Panel along with its LED, which
// may be nil.
func OpenPanel(cfg Config) (Panel, Backlight, error) {
	switch cfg.Panel {
	case "uc8151":
		p, err := OpenEPDPanel(cfg)
		if err != nil {
			return nil, nil, err
		}
		return p, openLEDOrNil(cfg.LEDPin), nil
	case "fb":
		p, err := OpenFramebufferPanel(cfg)
		if err != nil {
			return nil, nil, err
		}
		return p, openLEDOrNil(cfg.LEDPin), nil
	case "lcd":
		p, err := OpenLCDPanel(cfg)
		if err != nil {
			return nil, nil, err
		}
		return p, p, nil
	case "png":
		return NewPNGPanel(cfg.PreviewPath, cfg.Layout.Width, cfg.Layout.Height), nil, nil
	}
	return nil, nil, fmt.Errorf("unknown panel %q", cfg.Panel)
}

func openLEDOrNil(pin int) Backlight {
	led, err := OpenLED(pin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open LED on pin %d: %v\n", pin, err)
		return nil
	}
	return led
}
