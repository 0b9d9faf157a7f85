package pkg

import (
	"fmt"
	"image"

	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"

	"github.com/kubesail/pibox-badge/uc8151"
)

type epdDevice interface {
	Bounds() image.Rectangle
	Draw(dstRect image.Rectangle, src image.Image, sp image.Point) error
	DrawPartial(dstRect image.Rectangle, src image.Image, sp image.Point) error
	SetSpeed(s uc8151.Speed) error
	Halt() error
}

// EPDPanel is a UC8151 e-paper panel.
type EPDPanel struct {
	dev  epdDevice
	port spi.PortCloser
}

// OpenEPDPanel opens the SPI port, wires the panel with the HAT pinout and
// runs the controller setup.
func OpenEPDPanel(cfg Config) (*EPDPanel, error) {
	if err := initHost(); err != nil {
		return nil, err
	}
	port, err := spireg.Open(cfg.SPIPort)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", cfg.SPIPort, err)
	}
	opts := uc8151.Badger2in9
	opts.Width = cfg.Layout.Width
	opts.Height = cfg.Layout.Height
	dev, err := uc8151.NewHat(port, &opts)
	if err != nil {
		port.Close()
		return nil, err
	}
	if err := dev.Init(); err != nil {
		port.Close()
		return nil, err
	}
	fmt.Println("Displaying on " + dev.String())
	return &EPDPanel{dev: dev, port: port}, nil
}

func (p *EPDPanel) Bounds() image.Rectangle {
	return p.dev.Bounds()
}

func (p *EPDPanel) Refresh(img image.Image, r image.Rectangle, partial bool) error {
	if partial {
		return p.dev.DrawPartial(r, img, r.Min)
	}
	return p.dev.Draw(p.dev.Bounds(), img, image.Point{})
}

func (p *EPDPanel) SetSpeed(s UpdateSpeed) error {
	return p.dev.SetSpeed(uc8151.Speed(s))
}

func (p *EPDPanel) Close() error {
	err := p.dev.Halt()
	if p.port != nil {
		if cerr := p.port.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
