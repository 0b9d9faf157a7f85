package pkg

import (
	"fmt"

	"github.com/kubesail/pibox-badge/bitmatrix"
)

// State tracks how far a Badge has got through a render pass.
type State int

const (
	StateIdle State = iota
	StateCleared
	StatePainted
	StateRefreshed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCleared:
		return "cleared"
	case StatePainted:
		return "painted"
	case StateRefreshed:
		return "refreshed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Badge renders the full layout onto a Display.
type Badge struct {
	display  Display
	layout   Layout
	sections []Section
	qr       bitmatrix.Matrix
	qrOpts   QROptions

	state State
}

// NewBadge creates a badge drawing sections in order (company, name, detail
// 1, detail 2) followed by qr.
func NewBadge(d Display, l Layout, sections []Section, qr bitmatrix.Matrix, opts QROptions) *Badge {
	return &Badge{
		display:  d,
		layout:   l,
		sections: sections,
		qr:       qr,
		qrOpts:   opts,
	}
}

func (b *Badge) State() State {
	return b.state
}

// Setup applies the LED level, update speed and line thickness.
func Setup(d Display, cfg Config) error {
	if err := d.SetLED(cfg.LED); err != nil {
		return fmt.Errorf("setting LED: %w", err)
	}
	if err := d.SetUpdateSpeed(cfg.UpdateSpeed); err != nil {
		return fmt.Errorf("setting update speed: %w", err)
	}
	d.SetThickness(cfg.Thickness)
	return nil
}

// Draw clears the panel to white, paints the sections and the QR code and
// refreshes the QR region. Text sections add one partial refresh of the
// text column. The first failing step aborts the pass.
func (b *Badge) Draw() error {
	b.state = StateIdle

	b.display.SetPen(PenWhite)
	b.display.Clear()
	if err := b.display.Update(); err != nil {
		return err
	}
	b.state = StateCleared

	painted := false
	for _, s := range b.sections {
		s.Draw(b.display, b.layout)
		if _, ok := s.(Placeholder); !ok {
			painted = true
		}
	}
	if painted {
		if err := b.display.PartialUpdate(b.layout.TextRegion()); err != nil {
			return err
		}
	}
	b.state = StatePainted

	if err := DrawQRCode(b.display, b.qr, b.layout.QRRegion(), b.qrOpts); err != nil {
		return err
	}
	b.state = StateRefreshed
	return nil
}
