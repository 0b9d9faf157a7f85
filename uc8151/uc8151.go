package uc8151

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/host/v3/rpi"
)

// Commands
const (
	panelSetting           byte = 0x00
	powerSetting           byte = 0x01
	powerOff               byte = 0x02
	powerOffSequence       byte = 0x03
	powerOn                byte = 0x04
	boosterSoftStart       byte = 0x06
	deepSleep              byte = 0x07
	dataStartTransmission1 byte = 0x10
	dataStop               byte = 0x11
	displayRefresh         byte = 0x12
	dataStartTransmission2 byte = 0x13
	pllControl             byte = 0x30
	temperatureSensor      byte = 0x41
	vcomDataInterval       byte = 0x50
	tconSetting            byte = 0x60
	resolutionSetting      byte = 0x61
	partialWindowCmd       byte = 0x90
	partialIn              byte = 0x91
	partialOut             byte = 0x92
)

// PSR flags
const (
	res128x296 byte = 0b10000000
	lutOTP     byte = 0b00000000
	lutREG     byte = 0b00100000
	formatBW   byte = 0b00010000
	scanUp     byte = 0b00001000
	shiftRight byte = 0b00000100
	boosterOn  byte = 0b00000010
	resetNone  byte = 0b00000001
)

// PWR, BTST, PFS and PLL values
const (
	vdsInternal byte = 0b10
	vdgInternal byte = 0b01
	vcomVD      byte = 0b000
	vghl16V     byte = 0b00

	boosterStart10ms byte = 0b00000000
	boosterStrength3 byte = 0b00010000
	boosterOff6_58us byte = 0b00000111

	frames1 byte = 0b00000000

	pll100Hz byte = 0b00111010

	deepSleepCheck byte = 0xA5
)

// Speed selects the refresh waveform.
type Speed int

const (
	Default Speed = iota
	Medium
	Fast
	Turbo
)

var (
	ErrUnsupportedSpeed = errors.New("uc8151: only the default update speed is supported")
	ErrUnaligned        = errors.New("uc8151: partial window y and height must be multiples of 8")
	ErrBusyTimeout      = errors.New("uc8151: timed out waiting for the controller")
)

// Opts defines the panel configuration.
type Opts struct {
	Width  int
	Height int

	// Inverted swaps black and white on the glass.
	Inverted bool

	// UpsideDown rotates the output by 180 degrees.
	UpsideDown bool

	// BusyTimeout bounds each wait on the busy line. Zero waits forever.
	BusyTimeout time.Duration
}

// Badger2in9 is the 2.9" 296x128 panel.
var Badger2in9 = Opts{
	Width:       296,
	Height:      128,
	BusyTimeout: 10 * time.Second,
}

// Dev is a handle to a UC8151 panel.
type Dev struct {
	c conn.Conn

	dc   gpio.PinOut
	cs   gpio.PinOut
	rst  gpio.PinOut
	busy gpio.PinIn

	opts   *Opts
	speed  Speed
	buffer *image1bit.VerticalLSB
}

// New creates a handle to the display. cs may be nil when the SPI port
// drives chip select itself.
func New(p spi.Port, dc, cs, rst gpio.PinOut, busy gpio.PinIn, opts *Opts) (*Dev, error) {
	if opts.Height%8 != 0 {
		return nil, fmt.Errorf("uc8151: height %d is not a multiple of 8", opts.Height)
	}
	c, err := p.Connect(4*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("uc8151: %w", err)
	}

	d := &Dev{
		c:      c,
		dc:     dc,
		cs:     cs,
		rst:    rst,
		busy:   busy,
		opts:   opts,
		buffer: image1bit.NewVerticalLSB(image.Rect(0, 0, opts.Width, opts.Height)),
	}
	draw.Src.Draw(d.buffer, d.buffer.Bounds(), image.NewUniform(image1bit.On), image.Point{})
	return d, nil
}

// NewHat creates a handle using the Raspberry Pi e-paper HAT wiring.
func NewHat(p spi.Port, opts *Opts) (*Dev, error) {
	dc := rpi.P1_22
	cs := rpi.P1_24
	rst := rpi.P1_11
	busy := rpi.P1_18
	return New(p, dc, cs, rst, busy, opts)
}

// Init resets the controller and programs the panel registers.
func (d *Dev) Init() error {
	eh := errorHandler{d: d}
	eh.reset()
	initDisplay(&eh, d.opts, d.speed)
	return eh.err
}

// SetSpeed selects the refresh waveform. Only Default, which uses the
// waveform stored in the controller's OTP memory, is supported.
func (d *Dev) SetSpeed(s Speed) error {
	if s != Default {
		return fmt.Errorf("%w (got %d)", ErrUnsupportedSpeed, s)
	}
	d.speed = s
	return nil
}

// Speed returns the current refresh waveform.
func (d *Dev) Speed() Speed {
	return d.speed
}

// ColorModel returns a 1Bit color model.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the bounds for the configured display.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.opts.Width, d.opts.Height)
}

// Draw copies src into the frame buffer and refreshes the whole panel.
func (d *Dev) Draw(dstRect image.Rectangle, src image.Image, sp image.Point) error {
	draw.Src.Draw(d.buffer, dstRect, src, sp)

	eh := errorHandler{d: d}
	updateFull(&eh, packFrame(d.buffer, d.opts.Width, d.opts.Height))
	return eh.err
}

// DrawPartial copies src into the frame buffer and refreshes only dstRect.
func (d *Dev) DrawPartial(dstRect image.Rectangle, src image.Image, sp image.Point) error {
	if dstRect.Min.Y%8 != 0 || dstRect.Dy()%8 != 0 {
		return ErrUnaligned
	}
	r := dstRect.Intersect(d.Bounds())
	if r.Empty() {
		return nil
	}
	draw.Src.Draw(d.buffer, dstRect, src, sp)

	frame := packFrame(d.buffer, d.opts.Width, d.opts.Height)
	eh := errorHandler{d: d}
	updatePartial(&eh, r, frameColumns(frame, d.opts.Height, r))
	return eh.err
}

// Clear fills the panel with c and refreshes it.
func (d *Dev) Clear(c color.Color) error {
	return d.Draw(d.Bounds(), image.NewUniform(c), image.Point{})
}

// Halt powers the panel down and puts the controller into deep sleep. The
// image stays on the glass.
func (d *Dev) Halt() error {
	eh := errorHandler{d: d}
	eh.sendCommand(powerOff)
	eh.waitUntilIdle()
	eh.sendCommand(deepSleep)
	eh.sendData([]byte{deepSleepCheck})
	return eh.err
}

// String returns a string containing configuration information.
func (d *Dev) String() string {
	return fmt.Sprintf("uc8151.Dev{%s, %s, Width: %d, Height: %d}", d.c, d.dc, d.opts.Width, d.opts.Height)
}

var _ display.Drawer = &Dev{}
