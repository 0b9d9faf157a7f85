package pkg

import (
	"image"
	"os"
	"strconv"

	"github.com/kubesail/pibox-badge/content"
)

// Layout holds the badge geometry in display pixels.
//
//	┌─────────────────┬────────┐
//	│ company         │        │
//	├─────────────────┤        │
//	│ name            │   QR   │
//	├─────────────────┤        │
//	│ detail 1        │        │
//	├─────────────────┤        │
//	│ detail 2        │        │
//	└─────────────────┴────────┘
type Layout struct {
	Width  int
	Height int

	QRWidth  int
	QRHeight int

	CompanyHeight int
	DetailsHeight int

	CompanyTextSize float64
	DetailsTextSize float64
	NameTextSize    float64 // starting size, shrunk until the name fits
	NameTextStep    float64

	LeftPadding   int
	NamePadding   int
	DetailSpacing int
}

func (l Layout) NameHeight() int {
	return l.Height - l.CompanyHeight - l.DetailsHeight*2 - 2
}

func (l Layout) TextWidth() int {
	return l.Width - l.QRWidth - 1
}

// QRRegion is the square at the right edge holding the QR code.
func (l Layout) QRRegion() image.Rectangle {
	return image.Rect(l.Width-l.QRWidth, 0, l.Width, l.QRHeight)
}

// TextRegion is the column left of the QR code.
func (l Layout) TextRegion() image.Rectangle {
	return image.Rect(0, 0, l.Width-l.QRWidth, l.Height)
}

func DefaultLayout() Layout {
	return Layout{
		Width:           296,
		Height:          128,
		QRWidth:         128,
		QRHeight:        128,
		CompanyHeight:   30,
		DetailsHeight:   20,
		CompanyTextSize: 0.6,
		DetailsTextSize: 0.5,
		NameTextSize:    2.0,
		NameTextStep:    0.01,
		LeftPadding:     5,
		NamePadding:     20,
		DetailSpacing:   10,
	}
}

type Config struct {
	Layout Layout

	ContentPath string

	// Panel selects the output: "uc8151", "fb", "lcd" or "png".
	Panel             string
	SPIPort           string
	Framebuffer       string // device name under /dev, looked up by driver when empty
	FramebufferDriver string
	PreviewPath       string
	LogoPath          string

	// Sections draws the text column instead of leaving it blank.
	Sections bool

	LED         uint8
	LEDPin      int
	UpdateSpeed UpdateSpeed
	Thickness   int

	QR QROptions
}

func DefaultConfig() Config {
	return Config{
		Layout:            DefaultLayout(),
		ContentPath:       content.DefaultPath,
		Panel:             "uc8151",
		SPIPort:           "SPI0.0",
		FramebufferDriver: "fb_st7789v",
		PreviewPath:       "badge.png",
		LED:               5,
		LEDPin:            22,
		UpdateSpeed:       UpdateNormal,
		Thickness:         2,
		QR:                QROptions{Stride: 5},
	}
}

// FromEnv applies BADGE_* overrides to c.
func (c Config) FromEnv() Config {
	if v := os.Getenv("BADGE_CONTENT"); v != "" {
		c.ContentPath = v
	}
	if v := os.Getenv("BADGE_PANEL"); v != "" {
		c.Panel = v
	}
	if v := os.Getenv("BADGE_FB"); v != "" {
		c.Framebuffer = v
	}
	if v := os.Getenv("BADGE_PREVIEW"); v != "" {
		c.PreviewPath = v
	}
	if v := os.Getenv("BADGE_LOGO"); v != "" {
		c.LogoPath = v
	}
	if v, err := strconv.ParseBool(os.Getenv("BADGE_SECTIONS")); err == nil {
		c.Sections = v
	}
	return c
}
