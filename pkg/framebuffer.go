package pkg

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"strings"

	"github.com/gonutz/framebuffer"
)

var graphicsRoot = "/sys/class/graphics"

var ErrNoFramebuffer = errors.New("no matching framebuffer")

// FindFramebuffer returns the fbN device whose sysfs name matches driver.
func FindFramebuffer(root, driver string) (string, error) {
	items, err := os.ReadDir(root)
	if err != nil {
		return "", fmt.Errorf("could not enumerate framebuffers: %w", err)
	}
	for _, item := range items {
		if item.Name() == "fbcon" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(root, item.Name(), "name"))
		if err != nil {
			continue
		}
		if strings.TrimSpace(string(data)) == driver {
			return item.Name(), nil
		}
	}
	return "", fmt.Errorf("%w for driver %q", ErrNoFramebuffer, driver)
}

// FramebufferPanel draws the badge in the top left corner of a Linux
// framebuffer.
type FramebufferPanel struct {
	fb     draw.Image
	closer func() error
	bounds image.Rectangle
}

func OpenFramebufferPanel(cfg Config) (*FramebufferPanel, error) {
	name := cfg.Framebuffer
	if name == "" {
		var err error
		if name, err = FindFramebuffer(graphicsRoot, cfg.FramebufferDriver); err != nil {
			return nil, err
		}
	}
	fb, err := framebuffer.Open("/dev/" + name)
	if err != nil {
		return nil, err
	}
	fmt.Println("Displaying on " + name)
	closer := func() error {
		fb.Close()
		return nil
	}
	return newFramebufferPanel(fb, closer, cfg.Layout.Width, cfg.Layout.Height), nil
}

func newFramebufferPanel(fb draw.Image, closer func() error, width, height int) *FramebufferPanel {
	return &FramebufferPanel{
		fb:     fb,
		closer: closer,
		bounds: image.Rect(0, 0, width, height),
	}
}

func (p *FramebufferPanel) Bounds() image.Rectangle {
	return p.bounds
}

func (p *FramebufferPanel) Refresh(img image.Image, r image.Rectangle, partial bool) error {
	if !partial {
		r = p.bounds
	}
	draw.Draw(p.fb, r, img, r.Min, draw.Src)
	return nil
}

func (p *FramebufferPanel) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer()
}
