package pkg

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kubesail/pibox-badge/assets/qr"
	"github.com/kubesail/pibox-badge/content"
)

func TestPNGPanel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "badge.png")
	cfg := DefaultConfig()
	cfg.Panel = "png"
	cfg.PreviewPath = path

	panel, led, err := OpenPanel(cfg)
	require.NoError(t, err)
	assert.Nil(t, led)
	p, ok := panel.(*PNGPanel)
	require.True(t, ok)

	s, err := NewSurface(p, led)
	require.NoError(t, err)
	rec, err := content.Default()
	require.NoError(t, err)
	b := NewBadge(s, cfg.Layout, TextSections(rec, nil), qr.BitMatrix, cfg.QR)
	require.NoError(t, b.Draw())
	assert.Equal(t, 3, p.Refreshes)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 296, 128), img.Bounds())
	// Company band is black, QR padding white.
	assert.Equal(t, uint8(0), grayAt(img, 150, 3))
	assert.Equal(t, uint8(255), grayAt(img, 169, 0))

	require.NoError(t, p.Close())
}

func TestOpenPanelUnknown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Panel = "oled"
	_, _, err := OpenPanel(cfg)
	assert.EqualError(t, err, `unknown panel "oled"`)
}
