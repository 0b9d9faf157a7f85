package pkg

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kubesail/pibox-badge/assets/qr"
	"github.com/kubesail/pibox-badge/content"
)

func TestBadgeDrawPlaceholders(t *testing.T) {
	d := newFakeDisplay()
	cfg := DefaultConfig()
	b := NewBadge(d, cfg.Layout, PlaceholderSections(), qr.BitMatrix, cfg.QR)
	assert.Equal(t, StateIdle, b.State())

	require.NoError(t, b.Draw())

	assert.Equal(t, StateRefreshed, b.State())
	require.GreaterOrEqual(t, len(d.ops), 3)
	assert.Equal(t, op{name: "pen", pen: PenWhite}, d.ops[0])
	assert.Equal(t, op{name: "clear", pen: PenWhite}, d.ops[1])
	assert.Equal(t, op{name: "update"}, d.ops[2])

	assert.Len(t, d.named("update"), 1)
	assert.Equal(t, []op{{name: "partial", rect: image.Rect(168, 0, 296, 128)}}, d.named("partial"))
	assert.Empty(t, d.named("text"))
	assert.Len(t, d.named("rect"), 625)
}

func TestBadgeDrawTextSections(t *testing.T) {
	d := newFakeDisplay()
	cfg := DefaultConfig()
	rec := content.Record{
		Company:      "Acme",
		Name:         "Jane Doe",
		Detail1Title: "Role",
		Detail1Text:  "Engineer",
		Detail2Title: "Team",
		Detail2Text:  "Platform",
	}
	b := NewBadge(d, cfg.Layout, TextSections(rec, nil), qr.BitMatrix, cfg.QR)

	require.NoError(t, b.Draw())

	assert.Len(t, d.named("update"), 1)
	assert.Equal(t, []op{
		{name: "partial", rect: image.Rect(0, 0, 168, 128)},
		{name: "partial", rect: image.Rect(168, 0, 296, 128)},
	}, d.named("partial"))

	var texts []string
	for _, o := range d.named("text") {
		texts = append(texts, o.text)
	}
	assert.Equal(t, []string{"Acme", "Jane Doe", "Role", "Engineer", "Team", "Platform"}, texts)
}

func TestBadgeDrawUpdateError(t *testing.T) {
	d := newFakeDisplay()
	d.updateErr = errors.New("busy timeout")
	cfg := DefaultConfig()
	b := NewBadge(d, cfg.Layout, PlaceholderSections(), qr.BitMatrix, cfg.QR)

	assert.EqualError(t, b.Draw(), "busy timeout")
	assert.Equal(t, StateIdle, b.State())
	assert.Empty(t, d.named("rect"))
	assert.Empty(t, d.named("partial"))
}

func TestBadgeDrawQRError(t *testing.T) {
	d := newFakeDisplay()
	d.partialErr = errors.New("spi down")
	cfg := DefaultConfig()
	b := NewBadge(d, cfg.Layout, PlaceholderSections(), qr.BitMatrix, cfg.QR)

	assert.Error(t, b.Draw())
	assert.Equal(t, StatePainted, b.State())
}

func TestSetup(t *testing.T) {
	d := newFakeDisplay()
	require.NoError(t, Setup(d, DefaultConfig()))
	assert.Equal(t, uint8(5), d.led)
	assert.Equal(t, UpdateNormal, d.speed)
	assert.Equal(t, 2, d.thickness)

	d = newFakeDisplay()
	d.speedErr = ErrSpeed
	err := Setup(d, DefaultConfig())
	assert.ErrorIs(t, err, ErrSpeed)
	assert.ErrorContains(t, err, "setting update speed")

	d = newFakeDisplay()
	d.ledErr = errors.New("no gpio")
	assert.ErrorContains(t, Setup(d, DefaultConfig()), "setting LED: no gpio")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "cleared", StateCleared.String())
	assert.Equal(t, "refreshed", StateRefreshed.String())
	assert.Equal(t, "State(9)", State(9).String())
}
