package pkg

import (
	"bytes"
	"image"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/kubesail/pibox-badge/content"
)

// Section paints one part of the text column into the buffer.
type Section interface {
	Draw(d Display, l Layout)
}

// Placeholder leaves its part of the badge blank.
type Placeholder struct{}

func (Placeholder) Draw(Display, Layout) {}

// CompanySection is a black band across the top with the company name in
// white, preceded by an optional logo.
type CompanySection struct {
	Text string
	Logo image.Image
}

func (s CompanySection) Draw(d Display, l Layout) {
	tw := l.TextWidth()
	d.SetPen(PenBlack)
	d.Rectangle(1, 1, tw, l.CompanyHeight-1)

	x := l.LeftPadding
	if s.Logo != nil {
		b := s.Logo.Bounds()
		d.Image(s.Logo, x, (l.CompanyHeight-b.Dy())/2)
		x += b.Dx() + l.LeftPadding
	}

	d.SetPen(PenWhite)
	text := Truncate(d, s.Text, l.CompanyTextSize, tw-x-l.LeftPadding)
	d.Text(text, x, l.CompanyHeight/2+1, l.CompanyTextSize)
}

// NameSection centres the attendee name, shrinking it until it fits.
type NameSection struct {
	Text string
}

func (s NameSection) Draw(d Display, l Layout) {
	tw := l.TextWidth()
	d.SetPen(PenWhite)
	d.Rectangle(1, l.CompanyHeight+1, tw, l.NameHeight())

	d.SetPen(PenBlack)
	size := FitSize(d, s.Text, l.NameTextSize, l.NameTextStep, tw-l.NamePadding*2)
	w := d.MeasureText(s.Text, size)
	d.Text(s.Text, (tw-w)/2, l.NameHeight()/2+l.CompanyHeight+1, size)
}

// DetailSection is one of the two title/value rows at the bottom. Row 0 is
// the upper one.
type DetailSection struct {
	Row   int
	Title string
	Text  string
}

func (s DetailSection) Draw(d Display, l Layout) {
	tw := l.TextWidth()
	top := l.Height - l.DetailsHeight*(2-s.Row)
	d.SetPen(PenBlack)
	d.Rectangle(1, top, tw, l.DetailsHeight-1)

	d.SetPen(PenWhite)
	size := l.DetailsTextSize
	y := top + l.DetailsHeight/2
	title := Truncate(d, s.Title, size, tw-l.LeftPadding*2)
	d.Text(title, l.LeftPadding, y, size)

	x := l.LeftPadding + d.MeasureText(title, size) + l.DetailSpacing
	d.Text(Truncate(d, s.Text, size, tw-x-l.LeftPadding), x, y, size)
}

// PlaceholderSections returns the four blank sections.
func PlaceholderSections() []Section {
	return []Section{Placeholder{}, Placeholder{}, Placeholder{}, Placeholder{}}
}

// TextSections returns company, name and both detail rows for rec.
func TextSections(rec content.Record, logo image.Image) []Section {
	return []Section{
		CompanySection{Text: rec.Company, Logo: logo},
		NameSection{Text: rec.Name},
		DetailSection{Row: 0, Title: rec.Detail1Title, Text: rec.Detail1Text},
		DetailSection{Row: 1, Title: rec.Detail2Title, Text: rec.Detail2Text},
	}
}

// LoadLogo rasterizes the SVG at path into a size x size image.
func LoadLogo(path string, size int) (image.Image, error) {
	svgData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}
