package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"

	"github.com/kubesail/pibox-badge/assets/qr"
	"github.com/kubesail/pibox-badge/content"
	"github.com/kubesail/pibox-badge/pkg"
)

func main() {
	cfg := pkg.DefaultConfig().FromEnv()
	flag.StringVar(&cfg.ContentPath, "content", cfg.ContentPath, "six line content file, created with placeholders when missing")
	flag.StringVar(&cfg.Panel, "panel", cfg.Panel, "output: uc8151, fb, lcd or png")
	flag.StringVar(&cfg.SPIPort, "spi", cfg.SPIPort, "SPI port of the e-paper panel")
	flag.StringVar(&cfg.Framebuffer, "fb", cfg.Framebuffer, "framebuffer device, looked up by driver name when empty")
	flag.StringVar(&cfg.PreviewPath, "preview", cfg.PreviewPath, "PNG written by the png panel")
	flag.StringVar(&cfg.LogoPath, "logo", cfg.LogoPath, "SVG logo drawn in the company band")
	flag.BoolVar(&cfg.Sections, "sections", cfg.Sections, "draw company, name and details")
	flag.BoolVar(&cfg.QR.Centered, "center-qr", cfg.QR.Centered, "centre the QR code in its region")
	flag.Parse()

	rec, err := content.Load(cfg.ContentPath)
	if err != nil {
		log.Fatalf("Could not load badge content: %v", err)
	}

	panel, led, err := pkg.OpenPanel(cfg)
	if err != nil {
		log.Fatalf("Could not open %s panel: %v", cfg.Panel, err)
	}
	if c, ok := led.(io.Closer); ok {
		defer c.Close()
	}
	defer panel.Close()

	display, err := pkg.NewSurface(panel, led)
	if err != nil {
		log.Fatalf("Could not create drawing surface: %v", err)
	}
	if err := pkg.Setup(display, cfg); err != nil {
		log.Fatalf("Could not set up display: %v", err)
	}

	sections := pkg.PlaceholderSections()
	if cfg.Sections {
		var logo image.Image
		if cfg.LogoPath != "" {
			logo, err = pkg.LoadLogo(cfg.LogoPath, cfg.Layout.CompanyHeight-10)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Could not load logo %s: %v\n", cfg.LogoPath, err)
			}
		}
		sections = pkg.TextSections(rec, logo)
	}

	badge := pkg.NewBadge(display, cfg.Layout, sections, qr.BitMatrix, cfg.QR)
	if err := badge.Draw(); err != nil {
		panel.Close()
		log.Fatalf("Could not draw badge (%s): %v", badge.State(), err)
	}
	fmt.Printf("Badge drawn for %q\n", rec.Name)
}
