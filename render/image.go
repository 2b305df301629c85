package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"

	"github.com/ericlevine/qrgen/qrcode"
)

// FrameStyle selects the shape of the image background.
type FrameStyle int

const (
	// FrameSquare fills the whole image with the background color.
	FrameSquare FrameStyle = iota
	// FrameRounded fills a rounded rectangle, leaving the corners
	// transparent.
	FrameRounded
)

// ImageConfig configures raster rendering.
type ImageConfig struct {
	// Scale is the module size in pixels. Zero defaults to 6.
	Scale int

	// Border is the quiet zone width in modules. Zero is a valid value;
	// use DefaultBorder for the standard quiet zone.
	Border int

	// Foreground and Background default to black on white when nil.
	Foreground color.Color
	Background color.Color

	// Style selects a square or rounded frame.
	Style FrameStyle
}

// DefaultBorder is the quiet zone width recommended by the standard.
const DefaultBorder = 4

// Image renders the symbol into an in-memory raster image.
func Image(qr *qrcode.QRCode, cfg ImageConfig) (image.Image, error) {
	if cfg.Scale == 0 {
		cfg.Scale = 6
	}
	if cfg.Scale < 0 {
		return nil, errors.New("render: scale must be positive")
	}
	if cfg.Border < 0 {
		return nil, errors.New("render: border must be non-negative")
	}
	fg := cfg.Foreground
	if fg == nil {
		fg = color.Black
	}
	bg := cfg.Background
	if bg == nil {
		bg = color.White
	}

	dim := (qr.Size() + 2*cfg.Border) * cfg.Scale
	dc := gg.NewContext(dim, dim)

	switch cfg.Style {
	case FrameSquare:
		dc.SetColor(bg)
		dc.Clear()
	case FrameRounded:
		radius := float64(cfg.Border*cfg.Scale) / 2
		dc.DrawRoundedRectangle(0, 0, float64(dim), float64(dim), radius)
		dc.SetColor(bg)
		dc.Fill()
	default:
		return nil, errors.Errorf("render: unknown frame style %d", cfg.Style)
	}

	dc.SetColor(fg)
	scale := float64(cfg.Scale)
	for y := 0; y < qr.Size(); y++ {
		for x := 0; x < qr.Size(); x++ {
			if qr.Module(x, y) {
				dc.DrawRectangle(float64(x+cfg.Border)*scale, float64(y+cfg.Border)*scale, scale, scale)
			}
		}
		dc.Fill()
	}

	return dc.Image(), nil
}
