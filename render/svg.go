package render

import (
	"fmt"
	"strings"

	"github.com/ericlevine/qrgen/qrcode"
)

// SVGConfig configures SVG serialization.
type SVGConfig struct {
	// Border is the quiet zone width in modules.
	Border int

	// Foreground and Background are CSS colors. Empty values default to
	// black on white.
	Foreground string
	Background string
}

// SVG renders the symbol as an SVG document with one path covering all dark
// modules. Horizontal runs of dark modules are merged into single path
// commands to keep large symbols compact.
func SVG(qr *qrcode.QRCode, cfg SVGConfig) string {
	if cfg.Border < 0 {
		panic("render: border must be non-negative")
	}
	fg := cfg.Foreground
	if fg == "" {
		fg = "#000000"
	}
	bg := cfg.Background
	if bg == "" {
		bg = "#FFFFFF"
	}

	dimension := qr.Size() + cfg.Border*2
	var sb strings.Builder
	sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	sb.WriteString("<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n")
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %[1]d %[1]d\" stroke=\"none\">\n", dimension)
	fmt.Fprintf(&sb, "\t<rect width=\"100%%\" height=\"100%%\" fill=\"%s\"/>\n", bg)
	sb.WriteString("\t<path d=\"")
	first := true
	for y := 0; y < qr.Size(); y++ {
		for x := 0; x < qr.Size(); {
			if !qr.Module(x, y) {
				x++
				continue
			}
			run := 1
			for x+run < qr.Size() && qr.Module(x+run, y) {
				run++
			}
			if !first {
				sb.WriteByte(' ')
			}
			first = false
			fmt.Fprintf(&sb, "M%d,%dh%dv1h-%dz", x+cfg.Border, y+cfg.Border, run, run)
			x += run
		}
	}
	fmt.Fprintf(&sb, "\" fill=\"%s\"/>\n", fg)
	sb.WriteString("</svg>\n")
	return sb.String()
}
