// Command qrgen encodes text into a QR code and prints it to the terminal
// or writes it to a PNG or SVG file.
package main

import (
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"github.com/pkg/errors"

	"github.com/ericlevine/qrgen/charset"
	"github.com/ericlevine/qrgen/qrcode"
	"github.com/ericlevine/qrgen/render"
)

var g = struct {
	level   string // error correction level
	minVer  int    // minimum version
	maxVer  int    // maximum version
	mask    int    // forced mask, -1 for auto
	boost   bool   // boost error correction
	eci     int    // ECI assignment, -1 for none
	scale   int    // module size in pixels
	border  int    // quiet zone in modules
	rounded bool   // rounded image frame
	out     string // output file
}{
	level:  "L",
	minVer: int(qrcode.MinVersion),
	maxVer: int(qrcode.MaxVersion),
	mask:   -1,
	eci:    -1,
	scale:  6,
	border: render.DefaultBorder,
}

func init() {
	getopt.FlagLong(&g.level, "level", 'l', "error correction level (L, M, Q, H)")
	getopt.FlagLong(&g.minVer, "min-version", 'v', "minimum version (1-40)")
	getopt.FlagLong(&g.maxVer, "max-version", 'V', "maximum version (1-40)")
	getopt.FlagLong(&g.mask, "mask", 'm', "force mask pattern (0-7)")
	getopt.FlagLong(&g.boost, "boost", 'b', "boost error correction when it fits")
	getopt.FlagLong(&g.eci, "eci", 'e', "ECI assignment number (3, 20, 26, 899)")
	getopt.FlagLong(&g.scale, "scale", 's', "module size in pixels for image output")
	getopt.FlagLong(&g.border, "border", 'B', "quiet zone width in modules")
	getopt.FlagLong(&g.rounded, "rounded", 'r', "rounded frame for image output")
	getopt.FlagLong(&g.out, "output", 'o', "output file (.png or .svg)")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("qrgen: ")
	getopt.Parse()

	text, err := inputText(getopt.Args())
	if err != nil {
		log.Fatal(err)
	}

	qr, err := encode(text)
	if err != nil {
		log.Fatal(err)
	}

	if err := write(qr); err != nil {
		log.Fatal(err)
	}
}

func inputText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.Wrap(err, "reading standard input")
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

func encode(text string) (*qrcode.QRCode, error) {
	var ecl qrcode.ErrorCorrectionLevel
	switch strings.ToUpper(g.level) {
	case "L":
		ecl = qrcode.ECLevelL
	case "M":
		ecl = qrcode.ECLevelM
	case "Q":
		ecl = qrcode.ECLevelQ
	case "H":
		ecl = qrcode.ECLevelH
	default:
		return nil, errors.Errorf("unknown error correction level %q", g.level)
	}
	if g.minVer < int(qrcode.MinVersion) || g.maxVer > int(qrcode.MaxVersion) || g.minVer > g.maxVer {
		return nil, errors.Errorf("invalid version range %d-%d", g.minVer, g.maxVer)
	}

	opts := qrcode.EncodeOptions{
		ECLevel:    ecl,
		MinVersion: qrcode.Version(g.minVer),
		MaxVersion: qrcode.Version(g.maxVer),
		BoostECL:   g.boost,
	}
	if g.mask >= 0 {
		if g.mask > 7 {
			return nil, errors.Errorf("invalid mask %d", g.mask)
		}
		mask := qrcode.Mask(g.mask)
		opts.Mask = &mask
	}

	if g.eci >= 0 {
		segs, err := charset.Segments(text, uint32(g.eci))
		if err != nil {
			return nil, err
		}
		return qrcode.EncodeSegments(segs, opts)
	}
	return qrcode.EncodeText(text, opts)
}

func write(qr *qrcode.QRCode) error {
	if g.out == "" {
		if isatty.IsTerminal(os.Stdout.Fd()) {
			fmt.Print(render.String(qr, g.border))
		} else {
			fmt.Print(render.SVG(qr, render.SVGConfig{Border: g.border}))
		}
		return nil
	}

	switch {
	case strings.HasSuffix(g.out, ".svg"):
		svg := render.SVG(qr, render.SVGConfig{Border: g.border})
		return errors.Wrap(os.WriteFile(g.out, []byte(svg), 0o644), "writing SVG")
	case strings.HasSuffix(g.out, ".png"):
		style := render.FrameSquare
		if g.rounded {
			style = render.FrameRounded
		}
		img, err := render.Image(qr, render.ImageConfig{
			Scale:  g.scale,
			Border: g.border,
			Style:  style,
		})
		if err != nil {
			return err
		}
		f, err := os.Create(g.out)
		if err != nil {
			return errors.Wrap(err, "creating output file")
		}
		defer f.Close()
		return errors.Wrap(png.Encode(f, img), "encoding PNG")
	default:
		return errors.Errorf("unsupported output format %q", g.out)
	}
}
