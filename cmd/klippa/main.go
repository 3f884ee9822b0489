// Command klippa clips WKT geometries against a rectangular window.
//
// It reads one WKT geometry per line from a file or stdin, clips each
// against the window given by -rect, and prints the surviving parts as
// WKT. With -png it additionally renders the window and the clipped
// geometries to an image:
//
//	klippa -rect 0,0,4,4 -in shapes.wkt -png out.png
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"

	"github.com/klippa-geo/klippa"
	"github.com/klippa-geo/klippa/internal/render"
)

// fill and edge come from the -fill and -edge flags.
var (
	fill    color.RGBA
	edge    color.RGBA
	subject = color.RGBA{0xBB, 0xBB, 0xBB, 0xFF}
	outline = color.RGBA{0x66, 0x66, 0x66, 0xFF}
)

func main() {
	var (
		rectFlag = flag.String("rect", "0,0,1,1", "clip window as x0,y0,x1,y1")
		inFile   = flag.String("in", "", "input file with one WKT geometry per line (default stdin)")
		pngFile  = flag.String("png", "", "render the result to this PNG file")
		size     = flag.Int("size", 512, "PNG canvas size in pixels")
		fillFlag = flag.String("fill", "#AEC7E8", "fill color for clipped polygons (hex)")
		edgeFlag = flag.String("edge", "#1F77B4", "stroke color for clipped geometry (hex)")
		verbose  = flag.Bool("v", false, "log clipping diagnostics")
	)
	flag.Parse()

	var err error
	if fill, err = parseHexColor(*fillFlag); err != nil {
		log.Fatalf("Bad -fill: %v", err)
	}
	if edge, err = parseHexColor(*edgeFlag); err != nil {
		log.Fatalf("Bad -edge: %v", err)
	}

	if *verbose {
		klippa.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	win, err := parseRect(*rectFlag)
	if err != nil {
		log.Fatalf("Bad -rect: %v", err)
	}

	in := io.Reader(os.Stdin)
	if *inFile != "" {
		f, err := os.Open(*inFile)
		if err != nil {
			log.Fatalf("Failed to open input: %v", err)
		}
		defer func() {
			_ = f.Close()
		}()
		in = f
	}

	subjects, clipped, err := clipLines(win, in, os.Stdout)
	if err != nil {
		log.Fatalf("Failed to clip: %v", err)
	}

	if *pngFile != "" {
		if err := writePNG(*pngFile, *size, win, subjects, clipped); err != nil {
			log.Fatalf("Failed to render: %v", err)
		}
		log.Printf("Rendered %d of %d geometries to %s (%dx%d)", len(clipped), len(subjects), *pngFile, *size, *size)
	}
}

// parseHexColor parses #RGB, #RRGGBB, and #RRGGBBAA colors. The 8-digit
// form is alpha-premultiplied for compositing.
func parseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}

	switch len(hex) {
	case 3:
		return color.RGBA{
			R: uint8((v >> 8 & 0xF) * 17),
			G: uint8((v >> 4 & 0xF) * 17),
			B: uint8((v & 0xF) * 17),
			A: 0xFF,
		}, nil
	case 6:
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
	case 8:
		a := uint8(v)
		pm := func(c uint8) uint8 { return uint8(uint32(c) * uint32(a) / 255) }
		return color.RGBA{R: pm(uint8(v >> 24)), G: pm(uint8(v >> 16)), B: pm(uint8(v >> 8)), A: a}, nil
	}
	return color.RGBA{}, fmt.Errorf("bad color %q, want RGB, RRGGBB or RRGGBBAA", s)
}

// parseRect parses a window of the form "x0,y0,x1,y1".
func parseRect(s string) (klippa.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return klippa.Rect{}, fmt.Errorf("want x0,y0,x1,y1, got %q", s)
	}
	var v [4]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return klippa.Rect{}, fmt.Errorf("coordinate %d: %w", i, err)
		}
		v[i] = f
	}
	return klippa.NewRect(v[0], v[1], v[2], v[3]), nil
}

// clipLines clips each WKT line from in against win, writing survivors
// to out. It returns every parsed subject alongside the clip results so
// the renderer can show the uncut geometry as context. Blank lines and
// lines starting with # are skipped.
func clipLines(win klippa.Rect, in io.Reader, out io.Writer) (subjects, clipped []orb.Geometry, err error) {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		g, err := wkt.Unmarshal(text)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", line, err)
		}
		subjects = append(subjects, g)
		c := win.Clip(g)
		if c == nil {
			continue
		}
		clipped = append(clipped, c)
		fmt.Fprintln(out, wkt.MarshalString(c))
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	return subjects, clipped, nil
}

// writePNG renders the subjects as context, the clip results on top, and
// the window outline last.
func writePNG(path string, size int, win klippa.Rect, subjects, clipped []orb.Geometry) error {
	bound := win.Bound()
	for _, g := range subjects {
		bound = bound.Union(g.Bound())
	}

	c := render.NewCanvas(size, size, bound)
	for _, g := range subjects {
		c.Stroke(g, 1, subject)
	}
	for _, g := range clipped {
		switch g.(type) {
		case orb.Ring, orb.Polygon, orb.MultiPolygon:
			c.Fill(g, fill)
			c.Stroke(g, 2, edge)
		case orb.Point, orb.MultiPoint:
			c.Stroke(g, 4, edge)
		default:
			c.Stroke(g, 2, edge)
		}
	}
	c.Stroke(win.Bound().ToRing(), 1.5, outline)

	return c.SavePNG(path)
}
