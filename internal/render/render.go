// Package render rasterizes clip windows and clipped geometries into
// raster images for PNG output.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/paulmach/orb"
	"golang.org/x/image/vector"
)

// Canvas maps a world-coordinate region onto a pixel image. Geometries
// are drawn in world coordinates; the canvas scales uniformly, flips the
// y axis, and centers the region.
type Canvas struct {
	img   *image.RGBA
	bound orb.Bound
	scale float64
	ox    float64
	oy    float64
}

// NewCanvas returns a canvas of the given pixel size showing bound. The
// background starts out white.
func NewCanvas(width, height int, bound orb.Bound) *Canvas {
	const margin = 8.0

	w := bound.Max[0] - bound.Min[0]
	h := bound.Max[1] - bound.Min[1]
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	scale := math.Min((float64(width)-2*margin)/w, (float64(height)-2*margin)/h)
	if scale <= 0 {
		scale = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	return &Canvas{
		img:   img,
		bound: bound,
		scale: scale,
		ox:    (float64(width) - w*scale) / 2,
		oy:    (float64(height) - h*scale) / 2,
	}
}

// pixel projects a world coordinate into image space.
func (c *Canvas) pixel(p orb.Point) (float32, float32) {
	x := c.ox + (p[0]-c.bound.Min[0])*c.scale
	y := c.oy + (c.bound.Max[1]-p[1])*c.scale
	return float32(x), float32(y)
}

// Fill paints the interior of a polygonal geometry. Holes must wind
// opposite to their exterior; the rasterizer then leaves them empty.
func (c *Canvas) Fill(g orb.Geometry, col color.Color) {
	ras := c.newRasterizer()
	switch v := g.(type) {
	case orb.Ring:
		c.fillPolygon(ras, orb.Polygon{v})
	case orb.Polygon:
		c.fillPolygon(ras, v)
	case orb.MultiPolygon:
		for _, poly := range v {
			c.fillPolygon(ras, poly)
		}
	default:
		return
	}
	ras.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

func (c *Canvas) fillPolygon(ras *vector.Rasterizer, poly orb.Polygon) {
	for _, rg := range poly {
		if len(rg) < 3 {
			continue
		}
		x, y := c.pixel(rg[0])
		ras.MoveTo(x, y)
		for _, p := range rg[1:] {
			x, y = c.pixel(p)
			ras.LineTo(x, y)
		}
		ras.ClosePath()
	}
}

// Stroke draws the linework of a geometry at the given pixel width.
// Points and multipoints come out as dots sized by the width.
func (c *Canvas) Stroke(g orb.Geometry, width float64, col color.Color) {
	ras := c.newRasterizer()
	switch v := g.(type) {
	case orb.Point:
		c.dot(ras, v, width)
	case orb.MultiPoint:
		for _, p := range v {
			c.dot(ras, p, width)
		}
	case orb.LineString:
		c.strokeChain(ras, v, width)
	case orb.MultiLineString:
		for _, ls := range v {
			c.strokeChain(ras, ls, width)
		}
	case orb.Ring:
		c.strokeChain(ras, v, width)
	case orb.Polygon:
		for _, rg := range v {
			c.strokeChain(ras, rg, width)
		}
	case orb.MultiPolygon:
		for _, poly := range v {
			for _, rg := range poly {
				c.strokeChain(ras, rg, width)
			}
		}
	default:
		return
	}
	ras.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

func (c *Canvas) newRasterizer() *vector.Rasterizer {
	return vector.NewRasterizer(c.img.Bounds().Dx(), c.img.Bounds().Dy())
}

func (c *Canvas) strokeChain(ras *vector.Rasterizer, pts []orb.Point, width float64) {
	for i := 0; i+1 < len(pts); i++ {
		c.strokeSegment(ras, pts[i], pts[i+1], width)
	}
}

// strokeSegment adds a quad spanning the segment at the given width.
// Adjacent quads overlap at shared vertices, which reads as a joint.
func (c *Canvas) strokeSegment(ras *vector.Rasterizer, a, b orb.Point, width float64) {
	ax, ay := c.pixel(a)
	bx, by := c.pixel(b)
	dx := float64(bx - ax)
	dy := float64(by - ay)
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx := float32(-dy / l * width / 2)
	ny := float32(dx / l * width / 2)

	ras.MoveTo(ax+nx, ay+ny)
	ras.LineTo(bx+nx, by+ny)
	ras.LineTo(bx-nx, by-ny)
	ras.LineTo(ax-nx, ay-ny)
	ras.ClosePath()
}

func (c *Canvas) dot(ras *vector.Rasterizer, p orb.Point, width float64) {
	x, y := c.pixel(p)
	r := float32(width)

	ras.MoveTo(x-r, y-r)
	ras.LineTo(x+r, y-r)
	ras.LineTo(x+r, y+r)
	ras.LineTo(x-r, y+r)
	ras.ClosePath()
}

// Image returns the canvas as an image.
func (c *Canvas) Image() image.Image {
	return c.img
}

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, c.img)
}
