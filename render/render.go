package render

import (
	"image"
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/voronoigame/geometry"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// Padding around the polygon, in pixels
	Padding = 40
	// Length of the longer side of the polygon's bounds when no scale is given
	DefaultSize = 600

	pointRadius = 5
)

// Everything that can be drawn for a game. Only Polygon is required.
type Board struct {
	Polygon geometry.Polygon
	Users   []geometry.Point
	// Who won each user: 1 or 2, or 0 for a tie. Users are drawn neutral when
	// this is nil.
	Owners []int
	// First facility, then second.
	Facilities []geometry.Point
	// Regions hidden from the first facility.
	Regions []geometry.VisibilityRegion
}

var (
	userColor    = [3]float64{1, 1, 1}
	playerColors = [][3]float64{{0.6, 0.6, 0.6}, {1, 0.3, 0.2}, {0.2, 0.5, 1}}
)

// Maps polygon coordinates to pixels, with y pointing up.
type transform struct {
	min    r2.Vec
	scale  float64
	height float64
}

func (t transform) apply(p geometry.Point) r2.Vec {
	x, y := p.Float64()
	v := r2.Add(r2.Scale(t.scale, r2.Sub(r2.Vec{X: x, Y: y}, t.min)), r2.Vec{X: Padding, Y: Padding})
	v.Y = t.height - v.Y
	return v
}

func (b Board) transform(scale float64) (transform, int, int) {
	lo, hi := b.Polygon.Bounds()
	minX, minY := lo.Float64()
	maxX, maxY := hi.Float64()
	size := r2.Sub(r2.Vec{X: maxX, Y: maxY}, r2.Vec{X: minX, Y: minY})
	if scale <= 0 {
		scale = DefaultSize / math.Max(math.Max(size.X, size.Y), 1e-9)
	}
	width := int(math.Ceil(scale*size.X)) + Padding*2
	height := int(math.Ceil(scale*size.Y)) + Padding*2
	return transform{min: r2.Vec{X: minX, Y: minY}, scale: scale, height: float64(height)}, width, height
}

// Draw the board. A scale of zero or less fits the polygon in DefaultSize
// pixels.
func (b Board) Draw(scale float64) *gg.Context {
	b.Polygon.Validate()
	t, width, height := b.transform(scale)

	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	c.SetLineWidth(2)
	tracePolygon(c, t, b.Polygon)
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	for _, region := range b.Regions {
		tracePolygon(c, t, region.Hidden)
		c.SetRGBA(0, 0, 0, 0.5)
		c.FillPreserve()
		c.SetRGB(1, 1, 0)
		c.Stroke()
		anchor := t.apply(region.Anchor)
		c.DrawCircle(anchor.X, anchor.Y, pointRadius/2)
		c.Fill()
	}

	for i, user := range b.Users {
		color := userColor
		if b.Owners != nil {
			color = playerColors[ownerIndex(b.Owners[i])]
		}
		v := t.apply(user)
		c.DrawCircle(v.X, v.Y, pointRadius)
		c.SetRGB(color[0], color[1], color[2])
		c.Fill()
	}

	for i, facility := range b.Facilities {
		color := playerColors[ownerIndex(i+1)]
		v := t.apply(facility)
		c.DrawRectangle(v.X-pointRadius, v.Y-pointRadius, pointRadius*2, pointRadius*2)
		c.SetRGB(color[0], color[1], color[2])
		c.FillPreserve()
		c.SetRGB(1, 1, 1)
		c.SetLineWidth(1)
		c.Stroke()
	}
	return c
}

func ownerIndex(owner int) int {
	if owner < 0 || owner >= len(playerColors) {
		return 0
	}
	return owner
}

func tracePolygon(c *gg.Context, t transform, poly geometry.Polygon) {
	for i, p := range poly.Points {
		v := t.apply(p)
		if i == 0 {
			c.MoveTo(v.X, v.Y)
		} else {
			c.LineTo(v.X, v.Y)
		}
	}
	c.ClosePath()
}

// The board as an image. Errors instead of panicking on an invalid polygon.
func (b Board) Image(scale float64) (img image.Image, err error) {
	err = geometry.Try(func() {
		img = b.Draw(scale).Image()
	})
	return img, err
}

func (b Board) WritePNG(w io.Writer, scale float64) (err error) {
	var c *gg.Context
	if err := geometry.Try(func() { c = b.Draw(scale) }); err != nil {
		return err
	}
	return c.EncodePNG(w)
}

func (b Board) SavePNG(path string, scale float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := b.WritePNG(f, scale); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return f.Close()
}

// Print a PNG file to the terminal (iTerm only).
func Cat(path string, w io.Writer) error {
	return errors.Wrapf(imgcat.CatFile(path, w), "showing %s", path)
}
