package classifier

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

var (
	colorBackground = color.RGBA{R: 240, G: 240, B: 240, A: 0xff}
	colorClassA     = color.RGBA{R: 231, G: 76, B: 60, A: 0xff}
	colorClassB     = color.RGBA{R: 52, G: 152, B: 219, A: 0xff}
	colorBoundary   = color.RGBA{R: 0, G: 0, B: 0, A: 0xff}
	colorMargin     = color.RGBA{R: 0xff, G: 0, B: 0, A: 0xff}
	colorLegend     = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
)

const (
	POINT_RADIUS = 5 // Radius of a plotted point, in pixels.
	LEGEND_X     = 4
	LEGEND_Y     = 8 // Baseline of the first legend line.
	LEGEND_LINE  = 8
)

// canvas adapts an RGBA image to a tinyfont display.
type canvas struct {
	img *image.RGBA
}

var _ drivers.Displayer = (*canvas)(nil)

func (c *canvas) Size() (x, y int16) {
	bounds := c.img.Bounds()
	return int16(bounds.Dx()), int16(bounds.Dy())
}

func (c *canvas) SetPixel(x, y int16, col color.RGBA) {
	pt := image.Pt(int(x), int(y))
	if !pt.In(c.img.Bounds()) {
		return
	}
	c.img.SetRGBA(pt.X, pt.Y, col)
}

func (c *canvas) Display() error {
	return nil
}

func (c *canvas) fill(col color.RGBA) {
	bounds := c.img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c.img.SetRGBA(x, y, col)
		}
	}
}

func (c *canvas) disc(cx, cy float64, radius int, col color.RGBA) {
	x0, y0 := int(math.Round(cx)), int(math.Round(cy))
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				c.SetPixel(int16(x0+dx), int16(y0+dy), col)
			}
		}
	}
}

// line draws a segment by stepping along its longer axis.
func (c *canvas) line(seg Segment, weight int, col color.RGBA) {
	dx, dy := seg.X2-seg.X1, seg.Y2-seg.Y1
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 || steps > 1<<16 {
		// Degenerate, or so steep that it never crosses the canvas.
		return
	}

	for n := 0; n <= steps; n++ {
		t := float64(n) / float64(steps)
		x := int(math.Round(seg.X1 + t*dx))
		y := int(math.Round(seg.Y1 + t*dy))
		for w := range weight {
			px, py := x+w, y
			if math.Abs(dx) >= math.Abs(dy) {
				px, py = x, y+w
			}
			if image.Pt(px, py).In(c.img.Bounds()) {
				c.img.SetRGBA(px, py, col)
			}
		}
	}
}

// Plot renders the points, and the boundary with its margins when shown.
func (cl *Classifier) Plot() *image.RGBA {
	c := &canvas{img: image.NewRGBA(image.Rect(0, 0, int(cl.Width), int(cl.Height)))}
	c.fill(colorBackground)

	for _, p := range cl.Points {
		col := colorClassA
		if p.Label == CLASS_B {
			col = colorClassB
		}
		c.disc(p.X, p.Y, POINT_RADIUS, col)
	}

	if cl.Show && cl.Trained {
		for _, entry := range []struct {
			offset float64
			col    color.RGBA
			weight int
		}{
			{0, colorBoundary, 2},
			{1, colorMargin, 1},
			{-1, colorMargin, 1},
		} {
			seg, ok := cl.Line(entry.offset)
			if ok {
				c.line(seg, entry.weight, entry.col)
			}
		}
	}

	// The plot font only covers ASCII, so the legend is not translated.
	for n, text := range cl.legend(fmt.Sprintf) {
		tinyfont.WriteLine(c, &tinyfont.TomThumb, LEGEND_X, int16(LEGEND_Y+n*LEGEND_LINE), text, colorLegend)
	}

	return c.img
}

// Legend describes the points and the last training run.
func (cl *Classifier) Legend() (lines []string) {
	return cl.legend(func(format string, args ...any) string {
		return f(format, args...)
	})
}

func (cl *Classifier) legend(sprintf func(format string, args ...any) string) (lines []string) {
	a, b := cl.Count()
	lines = append(lines, sprintf("A: %d  B: %d", a, b))
	if cl.Show && cl.Trained {
		if cl.Converged {
			lines = append(lines, sprintf("separated after %d passes", cl.Passes))
		} else {
			lines = append(lines, sprintf("not separated after %d passes", cl.Passes))
		}
	}
	return
}
