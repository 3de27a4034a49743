// Package silk renders the animated background: a slow, noisy sheen of one
// base colour drawn as terminal cells. Output depends only on the arguments,
// so the caller owns time and nothing here keeps state.
package silk

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Params tunes the effect
type Params struct {
	Speed          float64
	Scale          float64
	Color          string // hex, e.g. "#7B7481"
	NoiseIntensity float64
	Rotation       float64 // radians
}

// DefaultParams matches the stock look
func DefaultParams() Params {
	return Params{
		Speed:          5,
		Scale:          1,
		Color:          "#7B7481",
		NoiseIntensity: 1.5,
		Rotation:       0,
	}
}

// fallbackColor is used when Params.Color does not parse
var fallbackColor = colorful.Color{R: 0x7B / 255.0, G: 0x74 / 255.0, B: 0x81 / 255.0}

// Render draws a width x height block for time t (seconds).
// Rows are joined with "\n"; non-positive sizes yield "".
func Render(width, height int, t float64, p Params) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	base, err := colorful.Hex(p.Color)
	if err != nil {
		base = fallbackColor
	}
	scale := p.Scale
	if scale <= 0 {
		scale = 1
	}
	offset := p.Speed * t

	var b strings.Builder
	for y := 0; y < height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		// A cell is about twice as tall as it is wide
		v := 2 * float64(y) / float64(width)

		run := 0
		prev := ""
		for x := 0; x < width; x++ {
			u := float64(x) / float64(width)
			hex := cellColor(base, u, v, float64(x), float64(y), offset, scale, p).Hex()
			if hex == prev {
				run++
				continue
			}
			writeRun(&b, prev, run)
			prev, run = hex, 1
		}
		writeRun(&b, prev, run)
	}
	return b.String()
}

// Intensity returns the pattern brightness at a normalized coordinate, before
// noise. Exposed so callers and tests can reason about the shape.
func Intensity(u, v, offset, scale, rotation float64) float64 {
	u, v = rotate(u*scale, v*scale, rotation)
	tx, ty := u*scale, v*scale
	ty += 0.03 * math.Sin(8*tx-offset)

	return 0.6 + 0.4*math.Sin(5*(tx+ty+math.Cos(3*tx+5*ty)+0.02*offset)+
		math.Sin(20*(tx+ty-0.1*offset)))
}

func cellColor(base colorful.Color, u, v, x, y, offset, scale float64, p Params) colorful.Color {
	pattern := Intensity(u, v, offset, scale, p.Rotation)
	grain := noise(x, y) / 15 * p.NoiseIntensity

	return colorful.Color{
		R: clamp01(base.R*pattern - grain),
		G: clamp01(base.G*pattern - grain),
		B: clamp01(base.B*pattern - grain),
	}
}

// writeRun emits n background-coloured spaces
func writeRun(b *strings.Builder, hex string, n int) {
	if n == 0 {
		return
	}
	b.WriteString(lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Render(strings.Repeat(" ", n)))
}

func rotate(u, v, angle float64) (float64, float64) {
	if angle == 0 {
		return u, v
	}
	c, s := math.Cos(angle), math.Sin(angle)
	return c*u - s*v, s*u + c*v
}

// noise is a stable per-cell hash in [0, 1)
func noise(x, y float64) float64 {
	const e = 2.71828182845904523536
	gx, gy := e*math.Sin(e*x), e*math.Sin(e*y)
	n := gx * gy * (1 + x)
	return n - math.Floor(n)
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}
