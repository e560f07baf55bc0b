package core

import (
	"fmt"
	"image/color"
	"math"
)

// Color is an 8-bit RGB triple
type Color struct {
	R, G, B uint8
}

// NewColor creates a new Color
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFrom converts any image/color value to an RGB triple, dropping alpha
func ColorFrom(c color.Color) Color {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return Color{R: rgba.R, G: rgba.G, B: rgba.B}
}

// ColorFromUnit converts channels in [0, 1] to 8-bit, clamping out-of-range values
func ColorFromUnit(r, g, b float64) Color {
	return Color{R: channel(r * 255), G: channel(g * 255), B: channel(b * 255)}
}

var (
	White = Color{255, 255, 255}
	Black = Color{0, 0, 0}
)

// Scale multiplies every channel by k, rounding and clamping to [0, 255]
func (c Color) Scale(k float64) Color {
	return Color{
		R: channel(float64(c.R) * k),
		G: channel(float64(c.G) * k),
		B: channel(float64(c.B) * k),
	}
}

// Blend mixes c with other as c*(1-w) + other*w per channel
func (c Color) Blend(other Color, w float64) Color {
	return Color{
		R: channel(float64(c.R)*(1-w) + float64(other.R)*w),
		G: channel(float64(c.G)*(1-w) + float64(other.G)*w),
		B: channel(float64(c.B)*(1-w) + float64(other.B)*w),
	}
}

// Hex returns the color in #rrggbb form
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA returns the opaque image/color equivalent
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func channel(v float64) uint8 {
	v = math.Round(v)
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Luminance returns the Rec. 709 relative luminance in [0, 1]
func (c Color) Luminance() float64 {
	return (0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)) / 255
}
