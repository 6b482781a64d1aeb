package core

import (
	"github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack    = RGB{0, 0, 0}
	RGBWhite    = RGB{255, 255, 255}
	RGBDarkGray = RGB{64, 64, 64}
	RGBGray     = RGB{128, 128, 128}
	RGBGreen    = RGB{0, 255, 0}
	RGBRed      = RGB{255, 0, 0}
	RGBAmber    = RGB{255, 191, 0}
	RGBCyan     = RGB{0, 200, 200}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Scale multiplies each channel by factor (for fading effects)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

// Lerp interpolates toward dst in Luv space, which keeps wire glow
// transitions perceptually even instead of muddying through gray
func (c RGB) Lerp(dst RGB, t float64) RGB {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return dst
	}
	a := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	b := colorful.Color{R: float64(dst.R) / 255, G: float64(dst.G) / 255, B: float64(dst.B) / 255}
	m := a.BlendLuv(b, t).Clamped()
	return RGB{
		R: uint8(m.R*255 + 0.5),
		G: uint8(m.G*255 + 0.5),
		B: uint8(m.B*255 + 0.5),
	}
}
