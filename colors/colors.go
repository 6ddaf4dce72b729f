// Copyright (c) 2026, PolyUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the minimal color type used by the render
// pipeline and the interpolation needed by recolor and fade animations.
package colors

import (
	"fmt"

	"github.com/chewxy/math32"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a non-premultiplied 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGB returns a fully opaque color from the given components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA returns a color from the given components.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// String implements the [fmt.Stringer] interface.
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

// WithAlpha returns the color with the alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Transparent returns whether the color is fully transparent.
func (c Color) Transparent() bool {
	return c.A == 0
}

// Blend interpolates between from and to at position t in [0, 1],
// blending in linear RGB space (via go-colorful) so that mid-transition
// colors do not darken the way naive sRGB channel interpolation does.
// The alpha channel is interpolated linearly. t is clamped.
func Blend(from, to Color, t float32) Color {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	cf := colorful.Color{R: float64(from.R) / 255, G: float64(from.G) / 255, B: float64(from.B) / 255}
	ct := colorful.Color{R: float64(to.R) / 255, G: float64(to.G) / 255, B: float64(to.B) / 255}
	fr, fg, fb := cf.LinearRgb()
	tr, tg, tb := ct.LinearRgb()
	td := float64(t)
	m := colorful.LinearRgb(fr+(tr-fr)*td, fg+(tg-fg)*td, fb+(tb-fb)*td).Clamped()
	a := float32(from.A) + (float32(to.A)-float32(from.A))*t
	return Color{
		R: uint8(math32.Round(float32(m.R) * 255)),
		G: uint8(math32.Round(float32(m.G) * 255)),
		B: uint8(math32.Round(float32(m.B) * 255)),
		A: uint8(math32.Round(a)),
	}
}
