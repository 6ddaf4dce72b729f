// Copyright (c) 2026, PolyUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"

	"github.com/polyui/polyui/colors"
	"github.com/polyui/polyui/render"
	"github.com/polyui/polyui/units"
)

// Sizer is implemented by drawables that can infer their own size when
// none was supplied explicitly, such as a text label measuring itself.
type Sizer interface {

	// CalculateSize returns the inferred size for the drawable.
	CalculateSize(ctx *units.Context) (units.Size, error)
}

// ComponentBase is the base for leaf drawables. It resolves position and
// size during the layout pass, deferring to the [Sizer] interface when no
// explicit size was supplied.
type ComponentBase struct {
	DrawableBase
}

// CalculateBounds resolves the component's position and size. If no size
// was supplied and the component does not implement [Sizer], this is a
// configuration error and fails fast.
func (cb *ComponentBase) CalculateBounds(ctx *units.Context) error {
	if err := cb.At.Resolve(ctx); err != nil {
		return err
	}
	if cb.Sized == nil {
		s, ok := cb.This.(Sizer)
		if !ok {
			return fmt.Errorf("core: %T has no explicit size and does not implement size inference", cb.This)
		}
		sz, err := s.CalculateSize(ctx)
		if err != nil {
			return err
		}
		cb.Sized = &sz
	}
	if err := cb.Sized.Resolve(ctx); err != nil {
		return err
	}
	cb.needsRecalculation = false
	return nil
}

// ColorBlock is a solid (or outlined) rectangle. It is the minimal
// concrete component; it must be given an explicit size.
type ColorBlock struct {
	ComponentBase

	// Color is the fill (or stroke) color.
	Color colors.Color

	// Radius is the corner radius in pixels.
	Radius float32

	// Outline draws only the rectangle outline, with LineWidth.
	Outline bool

	// LineWidth is the stroke width when Outline is set.
	LineWidth float32
}

// NewColorBlock returns a block at the given position with the given size
// and color.
func NewColorBlock(at units.Point, size units.Size, color colors.Color) *ColorBlock {
	b := &ColorBlock{Color: color}
	b.This = b
	b.At = at
	b.Sized = &size
	return b
}

func (b *ColorBlock) Render() {
	if b.Outline {
		b.renderer.HollowRect(b.ScreenX(), b.ScreenY(), b.Width(), b.Height(), b.Color, b.LineWidth, b.Radius)
		return
	}
	b.renderer.Rect(b.ScreenX(), b.ScreenY(), b.Width(), b.Height(), b.Color, b.Radius)
}

// TextLabel is a single line of text. If it has no explicit size, it
// measures itself via the renderer's pure TextBounds query.
type TextLabel struct {
	ComponentBase

	// Font is the opaque font handle, passed through to the renderer.
	Font render.Font

	// Text is the string to draw.
	Text string

	// FontSize is the font size in pixels.
	FontSize float32

	// Color is the text color.
	Color colors.Color
}

// NewTextLabel returns a label at the given position. Size is inferred
// from the text during the layout pass.
func NewTextLabel(at units.Point, font render.Font, text string, fontSize float32, color colors.Color) *TextLabel {
	l := &TextLabel{Font: font, Text: text, FontSize: fontSize, Color: color}
	l.This = l
	l.At = at
	return l
}

// CalculateSize measures the text via the renderer.
func (l *TextLabel) CalculateSize(ctx *units.Context) (units.Size, error) {
	if l.renderer == nil {
		return units.Size{}, fmt.Errorf("core: text label %q measured before a renderer was attached", l.Text)
	}
	w, h := l.renderer.TextBounds(l.Font, l.Text, l.FontSize)
	return units.PxVec2(w, h), nil
}

func (l *TextLabel) Render() {
	l.renderer.Text(l.Font, l.ScreenX(), l.ScreenY(), l.Text, l.Color, l.FontSize)
}

// SetText replaces the text and invalidates the inferred size.
func (l *TextLabel) SetText(text string) {
	if text == l.Text {
		return
	}
	l.Text = text
	l.Sized = nil
	l.SetNeedsRecalculation(true)
}

// ImageBox draws an opaque image handle scaled into its bounds.
// It must be given an explicit size.
type ImageBox struct {
	ComponentBase

	// Img is the opaque image handle, passed through to the renderer.
	Img render.Image
}

// NewImageBox returns an image box at the given position and size.
func NewImageBox(at units.Point, size units.Size, img render.Image) *ImageBox {
	b := &ImageBox{Img: img}
	b.This = b
	b.At = at
	b.Sized = &size
	return b
}

func (b *ImageBox) Render() {
	b.renderer.Image(b.Img, b.ScreenX(), b.ScreenY(), b.Width(), b.Height())
}
