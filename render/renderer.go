// Copyright (c) 2026, PolyUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package render defines the Renderer capability that the scene graph draws
through. The core never inspects a renderer's implementation: backends
(NanoVG, Skija, software rasterizers, the test [Recorder]) supply the
drawing, transform-stack, scissor, and framebuffer operations, and own
every GPU resource behind the opaque handles they hand out.
*/
package render

import "github.com/polyui/polyui/colors"

// Font identifies a typeface loaded by the renderer backend.
// The core passes it through untouched.
type Font = any

// Image identifies an image uploaded to the renderer backend.
// The core passes it through untouched.
type Image = any

// Framebuffer is an opaque handle to a renderer-owned offscreen target,
// used by layouts as a redraw cache. The core requests creation, binding
// and deletion at the right lifecycle points but never touches the
// underlying resource.
type Framebuffer interface {

	// Size returns the framebuffer extent in pixels.
	Size() (w, h float32)
}

// Renderer is the draw capability handed to a scene graph. All calls are
// synchronous and single-threaded; the transform save/restore pair
// ([Renderer.Push], [Renderer.Pop]) and the scissor pair must be strictly
// nested, which the drawable-op stack discipline in the core guarantees.
type Renderer interface {

	// Rect fills a rectangle, with the given corner radius (0 = square).
	Rect(x, y, w, h float32, color colors.Color, radius float32)

	// HollowRect strokes a rectangle outline with the given line width.
	HollowRect(x, y, w, h float32, color colors.Color, lineWidth, radius float32)

	// Text draws a string at the given baseline position and size.
	Text(font Font, x, y float32, text string, color colors.Color, size float32)

	// TextBounds measures the string at the given size without drawing.
	// It is a pure query.
	TextBounds(font Font, text string, size float32) (w, h float32)

	// Image draws an image scaled into the given rectangle.
	Image(img Image, x, y, w, h float32)

	// PushScissor clips subsequent drawing to the given rectangle.
	PushScissor(x, y, w, h float32)

	// PopScissor removes the most recent scissor clip.
	PopScissor()

	// Push saves the current transform state.
	Push()

	// Pop restores the most recently saved transform state.
	Pop()

	// Translate offsets subsequent drawing.
	Translate(dx, dy float32)

	// Scale scales subsequent drawing.
	Scale(sx, sy float32)

	// Rotate rotates subsequent drawing by the given angle in radians.
	Rotate(radians float32)

	// Skew skews subsequent drawing by the given angles in radians.
	Skew(sx, sy float32)

	// SetAlpha sets the global alpha multiplier for subsequent drawing,
	// in [0, 1].
	SetAlpha(alpha float32)

	// CreateFramebuffer allocates an offscreen target of the given size.
	CreateFramebuffer(w, h float32) Framebuffer

	// BindFramebuffer directs subsequent drawing into the framebuffer.
	BindFramebuffer(fbo Framebuffer)

	// UnbindFramebuffer directs subsequent drawing back to the screen.
	UnbindFramebuffer()

	// DrawFramebuffer blits a framebuffer's contents at the given
	// rectangle.
	DrawFramebuffer(fbo Framebuffer, x, y, w, h float32)

	// DeleteFramebuffer releases the framebuffer's resources.
	DeleteFramebuffer(fbo Framebuffer)
}
