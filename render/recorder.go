// Copyright (c) 2026, PolyUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"

	"github.com/polyui/polyui/colors"
)

// Call is one recorded renderer invocation.
type Call struct {

	// Op is the method name, e.g. "Rect" or "Translate".
	Op string

	// Args are the float arguments in declaration order.
	Args []float32

	// Color is the color argument, if the call had one.
	Color colors.Color

	// Str is the string argument, if the call had one.
	Str string
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Op, c.Args)
}

// Recorder is a [Renderer] that records every call it receives, for tests.
// It tracks transform and scissor nesting depth so tests can assert that
// the apply/unapply stack discipline held, and it applies the current
// translate offset to recorded draw coordinates the way a real backend's
// transform stack would, so framebuffer-local rendering is checkable.
type Recorder struct {

	// Calls is every recorded call in order.
	Calls []Call

	// TransformDepth is the current Push/Pop nesting depth.
	TransformDepth int

	// ScissorDepth is the current scissor nesting depth.
	ScissorDepth int

	// BoundFramebuffer is the currently bound framebuffer, or nil.
	BoundFramebuffer Framebuffer

	// NetTranslate is the current accumulated translate offset. It is
	// applied to the coordinates of recorded draw calls; Push saves it
	// and Pop restores it. A balanced apply/unapply pass leaves it at
	// zero.
	NetTranslateX, NetTranslateY float32

	// Alpha is the last value passed to SetAlpha; starts at 1.
	Alpha float32

	// Created and Deleted count framebuffer lifecycle calls.
	Created, Deleted int

	// saved holds translate offsets pushed by Push.
	saved [][2]float32
}

// NewRecorder returns a recorder ready for use.
func NewRecorder() *Recorder {
	return &Recorder{Alpha: 1}
}

// Count returns how many calls with the given op name were recorded.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset clears the recorded calls but keeps depth and binding state,
// so per-frame call counting can start fresh.
func (r *Recorder) Reset() {
	r.Calls = nil
}

func (r *Recorder) record(op string, args ...float32) {
	r.Calls = append(r.Calls, Call{Op: op, Args: args})
}

func (r *Recorder) Rect(x, y, w, h float32, color colors.Color, radius float32) {
	r.Calls = append(r.Calls, Call{Op: "Rect", Args: []float32{x + r.NetTranslateX, y + r.NetTranslateY, w, h, radius}, Color: color})
}

func (r *Recorder) HollowRect(x, y, w, h float32, color colors.Color, lineWidth, radius float32) {
	r.Calls = append(r.Calls, Call{Op: "HollowRect", Args: []float32{x + r.NetTranslateX, y + r.NetTranslateY, w, h, lineWidth, radius}, Color: color})
}

func (r *Recorder) Text(font Font, x, y float32, text string, color colors.Color, size float32) {
	r.Calls = append(r.Calls, Call{Op: "Text", Args: []float32{x + r.NetTranslateX, y + r.NetTranslateY, size}, Color: color, Str: text})
}

// TextBounds measures half the font size per rune wide and one line of
// the given size high, a deterministic stand-in for real shaping.
func (r *Recorder) TextBounds(font Font, text string, size float32) (w, h float32) {
	return float32(len([]rune(text))) * size / 2, size
}

func (r *Recorder) Image(img Image, x, y, w, h float32) {
	r.record("Image", x+r.NetTranslateX, y+r.NetTranslateY, w, h)
}

func (r *Recorder) PushScissor(x, y, w, h float32) {
	r.ScissorDepth++
	r.record("PushScissor", x+r.NetTranslateX, y+r.NetTranslateY, w, h)
}

func (r *Recorder) PopScissor() {
	r.ScissorDepth--
	r.record("PopScissor")
}

func (r *Recorder) Push() {
	r.TransformDepth++
	r.saved = append(r.saved, [2]float32{r.NetTranslateX, r.NetTranslateY})
	r.record("Push")
}

func (r *Recorder) Pop() {
	r.TransformDepth--
	if n := len(r.saved); n > 0 {
		r.NetTranslateX, r.NetTranslateY = r.saved[n-1][0], r.saved[n-1][1]
		r.saved = r.saved[:n-1]
	}
	r.record("Pop")
}

func (r *Recorder) Translate(dx, dy float32) {
	r.NetTranslateX += dx
	r.NetTranslateY += dy
	r.record("Translate", dx, dy)
}

func (r *Recorder) Scale(sx, sy float32) {
	r.record("Scale", sx, sy)
}

func (r *Recorder) Rotate(radians float32) {
	r.record("Rotate", radians)
}

func (r *Recorder) Skew(sx, sy float32) {
	r.record("Skew", sx, sy)
}

func (r *Recorder) SetAlpha(alpha float32) {
	r.Alpha = alpha
	r.record("SetAlpha", alpha)
}

// recorderFramebuffer is the opaque handle type the recorder hands out.
type recorderFramebuffer struct {
	w, h float32
}

func (f *recorderFramebuffer) Size() (w, h float32) {
	return f.w, f.h
}

func (r *Recorder) CreateFramebuffer(w, h float32) Framebuffer {
	r.Created++
	r.record("CreateFramebuffer", w, h)
	return &recorderFramebuffer{w: w, h: h}
}

func (r *Recorder) BindFramebuffer(fbo Framebuffer) {
	r.BoundFramebuffer = fbo
	r.record("BindFramebuffer")
}

func (r *Recorder) UnbindFramebuffer() {
	r.BoundFramebuffer = nil
	r.record("UnbindFramebuffer")
}

func (r *Recorder) DrawFramebuffer(fbo Framebuffer, x, y, w, h float32) {
	r.record("DrawFramebuffer", x+r.NetTranslateX, y+r.NetTranslateY, w, h)
}

func (r *Recorder) DeleteFramebuffer(fbo Framebuffer) {
	r.Deleted++
	r.record("DeleteFramebuffer")
}
