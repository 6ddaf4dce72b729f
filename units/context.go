// Copyright (c) 2026, PolyUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import "github.com/chewxy/math32"

// Context contains the reference sizes that dynamic units are resolved
// against. It is created by the root of a UI tree from the current
// viewport size and threaded explicitly through every bounds-calculation
// call, so independent trees (and parallel tests) never share state.
type Context struct {

	// Vw and Vh are the viewport width and height in pixels.
	Vw, Vh float32

	// Vmin and Vmax are the smaller and larger of Vw and Vh.
	// They are recomputed whenever [Context.SetViewport] is called.
	Vmin, Vmax float32

	// Pw and Ph are the width and height of the parent of the element
	// currently being resolved, in pixels. A zero value is valid: it
	// means percent units resolve to zero, which is what an unsized
	// parent provides until its own size inference has run.
	Pw, Ph float32
}

// NewContext returns a context for the given viewport size,
// with the parent size initialized to the full viewport.
func NewContext(vw, vh float32) Context {
	c := Context{}
	c.SetViewport(vw, vh)
	c.Pw = vw
	c.Ph = vh
	return c
}

// SetViewport sets the viewport size and recomputes Vmin and Vmax.
func (c *Context) SetViewport(vw, vh float32) {
	c.Vw = vw
	c.Vh = vh
	c.Vmin = math32.Min(vw, vh)
	c.Vmax = math32.Max(vw, vh)
}

// ForParent returns a copy of the context with the parent size set to the
// given width and height. The viewport values are carried over unchanged.
func (c *Context) ForParent(pw, ph float32) Context {
	nc := *c
	nc.Pw = pw
	nc.Ph = ph
	return nc
}

// Parent returns the parent size along the given dimension.
func (c *Context) Parent(d Dims) float32 {
	if d == X {
		return c.Pw
	}
	return c.Ph
}
