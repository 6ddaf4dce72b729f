// Copyright (c) 2026, PolyUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"time"

	"github.com/polyui/polyui/render"
	"github.com/polyui/polyui/units"
)

// Scene owns the root of a drawable tree and drives it: it holds the
// resolution context for the viewport, distributes the renderer and
// settings, and runs the per-frame update. A host creates one scene per
// window (or render target) and calls [Scene.Frame] every tick.
type Scene struct {

	// Root is the top-level layout.
	Root Layout

	// Renderer is the backend capability every drawable renders through.
	Renderer render.Renderer

	// Settings is the shared configuration.
	Settings *Settings

	ctx units.Context
}

// NewScene returns a scene driving the given root through the given
// renderer at the given viewport size, with default settings.
func NewScene(root Layout, r render.Renderer, width, height float32) *Scene {
	sc := &Scene{Root: root, Renderer: r, Settings: DefaultSettings()}
	sc.ctx = units.NewContext(width, height)
	rb := root.AsLayoutBase()
	if rb.This == nil {
		rb.This = root
	}
	propagate(root, r, sc.Settings)
	rb.SetNeedsRecalculation(true)
	return sc
}

// Context returns the scene's current resolution context.
func (sc *Scene) Context() units.Context {
	return sc.ctx
}

// Resize updates the viewport, drops every framebuffer cache (they are
// reallocated at the new sizes by the next layout pass) and flags a full
// recalculation so dynamic units re-resolve.
func (sc *Scene) Resize(width, height float32) {
	sc.ctx.SetViewport(width, height)
	rb := sc.Root.AsLayoutBase()
	rb.deleteFramebuffers()
	rb.SetNeedsRecalculation(true)
}

// Frame advances the scene by one tick: rerun the layout pass if a
// structural change was flagged, allocate framebuffer caches for layouts
// that have grown past the threshold, then re-render whatever is dirty.
// Delta is the time elapsed since the previous frame and drives every
// animation in the tree.
func (sc *Scene) Frame(delta time.Duration) error {
	rb := sc.Root.AsLayoutBase()
	if rb.needsRecalculation {
		if err := sc.Root.CalculateBounds(&sc.ctx); err != nil {
			return err
		}
		rb.allocateFramebuffers()
	}
	rb.ReRenderIfNecessary(delta)
	return nil
}
