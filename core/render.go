// Copyright (c) 2026, PolyUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "time"

// Rendering logic:
//
// Updating is driven top-down from [Scene.Frame] at the host's frame rate
// and is a nop unless a dirty flag is set. Each frame, a layout's children
// finish refreshing their own framebuffers before the layout composes its
// own (strictly bottom-up), then the layout either replays its cached
// framebuffer (fast path: one blit, no descendant draw calls) or executes
// the real preRender/render/postRender traversal scissor-clipped to its
// bounds (slow path), re-rasterizing into the cache for next frame.
//
// Bounds recalculation is a separate, less frequent pass triggered by
// structural change; see [LayoutBase.CalculateBounds].

// ReRenderIfNecessary is the per-frame render entry point for a layout:
// it drains the removal queue, lets descendants refresh their framebuffer
// caches bottom-up, refreshes this layout's own cache if it is dirty, and
// then draws (blitting the cache when one exists).
func (lb *LayoutBase) ReRenderIfNecessary(delta time.Duration) {
	lb.drainRemoveQueue()
	lb.rasterChildren(delta)
	lb.rasterize(delta)
	lb.draw(delta)
}

// rasterChildren recursively refreshes descendant framebuffer caches,
// deepest layouts first, so that by the time a layout rasterizes, every
// child cache it composes is current.
func (lb *LayoutBase) rasterChildren(delta time.Duration) {
	for _, c := range lb.Children {
		cb := c.AsLayoutBase()
		cb.drainRemoveQueue()
		cb.rasterChildren(delta)
		cb.rasterize(delta)
	}
}

// rasterize re-renders this layout's content into its framebuffer if it
// owns one and is dirty. Content draws in screen coordinates, so the bind
// is bracketed with a translate that shifts this layout's origin to the
// framebuffer's origin. The dirty flag stays set while animations are
// still running so the cache keeps refreshing until they settle.
func (lb *LayoutBase) rasterize(delta time.Duration) {
	if lb.fbo == nil || !lb.needsRedraw {
		return
	}
	r := lb.renderer
	r.BindFramebuffer(lb.fbo)
	r.Push()
	r.Translate(-lb.ScreenX(), -lb.ScreenY())
	animating := lb.renderContent(delta)
	r.Pop()
	r.UnbindFramebuffer()
	lb.needsRedraw = animating
}

// draw emits this layout to the current target: a single framebuffer blit
// when a cache exists, or the full content traversal otherwise. Layouts
// without a framebuffer clear their dirty flag here once nothing below is
// animating, so fbo-owning ancestors can settle back to the blit path.
func (lb *LayoutBase) draw(delta time.Duration) {
	if lb.fbo != nil {
		lb.renderer.DrawFramebuffer(lb.fbo, lb.ScreenX(), lb.ScreenY(), lb.Width(), lb.Height())
		return
	}
	lb.needsRedraw = lb.renderContent(delta)
}

// renderContent executes the real render traversal: scissor-clip to
// bounds, apply this layout's ops, render self, components and child
// layouts, then unapply in reverse. Returns whether anything below is
// still animating and needs another pass next frame.
func (lb *LayoutBase) renderContent(delta time.Duration) bool {
	r := lb.renderer
	r.PushScissor(lb.ScreenX(), lb.ScreenY(), lb.Width(), lb.Height())
	lb.PreRender(delta)
	lb.This.Render()
	for _, c := range lb.Components {
		c.PreRender(delta)
		c.Render()
		c.PostRender()
	}
	for _, c := range lb.Children {
		c.AsLayoutBase().draw(delta)
	}
	lb.PostRender()
	r.PopScissor()

	animating := lb.Animating()
	for _, c := range lb.Components {
		animating = animating || c.AsDrawable().Animating()
	}
	for _, c := range lb.Children {
		animating = animating || c.AsLayoutBase().needsRedraw
	}
	return animating
}

// allocateFramebuffers walks the subtree after a layout pass and gives a
// framebuffer to every layout whose recursive drawable count crosses the
// configured threshold. Cheap layouts redraw directly every frame; only
// expensive ones are worth the extra GPU memory and bind/unbind cost.
func (lb *LayoutBase) allocateFramebuffers() {
	for _, c := range lb.Children {
		c.AsLayoutBase().allocateFramebuffers()
	}
	if lb.settings == nil || !lb.settings.FramebuffersEnabled {
		return
	}
	if lb.fbo != nil || lb.Sized == nil || !lb.Sized.Resolved() {
		return
	}
	if lb.CountDrawables() < lb.settings.MinDrawablesForFramebuffer {
		return
	}
	lb.fbo = lb.renderer.CreateFramebuffer(lb.Width(), lb.Height())
	lb.needsRedraw = true
}

// deleteFramebuffers releases the subtree's framebuffers, for detach and
// resize. The next layout pass reallocates at the new sizes.
func (lb *LayoutBase) deleteFramebuffers() {
	for _, c := range lb.Children {
		c.AsLayoutBase().deleteFramebuffers()
	}
	if lb.fbo == nil {
		return
	}
	lb.renderer.DeleteFramebuffer(lb.fbo)
	lb.fbo = nil
	lb.needsRedraw = true
}
