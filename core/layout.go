// Copyright (c) 2026, PolyUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/chewxy/math32"
	"github.com/polyui/polyui/render"
	"github.com/polyui/polyui/units"
)

// Layout is a container drawable: it owns components (leaves) and child
// layouts, positions and sizes them in its bounds pass, and may own a
// framebuffer used as a redraw cache.
type Layout interface {
	Drawable

	// AsLayoutBase returns the [LayoutBase] for this layout.
	AsLayoutBase() *LayoutBase
}

// AsLayout returns the [LayoutBase] for the given drawable, or nil if it
// is a leaf component. This is the capability check for branching on
// container behavior.
func AsLayout(d Drawable) *LayoutBase {
	if l, ok := d.(Layout); ok {
		return l.AsLayoutBase()
	}
	return nil
}

// LayoutBase implements the container state and protocol shared by all
// layouts: child bookkeeping with enforced back-references, the deferred
// removal queue, recursive bounds calculation, and the framebuffer-cached
// redraw scheduling in render.go.
type LayoutBase struct {
	DrawableBase

	// Components are the leaf drawables, in insertion order. Every
	// element's parent back-reference points at this layout; the Add
	// methods enforce this.
	Components []Drawable

	// Children are the nested layouts, in insertion order.
	Children []Layout

	// removeQueue holds drawables whose removal was requested but whose
	// exit animations may still be running. It is drained once per
	// render pass.
	removeQueue []Drawable

	// fbo is the redraw cache, allocated by the renderer when this
	// layout's recursive drawable count crosses the settings threshold.
	fbo render.Framebuffer

	// settings is shared configuration, propagated from the scene.
	settings *Settings
}

// AsLayoutBase returns the [LayoutBase] for this layout.
func (lb *LayoutBase) AsLayoutBase() *LayoutBase {
	return lb
}

// Framebuffer returns the layout's redraw cache, or nil.
func (lb *LayoutBase) Framebuffer() render.Framebuffer {
	return lb.fbo
}

// attach wires a drawable into this layout: self-reference, parent
// back-reference, renderer and settings propagation, lifecycle state,
// and the added hook. Returns false on structural misuse.
func (lb *LayoutBase) attach(d Drawable) bool {
	db := d.AsDrawable()
	if db.This == nil {
		db.This = d
	}
	if db.parent != nil {
		slog.Warn("core: drawable is already attached to a layout; ignoring add", "drawable", fmt.Sprintf("%T", d))
		return false
	}
	db.parent = lb
	db.state = Live
	propagate(d, lb.renderer, lb.settings)
	lb.SetNeedsRecalculation(true)
	if db.OnAdded != nil {
		db.OnAdded(d)
	}
	return true
}

// propagate pushes the shared renderer and settings down a subtree.
// Children attached before their layout was itself attached pick the
// capability up here.
func propagate(d Drawable, r render.Renderer, st *Settings) {
	db := d.AsDrawable()
	db.renderer = r
	if cl := AsLayout(d); cl != nil {
		cl.settings = st
		for _, c := range cl.Components {
			propagate(c, r, st)
		}
		for _, c := range cl.Children {
			propagate(c, r, st)
		}
	}
}

// AddComponent attaches a leaf drawable to this layout. Adding a drawable
// that is already attached somewhere is a warning and a no-op.
func (lb *LayoutBase) AddComponent(d Drawable) {
	if !lb.attach(d) {
		return
	}
	lb.Components = append(lb.Components, d)
}

// AddChild attaches a nested layout.
func (lb *LayoutBase) AddChild(l Layout) {
	if !lb.attach(l) {
		return
	}
	lb.Children = append(lb.Children, l)
}

// contains returns whether the drawable is one of this layout's
// components or children.
func (lb *LayoutBase) contains(d Drawable) bool {
	if slices.Index(lb.Components, d) >= 0 {
		return true
	}
	for _, c := range lb.Children {
		if Drawable(c) == d {
			return true
		}
	}
	return false
}

// RemoveComponent requests removal of a component or child layout. The
// drawable is not unlinked yet: it enters the pending-removal state and
// the removed hook fires, giving handlers a chance to start an exit
// animation. Each render pass the removal queue is drained and drawables
// whose animations have finished are unlinked. Removing a drawable that
// is not in this layout, or removing one twice, is a warning and a no-op.
func (lb *LayoutBase) RemoveComponent(d Drawable) {
	if !lb.contains(d) {
		slog.Warn("core: removing a drawable that is not in this layout; ignoring", "drawable", fmt.Sprintf("%T", d))
		return
	}
	db := d.AsDrawable()
	if db.state == PendingRemoval {
		slog.Warn("core: drawable is already pending removal; ignoring", "drawable", fmt.Sprintf("%T", d))
		return
	}
	db.state = PendingRemoval
	lb.removeQueue = append(lb.removeQueue, d)
	if db.OnRemoved != nil {
		db.OnRemoved(d)
	}
	lb.SetNeedsRedraw(true)
}

// RemoveComponentNow unlinks a drawable immediately, without waiting for
// animations. The flex overflow policy uses this; hosts normally want
// [LayoutBase.RemoveComponent].
func (lb *LayoutBase) RemoveComponentNow(d Drawable) {
	if i := slices.Index(lb.Components, d); i >= 0 {
		lb.Components = slices.Delete(lb.Components, i, i+1)
	} else {
		found := false
		for i, c := range lb.Children {
			if Drawable(c) == d {
				lb.Children = slices.Delete(lb.Children, i, i+1)
				found = true
				break
			}
		}
		if !found {
			slog.Warn("core: removing a drawable that is not in this layout; ignoring", "drawable", fmt.Sprintf("%T", d))
			return
		}
	}
	db := d.AsDrawable()
	db.state = Removed
	db.parent = nil
	if cl := AsLayout(d); cl != nil {
		cl.deleteFramebuffers()
	}
	lb.SetNeedsRecalculation(true)
}

// drainRemoveQueue unlinks every queued drawable whose exit animations
// have finished; the rest stay queued for a future frame.
func (lb *LayoutBase) drainRemoveQueue() {
	if len(lb.removeQueue) == 0 {
		return
	}
	still := lb.removeQueue[:0]
	for _, d := range lb.removeQueue {
		if d.CanBeRemoved() {
			lb.RemoveComponentNow(d)
		} else {
			still = append(still, d)
		}
	}
	lb.removeQueue = still
}

// CountDrawables returns the recursive number of drawables below this
// layout, counting components and child layouts and their contents.
// The framebuffer allocation threshold compares against this.
func (lb *LayoutBase) CountDrawables() int {
	n := len(lb.Components)
	for _, c := range lb.Children {
		n += 1 + c.AsLayoutBase().CountDrawables()
	}
	return n
}

// childContext returns the resolution context the layout's children see:
// the parent reference sizes become this layout's own size, or zero while
// unknown (size inference has not run yet).
func (lb *LayoutBase) childContext(ctx *units.Context) units.Context {
	var w, h float32
	if lb.Sized != nil && lb.Sized.Resolved() {
		w = lb.Width()
		h = lb.Height()
	}
	return ctx.ForParent(w, h)
}

// CalculateBounds resolves this layout's own bounds, recurses into
// components and child layouts (children before self-size inference, so
// inference can see their resolved extents), and infers the layout's own
// size if none was supplied. A layout type that cannot infer its size is
// a configuration error.
func (lb *LayoutBase) CalculateBounds(ctx *units.Context) error {
	if err := lb.At.Resolve(ctx); err != nil {
		return err
	}
	if lb.Sized != nil {
		if err := lb.Sized.Resolve(ctx); err != nil {
			return err
		}
	}
	cctx := lb.childContext(ctx)
	for _, c := range lb.Components {
		if err := c.CalculateBounds(&cctx); err != nil {
			return err
		}
	}
	for _, c := range lb.Children {
		if err := c.CalculateBounds(&cctx); err != nil {
			return err
		}
	}
	if lb.Sized == nil {
		s, ok := lb.This.(Sizer)
		if !ok {
			return fmt.Errorf("core: %T has no explicit size and does not implement size inference", lb.This)
		}
		sz, err := s.CalculateSize(&cctx)
		if err != nil {
			return err
		}
		lb.Sized = &sz
	}
	lb.needsRecalculation = false
	return nil
}

// PixelLayout is the plain container: children keep the positions they
// were given. Its inferred size is the bounding box of its contents.
type PixelLayout struct {
	LayoutBase
}

// NewPixelLayout returns an empty pixel layout at the given position.
func NewPixelLayout(at units.Point) *PixelLayout {
	l := &PixelLayout{}
	l.This = l
	l.At = at
	return l
}

// CalculateSize infers the bounding box of the layout's contents.
func (l *PixelLayout) CalculateSize(ctx *units.Context) (units.Size, error) {
	var w, h float32
	each := func(d Drawable) {
		db := d.AsDrawable()
		w = math32.Max(w, db.X()+db.Width())
		h = math32.Max(h, db.Y()+db.Height())
	}
	for _, c := range l.Components {
		each(c)
	}
	for _, c := range l.Children {
		each(c)
	}
	return units.PxVec2(w, h), nil
}
