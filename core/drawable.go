// Copyright (c) 2026, PolyUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package core implements the PolyUI scene graph: drawables, layouts, the
flexbox placement algorithm, animation-driven drawable ops, and the
framebuffer-cached render scheduler. Drawing goes through the
[render.Renderer] capability; nothing here touches a backend directly.

The frame protocol is single-threaded and cooperative: each tick the host
calls [Scene.Frame] with the elapsed delta, which recalculates bounds if a
structural change was flagged and then re-renders only what is dirty.
*/
package core

import (
	"time"

	"github.com/polyui/polyui/anim"
	"github.com/polyui/polyui/render"
	"github.com/polyui/polyui/units"
)

// Drawable is any node in the scene graph: a leaf component or a layout
// container. The shared fields live on [DrawableBase]; use [AsLayout] to
// branch where container behavior genuinely differs.
type Drawable interface {

	// AsDrawable returns the [DrawableBase] for this node.
	AsDrawable() *DrawableBase

	// CalculateBounds resolves the node's position and size against the
	// given context. For layouts this recurses into children bottom-up
	// and may run a placement algorithm. It is invoked on structural
	// change, not per frame.
	CalculateBounds(ctx *units.Context) error

	// PreRender applies the node's active drawable ops in insertion
	// order, advancing their animations by the frame delta.
	PreRender(delta time.Duration)

	// Render emits the node's draw calls. It is a pure function of
	// current state and must not mutate the node.
	Render()

	// PostRender unapplies the active ops in reverse order, restoring
	// renderer state, and drops ops that have finished.
	PostRender()

	// CanBeRemoved reports whether the node has no unfinished
	// animations and can be safely unlinked from its parent.
	CanBeRemoved() bool
}

// RemovalState is the lifecycle state of a drawable with respect to its
// parent layout.
type RemovalState int32

const (
	// Live is the normal attached state.
	Live RemovalState = iota

	// PendingRemoval means the drawable has been removed by the host but
	// stays linked until its exit animations finish.
	PendingRemoval

	// Removed is the terminal state: the drawable has been unlinked.
	Removed
)

var removalStateNames = [...]string{"live", "pending-removal", "removed"}

func (s RemovalState) String() string {
	if s < 0 || int(s) >= len(removalStateNames) {
		return "invalid"
	}
	return removalStateNames[s]
}

// DrawableBase implements the common state of every scene graph node.
// Concrete components and layouts embed it.
type DrawableBase struct {

	// This is the value of this node as its true underlying type,
	// so methods defined on the base can call overridden methods.
	// Constructors set it; [LayoutBase.AddComponent] sets it as a
	// fallback for hand-built values.
	This Drawable

	// At is the node's position, relative to its parent layout.
	// For children of a flex layout it may carry a [units.UnitFlex]
	// placement value; the layout pass assigns the actual pixels.
	At units.Point

	// Sized is the node's size. It is nil until supplied explicitly or
	// inferred by the node's size calculation during the layout pass.
	Sized *units.Size

	// AcceptsInput marks the node as an input target for the host's
	// event dispatch, which is outside this package.
	AcceptsInput bool

	// OnAdded, if set, is called after the node is attached to a layout.
	OnAdded func(d Drawable)

	// OnRemoved, if set, is called when removal is requested, before the
	// node is unlinked. This is the hook for starting exit animations;
	// the node stays attached until they finish.
	OnRemoved func(d Drawable)

	// parent is the owning layout; nil while detached. Non-owning
	// back-reference, written only at attach/detach.
	parent *LayoutBase

	// renderer is the shared render capability, propagated on attach.
	renderer render.Renderer

	// needsRedraw marks the node's cached rendering as stale.
	needsRedraw bool

	// needsRecalculation marks the node's bounds as stale.
	needsRecalculation bool

	// state is the removal lifecycle state.
	state RemovalState

	// ops are the active drawable ops, applied around each render call
	// in insertion order and unapplied in reverse.
	ops []DrawableOp

	// animations are standalone animations registered on this node,
	// advanced each frame; they keep the node alive while unfinished.
	animations []*anim.Animation
}

// AsDrawable returns the [DrawableBase] for this node.
func (db *DrawableBase) AsDrawable() *DrawableBase {
	return db
}

// Parent returns the owning layout, or nil while detached.
func (db *DrawableBase) Parent() *LayoutBase {
	return db.parent
}

// Renderer returns the render capability this node draws through.
func (db *DrawableBase) Renderer() render.Renderer {
	return db.renderer
}

// State returns the removal lifecycle state.
func (db *DrawableBase) State() RemovalState {
	return db.state
}

// X returns the resolved position along the horizontal axis, relative to
// the parent layout. Only valid after the layout pass.
func (db *DrawableBase) X() float32 {
	return db.At.X.MustPx()
}

// Y returns the resolved position along the vertical axis, relative to
// the parent layout. Only valid after the layout pass.
func (db *DrawableBase) Y() float32 {
	return db.At.Y.MustPx()
}

// Width returns the resolved width, or 0 if the size is not yet known.
func (db *DrawableBase) Width() float32 {
	if db.Sized == nil {
		return 0
	}
	return db.Sized.X.MustPx()
}

// Height returns the resolved height, or 0 if the size is not yet known.
func (db *DrawableBase) Height() float32 {
	if db.Sized == nil {
		return 0
	}
	return db.Sized.Y.MustPx()
}

// ScreenX returns the absolute horizontal position, accumulated through
// the parent chain.
func (db *DrawableBase) ScreenX() float32 {
	x := db.X()
	if db.parent != nil {
		x += db.parent.ScreenX()
	}
	return x
}

// ScreenY returns the absolute vertical position, accumulated through
// the parent chain.
func (db *DrawableBase) ScreenY() float32 {
	y := db.Y()
	if db.parent != nil {
		y += db.parent.ScreenY()
	}
	return y
}

// SetSize supplies an explicit size.
func (db *DrawableBase) SetSize(s units.Size) {
	db.Sized = &s
	db.SetNeedsRecalculation(true)
}

// NeedsRedraw returns whether the node's cached rendering is stale.
func (db *DrawableBase) NeedsRedraw() bool {
	return db.needsRedraw
}

// SetNeedsRedraw sets the redraw flag. Setting it true also marks every
// ancestor layout dirty so framebuffer caches up the chain are refreshed.
func (db *DrawableBase) SetNeedsRedraw(needs bool) {
	db.needsRedraw = needs
	if !needs {
		return
	}
	for p := db.parent; p != nil; p = p.parent {
		p.needsRedraw = true
	}
}

// NeedsRecalculation returns whether the node's bounds are stale.
func (db *DrawableBase) NeedsRecalculation() bool {
	return db.needsRecalculation
}

// SetNeedsRecalculation sets the recalculation flag. Setting it true
// propagates to every ancestor so the next [Scene.Frame] reruns the
// layout pass.
func (db *DrawableBase) SetNeedsRecalculation(needs bool) {
	db.needsRecalculation = needs
	if !needs {
		return
	}
	for p := db.parent; p != nil; p = p.parent {
		p.needsRecalculation = true
	}
	db.SetNeedsRedraw(needs)
}

// AddOp queues a drawable op; it is applied around every subsequent
// render call until finished.
func (db *DrawableBase) AddOp(op DrawableOp) {
	db.ops = append(db.ops, op)
	db.SetNeedsRedraw(true)
}

// Ops returns the active drawable ops.
func (db *DrawableBase) Ops() []DrawableOp {
	return db.ops
}

// Animate registers a standalone animation on this node. It is advanced
// every frame during PreRender and keeps the node from being removed
// until it finishes.
func (db *DrawableBase) Animate(a *anim.Animation) {
	if a.Finished() {
		return
	}
	db.animations = append(db.animations, a)
	db.SetNeedsRedraw(true)
}

// PreRender advances registered animations and applies the active ops in
// insertion order, stepping each op's animation by the frame delta.
func (db *DrawableBase) PreRender(delta time.Duration) {
	live := db.animations[:0]
	for _, a := range db.animations {
		a.Update(delta)
		if !a.Finished() {
			live = append(live, a)
		}
	}
	db.animations = live
	for _, op := range db.ops {
		op.Apply(delta)
	}
}

// Render is a placeholder implementation; concrete drawables override it.
func (db *DrawableBase) Render() {}

// PostRender unapplies the active ops in reverse insertion order (strict
// stack discipline, so nested transforms compose correctly) and drops
// any op that has finished.
func (db *DrawableBase) PostRender() {
	for i := len(db.ops) - 1; i >= 0; i-- {
		db.ops[i].Unapply()
	}
	remaining := db.ops[:0]
	for _, op := range db.ops {
		if !op.Finished() {
			remaining = append(remaining, op)
		}
	}
	db.ops = remaining
}

// Animating returns whether the node has any unfinished op or registered
// animation.
func (db *DrawableBase) Animating() bool {
	if len(db.animations) > 0 {
		return true
	}
	for _, op := range db.ops {
		if !op.Finished() {
			return true
		}
	}
	return false
}

// CanBeRemoved reports whether the node can be safely unlinked from its
// parent: a pure predicate over the node's own active animation set.
func (db *DrawableBase) CanBeRemoved() bool {
	return !db.Animating()
}

// flexOf returns the flex placement directives carried by the node's
// position value, or the defaults if it carries none.
func flexOf(d Drawable) units.Flex {
	at := &d.AsDrawable().At
	if at.X.Unit == units.UnitFlex && at.X.Flex != nil {
		return *at.X.Flex
	}
	if at.Y.Unit == units.UnitFlex && at.Y.Flex != nil {
		return *at.Y.Flex
	}
	return units.FlexDefault()
}
