// Copyright (c) 2026, PolyUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"time"

	"github.com/polyui/polyui/anim"
	"github.com/polyui/polyui/colors"
)

// DrawableOp is a reversible visual mutation bracketing a drawable's
// render call: applied before it, unapplied after it in reverse insertion
// order, and removed from the owner's op list once finished. An op may
// carry an animation; one without an animation applies at full strength
// for a single frame and is then finished.
type DrawableOp interface {

	// Apply advances the op's animation by the frame delta and applies
	// the mutation to the renderer (or the owning drawable).
	Apply(delta time.Duration)

	// Unapply reverses the mutation, restoring the renderer state that
	// Apply changed.
	Unapply()

	// Finished reports whether the op's animation is absent or complete.
	Finished() bool
}

// opBase carries the owning drawable and the optional progress animation
// shared by the concrete ops. The animation runs 0 to 1 through its curve.
type opBase struct {
	owner *DrawableBase
	anim  *anim.Animation
}

func newOpBase(owner Drawable, curve anim.Curves, duration time.Duration) opBase {
	ob := opBase{owner: owner.AsDrawable()}
	if duration > 0 {
		ob.anim = anim.New(curve, 0, 1, duration)
	}
	return ob
}

// progress advances the animation and returns the eased progress in
// [0, 1]; ops without an animation are always at full strength.
func (ob *opBase) progress(delta time.Duration) float32 {
	if ob.anim == nil {
		return 1
	}
	return ob.anim.Update(delta)
}

func (ob *opBase) Finished() bool {
	return ob.anim == nil || ob.anim.Finished()
}

// TranslateOp offsets the drawable's rendering by an animated delta.
// Unapply emits the exact negative offset, so an apply/unapply pair nets
// to the identity transform.
type TranslateOp struct {
	opBase
	dx, dy float32
	ax, ay float32 // applied amounts, for exact reversal
}

// NewTranslateOp returns a translate op on the given drawable. A zero
// duration applies the full offset immediately.
func NewTranslateOp(owner Drawable, dx, dy float32, curve anim.Curves, duration time.Duration) *TranslateOp {
	return &TranslateOp{opBase: newOpBase(owner, curve, duration), dx: dx, dy: dy}
}

func (op *TranslateOp) Apply(delta time.Duration) {
	t := op.progress(delta)
	op.ax, op.ay = op.dx*t, op.dy*t
	op.owner.renderer.Translate(op.ax, op.ay)
}

func (op *TranslateOp) Unapply() {
	op.owner.renderer.Translate(-op.ax, -op.ay)
}

// ScaleOp scales the drawable's rendering, animating from the identity
// factor to the target factors.
type ScaleOp struct {
	opBase
	sx, sy float32
	ax, ay float32
}

// NewScaleOp returns a scale op on the given drawable. Zero target
// factors are rejected at apply time by clamping to a minimal factor, so
// the inverse stays finite.
func NewScaleOp(owner Drawable, sx, sy float32, curve anim.Curves, duration time.Duration) *ScaleOp {
	return &ScaleOp{opBase: newOpBase(owner, curve, duration), sx: sx, sy: sy}
}

const minScaleFactor = 1e-6

func (op *ScaleOp) Apply(delta time.Duration) {
	t := op.progress(delta)
	op.ax = 1 + (op.sx-1)*t
	op.ay = 1 + (op.sy-1)*t
	if op.ax > -minScaleFactor && op.ax < minScaleFactor {
		op.ax = minScaleFactor
	}
	if op.ay > -minScaleFactor && op.ay < minScaleFactor {
		op.ay = minScaleFactor
	}
	op.owner.renderer.Scale(op.ax, op.ay)
}

func (op *ScaleOp) Unapply() {
	op.owner.renderer.Scale(1/op.ax, 1/op.ay)
}

// RotateOp rotates the drawable's rendering by an animated angle.
type RotateOp struct {
	opBase
	radians float32
	applied float32
}

// NewRotateOp returns a rotate op on the given drawable.
func NewRotateOp(owner Drawable, radians float32, curve anim.Curves, duration time.Duration) *RotateOp {
	return &RotateOp{opBase: newOpBase(owner, curve, duration), radians: radians}
}

func (op *RotateOp) Apply(delta time.Duration) {
	op.applied = op.radians * op.progress(delta)
	op.owner.renderer.Rotate(op.applied)
}

func (op *RotateOp) Unapply() {
	op.owner.renderer.Rotate(-op.applied)
}

// SkewOp skews the drawable's rendering by animated angles.
type SkewOp struct {
	opBase
	sx, sy float32
	ax, ay float32
}

// NewSkewOp returns a skew op on the given drawable.
func NewSkewOp(owner Drawable, sx, sy float32, curve anim.Curves, duration time.Duration) *SkewOp {
	return &SkewOp{opBase: newOpBase(owner, curve, duration), sx: sx, sy: sy}
}

func (op *SkewOp) Apply(delta time.Duration) {
	t := op.progress(delta)
	op.ax, op.ay = op.sx*t, op.sy*t
	op.owner.renderer.Skew(op.ax, op.ay)
}

func (op *SkewOp) Unapply() {
	op.owner.renderer.Skew(-op.ax, -op.ay)
}

// FadeOp animates the renderer's global alpha toward a target while the
// owner renders, restoring full alpha afterwards. Ops do not nest alpha:
// the unapply restores 1, not the previous op's value.
type FadeOp struct {
	opBase
	alpha   float32
	applied float32
}

// NewFadeOp returns a fade op toward the given alpha on the drawable.
func NewFadeOp(owner Drawable, alpha float32, curve anim.Curves, duration time.Duration) *FadeOp {
	return &FadeOp{opBase: newOpBase(owner, curve, duration), alpha: alpha}
}

func (op *FadeOp) Apply(delta time.Duration) {
	t := op.progress(delta)
	op.applied = 1 + (op.alpha-1)*t
	op.owner.renderer.SetAlpha(op.applied)
}

func (op *FadeOp) Unapply() {
	op.owner.renderer.SetAlpha(1)
}

// MoveToOp animates the drawable's position toward a target, mutating At
// in place. The position must already be resolved when the op is created.
// Like a recolor, the mutation persists after the op finishes.
type MoveToOp struct {
	opBase
	fromX, fromY float32
	toX, toY     float32
}

// NewMoveToOp returns an op moving the given drawable to the given
// parent-relative position.
func NewMoveToOp(owner Drawable, x, y float32, curve anim.Curves, duration time.Duration) *MoveToOp {
	db := owner.AsDrawable()
	return &MoveToOp{
		opBase: newOpBase(owner, curve, duration),
		fromX:  db.At.X.MustPx(),
		fromY:  db.At.Y.MustPx(),
		toX:    x,
		toY:    y,
	}
}

func (op *MoveToOp) Apply(delta time.Duration) {
	t := op.progress(delta)
	op.owner.At.X.SetPx(op.fromX + (op.toX-op.fromX)*t)
	op.owner.At.Y.SetPx(op.fromY + (op.toY-op.fromY)*t)
}

func (op *MoveToOp) Unapply() {}

// RecolorOp animates a color in place, blending from its value at
// construction toward a target. The mutation persists: unapply does not
// revert the color, and reverting is done by adding a new recolor op
// back toward the original (or reversing the animation).
type RecolorOp struct {
	opBase
	target *colors.Color
	from   colors.Color
	to     colors.Color
}

// NewRecolorOp returns a recolor op mutating the given color toward the
// given value.
func NewRecolorOp(owner Drawable, target *colors.Color, to colors.Color, curve anim.Curves, duration time.Duration) *RecolorOp {
	return &RecolorOp{opBase: newOpBase(owner, curve, duration), target: target, from: *target, to: to}
}

func (op *RecolorOp) Apply(delta time.Duration) {
	*op.target = colors.Blend(op.from, op.to, op.progress(delta))
}

func (op *RecolorOp) Unapply() {}
