// Copyright (c) 2026, PolyUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"fmt"
	"log/slog"
)

// Vec2 is an ordered pair of [Value]s representing either a position or an
// extent along the X and Y axes. Both components must share the same unit
// type; [NewVec2] enforces this on construction.
type Vec2 struct {

	// X is the horizontal axis value.
	X Value

	// Y is the vertical axis value.
	Y Value
}

// Point is a position Vec2.
type Point = Vec2

// Size is an extent Vec2.
type Size = Vec2

// NewVec2 returns a Vec2 from the two given values. Mismatched unit types
// are a structural misuse: a warning is logged and both values are kept
// as given, so a single bad pair does not take down a whole layout pass.
func NewVec2(x, y Value) Vec2 {
	if x.Unit != y.Unit {
		slog.Warn("units.NewVec2: mismatched unit types", "x", x.Unit, "y", y.Unit)
	}
	return Vec2{X: x, Y: y}
}

// PxVec2 returns a Vec2 of two concrete pixel values.
func PxVec2(x, y float32) Vec2 {
	return Vec2{X: Px(x), Y: Px(y)}
}

// String implements the [fmt.Stringer] interface.
func (v *Vec2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Dim returns a pointer to the value for the given dimension.
func (v *Vec2) Dim(d Dims) *Value {
	switch d {
	case X:
		return &v.X
	case Y:
		return &v.Y
	default:
		panic("units.Vec2 dimension invalid")
	}
}

// SetDim sets the value for the given dimension.
func (v *Vec2) SetDim(d Dims, val Value) {
	switch d {
	case X:
		v.X = val
	case Y:
		v.Y = val
	default:
		panic("units.Vec2 dimension invalid")
	}
}

// Resolve resolves both components against the given context,
// X against the horizontal axis and Y against the vertical.
func (v *Vec2) Resolve(ctx *Context) error {
	if err := v.X.Resolve(ctx, X); err != nil {
		return err
	}
	return v.Y.Resolve(ctx, Y)
}

// Resolved returns whether both components hold valid pixel values.
func (v *Vec2) Resolved() bool {
	return v.X.Resolved() && v.Y.Resolved()
}

// Move shifts both components' pixel values in place by the given deltas.
// It mutates the backing values and does not re-resolve dynamic units;
// both components must already be resolved.
func (v *Vec2) Move(dx, dy float32) error {
	if err := v.X.AddPx(dx); err != nil {
		return err
	}
	return v.Y.AddPx(dy)
}

// Scale multiplies both components' pixel values by the given factors.
// Only valid on resolved values.
func (v *Vec2) Scale(sx, sy float32) error {
	if err := v.X.MulPx(sx); err != nil {
		return err
	}
	return v.Y.MulPx(sy)
}

// Clone returns an independent copy of both components.
func (v Vec2) Clone() Vec2 {
	return Vec2{X: v.X.Clone(), Y: v.Y.Clone()}
}
