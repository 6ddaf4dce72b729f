// Copyright (c) 2026, PolyUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import "fmt"

// Value is a single axis measurement: an amount tagged with a [Units] type,
// plus the resolved pixel value once resolution has happened. Concrete
// pixel values are born resolved; dynamic values (percent, viewport units)
// are only valid after [Value.Resolve] has been called with a [Context],
// and must be re-resolved whenever the reference sizes change.
type Value struct {

	// Amount is the value in terms of the specified unit.
	Amount float32

	// Unit is the unit used for the value.
	Unit Units

	// Flex holds the flex placement directives if Unit is [UnitFlex].
	Flex *Flex

	// px is the resolved pixel value; only valid if resolved is true.
	px float32

	// resolved is whether px holds a valid value.
	resolved bool
}

// Px returns a concrete pixel value, which needs no resolution.
func Px(v float32) Value {
	return Value{Amount: v, Unit: UnitPx, px: v, resolved: true}
}

// Percent returns a percentage-of-parent value. The range is validated
// at resolution time; use [NewPercent] to validate at construction.
func Percent(v float32) Value {
	return Value{Amount: v, Unit: UnitPercent}
}

// NewPercent returns a percentage-of-parent value, failing if the amount
// is outside [0, 100].
func NewPercent(v float32) (Value, error) {
	if v < 0 || v > 100 {
		return Value{}, fmt.Errorf("units: percent amount %g out of range [0, 100]", v)
	}
	return Percent(v), nil
}

// Vw returns a viewport-width-relative value (1vw = 1% of viewport width).
func Vw(v float32) Value { return Value{Amount: v, Unit: UnitVw} }

// Vh returns a viewport-height-relative value (1vh = 1% of viewport height).
func Vh(v float32) Value { return Value{Amount: v, Unit: UnitVh} }

// Vmin returns a value relative to the smaller viewport dimension.
func Vmin(v float32) Value { return Value{Amount: v, Unit: UnitVmin} }

// Vmax returns a value relative to the larger viewport dimension.
func Vmax(v float32) Value { return Value{Amount: v, Unit: UnitVmax} }

// String implements the [fmt.Stringer] interface.
func (v Value) String() string {
	return fmt.Sprintf("%g%s", v.Amount, v.Unit)
}

// Resolve computes the pixel value from the given context, along the given
// dimension. It is safe to call repeatedly; each call recomputes from the
// current context. Placement units (flex, grid) resolve to zero pixels:
// their geometry is assigned by the layout pass via [Value.SetPx].
func (v *Value) Resolve(ctx *Context, d Dims) error {
	switch v.Unit {
	case UnitPx:
		v.px = v.Amount
	case UnitPercent:
		if v.Amount < 0 || v.Amount > 100 {
			return fmt.Errorf("units: percent amount %g out of range [0, 100]", v.Amount)
		}
		v.px = ctx.Parent(d) * v.Amount / 100
	case UnitVw:
		v.px = ctx.Vw * v.Amount / 100
	case UnitVh:
		v.px = ctx.Vh * v.Amount / 100
	case UnitVmin:
		v.px = ctx.Vmin * v.Amount / 100
	case UnitVmax:
		v.px = ctx.Vmax * v.Amount / 100
	case UnitFlex, UnitGrid:
		if !v.resolved {
			v.px = 0
		}
	default:
		return fmt.Errorf("units: cannot resolve invalid unit %d", v.Unit)
	}
	v.resolved = true
	return nil
}

// Px returns the resolved pixel value. It fails if the value is dynamic
// and has never been resolved, since that indicates a layout-order bug:
// the value is being read before its parent resolved it.
func (v *Value) Px() (float32, error) {
	if !v.resolved {
		return 0, fmt.Errorf("units: reading %s value before it has been resolved", v.Unit)
	}
	return v.px, nil
}

// MustPx returns the resolved pixel value, panicking if it has not been
// resolved. It is intended for use after the layout pass has completed,
// where an unresolved value is a programmer error.
func (v *Value) MustPx() float32 {
	px, err := v.Px()
	if err != nil {
		panic(err)
	}
	return px
}

// SetPx sets the pixel value directly, marking the value resolved.
// The layout pass uses this to assign computed geometry to flex and
// grid placement units.
func (v *Value) SetPx(px float32) {
	v.px = px
	v.resolved = true
}

// AddPx shifts the resolved pixel value by the given delta. The value must
// already be resolved; the shift does not re-resolve dynamic units.
func (v *Value) AddPx(dpx float32) error {
	if !v.resolved {
		return fmt.Errorf("units: moving %s value before it has been resolved", v.Unit)
	}
	v.px += dpx
	return nil
}

// MulPx multiplies the resolved pixel value by the given factor.
// Only valid on resolved values.
func (v *Value) MulPx(factor float32) error {
	if !v.resolved {
		return fmt.Errorf("units: scaling %s value before it has been resolved", v.Unit)
	}
	v.px *= factor
	return nil
}

// Resolved returns whether the value holds a valid pixel value.
func (v *Value) Resolved() bool {
	return v.resolved
}

// Clone returns an independent copy of the value, including its resolved
// state and any flex directives.
func (v Value) Clone() Value {
	nv := v
	if v.Flex != nil {
		f := *v.Flex
		nv.Flex = &f
	}
	return nv
}
