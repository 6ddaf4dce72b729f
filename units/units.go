// Copyright (c) 2026, PolyUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package units supports the measurement units used for positioning and
sizing drawables: concrete pixels, percentage-of-parent, viewport-relative
units, and flex/grid placement directives.

A unit is stored along with a value and can be converted at a later point
into a raw pixel value using the [Context], which contains the reference
sizes needed for the conversion. Dynamic units (percent and viewport units)
have no pixel value at all until they have been resolved at least once;
reading one before resolution is a layout-order bug and fails fast.
*/
package units

// Units is an enum that represents a measurement unit (px, percent, vw, etc).
type Units int32

const (
	// UnitPx is a concrete pixel value; it needs no resolution.
	UnitPx Units = iota

	// UnitPercent is a percentage of the parent size on the same axis,
	// in the range [0, 100]. It must be resolved against a [Context]
	// before its pixel value is valid.
	UnitPercent

	// UnitVw is 1% of the viewport's width.
	UnitVw

	// UnitVh is 1% of the viewport's height.
	UnitVh

	// UnitVmin is 1% of the viewport's smaller dimension.
	UnitVmin

	// UnitVmax is 1% of the viewport's larger dimension.
	UnitVmax

	// UnitFlex carries flex placement directives (order index, grow and
	// shrink weights, row break hint) for a child of a flex layout.
	// It holds no geometry of its own; its pixel value is assigned by
	// the layout pass.
	UnitFlex

	// UnitGrid carries grid cell placement directives. Like [UnitFlex],
	// it holds no geometry; its pixel value is assigned by the layout pass.
	UnitGrid
)

// UnitNames are the short names of the units, as used in String output.
var UnitNames = [...]string{
	UnitPx:      "px",
	UnitPercent: "percent",
	UnitVw:      "vw",
	UnitVh:      "vh",
	UnitVmin:    "vmin",
	UnitVmax:    "vmax",
	UnitFlex:    "flex",
	UnitGrid:    "grid",
}

func (u Units) String() string {
	if u < 0 || int(u) >= len(UnitNames) {
		return "invalid"
	}
	return UnitNames[u]
}

// IsDynamic returns whether the unit depends on a reference size in the
// [Context] and therefore requires resolution before its pixel value
// is valid.
func (u Units) IsDynamic() bool {
	switch u {
	case UnitPercent, UnitVw, UnitVh, UnitVmin, UnitVmax:
		return true
	}
	return false
}

// Dims is a list of the dimensions (axes) of a 2D value.
type Dims int32

const (
	// X is the horizontal axis.
	X Dims = iota

	// Y is the vertical axis.
	Y
)

func (d Dims) String() string {
	switch d {
	case X:
		return "X"
	case Y:
		return "Y"
	}
	return "invalid"
}

// Other returns the other dimension.
func (d Dims) Other() Dims {
	if d == X {
		return Y
	}
	return X
}
