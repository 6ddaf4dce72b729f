// Copyright (c) 2026, PolyUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

// Flex is the set of placement directives a child carries inside a flex
// layout. It holds no geometry, only instructions for the layout pass.
type Flex struct {

	// Index is the explicit order index of the child within the layout.
	// Children with Index >= 0 are spliced to that position before row
	// building; -1 means natural (insertion) order.
	Index int

	// Grow is the flex-grow weight: the share of spare main-axis space
	// this child receives, relative to its row siblings. 0 means the
	// child never grows.
	Grow float32

	// Shrink is the flex-shrink weight: the share of main-axis deficit
	// this child absorbs, relative to its row siblings. 0 means the
	// child never shrinks.
	Shrink float32

	// EndRow forces a row break after this child.
	EndRow bool
}

// FlexValue returns a [UnitFlex] placement value carrying the given
// directives. The pixel value starts at zero and is assigned by the
// layout pass.
func FlexValue(f Flex) Value {
	return Value{Unit: UnitFlex, Flex: &f, resolved: true}
}

// FlexDefault returns the directives for a child with no explicit flex
// value: natural order, no grow, no shrink, no row break.
func FlexDefault() Flex {
	return Flex{Index: -1}
}
