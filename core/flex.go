// Copyright (c) 2026, PolyUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/chewxy/math32"
	"github.com/polyui/polyui/units"
)

// Direction is the main axis and traversal order of a flex layout.
// The reverse variants only affect main-axis traversal order within each
// row; no stored axis swap happens.
type Direction int32

const (
	// Row lays children out horizontally, left to right.
	Row Direction = iota

	// Column lays children out vertically, top to bottom.
	Column

	// RowReverse lays children out horizontally, right to left.
	RowReverse

	// ColumnReverse lays children out vertically, bottom to top.
	ColumnReverse
)

var directionNames = [...]string{"row", "column", "row-reverse", "column-reverse"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "invalid"
	}
	return directionNames[d]
}

// Wrapping controls whether rows wrap when a strict main size is exceeded.
type Wrapping int32

const (
	// NoWrap keeps all children in a single row.
	NoWrap Wrapping = iota

	// Wrap starts a new row when the next child would exceed a strict
	// main size.
	Wrap

	// WrapReverse wraps, then reverses both the row order and the
	// per-row child order.
	WrapReverse
)

var wrappingNames = [...]string{"no-wrap", "wrap", "wrap-reverse"}

func (w Wrapping) String() string {
	if w < 0 || int(w) >= len(wrappingNames) {
		return "invalid"
	}
	return wrappingNames[w]
}

// Align is the set of justification and alignment policies. Only some
// values apply in each context: Stretch only applies to AlignContent,
// and the space distributions only to JustifyContent and AlignContent.
type Align int32

const (
	// Start packs items at the start (left, top).
	Start Align = iota

	// End packs items at the end (right, bottom).
	End

	// Center centers items.
	Center

	// SpaceBetween distributes the spare space evenly between items,
	// with the first and last flush to the edges. A single item is
	// centered instead.
	SpaceBetween

	// SpaceEvenly distributes the spare space evenly between items with
	// an additional half-gap at each end. A single item is centered.
	SpaceEvenly

	// Stretch (AlignContent only) grows rows to fill the cross extent
	// and forces each child's cross size to its row's size.
	Stretch
)

var alignNames = [...]string{"start", "end", "center", "space-between", "space-evenly", "stretch"}

func (a Align) String() string {
	if a < 0 || int(a) >= len(alignNames) {
		return "invalid"
	}
	return alignNames[a]
}

// Gap is the spacing between flex items (main axis) and rows (cross
// axis), in pixels.
type Gap struct {
	Main, Cross float32
}

// FlexLayout positions its drawables with a flexbox algorithm: rows are
// built in resolved child order, wrapped against a strict main size,
// resized by grow/shrink weights, justified on the main axis and aligned
// on the cross axis. Children carry their directives in a
// [units.FlexValue] position; children without one get the defaults.
//
// With an explicit size the layout is strict: rows wrap at the main
// extent, and rows that overflow the cross extent are dropped with a
// warning. Without one, the layout sizes itself to its most demanding
// row and the accumulated row cross sizes.
type FlexLayout struct {
	LayoutBase

	// Direction is the main axis and traversal order.
	Direction Direction

	// Wrapping controls row wrapping.
	Wrapping Wrapping

	// JustifyContent positions items within their row on the main axis.
	JustifyContent Align

	// AlignItems positions each item within its row's cross band.
	AlignItems Align

	// AlignContent positions the rows within the overall cross extent.
	AlignContent Align

	// Gap is the inter-item and inter-row spacing.
	Gap Gap
}

// NewFlexLayout returns an empty row-direction flex layout at the given
// position.
func NewFlexLayout(at units.Point) *FlexLayout {
	fl := &FlexLayout{Gap: Gap{Main: 5, Cross: 5}}
	fl.This = fl
	fl.At = at
	return fl
}

// mainDim returns the dimension of the main axis.
func (fl *FlexLayout) mainDim() units.Dims {
	if fl.Direction == Row || fl.Direction == RowReverse {
		return units.X
	}
	return units.Y
}

// flexItem associates a drawable with its resolved directives and
// computed row geometry for the duration of one layout pass. These
// wrappers are ephemeral: they are rebuilt on every pass and never
// persisted.
type flexItem struct {
	d                 Drawable
	flex              units.Flex
	main, cross       float32
	mainPos, crossPos float32
}

// flexRow is one row of items, with its accumulated main extent
// (sizes plus inter-item gaps) and maximum cross size.
type flexRow struct {
	items    []*flexItem
	extent   float32
	cross    float32
	crossPos float32
}

// CalculateBounds runs the flex placement algorithm: resolve children
// bottom-up, build rows in resolved order, enforce the cross overflow
// policy, resolve grow/shrink, then justify and align. Rows are
// justified largest-first so the layout's own main size has already been
// ratcheted up to its most demanding row before smaller rows are placed
// against it.
func (fl *FlexLayout) CalculateBounds(ctx *units.Context) error {
	if err := fl.At.Resolve(ctx); err != nil {
		return err
	}
	strict := fl.Sized != nil
	if strict {
		if err := fl.Sized.Resolve(ctx); err != nil {
			return err
		}
	}
	cctx := fl.childContext(ctx)

	drawables := make([]Drawable, 0, len(fl.Components)+len(fl.Children))
	drawables = append(drawables, fl.Components...)
	for _, c := range fl.Children {
		drawables = append(drawables, c)
	}
	for _, d := range drawables {
		if err := d.CalculateBounds(&cctx); err != nil {
			return err
		}
	}

	md := fl.mainDim()
	cd := md.Other()
	var mainSize, crossSize float32
	if strict {
		mainSize = fl.Sized.Dim(md).MustPx()
		crossSize = fl.Sized.Dim(cd).MustPx()
	}

	rows := fl.buildRows(drawables, md, cd, strict, mainSize)
	rows = fl.dropCrossOverflow(rows, strict, crossSize)

	// resolve sizes and justify, most demanding row first: justification
	// can only ever grow the layout's own main size, so placing the
	// largest row first keeps smaller rows from being justified against
	// a stale extent
	ordered := slices.Clone(rows)
	slices.SortStableFunc(ordered, func(a, b *flexRow) int {
		return cmp.Compare(b.extent, a.extent)
	})
	for _, row := range ordered {
		if !strict && row.extent > mainSize {
			mainSize = row.extent
		}
		fl.resizeRow(row, mainSize, md)
		fl.justifyRow(row, mainSize)
	}

	crossSize = fl.alignRows(rows, strict, crossSize, cd)
	fl.alignItems(rows)

	for _, row := range rows {
		for _, it := range row.items {
			db := it.d.AsDrawable()
			db.At.Dim(md).SetPx(it.mainPos)
			db.At.Dim(cd).SetPx(it.crossPos)
		}
	}

	if fl.Sized == nil {
		sz := units.PxVec2(0, 0)
		fl.Sized = &sz
	}
	if !strict {
		fl.Sized.Dim(md).SetPx(mainSize)
		fl.Sized.Dim(cd).SetPx(crossSize)
	}
	fl.needsRecalculation = false
	return nil
}

// buildRows walks the drawables in resolved order (explicit indexes are
// spliced to their positions first) and accumulates rows, breaking on an
// end-row directive or, in strict mode with wrapping, when the next item
// would exceed the main size.
func (fl *FlexLayout) buildRows(drawables []Drawable, md, cd units.Dims, strict bool, mainSize float32) []*flexRow {
	items := make([]*flexItem, 0, len(drawables))
	for _, d := range drawables {
		db := d.AsDrawable()
		items = append(items, &flexItem{
			d:     d,
			flex:  flexOf(d),
			main:  db.Sized.Dim(md).MustPx(),
			cross: db.Sized.Dim(cd).MustPx(),
		})
	}

	ordered := make([]*flexItem, 0, len(items))
	for _, it := range items {
		if it.flex.Index < 0 {
			ordered = append(ordered, it)
		}
	}
	for _, it := range items {
		if it.flex.Index >= 0 {
			at := min(it.flex.Index, len(ordered))
			ordered = slices.Insert(ordered, at, it)
		}
	}

	var rows []*flexRow
	cur := &flexRow{}
	push := func() {
		if len(cur.items) > 0 {
			rows = append(rows, cur)
			cur = &flexRow{}
		}
	}
	wrap := fl.Wrapping != NoWrap && strict
	for _, it := range ordered {
		cand := cur.extent + it.main
		if len(cur.items) > 0 {
			cand += fl.Gap.Main
		}
		if wrap && len(cur.items) > 0 && cand > mainSize {
			push()
			cand = it.main
		}
		cur.items = append(cur.items, it)
		cur.extent = cand
		cur.cross = math32.Max(cur.cross, it.cross)
		if it.flex.EndRow {
			push()
		}
	}
	push()

	if fl.Direction == RowReverse || fl.Direction == ColumnReverse {
		for _, row := range rows {
			slices.Reverse(row.items)
		}
	}
	if fl.Wrapping == WrapReverse {
		slices.Reverse(rows)
		for _, row := range rows {
			slices.Reverse(row.items)
		}
	}
	return rows
}

// dropCrossOverflow enforces the strict cross-size policy: if the
// accumulated row cross sizes exceed an explicitly fixed cross size, a
// warning is logged and every child from the first overflowing row
// onward is removed immediately. Overflow is a hard policy, not silent
// clipping.
//
// TODO: offer a scroll mode as an alternative to dropping.
func (fl *FlexLayout) dropCrossOverflow(rows []*flexRow, strict bool, crossSize float32) []*flexRow {
	if !strict {
		return rows
	}
	cum := float32(0)
	cut := -1
	for i, row := range rows {
		if i > 0 {
			cum += fl.Gap.Cross
		}
		cum += row.cross
		if cum > crossSize {
			cut = i
			break
		}
	}
	if cut < 0 {
		return rows
	}
	dropped := 0
	for _, row := range rows[cut:] {
		dropped += len(row.items)
	}
	slog.Warn("core: flex children exceed the layout's fixed cross size; dropping overflowing rows",
		"layout", fmt.Sprintf("%T", fl.This), "droppedRows", len(rows)-cut, "droppedDrawables", dropped)
	for _, row := range rows[cut:] {
		for _, it := range row.items {
			fl.RemoveComponentNow(it.d)
		}
	}
	return rows[:cut]
}

// resizeRow distributes the row's spare main space to grow weights, or
// its deficit to shrink weights. An item with weight zero never resizes.
func (fl *FlexLayout) resizeRow(row *flexRow, mainSize float32, md units.Dims) {
	spare := mainSize - row.extent
	if spare == 0 {
		return
	}
	var total float32
	for _, it := range row.items {
		if spare > 0 {
			total += it.flex.Grow
		} else {
			total += it.flex.Shrink
		}
	}
	if total <= 0 {
		return
	}
	for _, it := range row.items {
		w := it.flex.Grow
		if spare < 0 {
			w = it.flex.Shrink
		}
		if w <= 0 {
			continue
		}
		it.main += spare * w / total
		it.d.AsDrawable().Sized.Dim(md).SetPx(it.main)
	}
	row.extent = float32(len(row.items)-1) * fl.Gap.Main
	for _, it := range row.items {
		row.extent += it.main
	}
}

// justifyRow assigns main-axis positions within the row. The space
// distributions collapse to centering for a single item rather than
// dividing by zero gaps.
func (fl *FlexLayout) justifyRow(row *flexRow, mainSize float32) {
	n := len(row.items)
	if n == 0 {
		return
	}
	var sum float32
	for _, it := range row.items {
		sum += it.main
	}
	switch fl.JustifyContent {
	case End:
		pos := mainSize
		for i := n - 1; i >= 0; i-- {
			it := row.items[i]
			pos -= it.main
			it.mainPos = pos
			pos -= fl.Gap.Main
		}
	case Center:
		pos := (mainSize - row.extent) / 2
		for _, it := range row.items {
			it.mainPos = pos
			pos += it.main + fl.Gap.Main
		}
	case SpaceBetween:
		if n == 1 {
			row.items[0].mainPos = (mainSize - sum) / 2
			return
		}
		step := (mainSize - sum) / float32(n-1)
		pos := float32(0)
		for _, it := range row.items {
			it.mainPos = pos
			pos += it.main + step
		}
	case SpaceEvenly:
		if n == 1 {
			row.items[0].mainPos = (mainSize - sum) / 2
			return
		}
		step := (mainSize - sum) / float32(n)
		pos := step / 2
		for _, it := range row.items {
			it.mainPos = pos
			pos += it.main + step
		}
	default: // Start
		pos := float32(0)
		for _, it := range row.items {
			it.mainPos = pos
			pos += it.main + fl.Gap.Main
		}
	}
}

// alignRows positions each row within the overall cross extent per
// AlignContent and returns the final cross size (which, without a strict
// size, is the accumulated row extent).
func (fl *FlexLayout) alignRows(rows []*flexRow, strict bool, crossSize float32, cd units.Dims) float32 {
	nr := len(rows)
	if nr == 0 {
		return crossSize
	}
	total := float32(nr-1) * fl.Gap.Cross
	for _, row := range rows {
		total += row.cross
	}
	if !strict {
		crossSize = total
	}
	free := crossSize - total

	pos := float32(0)
	between := fl.Gap.Cross
	switch fl.AlignContent {
	case End:
		pos = free
	case Center:
		pos = free / 2
	case SpaceBetween:
		if nr == 1 {
			pos = free / 2
		} else {
			between += free / float32(nr-1)
		}
	case SpaceEvenly:
		step := free / float32(nr)
		pos = step / 2
		between += step
	case Stretch:
		if free > 0 {
			add := free / float32(nr)
			for _, row := range rows {
				row.cross += add
			}
		}
	}
	for _, row := range rows {
		row.crossPos = pos
		pos += row.cross + between
	}
	if fl.AlignContent == Stretch {
		for _, row := range rows {
			for _, it := range row.items {
				it.cross = row.cross
				it.d.AsDrawable().Sized.Dim(cd).SetPx(row.cross)
			}
		}
	}
	return crossSize
}

// alignItems nudges each item within its row's cross band per AlignItems.
func (fl *FlexLayout) alignItems(rows []*flexRow) {
	for _, row := range rows {
		for _, it := range row.items {
			switch fl.AlignItems {
			case End:
				it.crossPos = row.crossPos + row.cross - it.cross
			case Center:
				it.crossPos = row.crossPos + (row.cross-it.cross)/2
			default: // Start
				it.crossPos = row.crossPos
			}
		}
	}
}
