// Copyright (c) 2026, PolyUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"testing"
	"time"

	"github.com/polyui/polyui/anim"
	"github.com/polyui/polyui/render"
	"github.com/polyui/polyui/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPixelLayoutSizeInference(t *testing.T) {
	l := NewPixelLayout(units.PxVec2(0, 0))
	l.AddComponent(NewColorBlock(units.PxVec2(10, 10), units.PxVec2(50, 20), blockColor))
	ctx := units.NewContext(800, 600)
	require.NoError(t, l.CalculateBounds(&ctx))

	assert.Equal(t, float32(60), l.Width())
	assert.Equal(t, float32(30), l.Height())
	assert.False(t, l.NeedsRecalculation())
}

func TestScreenPositionAccumulates(t *testing.T) {
	root := NewPixelLayout(units.PxVec2(100, 50))
	inner := NewPixelLayout(units.PxVec2(10, 20))
	b := NewColorBlock(units.PxVec2(1, 2), units.PxVec2(5, 5), blockColor)
	inner.AddComponent(b)
	root.AddChild(inner)
	ctx := units.NewContext(800, 600)
	require.NoError(t, root.CalculateBounds(&ctx))

	assert.Equal(t, float32(1), b.X())
	assert.Equal(t, float32(111), b.ScreenX())
	assert.Equal(t, float32(72), b.ScreenY())
}

func TestAddAttachedDrawableWarnsAndIgnores(t *testing.T) {
	msgs := captureLogs(t)

	l1 := NewPixelLayout(units.PxVec2(0, 0))
	l2 := NewPixelLayout(units.PxVec2(0, 0))
	b := pxBlock(10, 10)
	l1.AddComponent(b)
	l2.AddComponent(b)

	assert.Len(t, l1.Components, 1)
	assert.Empty(t, l2.Components)
	assert.Same(t, l1.AsLayoutBase(), b.Parent())
	require.NotEmpty(t, *msgs)
	assert.Contains(t, (*msgs)[0], "already attached")
}

func TestRemoveAbsentDrawableWarnsAndIgnores(t *testing.T) {
	msgs := captureLogs(t)

	l := NewPixelLayout(units.PxVec2(0, 0))
	l.RemoveComponent(pxBlock(10, 10))

	assert.Empty(t, l.removeQueue)
	require.NotEmpty(t, *msgs)
	assert.Contains(t, (*msgs)[0], "not in this layout")
}

func TestRemoveTwiceWarnsAndIgnores(t *testing.T) {
	msgs := captureLogs(t)

	l := NewPixelLayout(units.PxVec2(0, 0))
	b := pxBlock(10, 10)
	l.AddComponent(b)
	l.RemoveComponent(b)
	l.RemoveComponent(b)

	assert.Len(t, l.removeQueue, 1)
	assert.Equal(t, PendingRemoval, b.State())
	require.NotEmpty(t, *msgs)
	assert.Contains(t, (*msgs)[len(*msgs)-1], "already pending")
}

func TestRemovalWaitsForExitAnimation(t *testing.T) {
	root := NewPixelLayout(units.PxVec2(0, 0))
	root.SetSize(units.PxVec2(100, 100))
	b := pxBlock(10, 10)
	root.AddComponent(b)

	rec := render.NewRecorder()
	sc := NewScene(root, rec, 800, 600)
	sc.Settings.FramebuffersEnabled = false

	removed := 0
	b.OnRemoved = func(d Drawable) {
		removed++
		d.AsDrawable().Animate(anim.New(anim.Linear, 0, 1, 100*time.Millisecond))
	}
	root.RemoveComponent(b)
	assert.Equal(t, 1, removed)
	assert.Equal(t, PendingRemoval, b.State())

	// the exit animation holds the drawable in the tree
	require.NoError(t, sc.Frame(16*time.Millisecond))
	assert.Len(t, root.Components, 1)

	// this frame finishes the animation; the drain at the start of the
	// frame ran before that, so unlinking happens one frame later
	require.NoError(t, sc.Frame(200*time.Millisecond))
	assert.Len(t, root.Components, 1)

	require.NoError(t, sc.Frame(16*time.Millisecond))
	assert.Empty(t, root.Components)
	assert.Equal(t, Removed, b.State())
	assert.Nil(t, b.Parent())
	assert.Equal(t, 1, removed)
}

func TestFramebufferCaching(t *testing.T) {
	root := NewPixelLayout(units.PxVec2(0, 0))
	root.SetSize(units.PxVec2(100, 100))
	inner := NewPixelLayout(units.PxVec2(10, 10))
	inner.SetSize(units.PxVec2(50, 50))
	b := pxBlock(20, 20)
	inner.AddComponent(b)
	root.AddChild(inner)

	rec := render.NewRecorder()
	sc := NewScene(root, rec, 800, 600)
	sc.Settings.MinDrawablesForFramebuffer = 1

	// first frame rasterizes both layouts into fresh caches
	require.NoError(t, sc.Frame(16*time.Millisecond))
	assert.Equal(t, 2, rec.Created)
	assert.Equal(t, 1, rec.Count("Rect"))
	assert.NotNil(t, root.Framebuffer())
	assert.NotNil(t, inner.Framebuffer())

	// a clean frame is a single blit: no content is re-rendered
	rec.Reset()
	require.NoError(t, sc.Frame(16*time.Millisecond))
	assert.Equal(t, 0, rec.Count("Rect"))
	assert.Equal(t, 1, rec.Count("DrawFramebuffer"))

	// dirtying a leaf refreshes every cache on its ancestor chain
	b.SetNeedsRedraw(true)
	rec.Reset()
	require.NoError(t, sc.Frame(16*time.Millisecond))
	assert.Equal(t, 1, rec.Count("Rect"))
	assert.Equal(t, 0, rec.ScissorDepth)
	assert.Nil(t, rec.BoundFramebuffer)
}

func TestFramebufferRasterizesInLocalCoordinates(t *testing.T) {
	root := NewPixelLayout(units.PxVec2(300, 200))
	root.SetSize(units.PxVec2(50, 50))
	root.AddComponent(pxBlock(20, 20))

	rec := render.NewRecorder()
	sc := NewScene(root, rec, 800, 600)
	sc.Settings.MinDrawablesForFramebuffer = 1
	require.NoError(t, sc.Frame(16*time.Millisecond))

	// content rendered between bind and unbind must land at the
	// framebuffer's origin, not at the layout's screen position
	bound := false
	for _, c := range rec.Calls {
		switch c.Op {
		case "BindFramebuffer":
			bound = true
		case "UnbindFramebuffer":
			bound = false
		case "Rect", "PushScissor":
			if bound {
				assert.Equal(t, float32(0), c.Args[0], c.Op)
				assert.Equal(t, float32(0), c.Args[1], c.Op)
			}
		}
	}

	// the blit itself is at the screen position
	blit := rec.Calls[len(rec.Calls)-1]
	assert.Equal(t, "DrawFramebuffer", blit.Op)
	assert.Equal(t, float32(300), blit.Args[0])
	assert.Equal(t, float32(200), blit.Args[1])
	assert.Equal(t, 0, rec.TransformDepth)
	assert.Equal(t, float32(0), rec.NetTranslateX)
}

func TestFramebufferParentWithPlainChildSettles(t *testing.T) {
	root := NewPixelLayout(units.PxVec2(0, 0))
	root.SetSize(units.PxVec2(100, 100))
	inner := NewPixelLayout(units.PxVec2(10, 10))
	inner.SetSize(units.PxVec2(50, 50))
	inner.AddComponent(pxBlock(20, 20))
	root.AddChild(inner)

	rec := render.NewRecorder()
	sc := NewScene(root, rec, 800, 600)
	sc.Settings.MinDrawablesForFramebuffer = 2

	// only the root is over the threshold; the inner layout renders
	// directly into the root's cache
	require.NoError(t, sc.Frame(16*time.Millisecond))
	require.NotNil(t, root.Framebuffer())
	require.Nil(t, inner.Framebuffer())
	assert.Equal(t, 1, rec.Count("Rect"))

	// clean frames settle to a single blit; the uncached child must not
	// keep the root re-rasterizing
	for i := 0; i < 2; i++ {
		rec.Reset()
		require.NoError(t, sc.Frame(16*time.Millisecond))
		assert.Equal(t, 0, rec.Count("Rect"))
		assert.Equal(t, 0, rec.Count("BindFramebuffer"))
		assert.Equal(t, 1, rec.Count("DrawFramebuffer"))
	}
}

func TestCountDrawables(t *testing.T) {
	root := NewPixelLayout(units.PxVec2(0, 0))
	inner := NewPixelLayout(units.PxVec2(0, 0))
	inner.AddComponent(pxBlock(1, 1))
	inner.AddComponent(pxBlock(1, 1))
	root.AddChild(inner)
	root.AddComponent(pxBlock(1, 1))

	assert.Equal(t, 4, root.CountDrawables())
}

func TestTextLabelMeasuresItself(t *testing.T) {
	root := NewPixelLayout(units.PxVec2(0, 0))
	label := NewTextLabel(units.PxVec2(0, 0), nil, "hello", 16, blockColor)
	root.AddComponent(label)

	rec := render.NewRecorder()
	sc := NewScene(root, rec, 800, 600)
	require.NoError(t, sc.Frame(16*time.Millisecond))

	assert.Equal(t, float32(40), label.Width())
	assert.Equal(t, float32(16), label.Height())

	// changing the text drops the inferred size and reflows
	label.SetText("hi")
	require.NoError(t, sc.Frame(16*time.Millisecond))
	assert.Equal(t, float32(16), label.Width())
}

func TestUnsizedComponentWithoutInferenceFails(t *testing.T) {
	root := NewPixelLayout(units.PxVec2(0, 0))
	b := &ColorBlock{}
	b.This = b
	root.AddComponent(b)
	ctx := units.NewContext(800, 600)

	err := root.CalculateBounds(&ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "size inference")
}
