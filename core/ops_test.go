// Copyright (c) 2026, PolyUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"testing"
	"time"

	"github.com/chewxy/math32"
	"github.com/polyui/polyui/anim"
	"github.com/polyui/polyui/colors"
	"github.com/polyui/polyui/render"
	"github.com/stretchr/testify/assert"
)

func opBlock(rec *render.Recorder) *ColorBlock {
	b := pxBlock(10, 10)
	b.renderer = rec
	return b
}

func TestTranslateOpRoundTrip(t *testing.T) {
	rec := render.NewRecorder()
	b := opBlock(rec)
	b.AddOp(NewTranslateOp(b, 10, 6, anim.Linear, 100*time.Millisecond))

	b.PreRender(50 * time.Millisecond)
	assert.Equal(t, float32(5), rec.NetTranslateX)
	assert.Equal(t, float32(3), rec.NetTranslateY)

	b.PostRender()
	assert.Equal(t, float32(0), rec.NetTranslateX)
	assert.Equal(t, float32(0), rec.NetTranslateY)
	assert.Len(t, b.Ops(), 1)
	assert.True(t, b.Animating())

	// the next frame completes the animation; the op applies in full,
	// still nets to zero on unapply, and is then dropped
	b.PreRender(100 * time.Millisecond)
	assert.Equal(t, float32(10), rec.NetTranslateX)
	b.PostRender()
	assert.Equal(t, float32(0), rec.NetTranslateX)
	assert.Empty(t, b.Ops())
	assert.False(t, b.Animating())
}

func TestOpsUnapplyInReverseOrder(t *testing.T) {
	rec := render.NewRecorder()
	b := opBlock(rec)
	b.AddOp(NewTranslateOp(b, 10, 0, anim.Linear, 0))
	b.AddOp(NewScaleOp(b, 2, 2, anim.Linear, 0))

	b.PreRender(16 * time.Millisecond)
	b.PostRender()

	var ops []string
	for _, c := range rec.Calls {
		ops = append(ops, c.Op)
	}
	assert.Equal(t, []string{"Translate", "Scale", "Scale", "Translate"}, ops)
	assert.Empty(t, b.Ops())
}

func TestZeroDurationOpAppliesOnceInFull(t *testing.T) {
	rec := render.NewRecorder()
	b := opBlock(rec)
	op := NewFadeOp(b, 0.25, anim.Linear, 0)
	assert.True(t, op.Finished())
	b.AddOp(op)

	b.PreRender(16 * time.Millisecond)
	assert.Equal(t, float32(0.25), rec.Alpha)
	b.PostRender()
	assert.Equal(t, float32(1), rec.Alpha)
	assert.Empty(t, b.Ops())
}

func TestScaleOpZeroTargetStaysInvertible(t *testing.T) {
	rec := render.NewRecorder()
	b := opBlock(rec)
	op := NewScaleOp(b, 0, 0, anim.Linear, 0)
	op.Apply(0)
	op.Unapply()

	assert.Equal(t, float32(minScaleFactor), op.ax)
	last := rec.Calls[len(rec.Calls)-1]
	assert.False(t, math32.IsInf(last.Args[0], 0))
	assert.False(t, math32.IsNaN(last.Args[0]))
}

func TestRotateOpRoundTrip(t *testing.T) {
	rec := render.NewRecorder()
	b := opBlock(rec)
	b.AddOp(NewRotateOp(b, math32.Pi, anim.Linear, 0))

	b.PreRender(16 * time.Millisecond)
	b.PostRender()

	assert.Equal(t, float32(math32.Pi), rec.Calls[0].Args[0])
	assert.Equal(t, float32(-math32.Pi), rec.Calls[1].Args[0])
}

func TestRecolorOpMutationPersists(t *testing.T) {
	rec := render.NewRecorder()
	b := opBlock(rec)
	b.Color = colors.RGB(0, 0, 0)
	b.AddOp(NewRecolorOp(b, &b.Color, colors.RGB(255, 255, 255), anim.Linear, 0))

	b.PreRender(16 * time.Millisecond)
	b.PostRender()

	// unlike transform ops, a recolor is not reverted after rendering
	assert.Equal(t, colors.RGB(255, 255, 255), b.Color)
	assert.Empty(t, b.Ops())
}

func TestMoveToOpMutatesPosition(t *testing.T) {
	rec := render.NewRecorder()
	b := opBlock(rec)
	b.AddOp(NewMoveToOp(b, 100, 40, anim.Linear, 100*time.Millisecond))

	b.PreRender(50 * time.Millisecond)
	b.PostRender()
	assert.Equal(t, float32(50), b.X())
	assert.Equal(t, float32(20), b.Y())

	b.PreRender(100 * time.Millisecond)
	b.PostRender()
	assert.Equal(t, float32(100), b.X())
	assert.Equal(t, float32(40), b.Y())
	assert.Empty(t, b.Ops())
}

func TestRecolorOpMidpointBlends(t *testing.T) {
	rec := render.NewRecorder()
	b := opBlock(rec)
	b.Color = colors.RGB(0, 0, 0)
	b.AddOp(NewRecolorOp(b, &b.Color, colors.RGB(255, 255, 255), anim.Linear, 100*time.Millisecond))

	b.PreRender(50 * time.Millisecond)
	b.PostRender()

	assert.NotEqual(t, colors.RGB(0, 0, 0), b.Color)
	assert.NotEqual(t, colors.RGB(255, 255, 255), b.Color)
}
