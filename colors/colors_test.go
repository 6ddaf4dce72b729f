// Copyright (c) 2026, PolyUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlendEndpoints(t *testing.T) {
	from := RGBA(10, 20, 30, 40)
	to := RGBA(200, 150, 100, 250)
	assert.Equal(t, from, Blend(from, to, 0))
	assert.Equal(t, to, Blend(from, to, 1))
	// clamped outside the range
	assert.Equal(t, from, Blend(from, to, -1))
	assert.Equal(t, to, Blend(from, to, 2))
}

func TestBlendAlphaLinear(t *testing.T) {
	from := RGB(0, 0, 0).WithAlpha(0)
	to := RGB(0, 0, 0).WithAlpha(200)
	mid := Blend(from, to, 0.5)
	assert.Equal(t, uint8(100), mid.A)
}

func TestBlendMidpointBrightness(t *testing.T) {
	// linear-space blending of black and white must be brighter than the
	// naive sRGB channel midpoint of 128
	mid := Blend(RGB(0, 0, 0), RGB(255, 255, 255), 0.5)
	assert.Greater(t, mid.R, uint8(128))
	assert.Equal(t, mid.R, mid.G)
	assert.Equal(t, mid.G, mid.B)
}

func TestBlendMidpointMatchesLinearFormula(t *testing.T) {
	// black to white at t=0.5 is 0.5 in linear space, which delinearizes
	// to 1.055*0.5^(1/2.4) - 0.055 of full scale, about 188
	mid := Blend(RGB(0, 0, 0), RGB(255, 255, 255), 0.5)
	assert.InDelta(t, 188, float64(mid.R), 1)
}

func TestWithAlpha(t *testing.T) {
	c := RGB(1, 2, 3)
	assert.Equal(t, uint8(255), c.A)
	d := c.WithAlpha(0)
	assert.True(t, d.Transparent())
	assert.Equal(t, uint8(255), c.A, "WithAlpha must not mutate")
}
