// Copyright (c) 2026, PolyUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package anim provides time-stepped scalar animations and the easing curves
that shape them. Animations are advanced by the frame delta passed in by
the caller each tick; nothing in this package polls the wall clock.
*/
package anim

import "github.com/chewxy/math32"

// Curves is an enum of the easing curves. Every curve f satisfies
// f(0) == 0 and f(1) == 1 exactly; the InOut variants dispatch to the
// In half below the midpoint and the Out half above it, and are
// continuous at 0.5.
type Curves int32

const (
	Linear Curves = iota

	QuadIn
	QuadOut
	QuadInOut

	CubicIn
	CubicOut
	CubicInOut

	QuartIn
	QuartOut
	QuartInOut

	QuintIn
	QuintOut
	QuintInOut

	SineIn
	SineOut
	SineInOut

	CircIn
	CircOut
	CircInOut

	ExpoIn
	ExpoOut
	ExpoInOut

	BackIn
	BackOut
	BackInOut

	BumpIn
	BumpOut
	BumpInOut

	ElasticIn
	ElasticOut
	ElasticInOut

	CurvesN
)

// CurveNames are the names of the curves, as used in String output.
var CurveNames = [...]string{
	Linear:       "linear",
	QuadIn:       "quad-in",
	QuadOut:      "quad-out",
	QuadInOut:    "quad-in-out",
	CubicIn:      "cubic-in",
	CubicOut:     "cubic-out",
	CubicInOut:   "cubic-in-out",
	QuartIn:      "quart-in",
	QuartOut:     "quart-out",
	QuartInOut:   "quart-in-out",
	QuintIn:      "quint-in",
	QuintOut:     "quint-out",
	QuintInOut:   "quint-in-out",
	SineIn:       "sine-in",
	SineOut:      "sine-out",
	SineInOut:    "sine-in-out",
	CircIn:       "circ-in",
	CircOut:      "circ-out",
	CircInOut:    "circ-in-out",
	ExpoIn:       "expo-in",
	ExpoOut:      "expo-out",
	ExpoInOut:    "expo-in-out",
	BackIn:       "back-in",
	BackOut:      "back-out",
	BackInOut:    "back-in-out",
	BumpIn:       "bump-in",
	BumpOut:      "bump-out",
	BumpInOut:    "bump-in-out",
	ElasticIn:    "elastic-in",
	ElasticOut:   "elastic-out",
	ElasticInOut: "elastic-in-out",
	CurvesN:      "invalid",
}

func (c Curves) String() string {
	if c < 0 || c >= CurvesN {
		return "invalid"
	}
	return CurveNames[c]
}

// overshoot constants for the back and elastic families
const (
	backC1 = 1.70158
	backC2 = backC1 * 1.525
	backC3 = backC1 + 1

	// bump is a back curve with a heavier overshoot
	bumpK = 3.0

	elasticC4 = (2 * math32.Pi) / 3
	elasticC5 = (2 * math32.Pi) / 4.5
)

func quadIn(t float32) float32  { return t * t }
func quadOut(t float32) float32 { return 1 - (1-t)*(1-t) }

func cubicIn(t float32) float32 { return t * t * t }
func cubicOut(t float32) float32 {
	u := 1 - t
	return 1 - u*u*u
}

func quartIn(t float32) float32 { return t * t * t * t }
func quartOut(t float32) float32 {
	u := 1 - t
	return 1 - u*u*u*u
}

func quintIn(t float32) float32 { return t * t * t * t * t }
func quintOut(t float32) float32 {
	u := 1 - t
	return 1 - u*u*u*u*u
}

func sineIn(t float32) float32  { return 1 - math32.Cos(t*math32.Pi/2) }
func sineOut(t float32) float32 { return math32.Sin(t * math32.Pi / 2) }

func circIn(t float32) float32  { return 1 - math32.Sqrt(1-t*t) }
func circOut(t float32) float32 { return math32.Sqrt(1 - (t-1)*(t-1)) }

func expoIn(t float32) float32 {
	if t == 0 {
		return 0
	}
	return math32.Pow(2, 10*t-10)
}

func expoOut(t float32) float32 {
	if t == 1 {
		return 1
	}
	return 1 - math32.Pow(2, -10*t)
}

func backIn(t float32) float32 {
	return backC3*t*t*t - backC1*t*t
}

func backOut(t float32) float32 {
	u := t - 1
	return 1 + backC3*u*u*u + backC1*u*u
}

func bumpIn(t float32) float32 {
	return (bumpK+1)*t*t*t - bumpK*t*t
}

func bumpOut(t float32) float32 {
	u := t - 1
	return 1 + (bumpK+1)*u*u*u + bumpK*u*u
}

func elasticIn(t float32) float32 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	return -math32.Pow(2, 10*t-10) * math32.Sin((10*t-10.75)*elasticC4)
}

func elasticOut(t float32) float32 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	return math32.Pow(2, -10*t)*math32.Sin((10*t-0.75)*elasticC4) + 1
}

// inOut builds the InOut variant from the In and Out halves: the In half
// runs time-scaled x2 below the midpoint, the Out half scaled and offset
// above it. Both halves meet at exactly 0.5 since in(1) == out(0)+1 == 1.
func inOut(in, out func(float32) float32, t float32) float32 {
	if t < 0.5 {
		return in(2*t) / 2
	}
	return 0.5 + out(2*t-1)/2
}

// Ease maps a progress value t in [0, 1] through the given curve.
// Inputs outside [0, 1] are clamped. The boundaries are exact for every
// curve: Ease(c, 0) == 0 and Ease(c, 1) == 1.
func Ease(c Curves, t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	switch c {
	case Linear:
		return t
	case QuadIn:
		return quadIn(t)
	case QuadOut:
		return quadOut(t)
	case QuadInOut:
		return inOut(quadIn, quadOut, t)
	case CubicIn:
		return cubicIn(t)
	case CubicOut:
		return cubicOut(t)
	case CubicInOut:
		return inOut(cubicIn, cubicOut, t)
	case QuartIn:
		return quartIn(t)
	case QuartOut:
		return quartOut(t)
	case QuartInOut:
		return inOut(quartIn, quartOut, t)
	case QuintIn:
		return quintIn(t)
	case QuintOut:
		return quintOut(t)
	case QuintInOut:
		return inOut(quintIn, quintOut, t)
	case SineIn:
		return sineIn(t)
	case SineOut:
		return sineOut(t)
	case SineInOut:
		return inOut(sineIn, sineOut, t)
	case CircIn:
		return circIn(t)
	case CircOut:
		return circOut(t)
	case CircInOut:
		return inOut(circIn, circOut, t)
	case ExpoIn:
		return expoIn(t)
	case ExpoOut:
		return expoOut(t)
	case ExpoInOut:
		return inOut(expoIn, expoOut, t)
	case BackIn:
		return backIn(t)
	case BackOut:
		return backOut(t)
	case BackInOut:
		return inOut(backIn, backOut, t)
	case BumpIn:
		return bumpIn(t)
	case BumpOut:
		return bumpOut(t)
	case BumpInOut:
		return inOut(bumpIn, bumpOut, t)
	case ElasticIn:
		return elasticIn(t)
	case ElasticOut:
		return elasticOut(t)
	case ElasticInOut:
		return inOut(elasticIn, elasticOut, t)
	}
	return t
}
