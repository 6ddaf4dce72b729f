// Copyright (c) 2026, PolyUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import "time"

// Animation interpolates a scalar from From to To over Duration, shaped by
// a [Curves] easing curve. It is a two-state machine: running while the
// accumulated time is below Duration, then finished, a terminal state in
// which the value is clamped to To. The finished transition happens exactly
// once and fires OnFinish on that edge only; [Animation.Reset] re-enters
// the running state.
//
// Animations are advanced by [Animation.Update] with the frame delta
// supplied by the caller; they never read the wall clock themselves.
type Animation struct {

	// Curve is the easing curve shaping the interpolation.
	Curve Curves

	// From and To are the start and end values.
	From, To float32

	// Duration is the total animation time. A zero or negative duration,
	// or From == To, makes the animation finished immediately; there is
	// no division by the duration in that case.
	Duration time.Duration

	// OnFinish, if set, is called exactly once when the animation
	// transitions to finished. It receives the animation so reversing
	// or chaining is possible from the callback.
	OnFinish func(a *Animation)

	// passed is the accumulated time since the start or last reset.
	passed time.Duration

	// value is the current interpolated value.
	value float32

	// finished latches true once passed reaches Duration.
	finished bool

	// paused animations ignore Update deltas but keep their value.
	paused bool
}

// New returns an animation from the given value to the given value over the
// given duration. Zero-length animations (zero duration or from == to)
// start out finished, already holding the end value.
func New(curve Curves, from, to float32, duration time.Duration) *Animation {
	a := &Animation{Curve: curve, From: from, To: to, Duration: duration}
	a.value = from
	if duration <= 0 || from == to {
		a.finished = true
		a.value = to
	}
	return a
}

// Update advances the animation by the given frame delta and returns the
// current value. Once finished it returns To unconditionally, so calling
// it past the end is idempotent.
func (a *Animation) Update(delta time.Duration) float32 {
	if a.finished {
		return a.To
	}
	if a.paused {
		return a.value
	}
	a.passed += delta
	if a.passed >= a.Duration {
		a.finished = true
		a.value = a.To
		if a.OnFinish != nil {
			a.OnFinish(a)
		}
		return a.value
	}
	percent := float32(a.passed) / float32(a.Duration)
	a.value = a.From + (a.To-a.From)*Ease(a.Curve, percent)
	return a.value
}

// Value returns the current value without advancing the animation.
func (a *Animation) Value() float32 {
	if a.finished {
		return a.To
	}
	return a.value
}

// Finished returns whether the animation has reached its end value.
func (a *Animation) Finished() bool {
	return a.finished
}

// Reset re-enters the running state with no accumulated time.
// The finish callback will fire again when the animation finishes again.
func (a *Animation) Reset() {
	a.passed = 0
	a.value = a.From
	a.finished = false
	if a.Duration <= 0 || a.From == a.To {
		a.finished = true
		a.value = a.To
	}
}

// Reverse swaps From and To and resets the animation. This is the
// mechanism for reverting a transition, such as a hover-exit color
// change played backwards.
func (a *Animation) Reverse() {
	a.From, a.To = a.To, a.From
	a.Reset()
}

// Pause stops the animation from accumulating time; the current value
// is retained. A finished animation cannot be paused.
func (a *Animation) Pause() {
	if a.finished {
		return
	}
	a.paused = true
}

// Resume continues a paused animation.
func (a *Animation) Resume() {
	a.paused = false
}

// Paused returns whether the animation is paused.
func (a *Animation) Paused() bool {
	return a.paused
}
