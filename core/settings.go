// Copyright (c) 2026, PolyUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

// Settings is the shared scene configuration, propagated to every layout
// on attach. A zero MinDrawablesForFramebuffer gives every layout a
// cache; raising it trades GPU memory for redraw work.
type Settings struct {

	// FramebuffersEnabled turns the framebuffer redraw caches on.
	FramebuffersEnabled bool

	// MinDrawablesForFramebuffer is the recursive drawable count a layout
	// must reach before it is given its own framebuffer cache.
	MinDrawablesForFramebuffer int
}

// DefaultSettings returns the settings a new scene starts with.
func DefaultSettings() *Settings {
	return &Settings{
		FramebuffersEnabled:        true,
		MinDrawablesForFramebuffer: 30,
	}
}
