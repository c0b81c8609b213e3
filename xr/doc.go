// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xr provides the camera math for rendering to a head-mounted
// display: off-axis (asymmetric frustum) projection matrices built from the
// per-eye field of view reported by the device, eye poses, and a stereo
// [Rig] that turns the views of each frame into left, right and middle
// cameras.
//
// Everything here is a pure computation over plain values; there is no
// device or renderer integration, and all functions are safe for
// concurrent use.
package xr
