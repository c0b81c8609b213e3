// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xr

//go:generate core generate

// ClipSpace is the direction of the Y axis in clip space,
// which varies by graphics backend.
type ClipSpace int32 //enums:enum -trim-prefix Clip -accept-lower

const (
	// ClipYUp is a clip space with positive Y up (OpenGL / D3D / Metal).
	ClipYUp ClipSpace = iota

	// ClipYDown is a clip space with positive Y down (Vulkan).
	ClipYDown
)

// DepthRange is the range of clip-space depth expected by the renderer.
type DepthRange int32 //enums:enum -trim-prefix Depth -accept-lower

const (
	// DepthZeroToOne is a [0,1] clip depth (Vulkan / D3D / Metal).
	DepthZeroToOne DepthRange = iota

	// DepthNegOneToOne is a [-1,1] clip depth (OpenGL / OpenGL ES).
	DepthNegOneToOne
)

// Eye identifies one of the cameras of a stereo [Rig].
type Eye int32 //enums:enum -trim-prefix Eye -accept-lower

const (
	// EyeLeft renders the left eye view.
	EyeLeft Eye = iota

	// EyeRight renders the right eye view.
	EyeRight

	// EyeMiddle is a mono camera between the two eyes,
	// for a flat-screen mirror of the headset view.
	EyeMiddle
)
