// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xr

import (
	"fmt"

	"cogentcore.org/xr/math32"
)

// Math adapted from the OpenXR SDK xr_linear.h:
// Copyright (c) 2017 The Khronos Group Inc.
// Copyright (c) 2016 Oculus VR, LLC.
// SPDX-License-Identifier: Apache-2.0

// DepthReversal converts an infinite projection with conventional depth
// into one with reversed depth (z' = w - z), so that the near plane maps to
// depth 1 and infinity to depth 0. It is stored column-major, one column
// per line. See https://dev.theomader.com/depth-precision/
var DepthReversal = math32.Matrix4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, -1, 0,
	0, 0, 1, 1,
}

// Projection holds the parameters of an off-axis perspective projection
// for one eye. It is a plain value: a new one is built each frame from the
// optics reported by the device.
type Projection struct {

	// Near is the distance to the near clipping plane, which must be > 0.
	Near float32

	// Far is the distance to the far clipping plane. Any value <= Near
	// places the far plane at infinity and selects reversed depth.
	Far float32

	// FOV is the field of view of the eye.
	FOV FieldOfView

	// ClipSpace is the direction of the clip-space Y axis.
	ClipSpace ClipSpace

	// Depth is the clip-space depth range. The reversed infinite
	// projection is only meaningful with [DepthZeroToOne].
	Depth DepthRange
}

// NewProjection returns a new [Projection] with the given near and far
// distances and field of view, and default clip space and depth range.
func NewProjection(near, far float32, fov FieldOfView) Projection {
	return Projection{Near: near, Far: far, FOV: fov}
}

// Defaults sets default near and far distances, clip space and depth range.
// It does not change the field of view.
func (p *Projection) Defaults() {
	p.Near = 0.1
	p.Far = 1000
	p.ClipSpace = ClipYUp
	p.Depth = DepthZeroToOne
}

// IsInfinite returns whether the far plane is at infinity (Far <= Near).
func (p Projection) IsInfinite() bool {
	return p.Far <= p.Near
}

// Matrix returns the projection matrix; see [ComputeProjection].
func (p Projection) Matrix() math32.Matrix4 {
	return ComputeProjection(p)
}

// Frustum returns the view-space frustum of the projection.
func (p Projection) Frustum() math32.Frustum {
	m := ComputeProjection(p)
	return math32.NewFrustumFromMatrix(&m, p.Depth == DepthZeroToOne)
}

// Validate checks that the projection is well formed: a valid field of
// view and a finite, positive near distance. It is not called by
// [ComputeProjection].
func (p Projection) Validate() error {
	if !math32.IsFinite(p.Near) || p.Near <= 0 {
		return fmt.Errorf("near distance must be finite and > 0, got %v", p.Near)
	}
	return p.FOV.Validate()
}

func (p Projection) String() string {
	l, r, u, d := p.FOV.Degrees()
	far := "inf"
	if !p.IsInfinite() {
		far = fmt.Sprint(p.Far)
	}
	return fmt.Sprintf("fov(l=%g r=%g u=%g d=%g) near=%g far=%s clip=%v depth=%v", l, r, u, d, p.Near, far, p.ClipSpace, p.Depth)
}

// ComputeProjection returns the right-handed asymmetric-frustum projection
// matrix for the given parameters. If p.Far <= p.Near, the far plane is
// placed at infinity and depth is reversed with [DepthReversal];
// otherwise depth runs from the near plane to the far plane.
//
// Input is not validated: a degenerate field of view (such as equal left
// and right angles) yields Inf or NaN elements.
// ComputeProjection is a pure function and safe for concurrent use.
func ComputeProjection(p Projection) math32.Matrix4 {
	tanLeft, tanRight, tanUp, tanDown := p.FOV.Tangents()

	width := tanRight - tanLeft
	var height float32
	if p.ClipSpace == ClipYDown {
		height = tanDown - tanUp
	} else {
		height = tanUp - tanDown
	}

	// offsetZ is near for a [-1,1] depth range, 0 for [0,1].
	var offsetZ float32
	if p.Depth == DepthNegOneToOne {
		offsetZ = p.Near
	}

	var m math32.Matrix4
	m[0] = 2 / width
	m[8] = (tanRight + tanLeft) / width

	m[5] = 2 / height
	m[9] = (tanUp + tanDown) / height

	m[11] = -1

	if p.IsInfinite() {
		m[10] = -1
		m[14] = -(p.Near + offsetZ)
		return DepthReversal.Mul(m)
	}

	m[10] = -(p.Far + offsetZ) / (p.Far - p.Near)
	m[14] = -(p.Far * (p.Near + offsetZ)) / (p.Far - p.Near)
	return m
}
