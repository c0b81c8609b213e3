// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xr

import (
	"cogentcore.org/xr/math32"
)

// Pose is the position and orientation of an eye or camera in
// tracking space, looking down its local -Z axis with +Y up.
type Pose struct {

	// Pos is the position.
	Pos math32.Vector3

	// Orient is the orientation. It is normalized before use,
	// and the zero value is treated as the identity.
	Orient math32.Quat
}

// NewPose returns a new [Pose] with the given position and orientation.
func NewPose(pos math32.Vector3, orient math32.Quat) Pose {
	return Pose{Pos: pos, Orient: orient}
}

// orientation returns Orient normalized, with the zero value as the identity.
func (p Pose) orientation() math32.Quat {
	return p.Orient.Normal()
}

// Matrix returns the camera-to-world transform of the pose.
func (p Pose) Matrix() math32.Matrix4 {
	var m math32.Matrix4
	m.SetTransform(p.Pos, p.orientation(), math32.Vec3(1, 1, 1))
	return m
}

// ViewMatrix returns the world-to-camera (view) transform,
// the inverse of [Pose.Matrix].
func (p Pose) ViewMatrix() math32.Matrix4 {
	inv := p.orientation().Conjugate()
	var m math32.Matrix4
	m.SetTransform(inv.MulVector3(p.Pos).Negate(), inv, math32.Vec3(1, 1, 1))
	return m
}

// View is one view reported by the device for a frame:
// the pose of an eye and the field of view of its display.
type View struct {
	Pose Pose
	FOV  FieldOfView
}
