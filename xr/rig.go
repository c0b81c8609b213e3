// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xr

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/xr/math32"
)

// ErrMissingViews is returned by [Rig.Frame] when the device did
// not report a view for each eye.
var ErrMissingViews = errors.New("xr: a view is needed for each eye")

// Camera is the per-frame state of one camera of a [Rig].
type Camera struct {
	Eye        Eye
	Pose       Pose
	Projection Projection
}

// ProjectionMatrix returns the projection matrix of the camera.
func (c *Camera) ProjectionMatrix() math32.Matrix4 {
	return ComputeProjection(c.Projection)
}

// ViewMatrix returns the world-to-camera matrix of the camera.
func (c *Camera) ViewMatrix() math32.Matrix4 {
	return c.Pose.ViewMatrix()
}

// ViewProjection returns the projection matrix times the view matrix,
// which takes world coordinates to clip coordinates.
func (c *Camera) ViewProjection() math32.Matrix4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// Frustum returns the world-space frustum of the camera, for culling.
func (c *Camera) Frustum() math32.Frustum {
	vp := c.ViewProjection()
	return math32.NewFrustumFromMatrix(&vp, c.Projection.Depth == DepthZeroToOne)
}

// Frame holds the cameras of a [Rig] for one rendered frame.
type Frame struct {
	Left   Camera
	Right  Camera
	Middle Camera
}

// Camera returns the camera for the given eye.
func (f *Frame) Camera(eye Eye) (*Camera, error) {
	switch eye {
	case EyeLeft:
		return &f.Left, nil
	case EyeRight:
		return &f.Right, nil
	case EyeMiddle:
		return &f.Middle, nil
	}
	return nil, fmt.Errorf("xr: no camera for eye %v", eye)
}

// Cameras returns all cameras of the frame, left, right, then middle.
func (f *Frame) Cameras() []*Camera {
	return []*Camera{&f.Left, &f.Right, &f.Middle}
}

// Rig is a stereo camera rig for a head-mounted display: a left and right
// eye camera following the views reported by the device each frame, and a
// middle camera between them for a flat-screen mirror.
// The clipping policy of all cameras comes from Projection;
// its field of view is replaced per eye.
type Rig struct {
	Projection Projection
}

// NewRig returns a new [Rig] with default projection settings.
func NewRig() *Rig {
	r := &Rig{}
	r.Projection.Defaults()
	return r
}

// Frame returns the cameras for the given device views, where views[0] is
// the left eye and views[1] the right eye; any further views are ignored.
// It returns [ErrMissingViews] if there are fewer than two views.
//
// The middle camera is placed at the midpoint of the two eyes, oriented
// halfway between them, and covers the union of both fields of view.
// Frame does not modify the rig and is safe for concurrent use.
func (r *Rig) Frame(views []View) (Frame, error) {
	if len(views) < 2 {
		return Frame{}, fmt.Errorf("%w: got %d", ErrMissingViews, len(views))
	}
	left, right := views[0], views[1]

	f := Frame{
		Left:   r.camera(EyeLeft, left.Pose, left.FOV),
		Right:  r.camera(EyeRight, right.Pose, right.FOV),
		Middle: r.camera(EyeMiddle, middlePose(left.Pose, right.Pose), left.FOV.Union(right.FOV)),
	}
	return f, nil
}

func (r *Rig) camera(eye Eye, pose Pose, fov FieldOfView) Camera {
	p := r.Projection
	p.FOV = fov
	return Camera{Eye: eye, Pose: pose, Projection: p}
}

// middlePose returns the pose halfway between the two given poses,
// interpolating from whichever orientation keeps the shorter arc.
func middlePose(left, right Pose) Pose {
	pos := left.Pos.Add(right.Pos).DivScalar(2)
	lq, rq := left.orientation(), right.orientation()
	var q math32.Quat
	if lq.Dot(rq) >= 0 {
		q = lq.Slerp(rq, 0.5)
	} else {
		q = rq.Slerp(lq, 0.5)
	}
	return Pose{Pos: pos, Orient: q}
}
