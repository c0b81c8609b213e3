// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit XR functionality.

package math32

// Plane represents a plane in 3D space by its normal vector and a constant offset.
// Points p with Normal.Dot(p) + Constant >= 0 are on the inside.
type Plane struct {
	Normal   Vector3
	Constant float32
}

// NewPlane returns a plane from the coefficients a*x + b*y + c*z + d,
// normalized so that [Plane.DistanceToPoint] is a true distance.
// A zero normal yields the zero plane, which contains every point.
func NewPlane(a, b, c, d float32) Plane {
	n := Vec3(a, b, c)
	l := n.Length()
	if l == 0 || !IsFinite(l) {
		return Plane{}
	}
	return Plane{Normal: n.DivScalar(l), Constant: d / l}
}

// planeFromVector4 is NewPlane with the coefficients packed in a Vector4.
func planeFromVector4(v Vector4) Plane {
	return NewPlane(v.X, v.Y, v.Z, v.W)
}

// DistanceToPoint returns the signed distance from this plane to the specified point.
func (p Plane) DistanceToPoint(point Vector3) float32 {
	return p.Normal.Dot(point) + p.Constant
}

// IsNil returns true if this is the zero plane.
func (p Plane) IsNil() bool {
	return p.Normal.IsNil() && p.Constant == 0
}

// Frustum plane indexes.
const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop

	// FrustumDepthLow bounds the low end of clip depth
	// (0 or -1 depending on the depth range). For a reversed-depth
	// projection this is the far plane, and it is the zero plane
	// when the far plane is at infinity.
	FrustumDepthLow

	// FrustumDepthHigh bounds clip depth at w.
	FrustumDepthHigh
)

// Frustum represents a frustum volume bounded by 6 planes.
type Frustum struct {
	Planes [6]Plane
}

// NewFrustumFromMatrix returns the frustum of the given projection or
// view-projection matrix, extracting planes from its rows
// (Gribb / Hartmann). zeroToOneDepth selects a [0, 1] clip depth range
// rather than [-1, 1].
func NewFrustumFromMatrix(m *Matrix4, zeroToOneDepth bool) Frustum {
	r0 := m.Row(0)
	r1 := m.Row(1)
	r2 := m.Row(2)
	r3 := m.Row(3)

	var f Frustum
	f.Planes[FrustumLeft] = planeFromVector4(r3.Add(r0))
	f.Planes[FrustumRight] = planeFromVector4(r3.Sub(r0))
	f.Planes[FrustumBottom] = planeFromVector4(r3.Add(r1))
	f.Planes[FrustumTop] = planeFromVector4(r3.Sub(r1))
	if zeroToOneDepth {
		f.Planes[FrustumDepthLow] = planeFromVector4(r2)
	} else {
		f.Planes[FrustumDepthLow] = planeFromVector4(r3.Add(r2))
	}
	f.Planes[FrustumDepthHigh] = planeFromVector4(r3.Sub(r2))
	return f
}

// ContainsPoint determines whether the frustum contains the specified point.
// Zero planes do not bound the frustum.
func (f Frustum) ContainsPoint(point Vector3) bool {
	for i := range f.Planes {
		if f.Planes[i].IsNil() {
			continue
		}
		if f.Planes[i].DistanceToPoint(point) < 0 {
			return false
		}
	}
	return true
}

// IntersectsSphere determines whether the specified sphere is
// intersecting the frustum.
func (f Frustum) IntersectsSphere(center Vector3, radius float32) bool {
	for i := range f.Planes {
		if f.Planes[i].IsNil() {
			continue
		}
		if f.Planes[i].DistanceToPoint(center) < -radius {
			return false
		}
	}
	return true
}
