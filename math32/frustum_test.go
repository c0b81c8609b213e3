// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestPlane(t *testing.T) {
	p := NewPlane(0, 0, 2, 4)
	tolAssertEqualVector3(t, standardTol, Vector3Z, p.Normal)
	tolassert.EqualTol(t, 2, p.Constant, standardTol)
	tolassert.EqualTol(t, 3, p.DistanceToPoint(Vec3(5, 5, 1)), standardTol)

	zero := NewPlane(0, 0, 0, 0.1)
	assert.True(t, zero.IsNil())
	assert.Equal(t, float32(0), zero.DistanceToPoint(Vec3(1, 2, 3)))
}

func TestFrustumPerspective(t *testing.T) {
	var p Matrix4
	p.SetPerspective(90, 1, 0.1, 100)
	f := NewFrustumFromMatrix(&p, true)

	assert.True(t, f.ContainsPoint(Vec3(0, 0, -1)))
	assert.True(t, f.ContainsPoint(Vec3(0.9, -0.9, -1)))
	assert.False(t, f.ContainsPoint(Vec3(1.1, 0, -1)), "right of frustum")
	assert.False(t, f.ContainsPoint(Vec3(0, -1.1, -1)), "below frustum")
	assert.False(t, f.ContainsPoint(Vec3(0, 0, 1)), "behind camera")
	assert.False(t, f.ContainsPoint(Vec3(0, 0, -0.05)), "before near plane")
	assert.False(t, f.ContainsPoint(Vec3(0, 0, -200)), "beyond far plane")

	assert.True(t, f.IntersectsSphere(Vec3(1.5, 0, -1), 1))
	assert.False(t, f.IntersectsSphere(Vec3(3, 0, -1), 1))

	for _, pl := range f.Planes {
		tolassert.EqualTol(t, 1, pl.Normal.Length(), standardTol)
	}
}

func TestFrustumInfiniteReverse(t *testing.T) {
	var p Matrix4
	p.SetPerspectiveInfiniteReverse(90, 1, 0.1)
	f := NewFrustumFromMatrix(&p, true)

	assert.True(t, f.Planes[FrustumDepthLow].IsNil())
	assert.True(t, f.ContainsPoint(Vec3(0, 0, -1)))
	assert.True(t, f.ContainsPoint(Vec3(0, 0, -1e6)))
	assert.False(t, f.ContainsPoint(Vec3(0, 0, -0.05)), "before near plane")
	assert.False(t, f.ContainsPoint(Vec3(2, 0, -1)))
}

func TestFrustumNegOneToOne(t *testing.T) {
	// classic OpenGL perspective with [-1, 1] depth: near=1, far=10
	n, fa := float32(1), float32(10)
	p := Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, -(fa + n) / (fa - n), -1,
		0, 0, -2 * fa * n / (fa - n), 0,
	}
	f := NewFrustumFromMatrix(&p, false)
	assert.True(t, f.ContainsPoint(Vec3(0, 0, -1.5)))
	assert.True(t, f.ContainsPoint(Vec3(0, 0, -9.5)))
	assert.False(t, f.ContainsPoint(Vec3(0, 0, -0.5)))
	assert.False(t, f.ContainsPoint(Vec3(0, 0, -10.5)))
}

func TestFrustumOfReturnedMatrix(t *testing.T) {
	var p Matrix4
	p.SetPerspective(90, 1, 0.1, 100)
	view := Identity4()
	view.SetTransform(Vec3(0, 0, 5), QuatIdentity(), Vec3(1, 1, 1))
	inv, err := view.Inverse()
	assert.NoError(t, err)

	// methods are callable on values returned by other calls
	assert.True(t, NewFrustumFromMatrix(&p, true).ContainsPoint(Vec3(0, 0, -1)))
	vp := p.Mul(inv)
	assert.True(t, NewFrustumFromMatrix(&vp, true).ContainsPoint(Vec3(0, 0, 4)))
	assert.False(t, NewFrustumFromMatrix(&vp, true).IntersectsSphere(Vec3(0, 0, 6), 0.5))
	tolassert.EqualTol(t, 0, NewFrustumFromMatrix(&p, true).Planes[FrustumLeft].DistanceToPoint(Vec3(-1, 0, -1)), standardTol)
	assert.True(t, p.Mul(inv).IsFinite())
	assert.True(t, Identity4().IsEqualTol(p.Mul(inv).Mul(view).Mul(mustInverse(t, p)), 1e-4))
	assert.Equal(t, float32(1), Identity4().Determinant())
	assert.Equal(t, float32(5), view.Transpose().Row(3).Z)
}

func mustInverse(t *testing.T, m Matrix4) Matrix4 {
	t.Helper()
	mi, err := m.Inverse()
	assert.NoError(t, err)
	return mi
}
