// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xr

import (
	"math"
	"sync"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/xr/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const standardTol = float32(1.0e-5)

func tolAssertEqualMatrix4(t *testing.T, tol float32, mt, ma math32.Matrix4) {
	t.Helper()
	for i := range mt {
		tolassert.EqualTol(t, mt[i], ma[i], tol)
	}
}

// testFOV is an off-axis field of view like those of a headset eye.
var testFOV = FieldOfView{AngleLeft: -0.5, AngleRight: 0.6, AngleUp: 0.4, AngleDown: -0.45}

func TestSymmetricReduction(t *testing.T) {
	fovy := float32(70)
	aspect := float32(1.6)
	fov := SymmetricFOV(math32.DegToRad(fovy), aspect)
	tolassert.EqualTol(t, -fov.AngleRight, fov.AngleLeft, standardTol)
	tolassert.EqualTol(t, -fov.AngleUp, fov.AngleDown, standardTol)

	t.Run("Finite", func(t *testing.T) {
		m := ComputeProjection(NewProjection(0.1, 100, fov))
		var want math32.Matrix4
		want.SetPerspective(fovy, aspect, 0.1, 100)

		tolassert.EqualTol(t, want[0], m[0], standardTol)
		tolassert.EqualTol(t, want[5], m[5], standardTol)
		tolassert.EqualTol(t, want[10], m[10], standardTol)
		tolassert.EqualTol(t, want[14], m[14], standardTol)
		assert.Equal(t, float32(-1), m[11])
		// no off-axis shift
		tolassert.EqualTol(t, 0, m[8], standardTol)
		tolassert.EqualTol(t, 0, m[9], standardTol)
		tolAssertEqualMatrix4(t, standardTol, want, m)
	})

	t.Run("Infinite", func(t *testing.T) {
		m := ComputeProjection(NewProjection(0.1, 0, fov))
		var want math32.Matrix4
		want.SetPerspectiveInfiniteReverse(fovy, aspect, 0.1)
		tolAssertEqualMatrix4(t, standardTol, want, m)
	})
}

func TestInfiniteBoundary(t *testing.T) {
	near := float32(0.1)
	at := ComputeProjection(NewProjection(near, near, testFOV))
	below := ComputeProjection(NewProjection(near, near-1, testFOV))
	above := ComputeProjection(NewProjection(near, near+0.001, testFOV))

	assert.True(t, NewProjection(near, near, testFOV).IsInfinite())
	assert.False(t, NewProjection(near, near+0.001, testFOV).IsInfinite())

	assert.Equal(t, at, below)
	assert.NotEqual(t, at, above)
	// the finite depth terms are far from the reversed ones
	assert.Greater(t, math32.Abs(above[10]-at[10]), float32(1))
	assert.Equal(t, float32(0), at[10])
	assert.Equal(t, near, at[14])
}

func TestClipSpaceSignFlip(t *testing.T) {
	for _, far := range []float32{0, 50} {
		up := NewProjection(0.1, far, testFOV)
		down := up
		down.ClipSpace = ClipYDown
		mu := ComputeProjection(up)
		md := ComputeProjection(down)

		for i := range mu {
			switch i {
			case 5, 9:
				assert.Equal(t, -mu[i], md[i], "far=%v element %d must be negated", far, i)
			default:
				assert.Equal(t, mu[i], md[i], "far=%v element %d must not change", far, i)
			}
		}
		assert.NotEqual(t, float32(0), mu[9])
	}
}

func TestDeterminism(t *testing.T) {
	for _, far := range []float32{0, 0.1, 20} {
		p := NewProjection(0.1, far, testFOV)
		first := ComputeProjection(p)
		for range 10 {
			assert.Equal(t, first, ComputeProjection(p))
		}
		assert.Equal(t, first, p.Matrix())
	}
}

func TestConcurrentUse(t *testing.T) {
	projections := []Projection{
		NewProjection(0.1, 0, testFOV),
		NewProjection(0.05, 100, testFOV),
		NewProjection(0.1, 100, SymmetricFOV(1, 1)),
	}
	want := make([]math32.Matrix4, len(projections))
	for i, p := range projections {
		want[i] = ComputeProjection(p)
	}

	var wg sync.WaitGroup
	got := make([][]math32.Matrix4, 8)
	for g := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, p := range projections {
				got[g] = append(got[g], ComputeProjection(p))
			}
		}()
	}
	wg.Wait()
	for _, g := range got {
		assert.Equal(t, want, g)
	}
}

func TestDegenerateInput(t *testing.T) {
	t.Run("ZeroWidth", func(t *testing.T) {
		fov := FieldOfView{AngleLeft: 0.3, AngleRight: 0.3, AngleUp: 0.4, AngleDown: -0.4}
		for _, far := range []float32{0, 100} {
			var m math32.Matrix4
			require.NotPanics(t, func() { m = ComputeProjection(NewProjection(0.1, far, fov)) })
			assert.True(t, math32.IsInf(m[0], 1), "col0.x = %v", m[0])
			assert.False(t, math32.IsFinite(m[8]), "col2.x = %v", m[8])
			assert.False(t, m.IsFinite())
			assert.Error(t, fov.Validate())
		}
	})

	t.Run("ZeroWidthOnAxis", func(t *testing.T) {
		fov := FieldOfView{AngleLeft: 0, AngleRight: 0, AngleUp: 0.4, AngleDown: -0.4}
		m := ComputeProjection(NewProjection(0.1, 100, fov))
		assert.True(t, math32.IsInf(m[0], 1))
		assert.True(t, math32.IsNaN(m[8]))
		// vertical terms are unaffected
		assert.True(t, math32.IsFinite(m[5]))
	})

	t.Run("ZeroHeight", func(t *testing.T) {
		fov := FieldOfView{AngleLeft: -0.4, AngleRight: 0.4, AngleUp: 0.2, AngleDown: 0.2}
		m := ComputeProjection(NewProjection(0.1, 100, fov))
		assert.True(t, math32.IsInf(m[5], 1))
		assert.False(t, math32.IsFinite(m[9]))
		assert.True(t, math32.IsFinite(m[0]))
	})
}

func TestDepthReversalExample(t *testing.T) {
	p := NewProjection(0.1, 0, testFOV)
	require.True(t, p.IsInfinite())

	tanL := math.Tan(-0.5)
	tanR := math.Tan(0.6)
	tanU := math.Tan(0.4)
	tanD := math.Tan(-0.45)
	a := float32(2 / (tanR - tanL))             // 1.6254357
	c := float32((tanR + tanL) / (tanR - tanL)) // 0.1120204
	b := float32(2 / (tanU - tanD))             // 2.2078752
	d := float32((tanU + tanD) / (tanU - tanD)) // -0.0665253

	raw := math32.Matrix4{
		a, 0, 0, 0,
		0, b, 0, 0,
		c, d, -1, -1,
		0, 0, -0.1, 0,
	}
	got := ComputeProjection(p)
	tolAssertEqualMatrix4(t, standardTol, DepthReversal.Mul(raw), got)

	want := math32.Matrix4{
		1.6254357, 0, 0, 0,
		0, 2.2078752, 0, 0,
		0.1120204, -0.0665253, 0, -1,
		0, 0, 0.1, 0,
	}
	tolAssertEqualMatrix4(t, standardTol, want, got)

	// near plane at depth 1, far away approaches depth 0
	tolassert.EqualTol(t, 1, math32.Vec3(0, 0, -0.1).MulMatrix4AsPoint(&got).Z, standardTol)
	tolassert.EqualTol(t, 0, math32.Vec3(0, 0, -1e6).MulMatrix4AsPoint(&got).Z, standardTol)
}

func TestFiniteDepthRange(t *testing.T) {
	near, far := float32(0.5), float32(20)

	zo := ComputeProjection(NewProjection(near, far, testFOV))
	tolassert.EqualTol(t, 0, math32.Vec3(0, 0, -near).MulMatrix4AsPoint(&zo).Z, standardTol)
	tolassert.EqualTol(t, 1, math32.Vec3(0, 0, -far).MulMatrix4AsPoint(&zo).Z, standardTol)

	p := NewProjection(near, far, testFOV)
	p.Depth = DepthNegOneToOne
	gl := ComputeProjection(p)
	tolassert.EqualTol(t, -(far+near)/(far-near), gl[10], standardTol)
	tolassert.EqualTol(t, -2*far*near/(far-near), gl[14], standardTol)
	tolassert.EqualTol(t, -1, math32.Vec3(0, 0, -near).MulMatrix4AsPoint(&gl).Z, standardTol)
	tolassert.EqualTol(t, 1, math32.Vec3(0, 0, -far).MulMatrix4AsPoint(&gl).Z, standardTol)

	// only depth terms depend on the depth range
	for _, i := range []int{0, 5, 8, 9, 11} {
		assert.Equal(t, zo[i], gl[i])
	}
}

func TestProjectionEdges(t *testing.T) {
	// the edges of the field of view map to the edges of clip space
	m := ComputeProjection(NewProjection(0.1, 0, testFOV))
	tanL, tanR, tanU, tanD := testFOV.Tangents()
	tolassert.EqualTol(t, -1, math32.Vec3(tanL, 0, -1).MulMatrix4AsPoint(&m).X, standardTol)
	tolassert.EqualTol(t, 1, math32.Vec3(tanR, 0, -1).MulMatrix4AsPoint(&m).X, standardTol)
	tolassert.EqualTol(t, 1, math32.Vec3(0, tanU, -1).MulMatrix4AsPoint(&m).Y, standardTol)
	tolassert.EqualTol(t, -1, math32.Vec3(0, tanD, -1).MulMatrix4AsPoint(&m).Y, standardTol)

	p := NewProjection(0.1, 0, testFOV)
	p.ClipSpace = ClipYDown
	md := p.Matrix()
	tolassert.EqualTol(t, -1, math32.Vec3(0, tanU, -1).MulMatrix4AsPoint(&md).Y, standardTol)
}

func TestProjectionFrustum(t *testing.T) {
	tanL, tanR, _, _ := testFOV.Tangents()
	for _, far := range []float32{0, 10} {
		f := NewProjection(0.1, far, testFOV).Frustum()
		assert.True(t, f.ContainsPoint(math32.Vec3(0, 0, -1)))
		assert.True(t, f.ContainsPoint(math32.Vec3(0.99*tanR, 0, -1)))
		assert.False(t, f.ContainsPoint(math32.Vec3(1.01*tanR, 0, -1)))
		assert.True(t, f.ContainsPoint(math32.Vec3(0.99*tanL, 0, -1)))
		assert.False(t, f.ContainsPoint(math32.Vec3(1.01*tanL, 0, -1)))
		assert.False(t, f.ContainsPoint(math32.Vec3(0, 0, -0.05)))
	}
	assert.True(t, NewProjection(0.1, 0, testFOV).Frustum().ContainsPoint(math32.Vec3(0, 0, -1e5)))
	assert.False(t, NewProjection(0.1, 10, testFOV).Frustum().ContainsPoint(math32.Vec3(0, 0, -11)))
}

func TestProjectionDefaults(t *testing.T) {
	var p Projection
	p.FOV = testFOV
	p.ClipSpace = ClipYDown
	p.Defaults()
	assert.Equal(t, float32(0.1), p.Near)
	assert.Equal(t, float32(1000), p.Far)
	assert.Equal(t, ClipYUp, p.ClipSpace)
	assert.Equal(t, DepthZeroToOne, p.Depth)
	assert.Equal(t, testFOV, p.FOV)
	assert.NoError(t, p.Validate())

	p.Near = 0
	assert.Error(t, p.Validate())
	p.Near = math32.NaN()
	assert.Error(t, p.Validate())
}
