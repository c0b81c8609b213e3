// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xr

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/xr/math32"
)

// FieldOfView is the field of view of one eye, as four signed angles in
// radians from the optical axis. Left and Down are normally negative,
// Right and Up positive. For a head-mounted display the angles are
// generally asymmetric (off-axis).
type FieldOfView struct {
	AngleLeft  float32
	AngleRight float32
	AngleUp    float32
	AngleDown  float32
}

// ErrInvalidFOV is the error wrapped by [FieldOfView.Validate].
var ErrInvalidFOV = errors.New("invalid field of view")

// FOVDegrees returns a [FieldOfView] from angles given in degrees.
func FOVDegrees(left, right, up, down float32) FieldOfView {
	return FieldOfView{
		AngleLeft:  math32.DegToRad(left),
		AngleRight: math32.DegToRad(right),
		AngleUp:    math32.DegToRad(up),
		AngleDown:  math32.DegToRad(down),
	}
}

// SymmetricFOV returns the symmetric [FieldOfView] for the given vertical
// field of view in radians and aspect ratio (width / height).
func SymmetricFOV(fovy, aspect float32) FieldOfView {
	halfY := fovy * 0.5
	halfX := math32.Atan2(aspect*math32.Tan(halfY), 1)
	return FieldOfView{
		AngleLeft:  -halfX,
		AngleRight: halfX,
		AngleUp:    halfY,
		AngleDown:  -halfY,
	}
}

// Tangents returns the tangents of the four angles.
func (f FieldOfView) Tangents() (left, right, up, down float32) {
	return math32.Tan(f.AngleLeft), math32.Tan(f.AngleRight), math32.Tan(f.AngleUp), math32.Tan(f.AngleDown)
}

// Degrees returns the four angles in degrees.
func (f FieldOfView) Degrees() (left, right, up, down float32) {
	return math32.RadToDeg(f.AngleLeft), math32.RadToDeg(f.AngleRight), math32.RadToDeg(f.AngleUp), math32.RadToDeg(f.AngleDown)
}

// Union returns the smallest field of view that covers both f and o.
func (f FieldOfView) Union(o FieldOfView) FieldOfView {
	return FieldOfView{
		AngleLeft:  min(f.AngleLeft, o.AngleLeft),
		AngleRight: max(f.AngleRight, o.AngleRight),
		AngleUp:    max(f.AngleUp, o.AngleUp),
		AngleDown:  min(f.AngleDown, o.AngleDown),
	}
}

// Validate returns an error wrapping [ErrInvalidFOV] if the field of view
// does not describe a proper frustum: every angle must be finite and
// strictly within ±90°, with Right > Left and Up > Down.
// [ComputeProjection] never calls it; degenerate angles there simply
// produce a degenerate matrix.
func (f FieldOfView) Validate() error {
	limit := float32(math32.Pi / 2)
	for _, a := range [...]float32{f.AngleLeft, f.AngleRight, f.AngleUp, f.AngleDown} {
		if !math32.IsFinite(a) || math32.Abs(a) >= limit {
			return fmt.Errorf("%w: angle %v out of range", ErrInvalidFOV, a)
		}
	}
	if f.AngleRight <= f.AngleLeft {
		return fmt.Errorf("%w: right angle %v must be greater than left angle %v", ErrInvalidFOV, f.AngleRight, f.AngleLeft)
	}
	if f.AngleUp <= f.AngleDown {
		return fmt.Errorf("%w: up angle %v must be greater than down angle %v", ErrInvalidFOV, f.AngleUp, f.AngleDown)
	}
	return nil
}
