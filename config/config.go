// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the file-based configuration of a stereo
// camera rig: clipping policy plus the pose and field of view of each
// eye, stored as TOML or YAML. It stands in for the views a headset
// would report, for previewing and debugging projections offline.
package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/iox/yamlx"
	"cogentcore.org/xr/math32"
	"cogentcore.org/xr/xr"
)

// Format is a config file format.
type Format int32

const (
	// TOML is the default format.
	TOML Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "TOML"
	case YAML:
		return "YAML"
	}
	return fmt.Sprintf("Format(%d)", int32(f))
}

// FormatForFile returns the format implied by the extension of the
// given file name: .toml, or .yaml / .yml.
func FormatForFile(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("config: unsupported file extension %q for %q (want .toml, .yaml or .yml)", filepath.Ext(filename), filename)
}

// FOV is a field of view in degrees.
type FOV struct {
	Left  float32 `toml:"left" yaml:"left"`
	Right float32 `toml:"right" yaml:"right"`
	Up    float32 `toml:"up" yaml:"up"`
	Down  float32 `toml:"down" yaml:"down"`
}

// FieldOfView returns the field of view in radians.
func (f FOV) FieldOfView() xr.FieldOfView {
	return xr.FOVDegrees(f.Left, f.Right, f.Up, f.Down)
}

// Eye is the configuration of one eye.
type Eye struct {

	// Pos is the position of the eye in tracking space, in meters.
	Pos math32.Vector3 `toml:"pos" yaml:"pos"`

	// Axis is the axis of the eye orientation, used with Angle.
	Axis math32.Vector3 `toml:"axis" yaml:"axis"`

	// Angle is the rotation about Axis in degrees.
	Angle float32 `toml:"angle" yaml:"angle"`

	// Orient, if set, is the orientation as a quaternion,
	// and takes precedence over Axis and Angle.
	Orient *math32.Quat `toml:"orient,omitempty" yaml:"orient,omitempty"`

	// FOV is the field of view of the eye.
	FOV FOV `toml:"fov" yaml:"fov"`
}

// Orientation returns the orientation of the eye.
func (e *Eye) Orientation() math32.Quat {
	if e.Orient != nil {
		return e.Orient.Normal()
	}
	if e.Angle == 0 || e.Axis.IsNil() {
		return math32.QuatIdentity()
	}
	return math32.NewQuatAxisAngle(e.Axis, math32.DegToRad(e.Angle))
}

// View returns the device view equivalent to this eye.
func (e *Eye) View() xr.View {
	return xr.View{
		Pose: xr.NewPose(e.Pos, e.Orientation()),
		FOV:  e.FOV.FieldOfView(),
	}
}

// Config is the configuration of a stereo rig.
type Config struct {

	// Near is the near clipping distance in meters.
	Near float32 `toml:"near" yaml:"near"`

	// Far is the far clipping distance in meters;
	// a value <= Near puts the far plane at infinity.
	Far float32 `toml:"far" yaml:"far"`

	// ClipSpace is the clip-space Y direction of the renderer.
	ClipSpace xr.ClipSpace `toml:"clip_space" yaml:"clip_space"`

	// Depth is the clip-space depth range of the renderer.
	Depth xr.DepthRange `toml:"depth" yaml:"depth"`

	// Left is the left eye.
	Left Eye `toml:"left" yaml:"left"`

	// Right is the right eye.
	Right Eye `toml:"right" yaml:"right"`
}

// IPD is the default interpupillary distance in meters.
const IPD = 0.064

// EyeHeight is the default height of the eyes above the floor in meters.
const EyeHeight = 1.6

// New returns a new [Config] with default values.
func New() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// Defaults sets the default values: an infinite reversed-depth projection
// and a typical headset with eyes level at [EyeHeight], [IPD] apart.
func (c *Config) Defaults() {
	c.Near = 0.1
	c.Far = 0
	c.ClipSpace = xr.ClipYUp
	c.Depth = xr.DepthZeroToOne
	c.Left = Eye{
		Pos:  math32.Vec3(-IPD/2, EyeHeight, 0),
		Axis: math32.Vector3Y,
		FOV:  FOV{Left: -52, Right: 44, Up: 48, Down: -53},
	}
	c.Right = Eye{
		Pos:  math32.Vec3(IPD/2, EyeHeight, 0),
		Axis: math32.Vector3Y,
		FOV:  FOV{Left: -44, Right: 52, Up: 48, Down: -53},
	}
}

// Projection returns the clipping policy of the config,
// with a zero field of view.
func (c *Config) Projection() xr.Projection {
	return xr.Projection{Near: c.Near, Far: c.Far, ClipSpace: c.ClipSpace, Depth: c.Depth}
}

// Rig returns a new [xr.Rig] using the clipping policy of the config.
func (c *Config) Rig() *xr.Rig {
	return &xr.Rig{Projection: c.Projection()}
}

// Views returns the left and right eye views, in the order
// expected by [xr.Rig.Frame].
func (c *Config) Views() []xr.View {
	return []xr.View{c.Left.View(), c.Right.View()}
}

// Validate returns an error if the projection of either eye is invalid.
func (c *Config) Validate() error {
	var errs []error
	for _, e := range []struct {
		name string
		eye  *Eye
	}{{"left", &c.Left}, {"right", &c.Right}} {
		p := c.Projection()
		p.FOV = e.eye.FOV.FieldOfView()
		if err := p.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s eye: %w", e.name, err))
		}
	}
	return errors.Join(errs...)
}

// Marshal encodes the config in the given format.
func (c *Config) Marshal(format Format) ([]byte, error) {
	switch format {
	case TOML:
		return tomlx.WriteBytes(c)
	case YAML:
		return yamlx.WriteBytes(c)
	}
	return nil, fmt.Errorf("config: unknown format %v", format)
}

// Unmarshal decodes the config from b in the given format.
// Fields not present in b keep their current values.
func (c *Config) Unmarshal(b []byte, format Format) error {
	switch format {
	case TOML:
		return tomlx.ReadBytes(c, b)
	case YAML:
		return yamlx.ReadBytes(c, b)
	}
	return fmt.Errorf("config: unknown format %v", format)
}

// Open reads the config from the given file, in the format given by its
// extension. Fields not set in the file keep their current values, so
// calling [Config.Defaults] first fills in anything left out.
func (c *Config) Open(filename string) error {
	format, err := FormatForFile(filename)
	if err != nil {
		return err
	}
	switch format {
	case TOML:
		err = tomlx.Open(c, filename)
	case YAML:
		err = yamlx.Open(c, filename)
	}
	if err != nil {
		return fmt.Errorf("config: %s: %w", filename, err)
	}
	slog.Debug("opened rig config", "file", filename, "format", format)
	return nil
}

// Save writes the config to the given file, in the format given by its
// extension.
func (c *Config) Save(filename string) error {
	format, err := FormatForFile(filename)
	if err != nil {
		return err
	}
	switch format {
	case TOML:
		err = tomlx.Save(c, filename)
	case YAML:
		err = yamlx.Save(c, filename)
	}
	if err != nil {
		return fmt.Errorf("config: %s: %w", filename, err)
	}
	slog.Debug("saved rig config", "file", filename, "format", format)
	return nil
}

// Open returns a new config with defaults overridden by the given file.
func Open(filename string) (*Config, error) {
	c := New()
	if err := c.Open(filename); err != nil {
		return nil, err
	}
	return c, nil
}
