// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command xrproj prints the projection and view matrices of a stereo
// camera rig, from command line angles or a rig config file.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/enums"
	"cogentcore.org/xr/config"
	"cogentcore.org/xr/xr"
	"github.com/mitchellh/go-homedir"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// enumValue is a [pflag.Value] for an enum.
type enumValue struct {
	v   enums.EnumSetter
	typ string
}

var _ pflag.Value = (*enumValue)(nil)

func (e *enumValue) String() string     { return e.v.String() }
func (e *enumValue) Set(s string) error { return e.v.SetString(s) }
func (e *enumValue) Type() string       { return e.typ }

// enumUsage returns the usage of an enum flag, listing its values.
func enumUsage(usage string, v enums.Enum) string {
	names := make([]string, 0, len(v.Values()))
	for _, ev := range v.Values() {
		names = append(names, ev.String())
	}
	return usage + ": " + strings.Join(names, " or ")
}

// projectionFlags adds the clipping policy flags for p to fs.
func projectionFlags(fs *pflag.FlagSet, p *xr.Projection) {
	fs.Float32Var(&p.Near, "near", p.Near, "near clipping distance")
	fs.Float32Var(&p.Far, "far", p.Far, "far clipping distance; <= near for an infinite far plane with reversed depth")
	fs.Var(&enumValue{&p.ClipSpace, "clip"}, "clip", enumUsage("clip space Y direction", p.ClipSpace))
	fs.Var(&enumValue{&p.Depth, "depth"}, "depth", enumUsage("clip space depth range", p.Depth))
}

func newRootCmd() *cobra.Command {
	var veryVerbose, verbose, quiet bool
	root := &cobra.Command{
		Use:           "xrproj",
		Short:         "Print off-axis projection matrices for head-mounted displays",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(veryVerbose, verbose, quiet)
			slog.SetDefault(slog.New(logx.NewHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: &logx.UserLevel})))
		},
	}
	fs := root.PersistentFlags()
	fs.BoolVar(&veryVerbose, "vv", false, "print debug messages")
	fs.BoolVarP(&verbose, "verbose", "v", false, "print informational messages")
	fs.BoolVarP(&quiet, "quiet", "q", false, "only print errors")
	root.MarkFlagsMutuallyExclusive("vv", "verbose", "quiet")

	root.AddCommand(newMatrixCmd(), newFrameCmd(), newInitCmd())
	return root
}

func newMatrixCmd() *cobra.Command {
	var fov config.FOV
	p := xr.Projection{}
	p.Defaults()
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Print the projection matrix for one eye",
		Long:  "Print the projection matrix for a field of view given in degrees.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p.FOV = fov.FieldOfView()
			if err := p.Validate(); err != nil {
				slog.Warn("degenerate projection", "err", err)
			}
			slog.Debug("computing projection", "projection", p)
			m := xr.ComputeProjection(p)
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%v\n%v\n", p, m)
			return err
		},
	}
	fs := cmd.Flags()
	fs.Float32Var(&fov.Left, "left", -45, "left angle in degrees")
	fs.Float32Var(&fov.Right, "right", 45, "right angle in degrees")
	fs.Float32Var(&fov.Up, "up", 45, "up angle in degrees")
	fs.Float32Var(&fov.Down, "down", -45, "down angle in degrees")
	projectionFlags(fs, &p)
	return cmd
}

func newFrameCmd() *cobra.Command {
	var file string
	var watch bool
	cmd := &cobra.Command{
		Use:   "frame",
		Short: "Print the cameras of a stereo rig",
		Long: `Print the left, right and middle camera matrices for the eye views of
a rig config file, or of the default rig. With --watch, the cameras are
printed again each time the config file changes, until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch && file == "" {
				return errors.Log(errors.New("--watch needs a --config file"))
			}
			if file != "" {
				var err error
				file, err = homedir.Expand(file)
				if err != nil {
					return errors.Log(err)
				}
			}
			cfg := config.New()
			if file != "" {
				if err := cfg.Open(file); err != nil {
					return errors.Log(err)
				}
			}
			out := termenv.NewOutput(cmd.OutOrStdout())
			if err := printFrame(out, cfg); err != nil {
				return errors.Log(err)
			}
			if !watch {
				return nil
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return errors.Log(config.Watch(ctx, file, func(c *config.Config, err error) {
				if err != nil {
					slog.Error("cannot reload rig config", "file", file, "err", err)
					return
				}
				slog.Info("reloaded rig config", "file", file)
				fmt.Fprintln(out)
				errors.Log(printFrame(out, c))
			}))
		},
	}
	cmd.Flags().StringVarP(&file, "config", "c", "", "rig config file (.toml, .yaml or .yml)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "print the cameras again whenever the config file changes")
	return cmd
}

// printFrame writes the cameras of the rig described by cfg to out.
func printFrame(out *termenv.Output, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		slog.Warn("degenerate rig", "err", err)
	}
	f, err := cfg.Rig().Frame(cfg.Views())
	if err != nil {
		return err
	}
	return writeFrame(out, &f)
}

func writeFrame(out *termenv.Output, f *xr.Frame) error {
	for i, c := range f.Cameras() {
		if i > 0 {
			fmt.Fprintln(out)
		}
		header := out.String(fmt.Sprintf("[%v]", c.Eye)).Bold()
		_, err := fmt.Fprintf(out, "%v\npos %v orient %v\n%v\nprojection:\n%v\nview:\n%v\n",
			header, c.Pose.Pos, c.Pose.Orient, c.Projection, c.ProjectionMatrix(), c.ViewMatrix())
		if err != nil {
			return err
		}
	}
	return nil
}

func newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init <file>",
		Short: "Write a default rig config file",
		Long:  "Write a default rig config file, as TOML or YAML according to its extension.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := homedir.Expand(args[0])
			if err != nil {
				return errors.Log(err)
			}
			if !force {
				if _, err := os.Stat(file); err == nil {
					return errors.Log(fmt.Errorf("%s already exists; use --force to overwrite it", file))
				}
			}
			if err := config.New().Save(file); err != nil {
				return errors.Log(err)
			}
			slog.Info("wrote rig config", "file", file)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}
