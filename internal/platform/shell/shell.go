// Package shell implements the device services on top of the Android shell
// tools (getprop, dumpsys, settings, wm, input, am, cmd). It works over adb
// from a workstation or locally on the device.
package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/droidctl/internal/device"
)

var (
	// ErrCommandFailed is returned when a shell command exits non-zero.
	ErrCommandFailed = errors.New("shell command failed")
	// ErrUnsupported is returned for operations no shell tool exposes.
	ErrUnsupported = errors.New("not supported over shell")
	// ErrUnexpectedOutput is returned when a tool prints something we
	// cannot parse.
	ErrUnexpectedOutput = errors.New("unexpected command output")
)

// Options carries the facts the shell cannot discover by itself.
type Options struct {
	Timeout time.Duration
	// Whether the compositor still exposes the built-in display lookup
	// and physical display enumeration entry points.
	BuiltInDisplayMethod     bool
	SurfacePhysicalIDsMethod bool
}

// Shell implements the device capability interfaces with shell commands.
type Shell struct {
	runner Runner
	opts   Options
}

// New creates a Shell issuing commands through runner.
func New(runner Runner, opts Options) *Shell {
	return &Shell{runner: runner, opts: opts}
}

func (s *Shell) exec(args ...string) (string, error) {
	ctx := context.Background()
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}
	return s.runner.Run(ctx, args...)
}

func (s *Shell) getprop(name string) (string, error) {
	out, err := s.exec("getprop", name)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// ReadBuild reads the release and vendor facts from system properties.
func (s *Shell) ReadBuild() (device.Build, error) {
	sdk, err := s.getprop("ro.build.version.sdk")
	if err != nil {
		return device.Build{}, fmt.Errorf("read sdk level: %w", err)
	}
	level, err := strconv.Atoi(sdk)
	if err != nil {
		return device.Build{}, fmt.Errorf("%w: sdk level %q", ErrUnexpectedOutput, sdk)
	}

	brand, err := s.getprop("ro.product.brand")
	if err != nil {
		return device.Build{}, fmt.Errorf("read brand: %w", err)
	}
	model, err := s.getprop("ro.product.model")
	if err != nil {
		return device.Build{}, fmt.Errorf("read model: %w", err)
	}

	return device.Build{SDK: level, Brand: brand, Model: model}, nil
}

func displayArgs(displayID device.DisplayID) []string {
	if displayID == 0 {
		return nil
	}
	return []string{"-d", strconv.Itoa(int(displayID))}
}

var (
	_ device.PowerManager     = (*Shell)(nil)
	_ device.SurfaceControl   = (*Shell)(nil)
	_ device.DisplayControl   = (*Shell)(nil)
	_ device.DisplayManager   = (*Shell)(nil)
	_ device.WindowManager    = (*Shell)(nil)
	_ device.InputManager     = (*Shell)(nil)
	_ device.ActivityManager  = (*Shell)(nil)
	_ device.PackageManager   = (*Shell)(nil)
	_ device.StatusBarManager = (*Shell)(nil)
)
