// Package platform wires the device facade to the services reachable from
// this machine: Android shell tools, a uinput keyboard and the system
// clipboard.
package platform

import (
	"fmt"
	"io"

	"github.com/bnema/droidctl/internal/config"
	"github.com/bnema/droidctl/internal/device"
	"github.com/bnema/droidctl/internal/logger"
	"github.com/bnema/droidctl/internal/platform/clipboard"
	"github.com/bnema/droidctl/internal/platform/shell"
	"github.com/bnema/droidctl/internal/platform/uinput"
	"go.uber.org/multierr"
)

// Session is an opened device. Close releases the input backend.
type Session struct {
	Device       *device.Device
	InputBackend string
	Clipboard    bool

	closers []io.Closer
}

// Close releases everything Open acquired.
func (s *Session) Close() error {
	var err error
	for _, c := range s.closers {
		err = multierr.Append(err, c.Close())
	}
	s.closers = nil
	return err
}

type keyboardInput interface {
	device.InputManager
	io.Closer
}

// factories are swapped out in tests.
type factories struct {
	newRunner    func(adbPath, serial string) (shell.Runner, error)
	isLocal      func(shell.Runner) bool
	newKeyboard  func(path, name string) (keyboardInput, error)
	newClipboard func() device.ClipboardManager
}

var defaultFactories = factories{
	newRunner: shell.NewRunner,
	isLocal:   shell.IsLocal,
	newKeyboard: func(path, name string) (keyboardInput, error) {
		return uinput.NewKeyboard(path, name)
	},
	newClipboard: func() device.ClipboardManager {
		// keep a nil *System out of the interface
		if cb := clipboard.New(); cb != nil {
			return cb
		}
		return nil
	},
}

// Open connects to the device described by cfg.
func Open(cfg *config.Config) (*Session, error) {
	return open(cfg, defaultFactories)
}

func open(cfg *config.Config, f factories) (*Session, error) {
	runner, err := f.newRunner(cfg.Device.ADBPath, cfg.Device.Serial)
	if err != nil {
		return nil, err
	}

	sh := shell.New(runner, shell.Options{
		Timeout:                  cfg.Device.ShellTimeoutDuration(),
		BuiltInDisplayMethod:     cfg.Device.BuiltInDisplayMethod,
		SurfacePhysicalIDsMethod: cfg.Device.SurfacePhysicalIDsMethod,
	})

	build, err := readBuild(sh, cfg.Device)
	if err != nil {
		return nil, err
	}
	logger.Debug("Device build", "sdk", build.SDK, "brand", build.Brand, "model", build.Model)

	session := &Session{}
	svc := device.Services{
		Power:          sh,
		Surface:        sh,
		DisplayControl: sh,
		Displays:       sh,
		Window:         sh,
		Activity:       sh,
		Packages:       sh,
		StatusBar:      sh,
	}

	// uinput devices and the host clipboard belong to the machine droidctl
	// runs on, which is only the device when commands run locally.
	local := f.isLocal(runner)

	input, name, closer, err := openInput(cfg.Input, sh, local, f)
	if err != nil {
		return nil, err
	}
	svc.Input = input
	session.InputBackend = name
	if closer != nil {
		session.closers = append(session.closers, closer)
	}

	switch {
	case !cfg.Clipboard.Enabled:
	case !local:
		logger.Debug("Clipboard disabled, commands go through adb")
	default:
		if cb := f.newClipboard(); cb != nil {
			svc.Clipboard = cb
			session.Clipboard = true
		}
	}

	session.Device = device.New(build, svc,
		device.WithRequestDisplayPower(cfg.Device.UseRequestDisplayPower))
	return session, nil
}

// readBuild asks the device for its build facts; configured values win.
func readBuild(sh *shell.Shell, dc config.DeviceConfig) (device.Build, error) {
	build, err := sh.ReadBuild()
	if err != nil {
		if dc.SDK == 0 {
			return device.Build{}, fmt.Errorf("failed to read device build: %w", err)
		}
		logger.Warn("Could not read device build, using configured values", "err", err)
		build = device.Build{}
	}

	if dc.SDK != 0 {
		build.SDK = dc.SDK
	}
	if dc.Brand != "" {
		build.Brand = dc.Brand
	}
	return build, nil
}

type inputBackend struct {
	name   string
	create func() (device.InputManager, io.Closer, error)
}

// openInput tries the configured input backends in order of preference. A
// uinput keyboard lands on the machine droidctl runs on, so "auto" only
// tries it when that machine is the device.
func openInput(ic config.InputConfig, sh *shell.Shell, local bool, f factories) (device.InputManager, string, io.Closer, error) {
	uinputBackend := inputBackend{"uinput", func() (device.InputManager, io.Closer, error) {
		kb, err := f.newKeyboard(ic.UInputPath, ic.DeviceName)
		if err != nil {
			return nil, nil, err
		}
		return kb, kb, nil
	}}
	shellBackend := inputBackend{"shell", func() (device.InputManager, io.Closer, error) {
		return sh, nil, nil
	}}

	var backends []inputBackend
	switch ic.Backend {
	case "uinput":
		backends = []inputBackend{uinputBackend}
	case "shell":
		backends = []inputBackend{shellBackend}
	default:
		if local {
			backends = append(backends, uinputBackend)
		}
		backends = append(backends, shellBackend)
	}

	var errs error
	for _, b := range backends {
		logger.Debugf("Trying input backend: %s", b.name)
		input, closer, err := b.create()
		if err == nil {
			logger.Debugf("Using input backend: %s", b.name)
			return input, b.name, closer, nil
		}
		logger.Debugf("Input backend %s failed: %v", b.name, err)
		errs = multierr.Append(errs, fmt.Errorf("%s: %w", b.name, err))
	}
	return nil, "", nil, fmt.Errorf("no input backend available: %w", errs)
}
