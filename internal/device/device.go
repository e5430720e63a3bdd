// Package device is the device-control facade: it turns remote-control
// intents into calls on the host's device services and hides the
// differences between OS releases and vendors.
//
// A Device holds no mutable state. Every method reads the build facts and
// capabilities it was created with and talks to the services directly, so
// concurrent sessions are serialized by the caller, not here.
package device

import (
	"errors"
	"fmt"
)

// OS generations the facade branches on.
const (
	API26Android8  = 26
	API29Android10 = 29
	API34Android14 = 34
	API35Android15 = 35
)

var (
	// ErrUnavailable is returned when the capability an operation needs
	// was not provided by the platform.
	ErrUnavailable = errors.New("capability unavailable")
	// ErrClipboardUnavailable is returned when no clipboard service exists.
	ErrClipboardUnavailable = fmt.Errorf("clipboard: %w", ErrUnavailable)
	// ErrNoPhysicalDisplays is logged when enumeration yields nothing.
	ErrNoPhysicalDisplays = errors.New("no physical display ids")
)

// Build carries the release and vendor facts of the running OS.
type Build struct {
	SDK   int
	Brand string
	Model string
}

// Device is the facade. Create it with New.
type Device struct {
	build                  Build
	svc                    Services
	useRequestDisplayPower bool
}

// Option tweaks a Device at construction.
type Option func(*Device)

// WithRequestDisplayPower enables the per-display power request on builds
// that offer it.
func WithRequestDisplayPower(enabled bool) Option {
	return func(d *Device) {
		d.useRequestDisplayPower = enabled
	}
}

// New creates a facade over the given services.
func New(build Build, svc Services, opts ...Option) *Device {
	d := &Device{build: build, svc: svc}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Build returns the build facts the facade branches on.
func (d *Device) Build() Build {
	return d.build
}

// DeviceName returns the product model.
func (d *Device) DeviceName() string {
	return d.build.Model
}

func (d *Device) sdkAtLeast(level int) bool {
	return d.build.SDK >= level
}

// mustBeValidDisplay panics on the "no display" sentinel; passing it is a
// caller bug.
func mustBeValidDisplay(displayID DisplayID) {
	if displayID == DisplayNone {
		panic("device: operation requires a display, got DisplayNone")
	}
}
