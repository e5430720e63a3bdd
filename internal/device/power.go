package device

import (
	"fmt"
	"strings"

	"github.com/bnema/droidctl/internal/logger"
	"go.uber.org/multierr"
)

type powerStrategy int

const (
	strategyRequestDisplayPower powerStrategy = iota
	strategyPhysicalDisplays
	strategyBuiltInDisplay
)

func (s powerStrategy) String() string {
	switch s {
	case strategyRequestDisplayPower:
		return "request-display-power"
	case strategyPhysicalDisplays:
		return "physical-displays"
	default:
		return "built-in-display"
	}
}

// powerRule selects how display power is applied. Rules are checked in
// order on every call and the first match wins.
type powerRule struct {
	name     string
	applies  func(d *Device) bool
	strategy powerStrategy
}

var powerRules = []powerRule{
	{
		name: "request-display-power",
		applies: func(d *Device) bool {
			return d.useRequestDisplayPower && d.sdkAtLeast(API35Android15)
		},
		strategy: strategyRequestDisplayPower,
	},
	{
		// Setting the mode per physical display breaks Honor devices on
		// Android 14 that still ship the built-in display method.
		name: "honor-android-14",
		applies: func(d *Device) bool {
			return d.sdkAtLeast(API34Android14) &&
				strings.EqualFold(d.build.Brand, "honor") &&
				d.svc.Surface != nil && d.svc.Surface.HasBuiltInDisplayMethod()
		},
		strategy: strategyBuiltInDisplay,
	},
	{
		name: "multi-physical",
		applies: func(d *Device) bool {
			return d.sdkAtLeast(API29Android10)
		},
		strategy: strategyPhysicalDisplays,
	},
	{
		name:     "legacy",
		applies:  func(d *Device) bool { return true },
		strategy: strategyBuiltInDisplay,
	},
}

func (d *Device) selectPowerRule() powerRule {
	for _, rule := range powerRules {
		if rule.applies(d) {
			return rule
		}
	}
	return powerRules[len(powerRules)-1]
}

// IsScreenOn reports whether the display is interactive. A failed query
// reads as "off", so PowerOffScreen never presses power blindly.
func (d *Device) IsScreenOn(displayID DisplayID) bool {
	mustBeValidDisplay(displayID)

	if d.svc.Power == nil {
		logger.Error("Could not query screen state", "display", displayID, "err", ErrUnavailable)
		return false
	}
	on, err := d.svc.Power.IsScreenOn(displayID)
	if err != nil {
		logger.Error("Could not query screen state", "display", displayID, "err", err)
		return false
	}
	return on
}

// SetDisplayPower turns the panels backing the device on or off without
// changing the interactive state of the OS.
func (d *Device) SetDisplayPower(displayID DisplayID, on bool) bool {
	mustBeValidDisplay(displayID)

	mode := PowerModeOff
	if on {
		mode = PowerModeNormal
	}

	rule := d.selectPowerRule()
	logger.Debug("Display power", "display", displayID, "mode", mode, "rule", rule.name, "strategy", rule.strategy)

	switch rule.strategy {
	case strategyRequestDisplayPower:
		if d.svc.Displays == nil {
			logger.Error("Could not request display power", "err", ErrUnavailable)
			return false
		}
		if err := d.svc.Displays.RequestDisplayPower(displayID, on); err != nil {
			logger.Error("Could not request display power", "display", displayID, "err", err)
			return false
		}
		return true
	case strategyPhysicalDisplays:
		return d.setPhysicalDisplaysPower(mode)
	default:
		return d.setBuiltInDisplayPower(mode)
	}
}

// physicalDisplayLister picks the enumeration entry point. Android 14 moved
// it from SurfaceControl to DisplayControl, unless the vendor kept it.
func (d *Device) physicalDisplayLister() PhysicalDisplayLister {
	useDisplayControl := d.sdkAtLeast(API34Android14) &&
		(d.svc.Surface == nil || !d.svc.Surface.HasPhysicalDisplayIDsMethod())
	if useDisplayControl {
		if d.svc.DisplayControl == nil {
			return nil
		}
		return d.svc.DisplayControl
	}
	if d.svc.Surface == nil {
		return nil
	}
	return d.svc.Surface
}

func (d *Device) setPhysicalDisplaysPower(mode PowerMode) bool {
	lister := d.physicalDisplayLister()
	if lister == nil || d.svc.Surface == nil {
		logger.Error("Could not get physical display ids", "err", ErrUnavailable)
		return false
	}

	ids, err := lister.PhysicalDisplayIDs()
	if err == nil && len(ids) == 0 {
		err = ErrNoPhysicalDisplays
	}
	if err != nil {
		logger.Error("Could not get physical display ids", "err", err)
		return false
	}

	var errs error
	for _, id := range ids {
		errs = multierr.Append(errs, d.setPhysicalDisplayPower(lister, id, mode))
	}
	if errs != nil {
		logger.Error("Could not set power mode on every display", "mode", mode, "err", errs)
		return false
	}
	return true
}

func (d *Device) setPhysicalDisplayPower(lister PhysicalDisplayLister, id PhysicalDisplayID, mode PowerMode) error {
	token, err := lister.PhysicalDisplayToken(id)
	if err != nil {
		return fmt.Errorf("display %d: token: %w", id, err)
	}
	if err := d.svc.Surface.SetDisplayPowerMode(token, mode); err != nil {
		return fmt.Errorf("display %d: %w", id, err)
	}
	return nil
}

func (d *Device) setBuiltInDisplayPower(mode PowerMode) bool {
	if d.svc.Surface == nil {
		logger.Error("Could not get built-in display", "err", ErrUnavailable)
		return false
	}

	token, err := d.svc.Surface.BuiltInDisplay()
	if err != nil {
		logger.Error("Could not get built-in display", "err", err)
		return false
	}
	if err := d.svc.Surface.SetDisplayPowerMode(token, mode); err != nil {
		logger.Error("Could not set built-in display power mode", "mode", mode, "err", err)
		return false
	}
	return true
}

// PowerOffScreen presses the power key unless the screen is already off.
// The key is injected asynchronously; the resulting state change is not
// awaited.
func (d *Device) PowerOffScreen(displayID DisplayID) bool {
	mustBeValidDisplay(displayID)

	if !d.IsScreenOn(displayID) {
		return true
	}
	return d.PressReleaseKeycode(KeyCodePower, displayID, InjectModeAsync)
}
