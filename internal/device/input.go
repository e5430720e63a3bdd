package device

import (
	"github.com/bnema/droidctl/internal/logger"
)

// SupportsInputEvents reports whether events can be injected into the
// display. Secondary displays need Android 10.
func (d *Device) SupportsInputEvents(displayID DisplayID) bool {
	return displayID == 0 || d.sdkAtLeast(API29Android10)
}

// InjectEvent injects event into displayID. Callers must check
// SupportsInputEvents first; violating that contract panics.
func (d *Device) InjectEvent(event InputEvent, displayID DisplayID, mode InjectMode) bool {
	if !d.SupportsInputEvents(displayID) {
		panic("device: cannot inject input event when !SupportsInputEvents()")
	}

	if d.svc.Input == nil {
		logger.Error("Could not inject input event", "err", ErrUnavailable)
		return false
	}

	if displayID != 0 {
		if err := d.svc.Input.SetDisplayID(event, displayID); err != nil {
			logger.Error("Could not set input event display", "display", displayID, "err", err)
			return false
		}
	}

	if err := d.svc.Input.InjectInputEvent(event, mode); err != nil {
		logger.Debug("Input event injection failed", "display", displayID, "mode", mode, "err", err)
		return false
	}
	return true
}

// InjectKeyEvent builds a keyboard event stamped with the current uptime
// and injects it.
func (d *Device) InjectKeyEvent(action KeyAction, code KeyCode, repeat, metaState int, displayID DisplayID, mode InjectMode) bool {
	now := uptime()
	event := &KeyEvent{
		DownTime:  now,
		Time:      now,
		Action:    action,
		Code:      code,
		Repeat:    repeat,
		MetaState: metaState,
		DeviceID:  VirtualKeyboard,
		InputSrc:  SourceKeyboard,
	}
	return d.InjectEvent(event, displayID, mode)
}

// PressReleaseKeycode injects a down then an up event. The up event is not
// sent if the down event fails.
func (d *Device) PressReleaseKeycode(code KeyCode, displayID DisplayID, mode InjectMode) bool {
	return d.InjectKeyEvent(KeyActionDown, code, 0, 0, displayID, mode) &&
		d.InjectKeyEvent(KeyActionUp, code, 0, 0, displayID, mode)
}
