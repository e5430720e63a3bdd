package device

import (
	"fmt"

	"github.com/bnema/droidctl/internal/logger"
)

// RotateDevice flips the display between portrait and landscape. Forcing a
// rotation turns auto-rotation off, so it is turned back on afterwards if it
// was enabled before the call.
func (d *Device) RotateDevice(displayID DisplayID) error {
	mustBeValidDisplay(displayID)

	wm := d.svc.Window
	if wm == nil {
		return fmt.Errorf("rotate display %d: window manager: %w", displayID, ErrUnavailable)
	}

	frozen, err := wm.IsRotationFrozen(displayID)
	if err != nil {
		return fmt.Errorf("rotate display %d: read rotation lock: %w", displayID, err)
	}
	accelerometerRotation := !frozen

	current, err := d.currentRotation(displayID)
	if err != nil {
		return fmt.Errorf("rotate display %d: %w", displayID, err)
	}

	// 0->1, 1->0, 2->1, 3->0
	next := Rotation((current & 1) ^ 1)

	logger.Info("Device rotation requested", "display", displayID, "orientation", next)
	if err := wm.FreezeRotation(displayID, next); err != nil {
		return fmt.Errorf("rotate display %d: freeze: %w", displayID, err)
	}

	if accelerometerRotation {
		if err := wm.ThawRotation(displayID); err != nil {
			return fmt.Errorf("rotate display %d: restore auto-rotation: %w", displayID, err)
		}
	}
	return nil
}

func (d *Device) currentRotation(displayID DisplayID) (Rotation, error) {
	if displayID == 0 {
		r, err := d.svc.Window.Rotation()
		if err != nil {
			return 0, fmt.Errorf("read rotation: %w", err)
		}
		return r, nil
	}

	if d.svc.Displays == nil {
		return 0, fmt.Errorf("read rotation: display manager: %w", ErrUnavailable)
	}
	r, err := d.svc.Displays.DisplayRotation(displayID)
	if err != nil {
		return 0, fmt.Errorf("read rotation: %w", err)
	}
	return r, nil
}
