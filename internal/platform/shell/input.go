package shell

import (
	"fmt"
	"strconv"

	"github.com/bnema/droidctl/internal/device"
)

// InjectInputEvent injects key events with "input keyevent". That tool
// only sends complete presses, so down events are accepted and dropped and
// each up event sends one press. The shell always waits for the tool to
// exit, so mode makes no difference.
func (s *Shell) InjectInputEvent(event device.InputEvent, mode device.InjectMode) error {
	key, ok := event.(*device.KeyEvent)
	if !ok {
		return fmt.Errorf("%w: %T events", ErrUnsupported, event)
	}

	if key.Action == device.KeyActionDown {
		return nil
	}

	args := append([]string{"input"}, displayArgs(key.Display)...)
	args = append(args, "keyevent", strconv.Itoa(int(key.Code)))
	_, err := s.exec(args...)
	return err
}

// SetDisplayID routes event to displayID.
func (s *Shell) SetDisplayID(event device.InputEvent, displayID device.DisplayID) error {
	key, ok := event.(*device.KeyEvent)
	if !ok {
		return fmt.Errorf("%w: %T events", ErrUnsupported, event)
	}
	key.Display = displayID
	return nil
}
