package shell

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bnema/droidctl/internal/device"
)

// One DisplayInfo{...} per line. Mode lists and HDR capabilities nest
// braces before the rotation field, so match within the line instead.
// DisplayInfo{"Built-in Screen", displayId 0, ..., modes [{...}], ..., rotation 1, ...}
var displayInfoRe = regexp.MustCompile(`displayId (\d+),.*?, rotation (\d)`)

// DisplayRotation reads the rotation of a logical display from the display
// manager dump.
func (s *Shell) DisplayRotation(displayID device.DisplayID) (device.Rotation, error) {
	out, err := s.exec("dumpsys", "display")
	if err != nil {
		return 0, err
	}
	return parseDisplayRotation(out, displayID)
}

func parseDisplayRotation(out string, displayID device.DisplayID) (device.Rotation, error) {
	want := strconv.Itoa(int(displayID))
	for _, m := range displayInfoRe.FindAllStringSubmatch(out, -1) {
		if m[1] != want {
			continue
		}
		r, _ := strconv.Atoi(m[2])
		if r > int(device.Rotation270) {
			return 0, fmt.Errorf("%w: rotation %d", ErrUnexpectedOutput, r)
		}
		return device.Rotation(r), nil
	}
	return 0, fmt.Errorf("%w: display %d not found in dumpsys display", ErrUnexpectedOutput, displayID)
}

// Rotation returns the rotation of the default display.
func (s *Shell) Rotation() (device.Rotation, error) {
	return s.DisplayRotation(0)
}

// IsRotationFrozen reports whether auto-rotation is off. The default
// display uses the system setting, which every release has; secondary
// displays need "wm user-rotation -d".
func (s *Shell) IsRotationFrozen(displayID device.DisplayID) (bool, error) {
	if displayID == 0 {
		out, err := s.exec("settings", "get", "system", "accelerometer_rotation")
		if err != nil {
			return false, err
		}
		return strings.TrimSpace(out) != "1", nil
	}

	args := append([]string{"wm", "user-rotation"}, displayArgs(displayID)...)
	out, err := s.exec(args...)
	if err != nil {
		return false, err
	}
	return parseUserRotationMode(out)
}

func parseUserRotationMode(out string) (bool, error) {
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return false, fmt.Errorf("%w: empty wm user-rotation output", ErrUnexpectedOutput)
	}
	switch fields[0] {
	case "lock":
		return true, nil
	case "free":
		return false, nil
	}
	return false, fmt.Errorf("%w: wm user-rotation %q", ErrUnexpectedOutput, strings.TrimSpace(out))
}

// FreezeRotation locks displayID to rotation.
func (s *Shell) FreezeRotation(displayID device.DisplayID, rotation device.Rotation) error {
	if displayID == 0 {
		if _, err := s.exec("settings", "put", "system", "accelerometer_rotation", "0"); err != nil {
			return err
		}
		_, err := s.exec("settings", "put", "system", "user_rotation", strconv.Itoa(int(rotation)))
		return err
	}

	args := append([]string{"wm", "user-rotation"}, displayArgs(displayID)...)
	args = append(args, "lock", strconv.Itoa(int(rotation)))
	_, err := s.exec(args...)
	return err
}

// ThawRotation turns auto-rotation back on for displayID.
func (s *Shell) ThawRotation(displayID device.DisplayID) error {
	if displayID == 0 {
		_, err := s.exec("settings", "put", "system", "accelerometer_rotation", "1")
		return err
	}

	args := append([]string{"wm", "user-rotation"}, displayArgs(displayID)...)
	args = append(args, "free")
	_, err := s.exec(args...)
	return err
}
