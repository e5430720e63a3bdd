package shell

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/bnema/droidctl/internal/device"
	"github.com/bnema/droidctl/internal/logger"
)

var (
	wakefulnessRe  = regexp.MustCompile(`(?:mWakefulness|getWakefulnessLocked\(\))=(\w+)`)
	displayPowerRe = regexp.MustCompile(`Display Power: state=(\w+)`)
	physicalIDRe   = regexp.MustCompile(`(?m)^Display (\d+)`)
)

// IsScreenOn reads the power manager wakefulness. The state is global, so
// displayID is not consulted: PowerOffScreen on a secondary display checks
// whether the device as a whole is awake.
func (s *Shell) IsScreenOn(displayID device.DisplayID) (bool, error) {
	out, err := s.exec("dumpsys", "power")
	if err != nil {
		return false, err
	}
	return parseScreenOn(out)
}

func parseScreenOn(out string) (bool, error) {
	if m := wakefulnessRe.FindStringSubmatch(out); m != nil {
		return m[1] == "Awake", nil
	}
	if m := displayPowerRe.FindStringSubmatch(out); m != nil {
		return m[1] == "ON", nil
	}
	return false, fmt.Errorf("%w: no wakefulness in dumpsys power", ErrUnexpectedOutput)
}

// PhysicalDisplayIDs lists the panels known to SurfaceFlinger, built-in
// panel first.
func (s *Shell) PhysicalDisplayIDs() ([]device.PhysicalDisplayID, error) {
	out, err := s.exec("dumpsys", "SurfaceFlinger", "--display-id")
	if err != nil {
		return nil, err
	}
	return parsePhysicalDisplayIDs(out)
}

func parsePhysicalDisplayIDs(out string) ([]device.PhysicalDisplayID, error) {
	var ids []device.PhysicalDisplayID
	for _, m := range physicalIDRe.FindAllStringSubmatch(out, -1) {
		id, err := strconv.ParseUint(m[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: display id %q", ErrUnexpectedOutput, m[1])
		}
		ids = append(ids, device.PhysicalDisplayID(id))
	}
	return ids, nil
}

// PhysicalDisplayToken names a panel by its id; the shell has no binder
// tokens to hand out.
func (s *Shell) PhysicalDisplayToken(id device.PhysicalDisplayID) (device.DisplayToken, error) {
	return device.DisplayToken(strconv.FormatUint(uint64(id), 10)), nil
}

// BuiltInDisplay returns the token of the first listed panel.
func (s *Shell) BuiltInDisplay() (device.DisplayToken, error) {
	ids, err := s.PhysicalDisplayIDs()
	if err != nil {
		return "", err
	}
	if len(ids) == 0 {
		return "", fmt.Errorf("built-in display: %w", device.ErrNoPhysicalDisplays)
	}
	return s.PhysicalDisplayToken(ids[0])
}

// SetDisplayPowerMode has no per-panel shell equivalent. It falls back to
// waking or sleeping the whole device, which also locks it when turning
// off.
func (s *Shell) SetDisplayPowerMode(token device.DisplayToken, mode device.PowerMode) error {
	code := device.KeyCodeWakeUp
	if mode == device.PowerModeOff {
		code = device.KeyCodeSleep
	}
	logger.Debug("Display power mode through key event", "token", token, "mode", mode, "key", code)
	_, err := s.exec("input", "keyevent", strconv.Itoa(int(code)))
	return err
}

func (s *Shell) HasBuiltInDisplayMethod() bool {
	return s.opts.BuiltInDisplayMethod
}

func (s *Shell) HasPhysicalDisplayIDsMethod() bool {
	return s.opts.SurfacePhysicalIDsMethod
}

// RequestDisplayPower is not reachable from the shell.
func (s *Shell) RequestDisplayPower(displayID device.DisplayID, on bool) error {
	return fmt.Errorf("request display %d power: %w", displayID, ErrUnsupported)
}
