package device

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// KeyCode is a platform key code (KEYCODE_*).
type KeyCode int

const (
	KeyCodeUnknown        KeyCode = 0
	KeyCodeHome           KeyCode = 3
	KeyCodeBack           KeyCode = 4
	KeyCodeCall           KeyCode = 5
	KeyCodeEndCall        KeyCode = 6
	KeyCodeDpadUp         KeyCode = 19
	KeyCodeDpadDown       KeyCode = 20
	KeyCodeDpadLeft       KeyCode = 21
	KeyCodeDpadRight      KeyCode = 22
	KeyCodeDpadCenter     KeyCode = 23
	KeyCodeVolumeUp       KeyCode = 24
	KeyCodeVolumeDown     KeyCode = 25
	KeyCodePower          KeyCode = 26
	KeyCodeCamera         KeyCode = 27
	KeyCodeTab            KeyCode = 61
	KeyCodeSpace          KeyCode = 62
	KeyCodeEnter          KeyCode = 66
	KeyCodeDel            KeyCode = 67
	KeyCodeMenu           KeyCode = 82
	KeyCodeNotification   KeyCode = 83
	KeyCodeSearch         KeyCode = 84
	KeyCodeMediaPlayPause KeyCode = 85
	KeyCodeMediaNext      KeyCode = 87
	KeyCodeMediaPrevious  KeyCode = 88
	KeyCodePageUp         KeyCode = 92
	KeyCodePageDown       KeyCode = 93
	KeyCodeEscape         KeyCode = 111
	KeyCodeForwardDel     KeyCode = 112
	KeyCodeMoveHome       KeyCode = 122
	KeyCodeMoveEnd        KeyCode = 123
	KeyCodeVolumeMute     KeyCode = 164
	KeyCodeAppSwitch      KeyCode = 187
	KeyCodeBrightnessDown KeyCode = 220
	KeyCodeBrightnessUp   KeyCode = 221
	KeyCodeSleep          KeyCode = 223
	KeyCodeWakeUp         KeyCode = 224
)

var keyCodeNames = map[string]KeyCode{
	"HOME":             KeyCodeHome,
	"BACK":             KeyCodeBack,
	"CALL":             KeyCodeCall,
	"ENDCALL":          KeyCodeEndCall,
	"DPAD_UP":          KeyCodeDpadUp,
	"DPAD_DOWN":        KeyCodeDpadDown,
	"DPAD_LEFT":        KeyCodeDpadLeft,
	"DPAD_RIGHT":       KeyCodeDpadRight,
	"DPAD_CENTER":      KeyCodeDpadCenter,
	"VOLUME_UP":        KeyCodeVolumeUp,
	"VOLUME_DOWN":      KeyCodeVolumeDown,
	"POWER":            KeyCodePower,
	"CAMERA":           KeyCodeCamera,
	"TAB":              KeyCodeTab,
	"SPACE":            KeyCodeSpace,
	"ENTER":            KeyCodeEnter,
	"DEL":              KeyCodeDel,
	"MENU":             KeyCodeMenu,
	"NOTIFICATION":     KeyCodeNotification,
	"SEARCH":           KeyCodeSearch,
	"MEDIA_PLAY_PAUSE": KeyCodeMediaPlayPause,
	"MEDIA_NEXT":       KeyCodeMediaNext,
	"MEDIA_PREVIOUS":   KeyCodeMediaPrevious,
	"PAGE_UP":          KeyCodePageUp,
	"PAGE_DOWN":        KeyCodePageDown,
	"ESCAPE":           KeyCodeEscape,
	"FORWARD_DEL":      KeyCodeForwardDel,
	"MOVE_HOME":        KeyCodeMoveHome,
	"MOVE_END":         KeyCodeMoveEnd,
	"VOLUME_MUTE":      KeyCodeVolumeMute,
	"APP_SWITCH":       KeyCodeAppSwitch,
	"BRIGHTNESS_DOWN":  KeyCodeBrightnessDown,
	"BRIGHTNESS_UP":    KeyCodeBrightnessUp,
	"SLEEP":            KeyCodeSleep,
	"WAKEUP":           KeyCodeWakeUp,
}

// ParseKeyCode accepts a numeric code, a bare name ("power") or the full
// constant name ("KEYCODE_POWER").
func ParseKeyCode(s string) (KeyCode, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n <= 0 {
			return KeyCodeUnknown, fmt.Errorf("invalid key code %d", n)
		}
		return KeyCode(n), nil
	}
	name := strings.TrimPrefix(strings.ToUpper(s), "KEYCODE_")
	if code, ok := keyCodeNames[name]; ok {
		return code, nil
	}
	return KeyCodeUnknown, fmt.Errorf("unknown key %q", s)
}

func (k KeyCode) String() string {
	for name, code := range keyCodeNames {
		if code == k {
			return "KEYCODE_" + name
		}
	}
	return strconv.Itoa(int(k))
}

// KeyCodeNames lists the symbolic names ParseKeyCode understands.
func KeyCodeNames() []string {
	names := make([]string, 0, len(keyCodeNames))
	for name := range keyCodeNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
