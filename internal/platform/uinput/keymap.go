package uinput

import "github.com/bnema/droidctl/internal/device"

// evdevKeys maps key codes to linux/input-event-codes.h. Android's stock
// Generic.kl maps them back on the device.
var evdevKeys = map[device.KeyCode]int{
	device.KeyCodeHome:           172, // KEY_HOMEPAGE
	device.KeyCodeBack:           158, // KEY_BACK
	device.KeyCodeCall:           169, // KEY_PHONE
	device.KeyCodeEndCall:        0xe8,
	device.KeyCodeDpadUp:         103,
	device.KeyCodeDpadDown:       108,
	device.KeyCodeDpadLeft:       105,
	device.KeyCodeDpadRight:      106,
	device.KeyCodeDpadCenter:     353, // KEY_SELECT
	device.KeyCodeVolumeUp:       115,
	device.KeyCodeVolumeDown:     114,
	device.KeyCodePower:          116,
	device.KeyCodeCamera:         212,
	device.KeyCodeTab:            15,
	device.KeyCodeSpace:          57,
	device.KeyCodeEnter:          28,
	device.KeyCodeDel:            14, // KEY_BACKSPACE
	device.KeyCodeMenu:           139,
	device.KeyCodeNotification:   0x1d0, // KEY_FN
	device.KeyCodeSearch:         217,
	device.KeyCodeMediaPlayPause: 164,
	device.KeyCodeMediaNext:      163,
	device.KeyCodeMediaPrevious:  165,
	device.KeyCodePageUp:         104,
	device.KeyCodePageDown:       109,
	device.KeyCodeEscape:         1,
	device.KeyCodeForwardDel:     111,
	device.KeyCodeMoveHome:       102,
	device.KeyCodeMoveEnd:        107,
	device.KeyCodeVolumeMute:     113,
	device.KeyCodeAppSwitch:      580, // KEY_APPSELECT
	device.KeyCodeBrightnessDown: 224,
	device.KeyCodeBrightnessUp:   225,
	device.KeyCodeSleep:          142,
	device.KeyCodeWakeUp:         143,
}
