package device

import (
	"fmt"
	"time"
)

// DisplayID identifies a logical display. 0 is the default display.
type DisplayID int32

// DisplayNone is the "no display" sentinel.
const DisplayNone DisplayID = -1

// PhysicalDisplayID identifies a physical panel, as reported by the
// compositor. It is only used for power control.
type PhysicalDisplayID uint64

// DisplayToken is the opaque handle the compositor hands out for a
// physical display.
type DisplayToken string

// PowerMode values match the compositor's own constants.
type PowerMode int

const (
	PowerModeOff    PowerMode = 0
	PowerModeNormal PowerMode = 2
)

func (m PowerMode) String() string {
	switch m {
	case PowerModeOff:
		return "off"
	case PowerModeNormal:
		return "normal"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Rotation counts quarter turns from the natural orientation.
type Rotation int

const (
	Rotation0 Rotation = iota
	Rotation90
	Rotation180
	Rotation270
)

// Landscape reports whether the rotation is an odd number of quarter turns.
func (r Rotation) Landscape() bool {
	return r&1 == 1
}

func (r Rotation) String() string {
	if r.Landscape() {
		return "landscape"
	}
	return "portrait"
}

// InjectMode controls whether injection waits for the input pipeline.
type InjectMode int

const (
	InjectModeAsync InjectMode = iota
	InjectModeWaitForResult
	InjectModeWaitForFinish
)

func (m InjectMode) String() string {
	switch m {
	case InjectModeAsync:
		return "async"
	case InjectModeWaitForResult:
		return "wait-for-result"
	case InjectModeWaitForFinish:
		return "wait-for-finish"
	default:
		return fmt.Sprintf("inject-mode(%d)", int(m))
	}
}

// KeyAction is the action field of a key event.
type KeyAction int

const (
	KeyActionDown KeyAction = 0
	KeyActionUp   KeyAction = 1
)

func (a KeyAction) String() string {
	if a == KeyActionUp {
		return "up"
	}
	return "down"
}

// InputSource is the source class of an input event.
type InputSource int

const SourceKeyboard InputSource = 0x00000101

// VirtualKeyboard is the device id of the built-in virtual key character map.
const VirtualKeyboard = -1

// InputEvent is an event the input capability can inject.
type InputEvent interface {
	Source() InputSource
	EventTime() time.Duration
}

// KeyEvent mirrors the fields of a platform key event. Times are uptime
// offsets. Display is set by InputManager.SetDisplayID; the zero value
// targets the default display.
type KeyEvent struct {
	DownTime  time.Duration
	Time      time.Duration
	Action    KeyAction
	Code      KeyCode
	Repeat    int
	MetaState int
	DeviceID  int
	ScanCode  int
	Flags     int
	InputSrc  InputSource
	Display   DisplayID
}

func (e *KeyEvent) Source() InputSource {
	return e.InputSrc
}

func (e *KeyEvent) EventTime() time.Duration {
	return e.Time
}

// App is a launchable activity together with its drawer label.
type App struct {
	Label        string
	PackageName  string
	ActivityName string
}

// ComponentName is a (package, class) pair identifying an activity.
type ComponentName struct {
	Package string
	Class   string
}

func (c ComponentName) String() string {
	return c.Package + "/" + c.Class
}

// Intent is a launch request for an explicit component.
type Intent struct {
	Component ComponentName
}

// Package returns the package the intent launches.
func (i Intent) Package() string {
	return i.Component.Package
}

// LaunchIntent builds an explicit launch intent for the app.
func (a App) LaunchIntent() Intent {
	return Intent{Component: ComponentName{Package: a.PackageName, Class: a.ActivityName}}
}

var processStart = time.Now()

// uptime stands in for the platform's monotonic uptime clock.
func uptime() time.Duration {
	return time.Since(processStart)
}
