package device

import (
	"google.golang.org/protobuf/types/known/structpb"
)

// The interfaces below are the host services the facade drives. Each
// platform binding implements the subset it can; a nil service means the
// capability is unavailable on this host.

// PowerManager reports the interactive state of a display.
type PowerManager interface {
	IsScreenOn(displayID DisplayID) (bool, error)
}

// PhysicalDisplayLister enumerates physical panels and resolves their tokens.
type PhysicalDisplayLister interface {
	PhysicalDisplayIDs() ([]PhysicalDisplayID, error)
	PhysicalDisplayToken(id PhysicalDisplayID) (DisplayToken, error)
}

// SurfaceControl is the compositor control surface. HasBuiltInDisplayMethod
// and HasPhysicalDisplayIDsMethod report whether the running build still
// exposes those entry points here.
type SurfaceControl interface {
	PhysicalDisplayLister
	BuiltInDisplay() (DisplayToken, error)
	SetDisplayPowerMode(token DisplayToken, mode PowerMode) error
	HasBuiltInDisplayMethod() bool
	HasPhysicalDisplayIDsMethod() bool
}

// DisplayControl is where newer builds moved physical display enumeration.
type DisplayControl interface {
	PhysicalDisplayLister
}

// DisplayManager answers per-logical-display queries.
type DisplayManager interface {
	DisplayRotation(displayID DisplayID) (Rotation, error)
	RequestDisplayPower(displayID DisplayID, on bool) error
}

// WindowManager owns the rotation lock. Freezing a rotation disables
// auto-rotation as a side effect.
type WindowManager interface {
	IsRotationFrozen(displayID DisplayID) (bool, error)
	FreezeRotation(displayID DisplayID, rotation Rotation) error
	ThawRotation(displayID DisplayID) error
	// Rotation returns the rotation of the default display.
	Rotation() (Rotation, error)
}

// InputManager injects synthetic events.
type InputManager interface {
	InjectInputEvent(event InputEvent, mode InjectMode) error
	SetDisplayID(event InputEvent, displayID DisplayID) error
}

// ClipboardManager reads and writes the host clipboard text.
type ClipboardManager interface {
	Text() (string, error)
	SetText(text string) error
}

// ActivityManager stops packages and starts activities. options may be nil.
type ActivityManager interface {
	ForceStopPackage(pkg string) error
	StartActivity(intent Intent, options *structpb.Struct) error
}

// PackageManager lists launchable activities for an intent category.
type PackageManager interface {
	LaunchableApps(category string) ([]App, error)
	IsTelevision() (bool, error)
}

// StatusBarManager drives the notification shade.
type StatusBarManager interface {
	ExpandNotificationsPanel() error
	ExpandSettingsPanel() error
	CollapsePanels() error
}

// Services groups the capabilities handed to New.
type Services struct {
	Power          PowerManager
	Surface        SurfaceControl
	DisplayControl DisplayControl
	Displays       DisplayManager
	Window         WindowManager
	Input          InputManager
	Clipboard      ClipboardManager
	Activity       ActivityManager
	Packages       PackageManager
	StatusBar      StatusBarManager
}
