// Package uinput injects key events through a virtual kernel keyboard. The
// device shows up to Android as an external keyboard, so only the default
// display receives its events.
package uinput

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ThomasT75/uinput"
	"github.com/bnema/droidctl/internal/device"
)

var (
	// ErrClosed is returned when injecting into a closed keyboard
	ErrClosed = errors.New("keyboard is closed")
	// ErrUnmappedKey is returned for key codes with no kernel equivalent
	ErrUnmappedKey = errors.New("no kernel key for key code")
	// ErrUnsupportedEvent is returned for anything but key events
	ErrUnsupportedEvent = errors.New("unsupported input event")
	// ErrSecondaryDisplay is returned when routing to a non-default display
	ErrSecondaryDisplay = errors.New("virtual keyboard only reaches the default display")
)

// keyboardDevice is the part of uinput.Keyboard the injector drives.
type keyboardDevice interface {
	KeyDown(key int) error
	KeyUp(key int) error
	Close() error
}

// Keyboard implements device.InputManager with a uinput keyboard.
type Keyboard struct {
	kb     keyboardDevice
	mu     sync.Mutex
	closed bool
}

// NewKeyboard creates the virtual keyboard at path (usually /dev/uinput).
func NewKeyboard(path, name string) (*Keyboard, error) {
	kb, err := uinput.CreateKeyboard(path, []byte(name))
	if err != nil {
		return nil, fmt.Errorf("failed to create virtual keyboard: %w", err)
	}
	return &Keyboard{kb: kb}, nil
}

// InjectInputEvent writes the key transition. Kernel writes complete before
// returning, so every mode behaves the same.
func (k *Keyboard) InjectInputEvent(event device.InputEvent, mode device.InjectMode) error {
	key, ok := event.(*device.KeyEvent)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedEvent, event)
	}

	code, ok := evdevKeys[key.Code]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnmappedKey, key.Code)
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	if k.closed {
		return ErrClosed
	}

	if key.Action == device.KeyActionDown {
		return k.kb.KeyDown(code)
	}
	return k.kb.KeyUp(code)
}

// SetDisplayID accepts only the default display.
func (k *Keyboard) SetDisplayID(event device.InputEvent, displayID device.DisplayID) error {
	if displayID != 0 {
		return fmt.Errorf("%w: display %d", ErrSecondaryDisplay, displayID)
	}
	return nil
}

// Close destroys the virtual device.
func (k *Keyboard) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.closed {
		return nil
	}
	k.closed = true
	return k.kb.Close()
}

var _ device.InputManager = (*Keyboard)(nil)
