package uinput

import (
	"strconv"
	"testing"

	"github.com/bnema/droidctl/internal/device"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockKeyboard struct {
	events []string
	closed int
}

func (m *mockKeyboard) KeyDown(key int) error {
	m.events = append(m.events, "down", strconv.Itoa(key))
	return nil
}

func (m *mockKeyboard) KeyUp(key int) error {
	m.events = append(m.events, "up")
	return nil
}

func (m *mockKeyboard) Close() error {
	m.closed++
	return nil
}

func TestKeyboardPressRelease(t *testing.T) {
	mock := &mockKeyboard{}
	kb := &Keyboard{kb: mock}
	d := device.New(device.Build{SDK: 30}, device.Services{Input: kb})

	assert.True(t, d.PressReleaseKeycode(device.KeyCodePower, 0, device.InjectModeAsync))
	assert.Equal(t, []string{"down", "116", "up"}, mock.events)
}

func TestKeyboardRejectsSecondaryDisplay(t *testing.T) {
	mock := &mockKeyboard{}
	kb := &Keyboard{kb: mock}
	d := device.New(device.Build{SDK: 30}, device.Services{Input: kb})

	assert.False(t, d.InjectKeyEvent(device.KeyActionDown, device.KeyCodeHome, 0, 0, 2, device.InjectModeAsync))
	assert.Empty(t, mock.events)
	assert.ErrorIs(t, kb.SetDisplayID(&device.KeyEvent{}, 2), ErrSecondaryDisplay)
	assert.NoError(t, kb.SetDisplayID(&device.KeyEvent{}, 0))
}

func TestKeyboardUnmappedKey(t *testing.T) {
	kb := &Keyboard{kb: &mockKeyboard{}}
	err := kb.InjectInputEvent(&device.KeyEvent{Code: 9999}, device.InjectModeAsync)
	assert.ErrorIs(t, err, ErrUnmappedKey)
}

type otherEvent struct{ device.KeyEvent }

func TestKeyboardUnsupportedEvent(t *testing.T) {
	kb := &Keyboard{kb: &mockKeyboard{}}
	err := kb.InjectInputEvent(&otherEvent{}, device.InjectModeAsync)
	assert.ErrorIs(t, err, ErrUnsupportedEvent)
}

func TestKeyboardClose(t *testing.T) {
	mock := &mockKeyboard{}
	kb := &Keyboard{kb: mock}

	require.NoError(t, kb.Close())
	require.NoError(t, kb.Close())
	assert.Equal(t, 1, mock.closed)

	err := kb.InjectInputEvent(&device.KeyEvent{Code: device.KeyCodePower}, device.InjectModeAsync)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestEveryNamedKeyIsMapped(t *testing.T) {
	for _, name := range device.KeyCodeNames() {
		code, err := device.ParseKeyCode(name)
		require.NoError(t, err)
		_, ok := evdevKeys[code]
		assert.True(t, ok, "no kernel key for %s", name)
	}
}
