package device

import (
	"bytes"
	"io"
	"testing"

	"github.com/bnema/droidctl/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClipboardText(t *testing.T) {
	t.Run("no clipboard service", func(t *testing.T) {
		var logs bytes.Buffer
		logger.SetOutput(&logs)
		t.Cleanup(func() { logger.SetOutput(io.Discard) })

		d := New(Build{}, Services{})
		_, ok := d.ClipboardText()
		assert.False(t, ok)
		assert.Contains(t, logs.String(), "Could not get clipboard")
	})

	t.Run("read failure", func(t *testing.T) {
		d := New(Build{}, Services{Clipboard: &fakeClipboard{readErr: errFake}})
		_, ok := d.ClipboardText()
		assert.False(t, ok)
	})

	t.Run("text", func(t *testing.T) {
		d := New(Build{}, Services{Clipboard: &fakeClipboard{text: "hello"}})
		text, ok := d.ClipboardText()
		assert.True(t, ok)
		assert.Equal(t, "hello", text)
	})
}

func TestSetClipboardTextSuppressesEcho(t *testing.T) {
	cb := &fakeClipboard{text: "before"}
	d := New(Build{}, Services{Clipboard: cb})

	set, err := d.SetClipboardText("after")
	require.NoError(t, err)
	assert.True(t, set)

	set, err = d.SetClipboardText("after")
	require.NoError(t, err)
	assert.False(t, set)

	assert.Equal(t, 1, cb.writes)
	assert.Equal(t, "after", cb.text)
}

func TestSetClipboardTextWritesWhenReadFails(t *testing.T) {
	cb := &fakeClipboard{readErr: errFake}
	d := New(Build{}, Services{Clipboard: cb})

	set, err := d.SetClipboardText("x")
	require.NoError(t, err)
	assert.True(t, set)
	assert.Equal(t, 1, cb.writes)
}

func TestSetClipboardTextFailures(t *testing.T) {
	t.Run("unavailable", func(t *testing.T) {
		d := New(Build{}, Services{})
		set, err := d.SetClipboardText("x")
		assert.False(t, set)
		assert.ErrorIs(t, err, ErrClipboardUnavailable)
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("write fails", func(t *testing.T) {
		cb := &fakeClipboard{writeErr: errFake}
		d := New(Build{}, Services{Clipboard: cb})
		set, err := d.SetClipboardText("x")
		assert.False(t, set)
		assert.ErrorIs(t, err, errFake)
	})
}
