package device

import (
	"fmt"

	"github.com/bnema/droidctl/internal/logger"
)

// ClipboardText returns the clipboard text. ok is false when there is no
// clipboard service or the clipboard does not hold text.
func (d *Device) ClipboardText() (text string, ok bool) {
	if d.svc.Clipboard == nil {
		logger.Error("Could not get clipboard", "err", ErrClipboardUnavailable)
		return "", false
	}
	text, err := d.svc.Clipboard.Text()
	if err != nil {
		logger.Debug("Could not read clipboard", "err", err)
		return "", false
	}
	return text, true
}

// SetClipboardText writes text to the clipboard and reports whether a write
// happened. Text equal to the current content is not written again: pasting
// from the remote side sets the clipboard, and setting it a second time
// would notify listeners twice and duplicate keyboard clipboard history.
func (d *Device) SetClipboardText(text string) (bool, error) {
	if d.svc.Clipboard == nil {
		logger.Error("Could not set clipboard", "err", ErrClipboardUnavailable)
		return false, ErrClipboardUnavailable
	}

	if current, ok := d.ClipboardText(); ok && current == text {
		return false, nil
	}

	if err := d.svc.Clipboard.SetText(text); err != nil {
		logger.Error("Could not set clipboard", "err", err)
		return false, fmt.Errorf("set clipboard: %w", err)
	}
	return true, nil
}
