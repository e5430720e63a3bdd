// Package clipboard binds the device clipboard to the system clipboard of
// the machine droidctl runs on (termux-clipboard on Android, xsel, xclip or
// wl-clipboard elsewhere).
package clipboard

import (
	"github.com/atotto/clipboard"
	"github.com/bnema/droidctl/internal/device"
	"github.com/bnema/droidctl/internal/logger"
)

// System implements device.ClipboardManager.
type System struct {
	read  func() (string, error)
	write func(string) error
}

// New returns the system clipboard, or nil when no clipboard tool is
// installed so the facade reports it as unavailable.
func New() *System {
	if clipboard.Unsupported {
		logger.Warn("No clipboard utility found, clipboard sync disabled")
		return nil
	}
	return &System{read: clipboard.ReadAll, write: clipboard.WriteAll}
}

func (s *System) Text() (string, error) {
	return s.read()
}

func (s *System) SetText(text string) error {
	return s.write(text)
}

var _ device.ClipboardManager = (*System)(nil)
