package device

import "fmt"

func (d *Device) statusBar() (StatusBarManager, error) {
	if d.svc.StatusBar == nil {
		return nil, fmt.Errorf("status bar: %w", ErrUnavailable)
	}
	return d.svc.StatusBar, nil
}

// ExpandNotificationPanel pulls down the notification shade.
func (d *Device) ExpandNotificationPanel() error {
	sb, err := d.statusBar()
	if err != nil {
		return err
	}
	return sb.ExpandNotificationsPanel()
}

// ExpandSettingsPanel pulls down the quick settings.
func (d *Device) ExpandSettingsPanel() error {
	sb, err := d.statusBar()
	if err != nil {
		return err
	}
	return sb.ExpandSettingsPanel()
}

// CollapsePanels closes any open status bar panel.
func (d *Device) CollapsePanels() error {
	sb, err := d.statusBar()
	if err != nil {
		return err
	}
	return sb.CollapsePanels()
}
