package device

import (
	"fmt"
	"strings"

	"github.com/bnema/droidctl/internal/logger"
	"google.golang.org/protobuf/types/known/structpb"
)

// Intent categories used to list launchable apps.
const (
	CategoryLauncher         = "android.intent.category.LAUNCHER"
	CategoryLeanbackLauncher = "android.intent.category.LEANBACK_LAUNCHER"
)

// LaunchDisplayIDKey is the launch option naming the target display.
const LaunchDisplayIDKey = "android.activity.launchDisplayId"

// StartApp launches intent on displayID. With forceStop the package is
// stopped first; the two calls are not atomic.
func (d *Device) StartApp(intent Intent, displayID DisplayID, forceStop bool) error {
	if d.svc.Activity == nil {
		return fmt.Errorf("start %s: activity manager: %w", intent.Component, ErrUnavailable)
	}

	var options *structpb.Struct
	if d.sdkAtLeast(API26Android8) {
		var err error
		options, err = structpb.NewStruct(map[string]interface{}{
			LaunchDisplayIDKey: float64(displayID),
		})
		if err != nil {
			return fmt.Errorf("start %s: launch options: %w", intent.Component, err)
		}
	}

	if forceStop {
		if err := d.svc.Activity.ForceStopPackage(intent.Package()); err != nil {
			return fmt.Errorf("force-stop %s: %w", intent.Package(), err)
		}
	}

	if err := d.svc.Activity.StartActivity(intent, options); err != nil {
		return fmt.Errorf("start %s: %w", intent.Component, err)
	}
	return nil
}

// DrawerApps lists the apps a launcher would show. Television devices use
// the leanback launcher category.
func (d *Device) DrawerApps() ([]App, error) {
	if d.svc.Packages == nil {
		return nil, fmt.Errorf("list apps: package manager: %w", ErrUnavailable)
	}

	category := CategoryLauncher
	tv, err := d.svc.Packages.IsTelevision()
	if err != nil {
		logger.Warn("Could not read UI mode, assuming a phone launcher", "err", err)
	} else if tv {
		category = CategoryLeanbackLauncher
	}

	apps, err := d.svc.Packages.LaunchableApps(category)
	if err != nil {
		return nil, fmt.Errorf("list apps: %w", err)
	}
	return apps, nil
}

// AppTarget is a parsed app name as typed by an operator.
type AppTarget struct {
	Name      string
	ByLabel   bool
	ForceStop bool
}

// ParseAppTarget reads the app name grammar: a leading "+" asks for the app
// to be force-stopped first, then a leading "?" searches by label instead of
// package name. "+?camera" does both.
func ParseAppTarget(s string) AppTarget {
	var t AppTarget
	if strings.HasPrefix(s, "+") {
		t.ForceStop = true
		s = s[1:]
	}
	if strings.HasPrefix(s, "?") {
		t.ByLabel = true
		s = s[1:]
	}
	t.Name = s
	return t
}

// ResolveApp looks target up in apps with the matcher it asks for.
func ResolveApp(apps []App, target AppTarget) Resolution {
	if target.ByLabel {
		return AppWithUniqueLabel(apps, target.Name)
	}
	return AppGivenPackageName(apps, target.Name)
}
