package shell

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bnema/droidctl/internal/device"
	"google.golang.org/protobuf/types/known/structpb"
)

var componentRe = regexp.MustCompile(`^\s*([A-Za-z][\w.]*)/([\w.$]+)\s*$`)

// ForceStopPackage kills every process of pkg.
func (s *Shell) ForceStopPackage(pkg string) error {
	_, err := s.exec("am", "force-stop", pkg)
	return err
}

// StartActivity starts the intent's component. The target display is taken
// from the launch options when present.
func (s *Shell) StartActivity(intent device.Intent, options *structpb.Struct) error {
	args := []string{"am", "start"}
	if v, ok := options.GetFields()[device.LaunchDisplayIDKey]; ok {
		args = append(args, "--display", strconv.Itoa(int(v.GetNumberValue())))
	}
	args = append(args, "-n", intent.Component.String())

	out, err := s.exec(args...)
	if err != nil {
		return err
	}
	// am exits 0 even when the activity does not exist.
	if strings.Contains(out, "Error:") {
		return fmt.Errorf("%w: %s", ErrCommandFailed, strings.TrimSpace(out))
	}
	return nil
}

// LaunchableApps lists the MAIN activities in category. Labels need the
// package resources, which the shell cannot load; they are derived from
// the package name instead.
func (s *Shell) LaunchableApps(category string) ([]device.App, error) {
	out, err := s.exec("cmd", "package", "query-activities", "--brief",
		"-a", "android.intent.action.MAIN", "-c", category)
	if err != nil {
		return nil, err
	}
	return parseActivities(out), nil
}

func parseActivities(out string) []device.App {
	var apps []device.App
	seen := make(map[string]bool)
	for _, line := range strings.Split(out, "\n") {
		m := componentRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		pkg, class := m[1], m[2]
		if strings.HasPrefix(class, ".") {
			class = pkg + class
		}
		if seen[pkg+"/"+class] {
			continue
		}
		seen[pkg+"/"+class] = true
		apps = append(apps, device.App{
			Label:        labelFromPackage(pkg),
			PackageName:  pkg,
			ActivityName: class,
		})
	}
	return apps
}

// labelFromPackage turns "com.android.settings" into "Settings".
func labelFromPackage(pkg string) string {
	name := pkg[strings.LastIndex(pkg, ".")+1:]
	if name == "" {
		return pkg
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// IsTelevision reports whether the device declares the leanback feature.
func (s *Shell) IsTelevision() (bool, error) {
	out, err := s.exec("pm", "has-feature", "android.software.leanback")
	if err != nil {
		// pm exits 1 when the feature is missing
		if strings.TrimSpace(out) == "false" {
			return false, nil
		}
		return false, err
	}
	return strings.TrimSpace(out) == "true", nil
}

func (s *Shell) ExpandNotificationsPanel() error {
	_, err := s.exec("cmd", "statusbar", "expand-notifications")
	return err
}

func (s *Shell) ExpandSettingsPanel() error {
	_, err := s.exec("cmd", "statusbar", "expand-settings")
	return err
}

func (s *Shell) CollapsePanels() error {
	_, err := s.exec("cmd", "statusbar", "collapse")
	return err
}
