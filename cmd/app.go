package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/droidctl/internal/device"
	"github.com/bnema/droidctl/internal/platform"
	"github.com/bnema/droidctl/internal/ui"
	"github.com/spf13/cobra"
)

var (
	// pickApp prompts for one of several candidates; tests replace it.
	pickApp = ui.PickApp
)

var appCmd = &cobra.Command{
	Use:   "app",
	Short: "List and start apps",
}

var appListCmd = &cobra.Command{
	Use:   "list [filter]",
	Short: "List the apps of the launcher drawer",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDevice(func(s *platform.Session) error {
			apps, err := s.Device.DrawerApps()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				apps = filterApps(apps, args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.FormatHeader("APPS"))
			if len(apps) == 0 {
				fmt.Fprintln(out, ui.SubtleStyle.Render("No apps found"))
				return nil
			}
			fmt.Fprintln(out, ui.AppTable(apps, nil))
			fmt.Fprintln(out, ui.SubtleStyle.Render(fmt.Sprintf("Total: %d app(s)", len(apps))))
			return nil
		})
	},
}

var appStartCmd = &cobra.Command{
	Use:   "start <[+][?]name>",
	Short: "Start an app by package name or label",
	Long: `Start an app on the target display.

The name is a package name unless prefixed with "?", which searches the
drawer labels instead. A leading "+" force-stops the app before starting
it, so "+?camera" restarts the app labelled Camera.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := device.ParseAppTarget(args[0])
		if target.Name == "" {
			return fmt.Errorf("missing app name")
		}
		pick, _ := cmd.Flags().GetBool("pick")

		return withDevice(func(s *platform.Session) error {
			d := s.Device
			apps, err := d.DrawerApps()
			if err != nil {
				return err
			}

			res := device.ResolveApp(apps, target)
			intent, ok := res.Unique()
			if !ok {
				candidates := res.Candidates()
				if res.Status == device.ResolutionNone || !pick {
					if len(candidates) > 0 {
						// exact matches are flagged
						fmt.Fprintln(cmd.OutOrStdout(), ui.AppTable(candidates, res.Exact))
					}
					return fmt.Errorf("no unique app matches %q (%s)", target.Name, res.Status)
				}

				app, err := pickApp("Start which app?", candidates)
				if err != nil {
					return err
				}
				intent = app.LaunchIntent()
			}

			if err := d.StartApp(intent, targetDisplay(), target.ForceStop); err != nil {
				return err
			}

			name := intent.Package()
			if label, ok := device.Label(apps, name); ok {
				name = label
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.FormatResult(true, "Started "+name))
			return nil
		})
	},
}

func filterApps(apps []device.App, filter string) []device.App {
	filter = strings.ToLower(filter)
	var out []device.App
	for _, app := range apps {
		if strings.Contains(strings.ToLower(app.Label), filter) ||
			strings.Contains(strings.ToLower(app.PackageName), filter) {
			out = append(out, app)
		}
	}
	return out
}

func init() {
	appStartCmd.Flags().Bool("pick", false, "choose interactively when several apps match")
	appCmd.AddCommand(appListCmd)
	appCmd.AddCommand(appStartCmd)
	rootCmd.AddCommand(appCmd)
}
