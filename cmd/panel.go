package cmd

import (
	"fmt"

	"github.com/bnema/droidctl/internal/device"
	"github.com/bnema/droidctl/internal/platform"
	"github.com/bnema/droidctl/internal/ui"
	"github.com/spf13/cobra"
)

var panelActions = map[string]func(*device.Device) error{
	"notifications": (*device.Device).ExpandNotificationPanel,
	"settings":      (*device.Device).ExpandSettingsPanel,
	"collapse":      (*device.Device).CollapsePanels,
}

var panelCmd = &cobra.Command{
	Use:       "panel <notifications|settings|collapse>",
	Short:     "Open or close the status bar panels",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"notifications", "settings", "collapse"},
	RunE: func(cmd *cobra.Command, args []string) error {
		action := panelActions[args[0]]
		return withDevice(func(s *platform.Session) error {
			if err := action(s.Device); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.FormatResult(true, "Panel "+args[0]))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(panelCmd)
}
