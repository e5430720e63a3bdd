package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/droidctl/internal/platform"
	"github.com/bnema/droidctl/internal/ui"
	"github.com/spf13/cobra"
)

var (
	// ErrPowerFailed is returned when a display power change did not apply
	ErrPowerFailed = errors.New("display power change failed")
)

var powerCmd = &cobra.Command{
	Use:       "power <on|off>",
	Short:     "Turn the display panels on or off",
	Long:      `Turn the physical display panels on or off while the device keeps running.`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		on := args[0] == "on"
		return withDevice(func(s *platform.Session) error {
			if !s.Device.SetDisplayPower(targetDisplay(), on) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.FormatResult(false, "Display power unchanged"))
				return ErrPowerFailed
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.FormatResult(true, "Display power "+args[0]))
			return nil
		})
	},
}

var screenOffCmd = &cobra.Command{
	Use:   "screen-off",
	Short: "Press power if the screen is on",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDevice(func(s *platform.Session) error {
			d := s.Device
			display := targetDisplay()
			if !d.SupportsInputEvents(display) {
				return fmt.Errorf("display %d does not accept injected input on SDK %d", display, d.Build().SDK)
			}
			if !d.PowerOffScreen(display) {
				return fmt.Errorf("failed to press power")
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.FormatResult(true, "Screen off"))
			return nil
		})
	},
}

var rotateCmd = &cobra.Command{
	Use:   "rotate",
	Short: "Switch the display between portrait and landscape",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDevice(func(s *platform.Session) error {
			if err := s.Device.RotateDevice(targetDisplay()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.FormatResult(true, "Rotation requested"))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(powerCmd)
	rootCmd.AddCommand(screenOffCmd)
	rootCmd.AddCommand(rotateCmd)
}
