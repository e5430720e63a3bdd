package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/droidctl/internal/device"
	"github.com/bnema/droidctl/internal/platform"
	"github.com/bnema/droidctl/internal/ui"
	"github.com/spf13/cobra"
)

var keyCmd = &cobra.Command{
	Use:   "key <code>",
	Short: "Inject a key press",
	Long: `Inject a key press into the target display. The key is a number or a
name such as POWER, HOME or KEYCODE_VOLUME_UP.

Known names: ` + strings.Join(device.KeyCodeNames(), ", "),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := device.ParseKeyCode(args[0])
		if err != nil {
			return err
		}
		modeName, _ := cmd.Flags().GetString("mode")
		mode, err := parseInjectMode(modeName)
		if err != nil {
			return err
		}
		action, _ := cmd.Flags().GetString("action")

		return withDevice(func(s *platform.Session) error {
			d := s.Device
			display := targetDisplay()
			if !d.SupportsInputEvents(display) {
				return fmt.Errorf("display %d does not accept injected input on SDK %d", display, d.Build().SDK)
			}

			var ok bool
			switch action {
			case "press":
				ok = d.PressReleaseKeycode(code, display, mode)
			case "down":
				ok = d.InjectKeyEvent(device.KeyActionDown, code, 0, 0, display, mode)
			case "up":
				ok = d.InjectKeyEvent(device.KeyActionUp, code, 0, 0, display, mode)
			default:
				return fmt.Errorf("invalid action %q (must be press, down or up)", action)
			}
			if !ok {
				return fmt.Errorf("failed to inject %s", code)
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.FormatResult(true, fmt.Sprintf("Injected %s (%s)", code, action)))
			return nil
		})
	},
}

func parseInjectMode(s string) (device.InjectMode, error) {
	switch s {
	case "async":
		return device.InjectModeAsync, nil
	case "result":
		return device.InjectModeWaitForResult, nil
	case "finish":
		return device.InjectModeWaitForFinish, nil
	}
	return 0, fmt.Errorf("invalid inject mode %q (must be async, result or finish)", s)
}

func init() {
	keyCmd.Flags().String("mode", "async", "wait for the input pipeline: async, result or finish")
	keyCmd.Flags().String("action", "press", "press, down or up")
	rootCmd.AddCommand(keyCmd)
}
