package cmd

import (
	"fmt"
	"strconv"

	"github.com/bnema/droidctl/internal/platform"
	"github.com/bnema/droidctl/internal/ui"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show what droidctl knows about the device",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDevice(func(s *platform.Session) error {
			d := s.Device
			build := d.Build()
			display := targetDisplay()

			screen := "off"
			if d.IsScreenOn(display) {
				screen = "on"
			}
			clipboard := "unavailable"
			if s.Clipboard {
				clipboard = "system"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.FormatHeader("DEVICE"))
			fields := [][2]string{
				{"Model", d.DeviceName()},
				{"Brand", build.Brand},
				{"SDK", strconv.Itoa(build.SDK)},
				{"Display", strconv.Itoa(int(display))},
				{"Screen", screen},
				{"Input", fmt.Sprintf("%s (injection %s)", s.InputBackend, supported(d.SupportsInputEvents(display)))},
				{"Clipboard", clipboard},
			}
			for _, f := range fields {
				fmt.Fprintln(out, ui.FormatField(f[0], 9, f[1]))
			}
			return nil
		})
	},
}

func supported(ok bool) string {
	if ok {
		return "supported"
	}
	return "unsupported"
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
