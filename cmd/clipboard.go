package cmd

import (
	"fmt"

	"github.com/bnema/droidctl/internal/platform"
	"github.com/bnema/droidctl/internal/ui"
	"github.com/spf13/cobra"
)

var clipboardCmd = &cobra.Command{
	Use:   "clipboard",
	Short: "Read or write the device clipboard",
}

var clipboardGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the clipboard text",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDevice(func(s *platform.Session) error {
			text, ok := s.Device.ClipboardText()
			if !ok {
				return fmt.Errorf("clipboard is empty or unavailable")
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		})
	},
}

var clipboardSetCmd = &cobra.Command{
	Use:   "set <text>",
	Short: "Replace the clipboard text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDevice(func(s *platform.Session) error {
			written, err := s.Device.SetClipboardText(args[0])
			if err != nil {
				return err
			}
			if !written {
				fmt.Fprintln(cmd.OutOrStdout(), ui.FormatWarning("Clipboard already holds this text"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.FormatResult(true, "Clipboard set"))
			return nil
		})
	},
}

func init() {
	clipboardCmd.AddCommand(clipboardGetCmd)
	clipboardCmd.AddCommand(clipboardSetCmd)
	rootCmd.AddCommand(clipboardCmd)
}
