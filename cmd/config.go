package cmd

import (
	"fmt"
	"os"

	"github.com/bnema/droidctl/internal/config"
	"github.com/bnema/droidctl/internal/logger"
	"github.com/bnema/droidctl/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage droidctl configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, ui.FormatHeader("CONFIGURATION"))
		fmt.Fprintln(out, ui.FormatField("File", 28, config.GetConfigPath()))

		sections := []struct {
			title  string
			fields [][2]string
		}{
			{"[device]", [][2]string{
				{"serial", cfg.Device.Serial},
				{"adb_path", cfg.Device.ADBPath},
				{"shell_timeout", fmt.Sprintf("%ds", cfg.Device.ShellTimeout)},
				{"sdk", fmt.Sprintf("%d", cfg.Device.SDK)},
				{"brand", cfg.Device.Brand},
				{"builtin_display_method", fmt.Sprintf("%v", cfg.Device.BuiltInDisplayMethod)},
				{"surface_physical_ids_method", fmt.Sprintf("%v", cfg.Device.SurfacePhysicalIDsMethod)},
				{"use_request_display_power", fmt.Sprintf("%v", cfg.Device.UseRequestDisplayPower)},
			}},
			{"[input]", [][2]string{
				{"backend", cfg.Input.Backend},
				{"uinput_path", cfg.Input.UInputPath},
				{"device_name", cfg.Input.DeviceName},
			}},
			{"[clipboard]", [][2]string{
				{"enabled", fmt.Sprintf("%v", cfg.Clipboard.Enabled)},
			}},
			{"[logging]", [][2]string{
				{"log_level", cfg.Logging.LogLevel},
			}},
		}

		for _, section := range sections {
			fmt.Fprintln(out, "\n"+ui.HeaderStyle.Render(section.title))
			for _, f := range section.fields {
				fmt.Fprintln(out, ui.FormatField(f[0], 28, f[1]))
			}
		}
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration file with defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := config.GetConfigPath()
		if _, err := os.Stat(configPath); err == nil {
			force, _ := cmd.Flags().GetBool("force")
			if !force {
				logger.Infof("Configuration file already exists at: %s", configPath)
				logger.Info("Use --force to overwrite")
				return nil
			}
		}

		if err := config.Save(); err != nil {
			return err
		}

		logger.Infof("Configuration initialized at: %s", configPath)
		return nil
	},
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing configuration file")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
