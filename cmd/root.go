package cmd

import (
	"fmt"

	"github.com/bnema/droidctl/internal/config"
	"github.com/bnema/droidctl/internal/device"
	"github.com/bnema/droidctl/internal/logger"
	"github.com/bnema/droidctl/internal/platform"
	"github.com/spf13/cobra"
)

var (
	// Version is set during build
	Version = "0.1.0-dev"

	configPath  string
	serialFlag  string
	displayFlag int32

	// openSession connects to the device; tests replace it.
	openSession = platform.Open

	rootCmd = &cobra.Command{
		Use:   "droidctl",
		Short: "droidctl - drive an Android device from the command line",
		Long: `droidctl controls an Android device over adb, or locally when run on the
device itself. It powers displays on and off, rotates them, injects keys,
syncs the clipboard, starts apps and opens the status bar panels, hiding
the differences between Android releases and vendors.`,
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/droidctl/droidctl.toml)")
	rootCmd.PersistentFlags().StringVarP(&serialFlag, "serial", "s", "", "adb serial of the target device")
	rootCmd.PersistentFlags().Int32VarP(&displayFlag, "display", "d", 0, "target display id")
}

func initConfig(cmd *cobra.Command, args []string) error {
	if configPath != "" {
		config.SetConfigPath(configPath)
	}
	if err := config.Init(); err != nil {
		return err
	}

	cfg := config.Get()
	if cfg.Logging.LogLevel != "" {
		logger.SetLevel(cfg.Logging.LogLevel)
	}
	if serialFlag != "" {
		cfg.Device.Serial = serialFlag
	}
	if displayFlag < 0 {
		return fmt.Errorf("invalid display id %d", displayFlag)
	}
	return nil
}

func targetDisplay() device.DisplayID {
	return device.DisplayID(displayFlag)
}

// withDevice opens the configured device for the duration of fn.
func withDevice(fn func(s *platform.Session) error) error {
	session, err := openSession(config.Get())
	if err != nil {
		return fmt.Errorf("failed to open device: %w", err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			logger.Warnf("Failed to release device: %v", err)
		}
	}()

	return fn(session)
}
