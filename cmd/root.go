package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/google-admin/hover/internal/app"
	"github.com/google-admin/hover/internal/config"
	"github.com/google-admin/hover/internal/logger"
)

// Persistent flag targets.
var (
	debugMode bool
	quietMode bool
)

// Build metadata, set by main before Execute.
var version, commit, date string

// SetVersionInfo receives the build metadata main injects via ldflags.
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "hover",
	Short: "Floating overlay menu widget for the terminal",
	Long: `Hover is a demo workspace with a floating menu widget docked to one of the
screen edges. Drag the tab to re-dock it anywhere along either edge, tap it
to open the section panel, and drop it on the exit zone to dismiss it.`,
	Args:          cobra.NoArgs,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&debugMode, "debug", true, "Write debug detail to the log file")
	flags.BoolVarP(&quietMode, "quiet", "q", false, "Keep the log file at info level")
}

// initConfig applies the logging flags. Quiet wins over debug.
func initConfig() {
	logger.SetDebug(debugMode && !quietMode)
}

// Execute runs the root command.
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

// versionTemplate shows commit and build date only when ldflags provided
// them; a plain "go build" prints just the version.
func versionTemplate() string {
	if commit == "" || commit == "none" {
		return fmt.Sprintf("hover %s\n", version)
	}
	return fmt.Sprintf("hover %s\n  commit: %s\n  built:  %s\n", version, commit, date)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	defer logger.Close()

	// Mouse reporting is enabled by the app's own View, so no program
	// options are needed here.
	if _, err := tea.NewProgram(app.New(cfg, version)).Run(); err != nil {
		return fmt.Errorf("error running hover: %w", err)
	}
	return nil
}
