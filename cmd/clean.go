package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/google-admin/hover/internal/config"
	"github.com/google-admin/hover/internal/logger"
)

var skipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Reset the widget to first-run state",
	Long: `Removes the saved configuration (dock position, selected section, theme,
settings and custom sections) and deletes all hover log files.

It will prompt for confirmation before proceeding unless the --yes flag
is used.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Answer yes to the confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(os.Stdin)
}

// runCleanWithReader exists so tests can script the confirmation prompt.
func runCleanWithReader(input io.Reader) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	_, statErr := os.Stat(cfg.Path())
	haveConfig := statErr == nil

	logFiles, err := logger.LogFiles()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error listing log files: %v\n", err)
	}

	if !haveConfig && len(logFiles) == 0 {
		fmt.Println("Nothing to clean.")
		return nil
	}

	fmt.Println("This will remove:")
	if haveConfig {
		fmt.Printf("  - Saved dock, selection and settings (%s)\n", cfg.Path())
		if n := len(cfg.GetCustomSections()); n > 0 {
			fmt.Printf("  - %d custom section(s)\n", n)
		}
	}
	if len(logFiles) > 0 {
		fmt.Printf("  - %d log file(s) in /tmp\n", len(logFiles))
	}

	if !skipConfirm && !confirm(input, "Continue?") {
		fmt.Println("Aborted.")
		return nil
	}

	if haveConfig {
		if err := os.Remove(cfg.Path()); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("error removing config: %w", err)
		}
	}

	cleared, err := logger.ClearLogs()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning: could not clear logs:", err)
	}

	fmt.Println()
	fmt.Println("Cleaned:")
	if haveConfig {
		fmt.Println("  - Saved configuration removed; first-run defaults apply on next start")
	}
	if cleared > 0 {
		fmt.Printf("  - %d log file(s) deleted\n", cleared)
	}
	return nil
}

// confirm reads one line and accepts y or yes, case-insensitive. Any read
// failure counts as a decline.
func confirm(input io.Reader, prompt string) bool {
	fmt.Print(prompt, " [y/N]: ")
	scanner := bufio.NewScanner(input)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
