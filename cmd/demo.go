package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/google-admin/hover/internal/demo"
	"github.com/google-admin/hover/internal/demo/scenarios"
	"github.com/google-admin/hover/internal/logger"
)

var (
	demoOutput     string
	demoWidth      int
	demoHeight     int
	demoCaptureAll bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Generate demo recordings of the hover widget",
	Long: `Generate demo recordings of the hover widget for documentation.

Subcommands:
  list  - List the built-in scenarios
  run   - Run a scenario and print its frames to stdout (for testing)
  cast  - Write an asciinema cast file

Scenarios replay real mouse gestures through the app, which VHS tapes
cannot script, so asciinema casts are the only recording format.`,
}

var demoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Available demo scenarios:")
		fmt.Fprintln(out)
		tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		for _, s := range scenarios.All() {
			fmt.Fprintf(tw, "  %s\t%s\n", s.Name, s.Description)
		}
		tw.Flush()
	},
}

var demoRunCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Run a scenario and print its frames to stdout (for testing)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		frames, _, err := replay(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Captured %d frames\n", len(frames))
		for i, f := range frames {
			fmt.Printf("\n=== Frame %d (delay: %v) ===\n", i, f.Delay)
			if f.Annotation != "" {
				fmt.Printf("Annotation: %s\n", f.Annotation)
			}
			fmt.Println(f.Content)
		}
		return nil
	},
}

var demoCastCmd = &cobra.Command{
	Use:   "cast <scenario>",
	Short: "Write an asciinema cast file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDemoCast,
}

func init() {
	for _, c := range []*cobra.Command{demoRunCmd, demoCastCmd} {
		c.Flags().StringVarP(&demoOutput, "output", "o", "", "Output file")
		c.Flags().IntVarP(&demoWidth, "width", "w", 120, "Terminal width")
		c.Flags().IntVarP(&demoHeight, "height", "H", 40, "Terminal height")
		c.Flags().BoolVar(&demoCaptureAll, "capture-all", false, "Capture frame after every step (for debugging)")
	}

	demoCmd.AddCommand(demoListCmd, demoRunCmd, demoCastCmd)
	rootCmd.AddCommand(demoCmd)
}

// getScenario resolves a scenario by name and applies any size override
// from the flags. The returned pointer is the shared registry entry.
func getScenario(name string) (*demo.Scenario, error) {
	scenario := scenarios.Get(name)
	if scenario == nil {
		return nil, fmt.Errorf("unknown scenario %q\nRun 'hover demo list' to see available scenarios", name)
	}

	if demoWidth > 0 {
		scenario.Width = demoWidth
	}
	if demoHeight > 0 {
		scenario.Height = demoHeight
	}
	return scenario, nil
}

// replay resolves a scenario and drives it through the executor. Each run
// logs to its own file so scenario logs do not interleave with the
// interactive app's debug log.
func replay(name string) ([]demo.Frame, *demo.Scenario, error) {
	scenario, err := getScenario(name)
	if err != nil {
		return nil, nil, err
	}

	if err := logger.Init(logger.DemoLogPath(scenario.Name)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer logger.Close()

	cfg := demo.DefaultExecutorConfig()
	cfg.CaptureEveryStep = demoCaptureAll

	frames, err := demo.NewExecutor(cfg).Run(scenario)
	if err != nil {
		return nil, nil, fmt.Errorf("error running scenario: %w", err)
	}
	return frames, scenario, nil
}

func runDemoCast(cmd *cobra.Command, args []string) error {
	frames, scenario, err := replay(args[0])
	if err != nil {
		return err
	}

	out := demoOutput
	if out == "" {
		out = scenario.Name + ".cast"
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	defer f.Close()

	// Scenario dimensions land in the cast header and must match the
	// frames, so take them after any flag override.
	if err := demo.GenerateASCIICast(f, frames, scenario.Width, scenario.Height); err != nil {
		return fmt.Errorf("writing cast: %w", err)
	}

	fmt.Printf("Generated %s (%d frames)\n", out, len(frames))
	fmt.Printf("Play with: asciinema play %s\n", out)
	return nil
}
