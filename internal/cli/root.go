package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kotor-tools/defgen/internal/config"
	"github.com/kotor-tools/defgen/internal/generator"
)

var (
	cfgFile   string
	quietFlag bool
	watchFlag bool
)

// rootCmd runs the generator directly: the tool's whole job is one
// transformation, so a bare invocation does it.
var rootCmd = &cobra.Command{
	Use:   "defgen",
	Short: "Generate TypeScript definitions from PyKotor scriptdefs.py",
	Long: `defgen extracts KOTOR/TSL script constants and functions from PyKotor's
scriptdefs.py and generates a strongly-typed TypeScript definitions module.

The generator:
  - Parses scriptdefs.py and locates the four definition lists
    (KOTOR_CONSTANTS, TSL_CONSTANTS, KOTOR_FUNCTIONS, TSL_FUNCTIONS)
  - Recognizes ScriptConstant/ScriptFunction/ScriptParam entries
  - Infers a category for every record from its name
  - Emits kotor-definitions.ts, overwritten wholesale on every run

Examples:
  # Generate using the default relative paths
  defgen

  # Regenerate whenever scriptdefs.py changes
  defgen --watch

  # Generate with an explicit config file
  defgen --config /path/to/.defgen/config.yml
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .defgen/config.yml)")
	rootCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "suppress non-error output")
	rootCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "watch scriptdefs.py and regenerate on change")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	var cfg *config.Config
	if cfgFile != "" {
		cfg, err = config.NewFileLoader(rootDir, cfgFile).Load()
	} else {
		cfg, err = config.LoadConfigFromDir(rootDir)
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	gen := generator.New(cfg, NewCLIProgressReporter(quietFlag))

	if _, err := gen.Run(ctx); err != nil {
		return err
	}

	if watchFlag {
		watcher, err := generator.NewWatcher(gen)
		if err != nil {
			return fmt.Errorf("failed to start watcher: %w", err)
		}
		defer watcher.Stop()
		watcher.Start(ctx)

		if !quietFlag {
			fmt.Println("Watching for changes. Press Ctrl+C to stop.")
		}
		<-ctx.Done()
	}

	return nil
}
