package cli

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/kotor-tools/defgen/internal/generator"
)

// CLIProgressReporter implements progress reporting with a progress bar.
type CLIProgressReporter struct {
	quiet   bool
	emitBar *progressbar.ProgressBar
}

// NewCLIProgressReporter creates a new CLI progress reporter.
func NewCLIProgressReporter(quiet bool) *CLIProgressReporter {
	return &CLIProgressReporter{
		quiet: quiet,
	}
}

func (c *CLIProgressReporter) OnExtractStart(inputPath string) {
	if c.quiet {
		return
	}
	fmt.Printf("Extracting definitions from %s...\n", inputPath)
}

func (c *CLIProgressReporter) OnExtractComplete(groups []generator.GroupCount) {
	if c.quiet {
		return
	}
	for _, g := range groups {
		fmt.Printf("Found %d items in %s\n", g.Count, g.Group)
	}
}

func (c *CLIProgressReporter) OnEmitStart(totalRecords int) {
	if c.quiet || totalRecords == 0 {
		return
	}

	c.emitBar = progressbar.NewOptions(totalRecords,
		progressbar.OptionSetDescription("Emitting definitions"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}

func (c *CLIProgressReporter) OnRecordEmitted() {
	if c.quiet {
		return
	}
	if c.emitBar != nil {
		c.emitBar.Add(1)
	}
}

func (c *CLIProgressReporter) OnComplete(summary *generator.Summary) {
	if c.quiet {
		return
	}
	fmt.Printf("Generated TypeScript definitions in %s\n", summary.OutputPath)
}
