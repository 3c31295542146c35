package generator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kotor-tools/defgen/internal/config"
	"github.com/kotor-tools/defgen/internal/emit"
	"github.com/kotor-tools/defgen/internal/extract"
)

// ErrMissingInput indicates the scriptdefs source does not exist at the
// configured path. Callers match it with errors.Is.
var ErrMissingInput = errors.New("scriptdefs source not found")

// GroupCount is the per-group record count reported after extraction.
type GroupCount struct {
	Group string
	Count int
}

// Summary describes a completed run.
type Summary struct {
	Groups     []GroupCount
	OutputPath string
	Elapsed    time.Duration
}

// ProgressReporter receives pipeline milestones. Implementations must be
// safe to call from a single goroutine only; the pipeline is sequential.
type ProgressReporter interface {
	OnExtractStart(inputPath string)
	OnExtractComplete(groups []GroupCount)
	OnEmitStart(totalRecords int)
	OnRecordEmitted()
	OnComplete(summary *Summary)
}

// NoopReporter discards all progress events.
type NoopReporter struct{}

func (NoopReporter) OnExtractStart(string)          {}
func (NoopReporter) OnExtractComplete([]GroupCount) {}
func (NoopReporter) OnEmitStart(int)                {}
func (NoopReporter) OnRecordEmitted()               {}
func (NoopReporter) OnComplete(*Summary)            {}

// Generator runs the read → parse → extract → emit → verify → write
// pipeline. One instance may be reused across runs; each run is independent
// and idempotent given identical input bytes.
type Generator struct {
	cfg       *config.Config
	extractor *extract.Extractor
	reporter  ProgressReporter
}

// New creates a generator. A nil reporter means no progress output.
func New(cfg *config.Config, reporter ProgressReporter) *Generator {
	if reporter == nil {
		reporter = NoopReporter{}
	}
	return &Generator{
		cfg:       cfg,
		extractor: extract.NewExtractor(),
		reporter:  reporter,
	}
}

// Run executes one full generation pass. Nothing is written unless every
// prior stage, including output verification, succeeded in memory.
func (g *Generator) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()

	inputPath := g.cfg.Input.ScriptDefs
	if _, err := os.Stat(inputPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, inputPath)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", inputPath, err)
	}

	source, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", inputPath, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.reporter.OnExtractStart(inputPath)
	defs, err := g.extractor.Extract(source)
	if err != nil {
		return nil, fmt.Errorf("failed to extract definitions from %s: %w", inputPath, err)
	}

	groups := groupCounts(defs)
	g.reporter.OnExtractComplete(groups)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.reporter.OnEmitStart(defs.Total())
	emitter := &emit.Emitter{OnRecord: g.reporter.OnRecordEmitted}
	output := emitter.Emit(defs)

	if g.cfg.Output.Verify {
		if err := emit.Verify(output); err != nil {
			return nil, fmt.Errorf("output verification failed: %w", err)
		}
	}

	if err := emit.WriteFile(g.cfg.Output.Path, output); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", g.cfg.Output.Path, err)
	}

	summary := &Summary{
		Groups:     groups,
		OutputPath: g.cfg.Output.Path,
		Elapsed:    time.Since(start),
	}
	g.reporter.OnComplete(summary)
	return summary, nil
}

// groupCounts flattens per-group totals in the fixed group order.
func groupCounts(defs *extract.Definitions) []GroupCount {
	var groups []GroupCount
	for _, g := range extract.ConstantGroups {
		groups = append(groups, GroupCount{Group: g, Count: len(defs.Constants[g])})
	}
	for _, g := range extract.FunctionGroups {
		groups = append(groups, GroupCount{Group: g, Count: len(defs.Functions[g])})
	}
	return groups
}
