package generator

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kotor-tools/defgen/internal/config"
)

const minimalDefs = `
KOTOR_CONSTANTS = [
    ScriptConstant(DataType.INT, "TRUE", 1),
]
`

const updatedDefs = `
KOTOR_CONSTANTS = [
    ScriptConstant(DataType.INT, "TRUE", 1),
    ScriptConstant(DataType.INT, "FALSE", 0),
]
`

func TestWatcher_RegeneratesOnChange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inPath := filepath.Join(dir, "scriptdefs.py")
	outPath := filepath.Join(dir, "out.ts")
	require.NoError(t, os.WriteFile(inPath, []byte(minimalDefs), 0644))

	cfg := &config.Config{
		Input:  config.InputConfig{ScriptDefs: inPath},
		Output: config.OutputConfig{Path: outPath, Verify: true},
	}
	gen := New(cfg, nil)

	_, err := gen.Run(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher, err := NewWatcher(gen)
	require.NoError(t, err)
	defer watcher.Stop()
	watcher.Start(ctx)

	require.NoError(t, os.WriteFile(inPath, []byte(updatedDefs), 0644))

	// Debounce is 500ms; poll well past it for the regenerated output.
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		data, err := os.ReadFile(outPath)
		if err == nil && strings.Contains(string(data), `name: "FALSE"`) {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatal("watcher did not regenerate output within deadline")
}
