// File: params/scan_test.go
package params

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scanTarget struct {
	Grid struct {
		Size    int64   `param:"size"`
		Spacing float64 `param:"spacing"`
	} `param:"grid"`
	Timeout time.Duration `param:"timeout"`
	Labels  []string      `param:"labels"`
	Verbose bool          `param:"verbose"`
	Missing string        `param:"missing"`
}

func TestScan(t *testing.T) {
	p := New("DESCR")
	require.NoError(t, Define[int64](p, "grid.size", "grid points", 64))
	require.NoError(t, Define[float64](p, "grid.spacing", "grid spacing"))
	require.NoError(t, Define[string](p, "timeout", "wall-clock budget", "30s"))
	require.NoError(t, Define[[]string](p, "labels", "run labels"))
	require.NoError(t, Define[bool](p, "verbose", "verbose output", false))
	require.NoError(t, Define[string](p, "missing", "never provided"))

	_, err := p.ParseString("test --grid.spacing 0.5 --labels a,b,c --verbose")
	require.NoError(t, err)

	var cfg scanTarget
	cfg.Missing = "untouched"
	require.NoError(t, p.Scan(&cfg))

	assert.Equal(t, int64(64), cfg.Grid.Size)
	assert.Equal(t, 0.5, cfg.Grid.Spacing)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Labels)
	assert.True(t, cfg.Verbose)

	// A parameter with no value does not reach the target.
	assert.Equal(t, "untouched", cfg.Missing)
}

func TestScanIntoMap(t *testing.T) {
	p := New("DESCR")
	require.NoError(t, Define[int64](p, "a", "value", 1))
	require.NoError(t, Define[string](p, "section.b", "nested value"))

	_, err := p.ParseString("test --section.b hello")
	require.NoError(t, err)

	out := make(map[string]any)
	require.NoError(t, p.Scan(&out))

	assert.Equal(t, "1", out["a"])
	section, ok := out["section"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "hello", section["b"])
}

func TestScanErrors(t *testing.T) {
	t.Run("NotParsed", func(t *testing.T) {
		p := New("DESCR")
		require.NoError(t, Define[int64](p, "a", "value", 1))

		var cfg struct{}
		assert.ErrorIs(t, p.Scan(&cfg), ErrNotParsed)
	})

	t.Run("NonPointerTarget", func(t *testing.T) {
		p := New("DESCR")
		require.NoError(t, Define[int64](p, "a", "value", 1))

		_, err := p.ParseString("test")
		require.NoError(t, err)

		var cfg struct{}
		assert.Error(t, p.Scan(cfg))
	})

	t.Run("NilPointer", func(t *testing.T) {
		p := New("DESCR")
		require.NoError(t, Define[int64](p, "a", "value", 1))

		_, err := p.ParseString("test")
		require.NoError(t, err)

		var cfg *scanTarget
		assert.Error(t, p.Scan(cfg))
	})
}
