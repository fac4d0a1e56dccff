package config_test

import (
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-sparse/config"
	"github.com/katalvlaran/lvlath-sparse/sparse"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, config.DefaultRows, cfg.Matrix.Rows)
	require.Equal(t, config.PrettyAuto, cfg.Shell.Pretty)
	require.True(t, cfg.Matrix.ValidateNaNInf)
}

func TestLoad_EmptyAndMissingPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)

	cfg, err = config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sparsematrix.yaml")
	doc := `
log_level: debug
matrix:
  rows: 10
  cols: 4
shell:
  pretty: never
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, 10, cfg.Matrix.Rows)
	require.Equal(t, 4, cfg.Matrix.Cols)
	require.True(t, cfg.Matrix.ValidateNaNInf, "untouched field keeps default")
	require.Equal(t, config.DefaultPrompt, cfg.Shell.Prompt)
	require.Equal(t, config.PrettyNever, cfg.Shell.Pretty)
	require.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"zero rows", "matrix: {rows: 0}"},
		{"negative capacity", "matrix: {capacity: -1}"},
		{"bad level", "log_level: loud"},
		{"bad pretty", "shell: {pretty: sometimes}"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.doc), config.Default())
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	_, err := config.Parse([]byte("matrix: ["), config.Default())
	require.Error(t, err)
	require.NotErrorIs(t, err, config.ErrInvalidConfig)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Matrix.Rows = 7
	data, err := cfg.Marshal()
	require.NoError(t, err)

	back, err := config.Parse(data, config.Config{})
	require.NoError(t, err)
	require.Equal(t, cfg, back)
}

func TestMatrixOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Matrix.ValidateNaNInf = false
	m, err := sparse.New(1, 1, cfg.MatrixOptions()...)
	require.NoError(t, err)
	require.NoError(t, m.Insert(1, 1, math.Inf(1)))
}

func TestSlogLevel(t *testing.T) {
	for lvl, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		require.Equal(t, want, config.Config{LogLevel: lvl}.SlogLevel())
	}
}
