package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowcast-dev/flowcast/internal/config"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runInit(dir))

	cfg, err := config.Load(filepath.Join(dir, "flowcast.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "today", cfg.Dates.StartDate)

	for name := range inputTemplates {
		path := filepath.Join(dir, cfg.Inputs.Dir, name)
		data, err := os.ReadFile(path)
		require.NoError(t, err, "template %s", name)
		assert.NotEmpty(t, data)
	}
}

func TestRunInit_DoesNotClobberExistingInputs(t *testing.T) {
	dir := t.TempDir()
	inputDir := filepath.Join(dir, "input_files")
	require.NoError(t, os.MkdirAll(inputDir, 0o755))

	existing := "NAME,TYPE,BIRTHDAY,IGNORE\nDana,mom,02/04/1990,no\n"
	require.NoError(t, os.WriteFile(filepath.Join(inputDir, "persons.csv"), []byte(existing), 0o644))

	customCfg := "dates:\n  start_date: 01/01/2030\n  end_date: 01/01/2060\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "flowcast.yaml"), []byte(customCfg), 0o644))

	require.NoError(t, runInit(dir))

	data, err := os.ReadFile(filepath.Join(inputDir, "persons.csv"))
	require.NoError(t, err)
	assert.Equal(t, existing, string(data))

	data, err = os.ReadFile(filepath.Join(dir, "flowcast.yaml"))
	require.NoError(t, err)
	assert.Equal(t, customCfg, string(data), "re-init keeps an edited config")
}
