package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "furigana.toml")
	content := `
[resources]
kanjidic2 = "/data/kanjidic2.xml"
name_kanji = "/data/names.tsv"

[tokenizer]
dict = "uni"

[solver]
max_steps = 5000

[batch]
workers = 8

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/kanjidic2.xml", cfg.Resources.Kanjidic2)
	assert.Equal(t, "/data/names.tsv", cfg.Resources.NameKanji)
	assert.Equal(t, Default().Resources.Expressions, cfg.Resources.Expressions, "unset keys keep defaults")
	assert.Equal(t, "uni", cfg.Tokenizer.Dict)
	assert.Equal(t, 5000, cfg.Solver.MaxSteps)
	assert.Equal(t, 8, cfg.Batch.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"syntax.toml":    "[solver\nmax_steps = 1",
		"tokenizer.toml": "[tokenizer]\ndict = \"neologd\"",
		"workers.toml":   "[batch]\nworkers = 0",
		"steps.toml":     "[solver]\nmax_steps = -1",
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		_, err := Load(path)
		assert.Error(t, err, name)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.toml")
	cfg := Default()
	cfg.Store.Path = "/tmp/results.db"
	cfg.Metrics.Addr = ":9100"
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
