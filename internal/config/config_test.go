package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/f3rmion/ziwei/internal/ziwei"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_MissingFileGivesDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_OverlaysDefault(t *testing.T) {
	path := writeFile(t, "config.yaml", "workers: 4\nromanize: tone\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "tone", cfg.Romanize)
	assert.True(t, cfg.CacheEnabled)
	assert.Equal(t, FormatGrid, cfg.DefaultFormat)
}

func TestLoad_Invalid(t *testing.T) {
	for name, body := range map[string]string{
		"level":    "log_level: loud\n",
		"workers":  "workers: -1\n",
		"format":   "default_format: pdf\n",
		"romanize": "romanize: ipa\n",
		"syntax":   "workers: [\n",
	} {
		_, err := Load(writeFile(t, "config.yaml", body))
		assert.Error(t, err, name)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := Default()
	cfg.CachePath = "/tmp/x.db"
	cfg.LogLevel = "debug"
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadBatch_YAML(t *testing.T) {
	path := writeFile(t, "batch.yaml", `inputs:
  - {year: 1990, month: 1, day: 1, hour: 14, gender: male}
  - {year: 1990, month: 13, day: 1, hour: 1, gender: male}
  - {year: 2023, month: 2, day: 10, hour: 8, gender: female, isLunar: true, isLeapMonth: true}
`)
	inputs, err := LoadBatch(path)
	require.NoError(t, err)
	require.Len(t, inputs, 3)
	assert.Equal(t, ziwei.BirthInput{Year: 1990, Month: 1, Day: 1, Hour: 14, Gender: ziwei.Male}, inputs[0])
	assert.Equal(t, 13, inputs[1].Month)
	assert.True(t, inputs[2].IsLeapMonth)
}

func TestLoadBatch_TOML(t *testing.T) {
	path := writeFile(t, "batch.toml", `[[inputs]]
year = 1990
month = 1
day = 1
hour = 14
gender = "male"

[[inputs]]
year = 1984
month = 2
day = 2
hour = 23
gender = "female"
isLunar = true
`)
	inputs, err := LoadBatch(path)
	require.NoError(t, err)
	require.Len(t, inputs, 2)
	assert.Equal(t, ziwei.Female, inputs[1].Gender)
	assert.True(t, inputs[1].IsLunar)
}

func TestLoadBatch_Errors(t *testing.T) {
	_, err := LoadBatch(writeFile(t, "batch.json", "{}"))
	assert.ErrorContains(t, err, "unsupported")

	_, err = LoadBatch(writeFile(t, "batch.toml", "[[inputs]]\nyaer = 1990\n"))
	assert.Error(t, err)

	_, err = LoadBatch(filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}
