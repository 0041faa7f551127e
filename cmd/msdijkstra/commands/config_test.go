// SPDX-License-Identifier: MIT
package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/msdijkstra/report"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "msdijkstra.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(writeConfig(t, "log_level: debug\nformat: csv\ncolor: false\nstats: true\n"))
	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: "debug", Format: "csv", Color: false, Stats: true}, cfg)
}

func TestReadConfig_Partial(t *testing.T) {
	cfg, err := ReadConfig(writeConfig(t, "stats: true\n"))
	require.NoError(t, err)
	want := DefaultConfig()
	want.Stats = true
	assert.Equal(t, want, cfg)

	cfg, err = ReadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestReadConfig_Errors(t *testing.T) {
	_, err := ReadConfig(filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = ReadConfig(writeConfig(t, "colour: false\n"))
	assert.ErrorIs(t, err, ErrBadConfig)

	_, err = ReadConfig(writeConfig(t, "stats: [1, 2\n"))
	assert.ErrorIs(t, err, ErrBadConfig)
}

func TestResolve(t *testing.T) {
	path := writeConfig(t, "log_level: warn\nformat: csv\nstats: true\n")

	var f flagValues
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.bind(fs)
	require.NoError(t, fs.Parse([]string{"-c", path, "--no-color", "-f", "json"}))

	cfg, err := f.resolve(fs)
	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: "warn", Format: "json", Color: false, Stats: true}, cfg)
}

func TestResolve_DefaultsWithoutFile(t *testing.T) {
	var f flagValues
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.bind(fs)
	require.NoError(t, fs.Parse([]string{"--stats"}))

	cfg, err := f.resolve(fs)
	require.NoError(t, err)
	want := DefaultConfig()
	want.Stats = true
	assert.Equal(t, want, cfg)
}

func TestConfigParse(t *testing.T) {
	set, err := Config{LogLevel: "debug", Format: "CSV", Color: true}.parse()
	require.NoError(t, err)
	assert.Equal(t, settings{level: logrus.DebugLevel, format: report.FormatCSV, color: true}, set)

	_, err = Config{LogLevel: "loud", Format: "text"}.parse()
	assert.ErrorIs(t, err, ErrBadConfig)

	_, err = Config{LogLevel: "info", Format: "xml"}.parse()
	assert.ErrorIs(t, err, ErrBadConfig)
}
