// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/msdijkstra/report"
)

// ErrBadConfig indicates an invalid value in the config file or on the
// command line.
var ErrBadConfig = errors.New("msdijkstra: bad config")

// Config holds the settings that may come from a YAML file. Flags given on
// the command line override file values.
//
//	log_level: debug
//	format: csv
//	color: false
//	stats: true
type Config struct {
	LogLevel string `yaml:"log_level"`
	Format   string `yaml:"format"`
	Color    bool   `yaml:"color"`
	Stats    bool   `yaml:"stats"`
}

// DefaultConfig returns the settings used when no file and no flags are given.
func DefaultConfig() Config {
	return Config{
		LogLevel: logrus.InfoLevel.String(),
		Format:   string(report.FormatText),
		Color:    true,
	}
}

// ReadConfig reads a YAML config file. Keys missing from the file keep
// their DefaultConfig values, an empty file yields the defaults and unknown
// keys are rejected.
func ReadConfig(file string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(file)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: %s: %v", ErrBadConfig, file, err)
	}

	return cfg, nil
}

// settings is a Config with its string fields parsed.
type settings struct {
	level  logrus.Level
	format report.Format
	color  bool
	stats  bool
}

func (c Config) parse() (settings, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return settings{}, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	format, err := report.ParseFormat(c.Format)
	if err != nil {
		return settings{}, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}

	return settings{level: level, format: format, color: c.Color, stats: c.Stats}, nil
}

// flagValues receives the root command flags.
type flagValues struct {
	configPath string
	format     string
	logLevel   string
	noColor    bool
	stats      bool
}

func (f *flagValues) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&f.configPath, "config", "c", "", "read settings from a YAML file\033[0m")
	fs.StringVarP(&f.format, "format", "f", string(report.FormatText), "output format: text, csv or json\033[0m")
	fs.StringVarP(&f.logLevel, "log-level", "l", logrus.InfoLevel.String(), "log level: debug, info, warn or error\033[0m")
	fs.BoolVar(&f.noColor, "no-color", false, "disable colored table output\033[0m")
	fs.BoolVarP(&f.stats, "stats", "s", false, "append run statistics in Prometheus text format\033[0m")
}

// resolve layers defaults, the config file and explicitly set flags.
func (f *flagValues) resolve(fs *pflag.FlagSet) (Config, error) {
	cfg := DefaultConfig()
	if f.configPath != "" {
		var err error
		if cfg, err = ReadConfig(f.configPath); err != nil {
			return cfg, err
		}
	}
	if fs.Changed("format") {
		cfg.Format = f.format
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if fs.Changed("no-color") {
		cfg.Color = !f.noColor
	}
	if fs.Changed("stats") {
		cfg.Stats = f.stats
	}

	return cfg, nil
}
