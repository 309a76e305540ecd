// Package config loads colloc's settings from defaults, an optional YAML
// file, COLLOC_* environment variables and bound command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Prefix is the environment variable prefix (COLLOC_NODES, COLLOC_CHART_WIDTH, ...).
const Prefix = "colloc"

// Backend names accepted by the "backend" key.
const (
	BackendNative = "native"
	BackendGonum  = "gonum"
)

// Output formats accepted by the "format" key.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// TopLevel is the resolved configuration.
type TopLevel struct {
	Nodes    int      `mapstructure:"nodes"`
	Backend  string   `mapstructure:"backend"`
	Format   string   `mapstructure:"format"`
	Verbose  bool     `mapstructure:"verbose"`
	Chart    Chart    `mapstructure:"chart"`
	Converge Converge `mapstructure:"converge"`
}

// Chart controls the ASCII plot printed next to the table.
type Chart struct {
	Enabled bool `mapstructure:"enabled"`
	Width   int  `mapstructure:"width"`
	Height  int  `mapstructure:"height"`
}

// Converge holds the node-count sweep for the converge command.
type Converge struct {
	From    int `mapstructure:"from"`
	To      int `mapstructure:"to"`
	Step    int `mapstructure:"step"`
	Workers int `mapstructure:"workers"`
}

// Defaults mirrors the shipped behavior: eight nodes, native LU, table output.
var Defaults = TopLevel{
	Nodes:   8,
	Backend: BackendNative,
	Format:  FormatTable,
	Chart: Chart{
		Enabled: true,
		Width:   60,
		Height:  16,
	},
	Converge: Converge{
		From:    4,
		To:      16,
		Step:    2,
		Workers: 4,
	},
}

// New returns a viper instance with defaults and environment binding set up.
// Flags may be bound onto it before Load is called.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("nodes", Defaults.Nodes)
	v.SetDefault("backend", Defaults.Backend)
	v.SetDefault("format", Defaults.Format)
	v.SetDefault("verbose", Defaults.Verbose)
	v.SetDefault("chart.enabled", Defaults.Chart.Enabled)
	v.SetDefault("chart.width", Defaults.Chart.Width)
	v.SetDefault("chart.height", Defaults.Chart.Height)
	v.SetDefault("converge.from", Defaults.Converge.From)
	v.SetDefault("converge.to", Defaults.Converge.To)
	v.SetDefault("converge.step", Defaults.Converge.Step)
	v.SetDefault("converge.workers", Defaults.Converge.Workers)

	v.SetEnvPrefix(Prefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v
}

// Load reads file (when non-empty) into v and unmarshals the result.
func Load(v *viper.Viper, file string) (*TopLevel, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", file, err)
		}
	}

	var conf TopLevel
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return &conf, nil
}

// Validate checks ranges and enumerations.
func (c *TopLevel) Validate() error {
	switch {
	case c.Nodes < 2:
		return fmt.Errorf("nodes=%d (need >= 2): %w", c.Nodes, ErrInvalid)
	case c.Backend != BackendNative && c.Backend != BackendGonum:
		return fmt.Errorf("backend=%q (want %s|%s): %w", c.Backend, BackendNative, BackendGonum, ErrInvalid)
	case c.Format != FormatTable && c.Format != FormatYAML && c.Format != FormatJSON:
		return fmt.Errorf("format=%q (want %s|%s|%s): %w", c.Format, FormatTable, FormatYAML, FormatJSON, ErrInvalid)
	case c.Chart.Width < 16 || c.Chart.Height < 4:
		return fmt.Errorf("chart %dx%d (need >= 16x4): %w", c.Chart.Width, c.Chart.Height, ErrInvalid)
	case c.Converge.From < 2 || c.Converge.To < c.Converge.From:
		return fmt.Errorf("converge range %d..%d: %w", c.Converge.From, c.Converge.To, ErrInvalid)
	case c.Converge.Step < 1:
		return fmt.Errorf("converge.step=%d: %w", c.Converge.Step, ErrInvalid)
	case c.Converge.Workers < 1:
		return fmt.Errorf("converge.workers=%d: %w", c.Converge.Workers, ErrInvalid)
	}

	return nil
}
