// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the settings of the lightning command from
// defaults, an optional YAML file, LIGHTNING_* environment variables and
// command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ajroetker/go-lightning/gates"
)

// Config is the command configuration.
type Config struct {
	// Kernel is a kernel name such as "LM", or "auto" to pick, for each
	// operation, the fastest kernel on the detected CPU that implements it.
	Kernel    string    `mapstructure:"kernel"`
	Precision int       `mapstructure:"precision"`
	Log       LogConfig `mapstructure:"log"`
	LM        LMConfig  `mapstructure:"lm"`
}

// LogConfig selects the logrus level and formatter.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LMConfig tunes the LM kernels.
type LMConfig struct {
	// ParallelThreshold is the qubit count from which LM kernels split
	// their sweeps across the pool.
	ParallelThreshold int `mapstructure:"parallel_threshold"`
	// Workers is the pool size; 0 means GOMAXPROCS.
	Workers int `mapstructure:"workers"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Kernel:    "auto",
		Precision: 64,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		LM: LMConfig{
			ParallelThreshold: 14,
			Workers:           0,
		},
	}
}

// flagKeys maps the flags registered by AddFlags to their config keys.
var flagKeys = map[string]string{
	"kernel":       "kernel",
	"precision":    "precision",
	"log-level":    "log.level",
	"log-format":   "log.format",
	"lm-threshold": "lm.parallel_threshold",
	"lm-workers":   "lm.workers",
}

// AddFlags registers one flag per setting on fs. Load honours them only
// when they are set explicitly.
func AddFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("kernel", d.Kernel, `kernel name, or "auto" to pick per operation from the CPU`)
	fs.Int("precision", d.Precision, "state vector precision in bits (32 or 64)")
	fs.String("log-level", d.Log.Level, "log level (debug, info, warn, error)")
	fs.String("log-format", d.Log.Format, "log format (text or json)")
	fs.Int("lm-threshold", d.LM.ParallelThreshold, "qubit count from which LM kernels run on the worker pool")
	fs.Int("lm-workers", d.LM.Workers, "LM worker pool size (0 means GOMAXPROCS)")
}

// Load reads cfgFile (if not empty) over the defaults, then applies
// environment overrides such as LIGHTNING_KERNEL or LIGHTNING_LM_WORKERS,
// then the flags of fs registered by AddFlags. fs may be nil.
func Load(cfgFile string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix("LIGHTNING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("kernel", cfg.Kernel)
	v.SetDefault("precision", cfg.Precision)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("lm.parallel_threshold", cfg.LM.ParallelThreshold)
	v.SetDefault("lm.workers", cfg.LM.Workers)
}

// Validate checks that every field holds a supported value.
func (c *Config) Validate() error {
	if c.Kernel != "auto" {
		if k, ok := gates.ParseKernelType(c.Kernel); !ok || k == gates.KernelNone {
			return fmt.Errorf("kernel must be \"auto\" or a kernel name, got %q", c.Kernel)
		}
	}
	if c.Precision != 32 && c.Precision != 64 {
		return fmt.Errorf("precision must be 32 or 64, got %d", c.Precision)
	}
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.Log.Level) {
		return fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	if !slices.Contains([]string{"text", "json"}, c.Log.Format) {
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	if c.LM.ParallelThreshold < 1 {
		return errors.New("lm.parallel_threshold must be at least 1")
	}
	if c.LM.Workers < 0 {
		return errors.New("lm.workers must not be negative")
	}
	return nil
}
