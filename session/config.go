// Copyright (c) 2022, The NatHumBeh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import (
	"fmt"

	"github.com/BiyuHeLab/NatHumBeh-Stage1-Koenig2022/behav"
	"github.com/BiyuHeLab/NatHumBeh-Stage1-Koenig2022/trial"
)

// DesignConfig controls one GLM design's emission.
type DesignConfig struct {

	// emit this design's EV files
	On bool `default:"true"`

	// conditions to emit; empty = all, unknown names are errors
	Enable []string
}

// Config is the per-subject configuration record. All subject-specific facts
// (file paths, run order, schema bindings, task constants) live here so the
// pipeline itself stays subject-agnostic. Loaded from TOML via econfig.
type Config struct {

	// specify include files here, and after configuration,
	// it contains list of include files added.
	Includes []string

	// subject id, used in summary file names and logs
	Subject string

	// path to the behavioral trial table (delimited text with header row)
	Behav string

	// table delimiter: tab, comma, or space
	Delim string `default:"tab"`

	// optional event-log path for legacy recordings whose onsets need
	// rebasing to the start-of-task marker; empty = onsets self-consistent
	EventLog string

	// start-of-task marker text searched in the event log
	Marker string `default:"task_start"`

	// output directory for EV files and summary tables
	Out string `default:"EVfiles"`

	// allow overwriting existing EV files; off = fail on any collision
	Overwrite bool

	// trials per run
	NTrials int `default:"50"`

	// externally supplied scan run numbers, one per block, in block order --
	// never inferred from the data
	Runs []int

	// memory-array retention duration in seconds
	MemDur float32 `default:"0.5"`

	// task-design constants (image universe, partition, key codes)
	Trial trial.Params

	// column-name bindings for the behavioral table
	Cols behav.Columns

	// per-image cued-recall design
	GLM1 DesignConfig

	// missing-pair design
	GLM2 DesignConfig
}

func (cfg *Config) IncludesPtr() *[]string { return &cfg.Includes }

// Defaults fills the slice and sub-struct defaults that struct tags cannot
// express. Non-destructive over values already set, except the design On
// flags, which start on here and are turned off in the config file.
func (cfg *Config) Defaults() {
	if cfg.Delim == "" {
		cfg.Delim = "tab"
	}
	if cfg.Marker == "" {
		cfg.Marker = "task_start"
	}
	if cfg.Out == "" {
		cfg.Out = "EVfiles"
	}
	if cfg.NTrials == 0 {
		cfg.NTrials = 50
	}
	if cfg.MemDur == 0 {
		cfg.MemDur = 0.5
	}
	cfg.GLM1.On = true
	cfg.GLM2.On = true
	cfg.Trial.Defaults()
	cfg.Cols.Defaults()
}

// DelimRune maps the configured delimiter name onto its rune.
func (cfg *Config) DelimRune() (rune, error) {
	switch cfg.Delim {
	case "tab", "":
		return '\t', nil
	case "comma":
		return ',', nil
	case "space":
		return ' ', nil
	}
	return 0, fmt.Errorf("session: unknown delimiter %q (want tab, comma, or space)", cfg.Delim)
}

// Validate checks everything that must hold before any subject data is read.
func (cfg *Config) Validate() error {
	if cfg.Behav == "" {
		return fmt.Errorf("session: no behavioral table configured")
	}
	if len(cfg.Runs) == 0 {
		return fmt.Errorf("session: no run-number list configured")
	}
	if cfg.NTrials <= 0 {
		return fmt.Errorf("session: NTrials = %d, must be positive", cfg.NTrials)
	}
	if _, err := cfg.DelimRune(); err != nil {
		return err
	}
	return cfg.Trial.Validate()
}
