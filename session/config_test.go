// Copyright (c) 2022, The NatHumBeh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package session

import "testing"

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Defaults()
	if cfg.NTrials != 50 || cfg.MemDur != 0.5 || cfg.Delim != "tab" {
		t.Errorf("defaults wrong: %+v", cfg)
	}
	if !cfg.GLM1.On || !cfg.GLM2.On {
		t.Error("designs not on by default")
	}
	if len(cfg.Cols.Images) != 8 || cfg.Trial.NImages != 10 {
		t.Errorf("sub-config defaults wrong: %+v", cfg)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{}
	cfg.Defaults()
	cfg.Behav = "behav.tsv"
	cfg.Runs = []int{1, 2}
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
	cfg.Delim = "pipe"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown delimiter did not error")
	}
	cfg.Delim = "tab"
	cfg.Runs = nil
	if err := cfg.Validate(); err == nil {
		t.Error("empty run list did not error")
	}
	cfg.Runs = []int{1}
	cfg.Behav = ""
	if err := cfg.Validate(); err == nil {
		t.Error("missing behavioral table did not error")
	}
}

func TestDelimRune(t *testing.T) {
	tests := []struct {
		nm string
		rn rune
	}{{"tab", '\t'}, {"comma", ','}, {"space", ' '}, {"", '\t'}}
	for _, tc := range tests {
		cfg := &Config{Delim: tc.nm}
		rn, err := cfg.DelimRune()
		if err != nil || rn != tc.rn {
			t.Errorf("%q: got %q, %v", tc.nm, rn, err)
		}
	}
}
