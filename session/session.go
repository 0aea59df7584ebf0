// Copyright (c) 2022, The NatHumBeh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package session runs the full per-subject pipeline: load and parse the
// behavioral table, classify trials, slice runs, and emit every enabled
// GLM design's EV files, plus trial- and run-level summary tables.
package session

import (
	"fmt"
	"log"

	"github.com/BiyuHeLab/NatHumBeh-Stage1-Koenig2022/behav"
	"github.com/BiyuHeLab/NatHumBeh-Stage1-Koenig2022/block"
	"github.com/BiyuHeLab/NatHumBeh-Stage1-Koenig2022/cond"
	"github.com/BiyuHeLab/NatHumBeh-Stage1-Koenig2022/design"
	"github.com/BiyuHeLab/NatHumBeh-Stage1-Koenig2022/regressor"
	"github.com/BiyuHeLab/NatHumBeh-Stage1-Koenig2022/trial"
)

// Session holds one subject's pipeline state from raw table to emitted
// EV files.
type Session struct {

	// per-subject configuration, set from TOML config file and / or args
	Config Config

	// the subject's full classified trial sequence
	Trials []trial.Trial

	// runs in acquisition order, time bases already rebased
	Blocks []*block.Block

	// writes the EV files, guarding against key collisions
	Emitter *regressor.Emitter
}

// New returns a Session with config defaults applied.
func New() *Session {
	ss := &Session{}
	ss.Config.Defaults()
	return ss
}

// Run executes the whole pipeline for the configured subject. Any error is
// fatal for the subject: nothing is partially processed past it.
func (ss *Session) Run() error {
	cfg := &ss.Config
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := ss.Load(); err != nil {
		return err
	}
	if err := trial.Classify(ss.Trials, &cfg.Trial); err != nil {
		return err
	}
	bks, err := block.Slice(ss.Trials, cfg.NTrials, cfg.Runs, cfg.MemDur)
	if err != nil {
		return err
	}
	ss.Blocks = bks
	if err := ss.Emit(); err != nil {
		return err
	}
	return ss.WriteSummary()
}

// Load reads and parses the behavioral table, rebases onsets against the
// event-log start marker when one is configured, and checks the trial count
// against the run list before anything downstream sees the data.
func (ss *Session) Load() error {
	cfg := &ss.Config
	delim, err := cfg.DelimRune()
	if err != nil {
		return err
	}
	dt, err := behav.Open(cfg.Behav, delim)
	if err != nil {
		return err
	}
	trs, err := behav.Trials(dt, &cfg.Cols)
	if err != nil {
		return err
	}
	if want := cfg.NTrials * len(cfg.Runs); len(trs) != want {
		return fmt.Errorf("session: %s has %d trials, want %d runs x %d = %d", cfg.Behav, len(trs), len(cfg.Runs), cfg.NTrials, want)
	}
	if cfg.EventLog != "" {
		t0, err := behav.TaskStartFile(cfg.EventLog, cfg.Marker)
		if err != nil {
			return err
		}
		log.Printf("subject %s: rebasing onsets to task start at %v\n", cfg.Subject, t0)
		for i := range trs {
			trs[i].MemOnset -= t0
			trs[i].TestOnset -= t0
		}
	}
	ss.Trials = trs
	return nil
}

// Designs returns the enabled designs with their enable lists applied.
func (ss *Session) Designs() ([]*design.Design, error) {
	cfg := &ss.Config
	var dss []*design.Design
	if cfg.GLM1.On {
		ds, err := design.GLM1(&cfg.Trial).Enabled(cfg.GLM1.Enable)
		if err != nil {
			return nil, err
		}
		dss = append(dss, ds)
	}
	if cfg.GLM2.On {
		ds, err := design.GLM2(&cfg.Trial).Enabled(cfg.GLM2.Enable)
		if err != nil {
			return nil, err
		}
		dss = append(dss, ds)
	}
	return dss, nil
}

// Emit writes one EV file per (design, run, condition), in fixed order so
// repeated invocations on the same inputs are byte-identical.
func (ss *Session) Emit() error {
	cfg := &ss.Config
	dss, err := ss.Designs()
	if err != nil {
		return err
	}
	ss.Emitter = regressor.NewEmitter(cfg.Out, cfg.Overwrite)
	for _, bk := range ss.Blocks {
		log.Printf("subject %s: starting run %02d\n", cfg.Subject, bk.Num)
		for _, ds := range dss {
			for _, cn := range ds.Conds {
				idxs := cond.Indexes(bk.Trials, cn.Pred)
				mat := regressor.Matrix(bk, cn.Ev, idxs)
				if err := ss.Emitter.Write(ds.Name, bk.Num, cn.Name, mat); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
