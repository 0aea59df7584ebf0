// Copyright (c) 2022, The NatHumBeh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package design enumerates the named conditions of the two GLM designs the
// study fits over the same per-run data. Condition names match the EV file
// paths expected by the FEAT batch templates exactly.
package design

import (
	"fmt"

	"github.com/BiyuHeLab/NatHumBeh-Stage1-Koenig2022/block"
	"github.com/BiyuHeLab/NatHumBeh-Stage1-Koenig2022/cond"
	"github.com/BiyuHeLab/NatHumBeh-Stage1-Koenig2022/trial"
)

// Condition is one named regressor: the event whose onsets it models and
// the predicate selecting the flagged trials.
type Condition struct {

	// condition name, the last element of the EV file name
	Name string

	// which task event supplies the onset / duration columns
	Ev block.Event

	// membership predicate over classified trials
	Pred cond.Predicate
}

// Design is an ordered set of conditions emitted per run under one name.
type Design struct {
	Name  string
	Conds []Condition
}

// cueConds are the three cue-type onset regressors shared by both designs.
func cueConds() []Condition {
	return []Condition{
		{"testarraypostcue", block.TestArray, cond.Post},
		{"testarrayretrocue", block.TestArray, cond.Retro},
		{"memoryarrayretrocue", block.MemoryArray, cond.Retro},
	}
}

// GLM1 is the per-image cued-recall design: WM+ / WM- memory-array
// regressors for each image of the universe (cued image = k, responded,
// judged correctly / incorrectly), the three cue-type regressors, and the
// no-response regressor. 24 conditions with the standard 10-image universe.
func GLM1(pr *trial.Params) *Design {
	ds := &Design{Name: "GLM1"}
	for k := 0; k < pr.NImages; k++ {
		ds.Conds = append(ds.Conds,
			Condition{fmt.Sprintf("image%d_WMplus", k), block.MemoryArray,
				cond.And(cond.Responded, cond.CuedImage(k), cond.Correct)},
			Condition{fmt.Sprintf("image%d_WMminus", k), block.MemoryArray,
				cond.And(cond.Responded, cond.CuedImage(k), cond.Incorrect)},
		)
	}
	ds.Conds = append(ds.Conds, cueConds()...)
	ds.Conds = append(ds.Conds, Condition{"noresponses", block.TestArray, cond.NoResponse})
	return ds
}

// GLM2 is the missing-pair design: one memory-array regressor per
// missing-image pair of the catalog, restricted to post-cue trials, plus
// the three cue-type regressors. 28 conditions with the standard 5 x 5
// partition.
func GLM2(pr *trial.Params) *Design {
	ds := &Design{Name: "GLM2"}
	for _, p := range trial.Catalog(pr) {
		ds.Conds = append(ds.Conds,
			Condition{fmt.Sprintf("missing%s_onlypost", p), block.MemoryArray,
				cond.And(cond.Post, cond.MissingPair(p))})
	}
	ds.Conds = append(ds.Conds, cueConds()...)
	return ds
}

// Enabled restricts the design to the named conditions, preserving design
// order. An unknown name is an error; an empty list means all conditions.
func (ds *Design) Enabled(names []string) (*Design, error) {
	if len(names) == 0 {
		return ds, nil
	}
	byName := make(map[string]bool, len(names))
	for _, nm := range names {
		byName[nm] = true
	}
	sub := &Design{Name: ds.Name}
	for _, cn := range ds.Conds {
		if byName[cn.Name] {
			sub.Conds = append(sub.Conds, cn)
			delete(byName, cn.Name)
		}
	}
	for nm := range byName {
		return nil, fmt.Errorf("design %s: no condition named %s", ds.Name, nm)
	}
	return sub, nil
}
