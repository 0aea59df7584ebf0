// Copyright (c) 2022, The NatHumBeh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package block slices a subject's trial sequence into fixed-length runs and
// rebases trial onsets onto a run-relative time base.
package block

import (
	"fmt"

	"github.com/BiyuHeLab/NatHumBeh-Stage1-Koenig2022/trial"
	"github.com/goki/mat32"
)

// Event selects which task event a regressor models: the memory array
// (onset + fixed retention duration) or the test array (onset + response
// latency duration).
type Event int32

const (
	MemoryArray Event = iota
	TestArray
	EventN
)

func (ev Event) String() string {
	if ev == TestArray {
		return "testarray"
	}
	return "memoryarray"
}

// Round1 rounds to 1 decimal, the internal alignment precision for all
// onsets and durations. Serialization rounds again to 2 decimals.
func Round1(v float32) float32 {
	return mat32.Round(v*10) / 10
}

// Block is one scan run: a fixed-length window of the subject's classified
// trial sequence, with onsets made relative to the first trial's
// memory-array onset (which therefore becomes 0).
type Block struct {

	// externally supplied run / acquisition number, used only in file naming
	Num int

	// the run's trials, in order; derived fields already set
	Trials []trial.Trial

	// run-relative memory-array onsets, one per trial, 1-decimal
	MemOnset []float32

	// run-relative test-array onsets, one per trial, 1-decimal
	TestOnset []float32

	// per-trial test-array durations = response latency, 1-decimal;
	// 0 for no-response trials
	TestDur []float32

	// fixed memory-array retention duration
	MemDur float32
}

// New builds a Block over the given trials, fixing the time base to the
// first trial's memory-array onset.
func New(num int, trials []trial.Trial, memDur float32) *Block {
	bk := &Block{Num: num, Trials: trials, MemDur: memDur}
	bk.MemOnset = make([]float32, len(trials))
	bk.TestOnset = make([]float32, len(trials))
	bk.TestDur = make([]float32, len(trials))
	if len(trials) == 0 {
		return bk
	}
	anchor := trials[0].MemOnset
	for i := range trials {
		tr := &trials[i]
		bk.MemOnset[i] = Round1(tr.MemOnset - anchor)
		bk.TestOnset[i] = Round1(tr.TestOnset - anchor)
		bk.TestDur[i] = Round1(tr.RT)
	}
	return bk
}

// Onsets returns the run-relative onset and per-trial duration series for
// the given event. Memory-array durations are the fixed retention constant
// for every trial.
func (bk *Block) Onsets(ev Event) (onsets, durs []float32) {
	if ev == TestArray {
		return bk.TestOnset, bk.TestDur
	}
	durs = make([]float32, len(bk.Trials))
	for i := range durs {
		durs[i] = bk.MemDur
	}
	return bk.MemOnset, durs
}

// Slice cuts the full subject sequence into contiguous fixed-size runs,
// pairing each window with its externally supplied run number, in order.
// The run list must never be inferred from the data. Errors if the trial
// count does not divide evenly into len(runs) windows of n trials.
func Slice(trials []trial.Trial, n int, runs []int, memDur float32) ([]*Block, error) {
	if n <= 0 {
		return nil, fmt.Errorf("block.Slice: %d trials per run, must be positive", n)
	}
	if len(trials) != n*len(runs) {
		return nil, fmt.Errorf("block.Slice: %d trials does not divide into %d runs of %d", len(trials), len(runs), n)
	}
	bks := make([]*Block, len(runs))
	for bi, rn := range runs {
		bks[bi] = New(rn, trials[bi*n:(bi+1)*n], memDur)
	}
	return bks, nil
}
