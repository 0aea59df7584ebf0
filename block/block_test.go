// Copyright (c) 2022, The NatHumBeh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package block

import (
	"testing"

	"github.com/BiyuHeLab/NatHumBeh-Stage1-Koenig2022/trial"
	"github.com/goki/mat32"
)

const difTol = 1.0e-6

func CmprFloats(got, trg []float32, msg string, t *testing.T) {
	t.Helper()
	for i := range got {
		dif := mat32.Abs(got[i] - trg[i])
		if dif > difTol {
			t.Errorf("%v err: got: %v, trg: %v, dif: %v\n", msg, got[i], trg[i], dif)
		}
	}
}

func timedTrials(memOnsets, testOnsets, rts []float32) []trial.Trial {
	trs := make([]trial.Trial, len(memOnsets))
	for i := range trs {
		trs[i] = trial.Trial{Idx: i, MemOnset: memOnsets[i], TestOnset: testOnsets[i], RT: rts[i]}
	}
	return trs
}

func TestNormalize(t *testing.T) {
	trs := timedTrials(
		[]float32{120.04, 132.46, 145.01},
		[]float32{123.55, 135.97, 148.52},
		[]float32{0.82, 1.234, 0},
	)
	bk := New(3, trs, 0.5)
	// anchor trial rebased to exactly 0
	if bk.MemOnset[0] != 0 {
		t.Errorf("anchor memory onset = %v, want 0", bk.MemOnset[0])
	}
	CmprFloats(bk.MemOnset, []float32{0, 12.4, 15.0}, "memory onsets", t)
	CmprFloats(bk.TestOnset, []float32{3.5, 15.9, 28.5}, "test onsets", t)
	CmprFloats(bk.TestDur, []float32{0.8, 1.2, 0}, "test durations", t)
}

func TestOnsets(t *testing.T) {
	trs := timedTrials([]float32{10, 22}, []float32{13.5, 25.5}, []float32{0.9, 1.1})
	bk := New(1, trs, 0.5)
	on, du := bk.Onsets(MemoryArray)
	CmprFloats(on, []float32{0, 12}, "memoryarray onsets", t)
	CmprFloats(du, []float32{0.5, 0.5}, "memoryarray durations", t)
	on, du = bk.Onsets(TestArray)
	CmprFloats(on, []float32{3.5, 15.5}, "testarray onsets", t)
	CmprFloats(du, []float32{0.9, 1.1}, "testarray durations", t)
}

func TestSlice(t *testing.T) {
	trs := make([]trial.Trial, 8)
	for i := range trs {
		trs[i].Idx = i
		trs[i].MemOnset = float32(i) * 12
	}
	bks, err := Slice(trs, 4, []int{3, 5}, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if len(bks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(bks))
	}
	if bks[0].Num != 3 || bks[1].Num != 5 {
		t.Errorf("run numbers = %d, %d, want 3, 5", bks[0].Num, bks[1].Num)
	}
	if bks[1].Trials[0].Idx != 4 {
		t.Errorf("second block starts at trial %d, want 4", bks[1].Trials[0].Idx)
	}
	// each block's time base is its own first trial
	if bks[1].MemOnset[0] != 0 {
		t.Errorf("second block anchor = %v, want 0", bks[1].MemOnset[0])
	}
}

func TestSliceUneven(t *testing.T) {
	trs := make([]trial.Trial, 7)
	if _, err := Slice(trs, 4, []int{1, 2}, 0.5); err == nil {
		t.Error("7 trials into 2 runs of 4 did not error")
	}
	if _, err := Slice(trs, 0, []int{1}, 0.5); err == nil {
		t.Error("zero trials per run did not error")
	}
}

func TestRound1(t *testing.T) {
	CmprFloats(
		[]float32{Round1(1.24), Round1(1.25), Round1(-0.04), Round1(3.0)},
		[]float32{1.2, 1.3, 0, 3.0},
		"round to 1 decimal", t)
}
