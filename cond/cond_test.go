// Copyright (c) 2022, The NatHumBeh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cond

import (
	"reflect"
	"testing"

	"github.com/BiyuHeLab/NatHumBeh-Stage1-Koenig2022/trial"
)

// four hand-classified trials exercising each predicate family
func testTrials() []trial.Trial {
	return []trial.Trial{
		{Idx: 0, Retro: false, Acc: trial.Correct, HasResp: true, Cued: 3, Missing: trial.Pair{3, 7}},
		{Idx: 1, Retro: true, Acc: trial.Incorrect, HasResp: true, Cued: 7, Missing: trial.Pair{0, 5}},
		{Idx: 2, Retro: false, Acc: trial.NoAcc, HasResp: false, Cued: trial.NoImage, Missing: trial.Pair{trial.NoImage, trial.NoImage}},
		{Idx: 3, Retro: false, Acc: trial.Correct, HasResp: true, Cued: 3, Missing: trial.Pair{3, 7}},
	}
}

func TestPredicates(t *testing.T) {
	trs := testTrials()
	tests := []struct {
		name string
		pred Predicate
		want []int
	}{
		{"post", Post, []int{0, 2, 3}},
		{"retro", Retro, []int{1}},
		{"correct", Correct, []int{0, 3}},
		{"incorrect", Incorrect, []int{1}},
		{"responded", Responded, []int{0, 1, 3}},
		{"noresponse", NoResponse, []int{2}},
		{"cued3", CuedImage(3), []int{0, 3}},
		{"missing37", MissingPair(trial.Pair{3, 7}), []int{0, 3}},
		{"missing05", MissingPair(trial.Pair{0, 5}), []int{1}},
	}
	for _, tc := range tests {
		got := Indexes(trs, tc.pred)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%v: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestAnd(t *testing.T) {
	trs := testTrials()
	got := Indexes(trs, And(Post, Correct, CuedImage(3)))
	if !reflect.DeepEqual(got, []int{0, 3}) {
		t.Errorf("post & correct & cued3: got %v, want [0 3]", got)
	}
	got = Indexes(trs, And(Retro, Correct))
	if got != nil {
		t.Errorf("retro & correct: got %v, want none", got)
	}
}

// undefined accuracy and undefined cue never match value predicates
func TestUndefinedNeverMatches(t *testing.T) {
	trs := testTrials()
	noResp := &trs[2]
	if Correct(noResp) || Incorrect(noResp) {
		t.Error("undefined accuracy matched an accuracy predicate")
	}
	if CuedImage(trial.NoImage)(noResp) {
		t.Error("undefined cue matched CuedImage(NoImage)")
	}
	if MissingPair(trial.Pair{trial.NoImage, trial.NoImage})(noResp) {
		t.Error("undefined pair matched MissingPair of sentinels")
	}
}

// Indexes only sees the slice it is given, so a predicate can never select
// trials outside the current run
func TestIndexesWithinRun(t *testing.T) {
	trs := testTrials()
	got := Indexes(trs[1:3], Responded)
	if !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("run-local indices: got %v, want [0]", got)
	}
}
