// Copyright (c) 2022, The NatHumBeh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cond expresses GLM conditions as predicates over classified
// trials, and indexes the trials of one run that satisfy them. Conditions
// are never stored: they exist only as index sets computed on demand.
package cond

import "github.com/BiyuHeLab/NatHumBeh-Stage1-Koenig2022/trial"

// Predicate reports whether a classified trial belongs to a condition.
type Predicate func(tr *trial.Trial) bool

// And composes predicates conjunctively.
func And(preds ...Predicate) Predicate {
	return func(tr *trial.Trial) bool {
		for _, pd := range preds {
			if !pd(tr) {
				return false
			}
		}
		return true
	}
}

// Retro matches retro-cue trials (cue during retention).
func Retro(tr *trial.Trial) bool { return tr.Retro }

// Post matches post-cue trials (cue at test).
func Post(tr *trial.Trial) bool { return !tr.Retro }

// Correct matches correct responses only; undefined accuracy never matches.
func Correct(tr *trial.Trial) bool { return tr.Acc == trial.Correct }

// Incorrect matches incorrect responses only; undefined accuracy never matches.
func Incorrect(tr *trial.Trial) bool { return tr.Acc == trial.Incorrect }

// Responded matches trials where the subject pressed a key.
func Responded(tr *trial.Trial) bool { return tr.HasResp }

// NoResponse matches trials without a response.
func NoResponse(tr *trial.Trial) bool { return !tr.HasResp }

// CuedImage matches trials whose cued memory-array image is k.
// Trials with no cue never match.
func CuedImage(k int) Predicate {
	return func(tr *trial.Trial) bool { return tr.Cued != trial.NoImage && tr.Cued == k }
}

// MissingPair matches trials whose missing-image pair equals p.
// Trials with an undefined memory array never match.
func MissingPair(p trial.Pair) Predicate {
	return func(tr *trial.Trial) bool { return tr.MissingOK() && tr.Missing == p }
}

// Indexes returns the ordered within-run indices of the trials satisfying
// pred. Only the given run's trials are visible to the predicate.
func Indexes(trials []trial.Trial, pred Predicate) []int {
	var idxs []int
	for i := range trials {
		if pred(&trials[i]) {
			idxs = append(idxs, i)
		}
	}
	return idxs
}
