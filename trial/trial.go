// Copyright (c) 2022, The NatHumBeh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trial defines the per-trial behavioral record for the cued-recall
// working-memory task, and the classifier that derives accuracy, response
// presence, cued image, and missing-image pair from the raw fields.
package trial

import "fmt"

// sentinel values for undefined raw / derived fields
const (
	// NoKey is the response key value when the subject did not respond.
	NoKey = -1

	// NoImage is the cued-image / cue-location value when no cue was given
	// or the field is undefined.
	NoImage = -1
)

// Accuracy is the judged correctness of the subject's same / different
// response against the change / no-change ground truth.
type Accuracy int32

const (
	// NoAcc = undefined accuracy: the subject did not respond.
	// This is a valid state, not an error, and never matches
	// correct or incorrect condition predicates.
	NoAcc Accuracy = iota

	// Correct response (same-key on no-change, different-key on change).
	Correct

	// Incorrect response.
	Incorrect

	AccuracyN
)

func (ac Accuracy) String() string {
	switch ac {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	}
	return "undefined"
}

// Trial is one presentation cycle of the task: raw fields as recorded in the
// behavioral table, plus derived fields set once per subject by Classify.
// All timing is in seconds on the experiment clock (absolute until a Block
// rebases it).
type Trial struct {

	// ordinal index within the subject's full trial sequence
	Idx int

	// memory-array image ids in presentation order, a strict subset of the
	// image universe with no duplicates -- nil on filler / catch trials
	// where the array field is undefined
	Images []int

	// true = retro cue (during retention), false = post cue (at test)
	Retro bool

	// 0-based cue location into Images, or NoImage if no cue on this trial
	CueLoc int

	// ground truth: true = test array changed, false = no change
	Change bool

	// observed response key code (one of the configured same / different
	// codes), or NoKey
	Resp int

	// response latency in seconds; 0 when no response
	RT float32

	// memory-array onset, absolute experiment-clock time
	MemOnset float32

	// test-array onset, absolute experiment-clock time
	TestOnset float32

	// derived: response correctness -- set by Classify
	Acc Accuracy

	// derived: true iff Resp != NoKey -- set by Classify
	HasResp bool

	// derived: image id at the cued location, or NoImage -- set by Classify
	Cued int

	// derived: the two universe images absent from Images, low id first;
	// {NoImage, NoImage} when Images is undefined -- set by Classify
	Missing Pair
}

// MissingOK returns true if the missing-image pair is defined on this trial.
func (tr *Trial) MissingOK() bool {
	return tr.Missing[0] != NoImage
}

// Params are the task-design constants needed to classify trials and to
// enumerate the missing-pair catalog.
type Params struct {

	// number of images in the fixed image universe (ids 0..NImages-1)
	NImages int `default:"10"`

	// low half of the image-id partition used for the pair catalog
	Low []int

	// high half of the image-id partition
	High []int

	// response key code meaning "same" (correct on no-change trials)
	SameKey int `default:"1"`

	// response key code meaning "different" (correct on change trials)
	DiffKey int `default:"2"`
}

// Defaults sets the standard task parameters: 10 images partitioned
// into low {0..4} and high {5..9}, keys 1 = same, 2 = different.
func (pr *Params) Defaults() {
	if pr.NImages == 0 {
		pr.NImages = 10
	}
	if pr.SameKey == 0 {
		pr.SameKey = 1
	}
	if pr.DiffKey == 0 {
		pr.DiffKey = 2
	}
	if len(pr.Low) == 0 && len(pr.High) == 0 {
		half := pr.NImages / 2
		for i := 0; i < half; i++ {
			pr.Low = append(pr.Low, i)
		}
		for i := half; i < pr.NImages; i++ {
			pr.High = append(pr.High, i)
		}
	}
}

// Validate checks the partition against the universe.
func (pr *Params) Validate() error {
	if pr.NImages <= 0 {
		return fmt.Errorf("trial.Params: NImages = %d, must be positive", pr.NImages)
	}
	// pair names concatenate the two image ids, so ids must stay single-digit
	if pr.NImages > 10 {
		return fmt.Errorf("trial.Params: NImages = %d, must be <= 10", pr.NImages)
	}
	if pr.SameKey == pr.DiffKey {
		return fmt.Errorf("trial.Params: SameKey and DiffKey are both %d", pr.SameKey)
	}
	seen := make(map[int]bool, pr.NImages)
	for _, im := range append(append([]int{}, pr.Low...), pr.High...) {
		if im < 0 || im >= pr.NImages {
			return fmt.Errorf("trial.Params: partition image %d outside universe 0..%d", im, pr.NImages-1)
		}
		if seen[im] {
			return fmt.Errorf("trial.Params: image %d appears twice in partition", im)
		}
		seen[im] = true
	}
	return nil
}
