// Copyright (c) 2022, The NatHumBeh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trial

import "fmt"

// Classify computes the derived fields (Acc, HasResp, Cued, Missing) for
// every trial in the subject's full sequence, in place. It is called once
// per subject, before any run slicing or condition indexing.
//
// Errors are fail-fast and name the offending trial: a cue location outside
// the memory array, a duplicate or out-of-universe image id, or a memory
// array that does not leave exactly two universe images missing.
func Classify(trials []Trial, pr *Params) error {
	for i := range trials {
		tr := &trials[i]
		tr.HasResp = tr.Resp != NoKey
		tr.Acc = accuracy(tr, pr)
		if err := cuedImage(tr); err != nil {
			return err
		}
		if err := missingPair(tr, pr); err != nil {
			return err
		}
	}
	return nil
}

// accuracy judges the response against ground truth. No response is
// undefined accuracy, never imputed either way.
func accuracy(tr *Trial, pr *Params) Accuracy {
	switch {
	case !tr.HasResp:
		return NoAcc
	case tr.Change && tr.Resp == pr.DiffKey:
		return Correct
	case !tr.Change && tr.Resp == pr.SameKey:
		return Correct
	}
	return Incorrect
}

// cuedImage resolves the cue location into an image id. An out-of-range
// location is a hard error, never wrapped or clipped.
func cuedImage(tr *Trial) error {
	if tr.CueLoc == NoImage {
		tr.Cued = NoImage
		return nil
	}
	if tr.CueLoc < 0 || tr.CueLoc >= len(tr.Images) {
		return fmt.Errorf("trial %d: cue location %d outside memory array of %d images", tr.Idx, tr.CueLoc, len(tr.Images))
	}
	tr.Cued = tr.Images[tr.CueLoc]
	return nil
}

// missingPair computes the complement of the memory array within the image
// universe. Undefined arrays (filler trials) get an undefined pair.
func missingPair(tr *Trial, pr *Params) error {
	if tr.Images == nil {
		tr.Missing = Pair{NoImage, NoImage}
		return nil
	}
	present := make([]bool, pr.NImages)
	for _, im := range tr.Images {
		if im < 0 || im >= pr.NImages {
			return fmt.Errorf("trial %d: image id %d outside universe 0..%d", tr.Idx, im, pr.NImages-1)
		}
		if present[im] {
			return fmt.Errorf("trial %d: image id %d duplicated in memory array", tr.Idx, im)
		}
		present[im] = true
	}
	var miss []int
	for im := 0; im < pr.NImages; im++ {
		if !present[im] {
			miss = append(miss, im)
		}
	}
	if len(miss) != 2 {
		return fmt.Errorf("trial %d: %d images missing from universe, want exactly 2", tr.Idx, len(miss))
	}
	tr.Missing = NewPair(miss[0], miss[1])
	return nil
}
