// Copyright (c) 2022, The NatHumBeh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trial

import (
	"fmt"
	"sort"
)

// Pair is an unordered pair of image ids, stored low id first so it compares
// directly against the catalog. The String form is the two digits
// concatenated, matching the EV file naming (e.g. "37" for {3,7}).
type Pair [2]int

func (pr Pair) String() string {
	return fmt.Sprintf("%d%d", pr[0], pr[1])
}

// NewPair order-normalizes two image ids into a Pair.
func NewPair(a, b int) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{a, b}
}

// Catalog enumerates every possible missing-image pair for the given
// low / high partition, in low-major order. The task always withholds one
// low and one high image, so the catalog is the full cross product
// (25 pairs for the standard 5 + 5 partition).
func Catalog(pr *Params) []Pair {
	low := append([]int{}, pr.Low...)
	high := append([]int{}, pr.High...)
	sort.Ints(low)
	sort.Ints(high)
	cat := make([]Pair, 0, len(low)*len(high))
	for _, i := range low {
		for _, j := range high {
			cat = append(cat, NewPair(i, j))
		}
	}
	return cat
}
