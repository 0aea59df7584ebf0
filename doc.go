// Copyright (c) 2022, The NatHumBeh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package evfiles is the overall repository for the behavioral EV-file
generation stage of the working-memory fMRI study: it turns each subject's
raw trial table into the per-run, per-condition 3-column regressor files
that the FSL FEAT GLM batch scripts consume.

This top-level of the repository has no functional code -- everything is
organized into the following packages:

* trial: the per-trial behavioral record and the classifier deriving
accuracy, response presence, cued image, and missing-image pair, plus the
missing-pair catalog.

* behav: reads the raw trial table by named columns and scans legacy event
logs for the start-of-task marker.

* block: slices the trial sequence into fixed-length scan runs and rebases
onsets onto each run's own time base.

* cond: condition predicates and the per-run trial indexer.

* regressor: the dense [onset, duration, flag] matrices and the EV text
file emitter.

* design: the GLM1 (per-image cued recall) and GLM2 (missing pair) condition
sets.

* session: the per-subject pipeline tying the above together, configured
from TOML.

* cmd/evfiles: the command-line driver.
*/
package evfiles
