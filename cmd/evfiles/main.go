// Copyright (c) 2022, The NatHumBeh Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// evfiles generates the per-run FSL FEAT EV files for one subject of the
// working-memory task, per the TOML config (default config.toml, or
// -config sub02.toml; any Config field can also be set as an arg).
package main

import (
	"log"

	"github.com/BiyuHeLab/NatHumBeh-Stage1-Koenig2022/session"
	"github.com/emer/emergent/v2/econfig"
)

func main() {
	ss := session.New()
	econfig.Config(&ss.Config, "config.toml")
	if err := ss.Run(); err != nil {
		log.Fatal(err)
	}
	log.Printf("subject %s: done\n", ss.Config.Subject)
}
