// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "radixfuzz"
	app.Usage = "Fuzz a compact radix trie with random insertions and deletions"
	app.Version = "0.1.0"
	app.Flags = flags
	app.Action = run
	return app
}

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
