// Command argatransform resolves biodiversity CSV sources into typed
// domain records via the TriG mapping DSL (§1), grounded on
// cmd/cayley's own main-plus-command-package split.
package main

import (
	"os"

	"github.com/ARGA-Genomes/arga-transformer/clog"
	"github.com/ARGA-Genomes/arga-transformer/cmd/argatransform/command"
)

func main() {
	if err := command.NewRootCmd().Execute(); err != nil {
		clog.Errorf("%v", err)
		os.Exit(1)
	}
}
