package main

import (
	"github.com/bnema/webshim/internal/cli/cmd"
	"github.com/bnema/webshim/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.NewInfo(version, commit, buildDate))
	cmd.Execute()
}
