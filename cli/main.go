package main

import (
	"log"

	"github.com/forge-cli/forge/cli/cmd"
	"github.com/forge-cli/forge/cli/util"
	"github.com/forge-cli/forge/cli/version"
)

func main() {
	defer func() {
		// Turn an unhandled panic into a readable internal error report.
		if r := recover(); r != nil {
			log.Fatalf(
				"%s", util.InternalError("Unhandled internal error: %s",
					version.GetVersion, r))
		}
	}()

	cmd.InitRoot()
	cmd.Execute()
}
