package steps

import (
	"fmt"
	"os"

	"github.com/apex/log"
	create_ctx "github.com/forge-cli/forge/cli/create/context"
	"github.com/otiai10/copy"
)

// MoveProjectDirectory represents the staging directory publication step.
type MoveProjectDirectory struct{}

// Run moves the fully formed staged project to its final directory.
// An existing directory is replaced only in force mode and only now,
// when the replacement is complete. A failure mid-copy removes the
// partial target, so no half-materialized project is ever observable.
func (MoveProjectDirectory) Run(createCtx *create_ctx.CreateCtx, scaffoldCtx *ScaffoldCtx) error {
	if _, err := os.Stat(scaffoldCtx.TargetPath); err == nil {
		if !createCtx.ForceMode {
			return TargetExistsError{Path: scaffoldCtx.TargetPath}
		}
		if err := os.RemoveAll(scaffoldCtx.TargetPath); err != nil {
			return fmt.Errorf("failed to remove %q: %w", scaffoldCtx.TargetPath, err)
		}
	}

	// A rename publishes the project in one step. It fails when the
	// staging directory is on another filesystem; fall back to a copy
	// with cleanup of the partial target.
	if err := os.Rename(scaffoldCtx.ScaffoldPath, scaffoldCtx.TargetPath); err == nil {
		scaffoldCtx.ScaffoldPath = ""
		return nil
	}

	if err := copy.Copy(scaffoldCtx.ScaffoldPath, scaffoldCtx.TargetPath); err != nil {
		os.RemoveAll(scaffoldCtx.TargetPath)
		return fmt.Errorf("failed to move project to %q: %w", scaffoldCtx.TargetPath, err)
	}

	if err := os.RemoveAll(scaffoldCtx.ScaffoldPath); err != nil {
		log.Warnf("Failed to remove temporary directory: %s", err)
	}
	scaffoldCtx.ScaffoldPath = ""

	return nil
}
