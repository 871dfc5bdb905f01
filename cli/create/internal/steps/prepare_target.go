package steps

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	create_ctx "github.com/forge-cli/forge/cli/create/context"
)

// TargetExistsError is returned when the project directory already
// exists and overwrite is not permitted.
type TargetExistsError struct {
	// Path of the existing directory.
	Path string
}

// Error returns error message.
func (e TargetExistsError) Error() string {
	return fmt.Sprintf("directory %q already exists, use --force to replace it", e.Path)
}

// TargetPath returns the final project directory path for the context.
func TargetPath(createCtx *create_ctx.CreateCtx) (string, error) {
	if createCtx.ProjectName == "" {
		return "", fmt.Errorf("project name cannot be empty")
	}

	parentDir := createCtx.DestinationDir
	if parentDir == "" {
		parentDir = createCtx.WorkDir
	}

	return filepath.Abs(filepath.Join(parentDir, createCtx.ProjectName))
}

// PrepareTarget represents the target directory check step.
type PrepareTarget struct{}

// Run computes the final project directory and enforces its
// non-existence unless force mode is on. The existing directory is not
// touched here: it is replaced only after the staged project is complete.
func (PrepareTarget) Run(createCtx *create_ctx.CreateCtx, scaffoldCtx *ScaffoldCtx) error {
	targetPath, err := TargetPath(createCtx)
	if err != nil {
		return err
	}

	if _, err := os.Stat(targetPath); err == nil {
		if !createCtx.ForceMode {
			return TargetExistsError{Path: targetPath}
		}
		log.Warnf("Directory %q already exists and will be replaced", targetPath)
	}

	log.Infof("Creating project %q in %q", createCtx.ProjectName, targetPath)
	scaffoldCtx.TargetPath = targetPath

	return nil
}
