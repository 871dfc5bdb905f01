package steps

import (
	"fmt"
	"os"

	create_ctx "github.com/forge-cli/forge/cli/create/context"
)

// CreateScaffoldDirectory represents the staging directory creation step.
type CreateScaffoldDirectory struct{}

// Run creates a temporary directory the project is staged in. The target
// directory is only touched once the staged project is fully formed.
func (CreateScaffoldDirectory) Run(createCtx *create_ctx.CreateCtx,
	scaffoldCtx *ScaffoldCtx,
) error {
	scaffoldPath, err := os.MkdirTemp("", createCtx.ProjectName+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary project directory: %w", err)
	}

	scaffoldCtx.ScaffoldPath = scaffoldPath

	return nil
}
