package steps

import (
	"fmt"
	"os"

	create_ctx "github.com/forge-cli/forge/cli/create/context"
	"github.com/forge-cli/forge/cli/vcs"
	"github.com/otiai10/copy"
)

// MaterializeTemplate represents the template tree copy step.
type MaterializeTemplate struct{}

// Run copies the cached template tree into the staging directory.
// Version control metadata directories are excluded during the walk,
// never copied and deleted afterwards. A failed copy removes the
// partial output.
func (MaterializeTemplate) Run(createCtx *create_ctx.CreateCtx, scaffoldCtx *ScaffoldCtx) error {
	options := copy.Options{
		Skip: func(srcinfo os.FileInfo, src, dest string) (bool, error) {
			if !srcinfo.IsDir() {
				return false, nil
			}
			for _, metadataDir := range vcs.MetadataDirs {
				if srcinfo.Name() == metadataDir {
					return true, nil
				}
			}
			return false, nil
		},
	}

	if err := copy.Copy(scaffoldCtx.CachePath, scaffoldCtx.ScaffoldPath, options); err != nil {
		os.RemoveAll(scaffoldCtx.ScaffoldPath)
		return fmt.Errorf("template copying failed: %w", err)
	}

	return nil
}
