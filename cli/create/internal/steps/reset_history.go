package steps

import (
	create_ctx "github.com/forge-cli/forge/cli/create/context"
	"github.com/forge-cli/forge/cli/vcs"
)

// initialCommitMessage is the message of the first commit of a created
// project.
const initialCommitMessage = "Initial commit"

// ResetHistory represents the repository history reset step. It runs
// after all content is in its final form, so the first commit reflects
// the customized project, not the raw template.
type ResetHistory struct{}

// Run discards inherited version control history and initializes a
// fresh repository with an initial commit.
func (ResetHistory) Run(createCtx *create_ctx.CreateCtx, scaffoldCtx *ScaffoldCtx) error {
	ident := vcs.Identity{
		Name:  scaffoldCtx.Values.AuthorName,
		Email: scaffoldCtx.Values.AuthorEmail,
	}

	return vcs.ResetHistory(scaffoldCtx.ScaffoldPath, ident, initialCommitMessage)
}
