package create

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forge-cli/forge/cli/config"
	create_ctx "github.com/forge-cli/forge/cli/create/context"
	"github.com/forge-cli/forge/cli/create/internal/steps"
	"github.com/forge-cli/forge/cli/fetcher"
	"github.com/forge-cli/forge/cli/registry"
	"github.com/forge-cli/forge/cli/substitute"
	"github.com/forge-cli/forge/cli/templatecache"
)

// initTemplateRepo creates a local template repository with committed
// content to serve as a template source.
func initTemplateRepo(t *testing.T, files map[string]string) string {
	t.Helper()

	sourceDir := t.TempDir()
	repo, err := git.PlainInit(sourceDir, false)
	require.NoError(t, err)

	for name, content := range files {
		path := filepath.Join(sourceDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	workTree, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, workTree.AddWithOptions(&git.AddOptions{All: true}))
	_, err = workTree.Commit("template content", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "template author",
			Email: "templates@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return sourceDir
}

// newTestCtx wires a create context around a single custom template
// backed by a local repository.
func newTestCtx(t *testing.T, templateOpts config.TemplateOpts) *create_ctx.CreateCtx {
	t.Helper()

	reg, err := registry.New([]config.TemplateOpts{templateOpts})
	require.NoError(t, err)

	createCtx := &create_ctx.CreateCtx{
		ProjectName:    "widget",
		TemplateName:   templateOpts.Name,
		WorkDir:        t.TempDir(),
		DestinationDir: t.TempDir(),
		CliOpts: &config.CliOpts{
			Defaults: &config.DefaultsOpts{
				AuthorName:  "Jane Doe",
				AuthorEmail: "jane@example.com",
			},
		},
		Registry: reg,
		Cache:    templatecache.New(t.TempDir(), fetcher.NewGitFetcher()),
	}

	return createCtx
}

func TestRunCreatesProject(t *testing.T) {
	sourceDir := initTemplateRepo(t, map[string]string{
		"README.md":   "# {{PROJECT_NAME}}\nby {{AUTHOR_NAME}} <{{AUTHOR_EMAIL}}>\n",
		"src/main.go": "package main\n",
	})

	createCtx := newTestCtx(t, config.TemplateOpts{
		Name:       "svc",
		Repository: sourceDir,
		Files: []config.FileOpts{
			{
				Path: "README.md",
				Replacements: []config.ReplacementOpts{
					{Placeholder: "{{PROJECT_NAME}}", Value: "project_name"},
					{Placeholder: "{{AUTHOR_NAME}}", Value: "author_name"},
					{Placeholder: "{{AUTHOR_EMAIL}}", Value: "author_email"},
				},
			},
		},
	})

	report, err := Run(createCtx)
	require.NoError(t, err)

	projectDir := filepath.Join(createCtx.DestinationDir, "widget")
	assert.Equal(t, "widget", report.ProjectName)
	assert.Equal(t, "svc", report.TemplateIdentifier)
	assert.Equal(t, projectDir, report.Path)
	assert.Equal(t, []string{"README.md"}, report.Substitution.Modified)

	content, err := os.ReadFile(filepath.Join(projectDir, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# widget\nby Jane Doe <jane@example.com>\n", string(content))
	assert.FileExists(t, filepath.Join(projectDir, "src", "main.go"))

	// The project starts with its own single-commit history, not the
	// template's one.
	repo, err := git.PlainOpen(projectDir)
	require.NoError(t, err)
	head, err := repo.Head()
	require.NoError(t, err)
	commit, err := repo.CommitObject(head.Hash())
	require.NoError(t, err)
	assert.Equal(t, "Initial commit", commit.Message)
	assert.Equal(t, "Jane Doe", commit.Author.Name)
	_, err = commit.Parent(0)
	assert.Error(t, err)
}

func TestRunWithoutCustomizationsCopiesContentVerbatim(t *testing.T) {
	sourceDir := initTemplateRepo(t, map[string]string{
		"README.md": "# {{PROJECT_NAME}}\n",
	})

	createCtx := newTestCtx(t, config.TemplateOpts{
		Name:       "plain",
		Repository: sourceDir,
	})

	report, err := Run(createCtx)
	require.NoError(t, err)
	assert.Empty(t, report.Substitution.Modified)

	content, err := os.ReadFile(filepath.Join(report.Path, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# {{PROJECT_NAME}}\n", string(content))
}

func TestRunCustomVariableFromCli(t *testing.T) {
	sourceDir := initTemplateRepo(t, map[string]string{
		"go.mod": "module {{MODULE_PATH}}\n",
	})

	createCtx := newTestCtx(t, config.TemplateOpts{
		Name:       "gomod",
		Repository: sourceDir,
		Files: []config.FileOpts{
			{
				Path: "go.mod",
				Replacements: []config.ReplacementOpts{
					{Placeholder: "{{MODULE_PATH}}", Value: "custom:module_path"},
				},
			},
		},
	})
	createCtx.VarsFromCli = []string{"module_path=example.com/widget"}

	report, err := Run(createCtx)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(report.Path, "go.mod"))
	require.NoError(t, err)
	assert.Equal(t, "module example.com/widget\n", string(content))
}

func TestRunFailureAfterMaterializeRollsBack(t *testing.T) {
	sourceDir := initTemplateRepo(t, map[string]string{
		"go.mod": "module {{MODULE_PATH}}\n",
	})

	cacheRoot := t.TempDir()
	reg, err := registry.New([]config.TemplateOpts{
		{
			Name:       "gomod",
			Repository: sourceDir,
			Files: []config.FileOpts{
				{
					Path: "go.mod",
					Replacements: []config.ReplacementOpts{
						{Placeholder: "{{MODULE_PATH}}", Value: "custom:module_path"},
					},
				},
			},
		},
	})
	require.NoError(t, err)

	createCtx := &create_ctx.CreateCtx{
		ProjectName:    "widget",
		TemplateName:   "gomod",
		WorkDir:        t.TempDir(),
		DestinationDir: t.TempDir(),
		CliOpts: &config.CliOpts{
			Defaults: &config.DefaultsOpts{
				AuthorName:  "Jane Doe",
				AuthorEmail: "jane@example.com",
			},
		},
		Registry: reg,
		Cache:    templatecache.New(cacheRoot, fetcher.NewGitFetcher()),
	}

	stagedBefore, err := filepath.Glob(filepath.Join(os.TempDir(), "widget-*"))
	require.NoError(t, err)

	// No module_path value is supplied, so the pipeline fails during
	// substitution, after the template tree was already staged.
	_, err = Run(createCtx)
	require.Error(t, err)
	var undefined substitute.UndefinedVariableError
	require.ErrorAs(t, err, &undefined)

	// The failure leaves no project directory behind.
	assert.NoDirExists(t, filepath.Join(createCtx.DestinationDir, "widget"))

	// The staging directory was rolled back.
	stagedAfter, err := filepath.Glob(filepath.Join(os.TempDir(), "widget-*"))
	require.NoError(t, err)
	assert.Equal(t, stagedBefore, stagedAfter)

	// The cache keeps exactly the fetched template entry, no temp leftovers.
	entries, err := os.ReadDir(cacheRoot)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "gomod", entries[0].Name())
}

func TestRunExistingTargetWithoutForce(t *testing.T) {
	sourceDir := initTemplateRepo(t, map[string]string{
		"README.md": "template\n",
	})

	createCtx := newTestCtx(t, config.TemplateOpts{
		Name:       "plain",
		Repository: sourceDir,
	})

	projectDir := filepath.Join(createCtx.DestinationDir, "widget")
	require.NoError(t, os.MkdirAll(projectDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "precious"),
		[]byte("keep me"), 0o644))

	_, err := Run(createCtx)
	require.Error(t, err)
	var exists steps.TargetExistsError
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, projectDir, exists.Path)

	// The existing directory stays untouched.
	content, err := os.ReadFile(filepath.Join(projectDir, "precious"))
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(content))
	assert.NoFileExists(t, filepath.Join(projectDir, "README.md"))
}

func TestRunForceReplacesExistingTarget(t *testing.T) {
	sourceDir := initTemplateRepo(t, map[string]string{
		"README.md": "template\n",
	})

	createCtx := newTestCtx(t, config.TemplateOpts{
		Name:       "plain",
		Repository: sourceDir,
	})
	createCtx.ForceMode = true

	projectDir := filepath.Join(createCtx.DestinationDir, "widget")
	require.NoError(t, os.MkdirAll(projectDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "stale"),
		[]byte("old"), 0o644))

	report, err := Run(createCtx)
	require.NoError(t, err)
	assert.Equal(t, projectDir, report.Path)

	assert.NoFileExists(t, filepath.Join(projectDir, "stale"))
	assert.FileExists(t, filepath.Join(projectDir, "README.md"))
}

func TestRunUnknownTemplate(t *testing.T) {
	createCtx := newTestCtx(t, config.TemplateOpts{
		Name:       "plain",
		Repository: t.TempDir(),
	})
	createCtx.TemplateName = "missing"

	_, err := Run(createCtx)
	require.Error(t, err)
	var notFound registry.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.Identifier)
}

func TestRunInvalidVarSpec(t *testing.T) {
	sourceDir := initTemplateRepo(t, map[string]string{
		"README.md": "template\n",
	})

	createCtx := newTestCtx(t, config.TemplateOpts{
		Name:       "plain",
		Repository: sourceDir,
	})
	createCtx.VarsFromCli = []string{"no-equals-sign"}

	_, err := Run(createCtx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name=value")
}

func TestFillCtx(t *testing.T) {
	cliOpts := &config.CliOpts{
		Defaults: &config.DefaultsOpts{Directory: "/srv/projects"},
	}

	createCtx := &create_ctx.CreateCtx{}
	require.NoError(t, FillCtx(cliOpts, createCtx, []string{"go", "widget"}))
	assert.Equal(t, "go", createCtx.TemplateName)
	assert.Equal(t, "widget", createCtx.ProjectName)
	assert.Equal(t, "/srv/projects", createCtx.DestinationDir)
	assert.NotEmpty(t, createCtx.WorkDir)

	err := FillCtx(cliOpts, &create_ctx.CreateCtx{}, []string{"go"})
	require.Error(t, err)
}

func TestFillCtxExplicitDestinationWins(t *testing.T) {
	cliOpts := &config.CliOpts{
		Defaults: &config.DefaultsOpts{Directory: "/srv/projects"},
	}

	createCtx := &create_ctx.CreateCtx{DestinationDir: "/tmp/elsewhere"}
	require.NoError(t, FillCtx(cliOpts, createCtx, []string{"go", "widget"}))
	assert.Equal(t, "/tmp/elsewhere", createCtx.DestinationDir)
}
