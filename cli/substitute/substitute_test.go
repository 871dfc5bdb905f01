package substitute

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/forge-cli/forge/cli/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func templateWithReadme(replacements ...registry.Replacement) registry.Template {
	return registry.Template{
		Identifier:     "t1",
		SourceLocation: "https://example.com/t1.git",
		Customizations: []registry.FileCustomization{
			{Path: "README.md", Replacements: replacements},
		},
	}
}

func TestApplyReplacesAllOccurrences(t *testing.T) {
	projectDir := t.TempDir()
	readmePath := filepath.Join(projectDir, "README.md")
	require.NoError(t, os.WriteFile(readmePath,
		[]byte("Hello {{NAME}}!\nWelcome to {{NAME}}.\n"), 0o644))

	template := templateWithReadme(
		registry.Replacement{Placeholder: "{{NAME}}", Kind: registry.ProjectName},
	)
	values := Values{ProjectName: "widget"}

	report, err := Apply(projectDir, template, values)
	require.NoError(t, err)
	assert.Equal(t, []string{"README.md"}, report.Modified)
	assert.Empty(t, report.Skipped)

	content, err := os.ReadFile(readmePath)
	require.NoError(t, err)
	assert.Equal(t, "Hello widget!\nWelcome to widget.\n", string(content))
	assert.NotContains(t, string(content), "{{NAME}}")
}

func TestApplyPreservesFileMode(t *testing.T) {
	projectDir := t.TempDir()
	scriptPath := filepath.Join(projectDir, "run.sh")
	require.NoError(t, os.WriteFile(scriptPath, []byte("echo {{NAME}}\n"), 0o755))

	template := registry.Template{
		Identifier:     "t1",
		SourceLocation: "https://example.com/t1.git",
		Customizations: []registry.FileCustomization{
			{
				Path: "run.sh",
				Replacements: []registry.Replacement{
					{Placeholder: "{{NAME}}", Kind: registry.ProjectName},
				},
			},
		},
	}

	_, err := Apply(projectDir, template, Values{ProjectName: "widget"})
	require.NoError(t, err)

	fileInfo, err := os.Stat(scriptPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), fileInfo.Mode().Perm())
}

func TestApplySkipsAbsentFile(t *testing.T) {
	projectDir := t.TempDir()

	template := templateWithReadme(
		registry.Replacement{Placeholder: "{{NAME}}", Kind: registry.ProjectName},
	)

	report, err := Apply(projectDir, template, Values{ProjectName: "widget"})
	require.NoError(t, err)
	assert.Empty(t, report.Modified)
	assert.Equal(t, []string{"README.md"}, report.Skipped)
}

func TestApplyUndefinedCustomVariable(t *testing.T) {
	projectDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "README.md"),
		[]byte("module {{MODULE}}"), 0o644))

	template := templateWithReadme(
		registry.Replacement{
			Placeholder: "{{MODULE}}",
			Kind:        registry.Custom,
			Name:        "module_path",
		},
	)

	_, err := Apply(projectDir, template, Values{ProjectName: "widget"})
	require.Error(t, err)
	var undefined UndefinedVariableError
	require.ErrorAs(t, err, &undefined)
	assert.Equal(t, "module_path", undefined.Name)
	assert.Equal(t, "README.md", undefined.Path)
}

func TestApplyCustomVariable(t *testing.T) {
	projectDir := t.TempDir()
	readmePath := filepath.Join(projectDir, "README.md")
	require.NoError(t, os.WriteFile(readmePath, []byte("module {{MODULE}}"), 0o644))

	template := templateWithReadme(
		registry.Replacement{
			Placeholder: "{{MODULE}}",
			Kind:        registry.Custom,
			Name:        "module_path",
		},
	)
	values := Values{Custom: map[string]string{"module_path": "example.com/widget"}}

	_, err := Apply(projectDir, template, values)
	require.NoError(t, err)

	content, err := os.ReadFile(readmePath)
	require.NoError(t, err)
	assert.Equal(t, "module example.com/widget", string(content))
}

func TestApplyBinaryTargetIsError(t *testing.T) {
	projectDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "README.md"),
		[]byte{0x89, 'P', 'N', 'G', 0x00, 0x1a}, 0o644))

	template := templateWithReadme(
		registry.Replacement{Placeholder: "{{NAME}}", Kind: registry.ProjectName},
	)

	_, err := Apply(projectDir, template, Values{ProjectName: "widget"})
	require.Error(t, err)
	var nonText NonTextTargetError
	require.ErrorAs(t, err, &nonText)
	assert.Equal(t, "README.md", nonText.Path)
}

func TestApplyValueEqualsPlaceholder(t *testing.T) {
	projectDir := t.TempDir()
	readmePath := filepath.Join(projectDir, "README.md")
	require.NoError(t, os.WriteFile(readmePath, []byte("name: widget"), 0o644))

	template := templateWithReadme(
		registry.Replacement{Placeholder: "widget", Kind: registry.ProjectName},
	)

	report, err := Apply(projectDir, template, Values{ProjectName: "widget"})
	require.NoError(t, err)
	assert.Equal(t, []string{"README.md"}, report.Modified)

	content, err := os.ReadFile(readmePath)
	require.NoError(t, err)
	assert.Equal(t, "name: widget", string(content))
}

func TestIsBinary(t *testing.T) {
	assert.False(t, isBinary([]byte("plain text")))
	assert.False(t, isBinary(nil))
	assert.True(t, isBinary([]byte{'a', 0x00, 'b'}))

	// NUL beyond the sniffed prefix does not flag the file.
	tail := append(bytes.Repeat([]byte{'a'}, 513), 0x00)
	assert.False(t, isBinary(tail))
}
