// Package substitute rewrites declared placeholder tokens in a
// materialized project tree with resolved values. Replacement is
// literal and case-sensitive, with no template language on top.
package substitute

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"github.com/forge-cli/forge/cli/registry"
)

// binarySniffLen is the number of leading bytes inspected for NUL when
// deciding whether a customization target is a text file.
const binarySniffLen = 512

// UndefinedVariableError is returned when a declared custom placeholder
// has no supplied value. A silently unreplaced token in a generated
// project would be a defect.
type UndefinedVariableError struct {
	// Name of the undefined custom value.
	Name string
	// Path of the file declaring the placeholder.
	Path string
}

// Error returns error message.
func (e UndefinedVariableError) Error() string {
	return fmt.Sprintf("no value supplied for custom variable %q declared for file %q, "+
		"pass it with --var %s=<value>", e.Name, e.Path, e.Name)
}

// NonTextTargetError is returned when a customization targets a file
// that is not text: the template author declared an expectation the
// content violates.
type NonTextTargetError struct {
	// Path of the binary file.
	Path string
}

// Error returns error message.
func (e NonTextTargetError) Error() string {
	return fmt.Sprintf("customization target %q is not a text file", e.Path)
}

// Values holds resolved values for every value kind, computed once
// before substitution starts.
type Values struct {
	ProjectName string
	AuthorName  string
	AuthorEmail string
	CurrentDate string
	// Custom maps named custom kinds to their values.
	Custom map[string]string
}

// Resolve returns the value the replacement resolves to.
func (v Values) Resolve(replacement registry.Replacement) (string, bool) {
	switch replacement.Kind {
	case registry.ProjectName:
		return v.ProjectName, true
	case registry.AuthorName:
		return v.AuthorName, true
	case registry.AuthorEmail:
		return v.AuthorEmail, true
	case registry.CurrentDate:
		return v.CurrentDate, true
	case registry.Custom:
		value, ok := v.Custom[replacement.Name]
		return value, ok
	}

	return "", false
}

// Report enumerates the outcome of one substitution pass.
type Report struct {
	// Modified lists customized files, relative to the project root.
	Modified []string
	// Skipped lists declared customization paths absent from the tree.
	Skipped []string
}

// Apply walks the template customizations and rewrites the declared
// placeholder tokens under targetDir. Declared-but-absent files are
// skipped and recorded in the report.
func Apply(targetDir string, template registry.Template, values Values) (Report, error) {
	var report Report

	for _, customization := range template.Customizations {
		filePath := filepath.Join(targetDir, customization.Path)

		fileInfo, err := os.Stat(filePath)
		if err != nil {
			// Templates may declare optional customizations for files
			// that vary by template instance.
			log.Debugf("Skipping customization of absent file %q", customization.Path)
			report.Skipped = append(report.Skipped, customization.Path)
			continue
		}

		content, err := os.ReadFile(filePath)
		if err != nil {
			return report, fmt.Errorf("failed to read %q: %w", filePath, err)
		}
		if isBinary(content) {
			return report, NonTextTargetError{Path: customization.Path}
		}

		text := string(content)
		for _, replacement := range customization.Replacements {
			value, ok := values.Resolve(replacement)
			if !ok {
				return report, UndefinedVariableError{
					Name: replacement.Name,
					Path: customization.Path,
				}
			}
			log.Debugf("Replacing %q with the %s value in %q",
				replacement.Placeholder, replacement.Kind, customization.Path)
			text = strings.ReplaceAll(text, replacement.Placeholder, value)
		}

		if err := os.WriteFile(filePath, []byte(text), fileInfo.Mode().Perm()); err != nil {
			return report, fmt.Errorf("failed to write %q: %w", filePath, err)
		}
		report.Modified = append(report.Modified, customization.Path)
	}

	return report, nil
}

// isBinary reports whether the content looks like binary data:
// a NUL byte within the leading bytes.
func isBinary(content []byte) bool {
	sniffLen := len(content)
	if sniffLen > binarySniffLen {
		sniffLen = binarySniffLen
	}

	for i := 0; i < sniffLen; i++ {
		if content[i] == 0 {
			return true
		}
	}

	return false
}
