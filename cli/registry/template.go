package registry

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValueKind is the semantic category a placeholder resolves to.
type ValueKind int

const (
	// ProjectName resolves to the name of the created project.
	ProjectName ValueKind = iota
	// AuthorName resolves to the author name.
	AuthorName
	// AuthorEmail resolves to the author email.
	AuthorEmail
	// CurrentDate resolves to the creation date.
	CurrentDate
	// Custom resolves to a named value supplied by the caller.
	Custom
)

// String returns the configuration spelling of a value kind.
func (kind ValueKind) String() string {
	switch kind {
	case ProjectName:
		return "project_name"
	case AuthorName:
		return "author_name"
	case AuthorEmail:
		return "author_email"
	case CurrentDate:
		return "current_date"
	case Custom:
		return "custom"
	}
	return "unknown"
}

// customKindPrefix prefixes named custom kinds in configuration files.
const customKindPrefix = "custom:"

// ParseValueKind parses a value kind spelling used in configuration files.
// For custom kinds the name after "custom:" is returned as well.
func ParseValueKind(spec string) (ValueKind, string, error) {
	switch spec {
	case "project_name":
		return ProjectName, "", nil
	case "author_name":
		return AuthorName, "", nil
	case "author_email":
		return AuthorEmail, "", nil
	case "current_date":
		return CurrentDate, "", nil
	}

	if strings.HasPrefix(spec, customKindPrefix) {
		name := strings.TrimPrefix(spec, customKindPrefix)
		if name == "" {
			return Custom, "", fmt.Errorf("custom value kind requires a name: %q", spec)
		}
		return Custom, name, nil
	}

	return Custom, "", fmt.Errorf("unknown value kind %q", spec)
}

// Replacement maps a literal placeholder token to a value kind.
type Replacement struct {
	// Placeholder is a literal token replaced in the file.
	Placeholder string
	// Kind of the value the placeholder resolves to.
	Kind ValueKind
	// Name of the value for Custom kind, empty otherwise.
	Name string
}

// FileCustomization declares which file receives substitution and which
// placeholders inside it map to which value kinds.
type FileCustomization struct {
	// Path of the file relative to the project root.
	Path string
	// Replacements applied to the file.
	Replacements []Replacement
}

// Template identifies a scaffolding source.
type Template struct {
	// Identifier is a unique template key used for lookup.
	Identifier string
	// DisplayName is a human readable template name.
	DisplayName string
	// Description of the template.
	Description string
	// SourceLocation is a URL or path of the template source repository.
	SourceLocation string
	// Customizations applied to the created project, in order.
	Customizations []FileCustomization
	// OverridesBuiltin is set when a custom template replaced a built-in one.
	OverridesBuiltin bool
}

// validateTemplate checks template fields that must hold for every
// registered template. Runs at registry build time so that bad definitions
// fail before any project creation starts.
func validateTemplate(t Template) error {
	if t.Identifier == "" {
		return fmt.Errorf("template identifier cannot be empty")
	}
	if t.SourceLocation == "" {
		return fmt.Errorf("template %q: source repository cannot be empty", t.Identifier)
	}

	for _, customization := range t.Customizations {
		if err := validateCustomization(customization); err != nil {
			return fmt.Errorf("template %q: %w", t.Identifier, err)
		}
	}

	return nil
}

// validateCustomization rejects paths escaping the project root and
// duplicate placeholders within one customization.
func validateCustomization(c FileCustomization) error {
	if c.Path == "" {
		return fmt.Errorf("customization path cannot be empty")
	}
	if filepath.IsAbs(c.Path) {
		return fmt.Errorf("customization path %q must be relative", c.Path)
	}

	cleaned := filepath.Clean(c.Path)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("customization path %q escapes the project root", c.Path)
	}

	seen := make(map[string]struct{}, len(c.Replacements))
	for _, replacement := range c.Replacements {
		if replacement.Placeholder == "" {
			return fmt.Errorf("customization %q: placeholder cannot be empty", c.Path)
		}
		if _, ok := seen[replacement.Placeholder]; ok {
			return fmt.Errorf("customization %q: duplicate placeholder %q",
				c.Path, replacement.Placeholder)
		}
		seen[replacement.Placeholder] = struct{}{}
	}

	return nil
}
