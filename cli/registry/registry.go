// Package registry holds the set of known project templates:
// a fixed built-in set merged with user-defined templates from the
// configuration file.
package registry

import (
	"fmt"

	"github.com/apex/log"
	"github.com/forge-cli/forge/cli/config"
)

// builtinTemplates returns the fixed built-in template set in listing order.
func builtinTemplates() []Template {
	return []Template{
		{
			Identifier:     "go",
			DisplayName:    "go-starter",
			Description:    "Go project template with layout, linting and CI presets",
			SourceLocation: "https://github.com/forge-cli/go-starter",
			Customizations: []FileCustomization{
				{
					Path: "go.mod",
					Replacements: []Replacement{
						{Placeholder: "{{PROJECT_NAME}}", Kind: ProjectName},
					},
				},
				{
					Path: "README.md",
					Replacements: []Replacement{
						{Placeholder: "{{PROJECT_NAME}}", Kind: ProjectName},
						{Placeholder: "{{AUTHOR_NAME}}", Kind: AuthorName},
						{Placeholder: "{{CURRENT_DATE}}", Kind: CurrentDate},
					},
				},
			},
		},
		{
			Identifier:     "rust",
			DisplayName:    "rust-starter",
			Description:    "Rust project template with cargo layout and CI presets",
			SourceLocation: "https://github.com/forge-cli/rust-starter",
			Customizations: []FileCustomization{
				{
					Path: "Cargo.toml",
					Replacements: []Replacement{
						{Placeholder: "{{PROJECT_NAME}}", Kind: ProjectName},
						{Placeholder: "{{AUTHOR_NAME}}", Kind: AuthorName},
						{Placeholder: "{{AUTHOR_EMAIL}}", Kind: AuthorEmail},
					},
				},
				{
					Path: "README.md",
					Replacements: []Replacement{
						{Placeholder: "{{PROJECT_NAME}}", Kind: ProjectName},
						{Placeholder: "{{CURRENT_DATE}}", Kind: CurrentDate},
					},
				},
			},
		},
	}
}

// NotFoundError is returned when no template is registered for an identifier.
type NotFoundError struct {
	// Identifier is the requested template identifier.
	Identifier string
}

// Error returns error message.
func (e NotFoundError) Error() string {
	return fmt.Sprintf("template %q is not found, run `forge list` to see available templates",
		e.Identifier)
}

// Registry is the merged template set for one command invocation.
// Built-ins come first in a fixed order, then custom templates in
// registration order, so listing output is stable for the same config.
type Registry struct {
	templates map[string]Template
	order     []string
}

// New builds a registry from the built-in set merged with custom templates.
// A custom template whose identifier matches a built-in one overrides the
// built-in entry entirely. The override is logged and marked on the entry.
func New(customTemplates []config.TemplateOpts) (*Registry, error) {
	reg := &Registry{
		templates: make(map[string]Template),
	}

	for _, template := range builtinTemplates() {
		if err := reg.add(template); err != nil {
			return nil, err
		}
	}

	for _, opts := range customTemplates {
		template, err := fromConfig(opts)
		if err != nil {
			return nil, err
		}
		if err := reg.add(template); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

// add registers a template, replacing an existing entry with the same
// identifier.
func (reg *Registry) add(template Template) error {
	if err := validateTemplate(template); err != nil {
		return err
	}

	if _, exists := reg.templates[template.Identifier]; exists {
		log.Warnf("Custom template %q overrides the built-in one", template.Identifier)
		template.OverridesBuiltin = true
	} else {
		reg.order = append(reg.order, template.Identifier)
	}
	reg.templates[template.Identifier] = template

	return nil
}

// Resolve returns the template registered for the identifier.
func (reg *Registry) Resolve(identifier string) (Template, error) {
	template, ok := reg.templates[identifier]
	if !ok {
		return Template{}, NotFoundError{Identifier: identifier}
	}

	return template, nil
}

// List returns all registered templates in deterministic order:
// built-ins first in a fixed order, then custom templates in
// registration order.
func (reg *Registry) List() []Template {
	templates := make([]Template, 0, len(reg.order))
	for _, identifier := range reg.order {
		templates = append(templates, reg.templates[identifier])
	}

	return templates
}

// fromConfig converts a configuration template definition to a Template.
func fromConfig(opts config.TemplateOpts) (Template, error) {
	template := Template{
		Identifier:     opts.Name,
		DisplayName:    opts.DisplayName,
		Description:    opts.Description,
		SourceLocation: opts.Repository,
	}
	if template.DisplayName == "" {
		template.DisplayName = opts.Name
	}

	for _, file := range opts.Files {
		customization := FileCustomization{Path: file.Path}
		for _, replacement := range file.Replacements {
			kind, name, err := ParseValueKind(replacement.Value)
			if err != nil {
				return Template{}, fmt.Errorf("template %q, file %q: %w",
					opts.Name, file.Path, err)
			}
			customization.Replacements = append(customization.Replacements, Replacement{
				Placeholder: replacement.Placeholder,
				Kind:        kind,
				Name:        name,
			})
		}
		template.Customizations = append(template.Customizations, customization)
	}

	return template, nil
}
