package config

// Config used to store all information from the
// forge.yaml configuration file.
type Config struct {
	CliConfig *CliOpts `mapstructure:"forge" yaml:"forge"`
}

// CliOpts stores information about Forge CLI configuration.
// Filled in when parsing the forge.yaml configuration file.
//
// forge.yaml file format:
// forge:
//   defaults:
//     author_name: string
//     author_email: string
//     directory: path
//   templates:
//     cache_dir: path
//   custom_templates:
//     - name: string
//       display_name: string
//       description: string
//       repository: url
//       files:
//         - path: relative/path
//           replacements:
//             - placeholder: string
//               value: project_name|author_name|author_email|current_date|custom:<name>

// DefaultsOpts stores default values used when creating a project.
type DefaultsOpts struct {
	// AuthorName is the default author name for substitutions.
	AuthorName string `mapstructure:"author_name" yaml:"author_name"`
	// AuthorEmail is the default author email for substitutions.
	AuthorEmail string `mapstructure:"author_email" yaml:"author_email"`
	// Directory is a default parent directory for created projects.
	Directory string `mapstructure:"directory" yaml:"directory"`
}

// TemplatesOpts stores template cache options.
type TemplatesOpts struct {
	// CacheDir overrides the directory template working copies are kept in.
	CacheDir string `mapstructure:"cache_dir" yaml:"cache_dir"`
}

// ReplacementOpts describes a single placeholder replacement rule.
type ReplacementOpts struct {
	// Placeholder is a literal token to replace.
	Placeholder string `mapstructure:"placeholder" yaml:"placeholder"`
	// Value names what the placeholder resolves to. One of: project_name,
	// author_name, author_email, current_date or custom:<name>.
	Value string `mapstructure:"value" yaml:"value"`
}

// FileOpts declares a file to customize after materialization.
type FileOpts struct {
	// Path is a file path relative to the project root.
	Path string `mapstructure:"path" yaml:"path"`
	// Replacements to apply to the file.
	Replacements []ReplacementOpts `mapstructure:"replacements" yaml:"replacements"`
}

// TemplateOpts describes a user-defined template.
type TemplateOpts struct {
	// Name is the template identifier used for lookup.
	Name string `mapstructure:"name" yaml:"name"`
	// DisplayName is a human readable template name.
	DisplayName string `mapstructure:"display_name" yaml:"display_name"`
	// Description of the template.
	Description string `mapstructure:"description" yaml:"description"`
	// Repository is a URL or path of the template source repository.
	Repository string `mapstructure:"repository" yaml:"repository"`
	// Files lists customization rules applied to the created project.
	Files []FileOpts `mapstructure:"files" yaml:"files"`
}

// CliOpts stores Forge CLI options.
type CliOpts struct {
	// Defaults used when creating a project.
	Defaults *DefaultsOpts `mapstructure:"defaults" yaml:"defaults"`
	// Templates stores template cache options.
	Templates *TemplatesOpts `mapstructure:"templates" yaml:"templates"`
	// CustomTemplates is a list of user-defined templates merged
	// into the registry.
	CustomTemplates []TemplateOpts `mapstructure:"custom_templates" yaml:"custom_templates"`
}
