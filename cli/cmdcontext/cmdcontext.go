// Package cmdcontext provides contexts for commands.
package cmdcontext

// CmdCtx is a context for commands.
type CmdCtx struct {
	// Cli - CLI context. Contains flags passed when starting
	// Forge CLI.
	Cli CliCtx
	// CommandName contains name of the command.
	CommandName string
}

// CliCtx - CLI context. Contains flags passed when starting Forge CLI.
type CliCtx struct {
	// Path to forge configuration file.
	ConfigPath string
	// Verbose logging flag.
	Verbose bool
}
