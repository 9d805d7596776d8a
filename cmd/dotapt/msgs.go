package dotapt

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Install apt packages from dotfile task files"
	MsgRunShort        = "Run the tasks in a task file"
	MsgInstallShort    = "Install packages given on the command line"
	MsgDirectivesShort = "List registered directives"
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"

	// Status messages
	MsgVersionFormat = "dotapt version %s (commit %s, built %s)\n"
	MsgSourceArgs    = "command line"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrRunFailed   = "one or more directives failed"
	MsgErrBadFormat   = "invalid output format: %w"
	MsgErrSetup       = "failed to set up run: %w"
	MsgErrInstallArgs = "invalid package argument %q"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v DEBUG, -vv TRACE)"
	MsgFlagDryRun  = "Print commands instead of executing them"
	MsgFlagConfig  = "Path to a config file (toml or yaml)"
	MsgFlagFormat  = "Output format: auto, term, text or json"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/run-long.txt
	msgRunLongRaw string
	MsgRunLong    = strings.TrimSpace(msgRunLongRaw)

	//go:embed msgs/run-example.txt
	msgRunExampleRaw string
	MsgRunExample    = strings.TrimRight(msgRunExampleRaw, "\n")

	//go:embed msgs/install-long.txt
	msgInstallLongRaw string
	MsgInstallLong    = strings.TrimSpace(msgInstallLongRaw)

	//go:embed msgs/install-example.txt
	msgInstallExampleRaw string
	MsgInstallExample    = strings.TrimRight(msgInstallExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
