package gcroots

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Inventory and prune Nix store GC roots"
	MsgPrintShort      = "Print GC roots grouped into profiles"
	MsgDeleteShort     = "Delete GC root symlinks"
	MsgConfigShort     = "Print or write the configuration file"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics, or the topic named by the argument."
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"

	// Status messages
	MsgConfigWritten = "Wrote configuration to %s\n"

	// Error messages
	MsgErrNoCommand       = "no command specified"
	MsgErrLoadConfig      = "failed to load configuration: %w"
	MsgErrInventory       = "failed to list GC roots: %w"
	MsgErrSelect          = "failed to select roots: %w"
	MsgErrRender          = "failed to write output: %w"
	MsgErrWriteConfig     = "failed to write configuration: %w"
	MsgErrNothingSelected = "nothing selected: name roots or use --inactive, --keep or --standalone"
	MsgErrNegativeKeep    = "--keep must not be negative"
	MsgErrDeleteFailed    = "%d root(s) could not be deleted"
	MsgErrUnknownTopic    = "unknown topic %q (see 'gcroots topics')"

	// Flag descriptions
	MsgFlagVerbose       = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig        = "Configuration file (default $XDG_CONFIG_HOME/gcroots/config.toml)"
	MsgFlagPlain         = "Disable colors and decorations"
	MsgFlagFormat        = "Output format (text, json, yaml)"
	MsgFlagFrom          = "Read the root listing from a file ('-' for stdin) instead of running the listing command"
	MsgFlagShowDeletable = "Mark roots that may be deleted"
	MsgFlagInactive      = "Select every inactive generation"
	MsgFlagKeep          = "Select inactive generations except the N newest generations of each profile"
	MsgFlagStandalone    = "Select every standalone root except profile links"
	MsgFlagProfile       = "Only select generations of this profile"
	MsgFlagDryRun        = "Preview deletions without removing anything"
	MsgFlagWrite         = "Write the configuration file instead of printing it"
	MsgFlagForce         = "Overwrite an existing configuration file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/print-long.txt
	msgPrintLongRaw string
	MsgPrintLong    = strings.TrimSpace(msgPrintLongRaw)

	//go:embed msgs/print-example.txt
	msgPrintExampleRaw string
	MsgPrintExample    = strings.TrimRight(msgPrintExampleRaw, "\n")

	//go:embed msgs/delete-long.txt
	msgDeleteLongRaw string
	MsgDeleteLong    = strings.TrimSpace(msgDeleteLongRaw)

	//go:embed msgs/delete-example.txt
	msgDeleteExampleRaw string
	MsgDeleteExample    = strings.TrimRight(msgDeleteExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
