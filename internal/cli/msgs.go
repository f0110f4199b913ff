package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Render bracketed style tags for terminals, text, JSON, XML and IRC"
	MsgRenderShort     = "Format markup and write it in an output format"
	MsgStripShort      = "Print markup with every tag removed"
	MsgColorsShort     = "List the resolved color table"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics, or show one by name."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Write a man page to standard output"

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default $XDG_CONFIG_HOME/tagtint/config.toml)"
	MsgFlagNoColor = "Disable colors; auto and term output fall back to text"
	MsgFlagFormat  = "Output format: auto, term, text, json, xml, irc"
	MsgFlagWidth   = "Wrap output at this column (0 disables wrapping)"
	MsgFlagExport  = "Write the color table as a TOML palette to this file"

	MsgNoColors      = "No colors defined."
	MsgColorExported = "Wrote %d colors to %s\n"

	MsgErrReadInput  = "failed to read input"
	MsgErrLoadConfig = "failed to load configuration"
	MsgErrColorTable = "failed to build color table"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/colors-long.txt
	msgColorsLongRaw string
	MsgColorsLong    = strings.TrimSpace(msgColorsLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
