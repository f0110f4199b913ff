// Package cli builds the tagtint cobra command tree.
package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/tagtint/internal/version"
	"github.com/arthur-debert/tagtint/pkg/config"
	"github.com/arthur-debert/tagtint/pkg/errors"
	"github.com/arthur-debert/tagtint/pkg/logging"
	"github.com/arthur-debert/tagtint/pkg/markup"
	"github.com/arthur-debert/tagtint/pkg/topics"
)

// app carries the state shared by every command of one root
type app struct {
	verbosity  int
	configPath string
	noColor    bool

	cfg       *config.Config
	colors    *markup.ColorTable
	formatter *markup.Formatter
}

// setup loads configuration and initializes logging. Flags that were set on
// the command line override the file and environment.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("no-color") {
		overrides["output.no_color"] = a.noColor
	}

	cfg, err := config.Load(config.LoadOptions{Path: a.configPath, Overrides: overrides})
	if err != nil {
		logging.SetupLogger(a.verbosity)
		return err
	}
	a.cfg = cfg

	verbosity := a.verbosity
	if verbosity == 0 {
		verbosity = cfg.Log.Verbosity
	}
	logging.SetupLogger(verbosity)
	logging.LogCommand(cmd.CommandPath(), args)
	logger := logging.WithFields(map[string]interface{}{
		"config":   a.configPath,
		"format":   cfg.Output.Format,
		"palettes": len(cfg.Palette.Builtin) + len(cfg.Palette.Files),
	})
	logger.Debug().Msg("Configuration loaded")
	return nil
}

// colorTable builds the configured color table once per run
func (a *app) colorTable() (*markup.ColorTable, error) {
	if a.colors != nil {
		return a.colors, nil
	}
	table, err := a.cfg.ColorTable()
	if err != nil {
		return nil, errors.Wrap(err, errors.GetErrorCode(err), MsgErrColorTable)
	}
	a.colors = table
	return table, nil
}

func (a *app) markupFormatter() (*markup.Formatter, error) {
	if a.formatter != nil {
		return a.formatter, nil
	}
	table, err := a.colorTable()
	if err != nil {
		return nil, err
	}
	a.formatter = markup.NewFormatter(
		markup.WithColorTable(table),
		markup.WithLogger(logging.GetLogger("markup")),
	)
	return a.formatter, nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "tagtint",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRenderCmd(a))
	rootCmd.AddCommand(newStripCmd(a))
	rootCmd.AddCommand(newColorsCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	renderer := topics.NewGlamourRenderer()
	tm, err := topics.Initialize(rootCmd, topics.Embedded(), topics.Options{Renderer: renderer})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return rootCmd
	}
	rootCmd.AddCommand(newTopicsCmd(tm))

	return rootCmd
}
