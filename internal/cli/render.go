package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/tagtint/pkg/errors"
	"github.com/arthur-debert/tagtint/pkg/logging"
	"github.com/arthur-debert/tagtint/pkg/ui"
)

// readInput joins args with spaces, or reads stdin when there are none or
// the only argument is "-". One trailing line break is dropped.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileRead, MsgErrReadInput)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// resolveFormat applies --no-color and decides whether terminal output must
// force color because the user asked for it by name.
func resolveFormat(f ui.Format, noColor bool) (ui.Format, bool) {
	switch {
	case noColor && (f == ui.FormatAuto || f == ui.FormatTerminal):
		return ui.FormatText, false
	case f == ui.FormatTerminal:
		return f, true
	default:
		return f, false
	}
}

func newRenderCmd(a *app) *cobra.Command {
	var (
		format string
		width  int
	)

	cmd := &cobra.Command{
		Use:     "render [text...]",
		Aliases: []string{"r"},
		GroupID: "core",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.render")

			if !cmd.Flags().Changed("format") {
				format = a.cfg.Output.Format
			}
			if !cmd.Flags().Changed("width") {
				width = a.cfg.Output.Width
			}
			if width < 0 {
				return errors.Newf(errors.ErrInvalidInput, "width must not be negative, got %d", width)
			}

			parsed, err := ui.ParseFormat(format)
			if err != nil {
				return errors.Wrap(err, errors.ErrFormatUnknown, "invalid output format").
					WithDetail("format", format)
			}
			resolved, force := resolveFormat(parsed, a.cfg.Output.NoColor)

			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			formatter, err := a.markupFormatter()
			if err != nil {
				return err
			}

			renderer, err := ui.NewRenderer(resolved, cmd.OutOrStdout(), ui.Options{Width: width, ForceColor: force})
			if err != nil {
				return errors.Wrap(err, errors.ErrFormatUnknown, "cannot create renderer")
			}

			done := logging.LogOperationStart(logger, "render")
			defer done()
			logger.Debug().
				Str("format", resolved.String()).
				Int("width", width).
				Int("length", len(input)).
				Msg("Rendering markup")

			if err := renderer.RenderResult(formatter.Format(input)); err != nil {
				return errors.Wrap(err, errors.ErrRender, "failed to write output")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", MsgFlagFormat)
	cmd.Flags().IntVarP(&width, "width", "w", 0, MsgFlagWidth)
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return ui.FormatNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newStripCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "strip [text...]",
		GroupID: "core",
		Short:   MsgStripShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			formatter, err := a.markupFormatter()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatter.Format(input).Plain)
			return err
		},
	}
}
