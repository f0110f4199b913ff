package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/tagtint/pkg/errors"
	"github.com/arthur-debert/tagtint/pkg/logging"
	"github.com/arthur-debert/tagtint/pkg/markup"
	"github.com/arthur-debert/tagtint/pkg/palette"
)

func newColorsCmd(a *app) *cobra.Command {
	var export string

	cmd := &cobra.Command{
		Use:     "colors",
		GroupID: "core",
		Short:   MsgColorsShort,
		Long:    MsgColorsLong,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.colorTable()
			if err != nil {
				return err
			}
			if export != "" {
				return exportColors(cmd.OutOrStdout(), table, export)
			}

			out := cmd.OutOrStdout()
			if out == os.Stdout && stdoutIsTerminal() && !a.cfg.Output.NoColor {
				return writeColorTable(out, table)
			}
			return writeColorList(out, table)
		},
	}

	cmd.Flags().StringVarP(&export, "export", "o", "", MsgFlagExport)
	return cmd
}

func exportColors(out io.Writer, table *markup.ColorTable, path string) error {
	logger := logging.GetLogger("cli.colors")

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot create %s", path).
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	p := palette.FromTable("tagtint", table)
	if err := p.WriteTOML(f); err != nil {
		return err
	}
	logger.Info().Str("path", path).Int("colors", len(p.Colors)).Msg("Exported color table")

	_, err = fmt.Fprintf(out, MsgColorExported, len(p.Colors), path)
	return err
}

// writeColorList prints one "name  #rrggbb" line per color
func writeColorList(out io.Writer, table *markup.ColorTable) error {
	names := table.Names()
	if len(names) == 0 {
		_, err := fmt.Fprintln(out, MsgNoColors)
		return err
	}

	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}
	for _, name := range names {
		c, _ := table.Lookup(name)
		if _, err := fmt.Fprintf(out, "%-*s  %s\n", width, name, c.Hex()); err != nil {
			return err
		}
	}
	return nil
}

// writeColorTable prints a pterm table with a swatch per color
func writeColorTable(out io.Writer, table *markup.ColorTable) error {
	data := pterm.TableData{{"Name", "Hex", "RGB", "Swatch"}}
	for _, name := range table.Names() {
		c, _ := table.Lookup(name)
		data = append(data, []string{
			name,
			c.Hex(),
			fmt.Sprintf("(%d,%d,%d)", c.R, c.G, c.B),
			pterm.NewRGB(c.R, c.G, c.B).Sprint(strings.Repeat("█", 6)),
		})
	}

	rendered, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to render color table")
	}
	_, err = fmt.Fprintln(out, rendered)
	return err
}
