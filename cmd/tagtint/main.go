package main

import (
	"os"

	"github.com/arthur-debert/tagtint/internal/cli"
	"github.com/arthur-debert/tagtint/pkg/ui"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if r, rerr := ui.NewRenderer(ui.FormatAuto, os.Stderr, ui.Options{}); rerr == nil {
			_ = r.RenderError(err)
		}
		os.Exit(1)
	}
}
