package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/searchadvisor/catalogue"
	"github.com/katalvlaran/searchadvisor/internal/render"
)

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every algorithm in the catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			renderer, err := render.New(a.cfg.Format)
			if err != nil {
				return err
			}
			// no requirement excludes anything
			rep := render.NewReport(catalogue.Default(), catalogue.Requirement{}, false)
			a.log.Debug("listing catalogue", "algorithms", len(rep.Result.Candidates))

			return renderer.Render(cmd.OutOrStdout(), rep)
		},
	}
}
