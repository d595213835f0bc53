package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/pagesblog"
)

func newExportCmd() *cobra.Command {
	var cfgPath, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the API responses as static JSON files",
		Long:  "Export loads the catalog the same way serve does and writes articles.json plus one file per article.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := pagesblog.LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			cfg.LogLevel = "warn"
			app := pagesblog.New(cfg)
			if err := app.Setup(); err != nil {
				return err
			}
			if err := pagesblog.ExportJSON(app.Catalog, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d articles to %s\n", app.Catalog.Len(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", pagesblog.EnvOr("PAGESBLOG_CONFIG", "pagesblog.toml"), "path to TOML config file")
	cmd.Flags().StringVar(&out, "out", "dist", "output directory")
	return cmd
}
