package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/eringen/pagesblog"
)

func newServeCmd() *cobra.Command {
	var cfgPath, addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the blog server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := pagesblog.LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app := pagesblog.New(cfg)
			app.Echo.Logger.Infof("listening on %s", cfg.Addr)
			return app.Start(ctx)
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", pagesblog.EnvOr("PAGESBLOG_CONFIG", "pagesblog.toml"), "path to TOML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}
