package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/regwizard/modules/signup"
	"github.com/dmitrymomot/regwizard/pkg/config"
	"github.com/dmitrymomot/regwizard/pkg/httpserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the reference registration backend",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadAppConfig()
		if err != nil {
			return err
		}

		var httpCfg httpserver.Config
		if err := config.Load(&httpCfg); err != nil {
			return fmt.Errorf("load http config: %w", err)
		}
		if cmd.Flags().Changed("addr") {
			httpCfg.Addr, _ = cmd.Flags().GetString("addr")
		}

		log, err := newLogger(cfg, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		store := signup.NewMemoryStore()
		svc := signup.NewService(store, signup.WithLogger(log))

		srv := httpserver.New(httpCfg, httpserver.WithLogger(log))
		return srv.Run(cmd.Context(), signup.Router(svc, store, log))
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from HTTP_ADDR or :8080)")
}
