package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/regwizard/internal/console"
	"github.com/dmitrymomot/regwizard/pkg/notifications"
	"github.com/dmitrymomot/regwizard/svc/registration"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive registration wizard",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadAppConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("endpoint") {
			cfg.EndpointURL, _ = cmd.Flags().GetString("endpoint")
		}
		if cmd.Flags().Changed("summary-format") {
			cfg.SummaryFormat, _ = cmd.Flags().GetString("summary-format")
		}

		format, err := console.ParseFormat(cfg.SummaryFormat)
		if err != nil {
			return err
		}

		log, err := newLogger(cfg, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		deliverer := notifications.NewMultiDeliverer(log,
			notifications.NewWriterDeliverer(out),
			notifications.NewLogDeliverer(log),
		)

		wizard := registration.New(
			registration.WithSubmitter(newSubmitter(cfg, log)),
			registration.WithDeliverer(deliverer),
			registration.WithLogger(log),
			registration.WithSubmitTimeout(cfg.SubmitTimeout),
		)

		return console.NewRunner(wizard,
			console.WithDriver(console.NewSurveyDriver(out)),
			console.WithSummaryFormat(format),
			console.WithLogger(log),
		).Run(ctx)
	},
}

func init() {
	runCmd.Flags().String("endpoint", "", "registration endpoint URL (default: simulated endpoint)")
	runCmd.Flags().String("summary-format", "", "summary rendering: text or yaml")
}
