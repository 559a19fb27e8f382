package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/regwizard/internal/console"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if errors.Is(err, console.ErrAborted) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "regwizard:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "regwizard",
	Short:         "Multi-step account registration wizard",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `regwizard collects personal details, an address and account credentials
over four steps, shows a masked summary and submits the registration.

Run "regwizard run" for the interactive wizard and "regwizard serve" for the
reference backend that accepts submissions over HTTP.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		if envFile != "" {
			if err := loadEnvFile(envFile); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("env-file", "", "load environment variables from this .env file first")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
}
