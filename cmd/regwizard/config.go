package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/regwizard/internal/console"
	"github.com/dmitrymomot/regwizard/pkg/config"
	"github.com/dmitrymomot/regwizard/pkg/logger"
	"github.com/dmitrymomot/regwizard/pkg/requestid"
	"github.com/dmitrymomot/regwizard/svc/registration"
)

const serviceName = "regwizard"

type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// Empty EndpointURL selects the simulated endpoint.
	EndpointURL    string        `env:"REGWIZARD_ENDPOINT_URL"`
	SubmitTimeout  time.Duration `env:"REGWIZARD_SUBMIT_TIMEOUT" envDefault:"30s"`
	SimulatedDelay time.Duration `env:"REGWIZARD_SIMULATED_DELAY" envDefault:"1500ms"`
	SummaryFormat  string        `env:"REGWIZARD_SUMMARY_FORMAT" envDefault:"text"`
}

func loadEnvFile(path string) error {
	if err := config.LoadEnv(path); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

func loadAppConfig() (appConfig, error) {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return appConfig{}, fmt.Errorf("load config: %w", err)
	}
	if _, err := console.ParseFormat(cfg.SummaryFormat); err != nil {
		return appConfig{}, err
	}
	return cfg, nil
}

// newLogger applies the environment preset first so explicit LOG_LEVEL and
// LOG_FORMAT win.
func newLogger(cfg appConfig, out io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	format := logger.Format(cfg.LogFormat)
	if format != logger.FormatJSON && format != logger.FormatText {
		return nil, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}

	return logger.New(
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(out),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	), nil
}

func newSubmitter(cfg appConfig, log *slog.Logger) registration.Submitter {
	if cfg.EndpointURL == "" {
		return registration.NewSimulatedSubmitter(cfg.SimulatedDelay)
	}
	return registration.NewHTTPSubmitter(cfg.EndpointURL, registration.WithHTTPLogger(log))
}
