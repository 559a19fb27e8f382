// Package config loads typed application settings from the environment.
//
// Settings are plain structs annotated with github.com/caarlos0/env tags.
// Load parses each struct type once and serves later calls from a cache, so
// packages can load the same settings independently. The ./.env file is
// read through github.com/joho/godotenv before the first parse; LoadEnv
// adds further files, e.g. from a --env-file flag.
//
//	type appConfig struct {
//		EndpointURL   string        `env:"REGWIZARD_ENDPOINT_URL"`
//		SubmitTimeout time.Duration `env:"REGWIZARD_SUBMIT_TIMEOUT" envDefault:"30s"`
//	}
//
//	if err := config.LoadEnv("staging.env"); err != nil {
//		return err
//	}
//	var cfg appConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Parse failures wrap ErrParsingConfig. Tests can clear the cache with
// ResetCache or re-read one type with ForceReload.
package config
