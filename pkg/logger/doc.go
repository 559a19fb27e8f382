// Package logger builds the structured slog loggers used across regwizard.
//
// New assembles a *slog.Logger from options: output format (text or JSON),
// level, static attributes and ContextExtractor callbacks that add values
// from the record's context, such as the request id. WithEnvironment picks a
// development, staging or production preset from APP_ENV; options given
// after it take precedence.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "regwizard"),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.LogAttrs(ctx, slog.LevelInfo, "step advanced", logger.Step(1))
//
// The attribute helpers (Step, Field, Fields, Status, SubmissionID,
// RequestID, Error, Duration) keep key names consistent between the wizard,
// the submission controller and the signup receiver. Error and Errors return
// an empty attribute for nil errors, so they can be passed unconditionally.
//
// Output defaults to stderr to keep stdout free for the interactive wizard.
// Discard returns a logger that drops everything, for tests.
package logger
