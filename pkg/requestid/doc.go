// Package requestid correlates log records of one registration across the
// submitting client and the receiving server.
//
// The submission controller stores its submission id in the call context
// with WithContext; the HTTP submitter forwards it with Propagate as the
// X-Request-ID header; the receiver's Middleware picks it up (or generates a
// fresh UUID when the header is missing or malformed) and echoes it back.
// LoggerExtractor plugs into logger.WithContextExtractors so every record
// logged with that context carries "request_id".
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
