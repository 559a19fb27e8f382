// Package binder decodes HTTP request bodies into typed values for use with
// handler.Wrap.
//
// JSON returns a strict application/json binder: the content type is checked,
// the body is size limited (DefaultMaxJSONSize unless WithMaxSize is given),
// unknown fields and trailing data are rejected. Errors wrap the package
// sentinels so callers can map them to HTTP responses with errors.Is.
package binder
