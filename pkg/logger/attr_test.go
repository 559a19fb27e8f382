package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regwizard/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	assert.Equal(t, slog.Int("step", 2), logger.Step(2))
	assert.Equal(t, slog.String("field", "zipCode"), logger.Field("zipCode"))
	assert.Equal(t, slog.String("status", "pending"), logger.Status("pending"))
	assert.Equal(t, slog.String("component", "wizard"), logger.Component("wizard"))
	assert.Equal(t, slog.String("event", "next"), logger.Event("next"))
	assert.Equal(t, slog.Duration("duration", time.Second), logger.Duration(time.Second))

	fields := logger.Fields("city", "zipCode")
	assert.Equal(t, "fields", fields.Key)
	assert.Equal(t, []string{"city", "zipCode"}, fields.Value.Any())
}

func TestSubmissionID(t *testing.T) {
	attr := logger.SubmissionID("abc")
	require.Equal(t, "submission_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())

	assert.True(t, logger.SubmissionID("").Equal(slog.Attr{}))
}
