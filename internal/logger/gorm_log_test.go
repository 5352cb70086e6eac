package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newBufferedGormLogger() (*GormLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewGormLogger(zerolog.New(buf)), buf
}

func TestGormLoggerTraceError(t *testing.T) {
	l, buf := newBufferedGormLogger()

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return `SELECT * FROM "users"`, 0
	}, errors.New("connection refused"))

	assert.Contains(t, buf.String(), "query_failed")
	assert.Contains(t, buf.String(), "connection refused")
}

func TestGormLoggerTraceIgnoresRecordNotFound(t *testing.T) {
	l, buf := newBufferedGormLogger()

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return `SELECT * FROM "users" WHERE id = 'x'`, 0
	}, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormLoggerTraceSlowQuery(t *testing.T) {
	l, buf := newBufferedGormLogger()
	l.SlowThreshold = time.Millisecond

	l.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
		return `SELECT * FROM "exercises"`, 3
	}, nil)

	assert.Contains(t, buf.String(), "slow_query")
}

func TestGormLoggerLogModeSilent(t *testing.T) {
	l, buf := newBufferedGormLogger()
	silent := l.LogMode(gormlogger.Silent)

	silent.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT 1", 1
	}, errors.New("boom"))
	silent.Error(context.Background(), "failed: %s", "boom")

	assert.Empty(t, buf.String())
	assert.Equal(t, gormlogger.Warn, l.Level)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLogLevel("DEBUG", zerolog.InfoLevel))
	assert.Equal(t, zerolog.ErrorLevel, parseLogLevel("error", zerolog.InfoLevel))
	assert.Equal(t, zerolog.InfoLevel, parseLogLevel("verbose", zerolog.InfoLevel))
}
