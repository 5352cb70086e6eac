package logger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// GormLogger forwards GORM's query log into zerolog.
type GormLogger struct {
	Logger        zerolog.Logger
	Level         gormlogger.LogLevel
	SlowThreshold time.Duration
}

func NewGormLogger(l zerolog.Logger) *GormLogger {
	return &GormLogger{
		Logger:        l,
		Level:         gormlogger.Warn,
		SlowThreshold: defaultSlowQueryThreshold,
	}
}

func (g *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *g
	clone.Level = level
	return &clone
}

func (g *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if g.Level >= gormlogger.Info {
		g.Logger.Info().Msg(fmt.Sprintf(msg, data...))
	}
}

func (g *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if g.Level >= gormlogger.Warn {
		g.Logger.Warn().Msg(fmt.Sprintf(msg, data...))
	}
}

func (g *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if g.Level >= gormlogger.Error {
		g.Logger.Error().Msg(fmt.Sprintf(msg, data...))
	}
}

// Trace logs failed queries at error level, slow ones at warn level and the
// rest at debug level. Record-not-found is a normal lookup miss, not an error.
func (g *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.Level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && g.Level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		g.Logger.Error().Err(err).Str("query", sql).Int64("rows", rows).Dur("duration_ms", elapsed).Msg("query_failed")
	case g.SlowThreshold > 0 && elapsed > g.SlowThreshold && g.Level >= gormlogger.Warn:
		g.Logger.Warn().Str("query", sql).Int64("rows", rows).Dur("duration_ms", elapsed).Msg("slow_query")
	case g.Level >= gormlogger.Info:
		g.Logger.Debug().Str("query", sql).Int64("rows", rows).Dur("duration_ms", elapsed).Msg("query_executed")
	}
}
