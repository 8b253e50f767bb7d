package gormstore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"crm/config"
	deliverycontext "crm/internal/delivery/context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

type pollQueryKey struct{}

// withPollQuery marks ctx as belonging to a live-query refresh. Those run
// every poll interval, so only their failures and slow runs are logged.
func withPollQuery(ctx context.Context) context.Context {
	return context.WithValue(ctx, pollQueryKey{}, true)
}

func isPollQuery(ctx context.Context) bool {
	poll, _ := ctx.Value(pollQueryKey{}).(bool)

	return poll
}

// storeLogger routes GORM output to slog, preferring the request logger on ctx.
type storeLogger struct {
	base   *slog.Logger
	driver string
	level  logger.LogLevel
	slow   time.Duration
}

func newGormSlogLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg.Env.Debug {
		level = logger.Info
	}

	return &storeLogger{
		base:   base,
		driver: cfg.Store.Driver,
		level:  level,
		slow:   slowQueryThreshold,
	}
}

func (l *storeLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *storeLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *storeLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *storeLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *storeLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold {
		return
	}

	l.from(ctx).LogAttrs(ctx, level, "Store message", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed and slow statements, and every other statement in debug
// mode unless it is a poll refresh. Missing rows are not failures here.
func (l *storeLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.from(ctx).LogAttrs(ctx, slog.LevelError, "Store query failed",
			append(l.statement(fc, elapsed), slog.String("error", err.Error()))...)

	case elapsed > l.slow && l.level >= logger.Warn:
		l.from(ctx).LogAttrs(ctx, slog.LevelWarn, "Store query slow",
			append(l.statement(fc, elapsed), slog.Duration("threshold", l.slow))...)

	case l.level >= logger.Info && !isPollQuery(ctx):
		l.from(ctx).LogAttrs(ctx, slog.LevelDebug, "Store query", l.statement(fc, elapsed)...)
	}
}

func (l *storeLogger) statement(fc func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := fc()

	return []slog.Attr{
		slog.String("driver", l.driver),
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}

func (l *storeLogger) from(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}
