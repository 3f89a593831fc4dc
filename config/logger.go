package config

import (
	"github.com/TheZeroSlave/zapsentry"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger production logger, or development logger in debug mode.
// Error level entries are forwarded to Sentry if sentryDsn is set
func NewLogger(debug bool, sentryDsn string) (logger *zap.Logger, err error) {
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil || sentryDsn == "" {
		return
	}
	if err = sentry.Init(sentry.ClientOptions{Dsn: sentryDsn, Debug: debug}); err != nil {
		return nil, err
	}
	core, err := zapsentry.NewCore(zapsentry.Configuration{
		Level: zapcore.ErrorLevel,
		Tags:  map[string]string{"component": "thumbor"},
	}, zapsentry.NewSentryClientFromClient(sentry.CurrentHub().Client()))
	if err != nil {
		return nil, err
	}
	return zapsentry.AttachCoreToLogger(core, logger), nil
}
