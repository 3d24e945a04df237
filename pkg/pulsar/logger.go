package pulsar

import (
	"context"
	"fmt"

	pulsarlog "github.com/apache/pulsar-client-go/pulsar/log"

	"github.com/klwxsrx/social-profile-service/pkg/log"
)

type logAdapter struct {
	logger log.Logger
}

// NewLogger routes the pulsar client logs to logger, tagged with the pulsar component.
func NewLogger(logger log.Logger) pulsarlog.Logger {
	return logAdapter{logger: logger.WithField("component", "pulsar")}
}

func (a logAdapter) SubLogger(fields pulsarlog.Fields) pulsarlog.Logger {
	return logAdapter{a.logger.With(log.Fields(fields))}
}

func (a logAdapter) WithFields(fields pulsarlog.Fields) pulsarlog.Entry {
	return logAdapter{a.logger.With(log.Fields(fields))}
}

func (a logAdapter) WithField(name string, value any) pulsarlog.Entry {
	return logAdapter{a.logger.WithField(name, value)}
}

func (a logAdapter) WithError(err error) pulsarlog.Entry {
	return logAdapter{a.logger.WithError(err)}
}

func (a logAdapter) Debug(args ...any) { a.log(log.LevelDebug, fmt.Sprint(args...)) }
func (a logAdapter) Info(args ...any)  { a.log(log.LevelInfo, fmt.Sprint(args...)) }
func (a logAdapter) Warn(args ...any)  { a.log(log.LevelWarn, fmt.Sprint(args...)) }
func (a logAdapter) Error(args ...any) { a.log(log.LevelError, fmt.Sprint(args...)) }

func (a logAdapter) Debugf(format string, args ...any) { a.log(log.LevelDebug, fmt.Sprintf(format, args...)) }
func (a logAdapter) Infof(format string, args ...any)  { a.log(log.LevelInfo, fmt.Sprintf(format, args...)) }
func (a logAdapter) Warnf(format string, args ...any)  { a.log(log.LevelWarn, fmt.Sprintf(format, args...)) }
func (a logAdapter) Errorf(format string, args ...any) { a.log(log.LevelError, fmt.Sprintf(format, args...)) }

// Client logs are not bound to a request.
func (a logAdapter) log(level log.Level, msg string) {
	a.logger.Log(context.Background(), level, msg)
}
