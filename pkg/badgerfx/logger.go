package badgerfx

import (
	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// badgerLogger routes badger output to zap. Badger reports compactions and
// value log replay at info level, those are demoted to debug.
type badgerLogger struct {
	sugar *zap.SugaredLogger
}

func newLogger(l *zap.Logger) *badgerLogger {
	return &badgerLogger{
		sugar: l.WithOptions(zap.AddCallerSkip(1)).Sugar(),
	}
}

func (l *badgerLogger) Debugf(format string, a ...any) {
	l.sugar.Debugf(format, a...)
}

func (l *badgerLogger) Infof(format string, a ...any) {
	l.sugar.Debugf(format, a...)
}

func (l *badgerLogger) Warningf(format string, a ...any) {
	l.sugar.Warnf(format, a...)
}

func (l *badgerLogger) Errorf(format string, a ...any) {
	l.sugar.Errorf(format, a...)
}

var _ badger.Logger = (*badgerLogger)(nil)
