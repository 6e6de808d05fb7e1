package src

// Logger is satisfied by *zap.SugaredLogger.
type Logger interface {
	Debugf(template string, args ...any)
	Infof(template string, args ...any)
	Warnf(template string, args ...any)
	Errorf(template string, args ...any)
	Infow(msg string, keysAndValues ...any)
	Info(args ...any)
	Error(args ...any)
	Sync() error
}
