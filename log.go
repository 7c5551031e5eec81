package q931

import "github.com/sirupsen/logrus"

// LogLevel mirrors the fixed level enumeration of spec.md §6
// (none, emerg, alert, crit, error, warning, notice, info, debug). The
// trunk maps it onto logrus levels; logrus has no emerg/alert/crit/
// notice, so those fold onto the nearest logrus level the way a thin
// adapter over a richer syslog-style scale normally does.
type LogLevel int

const (
	LogNone LogLevel = iota
	LogEmerg
	LogAlert
	LogCrit
	LogError
	LogWarning
	LogNotice
	LogInfo
	LogDebug
)

func (l LogLevel) logrusLevel() logrus.Level {
	switch l {
	case LogNone:
		return logrus.PanicLevel
	case LogEmerg, LogAlert, LogCrit:
		return logrus.FatalLevel
	case LogError:
		return logrus.ErrorLevel
	case LogWarning:
		return logrus.WarnLevel
	case LogNotice, LogInfo:
		return logrus.InfoLevel
	case LogDebug:
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}

// newLogger returns a dedicated logrus.Logger for a trunk, set to the
// requested level. Trunks never share a package-level logger the way the
// teacher's package-global _lg did (define.go); spec.md §6 requires a
// per-trunk logging sink.
func newLogger(level LogLevel) *logrus.Logger {
	lg := logrus.New()
	lg.SetLevel(level.logrusLevel())
	return lg
}
