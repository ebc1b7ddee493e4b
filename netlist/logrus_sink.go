// File: logrus_sink.go
// Role: LogrusSink — the production Sink, mapping the six diagnostic
//       severities onto logrus levels.
// AI-HINT (file): SeverityFatal is logged at logrus.FatalLevel via
//   Logger.Log rather than Logger.Fatal — Logger.Fatal calls os.Exit,
//   which a library must never do on a caller's behalf. Parse itself is
//   what aborts the parse and returns an error for fatal diagnostics;
//   the sink's job is only to log at the matching level.
package netlist

import "github.com/sirupsen/logrus"

// LogrusSink reports diagnostics through a *logrus.Logger.
type LogrusSink struct {
	logger *logrus.Logger
}

// NewLogrusSink wraps logger as a Sink. A nil logger uses logrus's
// standard logger.
func NewLogrusSink(logger *logrus.Logger) *LogrusSink {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogrusSink{logger: logger}
}

func severityLevel(s Severity) (logrus.Level, bool) {
	switch s {
	case SeverityNote:
		return logrus.DebugLevel, true
	case SeverityRemark:
		return logrus.InfoLevel, true
	case SeverityWarning:
		return logrus.WarnLevel, true
	case SeverityError:
		return logrus.ErrorLevel, true
	case SeverityFatal:
		return logrus.FatalLevel, true
	default: // SeverityIgnore and anything unrecognized
		return 0, false
	}
}

// Report logs d at the logrus level matching its severity. SeverityIgnore
// diagnostics are discarded without being logged at all.
func (s *LogrusSink) Report(d Diagnostic) {
	level, ok := severityLevel(d.Severity)
	if !ok {
		return
	}
	s.logger.WithField("line", d.Line).Log(level, d.Message)
}
