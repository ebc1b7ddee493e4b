// File: options.go
// Role: functional options for New.
package pool

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Option configures a Pool at construction time.
type Option func(*config)

type config struct {
	logger *logrus.Logger
	err    error
}

func defaultConfig() *config {
	return &config{logger: logrus.StandardLogger()}
}

// WithLogger overrides the logrus logger used for lifecycle messages
// (pool start, worker stop, the sentinel-barrier shutdown sequence). The
// default is logrus's standard logger.
func WithLogger(l *logrus.Logger) Option {
	return func(c *config) {
		if l == nil {
			c.err = fmt.Errorf("pool: logger must not be nil")
			return
		}
		c.logger = l
	}
}
