// File: options.go
// Role: functional options for NewParser.
package netlist

import "fmt"

// Option configures a Parser at construction time.
type Option func(*config)

type config struct {
	sink Sink
	err  error
}

func defaultConfig() *config {
	return &config{sink: NewLogrusSink(nil)}
}

// WithSink overrides the diagnostic sink (default: a LogrusSink over
// logrus's standard logger).
func WithSink(sink Sink) Option {
	return func(c *config) {
		if sink == nil {
			c.err = fmt.Errorf("netlist: sink must not be nil")
			return
		}
		c.sink = sink
	}
}
