// File: options.go
// Role: functional options for New.
package aig

import "fmt"

const defaultInitialCapacity = 64

// Option configures a Network at construction time.
type Option func(*config)

type config struct {
	initialCapacity int
	err             error
}

func defaultConfig() *config {
	return &config{initialCapacity: defaultInitialCapacity}
}

// WithInitialCapacity reserves room for n nodes up front, to avoid the
// early growth steps of the π-factor capacity policy on networks whose
// final size is known ahead of time.
func WithInitialCapacity(n int) Option {
	return func(c *config) {
		if n <= 0 {
			c.err = fmt.Errorf("aig: initial capacity must be positive, got %d", n)
			return
		}
		c.initialCapacity = n
	}
}
