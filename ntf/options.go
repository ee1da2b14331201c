package ntf

// Option customizes a Decoder or Encoder.
type Option interface{ apply(c *core) }

// WithLogf traces decoder and encoder steps through the given function.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(c *core) { c.logfn = logfn }

// core holds state shared by the Decoder and Encoder.
type core struct {
	logfn func(mess string, args ...interface{})
}

func (c *core) apply(opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(c)
		}
	}
}

func (c *core) withLogPrefix(prefix string) func() {
	logfn := c.logfn
	if logfn == nil {
		return func() {}
	}
	c.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		c.logfn = logfn
	}
}

func (c core) logf(mess string, args ...interface{}) {
	if c.logfn != nil {
		c.logfn(mess, args...)
	}
}
