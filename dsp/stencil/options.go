package stencil

// Option configures a Correlator.
type Option func(*config)

type config struct {
	workers int
	impl    string
}

func defaultConfig() config {
	return config{workers: 1}
}

// WithWorkers splits the output rows into contiguous bands processed by up
// to n goroutines. Rows are independent, so the result is identical to the
// sequential run. n <= 1 keeps processing on the calling goroutine.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.workers = n
	}
}

// WithImplementation forces a registered kernel by name ("generic", "sse2",
// "avx2"). NewCorrelator fails with ErrUnknownImplementation if the kernel
// is not available on this CPU or build.
func WithImplementation(name string) Option {
	return func(c *config) {
		c.impl = name
	}
}
