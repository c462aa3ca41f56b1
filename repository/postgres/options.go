package postgres

// Option configures a repository.
type Option func(*options)

type options struct {
	maxPageSize int
}

// WithMaxPageSize caps the page size served by GetPage. Zero disables the cap.
func WithMaxPageSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxPageSize = n
		}
	}
}

func collectOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
