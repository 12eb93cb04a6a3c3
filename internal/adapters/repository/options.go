package repository

// Option configures the provider built by New.
type Option func(*settings)

type settings struct {
	path string
	dsn  string
}

// WithPath sets the dataset file read by the file source.
func WithPath(path string) Option {
	return func(s *settings) {
		s.path = path
	}
}

// WithDSN sets the database opened by the sqlite source.
func WithDSN(dsn string) Option {
	return func(s *settings) {
		s.dsn = dsn
	}
}
