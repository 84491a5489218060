package config

// Option configures a Config instance.
type Option func(*Config)

// WithLoader replaces the default file loader.
func WithLoader(loader Loader) Option {
	return func(c *Config) {
		c.loader = loader
	}
}

// WithWatch enables or disables automatic configuration watching.
func WithWatch(watch bool) Option {
	return func(c *Config) {
		c.watch = watch
	}
}

// WithFile sets the configuration file name and search paths for the default
// file loader.
func WithFile(name string, paths ...string) Option {
	return func(c *Config) {
		c.fileName = name
		c.filePaths = paths
	}
}
