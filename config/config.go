package config

import (
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/kochabx/ripe/log"
)

// Config manages application configuration.
type Config struct {
	mu        sync.RWMutex // protects concurrent access to target
	viper     *viper.Viper
	validate  *validator.Validate
	target    any // destination the configuration is unmarshalled into
	loader    Loader
	watch     bool
	fileName  string
	filePaths []string
}

// New creates a new Config instance with the given options.
// If no loader is provided, a default FileLoader is created with:
//   - filename: "ripe.yaml"
//   - paths: ["."]
func New(target any, opts ...Option) *Config {
	c := &Config{
		viper:     viper.New(),
		validate:  validator.New(),
		target:    target,
		watch:     true,
		fileName:  "ripe.yaml",
		filePaths: []string{"."},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.loader == nil {
		c.loader = NewFileLoader(c.fileName, c.filePaths, c.viper, c.validate)
	}

	return c
}

// Load reads the configuration using the configured loader.
func (c *Config) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loader.Load(c.target)
}

// Reload reloads the configuration from the loader.
func (c *Config) Reload() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loader.Load(c.target)
}

// Watch sets up automatic configuration watching if enabled.
func (c *Config) Watch() error {
	if !c.watch {
		return nil
	}

	return c.loader.Watch(func() {
		log.Info().Msg("config change detected")

		if err := c.Reload(); err != nil {
			log.Error().Err(err).Msg("failed to reload config after change")
			return
		}

		log.Info().Msg("config reloaded successfully")
	})
}

// GetViper returns the underlying viper instance.
func (c *Config) GetViper() *viper.Viper {
	return c.viper
}
