package config

import (
	"path"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/kochabx/ripe/errors"
)

// FileLoader loads configuration from a file through viper, with environment
// variable override and struct-tag validation.
type FileLoader struct {
	viper    *viper.Viper
	validate *validator.Validate
	name     string
	paths    []string
}

// NewFileLoader creates a new file loader.
func NewFileLoader(name string, paths []string, v *viper.Viper, validate *validator.Validate) *FileLoader {
	// Determine config type from file extension
	extension := path.Ext(name)
	configType := strings.TrimPrefix(extension, ".")

	for _, configPath := range paths {
		v.AddConfigPath(configPath)
	}

	v.SetConfigName(name)
	v.SetConfigType(configType)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &FileLoader{
		viper:    v,
		paths:    paths,
		name:     name,
		validate: validate,
	}
}

// Load implements Loader.
func (l *FileLoader) Load(target any) error {
	if err := l.viper.ReadInConfig(); err != nil {
		return errors.Wrap(err, errors.KindArgument, "config file not found")
	}

	if err := l.viper.Unmarshal(target); err != nil {
		return errors.Wrap(err, errors.KindFormat, "config parse error")
	}

	if l.validate != nil {
		if err := l.validate.Struct(target); err != nil {
			return errors.Wrap(err, errors.KindArgument, "config validation failed")
		}
	}

	return nil
}

// Watch implements Loader.
func (l *FileLoader) Watch(callback func()) error {
	l.viper.OnConfigChange(func(e fsnotify.Event) {
		if callback != nil {
			callback()
		}
	})

	l.viper.WatchConfig()
	return nil
}
