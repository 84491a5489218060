package config

// Loader loads configuration into a target struct and optionally watches for
// changes.
type Loader interface {
	Load(target any) error
	Watch(callback func()) error
}
