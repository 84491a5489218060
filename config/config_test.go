package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kochabx/ripe/errors"
)

type testConfig struct {
	RSABits int `mapstructure:"rsa_bits" validate:"omitempty,gte=512"`
	Log     struct {
		Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	} `mapstructure:"log"`
}

func writeConfigFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "ripe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "rsa_bits: 2048\nlog:\n  level: debug\n")

	var cfg testConfig
	c := New(&cfg, WithFile("ripe.yaml", dir), WithWatch(false))

	require.NoError(t, c.Load())
	assert.Equal(t, 2048, cfg.RSABits)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	var cfg testConfig
	c := New(&cfg, WithFile("ripe.yaml", t.TempDir()), WithWatch(false))

	err := c.Load()
	require.Error(t, err)
	assert.Equal(t, errors.KindArgument, errors.KindOf(err))
}

func TestLoadValidationFailure(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "rsa_bits: 128\n")

	var cfg testConfig
	c := New(&cfg, WithFile("ripe.yaml", dir), WithWatch(false))

	err := c.Load()
	require.Error(t, err)
	assert.Equal(t, errors.KindArgument, errors.KindOf(err))
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "log:\n  level: loud\n")

	var cfg testConfig
	c := New(&cfg, WithFile("ripe.yaml", dir), WithWatch(false))

	require.Error(t, c.Load())
}

func TestReloadPicksUpChanges(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, "rsa_bits: 1024\n")

	var cfg testConfig
	c := New(&cfg, WithFile("ripe.yaml", dir), WithWatch(false))
	require.NoError(t, c.Load())
	assert.Equal(t, 1024, cfg.RSABits)

	require.NoError(t, os.WriteFile(path, []byte("rsa_bits: 4096\n"), 0o644))
	require.NoError(t, c.Reload())
	assert.Equal(t, 4096, cfg.RSABits)
}

type stubLoader struct {
	loadCalls  int
	watchCalls int
	loadErr    error
}

func (s *stubLoader) Load(target any) error {
	s.loadCalls++
	return s.loadErr
}

func (s *stubLoader) Watch(callback func()) error {
	s.watchCalls++
	return nil
}

func TestWithLoader(t *testing.T) {
	stub := &stubLoader{}

	var cfg testConfig
	c := New(&cfg, WithLoader(stub), WithWatch(false))

	require.NoError(t, c.Load())
	assert.Equal(t, 1, stub.loadCalls)
}

func TestWatchDisabled(t *testing.T) {
	stub := &stubLoader{}

	var cfg testConfig
	c := New(&cfg, WithLoader(stub), WithWatch(false))

	require.NoError(t, c.Watch())
	assert.Zero(t, stub.watchCalls)
}

func TestWatchEnabled(t *testing.T) {
	stub := &stubLoader{}

	var cfg testConfig
	c := New(&cfg, WithLoader(stub))

	require.NoError(t, c.Watch())
	assert.Equal(t, 1, stub.watchCalls)
}
