package storeenv

import (
	"fmt"
	"os"
)

// Options configures environment store behavior.
type Options struct {
	// Prefix is prepended to every key before it reaches the environment.
	// Empty = keys are used as-is.
	Prefix string
}

// Store reads and writes the process environment.
type Store struct {
	opts Options
}

// New creates an environment store.
func New(opts Options) *Store {
	return &Store{opts: opts}
}

// Has reports whether the prefixed key is set, even to an empty value.
func (s *Store) Has(key string) bool {
	_, ok := os.LookupEnv(s.Name(key))
	return ok
}

// Set writes the prefixed key to the environment.
func (s *Store) Set(key, value string) error {
	name := s.Name(key)
	if err := os.Setenv(name, value); err != nil {
		return fmt.Errorf("set environment variable %s: %w", name, err)
	}
	return nil
}

// Get returns the value of the prefixed key and whether it is set.
func (s *Store) Get(key string) (string, bool) {
	return os.LookupEnv(s.Name(key))
}

// Name returns the environment variable name used for key.
func (s *Store) Name(key string) string {
	return s.opts.Prefix + key
}
