package dotenv

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Use errors.Is to test for them.
var (
	// ErrNotFound is returned by Parse when the source file does not exist.
	ErrNotFound = errors.New("dotenv: environment file not found")

	// ErrNotReadable is returned by Parse when the source file exists but cannot be read.
	ErrNotReadable = errors.New("dotenv: environment file not readable")

	// ErrNotParsed is returned by every read or publish operation called before Parse.
	ErrNotParsed = errors.New("dotenv: environment must be parsed before use")

	// ErrNoKeys is returned by Expect when called without keys.
	ErrNoKeys = errors.New("dotenv: no keys passed to expect")

	// ErrConstantExists is returned by the constants table when a name is reused.
	ErrConstantExists = errors.New("dotenv: constant already defined")
)

// FileError describes a failure to access the source file.
// It matches both its Kind (ErrNotFound or ErrNotReadable) and the
// underlying file system error.
type FileError struct {
	Path string
	Kind error
	Err  error
}

func (e *FileError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *FileError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// MissingKeysError lists every expected key absent from the environment.
type MissingKeysError struct {
	Keys []string
}

// Error formats missing keys the way they were passed to Expect.
func (e *MissingKeysError) Error() string {
	if len(e.Keys) == 0 {
		return "dotenv: required keys missing: none"
	}
	return fmt.Sprintf("dotenv: required keys missing: ['%s']", strings.Join(e.Keys, "', '"))
}

// AlreadyDefinedError is returned when publishing a key that already
// exists in the target store and overwriting is not allowed.
type AlreadyDefinedError struct {
	Key   string
	Store string // "constants", "env" or "server"
}

func (e *AlreadyDefinedError) Error() string {
	return fmt.Sprintf("dotenv: key %q has already been defined in %s", e.Key, e.Store)
}

func notParsed(op string) error {
	return fmt.Errorf("%w: call Parse before %s", ErrNotParsed, op)
}
