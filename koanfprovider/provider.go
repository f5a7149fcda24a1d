// Package koanfprovider exposes a parsed .env environment as a koanf provider.
//
//	env, _ := loader.Environment()
//	k := koanf.New(".")
//	err := k.Load(koanfprovider.New(env, koanfprovider.Options{Normalize: true}), nil)
//
// With Normalize, DATABASE__HOST becomes the nested key database.host.
package koanfprovider

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/Azhovan/dotenv"
	"github.com/Azhovan/dotenv/internal/normalize"
	"github.com/knadh/koanf/maps"
)

// ErrNilEnvironment is returned when the provider has no environment to read.
var ErrNilEnvironment = errors.New("koanfprovider: environment is nil")

// ErrKeyConflict is returned by Read with Normalize when two keys map to the
// same path, or when one key's path is the parent of another's (DB and
// DB__HOST). Unflattening such keys would overwrite unrelated values.
var ErrKeyConflict = errors.New("koanfprovider: conflicting keys")

// Options configures the provider.
type Options struct {
	// Prefix keeps only keys starting with it and strips it.
	Prefix string

	// CaseSensitive controls prefix matching (default: false).
	CaseSensitive bool

	// Normalize maps keys to lowercase dot paths: FOO__BAR → foo.bar.
	Normalize bool
}

// Provider implements koanf.Provider over a dotenv.Environment.
type Provider struct {
	env  *dotenv.Environment
	opts Options
}

// New creates a provider. env is read on every call, not copied.
func New(env *dotenv.Environment, opts Options) *Provider {
	return &Provider{env: env, opts: opts}
}

// ReadBytes returns the environment in KEY="VALUE" form, unfiltered.
func (p *Provider) ReadBytes() ([]byte, error) {
	if p.env == nil {
		return nil, ErrNilEnvironment
	}
	var buf bytes.Buffer
	if err := dotenv.DumpEnvironment(&buf, p.env, dotenv.AsDotenv()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Read returns the filtered key/value map. With Normalize the map is
// nested along the dot paths, and keys whose paths collide or nest are
// rejected with ErrKeyConflict.
func (p *Provider) Read() (map[string]any, error) {
	if p.env == nil {
		return nil, ErrNilEnvironment
	}

	out := make(map[string]any, p.env.Len())
	sources := make(map[string]string, p.env.Len()) // path -> source key
	for _, entry := range p.env.Entries() {
		key, ok := normalize.TrimPrefix(entry.Key, p.opts.Prefix, p.opts.CaseSensitive)
		if !ok {
			continue
		}
		if p.opts.Normalize {
			key = normalize.ToLowerDotPath(key)
			if other, exists := sources[key]; exists {
				return nil, fmt.Errorf("%w: %s and %s both map to %q", ErrKeyConflict, other, entry.Key, key)
			}
			sources[key] = entry.Key
		}
		out[key] = entry.Value
	}

	if !p.opts.Normalize {
		return out, nil
	}
	if err := checkNesting(sources); err != nil {
		return nil, err
	}
	return maps.Unflatten(out, "."), nil
}

// checkNesting fails when a path is also the parent of another path.
func checkNesting(sources map[string]string) error {
	for path, key := range sources {
		for i := strings.IndexByte(path, '.'); i >= 0; i = nextDot(path, i) {
			if parent, ok := sources[path[:i]]; ok {
				return fmt.Errorf("%w: %s is both a value and the parent of %s", ErrKeyConflict, parent, key)
			}
		}
	}
	return nil
}

func nextDot(path string, i int) int {
	j := strings.IndexByte(path[i+1:], '.')
	if j < 0 {
		return -1
	}
	return i + 1 + j
}
