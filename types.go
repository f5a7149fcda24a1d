package dotenv

// Store is a destination for published values (constants, environment
// variables, server metadata). Implementations decide what "already
// exists" means for Has.
type Store interface {
	// Has reports whether key is already present in the store.
	Has(key string) bool

	// Set writes key. Write-once stores may refuse existing keys.
	Set(key, value string) error
}

// Entry is a single parsed declaration.
type Entry struct {
	Key   string
	Value string
	Line  int // 1-based line of the declaration that supplied Value
}

// Environment is an ordered mapping of parsed keys to values.
// Keys keep the position of their first declaration; a later duplicate
// replaces the value (and Line) in place.
type Environment struct {
	entries []Entry
	index   map[string]int
}

// NewEnvironment returns an empty Environment.
func NewEnvironment() *Environment {
	return &Environment{index: make(map[string]int)}
}

// Set inserts or replaces key.
func (e *Environment) Set(key, value string, line int) {
	if e.index == nil {
		e.index = make(map[string]int)
	}
	if i, ok := e.index[key]; ok {
		e.entries[i].Value = value
		e.entries[i].Line = line
		return
	}
	e.index[key] = len(e.entries)
	e.entries = append(e.entries, Entry{Key: key, Value: value, Line: line})
}

// Get returns the value for key and whether it is present.
func (e *Environment) Get(key string) (string, bool) {
	i, ok := e.index[key]
	if !ok {
		return "", false
	}
	return e.entries[i].Value, true
}

// Has reports whether key is present. Empty values count as present.
func (e *Environment) Has(key string) bool {
	_, ok := e.index[key]
	return ok
}

// Len returns the number of keys.
func (e *Environment) Len() int {
	return len(e.entries)
}

// Keys returns the keys in insertion order.
func (e *Environment) Keys() []string {
	keys := make([]string, len(e.entries))
	for i, entry := range e.entries {
		keys[i] = entry.Key
	}
	return keys
}

// Entries returns a copy of the entries in insertion order.
func (e *Environment) Entries() []Entry {
	entries := make([]Entry, len(e.entries))
	copy(entries, e.entries)
	return entries
}

// Map returns the values as a new map.
func (e *Environment) Map() map[string]string {
	m := make(map[string]string, len(e.entries))
	for _, entry := range e.entries {
		m[entry.Key] = entry.Value
	}
	return m
}

// Clone returns a deep copy.
func (e *Environment) Clone() *Environment {
	c := &Environment{
		entries: e.Entries(),
		index:   make(map[string]int, len(e.index)),
	}
	for k, v := range e.index {
		c.index[k] = v
	}
	return c
}

// PublishOptions enables publishing to a store from Load.
type PublishOptions struct {
	// Overwrite replaces existing keys instead of failing.
	Overwrite bool `yaml:"overwrite" json:"overwrite" toml:"overwrite"`
}

// Options configures Load. A nil Expect, ToEnv or ToServer skips that step;
// a non-nil but empty Expect is an error (ErrNoKeys).
type Options struct {
	// Path of the .env file. Empty selects DefaultPath().
	Path string `yaml:"path" json:"path" toml:"path"`

	// Expect lists keys that must be present after parsing.
	Expect []string `yaml:"expect" json:"expect" toml:"expect"`

	// Define publishes every key to the constants store.
	Define bool `yaml:"define" json:"define" toml:"define"`

	// ToEnv publishes every key to the environment store.
	ToEnv *PublishOptions `yaml:"to_env" json:"to_env" toml:"to_env"`

	// ToServer publishes every key to the server store.
	ToServer *PublishOptions `yaml:"to_server" json:"to_server" toml:"to_server"`
}
