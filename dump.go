package dotenv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Azhovan/dotenv/internal/lex"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format selects the output of Dump and Serialize.
type Format int

const (
	// FormatJSON renders an indented JSON object (default).
	FormatJSON Format = iota
	// FormatDotenv renders KEY="VALUE" lines that Parse reads back unchanged.
	FormatDotenv
	// FormatYAML renders a YAML mapping of strings.
	FormatYAML
	// FormatTOML renders TOML key/value pairs.
	FormatTOML
	// FormatText renders key: "value" lines for humans.
	FormatText
)

const redactedValue = "***redacted***"

// DumpOption configures dump behavior using the functional options pattern.
type DumpOption func(*dumpConfig)

// dumpConfig holds options for Dump.
type dumpConfig struct {
	format   Format
	indent   string          // Indentation for JSON output (default: four spaces)
	redacted map[string]bool // Keys whose values are replaced
}

// AsJSON outputs an indented JSON object. This is the default.
func AsJSON() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = FormatJSON
	}
}

// AsDotenv outputs KEY="VALUE" lines.
func AsDotenv() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = FormatDotenv
	}
}

// AsYAML outputs a YAML mapping.
func AsYAML() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = FormatYAML
	}
}

// AsTOML outputs TOML key/value pairs.
func AsTOML() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = FormatTOML
	}
}

// AsText outputs key: "value" lines.
func AsText() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = FormatText
	}
}

// WithIndent sets the indentation for JSON output.
// An empty indent produces compact JSON.
func WithIndent(indent string) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.indent = indent
	}
}

// WithRedacted replaces the values of keys with "***redacted***".
func WithRedacted(keys ...string) DumpOption {
	return func(cfg *dumpConfig) {
		for _, key := range keys {
			cfg.redacted[key] = true
		}
	}
}

// Dump writes the parsed environment in parse order.
func (l *Loader) Dump(w io.Writer, opts ...DumpOption) error {
	if l.env == nil {
		return notParsed("Dump")
	}
	return DumpEnvironment(w, l.env, opts...)
}

// Serialize returns the parsed environment rendered by Dump.
func (l *Loader) Serialize(opts ...DumpOption) (string, error) {
	if l.env == nil {
		return "", notParsed("Serialize")
	}
	var b strings.Builder
	if err := DumpEnvironment(&b, l.env, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

// String returns the parsed environment as indented JSON, or an empty
// string before Parse.
func (l *Loader) String() string {
	s, err := l.Serialize()
	if err != nil {
		return ""
	}
	return strings.TrimSuffix(s, "\n")
}

// DumpEnvironment writes env to w. Output is deterministic: entries appear
// in insertion order in every format.
func DumpEnvironment(w io.Writer, env *Environment, opts ...DumpOption) error {
	if env == nil {
		return fmt.Errorf("dotenv: environment is nil")
	}

	config := dumpConfig{
		indent:   "    ",
		redacted: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(&config)
	}

	entries := env.Entries()
	for i := range entries {
		if config.redacted[entries[i].Key] {
			entries[i].Value = redactedValue
		}
	}

	var (
		data []byte
		err  error
	)
	switch config.format {
	case FormatJSON:
		data, err = dumpAsJSON(entries, config.indent)
	case FormatDotenv:
		data = dumpAsDotenv(entries)
	case FormatYAML:
		data, err = dumpAsYAML(entries)
	case FormatTOML:
		data, err = dumpAsTOML(entries)
	case FormatText:
		data = dumpAsText(entries)
	default:
		return fmt.Errorf("dotenv: unsupported dump format %d", config.format)
	}
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}

// dumpAsJSON builds the object by hand; encoding/json sorts map keys.
func dumpAsJSON(entries []Entry, indent string) ([]byte, error) {
	var b bytes.Buffer
	if len(entries) == 0 {
		b.WriteString("{}\n")
		return b.Bytes(), nil
	}

	b.WriteByte('{')
	for i, entry := range entries {
		if i > 0 {
			b.WriteByte(',')
		}
		if indent != "" {
			b.WriteByte('\n')
			b.WriteString(indent)
		}

		key, err := jsonString(entry.Key)
		if err != nil {
			return nil, err
		}
		value, err := jsonString(entry.Value)
		if err != nil {
			return nil, err
		}

		b.WriteString(key)
		b.WriteByte(':')
		if indent != "" {
			b.WriteByte(' ')
		}
		b.WriteString(value)
	}
	if indent != "" {
		b.WriteByte('\n')
	}
	b.WriteString("}\n")
	return b.Bytes(), nil
}

func jsonString(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", fmt.Errorf("json marshal error: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func dumpAsDotenv(entries []Entry) []byte {
	var b bytes.Buffer
	for _, entry := range entries {
		b.WriteString(entry.Key)
		b.WriteByte('=')
		b.WriteString(lex.Quote(entry.Value))
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// dumpAsYAML goes through a yaml.Node so the mapping keeps entry order.
func dumpAsYAML(entries []Entry) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, entry := range entries {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Value},
		)
	}

	var b bytes.Buffer
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("yaml marshal error: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("yaml marshal error: %w", err)
	}
	return b.Bytes(), nil
}

// dumpAsTOML marshals one pair at a time; go-toml sorts map keys.
func dumpAsTOML(entries []Entry) ([]byte, error) {
	var b bytes.Buffer
	for _, entry := range entries {
		line, err := toml.Marshal(map[string]string{entry.Key: entry.Value})
		if err != nil {
			return nil, fmt.Errorf("toml marshal error: %w", err)
		}
		b.Write(line)
	}
	return b.Bytes(), nil
}

func dumpAsText(entries []Entry) []byte {
	var b bytes.Buffer
	for _, entry := range entries {
		fmt.Fprintf(&b, "%s: %q\n", entry.Key, entry.Value)
	}
	return b.Bytes()
}
