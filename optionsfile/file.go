package optionsfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Azhovan/dotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Options configures how the options file is read.
type Options struct {
	// Format: "yaml", "json", or "toml". Auto-detected from extension if empty.
	Format string

	// RelativePath resolves a relative Path in the file against the
	// directory of the options file instead of the working directory.
	RelativePath bool
}

// Read reads and decodes the options file at path.
// Unknown fields are rejected so that typos do not silently disable a step.
func Read(path string, opts Options) (dotenv.Options, error) {
	var out dotenv.Options

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return out, &dotenv.FileError{Path: path, Kind: dotenv.ErrNotFound, Err: err}
		}
		return out, &dotenv.FileError{Path: path, Kind: dotenv.ErrNotReadable, Err: err}
	}

	format := opts.Format
	if format == "" {
		format = inferFormat(path)
	}

	switch format {
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&out); err != nil {
			return out, fmt.Errorf("parse YAML file %s: %w", path, err)
		}
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&out); err != nil {
			return out, fmt.Errorf("parse JSON file %s: %w", path, err)
		}
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&out); err != nil {
			return out, fmt.Errorf("parse TOML file %s: %w", path, err)
		}
	default:
		return out, fmt.Errorf("unsupported file format: %s (supported: yaml, json, toml)", format)
	}

	if opts.RelativePath && out.Path != "" && !filepath.IsAbs(out.Path) {
		out.Path = filepath.Join(filepath.Dir(path), out.Path)
	}

	return out, nil
}

func inferFormat(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	case ".toml":
		return "toml"
	default:
		return ""
	}
}
