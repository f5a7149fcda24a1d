package dotenv

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/Azhovan/dotenv/internal/lex"
	"github.com/Azhovan/dotenv/storeenv"
	"github.com/hashicorp/go-hclog"
)

// DefaultFilename is the name of the file used when no path is given.
const DefaultFilename = ".env"

// Loader parses a .env file and publishes its values.
// Read and publish operations fail with ErrNotParsed until Parse succeeds.
// Not safe for concurrent use.
type Loader struct {
	path string
	env  *Environment // nil until the first successful Parse

	logger    hclog.Logger
	constants Store
	environ   Store
	server    Store
}

// New creates a Loader for path. An empty path selects DefaultPath().
// Publishing targets default to the process-wide Constants and Server
// stores and the real process environment.
func New(path string) *Loader {
	l := &Loader{
		logger:    hclog.NewNullLogger(),
		constants: Constants,
		environ:   storeenv.New(storeenv.Options{}),
		server:    Server,
	}
	return l.SetPath(path)
}

// DefaultPath returns DefaultFilename in the directory of the running
// executable, or DefaultFilename relative to the working directory when
// the executable cannot be located.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultFilename
	}
	return filepath.Join(filepath.Dir(exe), DefaultFilename)
}

// SetPath sets the source file. An empty path selects DefaultPath().
// No I/O is performed.
func (l *Loader) SetPath(path string) *Loader {
	if path == "" {
		path = DefaultPath()
	}
	l.path = path
	return l
}

// Path returns the source file path.
func (l *Loader) Path() string {
	return l.path
}

// WithLogger sets the logger. A nil logger disables logging.
func (l *Loader) WithLogger(logger hclog.Logger) *Loader {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	l.logger = logger
	return l
}

// WithConstants sets the store used by Define.
func (l *Loader) WithConstants(s Store) *Loader {
	l.constants = s
	return l
}

// WithEnv sets the store used by ToEnv.
func (l *Loader) WithEnv(s Store) *Loader {
	l.environ = s
	return l
}

// WithServer sets the store used by ToServer.
func (l *Loader) WithServer(s Store) *Loader {
	l.server = s
	return l
}

// Parse reads and parses the source file, replacing any previously parsed
// environment. On failure the previous environment is kept.
func (l *Loader) Parse() error {
	info, err := os.Stat(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &FileError{Path: l.path, Kind: ErrNotFound, Err: err}
		}
		return &FileError{Path: l.path, Kind: ErrNotReadable, Err: err}
	}
	if info.IsDir() {
		return &FileError{Path: l.path, Kind: ErrNotReadable, Err: errors.New("is a directory")}
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return &FileError{Path: l.path, Kind: ErrNotReadable, Err: err}
	}

	l.env = parseContent(string(data), l.logger)
	l.logger.Debug("parsed environment file", "path", l.path, "keys", l.env.Len())
	return nil
}

// Parsed reports whether Parse has succeeded at least once.
func (l *Loader) Parsed() bool {
	return l.env != nil
}

// Environment returns a copy of the parsed environment.
func (l *Loader) Environment() (*Environment, error) {
	if l.env == nil {
		return nil, notParsed("Environment")
	}
	return l.env.Clone(), nil
}

// Map returns a copy of the parsed key/value pairs.
func (l *Loader) Map() (map[string]string, error) {
	if l.env == nil {
		return nil, notParsed("Map")
	}
	return l.env.Map(), nil
}

// ParseReader parses .env content from r.
func ParseReader(r io.Reader) (*Environment, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(string(data)), nil
}

// ParseString parses .env content. Lines that are not declarations are skipped.
func ParseString(s string) *Environment {
	return parseContent(s, hclog.NewNullLogger())
}

func parseContent(content string, logger hclog.Logger) *Environment {
	env := NewEnvironment()
	for i, line := range strings.Split(content, lineTerminator()) {
		if line == "" {
			continue
		}

		key, value, ok := lex.ParseLine(line)
		if !ok {
			logger.Trace("skipping line without declaration", "line", i+1)
			continue
		}

		if env.Has(key) {
			logger.Trace("duplicate key replaces earlier value", "key", key, "line", i+1)
		}
		env.Set(key, value, i+1)
	}
	return env
}

// lineTerminator returns the platform line terminator. Files written with
// another platform's terminator keep the extra '\r' at the end of values.
func lineTerminator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}
