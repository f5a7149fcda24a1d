package dotenv

import (
	"errors"
	"io/fs"
	"testing"
)

func TestMissingKeysError_Error(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want string
	}{
		{name: "single key", keys: []string{"A"}, want: "dotenv: required keys missing: ['A']"},
		{name: "several keys", keys: []string{"A", "B", "C"}, want: "dotenv: required keys missing: ['A', 'B', 'C']"},
		{name: "no keys", keys: nil, want: "dotenv: required keys missing: none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &MissingKeysError{Keys: tt.keys}
			if got := err.Error(); got != tt.want {
				t.Errorf("MissingKeysError.Error()\ngot:  %q\nwant: %q", got, tt.want)
			}
		})
	}
}

func TestAlreadyDefinedError_Error(t *testing.T) {
	err := &AlreadyDefinedError{Key: "HOST", Store: StoreEnv}
	want := `dotenv: key "HOST" has already been defined in env`

	if got := err.Error(); got != want {
		t.Errorf("AlreadyDefinedError.Error()\ngot:  %q\nwant: %q", got, want)
	}
}

func TestFileError_Unwrap(t *testing.T) {
	err := error(&FileError{Path: "/tmp/.env", Kind: ErrNotFound, Err: fs.ErrNotExist})

	if !errors.Is(err, ErrNotFound) {
		t.Error("FileError should match its kind")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("FileError should match the underlying error")
	}
	if errors.Is(err, ErrNotReadable) {
		t.Error("FileError should not match another kind")
	}

	var fileErr *FileError
	if !errors.As(err, &fileErr) || fileErr.Path != "/tmp/.env" {
		t.Errorf("errors.As should expose the path, got %+v", fileErr)
	}
}

func TestFileError_Error(t *testing.T) {
	err := &FileError{Path: "/tmp/.env", Kind: ErrNotReadable}
	want := "dotenv: environment file not readable: /tmp/.env"

	if got := err.Error(); got != want {
		t.Errorf("FileError.Error()\ngot:  %q\nwant: %q", got, want)
	}
}

func TestNotParsed(t *testing.T) {
	err := notParsed("Define")

	if !errors.Is(err, ErrNotParsed) {
		t.Errorf("notParsed should wrap ErrNotParsed, got %v", err)
	}
	want := "dotenv: environment must be parsed before use: call Parse before Define"
	if err.Error() != want {
		t.Errorf("notParsed message\ngot:  %q\nwant: %q", err.Error(), want)
	}
}
