package dotenv

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"
)

// Save writes the parsed environment to path as KEY="VALUE" lines.
// Parsing the written file yields the same keys, values and order.
func (l *Loader) Save(path string, opts ...DumpOption) error {
	if l.env == nil {
		return notParsed("Save")
	}
	return SaveEnvironment(l.env, path, opts...)
}

// SaveEnvironment persists env to disk with atomic write semantics.
// The dotenv format is used unless opts select another one.
// Parent directories are created with 0700 and the file with 0600.
func SaveEnvironment(env *Environment, path string, opts ...DumpOption) error {
	var buf bytes.Buffer
	if err := DumpEnvironment(&buf, env, append([]DumpOption{AsDotenv()}, opts...)...); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return err
		}
	}

	// Temp file in the same directory so the rename stays on one filesystem.
	tempPath, err := generateTempFileName(path)
	if err != nil {
		return err
	}

	var tempFileCreated bool
	defer func() {
		if tempFileCreated {
			_ = os.Remove(tempPath)
		}
	}()

	if err := os.WriteFile(tempPath, buf.Bytes(), 0600); err != nil {
		return err
	}
	tempFileCreated = true

	// WriteFile does not change the mode of an existing file.
	if err := os.Chmod(tempPath, 0600); err != nil {
		return err
	}

	if err := os.Rename(tempPath, path); err != nil {
		return err
	}
	tempFileCreated = false

	return nil
}

// generateTempFileName returns path + ".tmp." + 16 random hex chars.
func generateTempFileName(path string) (string, error) {
	randomBytes := make([]byte, 8)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", err
	}
	return path + ".tmp." + hex.EncodeToString(randomBytes), nil
}
