package dotenv

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestSave_RoundTrip(t *testing.T) {
	l := parsedLoader(t, lines("export B='two words'", "A=1", `C="x"y"`, "B=2"))

	target := filepath.Join(t.TempDir(), "nested", "dir", "out.env")
	if err := l.Save(target); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	saved := New(target)
	if err := saved.Parse(); err != nil {
		t.Fatalf("Parse of saved file failed: %v", err)
	}

	want, err := l.Environment()
	if err != nil {
		t.Fatalf("Environment failed: %v", err)
	}
	got, err := saved.Environment()
	if err != nil {
		t.Fatalf("Environment failed: %v", err)
	}

	if !reflect.DeepEqual(got.Keys(), want.Keys()) {
		t.Errorf("saved keys = %v, want %v", got.Keys(), want.Keys())
	}
	if !reflect.DeepEqual(got.Map(), want.Map()) {
		t.Errorf("saved values = %v, want %v", got.Map(), want.Map())
	}
}

func TestSave_Permissions(t *testing.T) {
	l := parsedLoader(t, lines("A=1"))

	dir := filepath.Join(t.TempDir(), "secrets")
	target := filepath.Join(dir, ".env")
	if err := l.Save(target); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file permissions = %o, want 0600", perm)
	}

	dirInfo, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if perm := dirInfo.Mode().Perm(); perm != 0700 {
		t.Errorf("directory permissions = %o, want 0700", perm)
	}
}

func TestSave_ReplacesExistingFile(t *testing.T) {
	target := writeEnvFile(t, lines("OLD=1"))
	if err := os.Chmod(target, 0644); err != nil {
		t.Fatalf("chmod failed: %v", err)
	}

	l := parsedLoader(t, lines("NEW=2"))
	if err := l.Save(target); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != "NEW=\"2\"\n" {
		t.Errorf("saved content = %q, want %q", data, "NEW=\"2\"\n")
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file permissions = %o, want 0600", perm)
	}
}

func TestSave_NoTempFilesLeft(t *testing.T) {
	l := parsedLoader(t, lines("A=1"))

	dir := t.TempDir()
	if err := l.Save(filepath.Join(dir, "out.env")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".tmp.") {
			t.Errorf("temp file left behind: %s", entry.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1", len(entries))
	}
}

func TestSave_OtherFormat(t *testing.T) {
	l := parsedLoader(t, lines("A=1"))

	target := filepath.Join(t.TempDir(), "out.json")
	if err := l.Save(target, AsJSON()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if want := "{\n    \"A\": \"1\"\n}\n"; string(data) != want {
		t.Errorf("saved content = %q, want %q", data, want)
	}
}

func TestSave_TargetIsDirectory(t *testing.T) {
	l := parsedLoader(t, lines("A=1"))

	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "taken"), 0700); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	if err := l.Save(filepath.Join(dir, "taken")); err == nil {
		t.Fatal("expected error saving over a directory")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("failed save should clean up its temp file, found %d entries", len(entries))
	}
}

func TestGenerateTempFileName(t *testing.T) {
	first, err := generateTempFileName("/tmp/out.env")
	if err != nil {
		t.Fatalf("generateTempFileName failed: %v", err)
	}
	second, err := generateTempFileName("/tmp/out.env")
	if err != nil {
		t.Fatalf("generateTempFileName failed: %v", err)
	}

	suffix, found := strings.CutPrefix(first, "/tmp/out.env.tmp.")
	if !found {
		t.Errorf("temp name %q should extend the target path", first)
	}
	if len(suffix) != 16 {
		t.Errorf("random suffix %q has length %d, want 16", suffix, len(suffix))
	}
	if first == second {
		t.Errorf("temp names should differ, both %q", first)
	}
}
