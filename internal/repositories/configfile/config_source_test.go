package configfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewConfigSource_EnvOverride(t *testing.T) {
	t.Setenv("DALIA_CONFIG_PATH", "/custom/dalia")

	cs, err := NewConfigSource()
	if err != nil {
		t.Fatalf("NewConfigSource() error = %v", err)
	}
	if got, want := cs.Path(), filepath.Join("/custom/dalia", "config"); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestNewConfigSource_DefaultUnderHome(t *testing.T) {
	t.Setenv("DALIA_CONFIG_PATH", "")

	cs, err := NewConfigSource()
	if err != nil {
		t.Fatalf("NewConfigSource() error = %v", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("os.UserHomeDir() error = %v", err)
	}
	if got, want := cs.Path(), filepath.Join(home, ".dalia", "config"); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestConfigSource_Read(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DALIA_CONFIG_PATH", dir)

	contents := "[workspace]~/Documents/workspace\n~/Desktop\n"
	if err := os.WriteFile(filepath.Join(dir, "config"), []byte(contents), 0644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}

	cs, err := NewConfigSource()
	if err != nil {
		t.Fatalf("NewConfigSource() error = %v", err)
	}

	got, err := cs.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != contents {
		t.Errorf("Read() = %q, want %q", got, contents)
	}
}

func TestConfigSource_ReadEmptyFileIsValid(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DALIA_CONFIG_PATH", dir)

	if err := os.WriteFile(filepath.Join(dir, "config"), nil, 0644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}

	cs, err := NewConfigSource()
	if err != nil {
		t.Fatalf("NewConfigSource() error = %v", err)
	}

	got, err := cs.Read()
	if err != nil {
		t.Errorf("Read() on empty file error = %v, want nil", err)
	}
	if got != "" {
		t.Errorf("Read() = %q, want empty string", got)
	}
}

func TestConfigSource_ReadMissingFileNamesResolvedPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DALIA_CONFIG_PATH", dir)

	cs, err := NewConfigSource()
	if err != nil {
		t.Fatalf("NewConfigSource() error = %v", err)
	}

	_, err = cs.Read()
	if err == nil {
		t.Fatal("Read() error = nil, want an error for a missing file")
	}
	if !strings.Contains(err.Error(), cs.Path()) {
		t.Errorf("Read() error %q should name the resolved path %q", err, cs.Path())
	}
}

func TestPredefinedAliasesPath(t *testing.T) {
	t.Setenv("DALIA_CONFIG_PATH", "/custom/dalia")

	got, err := PredefinedAliasesPath()
	if err != nil {
		t.Fatalf("PredefinedAliasesPath() error = %v", err)
	}
	if want := filepath.Join("/custom/dalia", "aliases.yaml"); got != want {
		t.Errorf("PredefinedAliasesPath() = %q, want %q", got, want)
	}
}
