package dirlisting

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestOSDirectoryLister_ListSubdirectories(t *testing.T) {
	dir := t.TempDir()
	for _, child := range []string{"one", "two", "three"} {
		if err := os.Mkdir(filepath.Join(dir, child), 0755); err != nil {
			t.Fatalf("creating fixture dir %s: %v", child, err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "file.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("creating fixture file: %v", err)
	}

	lister := NewOSDirectoryLister()
	got, err := lister.ListSubdirectories(dir)
	if err != nil {
		t.Fatalf("ListSubdirectories() error = %v", err)
	}

	sort.Strings(got)
	want := []string{"one", "three", "two"}
	if len(got) != len(want) {
		t.Fatalf("ListSubdirectories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ListSubdirectories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestOSDirectoryLister_MissingDirectory(t *testing.T) {
	lister := NewOSDirectoryLister()
	if _, err := lister.ListSubdirectories(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("ListSubdirectories() error = nil, want an error for a missing directory")
	}
}

func TestResolveTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("os.UserHomeDir() error = %v", err)
	}

	tests := []struct {
		path string
		want string
	}{
		{path: "~/projects", want: filepath.Join(home, "projects")},
		{path: "~", want: home},
		{path: "/var/tmp", want: "/var/tmp"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := resolveTilde(tt.path)
			if err != nil {
				t.Fatalf("resolveTilde(%q) error = %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("resolveTilde(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
