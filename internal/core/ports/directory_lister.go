package ports

// DirectoryLister defines an interface for listing the immediate child
// directories of a configured path, used by the [*] expansion form.
type DirectoryLister interface {
	// ListSubdirectories returns the names (not full paths) of the
	// immediate children of path that are directories. Files are
	// excluded.
	ListSubdirectories(path string) ([]string, error)
}
