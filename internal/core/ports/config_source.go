package ports

/*
ConfigSource defines the interface for locating and reading the alias
configuration file. This is a driven port, typically implemented by a
repository adapter that knows where the configuration lives on disk.
*/
type ConfigSource interface {
	// Path returns the resolved path of the configuration file, for use
	// in diagnostics.
	Path() string

	// Read returns the full contents of the configuration file.
	// A missing or unreadable file is an error; an empty file is not.
	Read() (string, error)
}
