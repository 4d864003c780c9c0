package app

// Config holds runtime configuration for the application.
type Config struct {
	// Root anchors the default and relative paths. Empty means the
	// working directory.
	Root string

	InputPath  string
	OutputPath string

	// Optional exports; empty disables them.
	OutputPDFPath  string
	OutputXLSXPath string

	Verbose bool
}
