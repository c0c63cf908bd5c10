package delivsync

import "errors"

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
var (
	// ErrConfigNotFound indicates the settings file does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrMissingSection indicates a required settings section is absent.
	ErrMissingSection = errors.New("missing config section")

	// ErrMissingOption indicates a required settings key is absent.
	ErrMissingOption = errors.New("missing config option")

	// ErrUnknownPhase indicates a phase code or folder outside the
	// closed phase set.
	ErrUnknownPhase = errors.New("unknown phase")

	// ErrNoInternalMatch indicates an incoming review record has no
	// same-named counterpart staged in the internal area. The copy is
	// skipped, not performed.
	ErrNoInternalMatch = errors.New("no matching file in internal area")

	// ErrFileInUse indicates a source or destination file could not be
	// opened, typically because another process holds it open.
	ErrFileInUse = errors.New("file in use or access denied")
)

// ExitCodeForError returns the process exit code for an error.
// Configuration load failures exit with the general error code per the
// CLI contract; usage errors and panics have dedicated codes set by the
// entry point.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitGeneralError
}
