package application

import "strings"

const maxNameLength = 128

// ValidateSnapshotName checks a user-supplied snapshot name. Names are used
// as lookup keys and as export file names, so path separators and leading
// dots are rejected.
func ValidateSnapshotName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return &ValidationError{Field: "name", Message: "must not be empty"}
	case len(name) > maxNameLength:
		return &ValidationError{Field: "name", Message: "too long"}
	case strings.ContainsAny(name, `/\`):
		return &ValidationError{Field: "name", Message: "must not contain path separators"}
	case strings.HasPrefix(name, "."):
		return &ValidationError{Field: "name", Message: "must not start with a dot"}
	}
	return nil
}

// ValidateSource checks a snapshot source label.
func ValidateSource(source string) error {
	switch source {
	case "running", "candidate", "imported":
		return nil
	}
	return &ValidationError{Field: "source", Message: "must be running, candidate or imported"}
}
