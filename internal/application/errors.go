package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound    = errors.New("not found")
	ErrInvalidName = errors.New("invalid snapshot name")
	ErrNoDevice    = errors.New("no device configured")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidName && e.Field == "name"
}

// SnapshotError represents a failure acting on a named snapshot
type SnapshotError struct {
	Ref    string
	Reason string
}

func (e *SnapshotError) Error() string {
	return fmt.Sprintf("snapshot %s: %s", e.Ref, e.Reason)
}

func (e *SnapshotError) Is(target error) bool {
	return target == ErrNotFound && e.Reason == "not found"
}
