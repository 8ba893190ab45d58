package domain

import "fmt"

// ParseError reports a configuration document that is not well-formed XML.
// A ParseError aborts the whole diff; there is no partial recovery.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed configuration document: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// PathResolutionError reports an internally constructed path that resolved
// to more than one node in the tree it was derived from. Paths built by the
// comparator must be unique within their source tree, so this signals a
// logic defect, not bad input.
type PathResolutionError struct {
	Path    string
	Matches int
}

func (e *PathResolutionError) Error() string {
	return fmt.Sprintf("path %q resolved to %d nodes, expected exactly one", e.Path, e.Matches)
}
