package domain

import "time"

// Snapshot is a stored configuration document: the unit the diff engine is
// fed with. Body holds the verbatim XML as retrieved from the device (or
// imported from a file).
type Snapshot struct {
	ID      int64
	Name    string
	Device  string
	Source  string // running, candidate or imported
	TakenAt time.Time
	Body    string
}
