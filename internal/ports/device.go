package ports

import "context"

// ConfigSource selects which configuration document a device returns.
type ConfigSource string

const (
	SourceRunning   ConfigSource = "running"
	SourceCandidate ConfigSource = "candidate"
)

// Device produces configuration documents for the engine. Implementations
// talk to a live device; the engine itself never does.
type Device interface {
	// Connect authenticates against the device and caches its facts.
	Connect(ctx context.Context) error

	// GetConfiguration returns the requested configuration document as XML.
	GetConfiguration(ctx context.Context, source ConfigSource) (string, error)

	// Facts returns basic identity facts (hostname, model, sw-version, ...)
	// gathered during Connect.
	Facts(ctx context.Context) (map[string]string, error)
}
