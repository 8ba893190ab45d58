package domain

import (
	"log"
	"math/rand"
)

// Engine generates portable patch sets from two versions of a hierarchical
// configuration document. It is purely computational and reentrant: each
// Diff call works on its own trees (the latest tree is cloned internally
// before volatile attributes are stripped), so one Engine may serve
// concurrent callers.
type Engine struct {
	policy  Policy
	matcher Matcher
	logf    func(format string, args ...any)
	intn    func(n int) int
}

// Option configures an Engine.
type Option func(*Engine)

// WithPolicy replaces the default ignore/ordering policy.
func WithPolicy(p Policy) Option {
	return func(e *Engine) {
		e.policy = p
	}
}

// WithMatcher replaces the default approximate list matcher.
func WithMatcher(m Matcher) Option {
	return func(e *Engine) {
		e.matcher = m
	}
}

// WithLogger redirects per-entry diagnostics (skipped changes).
func WithLogger(logf func(format string, args ...any)) Option {
	return func(e *Engine) {
		e.logf = logf
	}
}

// WithNameSource replaces the random source behind snippet name
// disambiguators, so tests get stable names.
func WithNameSource(intn func(n int) int) Option {
	return func(e *Engine) {
		e.intn = intn
	}
}

// NewEngine creates an Engine with the default policy and matcher.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		policy:  DefaultPolicy(),
		matcher: defaultMatcher(),
		logf:    log.Printf,
		intn:    rand.Intn,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Diff parses both documents and returns the ordered patch set that turns
// previous into latest. Malformed input fails with a ParseError.
func (e *Engine) Diff(previousXML, latestXML string) ([]Snippet, error) {
	previous, err := ParseString(previousXML)
	if err != nil {
		return nil, err
	}
	latest, err := ParseString(latestXML)
	if err != nil {
		return nil, err
	}
	return e.DiffTrees(previous, latest)
}

// DiffTrees computes the ordered patch set from already-parsed trees. The
// previous tree is never mutated; the latest tree is cloned before volatile
// attributes are stripped, so callers may reuse both trees freely.
func (e *Engine) DiffTrees(previous, latest *Node) ([]Snippet, error) {
	work := latest.Clone()

	var changed []string
	for _, c := range work.Children {
		changed = append(changed, e.compare(c, relativeRoot+c.Tag, previous)...)
	}

	snippets, err := e.assemble(work, changed)
	if err != nil {
		return nil, err
	}
	return orderSnippets(snippets, e.policy), nil
}
