package domain

import "strconv"

// Snippet is a portable, self-contained description of one changed subtree.
// Name, XPath and Element are the wire contract with the apply-side
// collaborator and must not change shape: XPath is the container to insert
// into, Element the serialized outer markup of the changed node. FullPath
// is the root-relative location of the node itself, used only to classify
// the snippet for ordering.
type Snippet struct {
	Name     string
	XPath    string
	Element  string
	FullPath string
}

// assemble converts each changed path into a Snippet against the working
// copy of the latest tree. Entries matching the ignore list, or whose path
// no longer resolves, are logged and skipped; one bad entry must not block
// the rest. A path resolving to several nodes violates the comparator's
// uniqueness invariant and fails the whole operation.
func (e *Engine) assemble(latest *Node, paths []string) ([]Snippet, error) {
	var snippets []Snippet
	for _, path := range paths {
		container, last := SplitPath(path)
		setPath := ToSetPath(container)
		tag := BareTag(last)

		if e.policy.isIgnored(setPath) {
			e.logf("skipping ignored path: %s", path)
			continue
		}

		nodes := Resolve(latest, path)
		if len(nodes) == 0 {
			// The comparator derived this path from the same tree, so this
			// should not happen; skip rather than lose the whole set.
			e.logf("skipping unresolvable path: %s", path)
			continue
		}
		if len(nodes) > 1 {
			return nil, &PathResolutionError{Path: path, Matches: len(nodes)}
		}

		snippets = append(snippets, Snippet{
			Name:     tag + "-" + strconv.Itoa(e.intn(1000000)),
			XPath:    setPath,
			Element:  stripVolatile(nodes[0]).XML(),
			FullPath: path,
		})
	}
	return snippets, nil
}
