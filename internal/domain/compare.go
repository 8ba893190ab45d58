package domain

import (
	"strconv"
	"strings"
)

// compare walks node (from the latest tree) and returns the paths present
// in latest but absent, or textually changed, in previous. Each call
// returns a fresh slice; nothing is shared across branches.
//
// A path flagged as new is never descended into: a new parent subsumes all
// its descendants, so the returned set never contains both a path and one
// of its descendants.
//
// Known limitation, kept on purpose: a node found at the same path whose
// attributes differ is not flagged unless the attribute participates in the
// path predicate. Attributes are treated as identifying, not payload.
func (e *Engine) compare(node *Node, path string, previous *Node) []string {
	found := Resolve(previous, path)
	if len(found) == 0 {
		return []string{path}
	}

	if node.IsLeaf() {
		if found[0].Text != node.Text {
			return []string{path}
		}
		return nil
	}

	isList := false
	if isHomogeneousList(node.Children) {
		// Approximate alignment first: large repeated-entry lists are
		// common and naive per-child comparison flags every reordering.
		if e.matcher.DiffCount(found[0], node) == 0 {
			return nil
		}
		isList = true
	}

	var changed []string
	for i, child := range node.Children {
		seg := segmentFor(child, isList, i+1)
		changed = append(changed, e.compare(child, path+"/"+seg, previous)...)
	}
	return changed
}

// segmentFor builds the path segment for a child: attribute predicate when
// the child carries identifying attributes, then text predicate or 1-based
// index for list members, bare tag otherwise.
func segmentFor(child *Node, isList bool, index int) string {
	if pred := AttributePredicate(child); pred != "" {
		return child.Tag + "[" + pred + "]"
	}
	if isList {
		if text := strings.TrimSpace(child.Text); text != "" {
			return child.Tag + `[text()="` + text + `"]`
		}
		return child.Tag + "[" + strconv.Itoa(index) + "]"
	}
	return child.Tag
}
