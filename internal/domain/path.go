package domain

import (
	"strconv"
	"strings"
)

// Location paths are xpath-like strings. Paths produced by the comparator
// are relative ("./network/interface"); ToSetPath rewrites them to the
// absolute document form ("/config/network/interface") expected by the
// apply side. The rewrite is pure prefix substitution, no tree lookup.
const (
	relativeRoot = "./"
	absoluteRoot = "/config/"
)

// SplitPath splits a path into its container and final segment. The split
// only happens on '/' characters outside double-quoted predicate values, so
// entry[@name="a/b"] survives intact.
func SplitPath(path string) (container, last string) {
	parts := splitSegments(path)
	if len(parts) <= 1 {
		return "", path
	}
	return strings.Join(parts[:len(parts)-1], "/"), parts[len(parts)-1]
}

func splitSegments(path string) []string {
	var (
		parts   []string
		cur     strings.Builder
		inQuote bool
	)
	for i := 0; i < len(path); i++ {
		c := path[i]
		switch {
		case c == '"':
			inQuote = !inQuote
			cur.WriteByte(c)
		case c == '/' && !inQuote:
			parts = append(parts, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	parts = append(parts, cur.String())
	return parts
}

// ToSetPath rewrites a relative path to the absolute document form.
func ToSetPath(path string) string {
	if strings.HasPrefix(path, relativeRoot) {
		return absoluteRoot + path[len(relativeRoot):]
	}
	return path
}

// ToRelativePath rewrites an absolute document path to the relative form
// the engine works with.
func ToRelativePath(path string) string {
	if strings.HasPrefix(path, absoluteRoot) {
		return relativeRoot + path[len(absoluteRoot):]
	}
	return path
}

// BareTag strips any bracketed predicate or index suffix from a path
// segment, leaving the tag name.
func BareTag(segment string) string {
	if i := strings.IndexByte(segment, '['); i >= 0 {
		return segment[:i]
	}
	return segment
}

// AttributePredicate builds the attribute-predicate body for a node:
// `@key="value"` pairs in insertion order, space separated, excluding the
// volatile attribute. Empty when the node has no identifying attributes.
func AttributePredicate(n *Node) string {
	var parts []string
	for _, a := range n.Attrs {
		if a.Key == volatileAttr {
			continue
		}
		parts = append(parts, `@`+a.Key+`="`+a.Value+`"`)
	}
	return strings.Join(parts, " ")
}

// predicate is the parsed qualifier set of one path segment.
type predicate struct {
	attrs   []Attr
	text    string
	hasText bool
	index   int // 1-based position among same-tag siblings, 0 when unset
}

// Resolve evaluates a relative path against the tree rooted at root (the
// leading "." names root itself) and returns every matching node. Segments
// accept attribute predicates in both the chained [@a="1"][@b="2"] and the
// space-joined [@a="1" @b="2"] forms, as well as [text()="v"] and 1-based
// [n] positional predicates.
func Resolve(root *Node, path string) []*Node {
	segs := splitSegments(path)
	if len(segs) < 2 || segs[0] != "." {
		return nil
	}

	current := []*Node{root}
	for _, seg := range segs[1:] {
		tag, pred, ok := parseSegment(seg)
		if !ok {
			return nil
		}
		var next []*Node
		for _, n := range current {
			next = append(next, matchChildren(n, tag, pred)...)
		}
		if len(next) == 0 {
			return nil
		}
		current = next
	}
	return current
}

func parseSegment(seg string) (string, predicate, bool) {
	var pred predicate

	i := strings.IndexByte(seg, '[')
	if i < 0 {
		return seg, pred, seg != ""
	}
	tag := seg[:i]
	if tag == "" {
		return "", pred, false
	}

	rest := seg[i:]
	for len(rest) > 0 {
		if rest[0] != '[' {
			return "", pred, false
		}
		end := closingBracket(rest)
		if end < 0 {
			return "", pred, false
		}
		if !pred.parse(rest[1:end]) {
			return "", pred, false
		}
		rest = rest[end+1:]
	}
	return tag, pred, true
}

// closingBracket returns the index of the ']' matching s[0], skipping
// brackets inside double quotes. s must start with '['.
func closingBracket(s string) int {
	inQuote := false
	for i := 1; i < len(s); i++ {
		switch {
		case s[i] == '"':
			inQuote = !inQuote
		case s[i] == ']' && !inQuote:
			return i
		}
	}
	return -1
}

func (p *predicate) parse(body string) bool {
	body = strings.TrimSpace(body)
	if body == "" {
		return false
	}

	if n, err := strconv.Atoi(body); err == nil {
		if n < 1 || p.index != 0 {
			return false
		}
		p.index = n
		return true
	}

	if v, ok := strings.CutPrefix(body, `text()=`); ok {
		v, ok = unquote(strings.TrimSpace(v))
		if !ok || p.hasText {
			return false
		}
		p.text = v
		p.hasText = true
		return true
	}

	for _, tok := range splitQuoted(body) {
		k, v, found := strings.Cut(tok, "=")
		if !found || !strings.HasPrefix(k, "@") {
			return false
		}
		val, ok := unquote(v)
		if !ok {
			return false
		}
		p.attrs = append(p.attrs, Attr{Key: k[1:], Value: val})
	}
	return true
}

// splitQuoted splits on spaces outside double quotes.
func splitQuoted(s string) []string {
	var (
		parts   []string
		cur     strings.Builder
		inQuote bool
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			inQuote = !inQuote
			cur.WriteByte(c)
		case c == ' ' && !inQuote:
			if cur.Len() > 0 {
				parts = append(parts, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteByte(c)
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

func unquote(s string) (string, bool) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", false
	}
	return s[1 : len(s)-1], true
}

func matchChildren(parent *Node, tag string, pred predicate) []*Node {
	var matched []*Node
	tagIndex := 0
	for _, child := range parent.Children {
		if child.Tag != tag {
			continue
		}
		tagIndex++
		if pred.index != 0 && tagIndex != pred.index {
			continue
		}
		if pred.hasText && strings.TrimSpace(child.Text) != pred.text {
			continue
		}
		if !attrsMatch(child, pred.attrs) {
			continue
		}
		matched = append(matched, child)
	}
	return matched
}

func attrsMatch(n *Node, want []Attr) bool {
	for _, a := range want {
		v, ok := n.Attr(a.Key)
		if !ok || v != a.Value {
			return false
		}
	}
	return true
}
