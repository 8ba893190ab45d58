package domain

import "strings"

// isHomogeneousList reports whether a set of siblings forms a repeated-entry
// list: two or more children all sharing one tag name. Purely syntactic;
// attributes and content are not consulted.
func isHomogeneousList(children []*Node) bool {
	if len(children) <= 1 {
		return false
	}
	tag := children[0].Tag
	for _, c := range children[1:] {
		if c.Tag != tag {
			return false
		}
	}
	return true
}

// Matcher aligns the previous and latest versions of a homogeneous list
// approximately, so that merely reordered entries do not register as
// changes. Ratio is the minimum leaf-similarity for two entries to pair;
// the default favors precision. FastMatch enables an exact-signature
// pre-pass that handles the common unchanged/reordered case without any
// pairwise comparison.
//
// The pairwise alignment is quadratic in the list length; very large
// sibling lists bound the whole comparison polynomially.
type Matcher struct {
	Ratio     float64
	FastMatch bool
}

func defaultMatcher() Matcher {
	return Matcher{Ratio: 0.1, FastMatch: true}
}

// DiffCount returns the approximate number of differing entries between the
// previous and latest versions of a list container. Zero means the list is
// unchanged up to reordering and the comparator need not descend.
func (m Matcher) DiffCount(previous, latest *Node) int {
	prevSigs := signatures(previous.Children)
	latestSigs := signatures(latest.Children)

	if m.FastMatch && sameMultiset(prevSigs, latestSigs) {
		return 0
	}

	// Greedy alignment: each latest entry claims its most similar unmatched
	// previous entry. Unpaired entries on either side, and pairs whose
	// content differs, each count as one difference.
	used := make([]bool, len(previous.Children))
	diffs := 0
	for i, lc := range latest.Children {
		best, bestRatio := -1, m.Ratio
		for j, pc := range previous.Children {
			if used[j] {
				continue
			}
			r := leafRatio(pc, lc)
			if r >= bestRatio {
				best, bestRatio = j, r
			}
		}
		if best < 0 {
			diffs++
			continue
		}
		used[best] = true
		if prevSigs[best] != latestSigs[i] {
			diffs++
		}
	}
	for _, u := range used {
		if !u {
			diffs++
		}
	}
	return diffs
}

func signatures(nodes []*Node) []string {
	sigs := make([]string, len(nodes))
	for i, n := range nodes {
		sigs[i] = n.XML()
	}
	return sigs
}

func sameMultiset(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, s := range a {
		counts[s]++
	}
	for _, s := range b {
		counts[s]--
		if counts[s] < 0 {
			return false
		}
	}
	return true
}

// leafRatio measures similarity of two subtrees as the multiset overlap of
// their leaf values and attributes, scaled to [0, 1].
func leafRatio(a, b *Node) float64 {
	la, lb := leaves(a, nil), leaves(b, nil)
	if len(la) == 0 && len(lb) == 0 {
		if a.XML() == b.XML() {
			return 1
		}
		return 0
	}

	counts := make(map[string]int, len(la))
	for _, l := range la {
		counts[l]++
	}
	common := 0
	for _, l := range lb {
		if counts[l] > 0 {
			counts[l]--
			common++
		}
	}
	return 2 * float64(common) / float64(len(la)+len(lb))
}

func leaves(n *Node, acc []string) []string {
	for _, a := range n.Attrs {
		acc = append(acc, "@"+a.Key+"="+a.Value)
	}
	if n.IsLeaf() {
		return append(acc, n.Tag+"="+strings.TrimSpace(n.Text))
	}
	for _, c := range n.Children {
		acc = leaves(c, acc)
	}
	return acc
}
