package domain

import "strings"

// Policy fixes which changes are never emitted and how the emitted set is
// ordered. Priority prefixes are evaluated in list order; a snippet belongs
// to the first class whose prefix is a substring of its full path. Snippets
// matching no class keep their relative order and land after all priority
// classes; deferred classes come last.
//
// The ordering approximates the dependency topology between configuration
// areas (certificates before tags before shared objects before network and
// zone objects before addresses, rulebase always last). It is a fixed
// heuristic, not a verified topological sort: circular dependencies are
// neither detected nor reported.
type Policy struct {
	IgnoredPaths []string
	Priority     []string
	Deferred     []string
}

// DefaultPolicy returns the stock ignore list and ordering classes.
func DefaultPolicy() Policy {
	return Policy{
		IgnoredPaths: []string{
			// The built-in administrative account never travels.
			`/config/mgt-config/users/entry[@name="admin"]`,
		},
		Priority: []string{
			"/shared/certificate",
			"/shared/ssl-tls-service-profile",
			"/shared/tag",
			"/shared/profiles",
			"/shared/reports",
			"/shared/", // catch the rest of the shared items here
			"/tag/entry",
			"/deviceconfig/system",
			"/network/interface",
			"/network/virtual-wire",
			"/network/vlan",
			"/network/ike",
			"/network/tunnel",
			"/network/virtual-router",
			"/network/profiles/zone-protection-profile",
			"/zone/entry",
			"/profiles/custom-url-category", // before profiles/url-filtering
			"/address/entry",                // before rules and address-group
		},
		Deferred: []string{
			"/rulebase",
		},
	}
}

func (p Policy) isIgnored(containerPath string) bool {
	for _, ignored := range p.IgnoredPaths {
		if containerPath == ignored {
			return true
		}
	}
	return false
}

func (p Policy) isDeferred(fullPath string) bool {
	for _, prefix := range p.Deferred {
		if strings.Contains(fullPath, prefix) {
			return true
		}
	}
	return false
}

// orderSnippets imposes the policy's total order on an unordered snippet
// set. Within a class, original relative order is preserved; once placed, a
// snippet is not reconsidered for a later class. Deterministic for a given
// input and policy.
func orderSnippets(snippets []Snippet, policy Policy) []Snippet {
	if len(snippets) == 0 {
		return snippets
	}

	ordered := make([]Snippet, 0, len(snippets))
	placed := make([]bool, len(snippets))

	collect := func(prefix string) {
		for i, s := range snippets {
			if !placed[i] && strings.Contains(s.FullPath, prefix) {
				ordered = append(ordered, s)
				placed[i] = true
			}
		}
	}

	for _, prefix := range policy.Priority {
		collect(prefix)
	}

	for i, s := range snippets {
		if !placed[i] && !policy.isDeferred(s.FullPath) {
			ordered = append(ordered, s)
			placed[i] = true
		}
	}

	for _, prefix := range policy.Deferred {
		collect(prefix)
	}

	return ordered
}
