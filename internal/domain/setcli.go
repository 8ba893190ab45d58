package domain

import "strings"

// SetCommandDiff renders both configurations as set commands and returns
// the commands present only in the latest one. This lets a change made on
// one device be replayed on another as CLI input. Readonly state is
// dropped, and the single-vsys device prefixes are normalized away.
func (e *Engine) SetCommandDiff(previousXML, latestXML string) ([]string, error) {
	previous, err := ParseString(previousXML)
	if err != nil {
		return nil, err
	}
	latest, err := ParseString(latestXML)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, cmd := range setCommands(previous) {
		seen[cmd] = struct{}{}
	}

	var diffs []string
	for _, cmd := range setCommands(latest) {
		if _, ok := seen[cmd]; ok {
			continue
		}
		if strings.HasPrefix(cmd, "set readonly") {
			continue
		}
		cleaned := strings.ReplaceAll(cmd, "devices localhost.localdomain ", "")
		cleaned = strings.ReplaceAll(cleaned, "vsys vsys1 ", "")
		diffs = append(diffs, strings.ReplaceAll(cleaned, "\n", " "))
	}
	return diffs, nil
}

// setCommands flattens a configuration tree into set commands, one per
// leaf. Entries contribute their name attribute as the token, member lists
// contribute one command per member value.
func setCommands(root *Node) []string {
	var cmds []string
	for _, c := range root.Children {
		walkSet(c, []string{"set"}, &cmds)
	}
	return cmds
}

func walkSet(n *Node, tokens []string, out *[]string) {
	tok := n.Tag
	if n.Tag == "entry" {
		if name, ok := n.Attr("name"); ok {
			tok = quoteToken(name)
		}
	}
	tokens = append(tokens, tok)

	if n.IsLeaf() {
		cmd := strings.Join(tokens, " ")
		if text := strings.TrimSpace(n.Text); text != "" {
			cmd += " " + quoteToken(text)
		}
		*out = append(*out, cmd)
		return
	}

	for _, c := range n.Children {
		if c.Tag == "member" {
			if text := strings.TrimSpace(c.Text); text != "" {
				*out = append(*out, strings.Join(tokens, " ")+" "+quoteToken(text))
			}
			continue
		}
		walkSet(c, tokens, out)
	}
}

func quoteToken(s string) string {
	if strings.ContainsAny(s, " \t") {
		return `"` + s + `"`
	}
	return s
}
