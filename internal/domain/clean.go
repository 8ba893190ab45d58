package domain

// volatileAttr is the instance-local attribute stripped from subtrees
// before emission. PAN-OS stamps rules and objects with per-device uuid
// attributes that must not travel to another device.
const volatileAttr = "uuid"

// stripVolatile removes the volatile attribute from the node and every
// descendant, in place on the working copy. Safe to call on nil.
func stripVolatile(n *Node) *Node {
	if n == nil {
		return nil
	}
	n.removeAttr(volatileAttr)
	for _, c := range n.Children {
		stripVolatile(c)
	}
	return n
}
