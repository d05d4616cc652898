package card

import (
	"strings"
)

// RenderAccessible renders a card tree as plain text for screen readers. The
// header is read through its accessible label and decorative icons are
// skipped.
func RenderAccessible(root *Node) string {
	var lines []string

	if header := root.Find(RoleHeader); header != nil {
		lines = append(lines, header.AriaLabel)
	}

	content := root.Find(RoleContent)
	if content == nil {
		return strings.Join(lines, "\n")
	}

	headings := content.Find(RoleRangeHeadings)
	for _, n := range content.Children {
		switch n.Role {
		case RoleDocuments, RoleDistinct, RolePlaceholder:
			lines = append(lines, n.Text)
		case RoleRangeValues:
			lines = append(lines, rangeLine(headings, n))
		case RoleTopValues:
			lines = append(lines, n.Text+":")
		case RoleTopHit:
			lines = append(lines, topHitLine(n))
		}
	}

	return strings.Join(lines, "\n")
}

func rangeLine(headings, values *Node) string {
	parts := make([]string, 0, len(values.Children))
	for i, v := range values.Children {
		name := ""
		if headings != nil && i < len(headings.Children) {
			name = headings.Children[i].Text
		}
		parts = append(parts, strings.TrimSpace(name+" "+v.Text))
	}
	return strings.Join(parts, ", ")
}

func topHitLine(n *Node) string {
	var label, pct string
	if l := n.Find(RoleTopHitLabel); l != nil {
		label = l.Text
	}
	if p := n.Find(RoleTopHitPercent); p != nil {
		pct = p.Text
	}
	return "  " + label + ": " + pct
}
