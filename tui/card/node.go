// Package card builds the visual tree of a field statistics card and renders
// it for terminals and screen readers.
package card

// Kind is the type of a visual primitive.
type Kind string

const (
	KindPanel    Kind = "panel"
	KindFlex     Kind = "flex"
	KindFlexItem Kind = "flex_item"
	KindText     Kind = "text"
	KindIcon     Kind = "icon"
	KindProgress Kind = "progress"
	KindSpacer   Kind = "spacer"
	KindStat     Kind = "stat"
)

// Role tags a node with its meaning on the card so renderers and tests can
// find sections without relying on position.
type Role string

const (
	RoleCard          Role = "card"
	RoleHeader        Role = "header"
	RoleTitle         Role = "title"
	RoleContent       Role = "content"
	RoleDocuments     Role = "documents"
	RoleDistinct      Role = "distinct"
	RoleRangeHeadings Role = "range_headings"
	RoleRangeValues   Role = "range_values"
	RoleTopValues     Role = "top_values"
	RoleTopHit        Role = "top_hit"
	RoleTopHitLabel   Role = "top_hit_label"
	RoleTopHitBar     Role = "top_hit_bar"
	RoleTopHitPercent Role = "top_hit_percent"
	RolePlaceholder   Role = "placeholder"
)

// Align is the horizontal alignment of text.
type Align string

const (
	AlignLeft   Align = "left"
	AlignRight  Align = "right"
	AlignCenter Align = "center"
)

// Icon is a glyph with a colour hint.
type Icon struct {
	Name  string `json:"name"`
	Glyph string `json:"glyph"`
	Color string `json:"color,omitempty"`
}

// Node is one element of a card's visual tree.
type Node struct {
	Kind Kind   `json:"kind"`
	Role Role   `json:"role,omitempty"`
	Text string `json:"text,omitempty"`
	Icon *Icon  `json:"icon,omitempty"`

	// Decorative icons carry no accessible meaning of their own.
	Decorative bool   `json:"decorative,omitempty"`
	AriaLabel  string `json:"aria_label,omitempty"`
	Focusable  bool   `json:"focusable,omitempty"`

	Align    Align `json:"align,omitempty"`
	Width    int   `json:"width,omitempty"`
	Truncate bool  `json:"truncate,omitempty"`
	Subdued  bool  `json:"subdued,omitempty"`

	// Progress nodes only.
	Value int64 `json:"value,omitempty"`
	Max   int64 `json:"max,omitempty"`

	Children []*Node `json:"children,omitempty"`
}

// Find returns the first node with the given role in depth-first order.
func (n *Node) Find(role Role) *Node {
	if n == nil {
		return nil
	}
	if n.Role == role {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(role); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node with the given role in depth-first order.
func (n *Node) FindAll(role Role) []*Node {
	var out []*Node
	n.walk(func(c *Node) {
		if c.Role == role {
			out = append(out, c)
		}
	})
	return out
}

func (n *Node) walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		c.walk(fn)
	}
}

func text(role Role, s string) *Node {
	return &Node{Kind: KindText, Role: role, Text: s}
}
