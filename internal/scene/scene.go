// internal/scene/scene.go
// Package scene describes renderable charts as a tree of positioned shapes.
// It carries no rendering logic; backends walk the tree and draw it.
package scene

// Ink is the foreground colour used for axes, whiskers and text.
const Ink = "currentcolor"

// Anchor is the horizontal alignment of a text node.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Node is any element of a scene.
type Node interface {
	isNode()
}

// Group translates its children by (X, Y).
type Group struct {
	Class    string
	X, Y     float64
	Children []Node
}

// Rect is an axis-aligned rectangle with its top-left corner at (X, Y).
type Rect struct {
	X, Y          float64
	Width, Height float64
	Fill          string
	Stroke        string
}

// Line is a stroked segment.
type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         string
}

// Circle is a filled circle centred at (CX, CY).
type Circle struct {
	CX, CY, R float64
	Fill      string
}

// Text is a label whose baseline starts at (X, Y) according to Anchor.
type Text struct {
	X, Y   float64
	Body   string
	Anchor Anchor
	Size   float64
	Fill   string
}

func (*Group) isNode()  {}
func (*Rect) isNode()   {}
func (*Line) isNode()   {}
func (*Circle) isNode() {}
func (*Text) isNode()   {}

// Add appends children to g.
func (g *Group) Add(nodes ...Node) {
	g.Children = append(g.Children, nodes...)
}

// Walk visits n and its descendants depth first. dx and dy are the
// accumulated translations of the enclosing groups (excluding n's own
// offset when n is a group).
func Walk(n Node, fn func(n Node, dx, dy float64)) {
	walk(n, 0, 0, fn)
}

func walk(n Node, dx, dy float64, fn func(Node, float64, float64)) {
	fn(n, dx, dy)
	if g, ok := n.(*Group); ok {
		for _, c := range g.Children {
			walk(c, dx+g.X, dy+g.Y, fn)
		}
	}
}

// Collect returns every node of type T under n, in walk order.
func Collect[T Node](n Node) []T {
	var out []T
	Walk(n, func(node Node, _, _ float64) {
		if t, ok := node.(T); ok {
			out = append(out, t)
		}
	})
	return out
}

// FindGroup returns the first group under n with the given class.
func FindGroup(n Node, class string) *Group {
	for _, g := range Collect[*Group](n) {
		if g.Class == class {
			return g
		}
	}
	return nil
}
