package types

import "strings"

// Variant distinguishes the three shapes a CstNode can take. Go has no
// native sum type, so CstNode carries Variant as a discriminant and callers
// are expected to switch over it exhaustively, the way the teacher's
// EntityKind/Disposition enums are switched over in pkg/entity and pkg/merge.
type Variant int

const (
	VariantLeaf Variant = iota
	VariantConstructed
	VariantList
)

func (v Variant) String() string {
	switch v {
	case VariantLeaf:
		return "Leaf"
	case VariantConstructed:
		return "Constructed"
	case VariantList:
		return "List"
	default:
		return "Unknown"
	}
}

// Ordering tags a List node as semantically ordered (statement lists,
// where position carries meaning) or unordered (import lists, class
// bodies, where children may be permuted without changing meaning).
type Ordering int

const (
	Ordered Ordering = iota
	Unordered
)

func (o Ordering) String() string {
	if o == Unordered {
		return "Unordered"
	}
	return "Ordered"
}

// NodeID uniquely identifies a CstNode within the tree it was parsed into.
type NodeID uint64

// CstNode is the concrete-syntax-tree node type: a Leaf carries a verbatim
// source slice; a Constructed node is a fixed-arity non-terminal; a List
// node is a variable-arity non-terminal tagged with an Ordering.
//
// Invariants: id is unique within a tree; pre-order concatenation of leaf
// Values reproduces the source exactly; Kind is an opaque grammar-defined
// string; a Leaf has no Children; a List's Ordering never changes after
// construction.
type CstNode struct {
	ID       NodeID
	Kind     string
	Variant  Variant
	Value    string     // Leaf only
	Children []*CstNode // Constructed/List only
	Ordering Ordering   // List only
}

// NewLeaf builds a terminal node carrying the exact source slice it spans.
func NewLeaf(id NodeID, kind, value string) *CstNode {
	return &CstNode{ID: id, Kind: kind, Variant: VariantLeaf, Value: value}
}

// NewConstructed builds a fixed-arity non-terminal node.
func NewConstructed(id NodeID, kind string, children []*CstNode) *CstNode {
	return &CstNode{ID: id, Kind: kind, Variant: VariantConstructed, Children: children}
}

// NewList builds a variable-arity non-terminal node.
func NewList(id NodeID, kind string, ordering Ordering, children []*CstNode) *CstNode {
	return &CstNode{ID: id, Kind: kind, Variant: VariantList, Ordering: ordering, Children: children}
}

// IsLeaf reports whether n is a terminal node.
func (n *CstNode) IsLeaf() bool {
	return n != nil && n.Variant == VariantLeaf
}

// ToSource reconstructs the original source bytes by concatenating leaf
// values in pre-order.
func (n *CstNode) ToSource() string {
	var b strings.Builder
	n.writeSource(&b)
	return b.String()
}

func (n *CstNode) writeSource(b *strings.Builder) {
	if n == nil {
		return
	}
	switch n.Variant {
	case VariantLeaf:
		b.WriteString(n.Value)
	default:
		for _, c := range n.Children {
			c.writeSource(b)
		}
	}
}

// LeafValues returns the pre-order sequence of leaf values under n. This is
// the sequence compared by tree_similarity's LCS metric.
func (n *CstNode) LeafValues() []string {
	var out []string
	n.collectLeafValues(&out)
	return out
}

func (n *CstNode) collectLeafValues(out *[]string) {
	if n == nil {
		return
	}
	switch n.Variant {
	case VariantLeaf:
		*out = append(*out, n.Value)
	default:
		for _, c := range n.Children {
			c.collectLeafValues(out)
		}
	}
}

// LeafCount returns the number of leaves in the subtree rooted at n.
func (n *CstNode) LeafCount() int {
	if n == nil {
		return 0
	}
	if n.Variant == VariantLeaf {
		return 1
	}
	count := 0
	for _, c := range n.Children {
		count += c.LeafCount()
	}
	return count
}

// StructurallyEqual compares two nodes ignoring ids: kind, variant, value,
// ordering and children (recursively) must all match.
func StructurallyEqual(a, b *CstNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Variant != b.Variant {
		return false
	}
	switch a.Variant {
	case VariantLeaf:
		return a.Value == b.Value
	case VariantList:
		if a.Ordering != b.Ordering {
			return false
		}
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !StructurallyEqual(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// IDGen is a process-local monotonic node-id counter. Parsers hold one per
// parse; tests may reset it via Reset to obtain reproducible ids.
type IDGen struct {
	next NodeID
}

// NewIDGen constructs a generator starting at id 1.
func NewIDGen() *IDGen {
	return &IDGen{next: 1}
}

// Next returns the next unused id and advances the counter.
func (g *IDGen) Next() NodeID {
	id := g.next
	g.next++
	return id
}

// Reset rewinds the counter back to 1, for deterministic test fixtures.
func (g *IDGen) Reset() {
	g.next = 1
}

// CloneWithFreshIDs deep-copies n, assigning every node a new id from gen.
// The amalgamator uses it to copy resolved subtrees into merged output;
// tests use it to verify StructurallyEqual is id-independent.
func CloneWithFreshIDs(n *CstNode, gen *IDGen) *CstNode {
	if n == nil {
		return nil
	}
	clone := &CstNode{
		ID:       gen.Next(),
		Kind:     n.Kind,
		Variant:  n.Variant,
		Value:    n.Value,
		Ordering: n.Ordering,
	}
	if n.Children != nil {
		clone.Children = make([]*CstNode, len(n.Children))
		for i, c := range n.Children {
			clone.Children[i] = CloneWithFreshIDs(c, gen)
		}
	}
	return clone
}
