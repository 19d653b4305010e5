// Package ast provides the node tree at the heart of the fbjs rewriter: a
// closed catalog of JavaScript node kinds, a multi-mode source renderer, and
// a constant-folding reducer. Trees are produced by an external parser (or
// decoded from their JSON document form) and mutated only through the
// position-based child operations defined here.
//
// The package performs no schema validation: every kind documents its child
// slot count and meaning, and callers are responsible for upholding them.
// Rendering or reducing a malformed tree has an undefined result.
package ast

import "reflect"

// Node is the interface implemented by every node kind in the catalog. The
// catalog is closed: the render protocol dispatches over the concrete kinds
// in this package and nothing else.
type Node interface {
	// Line is the 1-based source line of the node. 0 means the node is
	// synthetic or its position is unknown.
	Line() int

	// Children is the ordered child slot sequence. A slot may hold nil to
	// represent a genuinely optional sub-construct (a missing else branch,
	// a missing catch clause).
	Children() *ChildList

	// Clone deep-copies the node and every present child. Clones carry no
	// source position.
	Clone() Node

	render(st *renderState, indent int) Rope
}

// Expr is the capability interface of expression kinds. Statement rendering
// appends a terminating semicolon to expressions, and the reducer consults
// Truthy to fold side-effect-free constants.
type Expr interface {
	Node

	// Truthy reports whether the expression provably evaluates, with no side
	// effects, to a value whose boolean coercion equals expected. Kinds that
	// cannot prove this return false for both answers.
	Truthy(expected bool) bool

	// Lvalue reports whether the expression is a valid assignment target.
	Lvalue() bool
}

// base carries the state shared by all node kinds.
type base struct {
	kids ChildList
	line int
}

func (b *base) Line() int            { return b.line }
func (b *base) Children() *ChildList { return &b.kids }

// exprBase supplies the Expr defaults: unknown truthiness, not assignable.
type exprBase struct {
	base
}

func (*exprBase) Truthy(bool) bool { return false }
func (*exprBase) Lvalue() bool     { return false }

// ChildList is an ordered sequence of child slots with stable positions.
// Removing or inserting a slot never invalidates other ChildPos handles,
// which is what the reducer relies on while it rewrites children mid-walk.
type ChildList struct {
	head *ChildPos
	tail *ChildPos
	size int
}

// ChildPos is a stable handle to one slot of a ChildList.
type ChildPos struct {
	list *ChildList
	prev *ChildPos
	next *ChildPos
	node Node
}

// Node returns the slot's node, nil for an absent slot.
func (p *ChildPos) Node() Node { return p.node }

// Next returns the following position, nil at the end.
func (p *ChildPos) Next() *ChildPos { return p.next }

// Prev returns the preceding position, nil at the front.
func (p *ChildPos) Prev() *ChildPos { return p.prev }

// Front returns the first position, nil when the list is empty.
func (l *ChildList) Front() *ChildPos { return l.head }

// Back returns the last position, nil when the list is empty.
func (l *ChildList) Back() *ChildPos { return l.tail }

// Len returns the number of slots, absent ones included.
func (l *ChildList) Len() int { return l.size }

// Empty reports whether the list has no slots at all.
func (l *ChildList) Empty() bool { return l.size == 0 }

// Append adds a slot at the end and returns its position.
func (l *ChildList) Append(n Node) *ChildPos {
	pos := &ChildPos{list: l, node: n, prev: l.tail}
	if l.tail == nil {
		l.head = pos
	} else {
		l.tail.next = pos
	}

	l.tail = pos
	l.size++

	return pos
}

// Prepend adds a slot at the front and returns its position.
func (l *ChildList) Prepend(n Node) *ChildPos {
	pos := &ChildPos{list: l, node: n, next: l.head}
	if l.head == nil {
		l.tail = pos
	} else {
		l.head.prev = pos
	}

	l.head = pos
	l.size++

	return pos
}

// InsertBefore adds a slot immediately before at and returns its position.
// A nil at appends.
func (l *ChildList) InsertBefore(n Node, at *ChildPos) *ChildPos {
	if at == nil {
		return l.Append(n)
	}

	if at.prev == nil {
		return l.Prepend(n)
	}

	pos := &ChildPos{list: l, node: n, prev: at.prev, next: at}
	at.prev.next = pos
	at.prev = pos
	l.size++

	return pos
}

// Remove detaches the slot at the given position and returns its node. The
// caller now owns the returned subtree; other positions stay valid.
func (l *ChildList) Remove(at *ChildPos) Node {
	if at.prev == nil {
		l.head = at.next
	} else {
		at.prev.next = at.next
	}

	if at.next == nil {
		l.tail = at.prev
	} else {
		at.next.prev = at.prev
	}

	at.prev, at.next, at.list = nil, nil, nil
	l.size--

	return at.node
}

// Replace swaps the node held at the given position and returns the old one.
// The position itself stays valid and keeps its place in the sequence.
func (l *ChildList) Replace(n Node, at *ChildPos) Node {
	old := at.node
	at.node = n

	return old
}

// Append adds child slots to n in order (a nil entry creates an absent slot)
// and returns n, so trees compose as expressions.
func Append[T Node](n T, kids ...Node) T {
	for _, kid := range kids {
		n.Children().Append(kid)
	}

	return n
}

// cloneInto deep-clones src's child slots into dst and returns dst.
func cloneInto[T Node](dst T, src Node) T {
	for p := src.Children().Front(); p != nil; p = p.Next() {
		if p.Node() == nil {
			dst.Children().Append(nil)
		} else {
			dst.Children().Append(p.Node().Clone())
		}
	}

	return dst
}

// Equal reports structural equality: same concrete kind, equal payload, and
// pairwise-equal child sequences of the same length. Two absent slots are
// equal; an absent slot never equals a present one.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	switch x := a.(type) {
	case *NumberLiteral:
		return x.Value == b.(*NumberLiteral).Value
	case *StringLiteral:
		return x.Value == b.(*StringLiteral).Value
	case *RegexLiteral:
		y := b.(*RegexLiteral)

		return x.Pattern == y.Pattern && x.Flags == y.Flags
	case *BooleanLiteral:
		return x.Value == b.(*BooleanLiteral).Value
	case *Identifier:
		return x.Name == b.(*Identifier).Name
	case *BinaryExpr:
		return x.Op == b.(*BinaryExpr).Op && equalChildren(a, b)
	case *AssignExpr:
		return x.Op == b.(*AssignExpr).Op && equalChildren(a, b)
	case *UnaryExpr:
		return x.Op == b.(*UnaryExpr).Op && equalChildren(a, b)
	case *PostfixExpr:
		return x.Op == b.(*PostfixExpr).Op && equalChildren(a, b)
	case *JumpStmt:
		return x.Op == b.(*JumpStmt).Op && equalChildren(a, b)
	default:
		return equalChildren(a, b)
	}
}

func equalChildren(a, b Node) bool {
	pa, pb := a.Children().Front(), b.Children().Front()
	for pa != nil && pb != nil {
		if !Equal(pa.Node(), pb.Node()) {
			return false
		}

		pa, pb = pa.Next(), pb.Next()
	}

	return pa == nil && pb == nil
}

// Walk visits n and every present descendant in depth-first, child order.
func Walk(n Node, visit func(Node)) {
	if n == nil {
		return
	}

	visit(n)

	for p := n.Children().Front(); p != nil; p = p.Next() {
		if p.Node() != nil {
			Walk(p.Node(), visit)
		}
	}
}

// CountKinds tallies the nodes of a tree by kind name.
func CountKinds(n Node) map[string]int {
	counts := make(map[string]int)

	Walk(n, func(m Node) { counts[KindOf(m)]++ })

	return counts
}
