package ast

// NumberLiteral is a numeric literal. No children.
type NumberLiteral struct {
	exprBase
	Value float64
}

// NewNumberLiteral creates a numeric literal node.
func NewNumberLiteral(value float64, line int) *NumberLiteral {
	n := &NumberLiteral{Value: value}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *NumberLiteral) Clone() Node { return NewNumberLiteral(n.Value, 0) }

func (n *NumberLiteral) render(_ *renderState, _ int) Rope {
	return Rope{formatNumber(n.Value)}
}

// Truthy follows numeric boolean coercion: zero is false, anything else true.
func (n *NumberLiteral) Truthy(expected bool) bool {
	if expected {
		return n.Value != 0
	}

	return n.Value == 0
}

// StringLiteral is a string literal. Quoted means Value still carries the
// source quotes and renders verbatim; otherwise Value is the bare text and
// rendering adds double quotes. No children.
type StringLiteral struct {
	exprBase
	Value  string
	Quoted bool
}

// NewStringLiteral creates a string literal node.
func NewStringLiteral(value string, quoted bool, line int) *StringLiteral {
	n := &StringLiteral{Value: value, Quoted: quoted}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *StringLiteral) Clone() Node { return NewStringLiteral(n.Value, n.Quoted, 0) }

func (n *StringLiteral) render(_ *renderState, _ int) Rope {
	if n.Quoted {
		return Rope{n.Value}
	}

	return Rope{"\"", n.Value, "\""}
}

// Unquoted returns the string's text without surrounding quotes.
func (n *StringLiteral) Unquoted() string {
	if !n.Quoted || len(n.Value) < 2 {
		return n.Value
	}

	return n.Value[1 : len(n.Value)-1]
}

// Truthy follows string boolean coercion: only the empty string is false.
func (n *StringLiteral) Truthy(expected bool) bool {
	if expected {
		return n.Unquoted() != ""
	}

	return n.Unquoted() == ""
}

// RegexLiteral is a regular expression literal. No children.
type RegexLiteral struct {
	exprBase
	Pattern string
	Flags   string
}

// NewRegexLiteral creates a regex literal node.
func NewRegexLiteral(pattern, flags string, line int) *RegexLiteral {
	n := &RegexLiteral{Pattern: pattern, Flags: flags}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *RegexLiteral) Clone() Node { return NewRegexLiteral(n.Pattern, n.Flags, 0) }

func (n *RegexLiteral) render(_ *renderState, _ int) Rope {
	return Rope{"/", n.Pattern, "/", n.Flags}
}

// BooleanLiteral is true or false. No children.
type BooleanLiteral struct {
	exprBase
	Value bool
}

// NewBooleanLiteral creates a boolean literal node.
func NewBooleanLiteral(value bool, line int) *BooleanLiteral {
	n := &BooleanLiteral{Value: value}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *BooleanLiteral) Clone() Node { return NewBooleanLiteral(n.Value, 0) }

func (n *BooleanLiteral) render(_ *renderState, _ int) Rope {
	if n.Value {
		return Rope{"true"}
	}

	return Rope{"false"}
}

// Truthy is the literal's own value.
func (n *BooleanLiteral) Truthy(expected bool) bool { return n.Value == expected }

// NullLiteral is the null literal. No children.
type NullLiteral struct {
	exprBase
}

// NewNullLiteral creates a null literal node.
func NewNullLiteral(line int) *NullLiteral {
	n := &NullLiteral{}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *NullLiteral) Clone() Node { return cloneInto(NewNullLiteral(0), n) }

func (n *NullLiteral) render(_ *renderState, _ int) Rope { return Rope{"null"} }

// Truthy: null always coerces to false.
func (n *NullLiteral) Truthy(expected bool) bool { return !expected }

// ThisExpr is the this expression. No children.
type ThisExpr struct {
	exprBase
}

// NewThisExpr creates a this node.
func NewThisExpr(line int) *ThisExpr {
	n := &ThisExpr{}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *ThisExpr) Clone() Node { return cloneInto(NewThisExpr(0), n) }

func (n *ThisExpr) render(_ *renderState, _ int) Rope { return Rope{"this"} }

// EmptyExpr is the hole left by an elided expression, such as an omitted
// for-loop clause. It renders as nothing; as a block it renders as ";".
// No children.
type EmptyExpr struct {
	exprBase
}

// NewEmptyExpr creates an empty expression node.
func NewEmptyExpr(line int) *EmptyExpr {
	n := &EmptyExpr{}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *EmptyExpr) Clone() Node { return cloneInto(NewEmptyExpr(0), n) }

func (n *EmptyExpr) render(_ *renderState, _ int) Rope { return Rope{} }
