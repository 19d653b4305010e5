package ast

// BinaryExpr is a binary operation. Children: left, right.
type BinaryExpr struct {
	exprBase
	Op BinaryOp
}

// NewBinaryExpr creates a binary operation node.
func NewBinaryExpr(op BinaryOp, line int) *BinaryExpr {
	n := &BinaryExpr{Op: op}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *BinaryExpr) Clone() Node { return cloneInto(NewBinaryExpr(n.Op, 0), n) }

func (n *BinaryExpr) render(st *renderState, indent int) Rope {
	ret := n.Children().Front().Node().render(st, indent)

	padded := true
	if st.pretty {
		padded = false

		if n.Op != OpComma {
			ret.push(" ")
		}
	}

	if padded && n.Op.isWord() {
		ret.push(" ", n.Op.Token(), " ")
	} else {
		ret.push(n.Op.Token())
	}

	if !padded {
		ret.push(" ")
	}

	ret.join(n.Children().Back().Node().render(st, indent))

	return ret
}

// CondExpr is a ternary conditional. Children: test, consequent, alternate.
type CondExpr struct {
	exprBase
}

// NewCondExpr creates a conditional expression node.
func NewCondExpr(line int) *CondExpr {
	n := &CondExpr{}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *CondExpr) Clone() Node { return cloneInto(NewCondExpr(0), n) }

func (n *CondExpr) render(st *renderState, indent int) Rope {
	p := n.Children().Front()
	ret := p.Node().render(st, indent)

	if st.pretty {
		ret.push(" ? ")
	} else {
		ret.push("?")
	}

	p = p.Next()
	ret.join(p.Node().render(st, indent))

	if st.pretty {
		ret.push(" : ")
	} else {
		ret.push(":")
	}

	p = p.Next()
	ret.join(p.Node().render(st, indent))

	return ret
}

// ParenExpr is an explicitly parenthesized expression. The parser keeps it
// in the tree so the renderer never has to reason about operator precedence.
// Children: inner expression.
type ParenExpr struct {
	exprBase
}

// NewParenExpr creates a parenthetical node.
func NewParenExpr(line int) *ParenExpr {
	n := &ParenExpr{}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *ParenExpr) Clone() Node { return cloneInto(NewParenExpr(0), n) }

func (n *ParenExpr) render(st *renderState, indent int) Rope {
	ret := Rope{"("}
	ret.join(n.Children().Front().Node().render(st, indent))
	ret.push(")")

	return ret
}

// Truthy delegates to the wrapped expression.
func (n *ParenExpr) Truthy(expected bool) bool {
	if inner, ok := n.Children().Front().Node().(Expr); ok {
		return inner.Truthy(expected)
	}

	return false
}

// Lvalue delegates to the wrapped expression.
func (n *ParenExpr) Lvalue() bool {
	if inner, ok := n.Children().Front().Node().(Expr); ok {
		return inner.Lvalue()
	}

	return false
}

// AssignExpr is an assignment, plain or compound. Children: target, value.
type AssignExpr struct {
	exprBase
	Op AssignOp
}

// NewAssignExpr creates an assignment node.
func NewAssignExpr(op AssignOp, line int) *AssignExpr {
	n := &AssignExpr{Op: op}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *AssignExpr) Clone() Node { return cloneInto(NewAssignExpr(n.Op, 0), n) }

func (n *AssignExpr) render(st *renderState, indent int) Rope {
	ret := n.Children().Front().Node().render(st, indent)

	if st.pretty {
		ret.push(" ")
	}

	ret.push(n.Op.Token())

	if st.pretty {
		ret.push(" ")
	}

	ret.join(n.Children().Back().Node().render(st, indent))

	return ret
}

// UnaryExpr is a prefix operation. Children: operand.
type UnaryExpr struct {
	exprBase
	Op UnaryOp
}

// NewUnaryExpr creates a prefix operation node.
func NewUnaryExpr(op UnaryOp, line int) *UnaryExpr {
	n := &UnaryExpr{Op: op}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *UnaryExpr) Clone() Node { return cloneInto(NewUnaryExpr(n.Op, 0), n) }

func (n *UnaryExpr) render(st *renderState, indent int) Rope {
	ret := Rope{n.Op.Token()}

	// Word operators need a space unless the operand brings its own parens.
	if n.Op.isWord() {
		if _, ok := n.Children().Front().Node().(*ParenExpr); !ok {
			ret.push(" ")
		}
	}

	ret.join(n.Children().Front().Node().render(st, indent))

	return ret
}

// PostfixExpr is a postfix increment or decrement. Children: operand.
type PostfixExpr struct {
	exprBase
	Op PostfixOp
}

// NewPostfixExpr creates a postfix operation node.
func NewPostfixExpr(op PostfixOp, line int) *PostfixExpr {
	n := &PostfixExpr{Op: op}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *PostfixExpr) Clone() Node { return cloneInto(NewPostfixExpr(n.Op, 0), n) }

func (n *PostfixExpr) render(st *renderState, indent int) Rope {
	ret := n.Children().Front().Node().render(st, indent)
	ret.push(n.Op.Token())

	return ret
}

// Identifier is a name reference. No children.
type Identifier struct {
	exprBase
	Name string
}

// NewIdentifier creates an identifier node.
func NewIdentifier(name string, line int) *Identifier {
	n := &Identifier{Name: name}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *Identifier) Clone() Node { return NewIdentifier(n.Name, 0) }

func (n *Identifier) render(_ *renderState, _ int) Rope { return Rope{n.Name} }

// Lvalue: identifiers are assignable.
func (n *Identifier) Lvalue() bool { return true }

// Rename changes the referenced name in place.
func (n *Identifier) Rename(name string) { n.Name = name }

// ArgList is the parenthesized expression list of a call or a function
// signature. Children: zero or more expressions.
type ArgList struct {
	base
}

// NewArgList creates an argument list node.
func NewArgList(line int) *ArgList {
	n := &ArgList{}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *ArgList) Clone() Node { return cloneInto(NewArgList(0), n) }

func (n *ArgList) render(st *renderState, indent int) Rope {
	glue := ","
	if st.pretty {
		glue = ", "
	}

	ret := Rope{"("}
	ret.join(implodeChildren(n, st, indent, glue))
	ret.push(")")

	return ret
}

// FuncExpr is a function expression. Children: optional name, argument
// list, body.
type FuncExpr struct {
	exprBase
}

// NewFuncExpr creates a function expression node.
func NewFuncExpr(line int) *FuncExpr {
	n := &FuncExpr{}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *FuncExpr) Clone() Node { return cloneInto(NewFuncExpr(0), n) }

func (n *FuncExpr) render(st *renderState, indent int) Rope {
	p := n.Children().Front()
	ret := Rope{"function"}

	if p.Node() != nil {
		ret.push(" ")
		ret.join(p.Node().render(st, indent))
	}

	p = p.Next()
	ret.join(p.Node().render(st, indent))

	p = p.Next()
	ret.join(renderAsBlock(p.Node(), true, st, indent))

	return ret
}

// CallExpr is a function call. Children: callee, argument list.
type CallExpr struct {
	exprBase
}

// NewCallExpr creates a call node.
func NewCallExpr(line int) *CallExpr {
	n := &CallExpr{}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *CallExpr) Clone() Node { return cloneInto(NewCallExpr(0), n) }

func (n *CallExpr) render(st *renderState, indent int) Rope {
	ret := n.Children().Front().Node().render(st, indent)
	ret.join(n.Children().Back().Node().render(st, indent))

	return ret
}

// IsEval reports whether the callee is the bare identifier eval. Later
// passes treat such calls as scope barriers.
func (n *CallExpr) IsEval() bool {
	id, ok := n.Children().Front().Node().(*Identifier)

	return ok && id.Name == "eval"
}

// NewExpr is a constructor invocation. Children: callee, argument list.
type NewExpr struct {
	exprBase
}

// NewNewExpr creates a constructor invocation node.
func NewNewExpr(line int) *NewExpr {
	n := &NewExpr{}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *NewExpr) Clone() Node { return cloneInto(NewNewExpr(0), n) }

func (n *NewExpr) render(st *renderState, indent int) Rope {
	ret := Rope{"new "}
	ret.join(n.Children().Front().Node().render(st, indent))
	ret.join(n.Children().Back().Node().render(st, indent))

	return ret
}

// ObjectLiteral is an object literal. Children: zero or more Property nodes.
type ObjectLiteral struct {
	exprBase
}

// NewObjectLiteral creates an object literal node.
func NewObjectLiteral(line int) *ObjectLiteral {
	n := &ObjectLiteral{}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *ObjectLiteral) Clone() Node { return cloneInto(NewObjectLiteral(0), n) }

func (n *ObjectLiteral) render(st *renderState, indent int) Rope {
	glue := ","
	if st.pretty {
		glue = ", "
	}

	ret := Rope{"{"}
	ret.join(implodeChildren(n, st, indent, glue))
	ret.push("}")

	return ret
}

// Property is one key/value entry of an object literal. Children: key
// (identifier, string or number literal), value.
type Property struct {
	base
}

// NewProperty creates an object literal property node.
func NewProperty(line int) *Property {
	n := &Property{}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *Property) Clone() Node { return cloneInto(NewProperty(0), n) }

func (n *Property) render(st *renderState, indent int) Rope {
	ret := n.Children().Front().Node().render(st, indent)

	if st.pretty {
		ret.push(": ")
	} else {
		ret.push(":")
	}

	ret.join(n.Children().Back().Node().render(st, indent))

	return ret
}

// ArrayLiteral is an array literal. Children: zero or more expressions;
// absent slots are holes.
type ArrayLiteral struct {
	exprBase
}

// NewArrayLiteral creates an array literal node.
func NewArrayLiteral(line int) *ArrayLiteral {
	n := &ArrayLiteral{}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *ArrayLiteral) Clone() Node { return cloneInto(NewArrayLiteral(0), n) }

func (n *ArrayLiteral) render(st *renderState, indent int) Rope {
	glue := ","
	if st.pretty {
		glue = ", "
	}

	ret := Rope{"["}
	ret.join(implodeChildren(n, st, indent, glue))
	ret.push("]")

	return ret
}

// StaticMember is dotted property access. Children: object, property
// identifier.
type StaticMember struct {
	exprBase
}

// NewStaticMember creates a dotted member access node.
func NewStaticMember(line int) *StaticMember {
	n := &StaticMember{}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *StaticMember) Clone() Node { return cloneInto(NewStaticMember(0), n) }

func (n *StaticMember) render(st *renderState, indent int) Rope {
	ret := n.Children().Front().Node().render(st, indent)
	ret.push(".")
	ret.join(n.Children().Back().Node().render(st, indent))

	return ret
}

// Lvalue: member accesses are assignable.
func (n *StaticMember) Lvalue() bool { return true }

// DynamicMember is bracketed property access. Children: object, subscript
// expression.
type DynamicMember struct {
	exprBase
}

// NewDynamicMember creates a bracketed member access node.
func NewDynamicMember(line int) *DynamicMember {
	n := &DynamicMember{}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *DynamicMember) Clone() Node { return cloneInto(NewDynamicMember(0), n) }

func (n *DynamicMember) render(st *renderState, indent int) Rope {
	ret := n.Children().Front().Node().render(st, indent)
	ret.push("[")
	ret.join(n.Children().Back().Node().render(st, indent))
	ret.push("]")

	return ret
}

// Lvalue: member accesses are assignable.
func (n *DynamicMember) Lvalue() bool { return true }
