package ast

// Program is the root of a parsed source file. It always starts at line 1.
// Children: one statement list.
type Program struct {
	base
}

// NewProgram creates a program root node.
func NewProgram() *Program {
	n := &Program{}
	n.line = 1

	return n
}

// Clone deep-copies the node.
func (n *Program) Clone() Node { return cloneInto(NewProgram(), n) }

func (n *Program) render(st *renderState, indent int) Rope {
	return n.Children().Front().Node().render(st, indent)
}

// StatementList is an ordered sequence of statements. Children: zero or
// more statements.
type StatementList struct {
	base
}

// NewStatementList creates a statement list node.
func NewStatementList(line int) *StatementList {
	n := &StatementList{}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *StatementList) Clone() Node { return cloneInto(NewStatementList(0), n) }

func (n *StatementList) render(st *renderState, indent int) Rope {
	var ret Rope
	for p := n.Children().Front(); p != nil; p = p.Next() {
		if p.Node() != nil {
			ret.join(renderIndented(p.Node(), st, indent))
		}
	}

	return ret
}

// renderBlock collapses an empty body to ";" and a single-statement body to
// braceless form when braces are not forced and pretty mode is off.
func (n *StatementList) renderBlock(must bool, st *renderState, indent int) Rope {
	switch {
	case !must && n.Children().Empty():
		return Rope{";"}
	case !must && !st.pretty && n.Children().Len() == 1:
		var ret Rope
		if st.keepLines {
			catchup(n, st, &ret)
		}

		ret.join(renderAsBlock(n.Children().Front().Node(), must, st, indent))

		return ret
	default:
		return bracedBlock(n, st, indent)
	}
}

// FuncDecl brings a named function into scope. Children: name identifier,
// argument list, body.
type FuncDecl struct {
	base
}

// NewFuncDecl creates a function declaration node.
func NewFuncDecl(line int) *FuncDecl {
	n := &FuncDecl{}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *FuncDecl) Clone() Node { return cloneInto(NewFuncDecl(0), n) }

func (n *FuncDecl) render(st *renderState, indent int) Rope {
	p := n.Children().Front()
	ret := Rope{"function "}
	ret.join(p.Node().render(st, indent))

	p = p.Next()
	ret.join(p.Node().render(st, indent))

	p = p.Next()
	ret.join(renderAsBlock(p.Node(), true, st, indent))

	return ret
}

// IfStmt is a conditional statement. Children: test expression, if branch,
// optional else branch.
type IfStmt struct {
	base
}

// NewIfStmt creates an if statement node.
func NewIfStmt(line int) *IfStmt {
	n := &IfStmt{}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *IfStmt) Clone() Node { return cloneInto(NewIfStmt(0), n) }

func (n *IfStmt) render(st *renderState, indent int) Rope {
	p := n.Children().Front()

	var ret Rope
	if st.pretty {
		ret.push("if (")
	} else {
		ret.push("if(")
	}

	ret.join(p.Node().render(st, indent))
	ret.push(")")

	p = p.Next()
	ifBranch := p.Node()
	elseBranch := p.Next().Node()

	// Braces are forced whenever an else follows, so the else can never
	// attach to a nested if.
	mustBrace := st.pretty || ifBranch.Children().Empty() || elseBranch != nil
	ret.join(renderAsBlock(ifBranch, mustBrace, st, indent))

	if elseBranch == nil {
		return ret
	}

	if st.pretty {
		ret.push(" else")
	} else {
		ret.push("else")
	}

	// An else-if chain renders inline, without an extra brace layer.
	if chained, ok := elseBranch.(*IfStmt); ok {
		if st.keepLines {
			catchup(chained, st, &ret)
		}

		ret.push(" ")
		ret.join(chained.render(st, indent))

		return ret
	}

	block := renderAsBlock(elseBranch, false, st, indent)
	if first := block.firstByte(); first != '{' && first != ' ' {
		ret.push(" ")
	}

	ret.join(block)

	return ret
}

// WithStmt is a with statement. Children: scope expression, body.
type WithStmt struct {
	base
}

// NewWithStmt creates a with statement node.
func NewWithStmt(line int) *WithStmt {
	n := &WithStmt{}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *WithStmt) Clone() Node { return cloneInto(NewWithStmt(0), n) }

func (n *WithStmt) render(st *renderState, indent int) Rope {
	var ret Rope
	if st.pretty {
		ret.push("with (")
	} else {
		ret.push("with(")
	}

	ret.join(n.Children().Front().Node().render(st, indent))
	ret.push(")")
	ret.join(renderAsBlock(n.Children().Back().Node(), false, st, indent))

	return ret
}

// TryStmt is a try statement. Children: try block, optional catch
// identifier, optional catch block, optional finally block. The catch
// identifier and catch block are present or absent together.
type TryStmt struct {
	base
}

// NewTryStmt creates a try statement node.
func NewTryStmt(line int) *TryStmt {
	n := &TryStmt{}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *TryStmt) Clone() Node { return cloneInto(NewTryStmt(0), n) }

func (n *TryStmt) render(st *renderState, indent int) Rope {
	p := n.Children().Front()
	ret := Rope{"try"}
	ret.join(renderAsBlock(p.Node(), true, st, indent))

	p = p.Next()
	if p.Node() != nil {
		if st.pretty {
			ret.push(" catch (")
		} else {
			ret.push("catch(")
		}

		ret.join(p.Node().render(st, indent))
		ret.push(")")

		p = p.Next()
		ret.join(renderAsBlock(p.Node(), true, st, indent))
	} else {
		p = p.Next()
	}

	p = p.Next()
	if p.Node() != nil {
		if st.pretty {
			ret.push(" finally")
		} else {
			ret.push("finally")
		}

		ret.join(renderAsBlock(p.Node(), true, st, indent))
	}

	return ret
}

// JumpStmt is a return, throw, break or continue statement. Children: one
// optional expression (label identifier for break/continue).
type JumpStmt struct {
	base
	Op JumpOp
}

// NewJumpStmt creates a return/throw/break/continue node.
func NewJumpStmt(op JumpOp, line int) *JumpStmt {
	n := &JumpStmt{Op: op}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *JumpStmt) Clone() Node { return cloneInto(NewJumpStmt(n.Op, 0), n) }

func (n *JumpStmt) render(st *renderState, indent int) Rope {
	ret := Rope{n.Op.Token()}

	if p := n.Children().Front(); p != nil && p.Node() != nil {
		ret.push(" ")
		ret.join(p.Node().render(st, indent))
	}

	return ret
}

// LabelStmt is a labeled statement. Children: label identifier, statement.
type LabelStmt struct {
	base
}

// NewLabelStmt creates a labeled statement node.
func NewLabelStmt(line int) *LabelStmt {
	n := &LabelStmt{}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *LabelStmt) Clone() Node { return cloneInto(NewLabelStmt(0), n) }

func (n *LabelStmt) render(st *renderState, indent int) Rope {
	ret := n.Children().Front().Node().render(st, indent)

	if st.pretty {
		ret.push(": ")
	} else {
		ret.push(":")
	}

	ret.join(n.Children().Back().Node().render(st, indent))

	return ret
}

// SwitchStmt is a switch statement. Children: discriminant expression, body
// statement list of case/default clauses. The body renders one level deeper
// and each clause compensates by one level.
type SwitchStmt struct {
	base
}

// NewSwitchStmt creates a switch statement node.
func NewSwitchStmt(line int) *SwitchStmt {
	n := &SwitchStmt{}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *SwitchStmt) Clone() Node { return cloneInto(NewSwitchStmt(0), n) }

func (n *SwitchStmt) render(st *renderState, indent int) Rope {
	ret := Rope{"switch("}
	ret.join(n.Children().Front().Node().render(st, indent))
	ret.push(")")
	ret.join(renderAsBlock(n.Children().Back().Node(), true, st, indent+1))

	return ret
}

// CaseClause is one case label of a switch body. Children: test expression.
// The clause's own statements follow it as siblings in the switch body.
type CaseClause struct {
	base
}

// NewCaseClause creates a case clause node.
func NewCaseClause(line int) *CaseClause {
	n := &CaseClause{}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *CaseClause) Clone() Node { return cloneInto(NewCaseClause(0), n) }

func (n *CaseClause) render(st *renderState, indent int) Rope {
	ret := Rope{"case "}
	ret.join(n.Children().Front().Node().render(st, indent))
	ret.push(":")

	return ret
}

// DefaultClause is the default label of a switch body. No children.
type DefaultClause struct {
	base
}

// NewDefaultClause creates a default clause node.
func NewDefaultClause(line int) *DefaultClause {
	n := &DefaultClause{}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *DefaultClause) Clone() Node { return cloneInto(NewDefaultClause(0), n) }

func (n *DefaultClause) render(_ *renderState, _ int) Rope { return Rope{"default:"} }

// VarDecl is a var declaration list. Children: one or more identifiers or
// assignments. Iterator marks the declaration as the iteration variable of
// a for-in statement.
type VarDecl struct {
	base
	Iterator bool
}

// NewVarDecl creates a var declaration node.
func NewVarDecl(line int) *VarDecl {
	n := &VarDecl{}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *VarDecl) Clone() Node { return cloneInto(NewVarDecl(0), n) }

func (n *VarDecl) render(st *renderState, indent int) Rope {
	glue := ","
	if st.pretty {
		glue = ", "
	}

	ret := Rope{"var "}
	ret.join(implodeChildren(n, st, indent, glue))

	return ret
}

// SetIterator marks or unmarks the declaration as a for-in iterator.
func (n *VarDecl) SetIterator(iterator bool) *VarDecl {
	n.Iterator = iterator

	return n
}

// ForStmt is a classic three-clause for loop. Children: init, test, update
// (each possibly an EmptyExpr), body.
type ForStmt struct {
	base
}

// NewForStmt creates a for loop node.
func NewForStmt(line int) *ForStmt {
	n := &ForStmt{}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *ForStmt) Clone() Node { return cloneInto(NewForStmt(0), n) }

func (n *ForStmt) render(st *renderState, indent int) Rope {
	sep := ";"
	if st.pretty {
		sep = "; "
	}

	p := n.Children().Front()

	var ret Rope
	if st.pretty {
		ret.push("for (")
	} else {
		ret.push("for(")
	}

	ret.join(p.Node().render(st, indent))
	ret.push(sep)

	p = p.Next()
	ret.join(p.Node().render(st, indent))
	ret.push(sep)

	p = p.Next()
	ret.join(p.Node().render(st, indent))
	ret.push(")")

	p = p.Next()
	ret.join(renderAsBlock(p.Node(), false, st, indent))

	return ret
}

// ForInStmt is a for-in loop. Children: iteration variable (identifier,
// member access, or iterator VarDecl), object expression, body.
type ForInStmt struct {
	base
}

// NewForInStmt creates a for-in loop node.
func NewForInStmt(line int) *ForInStmt {
	n := &ForInStmt{}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *ForInStmt) Clone() Node { return cloneInto(NewForInStmt(0), n) }

func (n *ForInStmt) render(st *renderState, indent int) Rope {
	p := n.Children().Front()

	var ret Rope
	if st.pretty {
		ret.push("for (")
	} else {
		ret.push("for(")
	}

	ret.join(p.Node().render(st, indent))
	ret.push(" in ")

	p = p.Next()
	ret.join(p.Node().render(st, indent))
	ret.push(")")

	p = p.Next()
	ret.join(renderAsBlock(p.Node(), false, st, indent))

	return ret
}

// WhileStmt is a while loop. Children: test expression, body.
type WhileStmt struct {
	base
}

// NewWhileStmt creates a while loop node.
func NewWhileStmt(line int) *WhileStmt {
	n := &WhileStmt{}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *WhileStmt) Clone() Node { return cloneInto(NewWhileStmt(0), n) }

func (n *WhileStmt) render(st *renderState, indent int) Rope {
	var ret Rope
	if st.pretty {
		ret.push("while (")
	} else {
		ret.push("while(")
	}

	ret.join(n.Children().Front().Node().render(st, indent))
	ret.push(")")
	ret.join(renderAsBlock(n.Children().Back().Node(), false, st, indent))

	return ret
}

// DoWhileStmt is a do-while loop. Children: body, test expression. Its
// statement form carries the trailing semicolon.
type DoWhileStmt struct {
	base
}

// NewDoWhileStmt creates a do-while loop node.
func NewDoWhileStmt(line int) *DoWhileStmt {
	n := &DoWhileStmt{}
	n.line = line

	return n
}

// Clone deep-copies the node.
func (n *DoWhileStmt) Clone() Node { return cloneInto(NewDoWhileStmt(0), n) }

func (n *DoWhileStmt) render(st *renderState, indent int) Rope {
	ret := Rope{"do"}

	// Braces are always forced here; a braceless do body would need its own
	// terminator handling before the while keyword.
	ret.join(renderAsBlock(n.Children().Front().Node(), true, st, indent))

	if st.keepLines {
		catchup(n.Children().Back().Node(), st, &ret)
	}

	if st.pretty {
		ret.push(" while (")
	} else {
		ret.push("while(")
	}

	ret.join(n.Children().Back().Node().render(st, indent))
	ret.push(")")

	return ret
}
