package ast

import (
	"strconv"
	"strings"
)

// RenderMode selects the output shape. Modes are independent flags and may
// be combined.
type RenderMode uint

// RenderNone produces compact output with no optional whitespace.
const RenderNone RenderMode = 0

const (
	// RenderPretty adds spacing, forced braces, newlines and indentation.
	RenderPretty RenderMode = 1 << iota

	// RenderKeepLines pads the output with newlines so every node that
	// carries a source line lands on that line.
	RenderKeepLines
)

// Rope is a lazily concatenated sequence of output fragments. Callers join
// the fragments once, at the end, with String.
type Rope []string

// String concatenates the fragments.
func (r Rope) String() string {
	var sb strings.Builder
	for _, part := range r {
		sb.WriteString(part)
	}

	return sb.String()
}

// Size returns the total byte length of the fragments.
func (r Rope) Size() int {
	n := 0
	for _, part := range r {
		n += len(part)
	}

	return n
}

func (r *Rope) push(parts ...string) {
	*r = append(*r, parts...)
}

func (r *Rope) join(other Rope) {
	*r = append(*r, other...)
}

// firstByte returns the first byte of the rope's text, 0 when empty.
func (r Rope) firstByte() byte {
	for _, part := range r {
		if part != "" {
			return part[0]
		}
	}

	return 0
}

// renderState is the mutable context threaded through one render invocation.
// It is not shared across renders and a single tree must not be rendered
// concurrently with a reduce of the same tree.
type renderState struct {
	pretty    bool
	keepLines bool
	line      int
}

const indentUnit = "  "

func indentOf(indent int) string {
	return strings.Repeat(indentUnit, indent)
}

// Render produces the source text of a tree under the given mode as a Rope.
func Render(n Node, mode RenderMode) Rope {
	st := &renderState{
		pretty:    mode&RenderPretty != 0,
		keepLines: mode&RenderKeepLines != 0,
		line:      1,
	}

	return n.render(st, 0)
}

// RenderString renders a tree and joins the fragments.
func RenderString(n Node, mode RenderMode) string {
	return Render(n, mode).String()
}

// renderAsStatement renders a node in statement position. Expression kinds
// and the self-terminating statement kinds get a trailing semicolon; case
// and default clauses never do.
func renderAsStatement(n Node, st *renderState, indent int) Rope {
	switch n.(type) {
	case *CaseClause, *DefaultClause:
		return n.render(st, indent)
	case *JumpStmt, *VarDecl, *DoWhileStmt, *LabelStmt:
		ret := n.render(st, indent)
		ret.push(";")

		return ret
	}

	if _, ok := n.(Expr); ok {
		ret := n.render(st, indent)
		ret.push(";")

		return ret
	}

	return n.render(st, indent)
}

// renderAsBlock renders a node as the body of a control structure, deciding
// whether to wrap it in braces. A statement list applies its own collapse
// rules; an empty expression body renders as a lone semicolon.
func renderAsBlock(n Node, must bool, st *renderState, indent int) Rope {
	switch t := n.(type) {
	case *StatementList:
		return t.renderBlock(must, st, indent)
	case *EmptyExpr:
		return Rope{";"}
	}

	if !must && !st.pretty {
		var ret Rope
		if st.keepLines {
			catchup(n, st, &ret)
		}

		ret.join(renderAsStatement(n, st, indent))

		return ret
	}

	return bracedBlock(n, st, indent)
}

// bracedBlock wraps a statement body in braces, indenting it one level and
// placing the closing brace on its own line in pretty mode.
func bracedBlock(n Node, st *renderState, indent int) Rope {
	var ret Rope
	if st.pretty {
		ret.push(" {")
	} else {
		ret.push("{")
	}

	ret.join(renderIndented(n, st, indent+1))

	if st.pretty || st.keepLines {
		newline := false
		if st.keepLines {
			newline = catchup(n, st, &ret)
		} else {
			ret.push("\n")
			newline = true
		}

		if st.pretty && newline {
			ret.push(indentOf(indent))
		}
	}

	ret.push("}")

	return ret
}

// renderIndented emits the leading newline and indentation for a statement,
// then delegates to renderAsStatement. In compact mode without line
// preservation it is a plain statement render.
func renderIndented(n Node, st *renderState, indent int) Rope {
	switch n.(type) {
	case *StatementList:
		return n.render(st, indent)
	case *CaseClause, *DefaultClause:
		// Clauses sit one level shallower than the switch body.
		indent--
	}

	if !st.pretty && !st.keepLines {
		return renderAsStatement(n, st, indent)
	}

	var ret Rope

	newline := false
	if st.keepLines {
		newline = catchup(n, st, &ret)
	} else if st.line == 2 {
		ret.push("\n")
		newline = true
	} else {
		// The line counter doubles as a first-statement marker here, so the
		// render does not open with a stray newline.
		st.line = 2
	}

	if st.pretty && newline {
		ret.push(indentOf(indent))
	}

	ret.join(renderAsStatement(n, st, indent))

	return ret
}

// catchup pads the output with newlines until the current line reaches the
// node's source line. Nodes without a position, or positions already passed,
// emit nothing.
func catchup(n Node, st *renderState, ret *Rope) bool {
	if n.Line() == 0 || st.line >= n.Line() {
		return false
	}

	ret.push(strings.Repeat("\n", n.Line()-st.line))
	st.line = n.Line()

	return true
}

// implodeChildren renders every present child, separated by glue. Absent
// slots still contribute their separator, which is how array holes render.
func implodeChildren(n Node, st *renderState, indent int, glue string) Rope {
	var ret Rope
	for p := n.Children().Front(); p != nil; p = p.Next() {
		if p.Node() != nil {
			ret.join(p.Node().render(st, indent))
		}

		if p.Next() != nil {
			ret.push(glue)
		}
	}

	return ret
}

// formatNumber renders a double as its shortest decimal text that round-trips
// to the same value and is valid as a numeric literal token.
func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
