package ast

// sentinelCall is a legacy application convention: a call to this bare name
// collapses to the boolean literal false during reduction. It is not a
// general JavaScript rule and is deliberately not generalized.
const sentinelCall = "bagofholding"

// Reduce rewrites the tree rooted at n: constant folding, short-circuit
// algebra, dead-branch elimination, and member-access canonicalization. It
// returns n itself, a replacement node that now owns any kept subtrees, or
// nil when the node reduced away entirely. The input tree is mutated in
// place; discarded subtrees must not be used afterwards.
//
// Folding only ever fires on expressions whose truthiness is provable, and
// Truthy is only implemented by side-effect-free kinds, so dropped operands
// never hide evaluation the program relied on.
func Reduce(n Node) Node {
	switch t := n.(type) {
	case *StatementList:
		return reduceStatementList(t)
	case *BinaryExpr:
		return reduceBinary(t)
	case *UnaryExpr:
		return reduceUnary(t)
	case *CondExpr:
		return reduceCond(t)
	case *IfStmt:
		return reduceIf(t)
	case *CallExpr:
		return reduceCall(t)
	case *DynamicMember:
		return reduceDynamicMember(t)
	case *Property:
		return reduceProperty(t)
	default:
		reduceChildren(n)

		return n
	}
}

// reduceChildren reduces every present child in place, replacing a child
// when its reduction returns a different node. Absent slots are skipped.
func reduceChildren(n Node) {
	for p := n.Children().Front(); p != nil; p = p.Next() {
		if p.Node() == nil {
			continue
		}

		if reduced := Reduce(p.Node()); reduced != p.Node() {
			n.Children().Replace(reduced, p)
		}
	}
}

// reduceStatementList drops children that reduce away and children that are
// provably constant expressions, whose value a statement position discards.
func reduceStatementList(list *StatementList) Node {
	p := list.Children().Front()
	for p != nil {
		next := p.Next()

		if p.Node() == nil {
			list.Children().Remove(p)
			p = next

			continue
		}

		reduced := Reduce(p.Node())
		if expr, ok := reduced.(Expr); ok && (expr.Truthy(true) || expr.Truthy(false)) {
			reduced = nil
		}

		switch {
		case reduced == nil:
			list.Children().Remove(p)
		case reduced != p.Node():
			list.Children().Replace(reduced, p)
		}

		p = next
	}

	return list
}

// reduceBinary applies the short-circuit algebra of ||, && and the comma
// operator. Only provably constant operands participate; a non-constant
// operand is always preserved.
func reduceBinary(n *BinaryExpr) Node {
	reduceChildren(n)

	kids := n.Children()

	left, leftOK := kids.Front().Node().(Expr)
	right, rightOK := kids.Back().Node().(Expr)

	if !leftOK || !rightOK {
		return n
	}

	switch n.Op {
	case OpOr:
		switch {
		case left.Truthy(true):
			return kids.Remove(kids.Front())
		case left.Truthy(false):
			if right.Truthy(true) {
				return kids.Remove(kids.Back())
			}

			if right.Truthy(false) {
				return NewBooleanLiteral(false, 0)
			}
		}
	case OpAnd:
		switch {
		case left.Truthy(false):
			return NewBooleanLiteral(false, 0)
		case left.Truthy(true):
			if right.Truthy(false) {
				return NewBooleanLiteral(false, 0)
			}

			return kids.Remove(kids.Back())
		}
	case OpComma:
		if left.Truthy(true) || left.Truthy(false) {
			return kids.Remove(kids.Back())
		}
	default:
	}

	return n
}

// reduceUnary folds logical NOT over a provably constant operand.
func reduceUnary(n *UnaryExpr) Node {
	if n.Op != OpNot {
		return n
	}

	expr, ok := n.Children().Front().Node().(Expr)
	if !ok {
		return n
	}

	if expr.Truthy(true) {
		return NewBooleanLiteral(false, 0)
	}

	if expr.Truthy(false) {
		return NewBooleanLiteral(true, 0)
	}

	return n
}

// reduceCond collapses a conditional with a provably constant test to the
// surviving branch.
func reduceCond(n *CondExpr) Node {
	reduceChildren(n)

	test, ok := n.Children().Front().Node().(Expr)
	if !ok {
		return n
	}

	branch := n.Children().Front().Next()

	switch {
	case test.Truthy(true):
	case test.Truthy(false):
		branch = branch.Next()
	default:
		return n
	}

	return n.Children().Remove(branch)
}

// reduceIf handles constant tests, then cleans up branches emptied by other
// reductions: a bare empty else is dropped, a fully empty if collapses to
// its test expression, and an empty if branch with a surviving else becomes
// a negated condition with the branches swapped.
func reduceIf(n *IfStmt) Node {
	reduceChildren(n)

	kids := n.Children()
	testPos := kids.Front()
	ifPos := testPos.Next()
	elsePos := ifPos.Next()

	if test, ok := testPos.Node().(Expr); ok {
		if test.Truthy(true) {
			return kids.Remove(ifPos)
		}

		if test.Truthy(false) {
			if elsePos.Node() == nil {
				return nil
			}

			return kids.Remove(elsePos)
		}
	}

	if emptyBranch(elsePos.Node()) {
		kids.Replace(nil, elsePos)
	}

	if emptyBranch(ifPos.Node()) && elsePos.Node() == nil {
		// The test was already screened for side effects by the reductions
		// that emptied the branches, so it stands alone now.
		return kids.Remove(testPos)
	}

	if emptyBranch(ifPos.Node()) && elsePos.Node() != nil {
		test := testPos.Node()
		negated := Append(NewUnaryExpr(OpNot, test.Line()),
			Append(NewParenExpr(test.Line()), test))

		kids.Replace(Reduce(negated), testPos)
		kids.Replace(kids.Replace(nil, elsePos), ifPos)
	}

	return n
}

// emptyBranch reports whether a conditional branch has nothing left to
// execute: it reduced away entirely, or it is a statement list with no
// statements. Any other statement kind counts as live.
func emptyBranch(n Node) bool {
	if n == nil {
		return true
	}

	list, ok := n.(*StatementList)

	return ok && list.Children().Empty()
}

// reduceCall collapses sentinel calls; everything else is left alone.
func reduceCall(n *CallExpr) Node {
	reduceChildren(n)

	if id, ok := n.Children().Front().Node().(*Identifier); ok && id.Name == sentinelCall {
		return NewBooleanLiteral(false, 0)
	}

	return n
}

// reduceDynamicMember rewrites obj["name"] to obj.name when the subscript
// is a string literal whose text is a legal, unreserved identifier.
func reduceDynamicMember(n *DynamicMember) Node {
	reduceChildren(n)

	lit, ok := n.Children().Back().Node().(*StringLiteral)
	if !ok {
		return n
	}

	name := lit.Unquoted()
	if !IsIdentifier(name) {
		return n
	}

	object := n.Children().Remove(n.Children().Front())

	return Append(NewStaticMember(n.Line()), object, NewIdentifier(name, lit.Line()))
}

// reduceProperty rewrites a quoted property key to a bare identifier when
// the key text is a legal, unreserved identifier, enabling unquoted-key
// rendering.
func reduceProperty(n *Property) Node {
	reduceChildren(n)

	if n.Children().Empty() {
		return n
	}

	lit, ok := n.Children().Front().Node().(*StringLiteral)
	if !ok {
		return n
	}

	name := lit.Unquoted()
	if !IsIdentifier(name) {
		return n
	}

	value := n.Children().Remove(n.Children().Back())

	return Append(NewProperty(n.Line()), NewIdentifier(name, lit.Line()), value)
}
