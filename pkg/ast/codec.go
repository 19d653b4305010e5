package ast

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Kind names used in the JSON document form of a tree.
const (
	KindProgram       = "Program"
	KindStatementList = "StatementList"
	KindNumber        = "NumberLiteral"
	KindString        = "StringLiteral"
	KindRegex         = "RegexLiteral"
	KindBoolean       = "BooleanLiteral"
	KindNull          = "NullLiteral"
	KindThis          = "This"
	KindEmpty         = "Empty"
	KindBinary        = "Binary"
	KindConditional   = "Conditional"
	KindParen         = "Paren"
	KindAssign        = "Assign"
	KindUnary         = "Unary"
	KindPostfix       = "Postfix"
	KindIdentifier    = "Identifier"
	KindArgList       = "ArgList"
	KindFunctionDecl  = "FunctionDecl"
	KindFunctionExpr  = "FunctionExpr"
	KindCall          = "Call"
	KindNew           = "New"
	KindIf            = "If"
	KindWith          = "With"
	KindTry           = "Try"
	KindJump          = "Jump"
	KindLabel         = "Label"
	KindSwitch        = "Switch"
	KindCase          = "Case"
	KindDefault       = "Default"
	KindVarDecl       = "VarDecl"
	KindObject        = "Object"
	KindProperty      = "Property"
	KindArray         = "Array"
	KindStaticMember  = "StaticMember"
	KindDynamicMember = "DynamicMember"
	KindFor           = "For"
	KindForIn         = "ForIn"
	KindWhile         = "While"
	KindDoWhile       = "DoWhile"
)

// Sentinel errors of the codec.
var (
	ErrUnknownKind     = errors.New("unknown node kind")
	ErrUnknownOperator = errors.New("unknown operator token")
	ErrMissingPayload  = errors.New("missing payload field")
)

// KindOf returns the document kind name of a node.
func KindOf(n Node) string {
	switch n.(type) {
	case *Program:
		return KindProgram
	case *StatementList:
		return KindStatementList
	case *NumberLiteral:
		return KindNumber
	case *StringLiteral:
		return KindString
	case *RegexLiteral:
		return KindRegex
	case *BooleanLiteral:
		return KindBoolean
	case *NullLiteral:
		return KindNull
	case *ThisExpr:
		return KindThis
	case *EmptyExpr:
		return KindEmpty
	case *BinaryExpr:
		return KindBinary
	case *CondExpr:
		return KindConditional
	case *ParenExpr:
		return KindParen
	case *AssignExpr:
		return KindAssign
	case *UnaryExpr:
		return KindUnary
	case *PostfixExpr:
		return KindPostfix
	case *Identifier:
		return KindIdentifier
	case *ArgList:
		return KindArgList
	case *FuncDecl:
		return KindFunctionDecl
	case *FuncExpr:
		return KindFunctionExpr
	case *CallExpr:
		return KindCall
	case *NewExpr:
		return KindNew
	case *IfStmt:
		return KindIf
	case *WithStmt:
		return KindWith
	case *TryStmt:
		return KindTry
	case *JumpStmt:
		return KindJump
	case *LabelStmt:
		return KindLabel
	case *SwitchStmt:
		return KindSwitch
	case *CaseClause:
		return KindCase
	case *DefaultClause:
		return KindDefault
	case *VarDecl:
		return KindVarDecl
	case *ObjectLiteral:
		return KindObject
	case *Property:
		return KindProperty
	case *ArrayLiteral:
		return KindArray
	case *StaticMember:
		return KindStaticMember
	case *DynamicMember:
		return KindDynamicMember
	case *ForStmt:
		return KindFor
	case *ForInStmt:
		return KindForIn
	case *WhileStmt:
		return KindWhile
	case *DoWhileStmt:
		return KindDoWhile
	default:
		return "Unknown"
	}
}

// treeDoc is the JSON document form of one node. Absent child slots encode
// as explicit nulls so slot positions survive the round trip.
type treeDoc struct {
	Kind     string     `json:"kind"`
	Line     int        `json:"line,omitempty"`
	Number   *float64   `json:"number,omitempty"`
	String   *string    `json:"string,omitempty"`
	Quoted   bool       `json:"quoted,omitempty"`
	Pattern  string     `json:"pattern,omitempty"`
	Flags    string     `json:"flags,omitempty"`
	Bool     *bool      `json:"bool,omitempty"`
	Name     string     `json:"name,omitempty"`
	Op       string     `json:"op,omitempty"`
	Iterator bool       `json:"iterator,omitempty"`
	Children []*treeDoc `json:"children,omitempty"`
}

// EncodeJSON serializes a tree to its JSON document form.
func EncodeJSON(n Node) ([]byte, error) {
	doc := encodeNode(n)

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode tree: %w", err)
	}

	return out, nil
}

func encodeNode(n Node) *treeDoc {
	if n == nil {
		return nil
	}

	doc := &treeDoc{Kind: KindOf(n), Line: n.Line()}

	switch t := n.(type) {
	case *NumberLiteral:
		value := t.Value
		doc.Number = &value
	case *StringLiteral:
		value := t.Value
		doc.String = &value
		doc.Quoted = t.Quoted
	case *RegexLiteral:
		doc.Pattern = t.Pattern
		doc.Flags = t.Flags
	case *BooleanLiteral:
		value := t.Value
		doc.Bool = &value
	case *Identifier:
		doc.Name = t.Name
	case *BinaryExpr:
		doc.Op = t.Op.Token()
	case *AssignExpr:
		doc.Op = t.Op.Token()
	case *UnaryExpr:
		doc.Op = t.Op.Token()
	case *PostfixExpr:
		doc.Op = t.Op.Token()
	case *JumpStmt:
		doc.Op = t.Op.Token()
	case *VarDecl:
		doc.Iterator = t.Iterator
	}

	for p := n.Children().Front(); p != nil; p = p.Next() {
		doc.Children = append(doc.Children, encodeNode(p.Node()))
	}

	return doc
}

// DecodeJSON builds a tree from its JSON document form.
func DecodeJSON(data []byte) (Node, error) {
	var doc treeDoc

	err := json.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}

	return decodeNode(&doc)
}

//nolint:cyclop,funlen // One arm per catalog kind.
func decodeNode(doc *treeDoc) (Node, error) {
	if doc == nil {
		return nil, nil //nolint:nilnil // A null document is an absent slot.
	}

	var n Node

	switch doc.Kind {
	case KindProgram:
		n = NewProgram()
	case KindStatementList:
		n = NewStatementList(doc.Line)
	case KindNumber:
		if doc.Number == nil {
			return nil, fmt.Errorf("%w: %s needs number", ErrMissingPayload, doc.Kind)
		}

		n = NewNumberLiteral(*doc.Number, doc.Line)
	case KindString:
		if doc.String == nil {
			return nil, fmt.Errorf("%w: %s needs string", ErrMissingPayload, doc.Kind)
		}

		n = NewStringLiteral(*doc.String, doc.Quoted, doc.Line)
	case KindRegex:
		n = NewRegexLiteral(doc.Pattern, doc.Flags, doc.Line)
	case KindBoolean:
		if doc.Bool == nil {
			return nil, fmt.Errorf("%w: %s needs bool", ErrMissingPayload, doc.Kind)
		}

		n = NewBooleanLiteral(*doc.Bool, doc.Line)
	case KindNull:
		n = NewNullLiteral(doc.Line)
	case KindThis:
		n = NewThisExpr(doc.Line)
	case KindEmpty:
		n = NewEmptyExpr(doc.Line)
	case KindBinary:
		op, err := binaryOpFor(doc.Op)
		if err != nil {
			return nil, err
		}

		n = NewBinaryExpr(op, doc.Line)
	case KindConditional:
		n = NewCondExpr(doc.Line)
	case KindParen:
		n = NewParenExpr(doc.Line)
	case KindAssign:
		op, err := assignOpFor(doc.Op)
		if err != nil {
			return nil, err
		}

		n = NewAssignExpr(op, doc.Line)
	case KindUnary:
		op, err := unaryOpFor(doc.Op)
		if err != nil {
			return nil, err
		}

		n = NewUnaryExpr(op, doc.Line)
	case KindPostfix:
		op, err := postfixOpFor(doc.Op)
		if err != nil {
			return nil, err
		}

		n = NewPostfixExpr(op, doc.Line)
	case KindIdentifier:
		n = NewIdentifier(doc.Name, doc.Line)
	case KindArgList:
		n = NewArgList(doc.Line)
	case KindFunctionDecl:
		n = NewFuncDecl(doc.Line)
	case KindFunctionExpr:
		n = NewFuncExpr(doc.Line)
	case KindCall:
		n = NewCallExpr(doc.Line)
	case KindNew:
		n = NewNewExpr(doc.Line)
	case KindIf:
		n = NewIfStmt(doc.Line)
	case KindWith:
		n = NewWithStmt(doc.Line)
	case KindTry:
		n = NewTryStmt(doc.Line)
	case KindJump:
		op, err := jumpOpFor(doc.Op)
		if err != nil {
			return nil, err
		}

		n = NewJumpStmt(op, doc.Line)
	case KindLabel:
		n = NewLabelStmt(doc.Line)
	case KindSwitch:
		n = NewSwitchStmt(doc.Line)
	case KindCase:
		n = NewCaseClause(doc.Line)
	case KindDefault:
		n = NewDefaultClause(doc.Line)
	case KindVarDecl:
		n = NewVarDecl(doc.Line).SetIterator(doc.Iterator)
	case KindObject:
		n = NewObjectLiteral(doc.Line)
	case KindProperty:
		n = NewProperty(doc.Line)
	case KindArray:
		n = NewArrayLiteral(doc.Line)
	case KindStaticMember:
		n = NewStaticMember(doc.Line)
	case KindDynamicMember:
		n = NewDynamicMember(doc.Line)
	case KindFor:
		n = NewForStmt(doc.Line)
	case KindForIn:
		n = NewForInStmt(doc.Line)
	case KindWhile:
		n = NewWhileStmt(doc.Line)
	case KindDoWhile:
		n = NewDoWhileStmt(doc.Line)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, doc.Kind)
	}

	for _, childDoc := range doc.Children {
		child, err := decodeNode(childDoc)
		if err != nil {
			return nil, err
		}

		n.Children().Append(child)
	}

	return n, nil
}

//nolint:gochecknoglobals // Reverse token tables, built once at startup.
var (
	binaryOpByToken  = reverseTokens(binaryTokens[:])
	assignOpByToken  = reverseTokens(assignTokens[:])
	unaryOpByToken   = reverseTokens(unaryTokens[:])
	postfixOpByToken = reverseTokens(postfixTokens[:])
	jumpOpByToken    = reverseTokens(jumpTokens[:])
)

func reverseTokens(tokens []string) map[string]int {
	byToken := make(map[string]int, len(tokens))
	for op, token := range tokens {
		byToken[token] = op
	}

	return byToken
}

func binaryOpFor(token string) (BinaryOp, error) {
	op, ok := binaryOpByToken[token]
	if !ok {
		return 0, fmt.Errorf("%w: binary %q", ErrUnknownOperator, token)
	}

	return BinaryOp(op), nil
}

func assignOpFor(token string) (AssignOp, error) {
	op, ok := assignOpByToken[token]
	if !ok {
		return 0, fmt.Errorf("%w: assignment %q", ErrUnknownOperator, token)
	}

	return AssignOp(op), nil
}

func unaryOpFor(token string) (UnaryOp, error) {
	op, ok := unaryOpByToken[token]
	if !ok {
		return 0, fmt.Errorf("%w: unary %q", ErrUnknownOperator, token)
	}

	return UnaryOp(op), nil
}

func postfixOpFor(token string) (PostfixOp, error) {
	op, ok := postfixOpByToken[token]
	if !ok {
		return 0, fmt.Errorf("%w: postfix %q", ErrUnknownOperator, token)
	}

	return PostfixOp(op), nil
}

func jumpOpFor(token string) (JumpOp, error) {
	op, ok := jumpOpByToken[token]
	if !ok {
		return 0, fmt.Errorf("%w: jump %q", ErrUnknownOperator, token)
	}

	return JumpOp(op), nil
}
