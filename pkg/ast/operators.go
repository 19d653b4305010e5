package ast

// BinaryOp enumerates the binary operators carried by a BinaryExpr.
type BinaryOp int

// Binary operators.
const (
	OpComma BinaryOp = iota
	OpShrUnsigned
	OpShr
	OpShl
	OpOr
	OpAnd
	OpBitXor
	OpBitAnd
	OpBitOr
	OpEq
	OpNe
	OpStrictEq
	OpStrictNe
	OpLe
	OpGe
	OpLt
	OpGt
	OpAdd
	OpSub
	OpDiv
	OpMul
	OpMod
	OpIn
	OpInstanceof
)

//nolint:gochecknoglobals // Fixed token table.
var binaryTokens = [...]string{
	OpComma:       ",",
	OpShrUnsigned: ">>>",
	OpShr:         ">>",
	OpShl:         "<<",
	OpOr:          "||",
	OpAnd:         "&&",
	OpBitXor:      "^",
	OpBitAnd:      "&",
	OpBitOr:       "|",
	OpEq:          "==",
	OpNe:          "!=",
	OpStrictEq:    "===",
	OpStrictNe:    "!==",
	OpLe:          "<=",
	OpGe:          ">=",
	OpLt:          "<",
	OpGt:          ">",
	OpAdd:         "+",
	OpSub:         "-",
	OpDiv:         "/",
	OpMul:         "*",
	OpMod:         "%",
	OpIn:          "in",
	OpInstanceof:  "instanceof",
}

// Token returns the source-syntax token for the operator.
func (op BinaryOp) Token() string { return binaryTokens[op] }

// isWord reports whether the operator is spelled as a word and therefore
// needs surrounding spaces in compact output.
func (op BinaryOp) isWord() bool { return op == OpIn || op == OpInstanceof }

// AssignOp enumerates assignment operators, plain and compound.
type AssignOp int

// Assignment operators.
const (
	OpAssign AssignOp = iota
	OpMulAssign
	OpDivAssign
	OpModAssign
	OpAddAssign
	OpSubAssign
	OpShlAssign
	OpShrAssign
	OpShrUnsignedAssign
	OpBitAndAssign
	OpBitXorAssign
	OpBitOrAssign
)

//nolint:gochecknoglobals // Fixed token table.
var assignTokens = [...]string{
	OpAssign:            "=",
	OpMulAssign:         "*=",
	OpDivAssign:         "/=",
	OpModAssign:         "%=",
	OpAddAssign:         "+=",
	OpSubAssign:         "-=",
	OpShlAssign:         "<<=",
	OpShrAssign:         ">>=",
	OpShrUnsignedAssign: ">>>=",
	OpBitAndAssign:      "&=",
	OpBitXorAssign:      "^=",
	OpBitOrAssign:       "|=",
}

// Token returns the source-syntax token for the operator.
func (op AssignOp) Token() string { return assignTokens[op] }

// UnaryOp enumerates prefix operators carried by a UnaryExpr.
type UnaryOp int

// Prefix operators.
const (
	OpDelete UnaryOp = iota
	OpVoid
	OpTypeof
	OpPreIncr
	OpPreDecr
	OpPlus
	OpMinus
	OpBitNot
	OpNot
)

//nolint:gochecknoglobals // Fixed token table.
var unaryTokens = [...]string{
	OpDelete:  "delete",
	OpVoid:    "void",
	OpTypeof:  "typeof",
	OpPreIncr: "++",
	OpPreDecr: "--",
	OpPlus:    "+",
	OpMinus:   "-",
	OpBitNot:  "~",
	OpNot:     "!",
}

// Token returns the source-syntax token for the operator.
func (op UnaryOp) Token() string { return unaryTokens[op] }

func (op UnaryOp) isWord() bool {
	return op == OpDelete || op == OpVoid || op == OpTypeof
}

// PostfixOp enumerates postfix operators carried by a PostfixExpr.
type PostfixOp int

// Postfix operators.
const (
	OpPostIncr PostfixOp = iota
	OpPostDecr
)

//nolint:gochecknoglobals // Fixed token table.
var postfixTokens = [...]string{
	OpPostIncr: "++",
	OpPostDecr: "--",
}

// Token returns the source-syntax token for the operator.
func (op PostfixOp) Token() string { return postfixTokens[op] }

// JumpOp selects the keyword of a JumpStmt.
type JumpOp int

// Jump statement keywords.
const (
	JumpReturn JumpOp = iota
	JumpThrow
	JumpBreak
	JumpContinue
)

//nolint:gochecknoglobals // Fixed token table.
var jumpTokens = [...]string{
	JumpReturn:   "return",
	JumpThrow:    "throw",
	JumpBreak:    "break",
	JumpContinue: "continue",
}

// Token returns the statement keyword.
func (op JumpOp) Token() string { return jumpTokens[op] }
