package ast_test

import (
	"errors"
	"testing"

	"github.com/facebook/libfbjs/pkg/ast"
)

func TestDecodeJSONRenders(t *testing.T) {
	t.Parallel()

	document := `{
	  "kind": "Program",
	  "line": 1,
	  "children": [{
	    "kind": "StatementList",
	    "line": 1,
	    "children": [
	      {
	        "kind": "If",
	        "line": 1,
	        "children": [
	          {"kind": "Identifier", "line": 1, "name": "a"},
	          {
	            "kind": "StatementList",
	            "line": 1,
	            "children": [{
	              "kind": "Call",
	              "line": 1,
	              "children": [
	                {"kind": "Identifier", "line": 1, "name": "b"},
	                {"kind": "ArgList", "line": 1}
	              ]
	            }]
	          },
	          null
	        ]
	      },
	      {
	        "kind": "VarDecl",
	        "line": 2,
	        "children": [{
	          "kind": "Assign",
	          "line": 2,
	          "op": "=",
	          "children": [
	            {"kind": "Identifier", "line": 2, "name": "c"},
	            {"kind": "NumberLiteral", "line": 2, "number": 3}
	          ]
	        }]
	      }
	    ]
	  }]
	}`

	root, err := ast.DecodeJSON([]byte(document))
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}

	if got := ast.RenderString(root, ast.RenderNone); got != "if(a)b();var c=3;" {
		t.Errorf("compact render: got %q", got)
	}

	if got := ast.RenderString(root, ast.RenderKeepLines); got != "if(a)b();\nvar c=3;" {
		t.Errorf("keep-lines render: got %q", got)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	root := program(
		ast.Append(ast.NewIfStmt(0),
			binary(ast.OpIn, ident("k"), ident("obj")),
			list(ast.Append(ast.NewJumpStmt(ast.JumpReturn, 0),
				ast.Append(ast.NewDynamicMember(0), ident("obj"), ident("k")))),
			nil),
		ast.Append(ast.NewForStmt(0),
			ast.NewEmptyExpr(0), ast.NewEmptyExpr(0), ast.NewEmptyExpr(0),
			list(call(ident("tick")))),
		ast.Append(ast.NewTryStmt(0),
			list(call(ident("risky"))),
			nil,
			nil,
			list(call(ident("cleanup")))))

	encoded, err := ast.EncodeJSON(root)
	if err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}

	decoded, err := ast.DecodeJSON(encoded)
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}

	if !ast.Equal(root, decoded) {
		t.Errorf("round trip changed the tree:\noriginal %q\ndecoded  %q",
			ast.RenderString(root, ast.RenderNone),
			ast.RenderString(decoded, ast.RenderNone))
	}
}

func TestEncodePreservesLines(t *testing.T) {
	t.Parallel()

	root := ast.NewIdentifier("a", 42)

	encoded, err := ast.EncodeJSON(root)
	if err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}

	decoded, err := ast.DecodeJSON(encoded)
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}

	if decoded.Line() != 42 {
		t.Errorf("line: got %d, want 42", decoded.Line())
	}
}

func TestDecodeJSONErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document string
		wantErr  error
	}{
		{"unknown kind", `{"kind":"Block"}`, ast.ErrUnknownKind},
		{"number without payload", `{"kind":"NumberLiteral"}`, ast.ErrMissingPayload},
		{"string without payload", `{"kind":"StringLiteral"}`, ast.ErrMissingPayload},
		{"bool without payload", `{"kind":"BooleanLiteral"}`, ast.ErrMissingPayload},
		{"unknown binary operator", `{"kind":"Binary","op":"**"}`, ast.ErrUnknownOperator},
		{"unknown jump keyword", `{"kind":"Jump","op":"goto"}`, ast.ErrUnknownOperator},
		{
			"bad nested child",
			`{"kind":"Paren","children":[{"kind":"Nope"}]}`,
			ast.ErrUnknownKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ast.DecodeJSON([]byte(tt.document))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecodeJSONAbsentSlots(t *testing.T) {
	t.Parallel()

	document := `{"kind":"Array","children":[{"kind":"NumberLiteral","number":1},null,{"kind":"NumberLiteral","number":2}]}`

	root, err := ast.DecodeJSON([]byte(document))
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}

	if root.Children().Len() != 3 {
		t.Fatalf("slots: got %d, want 3", root.Children().Len())
	}

	if got := ast.RenderString(root, ast.RenderNone); got != "[1,,2]" {
		t.Errorf("render: got %q", got)
	}
}

func TestKindOfCoversCatalog(t *testing.T) {
	t.Parallel()

	nodes := []ast.Node{
		ast.NewProgram(), ast.NewStatementList(0), num(1), str("s"),
		ast.NewRegexLiteral("a", "", 0), boolean(true), ast.NewNullLiteral(0),
		ast.NewThisExpr(0), ast.NewEmptyExpr(0), ast.NewBinaryExpr(ast.OpAdd, 0),
		ast.NewCondExpr(0), ast.NewParenExpr(0), ast.NewAssignExpr(ast.OpAssign, 0),
		ast.NewUnaryExpr(ast.OpNot, 0), ast.NewPostfixExpr(ast.OpPostIncr, 0),
		ident("a"), ast.NewArgList(0), ast.NewFuncDecl(0), ast.NewFuncExpr(0),
		ast.NewCallExpr(0), ast.NewNewExpr(0), ast.NewIfStmt(0), ast.NewWithStmt(0),
		ast.NewTryStmt(0), ast.NewJumpStmt(ast.JumpReturn, 0), ast.NewLabelStmt(0),
		ast.NewSwitchStmt(0), ast.NewCaseClause(0), ast.NewDefaultClause(0),
		ast.NewVarDecl(0), ast.NewObjectLiteral(0), ast.NewProperty(0),
		ast.NewArrayLiteral(0), ast.NewStaticMember(0), ast.NewDynamicMember(0),
		ast.NewForStmt(0), ast.NewForInStmt(0), ast.NewWhileStmt(0),
		ast.NewDoWhileStmt(0),
	}

	seen := make(map[string]bool)

	for _, n := range nodes {
		kind := ast.KindOf(n)
		if kind == "Unknown" {
			t.Errorf("%T has no kind name", n)
		}

		if seen[kind] {
			t.Errorf("kind %q assigned to more than one node type", kind)
		}

		seen[kind] = true
	}
}
