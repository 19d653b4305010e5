package ast

// Reserved words per ECMA-262 sect 7.5.1: statement keywords, future reserved
// words, and the boolean/null literals. Future reserved words are included
// because some engines refuse them as property shorthand even though the
// grammar would allow it.
//
//nolint:gochecknoglobals // Immutable set, built once at startup.
var reservedWords = func() map[string]struct{} {
	words := []string{
		// Keywords.
		"break", "case", "catch", "continue", "default", "delete", "do", "else",
		"finally", "for", "function", "if", "in", "instanceof", "new", "return",
		"switch", "this", "throw", "try", "typeof", "var", "void", "while",
		"with",
		// Future reserved words.
		"abstract", "boolean", "byte", "char", "class", "const", "debugger",
		"double", "enum", "export", "extends", "final", "float", "goto",
		"implements", "import", "int", "interface", "long", "native",
		"package", "private", "protected", "public", "short", "static",
		"super", "synchronized", "throws", "transient", "volatile",
		// NullLiteral and BooleanLiteral.
		"true", "false", "null",
	}

	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}

	return set
}()

// IsReservedWord reports whether name is a reserved JS keyword, a future
// reserved word, or one of the literals true/false/null.
func IsReservedWord(name string) bool {
	_, reserved := reservedWords[name]

	return reserved
}

// IsIdentifier reports whether name is a legal bare JS identifier:
// [a-zA-Z$_][a-zA-Z$_0-9]* and not a reserved word. Escaped unicode is not
// recognized; the check is ASCII only.
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}

	if IsReservedWord(name) {
		return false
	}

	if !isIdentStart(name[0]) {
		return false
	}

	for i := 1; i < len(name); i++ {
		if !isIdentPart(name[i]) {
			return false
		}
	}

	return true
}

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '$' || c == '_'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9'
}
