package lexer

// keywords maps a fully scanned word onto its keyword kind. The scanner
// consumes the maximal alphanumeric run first and looks the result up here,
// so a word with a keyword as a strict prefix ("classy", "fun") misses the
// table and stays an IDENT. Adding a keyword is one line.
var keywords = map[string]Kind{
	"and":      AND,
	"or":       OR,
	"true":     TRUE,
	"false":    FALSE,
	"if":       IF,
	"else":     ELSE,
	"for":      FOR,
	"while":    WHILE,
	"class":    CLASS,
	"nil":      NIL,
	"super":    SUPER,
	"this":     THIS,
	"var":      VAR,
	"function": FUNCTION,
	"print":    PRINT,
	"return":   RETURN,
}
