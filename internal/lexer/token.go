package lexer

import (
	"fmt"
)

type Kind int

const (
	ERROR Kind = iota

	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	COMMA     // ,
	DOT       // .
	SEMICOLON // ;
	PLUS      // +
	MINUS     // -
	STAR      // *
	SLASH     // /

	ASSIGN // =
	EQ     // ==
	GT     // >
	GEQ    // >=
	LT     // <
	LEQ    // <=
	BANG   // !
	NEQ    // !=

	NUMBER
	STRING
	IDENT

	AND
	OR
	TRUE
	FALSE
	IF
	ELSE
	FOR
	WHILE
	CLASS
	NIL
	SUPER
	THIS
	VAR
	FUNCTION
	PRINT
	RETURN

	COMMENT
)

func (k Kind) String() string {
	switch k {
	case ERROR:
		return "ERROR"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case LBRACE:
		return "LBRACE"
	case RBRACE:
		return "RBRACE"
	case COMMA:
		return "COMMA"
	case DOT:
		return "DOT"
	case SEMICOLON:
		return "SEMICOLON"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case STAR:
		return "STAR"
	case SLASH:
		return "SLASH"
	case ASSIGN:
		return "ASSIGN"
	case EQ:
		return "EQ"
	case GT:
		return "GT"
	case GEQ:
		return "GEQ"
	case LT:
		return "LT"
	case LEQ:
		return "LEQ"
	case BANG:
		return "BANG"
	case NEQ:
		return "NEQ"
	case NUMBER:
		return "NUMBER"
	case STRING:
		return "STRING"
	case IDENT:
		return "IDENT"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case TRUE:
		return "TRUE"
	case FALSE:
		return "FALSE"
	case IF:
		return "IF"
	case ELSE:
		return "ELSE"
	case FOR:
		return "FOR"
	case WHILE:
		return "WHILE"
	case CLASS:
		return "CLASS"
	case NIL:
		return "NIL"
	case SUPER:
		return "SUPER"
	case THIS:
		return "THIS"
	case VAR:
		return "VAR"
	case FUNCTION:
		return "FUNCTION"
	case PRINT:
		return "PRINT"
	case RETURN:
		return "RETURN"
	case COMMENT:
		return "COMMENT"
	default:
		panic(fmt.Sprintf("Kind.String(): received illegal token kind: %d", int(k)))
	}
}

// IsKeyword reports whether k belongs to the keyword block of the
// enumeration. Keyword kinds are contiguous, from AND to RETURN.
func (k Kind) IsKeyword() bool {
	return k >= AND && k <= RETURN
}

// Token is an immutable classified lexeme. Pos is the byte offset of the
// lexeme's first character in the source the token was scanned from; the
// token does not retain the source text itself.
type Token struct {
	Pos  int
	Kind Kind
}

func (t Token) String() string {
	return fmt.Sprintf("%s@%d", t.Kind, t.Pos)
}
