package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{ERROR, "ERROR"},
		{LPAREN, "LPAREN"},
		{RPAREN, "RPAREN"},
		{LBRACE, "LBRACE"},
		{RBRACE, "RBRACE"},
		{COMMA, "COMMA"},
		{DOT, "DOT"},
		{SEMICOLON, "SEMICOLON"},
		{PLUS, "PLUS"},
		{MINUS, "MINUS"},
		{STAR, "STAR"},
		{SLASH, "SLASH"},
		{ASSIGN, "ASSIGN"},
		{EQ, "EQ"},
		{GT, "GT"},
		{GEQ, "GEQ"},
		{LT, "LT"},
		{LEQ, "LEQ"},
		{BANG, "BANG"},
		{NEQ, "NEQ"},
		{NUMBER, "NUMBER"},
		{STRING, "STRING"},
		{IDENT, "IDENT"},
		{AND, "AND"},
		{OR, "OR"},
		{TRUE, "TRUE"},
		{FALSE, "FALSE"},
		{IF, "IF"},
		{ELSE, "ELSE"},
		{FOR, "FOR"},
		{WHILE, "WHILE"},
		{CLASS, "CLASS"},
		{NIL, "NIL"},
		{SUPER, "SUPER"},
		{THIS, "THIS"},
		{VAR, "VAR"},
		{FUNCTION, "FUNCTION"},
		{PRINT, "PRINT"},
		{RETURN, "RETURN"},
		{COMMENT, "COMMENT"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.kind.String())
	}
}

func TestKindStringPanicsOnIllegalKind(t *testing.T) {
	assert.Panics(t, func() {
		_ = Kind(999).String()
	})
}

func TestKindIsKeyword(t *testing.T) {
	keywordKinds := []Kind{
		AND, OR, TRUE, FALSE,
		IF, ELSE, FOR, WHILE,
		CLASS, NIL, SUPER, THIS, VAR,
		FUNCTION, PRINT, RETURN,
	}
	for _, kind := range keywordKinds {
		assert.True(t, kind.IsKeyword(), "expected %s to be a keyword kind", kind)
	}

	for _, kind := range []Kind{ERROR, LPAREN, SLASH, NEQ, NUMBER, STRING, IDENT, COMMENT} {
		assert.False(t, kind.IsKeyword(), "expected %s to not be a keyword kind", kind)
	}
}

func TestKeywordTableMatchesKeywordKinds(t *testing.T) {
	assert.Len(t, keywords, 16)
	for word, kind := range keywords {
		assert.True(t, kind.IsKeyword(), "keyword table entry %q maps to non-keyword kind %s", word, kind)
	}
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, "NUMBER@4", Token{Pos: 4, Kind: NUMBER}.String())
	assert.Equal(t, "ERROR@0", Token{Pos: 0, Kind: ERROR}.String())
}
