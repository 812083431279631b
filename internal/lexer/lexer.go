package lexer

// Dialect selects the comment-start convention the scanner recognizes.
type Dialect int

const (
	// DialectSlash treats "//" as a comment marker; '#' is an
	// unrecognized character.
	DialectSlash Dialect = iota

	// DialectHash treats '#' as a comment marker; '/' is always a plain
	// SLASH.
	DialectHash
)

// Scanner is a forward-only cursor over source text that produces one
// token per call to Next. It never mutates or copies the source, and a
// fresh Scanner is required for every pass: once the source is exhausted
// the Scanner stays exhausted.
type Scanner struct {
	src     string
	pos     int
	dialect Dialect
}

func New(src string) *Scanner {
	return NewWithDialect(src, DialectSlash)
}

func NewWithDialect(src string, dialect Dialect) *Scanner {
	return &Scanner{
		src:     src,
		pos:     0,
		dialect: dialect,
	}
}

// Next returns the next token, or ok == false once the source holds no
// further non-whitespace characters. Every token consumes at least one
// character, so Next always makes progress; malformed input surfaces as
// ERROR tokens, never as a failure of the scan itself.
func (s *Scanner) Next() (Token, bool) {
	s.skipWhitespace()
	if !s.hasChars() {
		return Token{}, false
	}

	start := s.pos
	c := s.src[s.pos]
	s.pos++

	return Token{Pos: start, Kind: s.kind(c)}, true
}

// Tokenize drains the remaining tokens into a slice.
func (s *Scanner) Tokenize() []Token {
	tokens := make([]Token, 0)

	for {
		token, ok := s.Next()
		if !ok {
			break
		}

		tokens = append(tokens, token)
	}

	return tokens
}

// kind classifies the token starting at the already consumed character c.
// The cursor sits on the character after c; scanning helpers advance it to
// the end of the lexeme.
func (s *Scanner) kind(c byte) Kind {
	switch c {
	case '(':
		return LPAREN
	case ')':
		return RPAREN
	case '{':
		return LBRACE
	case '}':
		return RBRACE
	case ',':
		return COMMA
	case '.':
		return DOT
	case ';':
		return SEMICOLON
	case '+':
		return PLUS
	case '-':
		return MINUS
	case '*':
		return STAR
	case '/':
		if s.dialect == DialectSlash && s.match('/') {
			return s.scanComment()
		}
		return SLASH
	case '#':
		if s.dialect == DialectHash {
			return s.scanComment()
		}
		return ERROR
	case '=':
		if s.match('=') {
			return EQ
		}
		return ASSIGN
	case '>':
		if s.match('=') {
			return GEQ
		}
		return GT
	case '<':
		if s.match('=') {
			return LEQ
		}
		return LT
	case '!':
		if s.match('=') {
			return NEQ
		}
		return BANG
	case '"':
		return s.scanString()
	}

	switch {
	case isDigit(c):
		return s.scanNumber()
	case isAlpha(c):
		return s.scanWord()
	}

	return ERROR
}

// match consumes the next character only if it equals expected. This is
// the scanner's single character of lookahead.
func (s *Scanner) match(expected byte) bool {
	if !s.hasChars() || s.src[s.pos] != expected {
		return false
	}

	s.pos++
	return true
}

// scanComment consumes everything up to, but not including, the next
// newline.
func (s *Scanner) scanComment() Kind {
	for s.hasChars() && s.src[s.pos] != '\n' {
		s.pos++
	}

	return COMMENT
}

// scanString consumes up to and including the closing quote. Escape
// sequences are not interpreted. If the source ends before a closing
// quote, everything has been consumed into this one ERROR token.
func (s *Scanner) scanString() Kind {
	for s.hasChars() && s.src[s.pos] != '"' {
		s.pos++
	}

	if !s.hasChars() {
		return ERROR
	}

	s.pos++
	return STRING
}

func (s *Scanner) scanNumber() Kind {
	for s.hasChars() && isDigit(s.src[s.pos]) {
		s.pos++
	}

	return NUMBER
}

// scanWord consumes the maximal alphanumeric run, then consults the
// keyword table. The run always extends past any keyword prefix first, so
// "classy" never splits into CLASS plus a remainder.
func (s *Scanner) scanWord() Kind {
	start := s.pos - 1
	for s.hasChars() && isAlphaNumeric(s.src[s.pos]) {
		s.pos++
	}

	if kind, ok := keywords[s.src[start:s.pos]]; ok {
		return kind
	}

	return IDENT
}

func (s *Scanner) skipWhitespace() {
	for s.hasChars() {
		switch s.src[s.pos] {
		case ' ', '\t', '\r', '\n':
			s.pos++
		default:
			return
		}
	}
}

func (s *Scanner) hasChars() bool {
	return s.pos < len(s.src)
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
