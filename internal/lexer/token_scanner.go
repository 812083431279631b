package lexer

// TokenScanner is the cursor a parser drives over the token stream: Next
// consumes the next token, Peek observes it without consuming. Both report
// ok == false once the stream is exhausted, on every subsequent call too.
type TokenScanner interface {
	Next() (Token, bool)
	Peek() (Token, bool)
}

type streamTokenScanner struct {
	scanner *Scanner

	peeked   Token
	hasPeek  bool
	finished bool
}

// NewTokenScanner wraps a Scanner with one token of lookahead. The token
// sequence stays lazy: a token is computed only when Next or Peek first
// needs it.
func NewTokenScanner(scanner *Scanner) TokenScanner {
	return &streamTokenScanner{
		scanner: scanner,
	}
}

func (ts *streamTokenScanner) Next() (Token, bool) {
	if ts.hasPeek {
		ts.hasPeek = false
		return ts.peeked, true
	}

	return ts.pull()
}

func (ts *streamTokenScanner) Peek() (Token, bool) {
	if ts.hasPeek {
		return ts.peeked, true
	}

	token, ok := ts.pull()
	if !ok {
		return Token{}, false
	}

	ts.peeked = token
	ts.hasPeek = true
	return token, true
}

func (ts *streamTokenScanner) pull() (Token, bool) {
	if ts.finished {
		return Token{}, false
	}

	token, ok := ts.scanner.Next()
	if !ok {
		ts.finished = true
		return Token{}, false
	}

	return token, true
}
