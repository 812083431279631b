package parser

import (
	"github.com/ashlang/ash/internal/compiler_errors"
	"github.com/ashlang/ash/internal/lexer"
)

// Parser is a stub: no grammar is implemented yet. It exists to drive the
// token cursor the way a real parser would, filtering comments and turning
// ERROR tokens into diagnostics.
type Parser struct {
	source  string
	scanner lexer.TokenScanner
	eh      compiler_errors.ErrorHandler
}

func NewParser(source string, scanner lexer.TokenScanner, eh compiler_errors.ErrorHandler) *Parser {
	return &Parser{
		source:  source,
		scanner: scanner,
		eh:      eh,
	}
}

// Parse consumes the whole token stream and returns it with comments
// stripped. Error tokens stay in the output; the handler records a
// diagnostic for each so the caller can report them in one batch.
func (p *Parser) Parse() []lexer.Token {
	if _, ok := p.scanner.Peek(); !ok {
		return nil
	}

	tokens := make([]lexer.Token, 0)
	for {
		token, ok := p.scanner.Next()
		if !ok {
			break
		}

		if token.Kind == lexer.COMMENT {
			continue
		}

		if token.Kind == lexer.ERROR {
			p.eh.AddError(lexer.NewScanError(p.source, token))
		}

		tokens = append(tokens, token)
	}

	return tokens
}
