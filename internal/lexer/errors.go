package lexer

import (
	"fmt"
)

// ScanError renders an ERROR token into a diagnostic. The scanner itself
// attaches no message to error tokens; consumers that want one build it
// here, from the token position and the source the token came from.
type ScanError struct {
	Message string
}

// NewScanError classifies an ERROR token. An opening quote at the token
// position means the string ran past the end of input; anything else is a
// single unrecognized character.
func NewScanError(source string, token Token) *ScanError {
	if source[token.Pos] == '"' {
		return &ScanError{
			Message: fmt.Sprintf("unterminated string literal at offset %d", token.Pos),
		}
	}

	return &ScanError{
		Message: fmt.Sprintf(
			"unexpected character: '%s' at offset %d",
			string(source[token.Pos]),
			token.Pos),
	}
}

func (e *ScanError) GetMessage() string {
	return e.Message
}
