package compiler_errors

import (
	"fmt"
	"io"
)

type CompilerError interface {
	GetMessage() string
}

// ErrorHandler collects diagnostics for batched reporting. Scan errors
// arrive as ordinary tokens in the stream, so whether any of them is fatal
// is the consumer's call; the handler only accumulates and renders.
type ErrorHandler interface {
	AddError(err CompilerError)
	HasErrors() bool
	Report()
}

type CompilerErrorHandler struct {
	errors []CompilerError
	writer io.Writer
}

func NewErrorHandler(outputWriter io.Writer) ErrorHandler {
	return &CompilerErrorHandler{
		errors: make([]CompilerError, 0),
		writer: outputWriter,
	}
}

func (eh *CompilerErrorHandler) AddError(err CompilerError) {
	eh.errors = append(eh.errors, err)
}

func (eh *CompilerErrorHandler) HasErrors() bool {
	return len(eh.errors) > 0
}

func (eh *CompilerErrorHandler) Report() {
	for _, err := range eh.errors {
		fmt.Fprintf(eh.writer, "ERROR: %s\n", err.GetMessage())
	}
}
