package compiler_errors

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testError struct {
	message string
}

func (e *testError) GetMessage() string {
	return e.message
}

func TestErrorHandlerStartsEmpty(t *testing.T) {
	var buf bytes.Buffer
	eh := NewErrorHandler(&buf)

	assert.False(t, eh.HasErrors())

	eh.Report()
	assert.Empty(t, buf.String())
}

func TestErrorHandlerReportsInOrder(t *testing.T) {
	var buf bytes.Buffer
	eh := NewErrorHandler(&buf)

	eh.AddError(&testError{message: "first"})
	eh.AddError(&testError{message: "second"})

	assert.True(t, eh.HasErrors())

	eh.Report()
	assert.Equal(t, "ERROR: first\nERROR: second\n", buf.String())
}
