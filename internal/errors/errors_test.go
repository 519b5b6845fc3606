package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Format(t *testing.T) {
	err := &APIError{Status: 429, Message: "rate limited"}
	assert.Equal(t, "API error (429): rate limited", err.Error())
}

func TestWrappersPreserveCategory(t *testing.T) {
	err := MalformedResponse("response missing choices array")
	assert.True(t, IsCategory(err, ErrMalformedResponse))
	assert.Contains(t, err.Error(), "choices")

	err = NoContent("response contains no text content")
	assert.True(t, IsCategory(err, ErrNoContent))

	err = Transport(fmt.Errorf("connection refused"))
	assert.True(t, IsCategory(err, ErrTransport))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestWrap_NilPassthrough(t *testing.T) {
	require.NoError(t, Wrap(nil, "context"))
	require.NoError(t, Transport(nil))
}
