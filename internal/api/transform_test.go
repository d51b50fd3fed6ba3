package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeTransformer_WrapsSuccess(t *testing.T) {
	out, err := EnvelopeTransformer(nil, "200", map[string]string{"hello": "world"})
	require.NoError(t, err)

	envelope, ok := out.(Envelope)
	require.True(t, ok)
	assert.Equal(t, envelopeVersion, envelope.V)
	assert.True(t, envelope.Success)
	assert.NotNil(t, envelope.Data)
}

func TestEnvelopeTransformer_NilPassesThrough(t *testing.T) {
	out, err := EnvelopeTransformer(nil, "204", nil)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestEnvelopeTransformer_ErrorsPassThrough(t *testing.T) {
	apiErr := &APIError{status: 404, Code: "NOT_FOUND", Message: "gone"}
	out, err := EnvelopeTransformer(nil, "404", apiErr)
	require.NoError(t, err)
	assert.Same(t, apiErr, out)
}

func TestEnvelopeTransformer_NonSuccessStatus(t *testing.T) {
	out, err := EnvelopeTransformer(nil, "500", map[string]string{"oops": "true"})
	require.NoError(t, err)

	envelope, ok := out.(Envelope)
	require.True(t, ok)
	assert.False(t, envelope.Success)
}
