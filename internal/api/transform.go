package api

import (
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// envelopeVersion identifies the response envelope format for clients.
const envelopeVersion = 1

// Envelope is the versioned wrapper around every successful response body.
type Envelope struct {
	V       int  `json:"v"`
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// EnvelopeTransformer wraps successful response bodies in the versioned
// envelope. Error bodies already carry their own structure and pass through
// untouched.
func EnvelopeTransformer(_ huma.Context, status string, v any) (any, error) {
	if v == nil {
		return v, nil
	}

	// Errors serialize as-is so their code/message fields stay top level.
	if _, ok := v.(*APIError); ok {
		return v, nil
	}
	if _, ok := v.(huma.StatusError); ok {
		return v, nil
	}

	return Envelope{
		V:       envelopeVersion,
		Success: strings.HasPrefix(status, "2"),
		Data:    v,
	}, nil
}
