// Package api defines the wire-level error contract shared by the client
// and the CLI output layer.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// GenericMessage is used when the server gave us nothing better.
const GenericMessage = "API request failed"

// EmptyResponseMessage is used when a 2xx response carried no payload
// where one was expected.
const EmptyResponseMessage = "unexpected empty response from API"

// ErrNotFound signals that a requested resource does not exist. Get-one
// accessors return it (wrapped) on HTTP 404; list accessors never do.
// Check with errors.Is.
var ErrNotFound = errors.New("resource not found")

// Envelope is the server's error body: a JSON object optionally carrying
// a human-readable detail string. FastAPI-style.
type Envelope struct {
	Detail string `json:"detail"`
}

// Error represents a failed API call. It carries the HTTP status code
// unchanged and a message extracted from the server's error envelope.
type Error struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// Response wraps CLI JSON output.
type Response[T any] struct {
	OK     bool   `json:"ok"`
	Result T      `json:"result,omitempty"`
	Error  *Error `json:"error,omitempty"`
}

// ExtractMessage derives a human-readable message from a raw error body.
//
// Policy: an empty body yields the generic message; an envelope with a
// string detail yields that detail; a bare JSON string is used verbatim;
// any other JSON value is passed through in compact serialized form; a
// non-JSON body is used as-is. Extraction never fails: error handling
// must not itself produce errors.
func ExtractMessage(body []byte) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return GenericMessage
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Detail != "" {
		return env.Detail
	}

	var s string
	if err := json.Unmarshal(body, &s); err == nil {
		if s == "" {
			return GenericMessage
		}
		return s
	}

	if json.Valid(body) {
		var buf bytes.Buffer
		if err := json.Compact(&buf, body); err == nil {
			return buf.String()
		}
		return string(body)
	}

	return string(body)
}
