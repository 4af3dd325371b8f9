package api

import (
	"errors"
	"fmt"
	"testing"
)

func TestExtractMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "detail envelope",
			body: `{"detail": "Org not found"}`,
			want: "Org not found",
		},
		{
			name: "detail envelope with extra fields",
			body: `{"detail": "Forbidden", "code": 403}`,
			want: "Forbidden",
		},
		{
			name: "bare json string",
			body: `"boom"`,
			want: "boom",
		},
		{
			name: "empty body",
			body: "",
			want: GenericMessage,
		},
		{
			name: "whitespace body",
			body: "   \n\t",
			want: GenericMessage,
		},
		{
			name: "empty json string",
			body: `""`,
			want: GenericMessage,
		},
		{
			name: "empty detail falls through to compact json",
			body: `{"detail": ""}`,
			want: `{"detail":""}`,
		},
		{
			name: "json object without detail",
			body: `{"code": 7}`,
			want: `{"code":7}`,
		},
		{
			name: "json array",
			body: `[1, 2]`,
			want: `[1,2]`,
		},
		{
			name: "non-json body",
			body: "Bad Gateway",
			want: "Bad Gateway",
		},
		{
			name: "detail not a string",
			body: `{"detail": {"reason": "nope"}}`,
			want: `{"detail":{"reason":"nope"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ExtractMessage([]byte(tt.body))
			if got != tt.want {
				t.Errorf("ExtractMessage(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	t.Parallel()

	err := &Error{Status: 403, Message: "Forbidden"}

	want := "api error (status 403): Forbidden"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestErrorAsTarget(t *testing.T) {
	t.Parallel()

	var err error = fmt.Errorf("wrapped: %w", &Error{Status: 500, Message: "boom"})

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatal("errors.As() failed to unwrap *Error")
	}
	if apiErr.Status != 500 {
		t.Errorf("Status = %d, want 500", apiErr.Status)
	}
}

func TestErrNotFoundSentinel(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("GET /api/orgs/missing: %w", ErrNotFound)

	if !errors.Is(err, ErrNotFound) {
		t.Error("errors.Is() failed to match wrapped ErrNotFound")
	}
}
