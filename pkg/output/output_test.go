package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/RPP1011/asset-gen-tool/pkg/api"
)

func newTestPrinter(format Format, quiet bool) (*Printer, *bytes.Buffer, *bytes.Buffer) {
	var out, errW bytes.Buffer
	return NewWriter(&out, &errW, format, quiet), &out, &errW
}

func TestSuccessJSON(t *testing.T) {
	t.Parallel()

	p, out, _ := newTestPrinter(FormatJSON, false)

	if err := p.Success(map[string]string{"id": "arcade"}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	var resp struct {
		OK     bool           `json:"ok"`
		Result map[string]any `json:"result"`
	}
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("output not valid json: %v\n%s", err, out.String())
	}
	if !resp.OK {
		t.Error("ok = false, want true")
	}
	if resp.Result["id"] != "arcade" {
		t.Errorf("result = %v", resp.Result)
	}
}

func TestSuccessHumanQuiet(t *testing.T) {
	t.Parallel()

	p, out, _ := newTestPrinter(FormatHuman, true)

	if err := p.Success("hello"); err != nil {
		t.Fatalf("Success() error = %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("quiet human output should be empty, got %q", out.String())
	}
}

func TestErrorAPIError(t *testing.T) {
	t.Parallel()

	t.Run("human", func(t *testing.T) {
		p, _, errW := newTestPrinter(FormatHuman, false)

		err := fmt.Errorf("wrapped: %w", &api.Error{Status: 403, Message: "Forbidden"})
		if perr := p.Error(err); perr != nil {
			t.Fatalf("Error() error = %v", perr)
		}

		got := errW.String()
		if !strings.Contains(got, "Forbidden") || !strings.Contains(got, "403") {
			t.Errorf("error output = %q", got)
		}
	})

	t.Run("json", func(t *testing.T) {
		p, out, _ := newTestPrinter(FormatJSON, false)

		if perr := p.Error(&api.Error{Status: 500, Message: "boom"}); perr != nil {
			t.Fatalf("Error() error = %v", perr)
		}

		var resp struct {
			OK    bool       `json:"ok"`
			Error *api.Error `json:"error"`
		}
		if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
			t.Fatalf("output not valid json: %v", err)
		}
		if resp.OK {
			t.Error("ok = true, want false")
		}
		if resp.Error == nil || resp.Error.Status != 500 || resp.Error.Message != "boom" {
			t.Errorf("error = %+v", resp.Error)
		}
	})
}

func TestErrorNotFound(t *testing.T) {
	t.Parallel()

	p, _, errW := newTestPrinter(FormatHuman, false)

	err := fmt.Errorf("GET /api/orgs/missing: %w", api.ErrNotFound)
	if perr := p.Error(err); perr != nil {
		t.Fatalf("Error() error = %v", perr)
	}

	got := errW.String()
	if !strings.HasPrefix(got, "not found:") {
		t.Errorf("not-found output = %q", got)
	}
}

func TestErrorGeneric(t *testing.T) {
	t.Parallel()

	p, _, errW := newTestPrinter(FormatHuman, false)

	if perr := p.Error(errors.New("connection refused")); perr != nil {
		t.Fatalf("Error() error = %v", perr)
	}

	got := errW.String()
	if !strings.HasPrefix(got, "error:") || !strings.Contains(got, "connection refused") {
		t.Errorf("generic output = %q", got)
	}
}

func TestTable(t *testing.T) {
	t.Parallel()

	t.Run("human aligns columns", func(t *testing.T) {
		p, out, _ := newTestPrinter(FormatHuman, false)

		err := p.Table([]string{"ID", "NAME"}, [][]string{
			{"a", "Alpha"},
			{"long-id", "B"},
		})
		if err != nil {
			t.Fatalf("Table() error = %v", err)
		}

		got := out.String()
		for _, want := range []string{"ID", "NAME", "Alpha", "long-id"} {
			if !strings.Contains(got, want) {
				t.Errorf("table missing %q:\n%s", want, got)
			}
		}
		if !strings.Contains(got, "---") {
			t.Errorf("table missing separator:\n%s", got)
		}
	})

	t.Run("json suppresses table", func(t *testing.T) {
		p, out, _ := newTestPrinter(FormatJSON, false)

		if err := p.Table([]string{"ID"}, [][]string{{"a"}}); err != nil {
			t.Fatalf("Table() error = %v", err)
		}
		if out.Len() != 0 {
			t.Errorf("json table output should be empty, got %q", out.String())
		}
	})
}

func TestPrintfQuiet(t *testing.T) {
	t.Parallel()

	p, out, _ := newTestPrinter(FormatHuman, true)
	p.Printf("hidden %d\n", 1)
	p.Println("hidden")

	if out.Len() != 0 {
		t.Errorf("quiet output should be empty, got %q", out.String())
	}
}

func TestFormatPredicates(t *testing.T) {
	t.Parallel()

	p, _, _ := newTestPrinter(FormatJSON, true)
	if !p.IsJSON() {
		t.Error("IsJSON() = false")
	}
	if !p.IsQuiet() {
		t.Error("IsQuiet() = false")
	}
}
