// Package output handles formatting and displaying CLI output.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/RPP1011/asset-gen-tool/pkg/api"
)

// Format represents the output format type.
type Format int

const (
	FormatHuman Format = iota
	FormatJSON
	FormatRaw
)

// Printer handles output formatting.
type Printer struct {
	writer io.Writer
	errW   io.Writer
	format Format
	quiet  bool
}

// New creates a new output printer.
func New(format Format, quiet bool) *Printer {
	return &Printer{
		writer: os.Stdout,
		errW:   os.Stderr,
		format: format,
		quiet:  quiet,
	}
}

// NewWriter creates a printer targeting explicit writers, for tests.
func NewWriter(w, errW io.Writer, format Format, quiet bool) *Printer {
	return &Printer{writer: w, errW: errW, format: format, quiet: quiet}
}

// Success prints a success response.
func (p *Printer) Success(result any) error {
	switch p.format {
	case FormatJSON:
		return p.printJSON(api.Response[any]{
			OK:     true,
			Result: result,
		})
	case FormatRaw:
		fmt.Fprintf(p.writer, "%v\n", result)
		return nil
	default:
		if !p.quiet {
			fmt.Fprintf(p.writer, "%v\n", result)
		}
		return nil
	}
}

// Error prints an error response. API errors keep their status; the
// not-found sentinel renders as a plain "not found" line.
func (p *Printer) Error(err error) error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return p.apiError(apiErr)
	}

	if errors.Is(err, api.ErrNotFound) {
		if p.format == FormatJSON {
			return p.printJSON(api.Response[any]{
				OK:    false,
				Error: &api.Error{Status: 404, Message: "not found"},
			})
		}
		fmt.Fprintf(p.errW, "not found: %v\n", err)
		return nil
	}

	if p.format == FormatJSON {
		return p.printJSON(api.Response[any]{
			OK:    false,
			Error: &api.Error{Message: err.Error()},
		})
	}
	fmt.Fprintf(p.errW, "error: %v\n", err)
	return nil
}

func (p *Printer) apiError(apiErr *api.Error) error {
	if p.format == FormatJSON {
		return p.printJSON(api.Response[any]{
			OK:    false,
			Error: apiErr,
		})
	}
	fmt.Fprintf(p.errW, "error: %s (status %d)\n", apiErr.Message, apiErr.Status)
	return nil
}

// Printf prints formatted data.
func (p *Printer) Printf(format string, args ...any) {
	if p.quiet && p.format != FormatJSON {
		return
	}
	fmt.Fprintf(p.writer, format, args...)
}

// Println prints a line of arbitrary data.
func (p *Printer) Println(args ...any) {
	if p.quiet && p.format != FormatJSON {
		return
	}
	fmt.Fprintln(p.writer, args...)
}

// Table prints data in table format (only in human mode).
func (p *Printer) Table(headers []string, rows [][]string) error {
	if p.format != FormatHuman {
		return nil
	}

	if len(headers) == 0 || len(rows) == 0 {
		return nil
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}

	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	for i, h := range headers {
		fmt.Fprintf(p.writer, "%-*s  ", widths[i], h)
	}
	fmt.Fprintln(p.writer)

	for i := range headers {
		for j := 0; j < widths[i]; j++ {
			fmt.Fprint(p.writer, "-")
		}
		fmt.Fprint(p.writer, "  ")
	}
	fmt.Fprintln(p.writer)

	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				fmt.Fprintf(p.writer, "%-*s  ", widths[i], cell)
			}
		}
		fmt.Fprintln(p.writer)
	}

	return nil
}

// printJSON marshals and prints JSON output.
func (p *Printer) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	fmt.Fprintf(p.writer, "%s\n", data)
	return nil
}

// IsJSON returns true if the output format is JSON.
func (p *Printer) IsJSON() bool {
	return p.format == FormatJSON
}

// IsQuiet returns true if quiet mode is enabled.
func (p *Printer) IsQuiet() bool {
	return p.quiet
}
