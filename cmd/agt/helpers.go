package main

import (
	"fmt"
	"time"

	"github.com/RPP1011/asset-gen-tool/pkg/client"
	"github.com/RPP1011/asset-gen-tool/pkg/config"
	"github.com/RPP1011/asset-gen-tool/pkg/output"
)

// getOutputPrinter creates an output printer based on global flags.
func getOutputPrinter() *output.Printer {
	format := output.FormatHuman
	if flagJSON {
		format = output.FormatJSON
	} else if flagRaw {
		format = output.FormatRaw
	}

	return output.New(format, flagQuiet)
}

// getClient creates an API client against the configured base URL.
func getClient() *client.Client {
	apiURL := config.GetAPIUrl()
	return client.New(apiURL, client.WithUserAgent("agt/"+version))
}

func errMissingFlag(name string) error {
	return fmt.Errorf("--%s is required", name)
}

// timeStr renders an optional timestamp for table cells.
func timeStr(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

// truncate shortens long cell text.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
