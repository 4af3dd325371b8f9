package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"

	"github.com/RPP1011/asset-gen-tool/pkg/client"
	"github.com/RPP1011/asset-gen-tool/pkg/models"
)

// mockRequest creates a CallToolRequest with the given arguments.
func mockRequest(name string, args map[string]any) mcplib.CallToolRequest {
	return mcplib.CallToolRequest{
		Params: mcplib.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

// mockServer creates a test HTTP server that returns specified responses.
type mockServer struct {
	*httptest.Server
	responses map[string]mockResponse
}

type mockResponse struct {
	statusCode int
	body       any
}

func newMockServer() *mockServer {
	ms := &mockServer{
		responses: make(map[string]mockResponse),
	}

	ms.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path

		resp, ok := ms.responses[key]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Not found."})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.statusCode)
		_ = json.NewEncoder(w).Encode(resp.body)
	}))

	return ms
}

func (ms *mockServer) setResponse(method, path string, statusCode int, body any) {
	ms.responses[method+" "+path] = mockResponse{
		statusCode: statusCode,
		body:       body,
	}
}

func (ms *mockServer) handlers() *Handlers {
	return NewHandlers(client.New(ms.URL))
}

func getResultText(t *testing.T, result *mcplib.CallToolResult) string {
	t.Helper()
	if result == nil {
		t.Fatal("result is nil")
	}

	for _, content := range result.Content {
		if text, ok := content.(mcplib.TextContent); ok {
			return text.Text
		}
	}

	return fmt.Sprintf("unexpected content type: %T", result.Content)
}

func isErrorResult(result *mcplib.CallToolResult) bool {
	if result == nil {
		return false
	}
	return result.IsError
}

func TestNewHandlers(t *testing.T) {
	t.Parallel()

	c := client.New("http://localhost")
	handlers := NewHandlers(c)

	if handlers == nil {
		t.Fatal("NewHandlers returned nil")
	}
	if handlers.client != c {
		t.Error("handlers.client not set correctly")
	}
}

func TestHandleHealth(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("healthy", func(t *testing.T) {
		ms := newMockServer()
		defer ms.Close()

		ms.setResponse("GET", "/api/health", 200, models.Health{Status: "ok"})

		result, err := ms.handlers().HandleHealth(ctx, mockRequest("assetgen_health", nil))
		if err != nil {
			t.Fatalf("HandleHealth() error = %v", err)
		}

		text := getResultText(t, result)
		if !strings.Contains(text, "ok") {
			t.Errorf("expected 'ok' in result, got %q", text)
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		ms := newMockServer()
		ms.Close()

		result, err := ms.handlers().HandleHealth(ctx, mockRequest("assetgen_health", nil))
		if err != nil {
			t.Fatalf("HandleHealth() error = %v", err)
		}

		if !isErrorResult(result) {
			t.Error("expected error result for unreachable API")
		}
	})
}

func TestHandleListOrgs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	ms := newMockServer()
	defer ms.Close()

	ms.setResponse("GET", "/api/orgs", 200, []models.Organization{
		{ID: "arcade", Name: "Arcade Interactive"},
		{ID: "indie", Name: "Indie Studio"},
	})

	result, err := ms.handlers().HandleListOrgs(ctx, mockRequest("assetgen_orgs", nil))
	if err != nil {
		t.Fatalf("HandleListOrgs() error = %v", err)
	}

	text := getResultText(t, result)
	for _, want := range []string{"Organizations (2):", "Arcade Interactive", "Indie Studio"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected %q in result, got %q", want, text)
		}
	}
}

func TestHandleGetOrg(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		ms := newMockServer()
		defer ms.Close()

		ms.setResponse("GET", "/api/orgs/arcade", 200, models.Organization{
			ID:       "arcade",
			Name:     "Arcade Interactive",
			PlanTier: "pro",
		})

		result, err := ms.handlers().HandleGetOrg(ctx, mockRequest("assetgen_org", map[string]any{
			"org_id": "arcade",
		}))
		if err != nil {
			t.Fatalf("HandleGetOrg() error = %v", err)
		}

		text := getResultText(t, result)
		if !strings.Contains(text, "Arcade Interactive") {
			t.Errorf("expected org name in result, got %q", text)
		}
		if !strings.Contains(text, "Plan: pro") {
			t.Errorf("expected plan tier in result, got %q", text)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ms := newMockServer()
		defer ms.Close()

		result, err := ms.handlers().HandleGetOrg(ctx, mockRequest("assetgen_org", map[string]any{
			"org_id": "missing",
		}))
		if err != nil {
			t.Fatalf("HandleGetOrg() error = %v", err)
		}

		if !isErrorResult(result) {
			t.Error("expected error result for missing org")
		}
		text := getResultText(t, result)
		if !strings.Contains(text, "not found") {
			t.Errorf("expected 'not found' in result, got %q", text)
		}
	})

	t.Run("missing argument", func(t *testing.T) {
		ms := newMockServer()
		defer ms.Close()

		result, err := ms.handlers().HandleGetOrg(ctx, mockRequest("assetgen_org", nil))
		if err != nil {
			t.Fatalf("HandleGetOrg() error = %v", err)
		}

		if !isErrorResult(result) {
			t.Error("expected error result for missing org_id")
		}
	})
}

func TestHandleListAssets(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	ms := newMockServer()
	defer ms.Close()

	ms.setResponse("GET", "/api/orgs/arcade/projects/neon/assets", 200, []models.Asset{
		{ID: "a1", Name: "Gold Coin", Tags: []string{"pickup"}},
	})

	result, err := ms.handlers().HandleListAssets(ctx, mockRequest("assetgen_assets", map[string]any{
		"org_id":     "arcade",
		"project_id": "neon",
	}))
	if err != nil {
		t.Fatalf("HandleListAssets() error = %v", err)
	}

	text := getResultText(t, result)
	if !strings.Contains(text, "Gold Coin") {
		t.Errorf("expected asset name in result, got %q", text)
	}
	if !strings.Contains(text, "[pickup]") {
		t.Errorf("expected tags in result, got %q", text)
	}
}

func TestHandleListVariants(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	ms := newMockServer()
	defer ms.Close()

	ms.setResponse("GET", "/api/orgs/arcade/projects/neon/assets/a1/generations/g1/variants", 200, []models.Variant{
		{ID: "v1", ImageURL: "https://cdn.example/1.png"},
		{ID: "v2", ImageURL: "https://cdn.example/2.png", IsSelected: true},
	})

	result, err := ms.handlers().HandleListVariants(ctx, mockRequest("assetgen_variants", map[string]any{
		"org_id":        "arcade",
		"project_id":    "neon",
		"asset_id":      "a1",
		"generation_id": "g1",
	}))
	if err != nil {
		t.Fatalf("HandleListVariants() error = %v", err)
	}

	text := getResultText(t, result)
	if !strings.Contains(text, "Variants (2):") {
		t.Errorf("expected variant count in result, got %q", text)
	}
	if !strings.Contains(text, "*selected*") {
		t.Errorf("expected selected marker in result, got %q", text)
	}
}

func TestHandleListThemes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	ms := newMockServer()
	defer ms.Close()

	ms.setResponse("GET", "/api/orgs/arcade/projects/neon/themes", 200, []models.Theme{
		{ID: "theme-9", Name: "Retro Arcade", StyleKeywords: []string{"neon"}},
	})

	result, err := ms.handlers().HandleListThemes(ctx, mockRequest("assetgen_themes", map[string]any{
		"org_id":     "arcade",
		"project_id": "neon",
	}))
	if err != nil {
		t.Fatalf("HandleListThemes() error = %v", err)
	}

	text := getResultText(t, result)
	if !strings.Contains(text, "Retro Arcade") {
		t.Errorf("expected theme name in result, got %q", text)
	}
}
