package mcp

import (
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
)

func TestToolDefinitions(t *testing.T) {
	t.Parallel()

	tools := ToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("ToolDefinitions() returned empty slice")
	}

	expectedTools := []string{
		"assetgen_health",
		"assetgen_orgs",
		"assetgen_org",
		"assetgen_projects",
		"assetgen_project",
		"assetgen_assets",
		"assetgen_asset",
		"assetgen_generations",
		"assetgen_variants",
		"assetgen_themes",
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("ToolDefinitions() returned %d tools, want %d", len(tools), len(expectedTools))
	}

	toolMap := make(map[string]mcplib.Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("missing tool %q", name)
		}
	}

	for name, tool := range toolMap {
		if tool.Description == "" {
			t.Errorf("tool %q has no description", name)
		}
	}
}

func TestToolRequiredParameters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		toolName string
		required []string
	}{
		{"assetgen_health", nil},
		{"assetgen_orgs", nil},
		{"assetgen_org", []string{"org_id"}},
		{"assetgen_projects", []string{"org_id"}},
		{"assetgen_project", []string{"org_id", "project_id"}},
		{"assetgen_assets", []string{"org_id", "project_id"}},
		{"assetgen_asset", []string{"org_id", "project_id", "asset_id"}},
		{"assetgen_generations", []string{"org_id", "project_id", "asset_id"}},
		{"assetgen_variants", []string{"org_id", "project_id", "asset_id", "generation_id"}},
		{"assetgen_themes", []string{"org_id", "project_id"}},
	}

	toolMap := make(map[string]mcplib.Tool)
	for _, tool := range ToolDefinitions() {
		toolMap[tool.Name] = tool
	}

	for _, tt := range tests {
		t.Run(tt.toolName, func(t *testing.T) {
			t.Parallel()

			tool, ok := toolMap[tt.toolName]
			if !ok {
				t.Fatalf("tool %q not defined", tt.toolName)
			}

			if len(tool.InputSchema.Required) != len(tt.required) {
				t.Errorf("required = %v, want %v", tool.InputSchema.Required, tt.required)
			}

			requiredSet := make(map[string]bool)
			for _, r := range tool.InputSchema.Required {
				requiredSet[r] = true
			}
			for _, want := range tt.required {
				if !requiredSet[want] {
					t.Errorf("parameter %q not marked required", want)
				}
			}
		})
	}
}
