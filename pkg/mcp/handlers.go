package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/RPP1011/asset-gen-tool/pkg/api"
	"github.com/RPP1011/asset-gen-tool/pkg/client"
)

// Handlers contains all tool handlers for the asset generation MCP server.
type Handlers struct {
	client *client.Client
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(c *client.Client) *Handlers {
	return &Handlers{client: c}
}

// === Service Handlers ===

// HandleHealth handles the assetgen_health tool.
func (h *Handlers) HandleHealth(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	health, err := h.client.Health(ctx)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("API is unreachable", err), nil
	}

	text := fmt.Sprintf("API %s: %s", h.client.BaseURL(), health.Status)
	return mcp.NewToolResultText(text), nil
}

// === Organization Handlers ===

// HandleListOrgs handles the assetgen_orgs tool.
func (h *Handlers) HandleListOrgs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	orgs, err := h.client.ListOrganizations(ctx)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("Failed to list organizations", err), nil
	}

	return mcp.NewToolResultText(FormatOrganizationList(orgs)), nil
}

// HandleGetOrg handles the assetgen_org tool.
func (h *Handlers) HandleGetOrg(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	orgID, err := req.RequireString("org_id")
	if err != nil {
		return mcp.NewToolResultError("org_id is required"), nil
	}

	org, err := h.client.GetOrganization(ctx, orgID)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("Organization %s not found", orgID)), nil
		}
		return mcp.NewToolResultErrorFromErr("Failed to fetch organization", err), nil
	}

	return mcp.NewToolResultText(FormatOrganization(org)), nil
}

// === Project Handlers ===

// HandleListProjects handles the assetgen_projects tool.
func (h *Handlers) HandleListProjects(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	orgID, err := req.RequireString("org_id")
	if err != nil {
		return mcp.NewToolResultError("org_id is required"), nil
	}

	projects, err := h.client.ListProjects(ctx, orgID)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("Failed to list projects", err), nil
	}

	return mcp.NewToolResultText(FormatProjectList(projects)), nil
}

// HandleGetProject handles the assetgen_project tool.
func (h *Handlers) HandleGetProject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	orgID, err := req.RequireString("org_id")
	if err != nil {
		return mcp.NewToolResultError("org_id is required"), nil
	}
	projectID, err := req.RequireString("project_id")
	if err != nil {
		return mcp.NewToolResultError("project_id is required"), nil
	}

	project, err := h.client.GetProject(ctx, orgID, projectID)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("Project %s not found", projectID)), nil
		}
		return mcp.NewToolResultErrorFromErr("Failed to fetch project", err), nil
	}

	return mcp.NewToolResultText(FormatProject(project)), nil
}

// === Asset Handlers ===

// HandleListAssets handles the assetgen_assets tool.
func (h *Handlers) HandleListAssets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	orgID, err := req.RequireString("org_id")
	if err != nil {
		return mcp.NewToolResultError("org_id is required"), nil
	}
	projectID, err := req.RequireString("project_id")
	if err != nil {
		return mcp.NewToolResultError("project_id is required"), nil
	}

	opts := &client.ListAssetsOptions{
		Tag:     req.GetString("tag", ""),
		ThemeID: req.GetString("theme_id", ""),
	}

	assets, err := h.client.ListAssets(ctx, orgID, projectID, opts)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("Failed to list assets", err), nil
	}

	return mcp.NewToolResultText(FormatAssetList(assets)), nil
}

// HandleGetAsset handles the assetgen_asset tool.
func (h *Handlers) HandleGetAsset(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	orgID, err := req.RequireString("org_id")
	if err != nil {
		return mcp.NewToolResultError("org_id is required"), nil
	}
	projectID, err := req.RequireString("project_id")
	if err != nil {
		return mcp.NewToolResultError("project_id is required"), nil
	}
	assetID, err := req.RequireString("asset_id")
	if err != nil {
		return mcp.NewToolResultError("asset_id is required"), nil
	}

	asset, err := h.client.GetAsset(ctx, orgID, projectID, assetID)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("Asset %s not found", assetID)), nil
		}
		return mcp.NewToolResultErrorFromErr("Failed to fetch asset", err), nil
	}

	return mcp.NewToolResultText(FormatAsset(asset)), nil
}

// === Generation Handlers ===

// HandleListGenerations handles the assetgen_generations tool.
func (h *Handlers) HandleListGenerations(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	orgID, err := req.RequireString("org_id")
	if err != nil {
		return mcp.NewToolResultError("org_id is required"), nil
	}
	projectID, err := req.RequireString("project_id")
	if err != nil {
		return mcp.NewToolResultError("project_id is required"), nil
	}
	assetID, err := req.RequireString("asset_id")
	if err != nil {
		return mcp.NewToolResultError("asset_id is required"), nil
	}

	gens, err := h.client.ListGenerations(ctx, orgID, projectID, assetID, nil)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("Failed to list generations", err), nil
	}

	return mcp.NewToolResultText(FormatGenerationList(gens)), nil
}

// HandleListVariants handles the assetgen_variants tool.
func (h *Handlers) HandleListVariants(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	orgID, err := req.RequireString("org_id")
	if err != nil {
		return mcp.NewToolResultError("org_id is required"), nil
	}
	projectID, err := req.RequireString("project_id")
	if err != nil {
		return mcp.NewToolResultError("project_id is required"), nil
	}
	assetID, err := req.RequireString("asset_id")
	if err != nil {
		return mcp.NewToolResultError("asset_id is required"), nil
	}
	generationID, err := req.RequireString("generation_id")
	if err != nil {
		return mcp.NewToolResultError("generation_id is required"), nil
	}

	variants, err := h.client.ListVariants(ctx, orgID, projectID, assetID, generationID)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("Failed to list variants", err), nil
	}

	return mcp.NewToolResultText(FormatVariantList(variants)), nil
}

// === Theme Handlers ===

// HandleListThemes handles the assetgen_themes tool.
func (h *Handlers) HandleListThemes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	orgID, err := req.RequireString("org_id")
	if err != nil {
		return mcp.NewToolResultError("org_id is required"), nil
	}
	projectID, err := req.RequireString("project_id")
	if err != nil {
		return mcp.NewToolResultError("project_id is required"), nil
	}

	themes, err := h.client.ListThemes(ctx, orgID, projectID)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("Failed to list themes", err), nil
	}

	return mcp.NewToolResultText(FormatThemeList(themes)), nil
}
