package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// ToolDefinitions returns all tool definitions for the asset generation MCP server.
func ToolDefinitions() []mcp.Tool {
	return []mcp.Tool{
		// Service tools
		toolHealth(),

		// Organization tools
		toolListOrgs(),
		toolGetOrg(),

		// Project tools
		toolListProjects(),
		toolGetProject(),

		// Asset tools
		toolListAssets(),
		toolGetAsset(),

		// Generation tools
		toolListGenerations(),
		toolListVariants(),

		// Theme tools
		toolListThemes(),
	}
}

// === Service Tools ===

func toolHealth() mcp.Tool {
	return mcp.NewTool("assetgen_health",
		mcp.WithDescription("Check that the asset generation API is reachable"),
	)
}

// === Organization Tools ===

func toolListOrgs() mcp.Tool {
	return mcp.NewTool("assetgen_orgs",
		mcp.WithDescription("List all organizations"),
	)
}

func toolGetOrg() mcp.Tool {
	return mcp.NewTool("assetgen_org",
		mcp.WithDescription("Get a single organization, including its style guide"),
		mcp.WithString("org_id",
			mcp.Description("Organization ID"),
			mcp.Required(),
		),
	)
}

// === Project Tools ===

func toolListProjects() mcp.Tool {
	return mcp.NewTool("assetgen_projects",
		mcp.WithDescription("List the projects in an organization"),
		mcp.WithString("org_id",
			mcp.Description("Organization ID"),
			mcp.Required(),
		),
	)
}

func toolGetProject() mcp.Tool {
	return mcp.NewTool("assetgen_project",
		mcp.WithDescription("Get a single project"),
		mcp.WithString("org_id",
			mcp.Description("Organization ID"),
			mcp.Required(),
		),
		mcp.WithString("project_id",
			mcp.Description("Project ID"),
			mcp.Required(),
		),
	)
}

// === Asset Tools ===

func toolListAssets() mcp.Tool {
	return mcp.NewTool("assetgen_assets",
		mcp.WithDescription("List the assets in a project, optionally filtered by tag or theme"),
		mcp.WithString("org_id",
			mcp.Description("Organization ID"),
			mcp.Required(),
		),
		mcp.WithString("project_id",
			mcp.Description("Project ID"),
			mcp.Required(),
		),
		mcp.WithString("tag",
			mcp.Description("Only return assets carrying this tag"),
		),
		mcp.WithString("theme_id",
			mcp.Description("Only return assets belonging to this theme"),
		),
	)
}

func toolGetAsset() mcp.Tool {
	return mcp.NewTool("assetgen_asset",
		mcp.WithDescription("Get a single asset, including its current image and final variant"),
		mcp.WithString("org_id",
			mcp.Description("Organization ID"),
			mcp.Required(),
		),
		mcp.WithString("project_id",
			mcp.Description("Project ID"),
			mcp.Required(),
		),
		mcp.WithString("asset_id",
			mcp.Description("Asset ID"),
			mcp.Required(),
		),
	)
}

// === Generation Tools ===

func toolListGenerations() mcp.Tool {
	return mcp.NewTool("assetgen_generations",
		mcp.WithDescription("List the generation runs for an asset, newest first"),
		mcp.WithString("org_id",
			mcp.Description("Organization ID"),
			mcp.Required(),
		),
		mcp.WithString("project_id",
			mcp.Description("Project ID"),
			mcp.Required(),
		),
		mcp.WithString("asset_id",
			mcp.Description("Asset ID"),
			mcp.Required(),
		),
	)
}

func toolListVariants() mcp.Tool {
	return mcp.NewTool("assetgen_variants",
		mcp.WithDescription("List the image variants produced by a generation run"),
		mcp.WithString("org_id",
			mcp.Description("Organization ID"),
			mcp.Required(),
		),
		mcp.WithString("project_id",
			mcp.Description("Project ID"),
			mcp.Required(),
		),
		mcp.WithString("asset_id",
			mcp.Description("Asset ID"),
			mcp.Required(),
		),
		mcp.WithString("generation_id",
			mcp.Description("Generation ID"),
			mcp.Required(),
		),
	)
}

// === Theme Tools ===

func toolListThemes() mcp.Tool {
	return mcp.NewTool("assetgen_themes",
		mcp.WithDescription("List the themes in a project"),
		mcp.WithString("org_id",
			mcp.Description("Organization ID"),
			mcp.Required(),
		),
		mcp.WithString("project_id",
			mcp.Description("Project ID"),
			mcp.Required(),
		),
	)
}
