package mcp

import (
	"fmt"
	"strings"
	"time"

	"github.com/RPP1011/asset-gen-tool/pkg/models"
)

// FormatOrganization formats an organization for text display.
func FormatOrganization(org *models.Organization) string {
	if org == nil {
		return "[Organization not found]"
	}

	var lines []string

	lines = append(lines, fmt.Sprintf("%s (%s)", org.Name, org.ID))

	if org.PlanTier != "" {
		lines = append(lines, fmt.Sprintf("Plan: %s", org.PlanTier))
	}
	if org.OwnerUserID != "" {
		lines = append(lines, fmt.Sprintf("Owner: %s", org.OwnerUserID))
	}
	if len(org.MembersSummary) > 0 {
		lines = append(lines, fmt.Sprintf("Members: %d", len(org.MembersSummary)))
	}
	if org.CreatedAt != nil {
		lines = append(lines, fmt.Sprintf("Created: %s", org.CreatedAt.Format(time.RFC3339)))
	}

	return strings.Join(lines, "\n")
}

// FormatOrganizationList formats organizations as a numbered list.
func FormatOrganizationList(orgs []models.Organization) string {
	if len(orgs) == 0 {
		return "No organizations found."
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("Organizations (%d):", len(orgs)))
	for i, org := range orgs {
		lines = append(lines, fmt.Sprintf("%d. %s (%s)", i+1, org.Name, org.ID))
	}

	return strings.Join(lines, "\n")
}

// FormatProject formats a project for text display.
func FormatProject(project *models.Project) string {
	if project == nil {
		return "[Project not found]"
	}

	var lines []string

	lines = append(lines, fmt.Sprintf("%s (%s)", project.Name, project.ID))

	if project.Description != "" {
		lines = append(lines, project.Description)
	}
	if project.AssetCount > 0 || project.ThemeCount > 0 {
		lines = append(lines, fmt.Sprintf("Assets: %d | Themes: %d", project.AssetCount, project.ThemeCount))
	}
	if project.StyleGuide != nil && project.StyleGuide.MarkdownText != "" {
		lines = append(lines, "Style guide:", project.StyleGuide.MarkdownText)
	} else if project.StyleGuideMarkdown != "" {
		lines = append(lines, "Style guide:", project.StyleGuideMarkdown)
	}
	if project.CreatedAt != nil {
		lines = append(lines, fmt.Sprintf("Created: %s", project.CreatedAt.Format(time.RFC3339)))
	}

	return strings.Join(lines, "\n")
}

// FormatProjectList formats projects as a numbered list.
func FormatProjectList(projects []models.Project) string {
	if len(projects) == 0 {
		return "No projects found."
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("Projects (%d):", len(projects)))
	for i, p := range projects {
		desc := p.Description
		if len(desc) > 60 {
			desc = desc[:57] + "..."
		}
		if desc != "" {
			lines = append(lines, fmt.Sprintf("%d. %s (%s) - %s", i+1, p.Name, p.ID, desc))
		} else {
			lines = append(lines, fmt.Sprintf("%d. %s (%s)", i+1, p.Name, p.ID))
		}
	}

	return strings.Join(lines, "\n")
}

// FormatAsset formats an asset for text display.
func FormatAsset(asset *models.Asset) string {
	if asset == nil {
		return "[Asset not found]"
	}

	var lines []string

	lines = append(lines, fmt.Sprintf("%s (%s)", asset.Name, asset.ID))

	if asset.Description != "" {
		lines = append(lines, asset.Description)
	}
	if asset.Prompt != "" {
		lines = append(lines, fmt.Sprintf("Prompt: %s", asset.Prompt))
	}
	if asset.Width > 0 && asset.Height > 0 {
		lines = append(lines, fmt.Sprintf("Size: %dx%d", asset.Width, asset.Height))
	} else if asset.Size != "" {
		lines = append(lines, fmt.Sprintf("Size: %s", asset.Size))
	}
	if asset.ThemeName != "" {
		lines = append(lines, fmt.Sprintf("Theme: %s (%s)", asset.ThemeName, asset.ThemeID))
	} else if asset.ThemeID != "" {
		lines = append(lines, fmt.Sprintf("Theme: %s", asset.ThemeID))
	}
	if len(asset.Tags) > 0 {
		lines = append(lines, fmt.Sprintf("Tags: %s", strings.Join(asset.Tags, ", ")))
	}
	if asset.CurrentImageURL != "" {
		lines = append(lines, fmt.Sprintf("Current image: %s", asset.CurrentImageURL))
	}
	if asset.FinalVariantID != "" {
		lines = append(lines, fmt.Sprintf("Final variant: %s", asset.FinalVariantID))
	}
	if asset.LatestGenerationID != "" {
		lines = append(lines, fmt.Sprintf("Latest generation: %s", asset.LatestGenerationID))
	}

	return strings.Join(lines, "\n")
}

// FormatAssetList formats assets as a numbered list.
func FormatAssetList(assets []models.Asset) string {
	if len(assets) == 0 {
		return "No assets found."
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("Assets (%d):", len(assets)))
	for i, a := range assets {
		tags := ""
		if len(a.Tags) > 0 {
			tags = " [" + strings.Join(a.Tags, ", ") + "]"
		}
		lines = append(lines, fmt.Sprintf("%d. %s (%s)%s", i+1, a.Name, a.ID, tags))
	}

	return strings.Join(lines, "\n")
}

// FormatGeneration formats a generation run for text display.
func FormatGeneration(gen *models.Generation) string {
	if gen == nil {
		return "[Generation not found]"
	}

	var lines []string

	lines = append(lines, fmt.Sprintf("Generation %s", gen.ID))
	lines = append(lines, fmt.Sprintf("Status: %s", gen.Status))

	if gen.PromptText != "" {
		lines = append(lines, fmt.Sprintf("Prompt: %s", gen.PromptText))
	}
	if gen.VersionNumber > 0 {
		lines = append(lines, fmt.Sprintf("Version: %d", gen.VersionNumber))
	}
	lines = append(lines, fmt.Sprintf("Variants: %d", gen.VariantCount))
	if gen.TriggeredBy != "" {
		lines = append(lines, fmt.Sprintf("Triggered by: %s", gen.TriggeredBy))
	}
	if gen.Notes != "" {
		lines = append(lines, fmt.Sprintf("Notes: %s", gen.Notes))
	}
	if gen.CreatedAt != nil {
		lines = append(lines, fmt.Sprintf("Created: %s", gen.CreatedAt.Format(time.RFC3339)))
	}

	return strings.Join(lines, "\n")
}

// FormatGenerationList formats generation runs as a numbered list.
func FormatGenerationList(gens []models.Generation) string {
	if len(gens) == 0 {
		return "No generations found."
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("Generations (%d):", len(gens)))
	for i, g := range gens {
		prompt := g.PromptText
		if len(prompt) > 60 {
			prompt = prompt[:57] + "..."
		}
		prompt = strings.ReplaceAll(prompt, "\n", " ")
		lines = append(lines, fmt.Sprintf("%d. %s [%s] %s", i+1, g.ID, g.Status, prompt))
	}

	return strings.Join(lines, "\n")
}

// FormatVariantList formats variants as a numbered list.
func FormatVariantList(variants []models.Variant) string {
	if len(variants) == 0 {
		return "No variants found."
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("Variants (%d):", len(variants)))
	for i, v := range variants {
		marker := ""
		if v.IsSelected {
			marker = " *selected*"
		}
		lines = append(lines, fmt.Sprintf("%d. %s %s%s", i+1, v.ID, v.ImageURL, marker))
	}

	return strings.Join(lines, "\n")
}

// FormatTheme formats a theme for text display.
func FormatTheme(theme *models.Theme) string {
	if theme == nil {
		return "[Theme not found]"
	}

	var lines []string

	lines = append(lines, fmt.Sprintf("%s (%s)", theme.Name, theme.ID))

	if theme.Description != "" {
		lines = append(lines, theme.Description)
	}
	if len(theme.StyleKeywords) > 0 {
		lines = append(lines, fmt.Sprintf("Keywords: %s", strings.Join(theme.StyleKeywords, ", ")))
	}
	if len(theme.ColorPalette) > 0 {
		lines = append(lines, fmt.Sprintf("Palette: %s", strings.Join(theme.ColorPalette, ", ")))
	}
	if theme.ExampleImage != "" {
		lines = append(lines, fmt.Sprintf("Example: %s", theme.ExampleImage))
	}

	return strings.Join(lines, "\n")
}

// FormatThemeList formats themes as a numbered list.
func FormatThemeList(themes []models.Theme) string {
	if len(themes) == 0 {
		return "No themes found."
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("Themes (%d):", len(themes)))
	for i, t := range themes {
		kw := ""
		if len(t.StyleKeywords) > 0 {
			kw = " [" + strings.Join(t.StyleKeywords, ", ") + "]"
		}
		lines = append(lines, fmt.Sprintf("%d. %s (%s)%s", i+1, t.Name, t.ID, kw))
	}

	return strings.Join(lines, "\n")
}
