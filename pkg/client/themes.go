package client

import (
	"context"

	"github.com/RPP1011/asset-gen-tool/pkg/models"
)

// CreateThemeRequest is the payload for creating a theme.
type CreateThemeRequest struct {
	ID                 string   `json:"id,omitempty"`
	Name               string   `json:"name"`
	StyleKeywords      []string `json:"style_keywords,omitempty"`
	ColorPalette       []string `json:"color_palette,omitempty"`
	Description        string   `json:"description,omitempty"`
	ExampleImage       string   `json:"example_image,omitempty"`
	CreatedBy          string   `json:"created_by,omitempty"`
	StyleGuideMarkdown string   `json:"style_guide_markdown,omitempty"`
	ConceptImageIDs    []string `json:"concept_image_ids,omitempty"`
}

// UpdateThemeRequest carries a partial theme update.
type UpdateThemeRequest struct {
	Name               *string  `json:"name,omitempty"`
	StyleKeywords      []string `json:"style_keywords,omitempty"`
	ColorPalette       []string `json:"color_palette,omitempty"`
	Description        *string  `json:"description,omitempty"`
	ExampleImage       *string  `json:"example_image,omitempty"`
	StyleGuideMarkdown *string  `json:"style_guide_markdown,omitempty"`
	ConceptImageIDs    []string `json:"concept_image_ids,omitempty"`
}

func themesPath(orgID, projectID string) string {
	return projectsPath(orgID) + "/" + esc(projectID) + "/themes"
}

// ListThemes returns the themes of a project.
func (c *Client) ListThemes(ctx context.Context, orgID, projectID string) ([]models.Theme, error) {
	return get[[]models.Theme](ctx, c, themesPath(orgID, projectID), nil)
}

// GetTheme fetches one theme by id; missing themes are api.ErrNotFound.
func (c *Client) GetTheme(ctx context.Context, orgID, projectID, themeID string) (*models.Theme, error) {
	return getOne[*models.Theme](ctx, c, themesPath(orgID, projectID)+"/"+esc(themeID))
}

// CreateTheme creates a theme inside a project.
func (c *Client) CreateTheme(ctx context.Context, orgID, projectID string, req *CreateThemeRequest) (*models.Theme, error) {
	return post[*models.Theme](ctx, c, themesPath(orgID, projectID), req)
}

// UpdateTheme applies a partial update and returns the updated record.
func (c *Client) UpdateTheme(ctx context.Context, orgID, projectID, themeID string, req *UpdateThemeRequest) (*models.Theme, error) {
	return patch[*models.Theme](ctx, c, themesPath(orgID, projectID)+"/"+esc(themeID), req)
}

// DeleteTheme removes a theme.
func (c *Client) DeleteTheme(ctx context.Context, orgID, projectID, themeID string) error {
	return del(ctx, c, themesPath(orgID, projectID)+"/"+esc(themeID))
}
