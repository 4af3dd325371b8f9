package client

import (
	"context"
	"net/url"
	"time"

	"github.com/RPP1011/asset-gen-tool/pkg/models"
)

// ListAssetsOptions filters an asset listing. Zero values mean no filter.
type ListAssetsOptions struct {
	Tag     string
	ThemeID string
}

// CreateAssetRequest is the payload for creating an asset.
type CreateAssetRequest struct {
	ID              string   `json:"id,omitempty"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	Prompt          string   `json:"prompt,omitempty"`
	Size            string   `json:"size,omitempty"`
	Width           int      `json:"width,omitempty"`
	Height          int      `json:"height,omitempty"`
	ThemeID         string   `json:"theme_id,omitempty"`
	ThemeName       string   `json:"theme_name,omitempty"`
	ConceptImageIDs []string `json:"concept_image_ids,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	CreatedBy       string   `json:"created_by,omitempty"`
}

// UpdateAssetRequest carries a partial asset update.
type UpdateAssetRequest struct {
	Name               *string    `json:"name,omitempty"`
	Description        *string    `json:"description,omitempty"`
	Prompt             *string    `json:"prompt,omitempty"`
	Size               *string    `json:"size,omitempty"`
	Width              *int       `json:"width,omitempty"`
	Height             *int       `json:"height,omitempty"`
	ThemeID            *string    `json:"theme_id,omitempty"`
	ThemeName          *string    `json:"theme_name,omitempty"`
	ConceptImageIDs    []string   `json:"concept_image_ids,omitempty"`
	Tags               []string   `json:"tags,omitempty"`
	FinalVariantID     *string    `json:"final_variant_id,omitempty"`
	CurrentImageURL    *string    `json:"current_image_url,omitempty"`
	LatestGenerationID *string    `json:"latest_generation_id,omitempty"`
	LatestGenerationAt *time.Time `json:"latest_generation_at,omitempty"`
}

func assetsPath(orgID, projectID string) string {
	return projectsPath(orgID) + "/" + esc(projectID) + "/assets"
}

// ListAssets returns the assets of a project, optionally filtered by tag
// or theme.
func (c *Client) ListAssets(ctx context.Context, orgID, projectID string, opts *ListAssetsOptions) ([]models.Asset, error) {
	var query url.Values
	if opts != nil {
		query = url.Values{}
		if opts.Tag != "" {
			query.Set("tag", opts.Tag)
		}
		if opts.ThemeID != "" {
			query.Set("theme_id", opts.ThemeID)
		}
	}
	return get[[]models.Asset](ctx, c, assetsPath(orgID, projectID), query)
}

// GetAsset fetches one asset by id; missing assets are api.ErrNotFound.
func (c *Client) GetAsset(ctx context.Context, orgID, projectID, assetID string) (*models.Asset, error) {
	return getOne[*models.Asset](ctx, c, assetsPath(orgID, projectID)+"/"+esc(assetID))
}

// CreateAsset creates an asset inside a project.
func (c *Client) CreateAsset(ctx context.Context, orgID, projectID string, req *CreateAssetRequest) (*models.Asset, error) {
	return post[*models.Asset](ctx, c, assetsPath(orgID, projectID), req)
}

// UpdateAsset applies a partial update and returns the updated record.
func (c *Client) UpdateAsset(ctx context.Context, orgID, projectID, assetID string, req *UpdateAssetRequest) (*models.Asset, error) {
	return patch[*models.Asset](ctx, c, assetsPath(orgID, projectID)+"/"+esc(assetID), req)
}

// DeleteAsset removes an asset.
func (c *Client) DeleteAsset(ctx context.Context, orgID, projectID, assetID string) error {
	return del(ctx, c, assetsPath(orgID, projectID)+"/"+esc(assetID))
}
