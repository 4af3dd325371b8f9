package client

import (
	"context"
	"time"

	"github.com/RPP1011/asset-gen-tool/pkg/models"
)

// CreateVariantRequest is the payload for recording a candidate output.
type CreateVariantRequest struct {
	ID           string         `json:"id,omitempty"`
	ImageURL     string         `json:"image_url"`
	ThumbnailURL string         `json:"thumbnail_url,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	IsSelected   bool           `json:"is_selected,omitempty"`
	Feedback     string         `json:"feedback,omitempty"`
	GeneratedAt  *time.Time     `json:"generated_at,omitempty"`
}

// UpdateVariantRequest carries a partial variant update.
type UpdateVariantRequest struct {
	ImageURL     *string        `json:"image_url,omitempty"`
	ThumbnailURL *string        `json:"thumbnail_url,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	IsSelected   *bool          `json:"is_selected,omitempty"`
	Feedback     *string        `json:"feedback,omitempty"`
}

func variantsPath(orgID, projectID, assetID, generationID string) string {
	return generationsPath(orgID, projectID, assetID) + "/" + esc(generationID) + "/variants"
}

// ListVariants returns the candidate outputs of a generation run.
func (c *Client) ListVariants(ctx context.Context, orgID, projectID, assetID, generationID string) ([]models.Variant, error) {
	return get[[]models.Variant](ctx, c, variantsPath(orgID, projectID, assetID, generationID), nil)
}

// GetVariant fetches one variant; missing variants are api.ErrNotFound.
func (c *Client) GetVariant(ctx context.Context, orgID, projectID, assetID, generationID, variantID string) (*models.Variant, error) {
	return getOne[*models.Variant](ctx, c, variantsPath(orgID, projectID, assetID, generationID)+"/"+esc(variantID))
}

// CreateVariant records a candidate output for a generation run.
func (c *Client) CreateVariant(ctx context.Context, orgID, projectID, assetID, generationID string, req *CreateVariantRequest) (*models.Variant, error) {
	return post[*models.Variant](ctx, c, variantsPath(orgID, projectID, assetID, generationID), req)
}

// UpdateVariant applies a partial update and returns the updated record.
func (c *Client) UpdateVariant(ctx context.Context, orgID, projectID, assetID, generationID, variantID string, req *UpdateVariantRequest) (*models.Variant, error) {
	return patch[*models.Variant](ctx, c, variantsPath(orgID, projectID, assetID, generationID)+"/"+esc(variantID), req)
}

// DeleteVariant removes a variant.
func (c *Client) DeleteVariant(ctx context.Context, orgID, projectID, assetID, generationID, variantID string) error {
	return del(ctx, c, variantsPath(orgID, projectID, assetID, generationID)+"/"+esc(variantID))
}
