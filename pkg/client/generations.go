package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/RPP1011/asset-gen-tool/pkg/models"
)

// ListGenerationsOptions controls generation listing order. The server
// defaults to created_at descending.
type ListGenerationsOptions struct {
	OrderBy    string
	Descending *bool
}

// CreateGenerationRequest is the payload for recording a generation run.
type CreateGenerationRequest struct {
	ID                  string                  `json:"id,omitempty"`
	PromptText          string                  `json:"prompt_text"`
	Parameters          map[string]any          `json:"parameters,omitempty"`
	ThemeID             string                  `json:"theme_id,omitempty"`
	ThemeSnapshot       map[string]any          `json:"theme_snapshot,omitempty"`
	ConceptImageIDs     []string                `json:"concept_image_ids,omitempty"`
	ConceptImageWeights map[string]float64      `json:"concept_image_weights,omitempty"`
	VariantCount        int                     `json:"variant_count,omitempty"`
	TriggeredBy         string                  `json:"triggered_by,omitempty"`
	Status              models.GenerationStatus `json:"status,omitempty"`
	Notes               string                  `json:"notes,omitempty"`
	VersionNumber       int                     `json:"version_number,omitempty"`
}

// UpdateGenerationRequest carries a partial generation update.
type UpdateGenerationRequest struct {
	PromptText    *string                  `json:"prompt_text,omitempty"`
	Parameters    map[string]any           `json:"parameters,omitempty"`
	Status        *models.GenerationStatus `json:"status,omitempty"`
	Notes         *string                  `json:"notes,omitempty"`
	VariantCount  *int                     `json:"variant_count,omitempty"`
	VersionNumber *int                     `json:"version_number,omitempty"`
}

func generationsPath(orgID, projectID, assetID string) string {
	return assetsPath(orgID, projectID) + "/" + esc(assetID) + "/generations"
}

// ListGenerations returns the generation runs of an asset.
func (c *Client) ListGenerations(ctx context.Context, orgID, projectID, assetID string, opts *ListGenerationsOptions) ([]models.Generation, error) {
	var query url.Values
	if opts != nil {
		query = url.Values{}
		if opts.OrderBy != "" {
			query.Set("order_by", opts.OrderBy)
		}
		if opts.Descending != nil {
			query.Set("descending", strconv.FormatBool(*opts.Descending))
		}
	}
	return get[[]models.Generation](ctx, c, generationsPath(orgID, projectID, assetID), query)
}

// GetGeneration fetches one generation run; missing runs are api.ErrNotFound.
func (c *Client) GetGeneration(ctx context.Context, orgID, projectID, assetID, generationID string) (*models.Generation, error) {
	return getOne[*models.Generation](ctx, c, generationsPath(orgID, projectID, assetID)+"/"+esc(generationID))
}

// CreateGeneration records a new generation run for an asset.
func (c *Client) CreateGeneration(ctx context.Context, orgID, projectID, assetID string, req *CreateGenerationRequest) (*models.Generation, error) {
	return post[*models.Generation](ctx, c, generationsPath(orgID, projectID, assetID), req)
}

// UpdateGeneration applies a partial update and returns the updated record.
func (c *Client) UpdateGeneration(ctx context.Context, orgID, projectID, assetID, generationID string, req *UpdateGenerationRequest) (*models.Generation, error) {
	return patch[*models.Generation](ctx, c, generationsPath(orgID, projectID, assetID)+"/"+esc(generationID), req)
}

// DeleteGeneration removes a generation run.
func (c *Client) DeleteGeneration(ctx context.Context, orgID, projectID, assetID, generationID string) error {
	return del(ctx, c, generationsPath(orgID, projectID, assetID)+"/"+esc(generationID))
}
