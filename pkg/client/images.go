package client

import (
	"context"
	"net/url"

	"github.com/RPP1011/asset-gen-tool/pkg/models"
)

// ListConceptImagesOptions filters a concept image listing.
type ListConceptImagesOptions struct {
	Tag string
}

// CreateConceptImageRequest is the payload for registering a concept image.
type CreateConceptImageRequest struct {
	ID           string   `json:"id,omitempty"`
	ImageURL     string   `json:"image_url"`
	ThumbnailURL string   `json:"thumbnail_url,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Description  string   `json:"description,omitempty"`
	Attribution  string   `json:"attribution,omitempty"`
	UploadedBy   string   `json:"uploaded_by,omitempty"`
	ThemeID      string   `json:"theme_id,omitempty"`
	AssetID      string   `json:"asset_id,omitempty"`
}

// UpdateConceptImageRequest carries a partial concept image update.
type UpdateConceptImageRequest struct {
	ImageURL     *string  `json:"image_url,omitempty"`
	ThumbnailURL *string  `json:"thumbnail_url,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Attribution  *string  `json:"attribution,omitempty"`
	ThemeID      *string  `json:"theme_id,omitempty"`
	AssetID      *string  `json:"asset_id,omitempty"`
}

func conceptImagesPath(orgID, projectID string) string {
	return projectsPath(orgID) + "/" + esc(projectID) + "/concept-images"
}

// ListConceptImages returns the concept images of a project, optionally
// filtered by tag.
func (c *Client) ListConceptImages(ctx context.Context, orgID, projectID string, opts *ListConceptImagesOptions) ([]models.ConceptImage, error) {
	var query url.Values
	if opts != nil && opts.Tag != "" {
		query = url.Values{"tag": []string{opts.Tag}}
	}
	return get[[]models.ConceptImage](ctx, c, conceptImagesPath(orgID, projectID), query)
}

// GetConceptImage fetches one concept image; missing images are api.ErrNotFound.
func (c *Client) GetConceptImage(ctx context.Context, orgID, projectID, imageID string) (*models.ConceptImage, error) {
	return getOne[*models.ConceptImage](ctx, c, conceptImagesPath(orgID, projectID)+"/"+esc(imageID))
}

// CreateConceptImage registers a concept image in a project.
func (c *Client) CreateConceptImage(ctx context.Context, orgID, projectID string, req *CreateConceptImageRequest) (*models.ConceptImage, error) {
	return post[*models.ConceptImage](ctx, c, conceptImagesPath(orgID, projectID), req)
}

// UpdateConceptImage applies a partial update and returns the updated record.
func (c *Client) UpdateConceptImage(ctx context.Context, orgID, projectID, imageID string, req *UpdateConceptImageRequest) (*models.ConceptImage, error) {
	return patch[*models.ConceptImage](ctx, c, conceptImagesPath(orgID, projectID)+"/"+esc(imageID), req)
}

// DeleteConceptImage removes a concept image.
func (c *Client) DeleteConceptImage(ctx context.Context, orgID, projectID, imageID string) error {
	return del(ctx, c, conceptImagesPath(orgID, projectID)+"/"+esc(imageID))
}
