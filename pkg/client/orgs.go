package client

import (
	"context"

	"github.com/RPP1011/asset-gen-tool/pkg/models"
)

// CreateOrganizationRequest is the payload for creating an organization.
// ID optionally pins the document id; the server assigns one otherwise.
type CreateOrganizationRequest struct {
	ID             string           `json:"id,omitempty"`
	Name           string           `json:"name"`
	OwnerUserID    string           `json:"owner_user_id,omitempty"`
	PlanTier       string           `json:"plan_tier,omitempty"`
	MembersSummary []map[string]any `json:"members_summary,omitempty"`
}

// UpdateOrganizationRequest carries a partial update; nil fields are
// left untouched.
type UpdateOrganizationRequest struct {
	Name        *string `json:"name,omitempty"`
	OwnerUserID *string `json:"owner_user_id,omitempty"`
	PlanTier    *string `json:"plan_tier,omitempty"`
}

// ListOrganizations returns all organizations.
func (c *Client) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	return get[[]models.Organization](ctx, c, "/api/orgs", nil)
}

// GetOrganization fetches one organization by id. A missing organization
// is api.ErrNotFound, not a generic error.
func (c *Client) GetOrganization(ctx context.Context, orgID string) (*models.Organization, error) {
	return getOne[*models.Organization](ctx, c, "/api/orgs/"+esc(orgID))
}

// CreateOrganization creates an organization.
func (c *Client) CreateOrganization(ctx context.Context, req *CreateOrganizationRequest) (*models.Organization, error) {
	return post[*models.Organization](ctx, c, "/api/orgs", req)
}

// UpdateOrganization applies a partial update and returns the updated record.
func (c *Client) UpdateOrganization(ctx context.Context, orgID string, req *UpdateOrganizationRequest) (*models.Organization, error) {
	return patch[*models.Organization](ctx, c, "/api/orgs/"+esc(orgID), req)
}

// DeleteOrganization removes an organization.
func (c *Client) DeleteOrganization(ctx context.Context, orgID string) error {
	return del(ctx, c, "/api/orgs/"+esc(orgID))
}
