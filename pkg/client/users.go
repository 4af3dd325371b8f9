package client

import (
	"context"
	"time"

	"github.com/RPP1011/asset-gen-tool/pkg/models"
)

// CreateUserRequest is the payload for creating a user profile.
type CreateUserRequest struct {
	ID                 string                     `json:"id,omitempty"`
	Name               string                     `json:"name,omitempty"`
	Email              string                     `json:"email,omitempty"`
	ProfilePictureURL  string                     `json:"profile_picture_url,omitempty"`
	OrgMemberships     []models.Membership        `json:"org_memberships,omitempty"`
	ProjectMemberships []models.ProjectMembership `json:"project_memberships,omitempty"`
	Preferences        map[string]any             `json:"preferences,omitempty"`
}

// UpdateUserRequest carries a partial user update.
type UpdateUserRequest struct {
	Name               *string                    `json:"name,omitempty"`
	Email              *string                    `json:"email,omitempty"`
	ProfilePictureURL  *string                    `json:"profile_picture_url,omitempty"`
	OrgMemberships     []models.Membership        `json:"org_memberships,omitempty"`
	ProjectMemberships []models.ProjectMembership `json:"project_memberships,omitempty"`
	LastLogin          *time.Time                 `json:"last_login,omitempty"`
	Preferences        map[string]any             `json:"preferences,omitempty"`
}

// ListUsers returns all user profiles.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	return get[[]models.User](ctx, c, "/api/users", nil)
}

// GetUser fetches one user profile; missing users are api.ErrNotFound.
func (c *Client) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return getOne[*models.User](ctx, c, "/api/users/"+esc(userID))
}

// CreateUser creates a user profile.
func (c *Client) CreateUser(ctx context.Context, req *CreateUserRequest) (*models.User, error) {
	return post[*models.User](ctx, c, "/api/users", req)
}

// UpdateUser applies a partial update and returns the updated record.
func (c *Client) UpdateUser(ctx context.Context, userID string, req *UpdateUserRequest) (*models.User, error) {
	return patch[*models.User](ctx, c, "/api/users/"+esc(userID), req)
}

// DeleteUser removes a user profile.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	return del(ctx, c, "/api/users/"+esc(userID))
}
