package client

import (
	"context"

	"github.com/RPP1011/asset-gen-tool/pkg/models"
)

// CreateProjectRequest is the payload for creating a project.
type CreateProjectRequest struct {
	ID                 string             `json:"id,omitempty"`
	Name               string             `json:"name"`
	Description        string             `json:"description,omitempty"`
	Settings           map[string]any     `json:"settings,omitempty"`
	StyleGuideMarkdown string             `json:"style_guide_markdown,omitempty"`
	StyleGuide         *models.StyleGuide `json:"style_guide,omitempty"`
}

// UpdateProjectRequest carries a partial project update.
type UpdateProjectRequest struct {
	Name               *string            `json:"name,omitempty"`
	Description        *string            `json:"description,omitempty"`
	Settings           map[string]any     `json:"settings,omitempty"`
	StyleGuideMarkdown *string            `json:"style_guide_markdown,omitempty"`
	StyleGuide         *models.StyleGuide `json:"style_guide,omitempty"`
}

func projectsPath(orgID string) string {
	return "/api/orgs/" + esc(orgID) + "/projects"
}

// ListProjects returns the projects of an organization.
func (c *Client) ListProjects(ctx context.Context, orgID string) ([]models.Project, error) {
	return get[[]models.Project](ctx, c, projectsPath(orgID), nil)
}

// GetProject fetches one project by id; missing projects are api.ErrNotFound.
func (c *Client) GetProject(ctx context.Context, orgID, projectID string) (*models.Project, error) {
	return getOne[*models.Project](ctx, c, projectsPath(orgID)+"/"+esc(projectID))
}

// CreateProject creates a project inside an organization.
func (c *Client) CreateProject(ctx context.Context, orgID string, req *CreateProjectRequest) (*models.Project, error) {
	return post[*models.Project](ctx, c, projectsPath(orgID), req)
}

// UpdateProject applies a partial update and returns the updated record.
func (c *Client) UpdateProject(ctx context.Context, orgID, projectID string, req *UpdateProjectRequest) (*models.Project, error) {
	return patch[*models.Project](ctx, c, projectsPath(orgID)+"/"+esc(projectID), req)
}

// DeleteProject removes a project.
func (c *Client) DeleteProject(ctx context.Context, orgID, projectID string) error {
	return del(ctx, c, projectsPath(orgID)+"/"+esc(projectID))
}
