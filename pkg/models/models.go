// Package models defines the entity types served by the asset generation API.
package models

import "time"

// GenerationStatus tracks the lifecycle of a generation run.
type GenerationStatus string

const (
	GenerationPending   GenerationStatus = "pending"
	GenerationRunning   GenerationStatus = "running"
	GenerationCompleted GenerationStatus = "completed"
	GenerationFailed    GenerationStatus = "failed"
)

// Organization is the top-level tenant grouping projects and members.
type Organization struct {
	ID             string           `json:"id,omitempty"`
	Name           string           `json:"name"`
	OwnerUserID    string           `json:"owner_user_id,omitempty"`
	PlanTier       string           `json:"plan_tier,omitempty"`
	MembersSummary []map[string]any `json:"members_summary,omitempty"`
	CreatedAt      *time.Time       `json:"created_at,omitempty"`
	UpdatedAt      *time.Time       `json:"updated_at,omitempty"`
}

// StyleGuide holds project- or theme-level style guidance in markdown.
type StyleGuide struct {
	MarkdownText string     `json:"markdown_text"`
	Title        string     `json:"title,omitempty"`
	LastEditedBy string     `json:"last_edited_by,omitempty"`
	LastEditedAt *time.Time `json:"last_edited_at,omitempty"`
}

// Project is a body of creative work within an organization.
type Project struct {
	ID                 string         `json:"id,omitempty"`
	OrgID              string         `json:"org_id,omitempty"`
	Name               string         `json:"name"`
	Description        string         `json:"description,omitempty"`
	Settings           map[string]any `json:"settings,omitempty"`
	StyleGuideMarkdown string         `json:"style_guide_markdown,omitempty"`
	StyleGuide         *StyleGuide    `json:"style_guide,omitempty"`
	AssetCount         int            `json:"asset_count,omitempty"`
	ThemeCount         int            `json:"theme_count,omitempty"`
	CreatedAt          *time.Time     `json:"created_at,omitempty"`
	UpdatedAt          *time.Time     `json:"updated_at,omitempty"`
}

// Theme groups style keywords, palette and reference imagery for a project.
type Theme struct {
	ID                 string     `json:"id,omitempty"`
	OrgID              string     `json:"org_id,omitempty"`
	ProjectID          string     `json:"project_id,omitempty"`
	Name               string     `json:"name"`
	StyleKeywords      []string   `json:"style_keywords,omitempty"`
	ColorPalette       []string   `json:"color_palette,omitempty"`
	Description        string     `json:"description,omitempty"`
	ExampleImage       string     `json:"example_image,omitempty"`
	CreatedBy          string     `json:"created_by,omitempty"`
	StyleGuideMarkdown string     `json:"style_guide_markdown,omitempty"`
	ConceptImageIDs    []string   `json:"concept_image_ids,omitempty"`
	CreatedAt          *time.Time `json:"created_at,omitempty"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

// ConceptImage is a reference image attached to a project, theme or asset.
type ConceptImage struct {
	ID           string     `json:"id,omitempty"`
	OrgID        string     `json:"org_id,omitempty"`
	ProjectID    string     `json:"project_id,omitempty"`
	ImageURL     string     `json:"image_url"`
	ThumbnailURL string     `json:"thumbnail_url,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
	Description  string     `json:"description,omitempty"`
	Attribution  string     `json:"attribution,omitempty"`
	UploadedBy   string     `json:"uploaded_by,omitempty"`
	ThemeID      string     `json:"theme_id,omitempty"`
	AssetID      string     `json:"asset_id,omitempty"`
	UsageCount   int        `json:"usage_count,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// Asset is a single generatable creative item.
type Asset struct {
	ID                 string     `json:"id,omitempty"`
	OrgID              string     `json:"org_id,omitempty"`
	ProjectID          string     `json:"project_id,omitempty"`
	Name               string     `json:"name"`
	Description        string     `json:"description,omitempty"`
	Prompt             string     `json:"prompt,omitempty"`
	Size               string     `json:"size,omitempty"`
	Width              int        `json:"width,omitempty"`
	Height             int        `json:"height,omitempty"`
	ThemeID            string     `json:"theme_id,omitempty"`
	ThemeName          string     `json:"theme_name,omitempty"`
	ConceptImageIDs    []string   `json:"concept_image_ids,omitempty"`
	Tags               []string   `json:"tags,omitempty"`
	CreatedBy          string     `json:"created_by,omitempty"`
	FinalVariantID     string     `json:"final_variant_id,omitempty"`
	CurrentImageURL    string     `json:"current_image_url,omitempty"`
	LatestGenerationID string     `json:"latest_generation_id,omitempty"`
	LatestGenerationAt *time.Time `json:"latest_generation_at,omitempty"`
	CreatedAt          *time.Time `json:"created_at,omitempty"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

// Generation is one production run for an asset.
type Generation struct {
	ID                  string             `json:"id,omitempty"`
	OrgID               string             `json:"org_id,omitempty"`
	ProjectID           string             `json:"project_id,omitempty"`
	PromptText          string             `json:"prompt_text"`
	Parameters          map[string]any     `json:"parameters,omitempty"`
	ThemeID             string             `json:"theme_id,omitempty"`
	ThemeSnapshot       map[string]any     `json:"theme_snapshot,omitempty"`
	ConceptImageIDs     []string           `json:"concept_image_ids,omitempty"`
	ConceptImageWeights map[string]float64 `json:"concept_image_weights,omitempty"`
	VariantCount        int                `json:"variant_count"`
	TriggeredBy         string             `json:"triggered_by,omitempty"`
	Status              GenerationStatus   `json:"status,omitempty"`
	Notes               string             `json:"notes,omitempty"`
	VersionNumber       int                `json:"version_number,omitempty"`
	VariantSummary      []map[string]any   `json:"variant_summary,omitempty"`
	CreatedAt           *time.Time         `json:"created_at,omitempty"`
	UpdatedAt           *time.Time         `json:"updated_at,omitempty"`
}

// Variant is one candidate output of a generation.
type Variant struct {
	ID           string         `json:"id,omitempty"`
	OrgID        string         `json:"org_id,omitempty"`
	ProjectID    string         `json:"project_id,omitempty"`
	ImageURL     string         `json:"image_url"`
	ThumbnailURL string         `json:"thumbnail_url,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	IsSelected   bool           `json:"is_selected,omitempty"`
	Feedback     string         `json:"feedback,omitempty"`
	GeneratedAt  *time.Time     `json:"generated_at,omitempty"`
	CreatedAt    *time.Time     `json:"created_at,omitempty"`
	UpdatedAt    *time.Time     `json:"updated_at,omitempty"`
}

// Membership records a user's role within an organization.
type Membership struct {
	OrgID string `json:"org_id"`
	Role  string `json:"role"`
}

// ProjectMembership records a user's role within a project.
type ProjectMembership struct {
	ProjectID string `json:"project_id"`
	Role      string `json:"role"`
}

// User is a user profile; the document id matches the auth provider UID.
type User struct {
	ID                 string              `json:"id,omitempty"`
	Name               string              `json:"name,omitempty"`
	Email              string              `json:"email,omitempty"`
	ProfilePictureURL  string              `json:"profile_picture_url,omitempty"`
	OrgMemberships     []Membership        `json:"org_memberships,omitempty"`
	ProjectMemberships []ProjectMembership `json:"project_memberships,omitempty"`
	LastLogin          *time.Time          `json:"last_login,omitempty"`
	Preferences        map[string]any      `json:"preferences,omitempty"`
	CreatedAt          *time.Time          `json:"created_at,omitempty"`
	UpdatedAt          *time.Time          `json:"updated_at,omitempty"`
}

// Health is the health check response.
type Health struct {
	Status string `json:"status"`
}
