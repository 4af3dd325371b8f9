package mcp

import (
	"strings"
	"testing"
	"time"

	"github.com/RPP1011/asset-gen-tool/pkg/models"
)

func TestFormatOrganization(t *testing.T) {
	t.Parallel()

	baseTime := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		org      *models.Organization
		contains []string
	}{
		{
			name:     "nil org",
			org:      nil,
			contains: []string{"[Organization not found]"},
		},
		{
			name: "full org",
			org: &models.Organization{
				ID:          "arcade",
				Name:        "Arcade Interactive",
				PlanTier:    "pro",
				OwnerUserID: "user-1",
				MembersSummary: []map[string]any{
					{"user_id": "user-1"},
					{"user_id": "user-2"},
				},
				CreatedAt: &baseTime,
			},
			contains: []string{
				"Arcade Interactive",
				"arcade",
				"Plan: pro",
				"Owner: user-1",
				"Members: 2",
				"2026-03-01",
			},
		},
		{
			name: "minimal org",
			org: &models.Organization{
				ID:   "solo",
				Name: "Solo",
			},
			contains: []string{"Solo", "solo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FormatOrganization(tt.org)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("FormatOrganization() missing %q in:\n%s", want, got)
				}
			}
		})
	}
}

func TestFormatOrganizationList(t *testing.T) {
	t.Parallel()

	t.Run("empty list", func(t *testing.T) {
		got := FormatOrganizationList(nil)
		if got != "No organizations found." {
			t.Errorf("got %q", got)
		}
	})

	t.Run("numbered entries", func(t *testing.T) {
		got := FormatOrganizationList([]models.Organization{
			{ID: "a", Name: "Alpha"},
			{ID: "b", Name: "Beta"},
		})
		for _, want := range []string{"Organizations (2):", "1. Alpha (a)", "2. Beta (b)"} {
			if !strings.Contains(got, want) {
				t.Errorf("missing %q in:\n%s", want, got)
			}
		}
	})
}

func TestFormatProject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		project  *models.Project
		contains []string
	}{
		{
			name:     "nil project",
			project:  nil,
			contains: []string{"[Project not found]"},
		},
		{
			name: "project with counts and style guide",
			project: &models.Project{
				ID:          "neon",
				Name:        "Neon City",
				Description: "Cyberpunk asset pack",
				AssetCount:  12,
				ThemeCount:  3,
				StyleGuide:  &models.StyleGuide{MarkdownText: "# Neon rules"},
			},
			contains: []string{
				"Neon City",
				"neon",
				"Cyberpunk asset pack",
				"Assets: 12 | Themes: 3",
				"# Neon rules",
			},
		},
		{
			name: "legacy markdown field",
			project: &models.Project{
				ID:                 "old",
				Name:               "Old",
				StyleGuideMarkdown: "legacy guide",
			},
			contains: []string{"legacy guide"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FormatProject(tt.project)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("FormatProject() missing %q in:\n%s", want, got)
				}
			}
		})
	}
}

func TestFormatAsset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		asset    *models.Asset
		contains []string
	}{
		{
			name:     "nil asset",
			asset:    nil,
			contains: []string{"[Asset not found]"},
		},
		{
			name: "full asset",
			asset: &models.Asset{
				ID:              "a1",
				Name:            "Gold Coin",
				Description:     "Spinning pickup coin",
				Prompt:          "a shiny gold coin, pixel art",
				Width:           256,
				Height:          256,
				ThemeID:         "theme-9",
				ThemeName:       "Retro Arcade",
				Tags:            []string{"pickup", "icon"},
				CurrentImageURL: "https://cdn.example/coin.png",
				FinalVariantID:  "v3",
			},
			contains: []string{
				"Gold Coin",
				"a1",
				"Spinning pickup coin",
				"Prompt: a shiny gold coin, pixel art",
				"Size: 256x256",
				"Theme: Retro Arcade (theme-9)",
				"Tags: pickup, icon",
				"Current image: https://cdn.example/coin.png",
				"Final variant: v3",
			},
		},
		{
			name: "named size only",
			asset: &models.Asset{
				ID:   "a2",
				Name: "Banner",
				Size: "1024x512",
			},
			contains: []string{"Size: 1024x512"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FormatAsset(tt.asset)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("FormatAsset() missing %q in:\n%s", want, got)
				}
			}
		})
	}
}

func TestFormatGenerationList(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		if got := FormatGenerationList(nil); got != "No generations found." {
			t.Errorf("got %q", got)
		}
	})

	t.Run("long prompt truncated", func(t *testing.T) {
		got := FormatGenerationList([]models.Generation{
			{
				ID:         "g1",
				Status:     models.GenerationCompleted,
				PromptText: strings.Repeat("very long prompt ", 10),
			},
		})
		if !strings.Contains(got, "...") {
			t.Errorf("expected truncation marker in:\n%s", got)
		}
		if !strings.Contains(got, "[completed]") {
			t.Errorf("expected status in:\n%s", got)
		}
	})
}

func TestFormatVariantList(t *testing.T) {
	t.Parallel()

	got := FormatVariantList([]models.Variant{
		{ID: "v1", ImageURL: "https://cdn.example/1.png"},
		{ID: "v2", ImageURL: "https://cdn.example/2.png", IsSelected: true},
	})

	if !strings.Contains(got, "Variants (2):") {
		t.Errorf("missing header in:\n%s", got)
	}
	if !strings.Contains(got, "v2 https://cdn.example/2.png *selected*") {
		t.Errorf("missing selected marker in:\n%s", got)
	}
	if strings.Contains(got, "v1 https://cdn.example/1.png *selected*") {
		t.Errorf("unselected variant marked selected in:\n%s", got)
	}
}

func TestFormatTheme(t *testing.T) {
	t.Parallel()

	got := FormatTheme(&models.Theme{
		ID:            "theme-9",
		Name:          "Retro Arcade",
		Description:   "Late-80s cabinet art",
		StyleKeywords: []string{"neon", "pixel"},
		ColorPalette:  []string{"#ff00ff", "#00ffff"},
	})

	for _, want := range []string{
		"Retro Arcade",
		"theme-9",
		"Late-80s cabinet art",
		"Keywords: neon, pixel",
		"Palette: #ff00ff, #00ffff",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatTheme() missing %q in:\n%s", want, got)
		}
	}

	if got := FormatTheme(nil); got != "[Theme not found]" {
		t.Errorf("nil theme: got %q", got)
	}
}
