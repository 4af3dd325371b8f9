// Package workspace remembers the org/project/asset a user is working in
// so commands can omit the full id chain. 'this' resolves to the
// remembered id of the matching kind.
package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/RPP1011/asset-gen-tool/pkg/config"
)

// TTL is how long a remembered workspace stays valid.
const TTL = 24 * time.Hour

var (
	mu            sync.RWMutex
	globalWS      *Workspace
	workspacePath string
)

// Workspace holds the ids of the current working scope.
type Workspace struct {
	OrgID     string    `json:"org_id,omitempty"`
	ProjectID string    `json:"project_id,omitempty"`
	AssetID   string    `json:"asset_id,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

func path() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "workspace.json"), nil
}

// Load reads the workspace from disk.
func Load() (*Workspace, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalWS != nil {
		if time.Since(globalWS.UpdatedAt) > TTL {
			globalWS = nil
		} else {
			return globalWS, nil
		}
	}

	p, err := path()
	if err != nil {
		return nil, err
	}
	workspacePath = p

	if _, err := os.Stat(workspacePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("no workspace set")
	}

	data, err := os.ReadFile(workspacePath)
	if err != nil {
		return nil, fmt.Errorf("read workspace file: %w", err)
	}

	var ws Workspace
	if err := json.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("parse workspace: %w", err)
	}

	if time.Since(ws.UpdatedAt) > TTL {
		return nil, fmt.Errorf("workspace expired")
	}

	globalWS = &ws
	return globalWS, nil
}

// Save persists the workspace to disk.
func Save(ws *Workspace) error {
	mu.Lock()
	defer mu.Unlock()

	p, err := path()
	if err != nil {
		return err
	}
	workspacePath = p

	ws.UpdatedAt = time.Now()

	data, err := json.MarshalIndent(ws, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal workspace: %w", err)
	}

	if err := os.WriteFile(workspacePath, data, 0600); err != nil {
		return fmt.Errorf("write workspace file: %w", err)
	}

	globalWS = ws
	return nil
}

// Clear removes the workspace from disk and memory.
func Clear() error {
	mu.Lock()
	defer mu.Unlock()

	p, err := path()
	if err != nil {
		return err
	}

	if _, err := os.Stat(p); err == nil {
		if err := os.Remove(p); err != nil {
			return fmt.Errorf("remove workspace file: %w", err)
		}
	}

	globalWS = nil
	return nil
}

// SetOrg remembers the current organization. Changing org drops the
// remembered project and asset, which belong to the old scope.
func SetOrg(orgID string) error {
	ws := current()
	if ws.OrgID != orgID {
		ws.ProjectID = ""
		ws.AssetID = ""
	}
	ws.OrgID = orgID
	return Save(ws)
}

// SetProject remembers the current project, dropping the remembered asset
// when the project changes.
func SetProject(projectID string) error {
	ws := current()
	if ws.ProjectID != projectID {
		ws.AssetID = ""
	}
	ws.ProjectID = projectID
	return Save(ws)
}

// SetAsset remembers the current asset.
func SetAsset(assetID string) error {
	ws := current()
	ws.AssetID = assetID
	return Save(ws)
}

func current() *Workspace {
	if ws, err := Load(); err == nil {
		copied := *ws
		return &copied
	}
	return &Workspace{}
}

// OrgID returns the remembered organization id.
func OrgID() (string, error) {
	ws, err := Load()
	if err != nil {
		return "", err
	}
	if ws.OrgID == "" {
		return "", fmt.Errorf("no organization in workspace")
	}
	return ws.OrgID, nil
}

// ProjectID returns the remembered project id.
func ProjectID() (string, error) {
	ws, err := Load()
	if err != nil {
		return "", err
	}
	if ws.ProjectID == "" {
		return "", fmt.Errorf("no project in workspace")
	}
	return ws.ProjectID, nil
}

// AssetID returns the remembered asset id.
func AssetID() (string, error) {
	ws, err := Load()
	if err != nil {
		return "", err
	}
	if ws.AssetID == "" {
		return "", fmt.Errorf("no asset in workspace")
	}
	return ws.AssetID, nil
}

// ResolveOrg resolves an org argument: "this" or "" falls back to the
// remembered org.
func ResolveOrg(arg string) (string, error) {
	if arg != "" && arg != "this" {
		return arg, nil
	}
	id, err := OrgID()
	if err != nil {
		return "", fmt.Errorf("no org in workspace: pass --org or run 'agt use org <id>'")
	}
	return id, nil
}

// ResolveProject resolves a project argument against the workspace.
func ResolveProject(arg string) (string, error) {
	if arg != "" && arg != "this" {
		return arg, nil
	}
	id, err := ProjectID()
	if err != nil {
		return "", fmt.Errorf("no project in workspace: pass --project or run 'agt use project <id>'")
	}
	return id, nil
}

// ResolveAsset resolves an asset argument against the workspace.
func ResolveAsset(arg string) (string, error) {
	if arg != "" && arg != "this" {
		return arg, nil
	}
	id, err := AssetID()
	if err != nil {
		return "", fmt.Errorf("no asset in workspace: pass --asset or run 'agt use asset <id>'")
	}
	return id, nil
}
