package statusline

import (
	"encoding/json"
	"errors"
)

// Input is the JSON document Claude Code pipes to the statusline on every
// refresh. Fields the renderer does not consume are ignored.
type Input struct {
	SessionID      string        `json:"session_id"`
	TranscriptPath string        `json:"transcript_path"`
	Model          ModelInfo     `json:"model"`
	Workspace      WorkspaceInfo `json:"workspace"`
	Cost           CostInfo      `json:"cost"`
}

// ModelInfo identifies the active model.
type ModelInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// WorkspaceInfo carries the host's directory context.
type WorkspaceInfo struct {
	ProjectDir string `json:"project_dir"`
	CurrentDir string `json:"current_dir"`
}

// CostInfo carries session cost accounting.
type CostInfo struct {
	TotalCostUSD float64 `json:"total_cost_usd"`
}

// Parse decodes the stdin document. Only a top-level failure (empty input,
// not JSON, not an object) is an error; malformed individual fields decode
// best-effort so one bad field cannot take the whole line down.
func Parse(data []byte) (Input, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Input{}, err
	}
	// "null" unmarshals into a nil map without error, but it is not an
	// object and no meaningful line can come of it.
	if raw == nil {
		return Input{}, errors.New("status input is not a JSON object")
	}

	var in Input
	if v, ok := raw["session_id"]; ok {
		_ = json.Unmarshal(v, &in.SessionID)
	}
	if v, ok := raw["transcript_path"]; ok {
		_ = json.Unmarshal(v, &in.TranscriptPath)
	}
	if v, ok := raw["model"]; ok {
		_ = json.Unmarshal(v, &in.Model)
	}
	if v, ok := raw["workspace"]; ok {
		_ = json.Unmarshal(v, &in.Workspace)
	}
	if v, ok := raw["cost"]; ok {
		_ = json.Unmarshal(v, &in.Cost)
	}
	return in, nil
}

// projectDir picks the directory used for config discovery.
func (in Input) projectDir() string {
	if in.Workspace.ProjectDir != "" {
		return in.Workspace.ProjectDir
	}
	return in.Workspace.CurrentDir
}
