package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedResponse is returned when the model reply is not the expected JSON
var ErrMalformedResponse = errors.New("malformed model response")

// Response is the structured answer requested from the model
type Response struct {
	Summary      string                     `json:"summary"`
	ActionItems  []ActionItem               `json:"action_items"`
	Participants []string                   `json:"participants"`
	KeyDecisions []string                   `json:"key_decisions"`
	Extras       map[string]json.RawMessage `json:"extras,omitempty"`
}

// ActionItem is one follow-up task as reported by the model
type ActionItem struct {
	Description string `json:"description"`
	AssignedTo  string `json:"assigned_to,omitempty"`
	Deadline    string `json:"deadline,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

// UnmarshalJSON accepts either an object or a bare string
func (a *ActionItem) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.Description = s
		return nil
	}
	type plain ActionItem
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*a = ActionItem(p)
	return nil
}

// ExtraString returns a string extra field, or "" when absent
func (r *Response) ExtraString(key string) string {
	raw, ok := r.Extras[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}

// ExtraList returns a list extra field. Single strings become one element.
func (r *Response) ExtraList(key string) []string {
	raw, ok := r.Extras[key]
	if !ok {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var objs []map[string]any
	if err := json.Unmarshal(raw, &objs); err == nil {
		for _, o := range objs {
			b, _ := json.Marshal(o)
			list = append(list, string(b))
		}
		return list
	}
	if s := r.ExtraString(key); s != "" {
		return []string{s}
	}
	return nil
}

// ParseResponse decodes a model reply, tolerating code fences and prose
// around the JSON object.
func ParseResponse(content string) (*Response, error) {
	cleaned := cleanJSON(content)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: empty reply", ErrMalformedResponse)
	}

	var resp Response
	if err := json.Unmarshal([]byte(cleaned), &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if strings.TrimSpace(resp.Summary) == "" {
		return nil, fmt.Errorf("%w: missing summary", ErrMalformedResponse)
	}
	return &resp, nil
}

// cleanJSON strips markdown code fences and surrounding prose
func cleanJSON(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
		content = strings.TrimSpace(content)
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
