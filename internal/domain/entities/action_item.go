package entities

// Priority of an action item
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ActionItem is a follow-up task mentioned in the meeting
type ActionItem struct {
	Description string   `json:"description"`
	AssignedTo  string   `json:"assigned_to"`
	Deadline    string   `json:"deadline,omitempty"`
	Priority    Priority `json:"priority"`
	Topic       string   `json:"topic,omitempty"`
}
