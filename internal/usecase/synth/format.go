package synth

import (
	"fmt"
	"strings"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
)

// None is written wherever a section has no data
const None = "None"

func formatMotion(m entities.Motion) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**Motion %d:** %s\n", m.ID, orDefault(m.Text, "(text not captured)"))
	fmt.Fprintf(&sb, "- Moved by: %s\n", orDefault(m.Maker, entities.DefaultSeconder))
	if m.Seconder != "" {
		fmt.Fprintf(&sb, "- Seconded by: %s\n", m.Seconder)
	}
	if m.Discussion != "" {
		fmt.Fprintf(&sb, "- Discussion: %s\n", m.Discussion)
	}
	vote := string(m.VoteType)
	if m.Tally != nil {
		vote += fmt.Sprintf(" (%d yes, %d no, %d abstain)", m.Tally.Yes, m.Tally.No, m.Tally.Abstain)
	}
	fmt.Fprintf(&sb, "- Vote: %s\n", vote)
	if m.Result != entities.MotionResultUnknown {
		fmt.Fprintf(&sb, "- Result: %s\n", capitalize(string(m.Result)))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatMotions(motions []entities.Motion) string {
	if len(motions) == 0 {
		return None
	}
	blocks := make([]string, len(motions))
	for i, m := range motions {
		blocks[i] = formatMotion(m)
	}
	return strings.Join(blocks, "\n\n")
}

func formatActionItem(a entities.ActionItem) string {
	details := []string{"Assigned to: " + orDefault(a.AssignedTo, "Staff")}
	if a.Deadline != "" {
		details = append(details, "Due: "+a.Deadline)
	}
	if a.Priority != "" {
		details = append(details, "Priority: "+string(a.Priority))
	}
	return fmt.Sprintf("%s (%s)", strings.TrimRight(a.Description, "."), strings.Join(details, "; "))
}

func formatActionItems(items []entities.ActionItem) string {
	if len(items) == 0 {
		return None
	}
	lines := make([]string, len(items))
	for i, a := range items {
		lines[i] = "- [ ] " + formatActionItem(a)
	}
	return strings.Join(lines, "\n")
}

func formatBusiness(items []entities.BusinessItem) string {
	if len(items) == 0 {
		return None
	}
	var blocks []string
	for i, item := range items {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%d. **%s**", i+1, item.Title)
		if item.Presenter != "" {
			fmt.Fprintf(&sb, "\n   - Presented by: %s", item.Presenter)
		}
		if item.Discussion != "" {
			fmt.Fprintf(&sb, "\n   - Discussion: %s", item.Discussion)
		}
		if item.Outcome != "" {
			fmt.Fprintf(&sb, "\n   - Outcome: %s", item.Outcome)
		}
		if item.HasMotion {
			sb.WriteString("\n   - A motion was made on this item.")
		}
		blocks = append(blocks, sb.String())
	}
	return strings.Join(blocks, "\n")
}

func formatTopics(topics []entities.DiscussionTopic) string {
	if len(topics) == 0 {
		return None
	}
	var blocks []string
	for _, t := range topics {
		var sb strings.Builder
		fmt.Fprintf(&sb, "### %s", t.Topic)
		if len(t.Participants) > 0 {
			fmt.Fprintf(&sb, "\n*Participants:* %s", strings.Join(t.Participants, ", "))
		}
		for _, p := range t.KeyPoints {
			fmt.Fprintf(&sb, "\n- %s", p)
		}
		if t.Outcome != "" {
			fmt.Fprintf(&sb, "\n\n**Outcome:** %s", t.Outcome)
		}
		blocks = append(blocks, sb.String())
	}
	return strings.Join(blocks, "\n\n")
}

func formatComments(comments []entities.PublicComment) string {
	if len(comments) == 0 {
		return None
	}
	lines := make([]string, len(comments))
	for i, c := range comments {
		lines[i] = fmt.Sprintf("- **%s:** %s", c.Speaker, c.Summary)
	}
	return strings.Join(lines, "\n")
}

func bullets(items []string) string {
	if len(items) == 0 {
		return None
	}
	return "- " + strings.Join(items, "\n- ")
}

func attendanceStatus(r *entities.AnalysisResult) string {
	if len(r.Attendance) == 0 {
		return None
	}
	return fmt.Sprintf("%d present, %d absent", len(r.Present()), len(r.Absent()))
}

func memberLines(r *entities.AnalysisResult, present bool) []string {
	var lines []string
	for _, a := range r.Attendance {
		if a.Present != present {
			continue
		}
		line := a.Name
		if a.Role != "" {
			line += ", " + a.Role
		}
		if a.ArrivalTime != "" {
			line += " (arrived " + a.ArrivalTime + ")"
		}
		if a.DepartureTime != "" {
			line += " (left " + a.DepartureTime + ")"
		}
		lines = append(lines, line)
	}
	return lines
}

func meetingTypeLabel(r *entities.AnalysisResult) string {
	if r.Metadata.Type != "" {
		return r.Metadata.Type
	}
	switch r.MeetingType {
	case entities.MeetingTypeBoard:
		return "Board Meeting"
	case entities.MeetingTypeCase:
		return "Case Hearing"
	default:
		return "General Meeting"
	}
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
