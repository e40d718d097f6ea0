package minutes

import (
	"strings"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
	"github.com/cnmi-csc/busybee/internal/usecase/names"
	"github.com/cnmi-csc/busybee/pkg/llm"
)

const defaultAssignee = "Staff"

// mergeResponse lays the model's answer over the heuristic analysis. Model
// fields win where present; heuristic fields stay where the model is silent.
func mergeResponse(r *entities.AnalysisResult, resp *llm.Response, matcher *names.Matcher) {
	canon := func(s string) string {
		if matcher == nil {
			return strings.TrimSpace(s)
		}
		return strings.TrimSpace(matcher.Normalize(s))
	}

	if summary := canon(resp.Summary); summary != "" {
		r.Summary = summary
	}

	if len(resp.ActionItems) > 0 {
		items := make([]entities.ActionItem, 0, len(resp.ActionItems))
		for _, a := range resp.ActionItems {
			desc := canon(a.Description)
			if desc == "" {
				continue
			}
			assignee := canon(a.AssignedTo)
			if assignee == "" {
				assignee = defaultAssignee
			}
			items = append(items, entities.ActionItem{
				Description: desc,
				AssignedTo:  assignee,
				Deadline:    strings.TrimSpace(a.Deadline),
				Priority:    parsePriority(a.Priority),
			})
		}
		r.ActionItems = items
	}

	if len(resp.KeyDecisions) > 0 {
		decisions := make([]string, 0, len(resp.KeyDecisions))
		for _, d := range resp.KeyDecisions {
			if d = canon(d); d != "" {
				decisions = append(decisions, d)
			}
		}
		r.Decisions = decisions
	}
	for _, order := range resp.ExtraList("orders") {
		if order = canon(order); order != "" {
			r.Decisions = append(r.Decisions, order)
		}
	}

	if cn := strings.ToUpper(strings.TrimSpace(resp.ExtraString("case_number"))); cn != "" && !contains(r.CaseNumbers, cn) {
		r.CaseNumbers = append(r.CaseNumbers, cn)
	}
	if r.AdjournmentTime == "" {
		r.AdjournmentTime = strings.TrimSpace(resp.ExtraString("adjournment_time"))
	}

	mergeParticipants(r, resp.Participants, matcher)
}

// mergeParticipants marks roster members the model saw as present. Without
// heuristic attendance, the participant list becomes the attendance.
func mergeParticipants(r *entities.AnalysisResult, participants []string, matcher *names.Matcher) {
	if len(participants) == 0 {
		return
	}
	if len(r.Attendance) == 0 {
		for _, p := range participants {
			name := strings.TrimSpace(p)
			role := ""
			if matcher != nil {
				if resolved, ok := matcher.Resolve(name); ok {
					name = resolved
					role = matcher.Role(resolved)
				}
			}
			if name == "" || hasAttendee(r.Attendance, name) {
				continue
			}
			r.Attendance = append(r.Attendance, entities.AttendanceRecord{Name: name, Role: role, Present: true})
		}
		return
	}

	if matcher == nil {
		return
	}
	for _, p := range participants {
		resolved, ok := matcher.Resolve(p)
		if !ok {
			continue
		}
		for i := range r.Attendance {
			if r.Attendance[i].Name == resolved {
				r.Attendance[i].Present = true
			}
		}
	}
}

func parsePriority(s string) entities.Priority {
	switch p := entities.Priority(strings.ToLower(strings.TrimSpace(s))); p {
	case entities.PriorityLow, entities.PriorityMedium, entities.PriorityHigh, entities.PriorityUrgent:
		return p
	}
	return entities.PriorityMedium
}

func hasAttendee(records []entities.AttendanceRecord, name string) bool {
	for _, a := range records {
		if a.Name == name {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
