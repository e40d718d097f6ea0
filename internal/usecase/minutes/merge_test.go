package minutes

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
	"github.com/cnmi-csc/busybee/internal/usecase/names"
	"github.com/cnmi-csc/busybee/pkg/llm"
)

func mergeRoster() *names.Matcher {
	return names.NewMatcher(entities.Roster{People: []entities.Person{
		{Name: "Raymond Muna", Role: "Chairman", Variants: []string{"Muña"}},
	}})
}

func TestMergeResponse_KeepsHeuristicsWhereModelIsSilent(t *testing.T) {
	r := &entities.AnalysisResult{
		Summary:     "2 motions were considered, 2 carried.",
		Decisions:   []string{"The agenda was approved."},
		ActionItems: []entities.ActionItem{{Description: "Circulate the draft", AssignedTo: "Staff"}},
	}

	mergeResponse(r, &llm.Response{}, mergeRoster())

	assert.Equal(t, "2 motions were considered, 2 carried.", r.Summary)
	assert.Equal(t, []string{"The agenda was approved."}, r.Decisions)
	assert.Len(t, r.ActionItems, 1)
}

func TestMergeResponse_ModelFieldsWin(t *testing.T) {
	r := &entities.AnalysisResult{
		Summary:     "heuristic",
		CaseNumbers: []string{"CSC-25-004"},
	}
	resp := &llm.Response{
		Summary:      "Chairman Muña opened the hearing.",
		ActionItems:  []llm.ActionItem{{Description: "File the order", Priority: "HIGH"}, {Description: "  "}},
		KeyDecisions: []string{"Appeal sustained."},
		Participants: []string{"Raymond Muna", "Guest Speaker"},
		Extras: map[string]json.RawMessage{
			"case_number": json.RawMessage(`"csc-25-004"`),
			"orders":      json.RawMessage(`["IT IS SO ORDERED."]`),
		},
	}

	mergeResponse(r, resp, mergeRoster())

	assert.Equal(t, "Chairman Raymond Muna opened the hearing.", r.Summary)
	assert.Equal(t, []entities.ActionItem{{Description: "File the order", AssignedTo: defaultAssignee, Priority: entities.PriorityHigh}}, r.ActionItems)
	assert.Equal(t, []string{"Appeal sustained.", "IT IS SO ORDERED."}, r.Decisions)
	assert.Equal(t, []string{"CSC-25-004"}, r.CaseNumbers, "case numbers are not duplicated")

	if assert.Len(t, r.Attendance, 2) {
		assert.Equal(t, entities.AttendanceRecord{Name: "Raymond Muna", Role: "Chairman", Present: true}, r.Attendance[0])
		assert.Equal(t, "Guest Speaker", r.Attendance[1].Name)
	}
}

func TestMergeResponse_MarksKnownAttendeesPresent(t *testing.T) {
	r := &entities.AnalysisResult{
		Attendance: []entities.AttendanceRecord{{Name: "Raymond Muna", Role: "Chairman"}},
	}

	mergeResponse(r, &llm.Response{Participants: []string{"Raymond Muna", "Someone Else"}}, mergeRoster())

	assert.Len(t, r.Attendance, 1)
	assert.True(t, r.Attendance[0].Present)
}
