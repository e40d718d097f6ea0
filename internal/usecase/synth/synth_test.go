package synth

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
)

var generated = time.Date(2025, time.March, 14, 15, 4, 0, 0, time.UTC)

type stubTemplates struct {
	body string
	err  error
}

func (s stubTemplates) Get(_ context.Context, _ entities.DocumentKind) (string, error) {
	return s.body, s.err
}

func sampleResult() *entities.AnalysisResult {
	r := entities.NewAnalysisResult("Regular Meeting")
	r.MeetingType = entities.MeetingTypeBoard
	r.Metadata = entities.MeetingMetadata{Date: "March 5, 2024", PresidingOfficer: "Raymond Muna", CallToOrderTime: "9:05 a.m."}
	r.Attendance = []entities.AttendanceRecord{
		{Name: "Raymond Muna", Role: "Chairman", Present: true},
		{Name: "Joseph Camacho", Role: "Commissioner"},
	}
	r.Motions = []entities.Motion{{
		ID: 1, Text: "Approve the agenda", Maker: "Patrick Fitial", Seconder: "Victoria Bellas",
		VoteType: entities.VoteTypeUnanimous, Result: entities.MotionResultUnanimous,
	}}
	r.ActionItems = []entities.ActionItem{{
		Description: "Staff will post the agenda.", AssignedTo: "Commission Secretary", Priority: entities.PriorityMedium,
	}}
	return r
}

func TestAssemble_EmptyResultHasNoSections(t *testing.T) {
	r := entities.NewAnalysisResult("Empty Meeting")
	r.Metadata.Date = "June 2, 2025"

	for _, kind := range []entities.DocumentKind{entities.DocumentKindMinutes, entities.DocumentKindGeneral, entities.DocumentKindCaseSummary} {
		md := Assemble(r, kind, generated)
		assert.True(t, strings.HasPrefix(md, "# Empty Meeting\n"), kind)
		assert.NotContains(t, md, "## ", kind)
		assert.NotContains(t, md, None, kind)
		assert.Contains(t, md, "June 2, 2025")
	}
}

func TestAssemble_OmitsOnlyEmptySections(t *testing.T) {
	md := Assemble(sampleResult(), entities.DocumentKindMinutes, generated)

	assert.Contains(t, md, "## Call to Order\n\nThe meeting was called to order at 9:05 a.m. by Raymond Muna.")
	assert.Contains(t, md, "## Attendance")
	assert.Contains(t, md, "- Raymond Muna, Chairman")
	assert.Contains(t, md, "**Absent:**\n- Joseph Camacho, Commissioner")
	assert.Contains(t, md, "**Motion 1:** Approve the agenda")
	assert.Contains(t, md, "- Result: Carried unanimously")
	assert.Contains(t, md, "## Action Items")

	for _, heading := range []string{"## Public Comment", "## Old Business", "## New Business", "## Decisions", "## Discussion", "## Adjournment", "## Summary"} {
		assert.NotContains(t, md, heading)
	}
}

func TestAssemble_GeneralKindSkipsGovernanceSections(t *testing.T) {
	md := Assemble(sampleResult(), entities.DocumentKindGeneral, generated)
	assert.NotContains(t, md, "## Motions")
	assert.NotContains(t, md, "## Attendance")
	assert.Contains(t, md, "## Action Items")
}

func TestFill(t *testing.T) {
	tmpl := strings.Join([]string{
		"# [MEETING_TITLE]",
		"Date: [MEETING_DATE] | Location: [MEETING_LOCATION]",
		"Status: [ATTENDANCE_STATUS]",
		"[MOTION_1]",
		"[MOTION_2]",
		"1. [ACTION_ITEM_1]",
		"2. [ACTION_ITEM_2]",
		"Public: [PUBLIC_COMMENT]",
		"Extra: [UNKNOWN_TOKEN]",
		"Generated [GENERATED_DATE]",
	}, "\n")

	out := Fill(tmpl, sampleResult(), generated)

	assert.Contains(t, out, "# Regular Meeting")
	assert.Contains(t, out, "Date: March 5, 2024 | Location: None")
	assert.Contains(t, out, "Status: 1 present, 1 absent")
	assert.Contains(t, out, "**Motion 1:** Approve the agenda")
	assert.Contains(t, out, "1. Staff will post the agenda (Assigned to: Commission Secretary; Priority: medium)")
	assert.NotContains(t, out, "2. ")
	assert.Contains(t, out, "Public: None")
	assert.Contains(t, out, "Extra: None")
	assert.Contains(t, out, "Generated March 14, 2025 3:04 PM")
	assert.NotRegexp(t, `\[[A-Z_0-9]+\]`, out)
}

func TestFill_FirstNumberedSlotBecomesNone(t *testing.T) {
	out := Fill("Motion: [MOTION_1]\n[MOTION_2]\nEnd", entities.NewAnalysisResult("x"), generated)
	assert.Equal(t, "Motion: None\nEnd", out)
}

func TestFill_SinglePeriodAfterValue(t *testing.T) {
	r := entities.NewAnalysisResult("x")
	r.AdjournmentTime = "10:42 a.m."
	assert.Equal(t, "Adjourned at 10:42 a.m.", Fill("Adjourned at [ADJOURNMENT_TIME].", r, generated))

	r.AdjournmentTime = "4:30 pm"
	assert.Equal(t, "Adjourned at 4:30 pm.", Fill("Adjourned at [ADJOURNMENT_TIME].", r, generated))
	assert.Equal(t, "Ellipsis 4:30 pm...", Fill("Ellipsis [ADJOURNMENT_TIME]...", r, generated))
}

func TestFill_DoesNotRescanInsertedText(t *testing.T) {
	r := entities.NewAnalysisResult("Notes [DRAFT]")
	out := Fill("[MEETING_TITLE]", r, generated)
	assert.Equal(t, "Notes [DRAFT]", out)
}

func TestSynthesizer_FallsBackWhenTemplateMissing(t *testing.T) {
	var fallbacks []entities.DocumentKind
	s := NewSynthesizer(stubTemplates{err: fmt.Errorf("fetch: %w", entities.ErrTemplateMissing)}, nil).
		WithClock(func() time.Time { return generated }).
		OnTemplateFallback(func(k entities.DocumentKind) { fallbacks = append(fallbacks, k) })

	doc := s.Synthesize(context.Background(), sampleResult(), entities.DocumentKindMinutes)

	require.NotNil(t, doc)
	assert.Equal(t, entities.DocumentKindMinutes, doc.Kind)
	assert.Equal(t, entities.MeetingTypeBoard, doc.MeetingType)
	assert.Equal(t, generated, doc.GeneratedAt)
	assert.Contains(t, doc.Markdown, "## Motions")
	assert.NotContains(t, doc.Markdown, "Processing Error")
	assert.Equal(t, []entities.DocumentKind{entities.DocumentKindMinutes}, fallbacks)
}

func TestSynthesizer_UsesTemplate(t *testing.T) {
	s := NewSynthesizer(stubTemplates{body: "Minutes of [MEETING_DATE]"}, nil)
	doc := s.Synthesize(context.Background(), sampleResult(), entities.DocumentKindMinutes)
	assert.Equal(t, "Minutes of March 5, 2024", doc.Markdown)
}

func TestSynthesizer_GeneralIgnoresTemplate(t *testing.T) {
	s := NewSynthesizer(stubTemplates{body: "TEMPLATE"}, nil)
	doc := s.Synthesize(context.Background(), sampleResult(), entities.DocumentKindGeneral)
	assert.NotEqual(t, "TEMPLATE", doc.Markdown)
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML("# Title\n\n- [ ] task")
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>Title</h1>")
	assert.Contains(t, html, `type="checkbox"`)
}

func TestFill_ShippedTemplates(t *testing.T) {
	for _, kind := range []entities.DocumentKind{entities.DocumentKindMinutes, entities.DocumentKindCaseSummary} {
		body, err := os.ReadFile(filepath.Join("..", "..", "..", "templates", string(kind)+".md"))
		require.NoError(t, err, kind)

		r := sampleResult()
		r.AdjournmentTime = "10:42 a.m."
		out := Fill(string(body), r, generated)
		assert.True(t, strings.HasPrefix(out, "# Regular Meeting\n"), kind)
		assert.Contains(t, out, "Raymond Muna", kind)
		assert.Contains(t, out, "at 10:42 a.m.", kind)
		assert.NotContains(t, out, "a.m..", kind)
		assert.NotRegexp(t, `\[[A-Z_0-9]+\]`, out, kind)
	}
}
