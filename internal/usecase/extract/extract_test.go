package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
	"github.com/cnmi-csc/busybee/internal/usecase/names"
)

var fixedNow = time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)

func newTestExtractor() *Extractor {
	roster := entities.Roster{People: []entities.Person{
		{Name: "Raymond Muna", Role: "Chairman", Variants: []string{"Muña"}},
		{Name: "Patrick Fitial", Role: "Vice Chairman", Variants: []string{"Fitiel"}},
		{Name: "Victoria Bellas", Role: "Commissioner", Variants: []string{"Belas"}},
		{Name: "Joseph Camacho", Role: "Commissioner"},
	}}
	return New(names.NewMatcher(roster), WithClock(func() time.Time { return fixedNow }))
}

func TestMotions_MakerSeconderResult(t *testing.T) {
	e := newTestExtractor()
	text := "Raymond Muna called the meeting to order. Patrick Fitial moved to approve the agenda. Victoria Bellas seconded. Motion carried unanimously."

	motions := e.Motions(text)
	require.Len(t, motions, 1)

	m := motions[0]
	assert.Equal(t, 1, m.ID)
	assert.Equal(t, "Approve the agenda", m.Text)
	assert.Equal(t, "Patrick Fitial", m.Maker)
	assert.Equal(t, "Victoria Bellas", m.Seconder)
	assert.Contains(t, string(m.Result), "carried")
	assert.Equal(t, entities.MotionResultUnanimous, m.Result)
	assert.Equal(t, entities.VoteTypeUnanimous, m.VoteType)
}

func TestMotions_SecondedByClauseAndTally(t *testing.T) {
	e := newTestExtractor()
	text := "Patrick Fitial moved to approve the minutes, seconded by Victoria Bellas. The motion carried 4-1."

	motions := e.Motions(text)
	require.Len(t, motions, 1)

	m := motions[0]
	assert.Equal(t, "Approve the minutes", m.Text)
	assert.Equal(t, "Patrick Fitial", m.Maker)
	assert.Equal(t, "Victoria Bellas", m.Seconder)
	assert.Equal(t, entities.MotionResultCarried, m.Result)
	require.NotNil(t, m.Tally)
	assert.Equal(t, entities.VoteTally{Yes: 4, No: 1}, *m.Tally)
}

func TestMotions_SeconderNeverRepeatsMaker(t *testing.T) {
	e := newTestExtractor()
	text := "Patrick Fitial moved to table the item. Patrick Fitial seconded. Motion tabled."

	motions := e.Motions(text)
	require.Len(t, motions, 1)
	assert.Equal(t, "Patrick Fitial", motions[0].Maker)
	assert.Equal(t, entities.DefaultSeconder, motions[0].Seconder)
	assert.Equal(t, entities.MotionResultTabled, motions[0].Result)
}

func TestMotions_SolicitedBySpeakerLabels(t *testing.T) {
	e := newTestExtractor()
	text := "Raymond Muna: Do I have a motion to approve the minutes?\n" +
		"Patrick Fitial: So moved.\n" +
		"Victoria Bellas: Second.\n" +
		"Raymond Muna: All in favor? Motion carries 3-0."

	motions := e.Motions(text)
	require.Len(t, motions, 1)

	m := motions[0]
	assert.Equal(t, "Approve the minutes", m.Text)
	assert.Equal(t, "Patrick Fitial", m.Maker)
	assert.Equal(t, "Victoria Bellas", m.Seconder)
	assert.Equal(t, entities.MotionResultCarried, m.Result)
	require.NotNil(t, m.Tally)
	assert.Equal(t, 3, m.Tally.Yes)
}

func TestMotions_SkipsAgendaMoves(t *testing.T) {
	e := newTestExtractor()
	assert.Empty(t, e.Motions("Let's move to the next item on the agenda."))
	assert.Empty(t, e.Motions(""))
}

func TestAttendance(t *testing.T) {
	e := newTestExtractor()
	text := "Roll call: Raymond Muna, present. Patrick Fitial, present. Victoria Bellas, absent.\n" +
		"Approval of the agenda followed."

	records := e.Attendance(text)
	require.Len(t, records, 4)

	byName := map[string]entities.AttendanceRecord{}
	for _, r := range records {
		byName[r.Name] = r
	}
	assert.True(t, byName["Raymond Muna"].Present)
	assert.Equal(t, "Chairman", byName["Raymond Muna"].Role)
	assert.True(t, byName["Patrick Fitial"].Present)
	assert.False(t, byName["Victoria Bellas"].Present)
	assert.False(t, byName["Joseph Camacho"].Present)
}

func TestAttendance_ArrivalAndTimestamp(t *testing.T) {
	e := newTestExtractor()
	text := "[00:01 Speaker A]: Good morning, Raymond Muna here.\n" +
		"[00:40 Speaker A]: Joseph Camacho arrived at 9:20 a.m. and joined the table."

	records := e.Attendance(text)
	require.Len(t, records, 4)
	assert.Equal(t, "00:01", records[0].FirstMention)
	assert.True(t, records[3].Present)
	assert.Equal(t, "9:20 a.m.", records[3].ArrivalTime)
}

func TestAttendance_NoMentions(t *testing.T) {
	e := newTestExtractor()
	assert.Empty(t, e.Attendance("A meeting with nobody we know."))
}

func TestActionItems(t *testing.T) {
	e := newTestExtractor()
	text := "The chair will now call the meeting to order. " +
		"The Budget Officer will prepare the revised budget by next Friday. " +
		"Staff must submit the hiring report immediately. " +
		"Will staff review the policy? " +
		"Victoria Bellas will draft the response letter to the appellant."

	items := e.ActionItems(text)
	require.Len(t, items, 3)

	assert.Equal(t, "Budget Officer", items[0].AssignedTo)
	assert.Equal(t, "Budget", items[0].Topic)
	assert.Equal(t, "by next Friday", items[0].Deadline)
	assert.Equal(t, entities.PriorityMedium, items[0].Priority)

	assert.Equal(t, "Personnel Officer", items[1].AssignedTo)
	assert.Equal(t, entities.PriorityUrgent, items[1].Priority)

	assert.Equal(t, "Victoria Bellas", items[2].AssignedTo)
}

func TestActionItems_Cap(t *testing.T) {
	e := newTestExtractor()
	text := ""
	for i := 0; i < 30; i++ {
		text += "Staff will review personnel file number " + string(rune('A'+i)) + " this week. "
	}
	assert.Len(t, e.ActionItems(text), maxActionItems)
}

func TestDecisions(t *testing.T) {
	e := newTestExtractor()
	text := "The commission approved the budget amendment. We approved lunch. The appeal was denied by the board."

	decisions := e.Decisions(text)
	assert.Equal(t, []string{
		"The commission approved the budget amendment.",
		"The appeal was denied by the board.",
	}, decisions)
}

func TestDiscussionTopics(t *testing.T) {
	e := newTestExtractor()
	text := "Next we discussed the overtime policy for field staff. Patrick Fitial noted that costs rose. Victoria Bellas suggested a cap."

	topics := e.DiscussionTopics(text)
	require.Len(t, topics, 1)
	assert.Equal(t, "Overtime policy for field staff", topics[0].Topic)
	assert.Equal(t, []string{"Patrick Fitial", "Victoria Bellas"}, topics[0].Participants)
	assert.Len(t, topics[0].KeyPoints, 2)
}

func TestBusinessSections(t *testing.T) {
	e := newTestExtractor()
	text := "Old business: 1. Revised leave policy was presented by Patrick Fitial. The commission discussed accrual rates. " +
		"2. Classification study update from staff, no action taken.\n" +
		"New business: None.\n" +
		"Public comment: Mr. John Santos spoke about overtime pay."

	old := e.OldBusiness(text)
	require.Len(t, old, 2)
	assert.Equal(t, "Revised leave policy was presented by Patrick Fitial", old[0].Title)
	assert.Equal(t, "Patrick Fitial", old[0].Presenter)
	assert.Equal(t, "The commission discussed accrual rates.", old[0].Discussion)
	assert.False(t, old[0].HasMotion)
	assert.Equal(t, "Classification study update from staff, no action taken", old[1].Title)

	assert.Empty(t, e.NewBusiness(text))

	comments := e.PublicComments(text)
	require.Len(t, comments, 1)
	assert.Equal(t, "Mr. John Santos", comments[0].Speaker)
	assert.Equal(t, "Mr. John Santos spoke about overtime pay.", comments[0].Summary)
}

func TestMetadata(t *testing.T) {
	e := newTestExtractor()
	text := "The regular meeting of the Civil Service Commission was held at the CSC Conference Room on March 5, 2024. " +
		"Raymond Muna called the meeting to order at 9:05 a.m."

	meta := e.Metadata(text)
	assert.Equal(t, "March 5, 2024", meta.Date)
	assert.Equal(t, "CSC Conference Room", meta.Location)
	assert.Equal(t, "Raymond Muna", meta.PresidingOfficer)
	assert.Equal(t, "9:05 a.m.", meta.CallToOrderTime)
	assert.Equal(t, "9:05 a.m.", meta.Time)
	assert.Equal(t, "Regular Meeting", meta.Type)
}

func TestMetadata_DefaultsToToday(t *testing.T) {
	meta := newTestExtractor().Metadata("")
	assert.Equal(t, "March 14, 2025", meta.Date)
	assert.Empty(t, meta.Location)
}

func TestMeetingType(t *testing.T) {
	e := newTestExtractor()
	tests := []struct {
		name  string
		text  string
		title string
		want  entities.MeetingType
	}{
		{"case number", "Status of CSC-24-011.", "", entities.MeetingTypeCase},
		{"appeal in title", "Opening remarks.", "Appeal hearing", entities.MeetingTypeCase},
		{"board", "The regular meeting of the commission.", "", entities.MeetingTypeBoard},
		{"general", "Team sync about the website.", "Weekly sync", entities.MeetingTypeGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.MeetingType(tt.text, tt.title))
		})
	}
}

func TestCaseNumbers(t *testing.T) {
	e := newTestExtractor()
	got := e.CaseNumbers("Re CSC-24-011 and csc 23-104. Case No. CSC-24-011 again. The case number for the appellant is pending.")
	assert.Equal(t, []string{"CSC-24-011", "CSC-23-104"}, got)
}

func TestAdjournment(t *testing.T) {
	e := newTestExtractor()
	tests := []struct {
		text string
		want string
	}{
		{"There being no further business, the meeting adjourned at 11:42 a.m.", "11:42 a.m."},
		{"Motion to adjourn. Meeting adjourned at 4:30 pm.", "4:30 pm"},
		{"We adjourned.", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, e.Adjournment(tt.text), tt.text)
	}
}

func TestSentences(t *testing.T) {
	got := sentences("Mr. Santos spoke at 9 a.m. today. Next item!\nNew line")
	require.Len(t, got, 3)
	assert.Equal(t, "Mr. Santos spoke at 9 a.m. today.", got[0].Text)
	assert.Equal(t, "Next item!", got[1].Text)
	assert.Equal(t, "New line", got[2].Text)
}

func TestAttendance_TitleAndLastName(t *testing.T) {
	e := newTestExtractor()
	text := "Roll call: Chairman Muna, present. Vice Chairman Fitial, present. Commissioner Bellas, present. Commissioner Camacho, absent."

	byName := map[string]entities.AttendanceRecord{}
	for _, r := range e.Attendance(text) {
		byName[r.Name] = r
	}
	require.Len(t, byName, 4)
	assert.True(t, byName["Raymond Muna"].Present)
	assert.True(t, byName["Patrick Fitial"].Present)
	assert.True(t, byName["Victoria Bellas"].Present)
	assert.False(t, byName["Joseph Camacho"].Present)
}

func TestMetadata_PresidingByLastName(t *testing.T) {
	e := newTestExtractor()
	meta := e.Metadata("Chairman Muna called the meeting to order at 9:02 a.m.")
	assert.Equal(t, "Raymond Muna", meta.PresidingOfficer)
	assert.Equal(t, "9:02 a.m.", meta.CallToOrderTime)
}

func TestMotions_TitleAndLastName(t *testing.T) {
	e := newTestExtractor()
	text := "Commissioner Bellas made a motion to approve the budget, seconded by Commissioner Fitial. The motion carried."

	motions := e.Motions(text)
	require.Len(t, motions, 1)
	assert.Equal(t, "Approve the budget", motions[0].Text)
	assert.Equal(t, "Victoria Bellas", motions[0].Maker)
	assert.Equal(t, "Patrick Fitial", motions[0].Seconder)
	assert.Equal(t, entities.MotionResultCarried, motions[0].Result)
}

func TestMotions_PassiveVoice(t *testing.T) {
	e := newTestExtractor()
	tests := []string{
		"The motion to approve the minutes was made by Patrick Fitial and seconded by Victoria Bellas. It passed 4 to 1.",
		"A motion to approve the minutes was made by Patrick Fitial and seconded by Victoria Bellas. It passed 4 to 1.",
	}
	for _, text := range tests {
		motions := e.Motions(text)
		require.Len(t, motions, 1, text)

		m := motions[0]
		assert.Equal(t, "Approve the minutes", m.Text, text)
		assert.Equal(t, "Patrick Fitial", m.Maker, text)
		assert.Equal(t, "Victoria Bellas", m.Seconder, text)
		assert.Equal(t, entities.MotionResultCarried, m.Result, text)
		require.NotNil(t, m.Tally, text)
		assert.Equal(t, entities.VoteTally{Yes: 4, No: 1}, *m.Tally, text)
	}
}

func TestMotions_RestatementStillSkipped(t *testing.T) {
	e := newTestExtractor()
	text := "Patrick Fitial moved to approve the agenda. Victoria Bellas seconded. " +
		"We have a motion to approve the agenda on the floor. Motion carried."

	assert.Len(t, e.Motions(text), 1)
}

func TestSentences_SingleLetterBeforeNewSentence(t *testing.T) {
	got := sentences("Patrick Fitial moved to approve item A. Victoria Bellas seconded.")
	require.Len(t, got, 2)
	assert.Equal(t, "Patrick Fitial moved to approve item A.", got[0].Text)

	got = sentences("Commissioner J. Camacho moved. J. R. Smith spoke.")
	require.Len(t, got, 2)
	assert.Equal(t, "Commissioner J. Camacho moved.", got[0].Text)
	assert.Equal(t, "J. R. Smith spoke.", got[1].Text)
}

func TestMotions_SingleLetterEndsProposal(t *testing.T) {
	e := newTestExtractor()
	motions := e.Motions("Patrick Fitial moved to approve A. Victoria Bellas seconded.")
	require.Len(t, motions, 1)
	assert.Equal(t, "Approve A", motions[0].Text)
	assert.Equal(t, "Victoria Bellas", motions[0].Seconder)
}
