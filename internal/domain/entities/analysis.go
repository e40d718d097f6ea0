package entities

// MeetingMetadata holds best-effort facts about the meeting itself
type MeetingMetadata struct {
	Date             string `json:"date"`
	Time             string `json:"time,omitempty"`
	Location         string `json:"location,omitempty"`
	Type             string `json:"type,omitempty"`
	PresidingOfficer string `json:"presiding_officer,omitempty"`
	CallToOrderTime  string `json:"call_to_order_time,omitempty"`
}

// AttendanceRecord tells whether a roster member attended
type AttendanceRecord struct {
	Name          string `json:"name"`
	Role          string `json:"role,omitempty"`
	Present       bool   `json:"present"`
	FirstMention  string `json:"first_mention,omitempty"`
	ArrivalTime   string `json:"arrival_time,omitempty"`
	DepartureTime string `json:"departure_time,omitempty"`
}

// BusinessItem is an old or new business agenda item
type BusinessItem struct {
	Title      string `json:"title"`
	Presenter  string `json:"presenter,omitempty"`
	Discussion string `json:"discussion,omitempty"`
	Outcome    string `json:"outcome,omitempty"`
	HasMotion  bool   `json:"has_motion"`
}

// DiscussionTopic is a subject discussed during the meeting
type DiscussionTopic struct {
	Topic        string   `json:"topic"`
	Participants []string `json:"participants"`
	KeyPoints    []string `json:"key_points"`
	Outcome      string   `json:"outcome,omitempty"`
}

// PublicComment is a statement made during the public comment period
type PublicComment struct {
	Speaker string `json:"speaker"`
	Summary string `json:"summary"`
}

// AnalysisResult is everything extracted from one transcript. It is built
// once per run and discarded after rendering.
type AnalysisResult struct {
	Title           string             `json:"title"`
	MeetingType     MeetingType        `json:"meeting_type"`
	Metadata        MeetingMetadata    `json:"metadata"`
	Attendance      []AttendanceRecord `json:"attendance"`
	Motions         []Motion           `json:"motions"`
	ActionItems     []ActionItem       `json:"action_items"`
	Decisions       []string           `json:"decisions"`
	Discussion      []DiscussionTopic  `json:"discussion"`
	OldBusiness     []BusinessItem     `json:"old_business"`
	NewBusiness     []BusinessItem     `json:"new_business"`
	PublicComments  []PublicComment    `json:"public_comments"`
	CaseNumbers     []string           `json:"case_numbers"`
	AdjournmentTime string             `json:"adjournment_time,omitempty"`
	Summary         string             `json:"summary,omitempty"`
	SourceText      string             `json:"-"`
}

// NewAnalysisResult returns a result with every list initialized
func NewAnalysisResult(title string) *AnalysisResult {
	return &AnalysisResult{
		Title:          title,
		MeetingType:    MeetingTypeGeneral,
		Attendance:     []AttendanceRecord{},
		Motions:        []Motion{},
		ActionItems:    []ActionItem{},
		Decisions:      []string{},
		Discussion:     []DiscussionTopic{},
		OldBusiness:    []BusinessItem{},
		NewBusiness:    []BusinessItem{},
		PublicComments: []PublicComment{},
		CaseNumbers:    []string{},
	}
}

// Present returns the names of attendees marked present
func (r *AnalysisResult) Present() []string {
	var names []string
	for _, a := range r.Attendance {
		if a.Present {
			names = append(names, a.Name)
		}
	}
	return names
}

// Absent returns the names of roster members marked absent
func (r *AnalysisResult) Absent() []string {
	var names []string
	for _, a := range r.Attendance {
		if !a.Present {
			names = append(names, a.Name)
		}
	}
	return names
}
