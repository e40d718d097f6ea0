package llm

import (
	"fmt"
	"strings"
)

const basePrompt = `You are the recording secretary of the CNMI Civil Service Commission.
You write accurate, neutral meeting minutes from transcripts. Never invent facts,
names, votes or times that are not in the transcript.

Return JSON only, no other text:
{
  "summary": "markdown summary of the meeting",
  "action_items": [{"description": "...", "assigned_to": "...", "deadline": "...", "priority": "low|medium|high|urgent"}],
  "participants": ["full names of people who spoke or were present"],
  "key_decisions": ["one sentence per decision"],
  "extras": {%s}
}`

var extrasByType = map[string]string{
	"case":  `"case_number": "CSC-YY-NNN or empty", "parties": ["..."], "orders": ["each order issued"], "next_hearing": "date or empty"`,
	"board": `"motions": ["maker, seconder, motion text and result"], "votes": ["vote tallies as stated"], "adjournment_time": "time or empty"`,
}

// SystemPrompt returns the instructions for a meeting type
func SystemPrompt(meetingType string) string {
	return fmt.Sprintf(basePrompt, extrasByType[meetingType])
}

// UserPrompt formats the transcript for the model
func UserPrompt(req Request) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Meeting title: %s\n", req.Title)
	if req.MeetingType != "" {
		fmt.Fprintf(&sb, "Meeting type: %s\n", req.MeetingType)
	}
	sb.WriteString("\nTranscript:\n")
	sb.WriteString(req.Transcript)
	return sb.String()
}
