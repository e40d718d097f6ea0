package entities

// VoteType describes how a motion was voted on
type VoteType string

const (
	VoteTypeVoice     VoteType = "voice"
	VoteTypeRollCall  VoteType = "roll-call"
	VoteTypeUnanimous VoteType = "unanimous"
)

// MotionResult is the recorded outcome of a motion
type MotionResult string

const (
	MotionResultUnknown   MotionResult = ""
	MotionResultCarried   MotionResult = "carried"
	MotionResultUnanimous MotionResult = "carried unanimously"
	MotionResultFailed    MotionResult = "failed"
	MotionResultTabled    MotionResult = "tabled"
	MotionResultWithdrawn MotionResult = "withdrawn"
)

// DefaultSeconder is used when a motion was seconded but nobody can be named
const DefaultSeconder = "Member"

// VoteTally holds counted votes when the transcript states them
type VoteTally struct {
	Yes     int `json:"yes"`
	No      int `json:"no"`
	Abstain int `json:"abstain"`
}

// Motion is a formal proposal found in the transcript
type Motion struct {
	ID         int          `json:"id"`
	Text       string       `json:"text"`
	Maker      string       `json:"maker"`
	Seconder   string       `json:"seconder,omitempty"`
	Discussion string       `json:"discussion,omitempty"`
	VoteType   VoteType     `json:"vote_type"`
	Tally      *VoteTally   `json:"tally,omitempty"`
	Result     MotionResult `json:"result,omitempty"`
}
