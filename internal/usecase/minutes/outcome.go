package minutes

// OutcomeKind tells which path produced the analysis
type OutcomeKind string

const (
	// OutcomeLLMSucceeded means the model answered and its answer was used
	OutcomeLLMSucceeded OutcomeKind = "llm_succeeded"
	// OutcomeLLMFailed means the model failed and a Processing Error document was produced
	OutcomeLLMFailed OutcomeKind = "llm_failed"
	// OutcomeHeuristicFallback means the model was wanted but heuristics were used instead
	OutcomeHeuristicFallback OutcomeKind = "heuristic_fallback"
	// OutcomeHeuristic means heuristics were requested directly
	OutcomeHeuristic OutcomeKind = "heuristic"
)

// AnalysisOutcome records how a transcript was analyzed
type AnalysisOutcome struct {
	Kind     OutcomeKind `json:"kind"`
	Provider string      `json:"provider,omitempty"`
	Cached   bool        `json:"cached,omitempty"`
	Cause    string      `json:"cause,omitempty"` // human-readable reason the model was not used
	Err      error       `json:"-"`
}

// UsedLLM reports whether the document content came from the model
func (o AnalysisOutcome) UsedLLM() bool {
	return o.Kind == OutcomeLLMSucceeded
}
