package errors

// ErrorCode identifies a class of application error in API responses.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK          ErrorCode = 0
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003

	// Input validation
	ErrorCode_TRANSCRIPT_REQUIRED   ErrorCode = 2001
	ErrorCode_TITLE_REQUIRED        ErrorCode = 2002
	ErrorCode_INVALID_MEETING_TYPE  ErrorCode = 2003
	ErrorCode_INVALID_DOCUMENT_KIND ErrorCode = 2004
	ErrorCode_RECORDING_REQUIRED    ErrorCode = 2005

	// AI
	ErrorCode_AI_TRANSCRIPTION_FAILED ErrorCode = 3002
	ErrorCode_AI_SERVICE_UNAVAILABLE  ErrorCode = 3003

	// Documents
	ErrorCode_TEMPLATE_NOT_FOUND ErrorCode = 4001

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 5001
	ErrorCode_INTEGRATION_CACHE_FAILED   ErrorCode = 5002
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                    "HTTP_OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_TRANSCRIPT_REQUIRED:        "TRANSCRIPT_REQUIRED",
	ErrorCode_TITLE_REQUIRED:             "TITLE_REQUIRED",
	ErrorCode_INVALID_MEETING_TYPE:       "INVALID_MEETING_TYPE",
	ErrorCode_INVALID_DOCUMENT_KIND:      "INVALID_DOCUMENT_KIND",
	ErrorCode_RECORDING_REQUIRED:         "RECORDING_REQUIRED",
	ErrorCode_AI_TRANSCRIPTION_FAILED:    "AI_TRANSCRIPTION_FAILED",
	ErrorCode_AI_SERVICE_UNAVAILABLE:     "AI_SERVICE_UNAVAILABLE",
	ErrorCode_TEMPLATE_NOT_FOUND:         "TEMPLATE_NOT_FOUND",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:   "INTEGRATION_CACHE_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
