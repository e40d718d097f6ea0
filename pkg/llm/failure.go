package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/openai/openai-go"
)

// FailureKind groups model call failures by cause
type FailureKind string

const (
	FailureNetwork     FailureKind = "network"
	FailureTimeout     FailureKind = "timeout"
	FailureQuota       FailureKind = "quota"
	FailureAuth        FailureKind = "invalid_key"
	FailureMalformed   FailureKind = "malformed_response"
	FailureUnavailable FailureKind = "service_unavailable"
	FailureUnknown     FailureKind = "unknown"
)

// StatusError is a non-2xx reply from a provider
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// Classify maps an error from Analyze to a failure kind
func Classify(err error) FailureKind {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrMalformedResponse) {
		return FailureMalformed
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTimeout
	}
	if code := statusCode(err); code != 0 {
		switch {
		case code == 401 || code == 403:
			return FailureAuth
		case code == 429:
			return FailureQuota
		case code >= 500:
			return FailureUnavailable
		}
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return FailureTimeout
		}
		return FailureNetwork
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "rate limit") || strings.Contains(msg, "quota") || strings.Contains(msg, "too many requests"):
		return FailureQuota
	case strings.Contains(msg, "invalid api key") || strings.Contains(msg, "unauthorized") || strings.Contains(msg, "invalid_api_key"):
		return FailureAuth
	case strings.Contains(msg, "connection refused") || strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "no such host") || strings.Contains(msg, "network unreachable"):
		return FailureNetwork
	case strings.Contains(msg, "i/o timeout") || strings.Contains(msg, "deadline exceeded"):
		return FailureTimeout
	case strings.Contains(msg, "service unavailable") || strings.Contains(msg, "bad gateway"):
		return FailureUnavailable
	}
	return FailureUnknown
}

// IsRetryable reports whether a failed call may succeed when repeated
func IsRetryable(err error) bool {
	switch Classify(err) {
	case FailureNetwork, FailureTimeout, FailureQuota, FailureUnavailable:
		return true
	}
	return false
}

// DescribeFailure returns a sentence explaining why the model call failed
func DescribeFailure(err error) string {
	switch Classify(err) {
	case FailureNetwork:
		return "The AI service could not be reached (network error)."
	case FailureTimeout:
		return "The AI service did not answer in time."
	case FailureQuota:
		return "The AI service quota or rate limit was exceeded."
	case FailureAuth:
		return "The AI service rejected the API key (invalid or expired key)."
	case FailureMalformed:
		return "The AI service returned a response that could not be read."
	case FailureUnavailable:
		return "The AI service is temporarily unavailable."
	case "":
		return ""
	}
	return fmt.Sprintf("The AI service call failed: %v", err)
}

func statusCode(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}
	var openaiErr *openai.Error
	if errors.As(err, &openaiErr) {
		return openaiErr.StatusCode
	}
	var anthropicErr *anthropic.Error
	if errors.As(err, &anthropicErr) {
		return anthropicErr.StatusCode
	}
	return 0
}
