// Package classify decides whether a document is an official order or a
// routine note.
package classify

import (
	"strings"

	"github.com/cnmi-csc/busybee/internal/domain/entities"
)

// OrderKeywords mark a document as an official order wherever they appear
var OrderKeywords = []string{
	"hereby ordered",
	"it is so ordered",
	"status conference",
	"scheduling order",
	"order of the commission",
	"csc-",
}

// CaseOutcomeKeywords additionally mark a case decision as an order
var CaseOutcomeKeywords = []string{
	"ordered",
	"remanded",
	"dismissed",
	"sustained",
	"overturned",
	"upheld",
}

// IsOrder reports whether the analysis describes an official order. It is a
// pure function of its input.
func IsOrder(r *entities.AnalysisResult) bool {
	if r == nil {
		return false
	}
	if containsAny(OrderKeywords, r.Title, r.Summary, r.SourceText) {
		return true
	}
	if r.MeetingType != entities.MeetingTypeCase {
		return false
	}
	for _, d := range r.Decisions {
		if containsAny(OrderKeywords, d) || containsAny(CaseOutcomeKeywords, d) {
			return true
		}
	}
	return false
}

// IsOrderText classifies free text such as rendered markdown
func IsOrderText(title, text string) bool {
	return containsAny(OrderKeywords, title, text)
}

// FolderFor returns the destination folder for a document
func FolderFor(isOrder bool) entities.Folder {
	if isOrder {
		return entities.FolderOfficialOrders
	}
	return entities.FolderNotes
}

func containsAny(keywords []string, texts ...string) bool {
	for _, text := range texts {
		lower := strings.ToLower(text)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}
