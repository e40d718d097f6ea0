package names

import "github.com/cnmi-csc/busybee/internal/domain/entities"

// Normalize replaces every roster variant in transcript with its canonical
// name. Text without matches is returned unchanged.
func Normalize(transcript string, roster entities.Roster) string {
	return NewMatcher(roster).Normalize(transcript)
}
