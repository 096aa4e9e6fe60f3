// Package stage derives the student's journey stage from stored facts. The
// persisted stage row is a cache; this projection is the only authority.
package stage

import "github.com/unipath/counsel-svc/internal/domain"

// Resolve recomputes the stage from the three authoritative facts. It is pure
// and total; callers reconcile the cached row whenever it disagrees.
func Resolve(hasProfile bool, shortlisted int, anyLocked bool) string {
	switch {
	case !hasProfile:
		return domain.StageOnboarding
	case anyLocked:
		return domain.StageLocked
	case shortlisted > 0:
		return domain.StageShortlisting
	default:
		return domain.StageDiscovery
	}
}
