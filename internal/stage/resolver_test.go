package stage

import (
	"testing"

	"github.com/unipath/counsel-svc/internal/domain"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name        string
		hasProfile  bool
		shortlisted int
		anyLocked   bool
		want        string
	}{
		{"no profile", false, 0, false, domain.StageOnboarding},
		{"no profile ignores shortlist", false, 3, true, domain.StageOnboarding},
		{"profile only", true, 0, false, domain.StageDiscovery},
		{"shortlisting", true, 2, false, domain.StageShortlisting},
		{"locked wins over shortlist", true, 2, true, domain.StageLocked},
		{"locked with empty count", true, 0, true, domain.StageLocked},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(tc.hasProfile, tc.shortlisted, tc.anyLocked)
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

// Resolve is a pure projection: same facts, same stage, every time.
func TestResolveDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := Resolve(true, 1, false); got != domain.StageShortlisting {
			t.Fatalf("run %d: expected %s, got %s", i, domain.StageShortlisting, got)
		}
	}
}
