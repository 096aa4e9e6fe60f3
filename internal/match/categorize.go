package match

import "github.com/unipath/counsel-svc/internal/domain"

// Categorize assigns a Dream/Target/Safe bucket. Acceptance rate is the
// dominant signal; the score only moves a school within its selectivity band.
// ranking is part of the signature but the decision table does not consult it.
func Categorize(score int, acceptanceRate float64, ranking *int) string {
	_ = ranking

	switch {
	case acceptanceRate < 15:
		return domain.BucketDream
	case acceptanceRate < 30:
		if score >= 75 {
			return domain.BucketTarget
		}
		return domain.BucketDream
	case acceptanceRate < 50:
		if score >= 80 {
			return domain.BucketSafe
		}
		return domain.BucketTarget
	default:
		if score >= 70 {
			return domain.BucketSafe
		}
		return domain.BucketTarget
	}
}
