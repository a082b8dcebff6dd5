package metrics

import (
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/kobe/internal/eval/annotation"
)

var ErrMisalignedAnnotations = errors.New("annotation sequences are not aligned")

// Counters are the entity counts of one matching pass.
type Counters struct {
	SrcCount   int `json:"src_count"`
	CndCount   int `json:"cnd_count"`
	MatchCount int `json:"match_count"`
}

// MatchIDs matches the entities of ref (source or reference side) against the
// entities of cnd sentence by sentence. Within a sentence every candidate
// entity can satisfy at most one ref entity with the same id.
func MatchIDs(ref, cnd []annotation.Sentence) (Counters, error) {
	if len(ref) != len(cnd) {
		return Counters{}, fmt.Errorf("%w: %d vs %d sentences", ErrMisalignedAnnotations, len(ref), len(cnd))
	}

	var c Counters
	for i := range ref {
		remaining := make(map[annotation.EntityID]int, len(cnd[i].Entities))
		for _, e := range cnd[i].Entities {
			c.CndCount++
			remaining[e.ID]++
		}

		for _, e := range ref[i].Entities {
			c.SrcCount++
			if remaining[e.ID] > 0 {
				c.MatchCount++
				remaining[e.ID]--
				if remaining[e.ID] == 0 {
					delete(remaining, e.ID)
				}
			}
		}
	}

	return c, nil
}
