package metrics

import (
	"errors"
	"math"

	"github.com/DjordjeVuckovic/kobe/pkg/utils"
)

var ErrNoSourceEntities = errors.New("no source entities to recall")

// EntityCountPenalty discounts candidates that emit at least twice as many
// entities as the source side. The result is in (0, 1]. A zero source count
// gives no penalty.
func EntityCountPenalty(srcCount, cndCount int) float64 {
	s, c := float64(srcCount), float64(cndCount)
	if srcCount == 0 || c < 2*s {
		return 1.0
	}
	return math.Exp(1 - c/(2*s))
}

// Percentage returns matched*100/total rounded to two decimals.
func Percentage(total, matched int) (float64, error) {
	if total == 0 {
		return 0, ErrNoSourceEntities
	}
	return utils.RoundDecimal(float64(matched*100)/float64(total), 2), nil
}

// EntityRecall is the penalized recall percentage of one matching pass.
func EntityRecall(c Counters) (float64, error) {
	pct, err := Percentage(c.SrcCount, c.MatchCount)
	if err != nil {
		return 0, err
	}
	return pct * EntityCountPenalty(c.SrcCount, c.CndCount), nil
}
