// Package scoring implements the award-determination pipeline: rubric
// weighting, judge-leniency normalization, final-score composition,
// category ranking, the department aggregate, and advisory anomaly
// detection.
//
// Every function is a pure, synchronous transform over the snapshot it
// is handed. The pipeline holds no state and is always recomputed from
// the full current score set, so it is safe to call repeatedly and
// concurrently as new scores arrive. Malformed input is not validated
// here; callers validate at the boundary and the engine degrades to
// sentinel values (zero normalized score, nil final score, empty
// winner list) instead of failing.
package scoring

import (
	"strings"

	"golang.org/x/text/cases"
)

// foldCaser is a package-level Unicode case folder. Judge assignments
// are name-based, so slot matching folds case rather than trusting the
// sheet's capitalization.
var foldCaser = cases.Fold()

// sameJudge reports whether two judge names refer to the same judge:
// equal after trimming surrounding whitespace and folding case.
func sameJudge(a, b string) bool {
	return foldCaser.String(strings.TrimSpace(a)) == foldCaser.String(strings.TrimSpace(b))
}
