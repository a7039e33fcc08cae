// Package roster derives the judge roster from presenter assignments
// and audits it for near-duplicate names. Assignment data is
// name-based, so a stray space or typo silently splits one judge into
// two; the similarity scan surfaces those pairs for manual merging
// before they skew the leniency baselines.
package roster

import (
	"regexp"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"

	"github.com/vetmed/research-day/internal/domain"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	foldCaser  = cases.Fold()
)

// JudgeID produces the stable identifier for a judge name: lowercased,
// trimmed, internal whitespace collapsed to hyphens. Score records are
// keyed on this id, so two spellings of the same name that normalize
// identically are already the same judge.
func JudgeID(name string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

// Build derives the roster from the presenters' judge slots. Judges
// appear in first-assignment order; a judge's presenter list follows
// the presenter order given.
func Build(presenters []domain.Presenter) []domain.Judge {
	byID := make(map[string]*domain.Judge)
	var order []string

	for _, p := range presenters {
		for _, name := range p.AssignedJudges() {
			id := JudgeID(name)
			j, ok := byID[id]
			if !ok {
				j = &domain.Judge{ID: id, Name: strings.TrimSpace(name)}
				byID[id] = j
				order = append(order, id)
			}
			j.AssignedPresenters = append(j.AssignedPresenters, p.ID)
		}
	}

	out := make([]domain.Judge, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out
}

// SimilarPair is a pair of roster entries whose names sit within a
// small edit distance of each other: probably one judge entered twice.
type SimilarPair struct {
	A        domain.Judge `json:"a"`
	B        domain.Judge `json:"b"`
	Distance int          `json:"distance"`
}

// SimilarNames scans the roster for name pairs within maxDistance
// Levenshtein edits of each other after case folding. Identical ids
// are skipped (already the same judge). Pairs come back ordered by
// distance, closest first.
func SimilarNames(judges []domain.Judge, maxDistance int) []SimilarPair {
	var pairs []SimilarPair
	for i := 0; i < len(judges); i++ {
		for j := i + 1; j < len(judges); j++ {
			a, b := judges[i], judges[j]
			if a.ID == b.ID {
				continue
			}
			d := levenshtein.ComputeDistance(foldCaser.String(a.Name), foldCaser.String(b.Name))
			if d <= maxDistance {
				pairs = append(pairs, SimilarPair{A: a, B: b, Distance: d})
			}
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Distance < pairs[j].Distance
	})
	return pairs
}
