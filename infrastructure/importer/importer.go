// Package importer parses the registrar's presenter spreadsheet into
// the domain model. Parsing is forgiving on purpose: bad rows are
// collected as errors and skipped so one typo does not block an import.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vetmed/research-day/internal/domain"
	"github.com/vetmed/research-day/internal/roster"
)

// Result is the outcome of one import run. Errors holds one message
// per rejected row; accepted rows are unaffected.
type Result struct {
	Presenters []domain.Presenter `json:"presenters"`
	Judges     []domain.Judge     `json:"judges"`
	Errors     []string           `json:"errors"`
}

// ParsePresenters reads the CSV export and maps each row to a
// presenter. The header row is required; column order is free. Rows
// missing an id or carrying an unmappable enum value are reported and
// dropped.
func ParsePresenters(r io.Reader) (*Result, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}

	res := &Result{}
	// Row numbering matches the spreadsheet: header is row 1.
	for rowNum := 2; ; rowNum++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		field := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		id := field("presentationID")
		if id == "" {
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: missing presentationID", rowNum))
			continue
		}
		researchType, ok := mapResearchType(field("researchType"))
		if !ok {
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: invalid researchType %q", rowNum, field("researchType")))
			continue
		}
		presentationType, ok := mapPresentationType(field("presentationType"))
		if !ok {
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: invalid presentationType %q", rowNum, field("presentationType")))
			continue
		}
		stage, ok := mapResearchStage(field("researchStage"))
		if !ok {
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: invalid researchStage %q", rowNum, field("researchStage")))
			continue
		}
		sessionTime, ok := mapSessionTime(field("presentationTime"))
		if !ok {
			res.Errors = append(res.Errors, fmt.Sprintf("row %d: invalid presentationTime %q", rowNum, field("presentationTime")))
			continue
		}

		res.Presenters = append(res.Presenters, domain.Presenter{
			ID:               id,
			FirstName:        field("first"),
			LastName:         field("last"),
			Email:            field("email"),
			Classification:   field("classification"),
			ResearchStage:    stage,
			ResearchType:     researchType,
			Department:       field("department"),
			PresentationType: presentationType,
			PresentationTime: sessionTime,
			Title:            field("presentationTitle"),
			Judge1:           cleanJudgeName(field("judge1")),
			Judge2:           cleanJudgeName(field("judge2")),
			Judge3:           cleanJudgeName(field("judge3")),
		})
	}

	res.Judges = roster.Build(res.Presenters)
	return res, nil
}

// Spreadsheet values are hand-entered, so enum mapping goes by
// substring rather than exact match.
func mapResearchType(input string) (domain.ResearchType, bool) {
	n := strings.ToLower(strings.TrimSpace(input))
	switch {
	case strings.Contains(n, "foundational"):
		return domain.ResearchFoundational, true
	case strings.Contains(n, "translational"):
		return domain.ResearchTranslational, true
	case strings.Contains(n, "clinical"), strings.Contains(n, "veterinary"):
		return domain.ResearchClinical, true
	case strings.Contains(n, "pedagogy"), strings.Contains(n, "social"):
		return domain.ResearchPedagogy, true
	}
	return "", false
}

func mapPresentationType(input string) (domain.PresentationType, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "oral":
		return domain.PresentationOral, true
	case "undergrad poster":
		return domain.PresentationUndergradPoster, true
	case "poster":
		return domain.PresentationPoster, true
	}
	return "", false
}

func mapResearchStage(input string) (domain.ResearchStage, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "early":
		return domain.StageEarly, true
	case "advanced":
		return domain.StageAdvanced, true
	}
	return "", false
}

// The symposium runs three fixed sessions; any cell naming the start
// time maps to the canonical label.
func mapSessionTime(input string) (string, bool) {
	n := strings.TrimSpace(input)
	switch {
	case strings.Contains(n, "10:15"):
		return "10:15 - 11:15", true
	case strings.Contains(n, "11:30"):
		return "11:30 - 1:30", true
	case strings.Contains(n, "1:45"):
		return "1:45 - 3:45", true
	}
	return "", false
}

// Spreadsheet exports render empty judge cells as the literal "NaN".
func cleanJudgeName(name string) string {
	if name == "NaN" {
		return ""
	}
	return strings.TrimSpace(name)
}

// ResultRow is one line of the exported results CSV.
type ResultRow struct {
	PresenterID   string
	PresenterName string
	Category      string
	FinalScore    *float64

	// Rank is the awarded place; 0 renders as N/A.
	Rank int
}

// WriteResultsCSV writes the awards export. Presenters without a final
// score appear as Incomplete so the organizers can chase missing
// sheets from the same file.
func WriteResultsCSV(w io.Writer, rows []ResultRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Presenter ID", "Presenter Name", "Category", "Final Score", "Rank"}); err != nil {
		return err
	}
	for _, r := range rows {
		score := "Incomplete"
		if r.FinalScore != nil {
			score = strconv.FormatFloat(*r.FinalScore, 'f', 4, 64)
		}
		rank := "N/A"
		if r.Rank > 0 {
			rank = strconv.Itoa(r.Rank)
		}
		if err := cw.Write([]string{r.PresenterID, r.PresenterName, r.Category, score, rank}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
