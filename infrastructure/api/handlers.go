package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/vetmed/research-day/infrastructure/importer"
	"github.com/vetmed/research-day/internal/application"
	"github.com/vetmed/research-day/internal/domain"
)

// Package-level validator instance for request payload validation.
var validate = validator.New()

type handlers struct {
	svc     *application.Service
	metrics *Metrics
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handlers) listPresenters(w http.ResponseWriter, r *http.Request) {
	presenters, err := h.svc.Presenters(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, presenters)
}

// importPresenters takes the raw CSV in the request body. Row errors
// are reported alongside the accepted rows; the import only fails
// outright when nothing parses.
func (h *handlers) importPresenters(w http.ResponseWriter, r *http.Request) {
	res, err := importer.ParsePresenters(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(res.Presenters) == 0 {
		writeJSON(w, http.StatusBadRequest, res)
		return
	}
	if err := h.svc.ImportPresenters(r.Context(), res.Presenters); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type reassignRequest struct {
	Judge1 string `json:"judge1"`
	Judge2 string `json:"judge2"`
	Judge3 string `json:"judge3"`
}

func (h *handlers) reassignJudges(w http.ResponseWriter, r *http.Request) {
	presenterID := chi.URLParam(r, "presenterID")
	var req reassignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	err := h.svc.ReassignJudges(r.Context(), presenterID, req.Judge1, req.Judge2, req.Judge3)
	switch {
	case errors.Is(err, domain.ErrPresenterNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, map[string]string{"status": "reassigned"})
	}
}

func (h *handlers) listScores(w http.ResponseWriter, r *http.Request) {
	scores, err := h.svc.Scores(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, scores)
}

type submitScoreRequest struct {
	PresenterID string               `json:"presenterId" validate:"required"`
	JudgeName   string               `json:"judgeName" validate:"required"`
	Criteria    domain.ScoreCriteria `json:"criteria"`
	IsNoShow    bool                 `json:"isNoShow"`
}

func (h *handlers) submitScore(w http.ResponseWriter, r *http.Request) {
	var req submitScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.RecordSubmission("rejected")
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.StructExcept(req, "Criteria"); err != nil {
		h.metrics.RecordSubmission("rejected")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	// No-show sheets carry no ratings; everything else must be in 1..5.
	if !req.IsNoShow {
		if err := validate.Struct(req.Criteria); err != nil {
			h.metrics.RecordSubmission("rejected")
			writeError(w, http.StatusBadRequest, "criteria ratings must be between 1 and 5")
			return
		}
	}

	score, err := h.svc.SubmitScore(r.Context(), application.SubmitScoreRequest{
		PresenterID: req.PresenterID,
		JudgeName:   req.JudgeName,
		Criteria:    req.Criteria,
		IsNoShow:    req.IsNoShow,
	})
	switch {
	case errors.Is(err, domain.ErrPresenterNotFound):
		h.metrics.RecordSubmission("rejected")
		writeError(w, http.StatusNotFound, err.Error())
	case err != nil:
		h.metrics.RecordSubmission("error")
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		h.metrics.RecordSubmission("accepted")
		writeJSON(w, http.StatusOK, score)
	}
}

func (h *handlers) results(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.ComputeResults(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *handlers) exportResults(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.ResultExport(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	out := make([]importer.ResultRow, len(rows))
	for i, row := range rows {
		out[i] = importer.ResultRow{
			PresenterID:   row.PresenterID,
			PresenterName: row.PresenterName,
			Category:      row.Category,
			FinalScore:    row.FinalScore,
			Rank:          row.Rank,
		}
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="results.csv"`)
	if err := importer.WriteResultsCSV(w, out); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func (h *handlers) progress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.svc.ComputeProgress(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

func (h *handlers) anomalies(w http.ResponseWriter, r *http.Request) {
	anomalies, err := h.svc.Anomalies(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if anomalies == nil {
		anomalies = []domain.Anomaly{}
	}
	writeJSON(w, http.StatusOK, anomalies)
}

func (h *handlers) roster(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Roster(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, report)
}

type submitFeedbackRequest struct {
	PresenterID         string `json:"presenterId" validate:"required"`
	PresenterName       string `json:"presenterName"`
	SubmitterType       string `json:"submitterType" validate:"required,oneof=judge attendee"`
	SubmitterName       string `json:"submitterName"`
	Strengths           string `json:"strengths"`
	AreasForImprovement string `json:"areasForImprovement"`
}

func (h *handlers) submitFeedback(w http.ResponseWriter, r *http.Request) {
	var req submitFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	fb := domain.Feedback{
		ID:                  uuid.NewString(),
		PresenterID:         req.PresenterID,
		PresenterName:       req.PresenterName,
		SubmitterType:       req.SubmitterType,
		SubmitterName:       req.SubmitterName,
		Strengths:           req.Strengths,
		AreasForImprovement: req.AreasForImprovement,
		Timestamp:           time.Now().UTC(),
	}
	if err := h.svc.AddFeedback(r.Context(), fb); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, fb)
}

func (h *handlers) listFeedback(w http.ResponseWriter, r *http.Request) {
	feedback, err := h.svc.ListFeedback(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if feedback == nil {
		feedback = []domain.Feedback{}
	}
	writeJSON(w, http.StatusOK, feedback)
}
