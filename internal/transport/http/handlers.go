package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	studyapp "studypipe/internal/application/study"
	studydomain "studypipe/internal/domain/study"
)

type studyUseCases interface {
	Submit(sourceURL, languageCode string) (string, error)
	Status(jobID string) studydomain.JobState
}

type Handler struct {
	study studyUseCases
}

// NewHandler wires HTTP handlers with the pipeline use cases.
func NewHandler(studyService studyUseCases) *Handler {
	return &Handler{study: studyService}
}

// Transcribe handles POST /transcribe: accepts a source URL plus optional
// language hint and returns the id of the spawned background job.
func (h *Handler) Transcribe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL      string `json:"url"`
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	jobID, err := h.study.Submit(req.URL, req.Language)
	if err != nil {
		if errors.Is(err, studyapp.ErrMissingURL) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "URL is required"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"job_id": jobID})
}

// Status handles GET /status/{jobID}. Unknown ids answer with a not_found
// status body rather than a 404, so pollers only parse one shape.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["jobID"]
	writeJSON(w, http.StatusOK, h.study.Status(jobID))
}

// Healthz handles the liveness endpoint.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
