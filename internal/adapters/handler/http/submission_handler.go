package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vncsmyrnk/quickpolls/internal/core/domain"
	"github.com/vncsmyrnk/quickpolls/internal/core/facade"
)

type SubmissionHandler struct {
	api *facade.Facade
}

func NewSubmissionHandler(api *facade.Facade) *SubmissionHandler {
	return &SubmissionHandler{
		api: api,
	}
}

type submitRequest struct {
	Answers []domain.Answer `json:"answers"`
}

type completedResponse struct {
	Completed bool `json:"completed"`
}

func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "invalid request body")
		return
	}

	pollID := chi.URLParam(r, "id")
	writeResult(w, http.StatusCreated, h.api.SubmitPollAnswers(r.Context(), pollID, req.Answers, userIDFrom(r.Context())))
}

func (h *SubmissionHandler) Completed(w http.ResponseWriter, r *http.Request) {
	res := h.api.CheckCompleted(r.Context(), chi.URLParam(r, "id"), userIDFrom(r.Context()))
	if !res.Success {
		writeResult(w, http.StatusOK, res)
		return
	}
	writeJSON(w, http.StatusOK, completedResponse{Completed: res.Data})
}
