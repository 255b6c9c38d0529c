package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vncsmyrnk/quickpolls/internal/core/domain"
	"github.com/vncsmyrnk/quickpolls/internal/core/facade"
	"github.com/vncsmyrnk/quickpolls/internal/core/ports"
)

type PollHandler struct {
	api *facade.Facade
}

func NewPollHandler(api *facade.Facade) *PollHandler {
	return &PollHandler{
		api: api,
	}
}

type createQuestionRequest struct {
	Text    string   `json:"text" validate:"required"`
	Type    string   `json:"type" validate:"required,oneof=single multiple"`
	Options []string `json:"options" validate:"min=3,unique,dive,required"`
}

type createPollRequest struct {
	Title        string                  `json:"title" validate:"required"`
	Description  string                  `json:"description"`
	IsRestricted bool                    `json:"is_restricted"`
	Questions    []createQuestionRequest `json:"questions" validate:"min=5,max=20"`
}

// normalize trims every text field so blank entries fail the required checks.
func (req *createPollRequest) normalize() {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	for i := range req.Questions {
		q := &req.Questions[i]
		q.Text = strings.TrimSpace(q.Text)
		for j := range q.Options {
			q.Options[j] = strings.TrimSpace(q.Options[j])
		}
	}
}

func (req *createPollRequest) input(createdBy *string) ports.CreatePollInput {
	input := ports.CreatePollInput{
		Title:        req.Title,
		Description:  req.Description,
		CreatedBy:    createdBy,
		IsRestricted: req.IsRestricted,
		Questions:    make([]ports.QuestionInput, 0, len(req.Questions)),
	}
	for _, q := range req.Questions {
		input.Questions = append(input.Questions, ports.QuestionInput{
			Text:    q.Text,
			Type:    domain.QuestionType(q.Type),
			Options: q.Options,
		})
	}
	return input
}

func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req createPollRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "invalid request body")
		return
	}

	req.normalize()
	if msg := validatePoll(&req); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, codeInvalidPoll, msg)
		return
	}

	writeResult(w, http.StatusCreated, h.api.CreatePoll(r.Context(), req.input(userIDFrom(r.Context()))))
}

func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	writeResult(w, http.StatusOK, h.api.ListPolls(r.Context()))
}

func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	writeResult(w, http.StatusOK, h.api.GetPoll(r.Context(), chi.URLParam(r, "id")))
}

func (h *PollHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	writeResult(w, http.StatusOK, h.api.GetResults(r.Context(), chi.URLParam(r, "id")))
}
