package http

import (
	"net/http"

	"github.com/vncsmyrnk/quickpolls/internal/core/domain"
	"github.com/vncsmyrnk/quickpolls/internal/core/facade"
)

type UserHandler struct {
	api *facade.Facade
}

func NewUserHandler(api *facade.Facade) *UserHandler {
	return &UserHandler{
		api: api,
	}
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID := userIDFrom(r.Context())
	if userID == nil {
		writeError(w, http.StatusUnauthorized, codeAuthRequired, "Unauthorized: missing user context")
		return
	}

	res := h.api.GetUser(r.Context(), *userID)
	if res.Code == domain.Code(domain.ErrUserNotFound) {
		// The token outlived its account.
		writeError(w, http.StatusUnauthorized, codeAuthRequired, res.Message)
		return
	}
	writeResult(w, http.StatusOK, res)
}
