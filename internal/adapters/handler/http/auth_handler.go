package http

import (
	"log/slog"
	"net/http"

	"github.com/vncsmyrnk/quickpolls/internal/core/domain"
	"github.com/vncsmyrnk/quickpolls/internal/core/facade"
	"github.com/vncsmyrnk/quickpolls/internal/core/ports"
	"github.com/vncsmyrnk/quickpolls/internal/core/services"
)

type AuthHandler struct {
	api            *facade.Facade
	sessions       ports.SessionService
	cookieDomain   string
	cookieSameSite http.SameSite
}

func NewAuthHandler(api *facade.Facade, sessions ports.SessionService, cookieDomain string, cookieSameSite http.SameSite) *AuthHandler {
	return &AuthHandler{
		api:            api,
		sessions:       sessions,
		cookieDomain:   cookieDomain,
		cookieSameSite: cookieSameSite,
	}
}

type signupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=20,username"`
	Password string `json:"password" validate:"required,min=8,containsany=abcdefghijklmnopqrstuvwxyz,containsany=ABCDEFGHIJKLMNOPQRSTUVWXYZ,containsany=0123456789,containsany=!@#$%^&*()_+-=[]{};:<>/?."`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type sessionData struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, describeSignupError(err))
		return
	}

	writeResult(w, http.StatusCreated, h.api.Signup(r.Context(), req.Username, req.Password))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequest, "Username and password are required.")
		return
	}

	res := h.api.Login(r.Context(), req.Username, req.Password)
	if !res.Success {
		writeResult(w, http.StatusOK, res)
		return
	}

	token, err := h.sessions.Issue(res.Data.ID)
	if err != nil {
		slog.Error("failed to issue session", "user_id", res.Data.ID, "error", err)
		writeError(w, http.StatusInternalServerError, codeInternal, facade.MsgLoginFailed)
		return
	}

	h.setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, facade.Response[sessionData]{
		Success: true,
		Message: res.Message,
		Data:    sessionData{User: res.Data, Token: token},
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.expireSessionCookie(w)
	writeJSON(w, http.StatusOK, facade.Response[any]{Success: true, Message: "Logged out"})
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Domain:   h.cookieDomain,
		HttpOnly: true,
		Secure:   true,
		SameSite: h.cookieSameSite,
		MaxAge:   int(services.SessionTTL.Seconds()),
	})
}

func (h *AuthHandler) expireSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: sessionCookieName, MaxAge: -1, Path: "/", Domain: h.cookieDomain})
}
