package handlers

import (
	"net/http"
	"time"

	"github.com/jsamuelsen11/pracsphere-tasks/internal/adapters/http/dto"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/pracsphere-tasks/internal/ports"
)

// SessionCookie configures the cookie that carries the session token for
// browser clients.
type SessionCookie struct {
	Name   string
	Secure bool
}

// AccountHandler handles registration and session endpoints.
type AccountHandler struct {
	svc    ports.AccountService
	cookie SessionCookie
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(svc ports.AccountService, cookie SessionCookie) *AccountHandler {
	return &AccountHandler{svc: svc, cookie: cookie}
}

// Register handles POST /api/register.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.svc.Register(r.Context(), req.Registration())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToUserResponse(user))
}

// Login handles POST /api/login. The token is returned in the body and as an
// HttpOnly cookie.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	session, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if h.cookie.Name != "" {
		http.SetCookie(w, h.sessionCookie(session.Token, session.ExpiresAt))
	}
	writeJSON(w, http.StatusOK, dto.ToSessionResponse(session))
}

// Logout handles POST /api/logout. The cookie is cleared even when
// revocation fails.
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if h.cookie.Name != "" {
		c := h.sessionCookie("", time.Unix(0, 0))
		c.MaxAge = -1
		http.SetCookie(w, c)
	}

	if err := h.svc.Logout(r.Context(), middleware.CredentialFromContext(r.Context())); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /api/me.
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, dto.MeResponse{Email: id.String()})
}

func (h *AccountHandler) sessionCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
