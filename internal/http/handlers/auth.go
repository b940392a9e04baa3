package handlers

import (
	"net/http"
	"time"

	apierrors "github.com/pribylovaa/mindwell/internal/errors"
	"github.com/pribylovaa/mindwell/internal/models"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authUser struct {
	ID       int64   `json:"user_id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	IsAdmin  bool    `json:"isAdmin"`
	Role     *string `json:"role,omitempty"`
	IsBanned *bool   `json:"is_banned,omitempty"`
}

type authResponse struct {
	Message   string    `json:"message"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      authUser  `json:"user"`
}

func newAuthResponse(msg string, res *models.AuthResult, full bool) authResponse {
	u := authUser{
		ID:       res.User.ID,
		Username: res.User.Username,
		Email:    res.User.Email,
		IsAdmin:  res.User.HasRole(models.RoleAdmin),
	}
	if full {
		role := res.User.PrimaryRole()
		banned := res.User.IsBanned
		u.Role = &role
		u.IsBanned = &banned
	}

	return authResponse{Message: msg, Token: res.Token, ExpiresAt: res.ExpiresAt, User: u}
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var in registerRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Register(r.Context(), in.Username, in.Email, in.Password)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, newAuthResponse("User registered successfully!", res, false))
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := decodeJSON(w, r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newAuthResponse("Login successful", res, true))
}

// Logout отзывает предъявленный токен до его истечения.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	id, err := identity(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if err := h.svc.Logout(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Logged out successfully"})
}
