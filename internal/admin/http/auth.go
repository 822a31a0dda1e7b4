package http

import (
	"errors"
	"net/http"

	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/internal/admin/service"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/adminsdk"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/httpx"
	"github.com/muhammadehsaan/full-admin-dashboard-with-glass-morphism/pkg/slogx"
)

var (
	errLoginRequired      = httpx.NewAPIError(http.StatusBadRequest, "Email and password required.")
	errInvalidCredentials = httpx.NewAPIError(http.StatusUnauthorized, "Invalid credentials.")
	errLoginFailed        = httpx.NewAPIError(http.StatusInternalServerError, "Unable to login.")
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Log in
//	@Description	Exchanges email and password for a session token. Checks the users collection
//	@Description	first, then the configured fallback administrator.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		adminsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	adminsdk.LoginResponse
//	@Failure		400		{object}	adminsdk.ErrorResponse	"Email and password required."
//	@Failure		401		{object}	adminsdk.ErrorResponse	"Invalid credentials."
//	@Failure		429		{object}	adminsdk.ErrorResponse
//	@Router			/api/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminsdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		log.Debug("login body rejected", "err", err)
		httpx.WriteError(w, errLoginRequired)
		return
	}

	res, err := h.AuthService.Login(ctx, req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrValidation):
		httpx.WriteError(w, errLoginRequired)
		return
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteError(w, errInvalidCredentials)
		return
	case err != nil:
		log.Error("login failed", "err", err)
		httpx.WriteError(w, errLoginFailed)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminsdk.LoginResponse{
		Token: res.Token,
		User: adminsdk.User{
			Name:  res.User.Name,
			Email: res.User.Email,
			Role:  res.User.Role,
		},
	})
}

// MeHandler godoc
//
//	@Summary		Current session
//	@Description	Returns the decoded claims of the presented token. Does not touch storage.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	adminsdk.MeResponse
//	@Failure		401	{object}	adminsdk.ErrorResponse
//	@Router			/api/auth/me [get].
func MeHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := httpx.ClaimsFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, httpx.NewAPIError(http.StatusUnauthorized, httpx.MsgUnauthorized))
		return
	}

	user := adminsdk.TokenUser{
		ID:    claims.Identity(),
		Name:  claims.Name,
		Email: claims.Email,
		Role:  claims.Role,
	}
	if claims.IssuedAt != nil {
		user.IssuedAt = claims.IssuedAt.Unix()
	}
	if claims.ExpiresAt != nil {
		user.ExpiresAt = claims.ExpiresAt.Unix()
	}

	httpx.WriteJSON(w, http.StatusOK, adminsdk.MeResponse{User: user})
}
