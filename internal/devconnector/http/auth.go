package http

import (
	"net/http"

	"github.com/aussiebroadwan/devconnector/internal/devconnector/service"
	"github.com/aussiebroadwan/devconnector/pkg/devsdk"
	"github.com/aussiebroadwan/devconnector/pkg/httpx"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleRegister creates an account.
//
//	@Summary		Register user
//	@Description	Creates a user and returns a bearer token for them. The avatar is the gravatar of the email.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		devsdk.RegisterRequest	true	"Name, email and password"
//	@Success		200		{object}	devsdk.TokenResponse
//	@Failure		400		{object}	devsdk.ErrorsResponse	"Validation failed or user already exists"
//	@Failure		429		{object}	devsdk.MessageResponse
//	@Failure		500		{object}	devsdk.MessageResponse
//	@Router			/api/users [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req devsdk.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	token, err := h.AuthService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, devsdk.TokenResponse{Token: token})
}

// HandleLogin exchanges credentials for a token.
//
//	@Summary		Log in
//	@Description	Checks email and password and returns a fresh bearer token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		devsdk.LoginRequest	true	"Email and password"
//	@Success		200		{object}	devsdk.TokenResponse
//	@Failure		400		{object}	devsdk.ErrorsResponse	"Validation failed or invalid credentials"
//	@Failure		429		{object}	devsdk.MessageResponse
//	@Failure		500		{object}	devsdk.MessageResponse
//	@Router			/api/auth [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req devsdk.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, devsdk.TokenResponse{Token: token})
}

// HandleMe returns the caller.
//
//	@Summary		Current user
//	@Description	Returns the user the token was issued for, without the password hash.
//	@Tags			Auth
//	@Security		TokenAuth
//	@Produce		json
//	@Success		200	{object}	devsdk.UserResponse
//	@Failure		401	{object}	devsdk.MessageResponse	"Missing or invalid token"
//	@Failure		404	{object}	devsdk.MessageResponse	"User no longer exists"
//	@Failure		500	{object}	devsdk.MessageResponse
//	@Router			/api/auth [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	u, err := h.AuthService.Me(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(u))
}
