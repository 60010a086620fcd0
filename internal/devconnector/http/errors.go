package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/devconnector/internal/devconnector/service"
	"github.com/aussiebroadwan/devconnector/pkg/cryptox"
	"github.com/aussiebroadwan/devconnector/pkg/httpx"
	"github.com/aussiebroadwan/devconnector/pkg/slogx"
)

const (
	MsgServerError        = "Server Error"
	MsgBadBody            = "Invalid request body"
	MsgNotAuthorized      = "User not authorized"
	MsgUserExists         = "User already exists"
	MsgInvalidCredentials = "Invalid Credentials"
	MsgUserNotFound       = "User not found"
	MsgNoProfile          = "There is no profile for this user"
	MsgProfileNotFound    = "Profile not found"
	MsgPostNotFound       = "Post not found"
	MsgCommentNotFound    = "Comment does not exist"
	MsgAlreadyLiked       = "Post already liked"
	MsgNotLiked           = "Post has not been liked"
	MsgNoGitHubProfile    = "No Github profile found"
	MsgPasswordTooLong    = "Please enter a password of at most 72 bytes"

	MsgPostRemoved = "Post removed"
	MsgUserDeleted = "User deleted"
)

// writeError turns a service error into its response. Anything not
// recognised is logged and answered with a bare 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var upstream *service.UpstreamError

	switch {
	case errors.Is(err, service.ErrUserExists):
		httpx.WriteErrors(w, http.StatusBadRequest, httpx.ErrorItem{Msg: MsgUserExists})
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteErrors(w, http.StatusBadRequest, httpx.ErrorItem{Msg: MsgInvalidCredentials})
	case errors.Is(err, cryptox.ErrPasswordTooLong):
		httpx.WriteErrors(w, http.StatusBadRequest, httpx.ErrorItem{Msg: MsgPasswordTooLong, Param: "password", Location: "body"})

	case errors.Is(err, service.ErrNotAuthorized):
		httpx.WriteMsg(w, http.StatusUnauthorized, MsgNotAuthorized)

	case errors.Is(err, service.ErrUserNotFound):
		httpx.WriteMsg(w, http.StatusNotFound, MsgUserNotFound)
	case errors.Is(err, service.ErrProfileNotFound):
		httpx.WriteMsg(w, http.StatusNotFound, MsgProfileNotFound)
	case errors.Is(err, service.ErrPostNotFound):
		httpx.WriteMsg(w, http.StatusNotFound, MsgPostNotFound)
	case errors.Is(err, service.ErrCommentNotFound):
		httpx.WriteMsg(w, http.StatusNotFound, MsgCommentNotFound)

	case errors.Is(err, service.ErrNoProfile):
		httpx.WriteMsg(w, http.StatusBadRequest, MsgNoProfile)
	case errors.Is(err, service.ErrAlreadyLiked):
		httpx.WriteMsg(w, http.StatusBadRequest, MsgAlreadyLiked)
	case errors.Is(err, service.ErrNotLiked):
		httpx.WriteMsg(w, http.StatusBadRequest, MsgNotLiked)

	case errors.As(err, &upstream):
		httpx.WriteMsg(w, upstream.StatusCode, MsgNoGitHubProfile)

	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		httpx.WriteMsg(w, http.StatusInternalServerError, MsgServerError)
	}
}

// callerID returns the identity the Auth Gate attached. Routes that need
// it are always behind the gate, so a miss is a wiring bug.
func callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		httpx.WriteMsg(w, http.StatusUnauthorized, httpx.MsgNoToken)
	}
	return id, ok
}
