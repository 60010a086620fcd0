package service

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/devconnector/pkg/idx"
)

var (
	ErrUserExists         = errors.New("user_exists")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrUserNotFound       = errors.New("user_not_found")

	ErrNotAuthorized   = errors.New("not_authorized")
	ErrNoProfile       = errors.New("no_profile")
	ErrProfileNotFound = errors.New("profile_not_found")
	ErrPostNotFound    = errors.New("post_not_found")
	ErrCommentNotFound = errors.New("comment_not_found")
	ErrAlreadyLiked    = errors.New("already_liked")
	ErrNotLiked        = errors.New("not_liked")
)

// UpstreamError reports a non-200 answer from the GitHub API. The status is
// passed through to the caller.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("github: upstream status %d", e.StatusCode)
}

// validID reports whether a caller supplied id could name a stored document.
// Anything else is treated as absent rather than as a bad request.
func validID(id string) bool {
	return idx.Valid(id)
}
