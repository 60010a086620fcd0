package cryptox

import (
	"crypto/md5" // #nosec G501 - gravatar addresses images by md5 of the email
	"encoding/hex"
	"strings"
)

const gravatarBase = "//www.gravatar.com/avatar/"

// GravatarURL derives the avatar reference for an email address: 200px,
// PG rated, falling back to the "mystery man" silhouette.
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email)))) // #nosec G401

	return gravatarBase + hex.EncodeToString(sum[:]) + "?s=200&r=pg&d=mm"
}
