package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"max length password", strings.Repeat("a", 72)},
		{"unicode password", "пароль密码"},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)
			require.True(t, strings.HasPrefix(hash, "$2a$10$"), "hash should be bcrypt cost 10, got %q", hash)

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			require.Equal(t, PasswordCost, cost)

			require.NoError(t, VerifyPassword(tt.password, hash))
		})
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", 73))
	require.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	password := "samepassword"

	hash1, err := HashPassword(password)
	require.NoError(t, err)
	hash2, err := HashPassword(password)
	require.NoError(t, err)

	require.NotEqual(t, hash1, hash2, "hashes should differ due to unique salts")

	// bcrypt layout: $2a$10$ + 22 chars of salt + 31 chars of hash.
	require.NotEqual(t, hash1[7:29], hash2[7:29], "salts must not be reused")

	require.NoError(t, VerifyPassword(password, hash1))
	require.NoError(t, VerifyPassword(password, hash2))
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("correct-password")
	require.NoError(t, err)

	tests := []struct {
		name          string
		wrongPassword string
	}{
		{"completely wrong", "wrong-password"},
		{"case difference", "Correct-Password"},
		{"extra space", "correct-password "},
		{"empty password", ""},
		{"similar password", "correct-passwor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyPassword(tt.wrongPassword, hash)
			require.ErrorIs(t, err, ErrPasswordMismatch)
		})
	}
}

func TestVerifyPassword_OtherUsersHash(t *testing.T) {
	alice, err := HashPassword("alice-secret")
	require.NoError(t, err)
	bob, err := HashPassword("bob-secret")
	require.NoError(t, err)

	require.NoError(t, VerifyPassword("alice-secret", alice))
	require.NoError(t, VerifyPassword("bob-secret", bob))

	require.Error(t, VerifyPassword("alice-secret", bob))
	require.Error(t, VerifyPassword("bob-secret", alice))
}

func TestVerifyPassword_InvalidHashFormat(t *testing.T) {
	for _, invalid := range []string{
		"",
		"plaintext",
		"$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$2a$10$tooshort",
	} {
		err := VerifyPassword("test-password", invalid)
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrPasswordMismatch, "hash %q", invalid)
	}
}

func TestGravatarURL(t *testing.T) {
	// md5 of the empty string
	require.Equal(t,
		"//www.gravatar.com/avatar/d41d8cd98f00b204e9800998ecf8427e?s=200&r=pg&d=mm",
		GravatarURL("   "),
	)

	a := GravatarURL("Someone@Example.com ")
	b := GravatarURL("someone@example.com")
	require.Equal(t, a, b, "avatar must not depend on email case or padding")
	require.NotEqual(t, a, GravatarURL("other@example.com"))
}
