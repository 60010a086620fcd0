//go:build e2e

package devconnector_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/devconnector/pkg/devsdk"
	"github.com/stretchr/testify/require"
)

func TestProfileLifecycle(t *testing.T) {
	client := setupContainer(t, relaxedLimits)
	ctx := t.Context()

	ada := registerUser(t, client, "Ada", "ada@example.com")

	_, err := ada.MyProfile(ctx)
	assertAPIError(t, err, http.StatusBadRequest, "There is no profile for this user")

	profile, err := ada.SaveProfile(ctx, devsdk.ProfileRequest{
		Status: ptr("Developer"),
		Skills: ptr("go, postgres ,docker"),
		Bio:    ptr("Writes compilers"),
	})
	require.NoError(t, err)
	require.Equal(t, []string{"go", "postgres", "docker"}, profile.Skills)

	profile, err = ada.AddExperience(ctx, devsdk.ExperienceRequest{
		Title:   "Engineer",
		Company: "Analytical Engines",
		From:    "2019-03-01",
		Current: true,
	})
	require.NoError(t, err)
	require.Len(t, profile.Experience, 1)

	before := profile.Experience
	profile, err = ada.RemoveExperience(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	require.NoError(t, err)
	require.Equal(t, before, profile.Experience)

	profile, err = ada.RemoveExperience(ctx, before[0].ID)
	require.NoError(t, err)
	require.Empty(t, profile.Experience)

	public, err := client.GetProfileByUser(ctx, profile.User.ID)
	require.NoError(t, err)
	require.Equal(t, "Writes compilers", public.Bio)

	require.NoError(t, ada.DeleteAccount(ctx))

	_, err = client.GetProfileByUser(ctx, profile.User.ID)
	assertAPIError(t, err, http.StatusNotFound, "Profile not found")
}

func TestPostsLikesComments(t *testing.T) {
	client := setupContainer(t, relaxedLimits)
	ctx := t.Context()

	ada := registerUser(t, client, "Ada", "ada@example.com")
	bob := registerUser(t, client, "Bob", "bob@example.com")

	post, err := ada.CreatePost(ctx, "First post")
	require.NoError(t, err)
	require.Equal(t, "Ada", post.Name)

	err = bob.DeletePost(ctx, post.ID)
	assertAPIError(t, err, http.StatusUnauthorized, "User not authorized")

	likes, err := bob.Like(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, likes, 1)

	_, err = bob.Like(ctx, post.ID)
	assertAPIError(t, err, http.StatusBadRequest, "Post already liked")

	comments, err := bob.Comment(ctx, post.ID, "Welcome!")
	require.NoError(t, err)
	require.Len(t, comments, 1)

	_, err = ada.DeleteComment(ctx, post.ID, comments[0].ID)
	assertAPIError(t, err, http.StatusUnauthorized, "User not authorized")

	got, err := ada.GetPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, got.Likes, 1)
	require.Len(t, got.Comments, 1)

	require.NoError(t, ada.DeletePost(ctx, post.ID))

	_, err = ada.GetPost(ctx, post.ID)
	assertAPIError(t, err, http.StatusNotFound, "Post not found")
}
