/*
Package devsdk is the Go client for the devconnector API and the home of its
wire types.

# Overview

SDKClient performs anonymous calls (registration, login, public profile
reads, health). Register and Login return a Session, which carries the
bearer token in the x-auth-token header for every authenticated call:

	client := devsdk.NewSDKClient("http://localhost:8080")

	session, err := client.Register(ctx, devsdk.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "secret1",
	})

	post, err := session.CreatePost(ctx, "hello")
	likes, err := session.Like(ctx, post.ID)

Tokens are not refreshable. When one expires the server answers 401 and the
caller must log in again.

# Error Handling

Any non-2xx answer is returned as *APIError, holding either the single
message of a {msg} body or the items of an {errors:[...]} body:

	_, err := client.Login(ctx, "ada@example.com", "wrong")
	if apiErr, ok := devsdk.AsAPIError(err); ok && apiErr.HasMessage("Invalid Credentials") {
		// ...
	}
*/
package devsdk
