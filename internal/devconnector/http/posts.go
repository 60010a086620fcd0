package http

import (
	"net/http"

	"github.com/aussiebroadwan/devconnector/internal/devconnector/service"
	"github.com/aussiebroadwan/devconnector/pkg/devsdk"
	"github.com/aussiebroadwan/devconnector/pkg/httpx"
)

type PostsHandler struct {
	PostService *service.PostService
}

// HandleCreate publishes a post.
//
//	@Summary		Create post
//	@Tags			Posts
//	@Security		TokenAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		devsdk.PostRequest	true	"Post text"
//	@Success		200		{object}	devsdk.PostResponse
//	@Failure		400		{object}	devsdk.ErrorsResponse
//	@Failure		401		{object}	devsdk.MessageResponse
//	@Failure		500		{object}	devsdk.MessageResponse
//	@Router			/api/posts [post].
func (h *PostsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req devsdk.PostRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, err := h.PostService.Create(r.Context(), userID, req.Text)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toPostResponse(p))
}

// HandleList returns every post, newest first.
//
//	@Summary		List posts
//	@Tags			Posts
//	@Security		TokenAuth
//	@Produce		json
//	@Success		200	{array}		devsdk.PostResponse
//	@Failure		401	{object}	devsdk.MessageResponse
//	@Failure		500	{object}	devsdk.MessageResponse
//	@Router			/api/posts [get].
func (h *PostsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ps, err := h.PostService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toPostResponses(ps))
}

// HandleGet returns one post.
//
//	@Summary		Get post
//	@Tags			Posts
//	@Security		TokenAuth
//	@Produce		json
//	@Param			id	path		string	true	"Post id"
//	@Success		200	{object}	devsdk.PostResponse
//	@Failure		401	{object}	devsdk.MessageResponse
//	@Failure		404	{object}	devsdk.MessageResponse	"Post not found"
//	@Failure		500	{object}	devsdk.MessageResponse
//	@Router			/api/posts/{id} [get].
func (h *PostsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.PostService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toPostResponse(p))
}

// HandleDelete removes one of the caller's posts.
//
//	@Summary		Delete post
//	@Tags			Posts
//	@Security		TokenAuth
//	@Produce		json
//	@Param			id	path		string	true	"Post id"
//	@Success		200	{object}	devsdk.MessageResponse	"Post removed"
//	@Failure		401	{object}	devsdk.MessageResponse	"Missing token or not the author"
//	@Failure		404	{object}	devsdk.MessageResponse	"Post not found"
//	@Failure		500	{object}	devsdk.MessageResponse
//	@Router			/api/posts/{id} [delete].
func (h *PostsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	if err := h.PostService.Delete(r.Context(), userID, r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteMsg(w, http.StatusOK, MsgPostRemoved)
}

// HandleLike likes a post.
//
//	@Summary		Like post
//	@Tags			Posts
//	@Security		TokenAuth
//	@Produce		json
//	@Param			id	path		string	true	"Post id"
//	@Success		200	{array}		devsdk.Like
//	@Failure		400	{object}	devsdk.MessageResponse	"Post already liked"
//	@Failure		401	{object}	devsdk.MessageResponse
//	@Failure		404	{object}	devsdk.MessageResponse	"Post not found"
//	@Failure		500	{object}	devsdk.MessageResponse
//	@Router			/api/posts/like/{id} [put].
func (h *PostsHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	likes, err := h.PostService.Like(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toLikes(likes))
}

// HandleUnlike takes the caller's like back.
//
//	@Summary		Unlike post
//	@Tags			Posts
//	@Security		TokenAuth
//	@Produce		json
//	@Param			id	path		string	true	"Post id"
//	@Success		200	{array}		devsdk.Like
//	@Failure		400	{object}	devsdk.MessageResponse	"Post has not been liked"
//	@Failure		401	{object}	devsdk.MessageResponse
//	@Failure		404	{object}	devsdk.MessageResponse	"Post not found"
//	@Failure		500	{object}	devsdk.MessageResponse
//	@Router			/api/posts/unlike/{id} [put].
func (h *PostsHandler) HandleUnlike(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	likes, err := h.PostService.Unlike(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toLikes(likes))
}

// HandleComment comments on a post.
//
//	@Summary		Comment on post
//	@Tags			Posts
//	@Security		TokenAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Post id"
//	@Param			request	body		devsdk.CommentRequest	true	"Comment text"
//	@Success		200		{array}		devsdk.Comment
//	@Failure		400		{object}	devsdk.ErrorsResponse
//	@Failure		401		{object}	devsdk.MessageResponse
//	@Failure		404		{object}	devsdk.MessageResponse	"Post not found"
//	@Failure		500		{object}	devsdk.MessageResponse
//	@Router			/api/posts/comment/{id} [post].
func (h *PostsHandler) HandleComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req devsdk.CommentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	comments, err := h.PostService.Comment(r.Context(), userID, r.PathValue("id"), req.Text)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toComments(comments))
}

// HandleDeleteComment removes one of the caller's comments.
//
//	@Summary		Delete comment
//	@Tags			Posts
//	@Security		TokenAuth
//	@Produce		json
//	@Param			id			path		string	true	"Post id"
//	@Param			comment_id	path		string	true	"Comment id"
//	@Success		200			{array}		devsdk.Comment
//	@Failure		401			{object}	devsdk.MessageResponse	"Missing token or not the comment author"
//	@Failure		404			{object}	devsdk.MessageResponse	"Post not found or comment does not exist"
//	@Failure		500			{object}	devsdk.MessageResponse
//	@Router			/api/posts/comment/{id}/{comment_id} [delete].
func (h *PostsHandler) HandleDeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	comments, err := h.PostService.DeleteComment(r.Context(), userID, r.PathValue("id"), r.PathValue("comment_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toComments(comments))
}
