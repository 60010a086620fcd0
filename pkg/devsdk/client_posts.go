package devsdk

import (
	"context"
	"net/http"
	"net/url"
)

// CreatePost publishes a post as the caller.
func (s *Session) CreatePost(ctx context.Context, text string) (*PostResponse, error) {
	var out PostResponse
	if err := s.do(ctx, http.MethodPost, "/api/posts", PostRequest{Text: text}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPosts returns all posts, newest first.
func (s *Session) ListPosts(ctx context.Context) ([]PostResponse, error) {
	var out []PostResponse
	if err := s.do(ctx, http.MethodGet, "/api/posts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPost returns one post.
func (s *Session) GetPost(ctx context.Context, id string) (*PostResponse, error) {
	var out PostResponse
	if err := s.do(ctx, http.MethodGet, "/api/posts/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePost removes a post the caller owns.
func (s *Session) DeletePost(ctx context.Context, id string) error {
	return s.do(ctx, http.MethodDelete, "/api/posts/"+url.PathEscape(id), nil, nil)
}

// Like likes a post and returns its likes.
func (s *Session) Like(ctx context.Context, id string) ([]Like, error) {
	var out []Like
	if err := s.do(ctx, http.MethodPut, "/api/posts/like/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Unlike withdraws the caller's like and returns the remaining likes.
func (s *Session) Unlike(ctx context.Context, id string) ([]Like, error) {
	var out []Like
	if err := s.do(ctx, http.MethodPut, "/api/posts/unlike/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Comment adds a comment and returns the post's comments.
func (s *Session) Comment(ctx context.Context, postID, text string) ([]Comment, error) {
	var out []Comment
	if err := s.do(ctx, http.MethodPost, "/api/posts/comment/"+url.PathEscape(postID), CommentRequest{Text: text}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteComment removes one of the caller's comments and returns the rest.
func (s *Session) DeleteComment(ctx context.Context, postID, commentID string) ([]Comment, error) {
	var out []Comment
	path := "/api/posts/comment/" + url.PathEscape(postID) + "/" + url.PathEscape(commentID)
	if err := s.do(ctx, http.MethodDelete, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
