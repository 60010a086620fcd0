package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/devconnector/internal/devconnector/domain"
	"github.com/aussiebroadwan/devconnector/internal/devconnector/store"
	"github.com/aussiebroadwan/devconnector/pkg/idx"
	"github.com/aussiebroadwan/devconnector/pkg/slogx"
)

// PostService owns posts and the likes and comments nested in them. Each
// mutation loads the whole post, checks who is asking and writes the whole
// post back; concurrent writers to one post race and the last one wins.
type PostService struct {
	Store store.Store
	Now   func() time.Time
}

func (s *PostService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Create publishes text stamped with the author's current name and avatar.
func (s *PostService) Create(ctx context.Context, userID, text string) (domain.Post, error) {
	author, err := s.author(ctx, userID)
	if err != nil {
		return domain.Post{}, err
	}

	now := s.now()
	p := domain.Post{
		ID:        idx.NewAt(now).String(),
		UserID:    author.ID,
		Text:      text,
		Name:      author.Name,
		Avatar:    author.Avatar,
		CreatedAt: now,
	}
	p.Normalize()

	if err := s.Store.Posts().CreatePost(ctx, p); err != nil {
		return domain.Post{}, fmt.Errorf("create post: %w", err)
	}

	slogx.FromContext(ctx).Info("post created", "post_id", p.ID, "user_id", userID)
	return p, nil
}

// List returns every post, newest first.
func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	return s.Store.Posts().ListPosts(ctx)
}

// Get returns one post, or ErrPostNotFound.
func (s *PostService) Get(ctx context.Context, postID string) (domain.Post, error) {
	if !validID(postID) {
		return domain.Post{}, ErrPostNotFound
	}

	p, err := s.Store.Posts().GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Post{}, ErrPostNotFound
		}
		return domain.Post{}, err
	}
	return p, nil
}

// Delete removes a post. Only its author may do so.
func (s *PostService) Delete(ctx context.Context, userID, postID string) error {
	p, err := s.Get(ctx, postID)
	if err != nil {
		return err
	}

	if p.UserID != userID {
		slogx.FromContext(ctx).Warn("post delete by non-owner", "post_id", postID, "user_id", userID)
		return ErrNotAuthorized
	}

	if err := s.Store.Posts().DeletePost(ctx, p.ID); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// Like adds the caller's like and returns the post's likes.
func (s *PostService) Like(ctx context.Context, userID, postID string) ([]domain.Like, error) {
	p, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	if p.LikedBy(userID) {
		return nil, ErrAlreadyLiked
	}

	p.AddLike(domain.Like{ID: idx.NewAt(s.now()).String(), UserID: userID})
	if err := s.save(ctx, p); err != nil {
		return nil, err
	}
	return p.Likes, nil
}

// Unlike removes the caller's like and returns the post's likes.
func (s *PostService) Unlike(ctx context.Context, userID, postID string) ([]domain.Like, error) {
	p, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !p.RemoveLike(userID) {
		return nil, ErrNotLiked
	}

	if err := s.save(ctx, p); err != nil {
		return nil, err
	}
	return p.Likes, nil
}

// Comment adds the caller's comment and returns the post's comments.
func (s *PostService) Comment(ctx context.Context, userID, postID, text string) ([]domain.Comment, error) {
	p, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	author, err := s.author(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	p.AddComment(domain.Comment{
		ID:        idx.NewAt(now).String(),
		UserID:    author.ID,
		Text:      text,
		Name:      author.Name,
		Avatar:    author.Avatar,
		CreatedAt: now,
	})

	if err := s.save(ctx, p); err != nil {
		return nil, err
	}
	return p.Comments, nil
}

// DeleteComment removes a comment. Only the comment's author may do so, the
// post's author has no say.
func (s *PostService) DeleteComment(ctx context.Context, userID, postID, commentID string) ([]domain.Comment, error) {
	p, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}

	c, ok := p.Comment(commentID)
	if !ok {
		return nil, ErrCommentNotFound
	}

	if c.UserID != userID {
		slogx.FromContext(ctx).Warn("comment delete by non-owner", "post_id", postID, "comment_id", commentID, "user_id", userID)
		return nil, ErrNotAuthorized
	}

	p.RemoveComment(commentID)
	if err := s.save(ctx, p); err != nil {
		return nil, err
	}
	return p.Comments, nil
}

func (s *PostService) author(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("load author: %w", err)
	}
	return u, nil
}

func (s *PostService) save(ctx context.Context, p domain.Post) error {
	if err := s.Store.Posts().SavePost(ctx, p); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Deleted between load and save.
			return ErrPostNotFound
		}
		return fmt.Errorf("save post: %w", err)
	}
	return nil
}
