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

// ProfileService manages the single profile each user may own. Every
// operation acts on the caller's own profile, looked up by their id, so
// ownership follows from the lookup itself.
type ProfileService struct {
	Store store.Store
	Now   func() time.Time
}

func (s *ProfileService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Mine returns the caller's profile, or ErrNoProfile.
func (s *ProfileService) Mine(ctx context.Context, userID string) (domain.Profile, error) {
	p, err := s.Store.Profiles().GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Profile{}, ErrNoProfile
		}
		return domain.Profile{}, err
	}
	return p, nil
}

// ByUser returns another user's profile, or ErrProfileNotFound.
func (s *ProfileService) ByUser(ctx context.Context, userID string) (domain.Profile, error) {
	if !validID(userID) {
		return domain.Profile{}, ErrProfileNotFound
	}

	p, err := s.Store.Profiles().GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Profile{}, ErrProfileNotFound
		}
		return domain.Profile{}, err
	}
	return p, nil
}

// List returns every profile, oldest first.
func (s *ProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	return s.Store.Profiles().ListProfiles(ctx)
}

// Save creates the caller's profile or merges u into the existing one.
func (s *ProfileService) Save(ctx context.Context, userID string, u domain.ProfileUpdate) (domain.Profile, error) {
	p, err := s.Store.Profiles().GetProfileByUserID(ctx, userID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		if _, err := s.Store.Users().GetUserByID(ctx, userID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Profile{}, ErrUserNotFound
			}
			return domain.Profile{}, fmt.Errorf("load user: %w", err)
		}
		now := s.now()
		p = domain.Profile{
			ID:        idx.NewAt(now).String(),
			UserID:    userID,
			CreatedAt: now,
		}
		slogx.FromContext(ctx).Info("profile created", "user_id", userID, "profile_id", p.ID)
	case err != nil:
		return domain.Profile{}, fmt.Errorf("load profile: %w", err)
	}

	p.Apply(u)
	return s.persist(ctx, p)
}

// DeleteAccount removes the caller's posts, profile and user together.
// Likes and comments they left on other users' posts stay.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID string) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Posts().DeletePostsByUserID(ctx, userID); err != nil {
			return fmt.Errorf("delete posts: %w", err)
		}
		if err := tx.Profiles().DeleteProfileByUserID(ctx, userID); err != nil {
			return fmt.Errorf("delete profile: %w", err)
		}
		if err := tx.Users().DeleteUser(ctx, userID); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("account deleted", "user_id", userID)
	return nil
}

// AddExperience prepends e to the caller's profile.
func (s *ProfileService) AddExperience(ctx context.Context, userID string, e domain.Experience) (domain.Profile, error) {
	p, err := s.Mine(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}

	e.ID = idx.NewAt(s.now()).String()
	p.AddExperience(e)
	return s.persist(ctx, p)
}

// RemoveExperience drops the entry with id expID. An unknown id changes
// nothing but the profile is still written back and returned.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, expID string) (domain.Profile, error) {
	p, err := s.Mine(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}

	if !p.RemoveExperience(expID) {
		slogx.FromContext(ctx).Debug("experience not on profile", "exp_id", expID)
	}
	return s.persist(ctx, p)
}

// AddEducation prepends e to the caller's profile.
func (s *ProfileService) AddEducation(ctx context.Context, userID string, e domain.Education) (domain.Profile, error) {
	p, err := s.Mine(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}

	e.ID = idx.NewAt(s.now()).String()
	p.AddEducation(e)
	return s.persist(ctx, p)
}

// RemoveEducation mirrors RemoveExperience.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID, eduID string) (domain.Profile, error) {
	p, err := s.Mine(ctx, userID)
	if err != nil {
		return domain.Profile{}, err
	}

	if !p.RemoveEducation(eduID) {
		slogx.FromContext(ctx).Debug("education not on profile", "edu_id", eduID)
	}
	return s.persist(ctx, p)
}

// persist writes p and reads it back so the owner fields are filled in.
func (s *ProfileService) persist(ctx context.Context, p domain.Profile) (domain.Profile, error) {
	if err := s.Store.Profiles().SaveProfile(ctx, p); err != nil {
		return domain.Profile{}, fmt.Errorf("save profile: %w", err)
	}

	saved, err := s.Store.Profiles().GetProfileByUserID(ctx, p.UserID)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("reload profile: %w", err)
	}
	return saved, nil
}
