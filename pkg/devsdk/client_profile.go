package devsdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListProfiles returns every profile. No authentication needed.
func (c *SDKClient) ListProfiles(ctx context.Context) ([]ProfileResponse, error) {
	var out []ProfileResponse
	if err := c.do(ctx, http.MethodGet, "/api/profile", "", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProfileByUser returns the profile of the given user.
func (c *SDKClient) GetProfileByUser(ctx context.Context, userID string) (*ProfileResponse, error) {
	var out ProfileResponse
	if err := c.do(ctx, http.MethodGet, "/api/profile/user/"+url.PathEscape(userID), "", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GitHubRepos lists the latest public repositories of a GitHub user.
func (c *SDKClient) GitHubRepos(ctx context.Context, username string) ([]Repo, error) {
	var out []Repo
	if err := c.do(ctx, http.MethodGet, "/api/profile/github/"+url.PathEscape(username), "", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// MyProfile returns the caller's profile.
func (s *Session) MyProfile(ctx context.Context) (*ProfileResponse, error) {
	var out ProfileResponse
	if err := s.do(ctx, http.MethodGet, "/api/profile/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveProfile creates the caller's profile or updates the fields set in req.
func (s *Session) SaveProfile(ctx context.Context, req ProfileRequest) (*ProfileResponse, error) {
	var out ProfileResponse
	if err := s.do(ctx, http.MethodPost, "/api/profile", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAccount removes the caller's posts, profile and user.
func (s *Session) DeleteAccount(ctx context.Context) error {
	return s.do(ctx, http.MethodDelete, "/api/profile", nil, nil)
}

// AddExperience prepends an experience entry to the caller's profile.
func (s *Session) AddExperience(ctx context.Context, req ExperienceRequest) (*ProfileResponse, error) {
	var out ProfileResponse
	if err := s.do(ctx, http.MethodPut, "/api/profile/experience", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveExperience deletes an experience entry by id.
func (s *Session) RemoveExperience(ctx context.Context, id string) (*ProfileResponse, error) {
	var out ProfileResponse
	if err := s.do(ctx, http.MethodDelete, "/api/profile/experience/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddEducation prepends an education entry to the caller's profile.
func (s *Session) AddEducation(ctx context.Context, req EducationRequest) (*ProfileResponse, error) {
	var out ProfileResponse
	if err := s.do(ctx, http.MethodPut, "/api/profile/education", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveEducation deletes an education entry by id.
func (s *Session) RemoveEducation(ctx context.Context, id string) (*ProfileResponse, error) {
	var out ProfileResponse
	if err := s.do(ctx, http.MethodDelete, "/api/profile/education/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
