package http

import (
	"github.com/aussiebroadwan/devconnector/internal/devconnector/domain"
	"github.com/aussiebroadwan/devconnector/pkg/devsdk"
)

func toUserResponse(u domain.User) devsdk.UserResponse {
	return devsdk.UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Avatar: u.Avatar,
		Date:   u.CreatedAt,
	}
}

func toProfileResponse(p domain.Profile) devsdk.ProfileResponse {
	resp := devsdk.ProfileResponse{
		ID: p.ID,
		User: devsdk.ProfileOwner{
			ID:     p.Owner.ID,
			Name:   p.Owner.Name,
			Avatar: p.Owner.Avatar,
		},
		Company:        p.Company,
		Website:        p.Website,
		Location:       p.Location,
		Status:         p.Status,
		Skills:         append([]string{}, p.Skills...),
		Bio:            p.Bio,
		GitHubUsername: p.GitHubUsername,
		Experience:     make([]devsdk.Experience, 0, len(p.Experience)),
		Education:      make([]devsdk.Education, 0, len(p.Education)),
		Social: devsdk.Social{
			YouTube:   p.Social.YouTube,
			Twitter:   p.Social.Twitter,
			Facebook:  p.Social.Facebook,
			LinkedIn:  p.Social.LinkedIn,
			Instagram: p.Social.Instagram,
		},
		Date: p.CreatedAt,
	}
	if resp.User.ID == "" {
		resp.User.ID = p.UserID
	}

	for _, e := range p.Experience {
		resp.Experience = append(resp.Experience, devsdk.Experience{
			ID:          e.ID,
			Title:       e.Title,
			Company:     e.Company,
			Location:    e.Location,
			From:        e.From,
			To:          e.To,
			Current:     e.Current,
			Description: e.Description,
		})
	}
	for _, e := range p.Education {
		resp.Education = append(resp.Education, devsdk.Education{
			ID:           e.ID,
			School:       e.School,
			Degree:       e.Degree,
			FieldOfStudy: e.FieldOfStudy,
			From:         e.From,
			To:           e.To,
			Current:      e.Current,
			Description:  e.Description,
		})
	}
	return resp
}

func toProfileResponses(ps []domain.Profile) []devsdk.ProfileResponse {
	out := make([]devsdk.ProfileResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProfileResponse(p))
	}
	return out
}

func toLikes(ls []domain.Like) []devsdk.Like {
	out := make([]devsdk.Like, 0, len(ls))
	for _, l := range ls {
		out = append(out, devsdk.Like{ID: l.ID, User: l.UserID})
	}
	return out
}

func toComments(cs []domain.Comment) []devsdk.Comment {
	out := make([]devsdk.Comment, 0, len(cs))
	for _, c := range cs {
		out = append(out, devsdk.Comment{
			ID:     c.ID,
			User:   c.UserID,
			Text:   c.Text,
			Name:   c.Name,
			Avatar: c.Avatar,
			Date:   c.CreatedAt,
		})
	}
	return out
}

func toPostResponse(p domain.Post) devsdk.PostResponse {
	return devsdk.PostResponse{
		ID:       p.ID,
		User:     p.UserID,
		Text:     p.Text,
		Name:     p.Name,
		Avatar:   p.Avatar,
		Likes:    toLikes(p.Likes),
		Comments: toComments(p.Comments),
		Date:     p.CreatedAt,
	}
}

func toPostResponses(ps []domain.Post) []devsdk.PostResponse {
	out := make([]devsdk.PostResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, toPostResponse(p))
	}
	return out
}
