package domain

import (
	"slices"
	"strings"
	"time"
)

// Profile is stored as a single document per user. Owner is not part of the
// document; stores fill it from the users table on read.
type Profile struct {
	ID             string       `json:"id"`
	UserID         string       `json:"user"`
	Company        string       `json:"company,omitempty"`
	Website        string       `json:"website,omitempty"`
	Location       string       `json:"location,omitempty"`
	Status         string       `json:"status"`
	Skills         []string     `json:"skills"`
	Bio            string       `json:"bio,omitempty"`
	GitHubUsername string       `json:"githubusername,omitempty"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Social         Social       `json:"social"`
	CreatedAt      time.Time    `json:"date"`

	Owner Owner `json:"-"`
}

// Owner is the public face of a profile's user.
type Owner struct {
	ID     string
	Name   string
	Avatar string
}

type Experience struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

type Education struct {
	ID           string     `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

type Social struct {
	YouTube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// ProfileUpdate is a merge patch: nil fields are left alone, non-nil fields
// overwrite, even with the empty value.
type ProfileUpdate struct {
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	Status         *string
	GitHubUsername *string
	Skills         *[]string

	YouTube   *string
	Twitter   *string
	Facebook  *string
	LinkedIn  *string
	Instagram *string
}

// Apply merges u into p field by field. Social links merge one by one, so
// updating twitter keeps youtube.
func (p *Profile) Apply(u ProfileUpdate) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	set(&p.Company, u.Company)
	set(&p.Website, u.Website)
	set(&p.Location, u.Location)
	set(&p.Bio, u.Bio)
	set(&p.Status, u.Status)
	set(&p.GitHubUsername, u.GitHubUsername)
	if u.Skills != nil {
		p.Skills = slices.Clone(*u.Skills)
	}

	set(&p.Social.YouTube, u.YouTube)
	set(&p.Social.Twitter, u.Twitter)
	set(&p.Social.Facebook, u.Facebook)
	set(&p.Social.LinkedIn, u.LinkedIn)
	set(&p.Social.Instagram, u.Instagram)
}

// ParseSkills splits a comma separated list, trimming each entry and
// dropping empty ones.
func ParseSkills(s string) []string {
	out := []string{}
	for part := range strings.SplitSeq(s, ",") {
		if skill := strings.TrimSpace(part); skill != "" {
			out = append(out, skill)
		}
	}
	return out
}

// AddExperience puts e first, newest entries lead the list.
func (p *Profile) AddExperience(e Experience) {
	p.Experience = slices.Insert(p.Experience, 0, e)
}

// RemoveExperience drops the entry with the given id. It reports whether an
// entry matched; an unknown id leaves the list as it was.
func (p *Profile) RemoveExperience(id string) bool {
	i := slices.IndexFunc(p.Experience, func(e Experience) bool { return e.ID == id })
	if i < 0 {
		return false
	}
	p.Experience = slices.Delete(p.Experience, i, i+1)
	return true
}

// AddEducation puts e first.
func (p *Profile) AddEducation(e Education) {
	p.Education = slices.Insert(p.Education, 0, e)
}

// RemoveEducation drops the entry with the given id, reporting whether one
// matched.
func (p *Profile) RemoveEducation(id string) bool {
	i := slices.IndexFunc(p.Education, func(e Education) bool { return e.ID == id })
	if i < 0 {
		return false
	}
	p.Education = slices.Delete(p.Education, i, i+1)
	return true
}

// Normalize replaces nil lists with empty ones so documents always encode
// lists as [].
func (p *Profile) Normalize() {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Experience == nil {
		p.Experience = []Experience{}
	}
	if p.Education == nil {
		p.Education = []Education{}
	}
}
