package http

import (
	"net/http"

	"github.com/aussiebroadwan/devconnector/internal/devconnector/domain"
	"github.com/aussiebroadwan/devconnector/internal/devconnector/service"
	"github.com/aussiebroadwan/devconnector/pkg/devsdk"
	"github.com/aussiebroadwan/devconnector/pkg/httpx"
)

type ProfileHandler struct {
	ProfileService *service.ProfileService
	GitHubService  *service.GitHubService
}

// HandleMine returns the caller's profile.
//
//	@Summary		My profile
//	@Tags			Profile
//	@Security		TokenAuth
//	@Produce		json
//	@Success		200	{object}	devsdk.ProfileResponse
//	@Failure		400	{object}	devsdk.MessageResponse	"The caller has no profile"
//	@Failure		401	{object}	devsdk.MessageResponse
//	@Failure		500	{object}	devsdk.MessageResponse
//	@Router			/api/profile/me [get].
func (h *ProfileHandler) HandleMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	p, err := h.ProfileService.Mine(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProfileResponse(p))
}

// HandleSave creates or updates the caller's profile.
//
//	@Summary		Create or update profile
//	@Description	Fields left out keep their stored value. Skills is a comma separated list.
//	@Tags			Profile
//	@Security		TokenAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		devsdk.ProfileRequest	true	"Profile fields"
//	@Success		200		{object}	devsdk.ProfileResponse
//	@Failure		400		{object}	devsdk.ErrorsResponse	"Status or skills missing"
//	@Failure		401		{object}	devsdk.MessageResponse
//	@Failure		500		{object}	devsdk.MessageResponse
//	@Router			/api/profile [post].
func (h *ProfileHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req devsdk.ProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	update := domain.ProfileUpdate{
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		Status:         req.Status,
		GitHubUsername: req.GitHubUsername,
		YouTube:        req.YouTube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		LinkedIn:       req.LinkedIn,
		Instagram:      req.Instagram,
	}
	if req.Skills != nil {
		skills := domain.ParseSkills(*req.Skills)
		update.Skills = &skills
	}

	p, err := h.ProfileService.Save(r.Context(), userID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProfileResponse(p))
}

// HandleList returns every profile.
//
//	@Summary		List profiles
//	@Tags			Profile
//	@Produce		json
//	@Success		200	{array}		devsdk.ProfileResponse
//	@Failure		500	{object}	devsdk.MessageResponse
//	@Router			/api/profile [get].
func (h *ProfileHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ps, err := h.ProfileService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProfileResponses(ps))
}

// HandleByUser returns the profile of the given user.
//
//	@Summary		Profile by user
//	@Tags			Profile
//	@Produce		json
//	@Param			user_id	path		string	true	"User id"
//	@Success		200		{object}	devsdk.ProfileResponse
//	@Failure		404		{object}	devsdk.MessageResponse	"Profile not found"
//	@Failure		500		{object}	devsdk.MessageResponse
//	@Router			/api/profile/user/{user_id} [get].
func (h *ProfileHandler) HandleByUser(w http.ResponseWriter, r *http.Request) {
	p, err := h.ProfileService.ByUser(r.Context(), r.PathValue("user_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProfileResponse(p))
}

// HandleDeleteAccount removes the caller's posts, profile and user.
//
//	@Summary		Delete account
//	@Tags			Profile
//	@Security		TokenAuth
//	@Produce		json
//	@Success		200	{object}	devsdk.MessageResponse	"User deleted"
//	@Failure		401	{object}	devsdk.MessageResponse
//	@Failure		500	{object}	devsdk.MessageResponse
//	@Router			/api/profile [delete].
func (h *ProfileHandler) HandleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	if err := h.ProfileService.DeleteAccount(r.Context(), userID); err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteMsg(w, http.StatusOK, MsgUserDeleted)
}

// HandleAddExperience prepends an experience entry.
//
//	@Summary		Add experience
//	@Tags			Profile
//	@Security		TokenAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		devsdk.ExperienceRequest	true	"Experience entry"
//	@Success		200		{object}	devsdk.ProfileResponse
//	@Failure		400		{object}	devsdk.ErrorsResponse
//	@Failure		401		{object}	devsdk.MessageResponse
//	@Failure		500		{object}	devsdk.MessageResponse
//	@Router			/api/profile/experience [put].
func (h *ProfileHandler) HandleAddExperience(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req devsdk.ExperienceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	from, _ := parseDate(req.From)
	p, err := h.ProfileService.AddExperience(r.Context(), userID, domain.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        from,
		To:          parseOptionalDate(req.To),
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProfileResponse(p))
}

// HandleRemoveExperience drops an experience entry. An unknown id leaves
// the profile as it was.
//
//	@Summary		Remove experience
//	@Tags			Profile
//	@Security		TokenAuth
//	@Produce		json
//	@Param			exp_id	path		string	true	"Experience id"
//	@Success		200		{object}	devsdk.ProfileResponse
//	@Failure		401		{object}	devsdk.MessageResponse
//	@Failure		500		{object}	devsdk.MessageResponse
//	@Router			/api/profile/experience/{exp_id} [delete].
func (h *ProfileHandler) HandleRemoveExperience(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	p, err := h.ProfileService.RemoveExperience(r.Context(), userID, r.PathValue("exp_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProfileResponse(p))
}

// HandleAddEducation prepends an education entry.
//
//	@Summary		Add education
//	@Tags			Profile
//	@Security		TokenAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		devsdk.EducationRequest	true	"Education entry"
//	@Success		200		{object}	devsdk.ProfileResponse
//	@Failure		400		{object}	devsdk.ErrorsResponse
//	@Failure		401		{object}	devsdk.MessageResponse
//	@Failure		500		{object}	devsdk.MessageResponse
//	@Router			/api/profile/education [put].
func (h *ProfileHandler) HandleAddEducation(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req devsdk.EducationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	from, _ := parseDate(req.From)
	p, err := h.ProfileService.AddEducation(r.Context(), userID, domain.Education{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         from,
		To:           parseOptionalDate(req.To),
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProfileResponse(p))
}

// HandleRemoveEducation drops an education entry.
//
//	@Summary		Remove education
//	@Tags			Profile
//	@Security		TokenAuth
//	@Produce		json
//	@Param			edu_id	path		string	true	"Education id"
//	@Success		200		{object}	devsdk.ProfileResponse
//	@Failure		401		{object}	devsdk.MessageResponse
//	@Failure		500		{object}	devsdk.MessageResponse
//	@Router			/api/profile/education/{edu_id} [delete].
func (h *ProfileHandler) HandleRemoveEducation(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	p, err := h.ProfileService.RemoveEducation(r.Context(), userID, r.PathValue("edu_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProfileResponse(p))
}

// HandleGitHubRepos proxies a user's latest GitHub repositories.
//
//	@Summary		GitHub repositories
//	@Description	The five most recently created public repositories of a GitHub user.
//	@Tags			Profile
//	@Produce		json
//	@Param			username	path		string	true	"GitHub username"
//	@Success		200			{array}		devsdk.Repo
//	@Failure		404			{object}	devsdk.MessageResponse	"No Github profile found"
//	@Failure		500			{object}	devsdk.MessageResponse
//	@Router			/api/profile/github/{username} [get].
func (h *ProfileHandler) HandleGitHubRepos(w http.ResponseWriter, r *http.Request) {
	repos, err := h.GitHubService.ListRepos(r.Context(), r.PathValue("username"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, repos)
}
