package devsdk

import "time"

// ============================================================================
// Error bodies
// ============================================================================

// MessageResponse is the single-message body used for most failures and for
// a few confirmations ("Post removed", "User deleted").
type MessageResponse struct {
	Msg string `json:"msg" example:"Post not found"`
}

// ErrorItem is one entry of an itemized error body.
type ErrorItem struct {
	Msg      string `json:"msg" example:"Please include a valid email"`
	Param    string `json:"param,omitempty" example:"email"`
	Location string `json:"location,omitempty" example:"body"`
	Value    any    `json:"value,omitempty"`
}

// ErrorsResponse is the itemized error body returned by validation failures
// and by registration/login rejections.
type ErrorsResponse struct {
	Errors []ErrorItem `json:"errors"`
}

// ============================================================================
// Auth
// ============================================================================

// RegisterRequest is the body of POST /api/users.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required" msg:"Name is required"`
	Email    string `json:"email" validate:"required,email" msg:"Please include a valid email"`
	Password string `json:"password" validate:"min=6" msg:"Please enter a password with 6 or more characters" redact:"true"`
}

// LoginRequest is the body of POST /api/auth.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" msg:"Please include a valid email"`
	Password string `json:"password" validate:"required" msg:"Password is required" redact:"true"`
}

// TokenResponse carries a freshly issued bearer token. Present it in the
// x-auth-token header.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse is a user without the password hash.
type UserResponse struct {
	ID     string    `json:"_id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Avatar string    `json:"avatar"`
	Date   time.Time `json:"date"`
}

// ============================================================================
// Profiles
// ============================================================================

// ProfileRequest is the body of POST /api/profile. Every field is optional
// except status and skills; a field left out of the body keeps its stored
// value, a field sent (even empty) replaces it. Skills is a comma separated
// list.
type ProfileRequest struct {
	Company        *string `json:"company,omitempty"`
	Website        *string `json:"website,omitempty"`
	Location       *string `json:"location,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	Status         *string `json:"status,omitempty" validate:"required,min=1" msg:"Status is required"`
	GitHubUsername *string `json:"githubusername,omitempty"`
	Skills         *string `json:"skills,omitempty" validate:"required,min=1" msg:"Skills is required"`

	YouTube   *string `json:"youtube,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
	Facebook  *string `json:"facebook,omitempty"`
	LinkedIn  *string `json:"linkedin,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
}

// ExperienceRequest is the body of PUT /api/profile/experience. Dates are
// YYYY-MM-DD or RFC 3339.
type ExperienceRequest struct {
	Title       string `json:"title" validate:"required" msg:"Title is required"`
	Company     string `json:"company" validate:"required" msg:"Company is required"`
	Location    string `json:"location,omitempty"`
	From        string `json:"from" validate:"required,date" msg:"From date is required"`
	To          string `json:"to,omitempty" validate:"omitempty,date" msg:"To date is invalid"`
	Current     bool   `json:"current,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationRequest is the body of PUT /api/profile/education.
type EducationRequest struct {
	School       string `json:"school" validate:"required" msg:"School is required"`
	Degree       string `json:"degree" validate:"required" msg:"Degree is required"`
	FieldOfStudy string `json:"fieldofstudy" validate:"required" msg:"Field of study is required"`
	From         string `json:"from" validate:"required,date" msg:"From date is required"`
	To           string `json:"to,omitempty" validate:"omitempty,date" msg:"To date is invalid"`
	Current      bool   `json:"current,omitempty"`
	Description  string `json:"description,omitempty"`
}

// ProfileOwner is the user a profile belongs to.
type ProfileOwner struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type Experience struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

type Education struct {
	ID           string     `json:"_id"`
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

// ProfileResponse is a profile with its owner's name and avatar filled in.
type ProfileResponse struct {
	ID             string       `json:"_id"`
	User           ProfileOwner `json:"user"`
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
	Date           time.Time    `json:"date"`
}

// Repo is one entry of GET /api/profile/github/{username}, passed through
// from the upstream API.
type Repo struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"`
	Description     string    `json:"description"`
	HTMLURL         string    `json:"html_url"`
	Language        string    `json:"language"`
	StargazersCount int       `json:"stargazers_count"`
	WatchersCount   int       `json:"watchers_count"`
	ForksCount      int       `json:"forks_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// ============================================================================
// Posts
// ============================================================================

// PostRequest is the body of POST /api/posts.
type PostRequest struct {
	Text string `json:"text" validate:"required" msg:"Text is required"`
}

// CommentRequest is the body of POST /api/posts/comment/{id}.
type CommentRequest struct {
	Text string `json:"text" validate:"required" msg:"Text is required"`
}

type Like struct {
	ID   string `json:"_id"`
	User string `json:"user"`
}

type Comment struct {
	ID     string    `json:"_id"`
	User   string    `json:"user"`
	Text   string    `json:"text"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
	Date   time.Time `json:"date"`
}

type PostResponse struct {
	ID       string    `json:"_id"`
	User     string    `json:"user"`
	Text     string    `json:"text"`
	Name     string    `json:"name"`
	Avatar   string    `json:"avatar"`
	Likes    []Like    `json:"likes"`
	Comments []Comment `json:"comments"`
	Date     time.Time `json:"date"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of the service's dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}
