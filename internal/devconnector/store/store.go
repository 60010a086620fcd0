package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/devconnector/internal/devconnector/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories per collection; transactions
// hand out a Tx that exposes the same repositories bound to the transaction.
type Store interface {
	Users() Users
	Profiles() Profiles
	Posts() Posts

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction: committed when fn returns
	// nil, rolled back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail looks a user up by normalized email, used by login
	// and the registration duplicate check.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// A taken email yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// DeleteUser removes the user; the profile row cascades.
	DeleteUser(ctx context.Context, id string) error
}

type Profiles interface {
	// GetProfileByUserID returns the user's profile with Owner filled in.
	GetProfileByUserID(ctx context.Context, userID string) (domain.Profile, error)

	// ListProfiles returns every profile with Owner filled in, oldest first.
	ListProfiles(ctx context.Context) ([]domain.Profile, error)

	// SaveProfile writes the whole document, inserting it when the user has
	// no profile yet. Last write wins.
	SaveProfile(ctx context.Context, p domain.Profile) error

	// DeleteProfileByUserID removes the user's profile, if any.
	DeleteProfileByUserID(ctx context.Context, userID string) error
}

type Posts interface {
	GetPostByID(ctx context.Context, id string) (domain.Post, error)

	// ListPosts returns every post, newest first.
	ListPosts(ctx context.Context) ([]domain.Post, error)

	CreatePost(ctx context.Context, p domain.Post) error

	// SavePost rewrites the whole document of an existing post.
	SavePost(ctx context.Context, p domain.Post) error

	DeletePost(ctx context.Context, id string) error

	// DeletePostsByUserID removes every post the user authored.
	DeletePostsByUserID(ctx context.Context, userID string) error
}
