// Package identity defines accounts and group membership. Accounts are the
// principals behind every permission decision; groups exist solely to be the
// subject of sharing grants.
package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Account is a registered user.
type Account struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"display_name,omitempty"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Store persists accounts. Get lookups return (nil, nil) when absent; Create
// must surface a duplicate username as a ConflictError.
type Store interface {
	Create(ctx context.Context, a *Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)
	GetByUsername(ctx context.Context, username string) (*Account, error)
	Update(ctx context.Context, a *Account) error
}

// GroupStore manages grant-subject groups and their membership.
type GroupStore interface {
	Create(ctx context.Context, name string) (uuid.UUID, error)
	AddMember(ctx context.Context, groupID, userID uuid.UUID) error
	RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error
	ListMembers(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error)
}
