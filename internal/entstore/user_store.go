package entstore

import (
	"context"

	"github.com/google/uuid"

	"tracker-studio-api/ent"
	entgroup "tracker-studio-api/ent/group"
	entuser "tracker-studio-api/ent/user"
	"tracker-studio-api/internal/identity"
)

// UserStore implements identity.Store.
type UserStore struct {
	client *ent.Client
}

func (s *UserStore) Create(ctx context.Context, a *identity.Account) error {
	_, err := s.client.User.Create().
		SetID(a.ID).
		SetUsername(a.Username).
		SetDisplayName(a.DisplayName).
		SetPasswordHash(a.PasswordHash).
		SetIsAdmin(a.IsAdmin).
		SetIsActive(a.IsActive).
		SetCreatedAt(a.CreatedAt).
		SetUpdatedAt(a.UpdatedAt).
		Save(ctx)
	return mapErr(err)
}

func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*identity.Account, error) {
	row, err := s.client.User.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return accountFromRow(row), nil
}

func (s *UserStore) GetByUsername(ctx context.Context, username string) (*identity.Account, error) {
	row, err := s.client.User.Query().Where(entuser.Username(username)).Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return accountFromRow(row), nil
}

func (s *UserStore) Update(ctx context.Context, a *identity.Account) error {
	_, err := s.client.User.UpdateOneID(a.ID).
		SetDisplayName(a.DisplayName).
		SetPasswordHash(a.PasswordHash).
		SetIsAdmin(a.IsAdmin).
		SetIsActive(a.IsActive).
		SetUpdatedAt(a.UpdatedAt).
		Save(ctx)
	return mapErr(err)
}

func accountFromRow(row *ent.User) *identity.Account {
	return &identity.Account{
		ID:           row.ID,
		Username:     row.Username,
		DisplayName:  row.DisplayName,
		PasswordHash: row.PasswordHash,
		IsAdmin:      row.IsAdmin,
		IsActive:     row.IsActive,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

// GroupDirectory implements perm.GroupDirectory and identity.GroupStore over
// the user/group edge.
type GroupDirectory struct {
	client *ent.Client
}

// ResolveGroupsFor returns the ids of every group the principal belongs to.
func (s *GroupDirectory) ResolveGroupsFor(ctx context.Context, principalID uuid.UUID) ([]uuid.UUID, error) {
	return s.client.User.Query().
		Where(entuser.ID(principalID)).
		QueryGroups().
		IDs(ctx)
}

// Create makes a new group.
func (s *GroupDirectory) Create(ctx context.Context, name string) (uuid.UUID, error) {
	row, err := s.client.Group.Create().SetName(name).Save(ctx)
	if err != nil {
		return uuid.Nil, mapErr(err)
	}
	return row.ID, nil
}

// AddMember adds a user to a group.
func (s *GroupDirectory) AddMember(ctx context.Context, groupID, userID uuid.UUID) error {
	err := s.client.User.UpdateOneID(userID).AddGroupIDs(groupID).Exec(ctx)
	return mapErr(err)
}

// RemoveMember removes a user from a group.
func (s *GroupDirectory) RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error {
	err := s.client.User.UpdateOneID(userID).RemoveGroupIDs(groupID).Exec(ctx)
	return mapErr(err)
}

// ListMembers returns the member ids of a group.
func (s *GroupDirectory) ListMembers(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	return s.client.Group.Query().
		Where(entgroup.ID(groupID)).
		QueryMembers().
		IDs(ctx)
}
