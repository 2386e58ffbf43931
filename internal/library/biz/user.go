package biz

import (
	"context"

	"gorm.io/gorm"

	"github.com/luminalib/luminalib/internal/library/store"
	"github.com/luminalib/luminalib/internal/model"
	"github.com/luminalib/luminalib/internal/pkg/jsonutil"
	"github.com/luminalib/luminalib/pkg/errors"
)

// UserService handles user administration and preferences.
type UserService struct {
	store store.Factory
}

// NewUserService creates the user service.
func NewUserService(s store.Factory) *UserService {
	return &UserService{store: s}
}

// List returns all users. Admin only, enforced at the router.
func (s *UserService) List(ctx context.Context) ([]*model.User, error) {
	users, err := s.store.Users().List(ctx)
	if err != nil {
		return nil, errors.ErrDatabase.WithCause(err)
	}
	return users, nil
}

// SetRole updates a user's role.
func (s *UserService) SetRole(ctx context.Context, userID uint64, role string) (*model.User, error) {
	if role != model.RoleMember && role != model.RoleAdmin {
		return nil, errors.ErrInvalidParam.WithMessagef("invalid role %q", role)
	}

	user, err := s.store.Users().Get(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, errors.ErrDatabase.WithCause(err)
	}

	user.Role = role
	if err := s.store.Users().Update(ctx, user); err != nil {
		return nil, errors.ErrDatabase.WithCause(err)
	}
	return user, nil
}

// GetPreferences returns a user's preference blob. Users without a
// stored row get an empty object.
func (s *UserService) GetPreferences(ctx context.Context, userID uint64) (map[string]interface{}, error) {
	pref, err := s.store.Preferences().Get(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return map[string]interface{}{}, nil
		}
		return nil, errors.ErrDatabase.WithCause(err)
	}

	data := map[string]interface{}{}
	if pref.Data != "" {
		if err := jsonutil.UnmarshalString(pref.Data, &data); err != nil {
			return nil, errors.ErrInternal.WithCause(err)
		}
	}
	return data, nil
}

// UpdatePreferences replaces a user's preference blob.
func (s *UserService) UpdatePreferences(ctx context.Context, userID uint64, data map[string]interface{}) (map[string]interface{}, error) {
	raw, err := jsonutil.MarshalString(data)
	if err != nil {
		return nil, errors.ErrInvalidParam.WithCause(err)
	}

	if err := s.store.Preferences().Upsert(ctx, &model.UserPreference{
		UserID: userID,
		Data:   raw,
	}); err != nil {
		return nil, errors.ErrDatabase.WithCause(err)
	}
	return data, nil
}

// PreferredGenres extracts the preferred_genres list from a user's
// preferences. Missing or malformed entries yield an empty list.
func (s *UserService) PreferredGenres(ctx context.Context, userID uint64) ([]string, error) {
	prefs, err := s.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	raw, ok := prefs["preferred_genres"]
	if !ok {
		return nil, nil
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, nil
	}

	genres := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			genres = append(genres, s)
		}
	}
	return genres, nil
}
