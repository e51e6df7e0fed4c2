package domain

import (
	"context"
	"fmt"

	"github.com/tarun4279/av-board-api/internal/availability"
	"github.com/tarun4279/av-board-api/internal/entities"
	"github.com/tarun4279/av-board-api/pkg/ident"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CreateUser registers a directory user with an optional initial tag set.
// A duplicate email surfaces as entities.ErrEmailTaken.
func (u *Usecase) CreateUser(ctx context.Context, in entities.NewUser) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if err := validate.Var(in.Email, "required,email"); err != nil {
		return nil, fmt.Errorf("%w: email must be a valid address", entities.ErrInvalidArgument)
	}

	id, err := ident.Generate("usr")
	if err != nil {
		return nil, err
	}

	tags := availability.NormalizeTags(in.Tags)
	res, err := u.repo.CreateUser(ctx, entities.User{
		ID:    id,
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
	}, tags)
	if err != nil {
		return nil, err
	}
	u.log.Infow("user registered", "user_id", id)
	return res, nil
}

// User returns a user with tags and busy slots by id.
func (u *Usecase) User(ctx context.Context, userID string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetUser(ctx, userID)
}

// ListUsers returns every directory user.
func (u *Usecase) ListUsers(ctx context.Context) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListUsers(ctx)
}

// UpdateUser applies a partial profile update; a provided tag list
// replaces the association set.
func (u *Usecase) UpdateUser(ctx context.Context, userID string, patch entities.UserPatch) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", entities.ErrInvalidArgument)
	}
	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", entities.ErrInvalidArgument)
	}
	if patch.Name != nil && *patch.Name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", entities.ErrInvalidArgument)
	}
	if patch.Email != nil {
		if err := validate.Var(*patch.Email, "required,email"); err != nil {
			return nil, fmt.Errorf("%w: email must be a valid address", entities.ErrInvalidArgument)
		}
	}
	if patch.Tags != nil {
		normalized := availability.NormalizeTags(*patch.Tags)
		patch.Tags = &normalized
	}

	return u.repo.UpdateUser(ctx, userID, patch)
}

// DeleteUser removes a user together with its tag associations and busy slots.
func (u *Usecase) DeleteUser(ctx context.Context, userID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return fmt.Errorf("%w: user_id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteUser(ctx, userID)
}
