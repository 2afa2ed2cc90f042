package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	pkgerrors "github.com/piresc/titipkan/internal/pkg/errors"
	"github.com/piresc/titipkan/internal/pkg/models"
)

// GetProfile retrieves the profile of the given user
func (u *UserUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.ErrNotAuthenticated
	}

	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return user, nil
}

// UpdateProfile applies profile edits (name, phone, avatar reference)
func (u *UserUC) UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.ErrNotAuthenticated
	}

	user, err := u.userRepo.UpdateProfile(ctx, userID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}
