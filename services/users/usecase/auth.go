package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	pkgerrors "github.com/piresc/titipkan/internal/pkg/errors"
	jwtpkg "github.com/piresc/titipkan/internal/pkg/jwt"
	"github.com/piresc/titipkan/internal/pkg/logger"
	"github.com/piresc/titipkan/internal/pkg/models"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new identity and profile with the requested role
func (u *UserUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if req.FullName == "" {
		return nil, fmt.Errorf("fullname is required")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("a valid email is required")
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	if !models.ValidRole(req.Role) {
		return nil, fmt.Errorf("role %q: %w", req.Role, pkgerrors.ErrInvalidRole)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		FullName:     req.FullName,
		Phone:        req.Phone,
		Role:         req.Role,
		PasswordHash: string(hash),
		IsActive:     true,
	}

	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return u.issueSession(user)
}

// Login authenticates a user. The role is requested at login time; when it
// differs from the stored profile role the profile is updated to match
// before the session is issued.
func (u *UserUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if !models.ValidRole(req.Role) {
		return nil, fmt.Errorf("role %q: %w", req.Role, pkgerrors.ErrInvalidRole)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if pkgerrors.Is(err, pkgerrors.ErrNotFound) {
			return nil, pkgerrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, pkgerrors.ErrInvalidCredentials
	}

	if user.Role != req.Role {
		// Role is a login-time parameter: the stored profile role is
		// overwritten to the requested one.
		if err := u.userRepo.UpdateRole(ctx, user.ID, req.Role); err != nil {
			return nil, fmt.Errorf("failed to update role at login: %w", err)
		}
		logger.Info("Login overwrote stored role",
			logger.String("user_id", user.ID.String()),
			logger.String("from", string(user.Role)),
			logger.String("to", string(req.Role)),
		)
		user.Role = req.Role
	}

	return u.issueSession(user)
}

// SwitchRole changes the active user's role without re-authentication
func (u *UserUC) SwitchRole(ctx context.Context, userID uuid.UUID, newRole models.Role) (*models.AuthResponse, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.ErrNotAuthenticated
	}
	if !models.ValidRole(newRole) {
		return nil, fmt.Errorf("role %q: %w", newRole, pkgerrors.ErrInvalidRole)
	}

	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.Role != newRole {
		if err := u.userRepo.UpdateRole(ctx, userID, newRole); err != nil {
			return nil, fmt.Errorf("failed to persist role switch: %w", err)
		}
		user.Role = newRole
	}

	return u.issueSession(user)
}

// issueSession generates a JWT for the user and assembles the auth response
func (u *UserUC) issueSession(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, user.Role, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		UserID:    user.ID.String(),
		Role:      user.Role,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}
