package services

import (
	"carehub/database"
	"carehub/models"
	"context"
	"errors"
	"fmt"
)

// UserService handles profile and account administration
type UserService struct {
	users UserRepository
}

func NewUserService(users UserRepository) *UserService {
	return &UserService{users: users}
}

// Get retrieves a user by ID
func (us *UserService) Get(ctx context.Context, userID int64) (*models.User, error) {
	user, err := us.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile changes the caller's email and full name
func (us *UserService) UpdateProfile(ctx context.Context, userID int64, req models.UpdateProfileRequest) (*models.User, error) {
	ok, err := us.users.UpdateUserProfile(ctx, userID, req.Email, req.FullName)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}
	return us.Get(ctx, userID)
}

// ChangePassword replaces the caller's password after checking the current one
func (us *UserService) ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error {
	user, err := us.Get(ctx, userID)
	if err != nil {
		return err
	}

	ok, err := checkPassword(user.PasswordHash, req.CurrentPassword)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: current password is incorrect", ErrInvalidInput)
	}

	hash, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	updated, err := us.users.UpdateUserPassword(ctx, userID, hash)
	if err != nil {
		return err
	}
	if !updated {
		return ErrUserNotFound
	}
	return nil
}

// List returns every user, optionally only those with role
func (us *UserService) List(ctx context.Context, role models.Role) ([]models.User, error) {
	if role != "" && !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}
	return us.users.ListUsers(ctx, role)
}

// Create adds an account with any role
func (us *UserService) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: hash,
		Role:         req.Role,
		Status:       models.UserStatusActive,
	}
	if err := us.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, database.ErrUniqueViolation) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return user, nil
}

// SetStatus suspends or reactivates an account. Admins cannot suspend themselves.
func (us *UserService) SetStatus(ctx context.Context, caller models.Principal, userID int64, status models.UserStatus) (*models.User, error) {
	if userID == caller.ID && status != models.UserStatusActive {
		return nil, fmt.Errorf("%w: cannot suspend your own account", ErrInvalidInput)
	}

	ok, err := us.users.UpdateUserStatus(ctx, userID, status)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}
	return us.Get(ctx, userID)
}

// SetRole changes an account's role. Tokens already issued keep the old role until they expire.
func (us *UserService) SetRole(ctx context.Context, caller models.Principal, userID int64, role models.Role) (*models.User, error) {
	if userID == caller.ID && role != models.RoleAdmin {
		return nil, fmt.Errorf("%w: cannot remove your own admin role", ErrInvalidInput)
	}

	ok, err := us.users.UpdateUserRole(ctx, userID, role)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}
	return us.Get(ctx, userID)
}

// Delete removes another user's account and everything it owns
func (us *UserService) Delete(ctx context.Context, caller models.Principal, userID int64) error {
	if userID == caller.ID {
		return fmt.Errorf("%w: cannot delete your own account", ErrInvalidInput)
	}

	ok, err := us.users.DeleteUser(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserNotFound
	}
	return nil
}
