package service

import (
	"context"
	"errors"

	"github.com/rarango1992/GPAC/internal/common"
	"github.com/rarango1992/GPAC/internal/common/security"
	"github.com/rarango1992/GPAC/internal/domain/model"
	"github.com/rarango1992/GPAC/internal/domain/query"
	"github.com/rarango1992/GPAC/internal/domain/repository"

	"github.com/google/uuid"
)

// Domain outcomes handlers translate into code-10 envelopes.
var (
	ErrInvalidUser     = errors.New("invalid user")
	ErrInvalidPassword = errors.New("invalid password")
	ErrUserExists      = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
	ErrTaskNotFound    = errors.New("task not found")
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

type LoginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Profile is the login payload; password never leaves the service layer.
type Profile struct {
	Login           bool   `json:"login"`
	Name            string `json:"name"`
	AdminPrivileges bool   `json:"adminPrivileges"`
	ID              string `json:"id"`
}

type LoginResult struct {
	Profile Profile
	Token   string
}

type AddUserRequest struct {
	Name            string `json:"name" validate:"required,alphanum,min=5,max=255"`
	Password        string `json:"password" validate:"required,max=255,strongpwd"`
	AdminPrivileges *bool  `json:"adminPrivileges" validate:"required"`
}

type SearchUsersRequest struct {
	Filter *query.UserFilter `json:"filter"`
	Order  *query.UserOrder  `json:"order"`
}

type UpdateUserRequest struct {
	ID              string `json:"id" validate:"required,uuid"`
	Password        string `json:"password" validate:"omitempty,max=255,strongpwd"`
	AdminPrivileges *bool  `json:"adminPrivileges"`
}

type DeleteUserRequest struct {
	ID string `json:"id" validate:"required,uuid"`
}

func (s *UserService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.userRepo.FindByName(ctx, req.Name)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, ErrInvalidUser
		}
		return nil, common.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidPassword
	}

	token, err := security.GenerateToken(user.ID, user.AdminPrivileges)
	if err != nil {
		return nil, common.Errorf("failed to generate token: %w", err)
	}
	return &LoginResult{
		Profile: Profile{
			Login:           true,
			Name:            user.Name,
			AdminPrivileges: user.AdminPrivileges,
			ID:              user.ID,
		},
		Token: token,
	}, nil
}

// AddUser pre-checks name uniqueness for the common path; the users.name
// unique index closes the remaining check-then-insert race and is
// translated to the same outcome.
func (s *UserService) AddUser(ctx context.Context, req AddUserRequest) (*model.User, error) {
	_, err := s.userRepo.FindByName(ctx, req.Name)
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, common.Errorf("failed to check user name: %w", err)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, common.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Password:        hashedPassword,
		AdminPrivileges: *req.AdminPrivileges,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, ErrUserExists
		}
		return nil, common.Errorf("failed to create user: %w", err)
	}
	user.Password = ""
	return user, nil
}

func (s *UserService) SearchUsers(ctx context.Context, req SearchUsersRequest) ([]model.User, error) {
	users, err := s.userRepo.Search(ctx, req.Filter)
	if err != nil {
		return nil, common.Errorf("failed to search users: %w", err)
	}
	query.SortUsers(users, req.Order)
	return users, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.Search(ctx, nil)
	if err != nil {
		return nil, common.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateUser re-hashes a supplied password and applies the sparse patch;
// the updated record is re-read and returned.
func (s *UserService) UpdateUser(ctx context.Context, req UpdateUserRequest) (*model.User, error) {
	patch := query.UserPatch{AdminPrivileges: req.AdminPrivileges}
	if req.Password != "" {
		hashed, err := security.HashPassword(req.Password)
		if err != nil {
			return nil, common.Errorf("failed to hash password: %w", err)
		}
		patch.HashedPassword = hashed
	}

	if err := s.userRepo.Update(ctx, req.ID, patch); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, common.Errorf("failed to update user: %w", err)
	}

	user, err := s.userRepo.FindByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, common.Errorf("failed to reload user: %w", err)
	}
	user.Password = ""
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, req DeleteUserRequest) (*model.User, error) {
	user, err := s.userRepo.Delete(ctx, req.ID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, common.Errorf("failed to delete user: %w", err)
	}
	return user, nil
}
