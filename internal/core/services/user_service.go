package services

import (
	"context"
	"fmt"

	"github.com/denimfab/denim_factory_app/internal/apperrors"
	"github.com/denimfab/denim_factory_app/internal/core/domain"
	portsrepo "github.com/denimfab/denim_factory_app/internal/core/ports/repositories"
	portssvc "github.com/denimfab/denim_factory_app/internal/core/ports/services"
	"github.com/denimfab/denim_factory_app/internal/dto"
	"github.com/denimfab/denim_factory_app/internal/utils"
)

type UserService struct {
	userRepo portsrepo.UserRepository
}

// NewUserService creates the account management service.
func NewUserService(userRepo portsrepo.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

// CreateUser registers a new account with a hashed password. The unique
// username constraint surfaces as apperrors.ErrDuplicate.
func (s *UserService) CreateUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	if !req.Role.IsValid() {
		return nil, fmt.Errorf("%w: role must be ADMIN or DATA_ENTRY", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.SaveUser(ctx, domain.User{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         req.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindUserByUsername(ctx, username)
}

func (s *UserService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}
