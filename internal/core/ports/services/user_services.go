package services

import (
	"context"

	"github.com/Emran025/accounting-system-sub005/internal/core/domain"
	"github.com/Emran025/accounting-system-sub005/internal/dto"
)

// UserSvcFacade defines user registration and authentication operations.
type UserSvcFacade interface {
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
