package users

import (
	"context"

	"github.com/dynsched/dynsched/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfileImage(ctx context.Context, id string, storageKey string) error
}
