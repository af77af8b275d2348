package repository

import (
	"context"

	"github.com/emrekoca/recipebox/internal/models"
)

type Users interface {
	Create(ctx context.Context, username, email, passwordHash string) (models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	Update(ctx context.Context, u models.User) (models.User, error)
	// Delete removes the user and every recipe they own in one transaction.
	Delete(ctx context.Context, id int64) error
}

type Recipes interface {
	Create(ctx context.Context, r models.Recipe) (models.Recipe, error)
	GetByID(ctx context.Context, id int64) (models.Recipe, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Recipe, error)
	Update(ctx context.Context, r models.Recipe) (models.Recipe, error)
	Delete(ctx context.Context, id int64) error
}

type AuditLogs interface {
	Create(ctx context.Context, l models.AuditLog) error
}
