package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create stores a new user.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email address, case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update stores the new state of a user.
	Update(ctx context.Context, user *entity.User) error

	// ExistsByEmail checks whether an account uses this email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
