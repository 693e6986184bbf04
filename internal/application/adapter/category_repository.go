package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
// Lookups return categories owned by userID plus the predefined ones.
type CategoryRepository interface {
	// Create stores a new user category.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category visible to the user.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error)

	// List returns a page of categories visible to the user.
	List(ctx context.Context, userID uuid.UUID, query ListQuery) (*PageResult[*entity.Category], error)

	// FindAllVisible returns every category visible to the user, predefined first.
	FindAllVisible(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// Update stores the new state of a user category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a user category and re-points its bill items to "Other".
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// ExistsByName checks whether the user already owns a category with this name.
	ExistsByName(ctx context.Context, name string, userID uuid.UUID) (bool, error)

	// SeedPredefined inserts the predefined categories that are not stored yet.
	SeedPredefined(ctx context.Context, categories []*entity.Category) error
}
