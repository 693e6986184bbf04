package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/domain/entity"
)

// BillItemRepository defines the interface for bill item persistence operations.
type BillItemRepository interface {
	// Create stores a new bill item.
	Create(ctx context.Context, item *entity.BillItem) error

	// FindByID retrieves a bill item owned by the user, with its category.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.BillItem, error)

	// List returns a page of the user's bill items.
	List(ctx context.Context, userID uuid.UUID, query ListQuery) (*PageResult[*entity.BillItem], error)

	// Update stores the new state of a bill item.
	Update(ctx context.Context, item *entity.BillItem) error

	// Delete removes a bill item and its bill memberships.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
