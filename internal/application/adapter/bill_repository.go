package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/domain/entity"
)

// BillRepository defines the interface for bill persistence operations.
// Bills are always loaded with their items in insertion order.
type BillRepository interface {
	// Create stores a new bill with its items.
	Create(ctx context.Context, bill *entity.Bill) error

	// FindByID retrieves a bill owned by the user.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Bill, error)

	// FindByItemID returns the user's bills that contain the item.
	FindByItemID(ctx context.Context, itemID, userID uuid.UUID) ([]*entity.Bill, error)

	// List returns a page of the user's bills.
	List(ctx context.Context, userID uuid.UUID, query ListQuery) (*PageResult[*entity.Bill], error)

	// Update stores the bill row and replaces its item membership in one transaction.
	Update(ctx context.Context, bill *entity.Bill) error

	// Delete removes a bill and its memberships.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
