package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/domain/entity"
)

// PeriodRepository defines the interface for period persistence operations.
// Periods are always loaded with their bills and the bills' items.
type PeriodRepository interface {
	// Create stores a new period with its bills.
	Create(ctx context.Context, period *entity.Period) error

	// FindByID retrieves a period owned by the user.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Period, error)

	// List returns a page of the user's periods.
	List(ctx context.Context, userID uuid.UUID, query ListQuery) (*PageResult[*entity.Period], error)

	// Update stores the period row and replaces its bill membership in one transaction.
	Update(ctx context.Context, period *entity.Period) error

	// Delete removes a period and its memberships.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
