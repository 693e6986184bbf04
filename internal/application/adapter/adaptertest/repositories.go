// Package adaptertest provides in-memory implementations of the adapter
// interfaces for use case tests.
package adaptertest

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

func paginate[T any](items []T, query adapter.ListQuery) *adapter.PageResult[T] {
	query, _ = query.Normalize()
	total := int64(len(items))
	start := min(query.Offset(), len(items))
	end := min(start+query.PageSize, len(items))
	return adapter.NewPageResult(items[start:end], query, total)
}

// CategoryRepository is an in-memory adapter.CategoryRepository seeded with the predefined categories.
type CategoryRepository struct {
	mu         sync.Mutex
	categories []*entity.Category
	// OnDelete, when set, runs after every Delete.
	OnDelete func(id, userID uuid.UUID)
}

// NewCategoryRepository creates a repository holding the predefined categories.
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{categories: entity.PredefinedCategories()}
}

func (r *CategoryRepository) Create(_ context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = append(r.categories, category)
	return nil
}

func (r *CategoryRepository) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.ID() == id && c.Ownership().IsVisibleTo(userID) {
			return c, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r *CategoryRepository) List(_ context.Context, userID uuid.UUID, query adapter.ListQuery) (*adapter.PageResult[*entity.Category], error) {
	return paginate(r.visible(userID), query), nil
}

func (r *CategoryRepository) FindAllVisible(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	return r.visible(userID), nil
}

func (r *CategoryRepository) Update(_ context.Context, _ *entity.Category) error {
	return nil
}

func (r *CategoryRepository) Delete(_ context.Context, id, userID uuid.UUID) error {
	r.mu.Lock()
	r.categories = slices.DeleteFunc(r.categories, func(c *entity.Category) bool {
		owner, ok := c.Ownership().OwnerID()
		return c.ID() == id && ok && owner == userID
	})
	r.mu.Unlock()
	if r.OnDelete != nil {
		r.OnDelete(id, userID)
	}
	return nil
}

func (r *CategoryRepository) ExistsByName(_ context.Context, name string, userID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		owner, ok := c.Ownership().OwnerID()
		if ok && owner == userID && strings.EqualFold(c.Name(), name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *CategoryRepository) SeedPredefined(_ context.Context, _ []*entity.Category) error {
	return nil
}

func (r *CategoryRepository) visible(userID uuid.UUID) []*entity.Category {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Category
	for _, c := range r.categories {
		if c.Ownership().IsVisibleTo(userID) {
			out = append(out, c)
		}
	}
	return out
}

// BillItemRepository is an in-memory adapter.BillItemRepository.
type BillItemRepository struct {
	mu    sync.Mutex
	items []*entity.BillItem
}

// NewBillItemRepository creates an empty repository.
func NewBillItemRepository() *BillItemRepository {
	return &BillItemRepository{}
}

func (r *BillItemRepository) Create(_ context.Context, item *entity.BillItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, item)
	return nil
}

func (r *BillItemRepository) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.BillItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.ID() == id && item.UserID() == userID {
			return item, nil
		}
	}
	return nil, domainerror.ErrBillItemNotFound
}

func (r *BillItemRepository) List(_ context.Context, userID uuid.UUID, query adapter.ListQuery) (*adapter.PageResult[*entity.BillItem], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var owned []*entity.BillItem
	for _, item := range r.items {
		if item.UserID() == userID {
			owned = append(owned, item)
		}
	}
	return paginate(owned, query), nil
}

func (r *BillItemRepository) Update(_ context.Context, _ *entity.BillItem) error {
	return nil
}

func (r *BillItemRepository) Delete(_ context.Context, id, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = slices.DeleteFunc(r.items, func(item *entity.BillItem) bool {
		return item.ID() == id && item.UserID() == userID
	})
	return nil
}

// BillRepository is an in-memory adapter.BillRepository.
type BillRepository struct {
	mu    sync.Mutex
	bills []*entity.Bill
	// Updates counts calls to Update.
	Updates int
}

// NewBillRepository creates an empty repository.
func NewBillRepository() *BillRepository {
	return &BillRepository{}
}

func (r *BillRepository) Create(_ context.Context, bill *entity.Bill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bills = append(r.bills, bill)
	return nil
}

func (r *BillRepository) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.Bill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, bill := range r.bills {
		if bill.ID() == id && bill.UserID() == userID {
			return bill, nil
		}
	}
	return nil, domainerror.ErrBillNotFound
}

func (r *BillRepository) FindByItemID(_ context.Context, itemID, userID uuid.UUID) ([]*entity.Bill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Bill
	for _, bill := range r.bills {
		if bill.UserID() == userID && bill.HasItem(itemID) {
			out = append(out, bill)
		}
	}
	return out, nil
}

func (r *BillRepository) List(_ context.Context, userID uuid.UUID, query adapter.ListQuery) (*adapter.PageResult[*entity.Bill], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var owned []*entity.Bill
	for _, bill := range r.bills {
		if bill.UserID() == userID {
			owned = append(owned, bill)
		}
	}
	return paginate(owned, query), nil
}

func (r *BillRepository) Update(_ context.Context, _ *entity.Bill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Updates++
	return nil
}

func (r *BillRepository) Delete(_ context.Context, id, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bills = slices.DeleteFunc(r.bills, func(bill *entity.Bill) bool {
		return bill.ID() == id && bill.UserID() == userID
	})
	return nil
}

// PeriodRepository is an in-memory adapter.PeriodRepository.
type PeriodRepository struct {
	mu      sync.Mutex
	periods []*entity.Period
}

// NewPeriodRepository creates an empty repository.
func NewPeriodRepository() *PeriodRepository {
	return &PeriodRepository{}
}

func (r *PeriodRepository) Create(_ context.Context, period *entity.Period) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.periods = append(r.periods, period)
	return nil
}

func (r *PeriodRepository) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.Period, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, period := range r.periods {
		if period.ID() == id && period.UserID() == userID {
			return period, nil
		}
	}
	return nil, domainerror.ErrPeriodNotFound
}

func (r *PeriodRepository) List(_ context.Context, userID uuid.UUID, query adapter.ListQuery) (*adapter.PageResult[*entity.Period], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var owned []*entity.Period
	for _, period := range r.periods {
		if period.UserID() == userID {
			owned = append(owned, period)
		}
	}
	return paginate(owned, query), nil
}

func (r *PeriodRepository) Update(_ context.Context, _ *entity.Period) error {
	return nil
}

func (r *PeriodRepository) Delete(_ context.Context, id, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.periods = slices.DeleteFunc(r.periods, func(period *entity.Period) bool {
		return period.ID() == id && period.UserID() == userID
	})
	return nil
}

// UserRepository is an in-memory adapter.UserRepository.
type UserRepository struct {
	mu    sync.Mutex
	users []*entity.User
}

// NewUserRepository creates an empty repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, user)
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *UserRepository) Update(_ context.Context, _ *entity.User) error {
	return nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	return err == nil, nil
}
