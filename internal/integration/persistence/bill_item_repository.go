package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/integration/persistence/model"
)

const billItemsTable = "bill_items"

// billItemRepository implements the adapter.BillItemRepository interface.
type billItemRepository struct {
	db *gorm.DB
}

// NewBillItemRepository creates a new bill item repository instance.
func NewBillItemRepository(db *gorm.DB) adapter.BillItemRepository {
	return &billItemRepository{
		db: db,
	}
}

// Create creates a new bill item in the database.
func (r *billItemRepository) Create(ctx context.Context, item *entity.BillItem) error {
	return r.db.WithContext(ctx).Create(model.BillItemFromEntity(item)).Error
}

// FindByID retrieves a bill item owned by the user, with its category.
func (r *billItemRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.BillItem, error) {
	var itemModel model.BillItemModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&itemModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBillItemNotFound
		}
		return nil, result.Error
	}
	return itemModel.ToEntity(), nil
}

// List returns a page of the user's bill items.
func (r *billItemRepository) List(ctx context.Context, userID uuid.UUID, query adapter.ListQuery) (*adapter.PageResult[*entity.BillItem], error) {
	q := r.db.WithContext(ctx).Model(&model.BillItemModel{}).Where(column(billItemsTable, "user_id")+" = ?", userID)
	if currency, ok := currencyFilter(query.SearchTerm); ok {
		q = q.Where(column(billItemsTable, "currency")+" = ?", currency)
	} else {
		q = applyTextSearch(q, billItemsTable, query.SearchTerm)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var itemModels []model.BillItemModel
	result := q.
		Preload("Category").
		Order(orderBy(billItemsTable, billItemSort(query.SortColumn), query.Descending())).
		Offset(query.Offset()).
		Limit(query.PageSize).
		Find(&itemModels)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.BillItem, len(itemModels))
	for i := range itemModels {
		items[i] = itemModels[i].ToEntity()
	}
	return adapter.NewPageResult(items, query, total), nil
}

func billItemSort(sortColumn string) *sortExpr {
	switch sortColumn {
	case "name":
		return &sortExpr{sql: "LOWER(" + column(billItemsTable, "name") + ")"}
	case "category":
		return &sortExpr{sql: "(SELECT LOWER(c.name) FROM categories c WHERE c.id = " + column(billItemsTable, "category_id") + ")"}
	case "currency", "amount", "quantity":
		return &sortExpr{sql: column(billItemsTable, sortColumn)}
	case "total":
		return &sortExpr{sql: "(" + column(billItemsTable, "amount") + " * " + column(billItemsTable, "quantity") + ")"}
	}
	return nil
}

// Update stores the new state of a bill item.
func (r *billItemRepository) Update(ctx context.Context, item *entity.BillItem) error {
	m := model.BillItemFromEntity(item)
	result := r.db.WithContext(ctx).
		Model(&model.BillItemModel{}).
		Where("id = ? AND user_id = ?", m.ID, m.UserID).
		Updates(map[string]any{
			"name":        m.Name,
			"description": m.Description,
			"category_id": m.CategoryID,
			"amount":      m.Amount,
			"currency":    m.Currency,
			"quantity":    m.Quantity,
			"updated_at":  m.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBillItemNotFound
	}
	return nil
}

// Delete removes a bill item and takes it out of every bill.
func (r *billItemRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var itemModel model.BillItemModel
		if err := tx.Select("id").Where("id = ? AND user_id = ?", id, userID).First(&itemModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrBillItemNotFound
			}
			return err
		}
		if err := tx.Where("bill_item_id = ?", id).Delete(&model.BillItemLinkModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.BillItemModel{}).Error
	})
}
