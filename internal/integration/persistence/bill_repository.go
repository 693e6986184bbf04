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

const (
	billsTable = "bills"

	billItemJoins = "FROM bill_bill_items bbi JOIN bill_items bi ON bi.id = bbi.bill_item_id"
)

// billRepository implements the adapter.BillRepository interface.
type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository instance.
func NewBillRepository(db *gorm.DB) adapter.BillRepository {
	return &billRepository{
		db: db,
	}
}

// loadBills attaches the ordered items to each bill row.
func loadBills(db *gorm.DB, billModels []model.BillModel) ([]*entity.Bill, error) {
	if len(billModels) == 0 {
		return []*entity.Bill{}, nil
	}

	ids := make([]uuid.UUID, len(billModels))
	for i := range billModels {
		ids[i] = billModels[i].ID
	}

	var links []model.BillItemLinkModel
	result := db.
		Preload("BillItem.Category").
		Where("bill_id IN ?", ids).
		Order("bill_id ASC, position ASC").
		Find(&links)
	if result.Error != nil {
		return nil, result.Error
	}

	itemsByBill := make(map[uuid.UUID][]*entity.BillItem, len(billModels))
	for i := range links {
		if links[i].BillItem == nil {
			continue
		}
		itemsByBill[links[i].BillID] = append(itemsByBill[links[i].BillID], links[i].BillItem.ToEntity())
	}

	bills := make([]*entity.Bill, len(billModels))
	for i := range billModels {
		bills[i] = billModels[i].ToEntity(itemsByBill[billModels[i].ID])
	}
	return bills, nil
}

// Create stores a new bill with its item membership.
func (r *billRepository) Create(ctx context.Context, bill *entity.Bill) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.BillFromEntity(bill)).Error; err != nil {
			return err
		}
		return replaceBillItemLinks(tx, bill)
	})
}

// FindByID retrieves a bill owned by the user, with its items.
func (r *billRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Bill, error) {
	db := r.db.WithContext(ctx)

	var billModel model.BillModel
	result := db.Where("id = ? AND user_id = ?", id, userID).First(&billModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBillNotFound
		}
		return nil, result.Error
	}

	bills, err := loadBills(db, []model.BillModel{billModel})
	if err != nil {
		return nil, err
	}
	return bills[0], nil
}

// FindByItemID returns the user's bills that contain the item.
func (r *billRepository) FindByItemID(ctx context.Context, itemID, userID uuid.UUID) ([]*entity.Bill, error) {
	db := r.db.WithContext(ctx)

	var billModels []model.BillModel
	result := db.
		Where("user_id = ?", userID).
		Where("id IN (?)", db.Model(&model.BillItemLinkModel{}).Select("bill_id").Where("bill_item_id = ?", itemID)).
		Order("created_at ASC, id ASC").
		Find(&billModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return loadBills(db, billModels)
}

// List returns a page of the user's bills.
func (r *billRepository) List(ctx context.Context, userID uuid.UUID, query adapter.ListQuery) (*adapter.PageResult[*entity.Bill], error) {
	db := r.db.WithContext(ctx)

	q := db.Model(&model.BillModel{}).Where(column(billsTable, "user_id")+" = ?", userID)
	if currency, ok := currencyFilter(query.SearchTerm); ok {
		q = q.Where("EXISTS (SELECT 1 "+billItemJoins+" WHERE bbi.bill_id = "+column(billsTable, "id")+" AND bi.currency = ?)", currency)
	} else {
		q = applyTextSearch(q, billsTable, query.SearchTerm)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var billModels []model.BillModel
	result := q.
		Order(orderBy(billsTable, billSort(query.SortColumn), query.Descending())).
		Offset(query.Offset()).
		Limit(query.PageSize).
		Find(&billModels)
	if result.Error != nil {
		return nil, result.Error
	}

	bills, err := loadBills(db, billModels)
	if err != nil {
		return nil, err
	}
	return adapter.NewPageResult(bills, query, total), nil
}

func billSort(sortColumn string) *sortExpr {
	if sortColumn == "name" {
		return &sortExpr{sql: "LOWER(" + column(billsTable, "name") + ")"}
	}
	if sortColumn == "amount" {
		return itemTotalsSum(billItemJoins, "bbi.bill_id = "+column(billsTable, "id"), "")
	}
	if currency, ok := amountSortCurrency(sortColumn); ok {
		return itemTotalsSum(billItemJoins, "bbi.bill_id = "+column(billsTable, "id"), currency)
	}
	return nil
}

// Update stores the bill row and replaces its item membership in one transaction.
func (r *billRepository) Update(ctx context.Context, bill *entity.Bill) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.BillModel{}).
			Where("id = ? AND user_id = ?", bill.ID(), bill.UserID()).
			Updates(map[string]any{
				"name":        bill.Name(),
				"description": bill.Description(),
				"updated_at":  bill.UpdatedAt(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrBillNotFound
		}

		if err := tx.Where("bill_id = ?", bill.ID()).Delete(&model.BillItemLinkModel{}).Error; err != nil {
			return err
		}
		return replaceBillItemLinks(tx, bill)
	})
}

func replaceBillItemLinks(tx *gorm.DB, bill *entity.Bill) error {
	links := model.BillItemLinksFromEntity(bill)
	if len(links) == 0 {
		return nil
	}
	return tx.Create(&links).Error
}

// Delete removes a bill, its item membership and its period membership.
func (r *billRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.BillModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrBillNotFound
		}
		if err := tx.Where("bill_id = ?", id).Delete(&model.BillItemLinkModel{}).Error; err != nil {
			return err
		}
		return tx.Where("bill_id = ?", id).Delete(&model.PeriodBillLinkModel{}).Error
	})
}
