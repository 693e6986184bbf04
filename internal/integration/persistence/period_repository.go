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
	periodsTable = "periods"

	periodItemJoins = "FROM period_bills pb JOIN bill_bill_items bbi ON bbi.bill_id = pb.bill_id JOIN bill_items bi ON bi.id = bbi.bill_item_id"
)

// periodRepository implements the adapter.PeriodRepository interface.
type periodRepository struct {
	db *gorm.DB
}

// NewPeriodRepository creates a new period repository instance.
func NewPeriodRepository(db *gorm.DB) adapter.PeriodRepository {
	return &periodRepository{
		db: db,
	}
}

// loadPeriods attaches the ordered bills, with their items, to each period row.
func loadPeriods(db *gorm.DB, periodModels []model.PeriodModel) ([]*entity.Period, error) {
	if len(periodModels) == 0 {
		return []*entity.Period{}, nil
	}

	ids := make([]uuid.UUID, len(periodModels))
	for i := range periodModels {
		ids[i] = periodModels[i].ID
	}

	var links []model.PeriodBillLinkModel
	if err := db.Where("period_id IN ?", ids).Order("period_id ASC, position ASC").Find(&links).Error; err != nil {
		return nil, err
	}

	billsByID := make(map[uuid.UUID]*entity.Bill)
	if len(links) > 0 {
		billIDs := make([]uuid.UUID, 0, len(links))
		for _, link := range links {
			billIDs = append(billIDs, link.BillID)
		}

		var billModels []model.BillModel
		if err := db.Where("id IN ?", billIDs).Find(&billModels).Error; err != nil {
			return nil, err
		}
		bills, err := loadBills(db, billModels)
		if err != nil {
			return nil, err
		}
		for _, bill := range bills {
			billsByID[bill.ID()] = bill
		}
	}

	billsByPeriod := make(map[uuid.UUID][]*entity.Bill, len(periodModels))
	for _, link := range links {
		if bill, ok := billsByID[link.BillID]; ok {
			billsByPeriod[link.PeriodID] = append(billsByPeriod[link.PeriodID], bill)
		}
	}

	periods := make([]*entity.Period, len(periodModels))
	for i := range periodModels {
		periods[i] = periodModels[i].ToEntity(billsByPeriod[periodModels[i].ID])
	}
	return periods, nil
}

// Create stores a new period with its bill membership.
func (r *periodRepository) Create(ctx context.Context, period *entity.Period) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.PeriodFromEntity(period)).Error; err != nil {
			return err
		}
		return replacePeriodBillLinks(tx, period)
	})
}

// FindByID retrieves a period owned by the user, with its bills.
func (r *periodRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Period, error) {
	db := r.db.WithContext(ctx)

	var periodModel model.PeriodModel
	result := db.Where("id = ? AND user_id = ?", id, userID).First(&periodModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPeriodNotFound
		}
		return nil, result.Error
	}

	periods, err := loadPeriods(db, []model.PeriodModel{periodModel})
	if err != nil {
		return nil, err
	}
	return periods[0], nil
}

// List returns a page of the user's periods.
func (r *periodRepository) List(ctx context.Context, userID uuid.UUID, query adapter.ListQuery) (*adapter.PageResult[*entity.Period], error) {
	db := r.db.WithContext(ctx)

	q := db.Model(&model.PeriodModel{}).Where(column(periodsTable, "user_id")+" = ?", userID)
	if currency, ok := currencyFilter(query.SearchTerm); ok {
		q = q.Where("EXISTS (SELECT 1 "+periodItemJoins+" WHERE pb.period_id = "+column(periodsTable, "id")+" AND bi.currency = ?)", currency)
	} else {
		q = applyTextSearch(q, periodsTable, query.SearchTerm)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var periodModels []model.PeriodModel
	result := q.
		Order(orderBy(periodsTable, periodSort(query.SortColumn), query.Descending())).
		Offset(query.Offset()).
		Limit(query.PageSize).
		Find(&periodModels)
	if result.Error != nil {
		return nil, result.Error
	}

	periods, err := loadPeriods(db, periodModels)
	if err != nil {
		return nil, err
	}
	return adapter.NewPageResult(periods, query, total), nil
}

func periodSort(sortColumn string) *sortExpr {
	switch sortColumn {
	case "name":
		return &sortExpr{sql: "LOWER(" + column(periodsTable, "name") + ")"}
	case "startdate":
		return &sortExpr{sql: column(periodsTable, "start_date")}
	case "enddate":
		return &sortExpr{sql: column(periodsTable, "end_date")}
	case "amount":
		return itemTotalsSum(periodItemJoins, "pb.period_id = "+column(periodsTable, "id"), "")
	}
	if currency, ok := amountSortCurrency(sortColumn); ok {
		return itemTotalsSum(periodItemJoins, "pb.period_id = "+column(periodsTable, "id"), currency)
	}
	return nil
}

// Update stores the period row and replaces its bill membership in one transaction.
func (r *periodRepository) Update(ctx context.Context, period *entity.Period) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.PeriodModel{}).
			Where("id = ? AND user_id = ?", period.ID(), period.UserID()).
			Updates(map[string]any{
				"name":        period.Name(),
				"description": period.Description(),
				"start_date":  period.StartDate(),
				"end_date":    period.EndDate(),
				"updated_at":  period.UpdatedAt(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrPeriodNotFound
		}

		if err := tx.Where("period_id = ?", period.ID()).Delete(&model.PeriodBillLinkModel{}).Error; err != nil {
			return err
		}
		return replacePeriodBillLinks(tx, period)
	})
}

func replacePeriodBillLinks(tx *gorm.DB, period *entity.Period) error {
	links := model.PeriodBillLinksFromEntity(period)
	if len(links) == 0 {
		return nil
	}
	return tx.Create(&links).Error
}

// Delete removes a period and its bill membership. The bills are kept.
func (r *periodRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.PeriodModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrPeriodNotFound
		}
		return tx.Where("period_id = ?", id).Delete(&model.PeriodBillLinkModel{}).Error
	})
}
