// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/integration/persistence/model"
)

const categoriesTable = "categories"

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// visibleTo restricts a query to the user's categories and the predefined ones.
func visibleTo(query *gorm.DB, userID uuid.UUID) *gorm.DB {
	return query.Where("(owner_kind = ? OR owner_id = ?)", string(entity.OwnerKindPredefined), userID)
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Create(model.CategoryFromEntity(category)).Error
}

// FindByID retrieves a category visible to the user.
func (r *categoryRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := visibleTo(r.db.WithContext(ctx), userID).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// List returns a page of the categories visible to the user.
func (r *categoryRepository) List(ctx context.Context, userID uuid.UUID, query adapter.ListQuery) (*adapter.PageResult[*entity.Category], error) {
	q := visibleTo(r.db.WithContext(ctx).Model(&model.CategoryModel{}), userID)
	q = applyTextSearch(q, categoriesTable, query.SearchTerm)

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var sort *sortExpr
	switch query.SortColumn {
	case "name", "description":
		sort = &sortExpr{sql: "LOWER(" + column(categoriesTable, query.SortColumn) + ")"}
	}

	var categoryModels []model.CategoryModel
	result := q.
		Order(orderBy(categoriesTable, sort, query.Descending())).
		Offset(query.Offset()).
		Limit(query.PageSize).
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = categoryModels[i].ToEntity()
	}
	return adapter.NewPageResult(categories, query, total), nil
}

// FindAllVisible returns every category visible to the user, predefined first.
func (r *categoryRepository) FindAllVisible(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := visibleTo(r.db.WithContext(ctx), userID).
		Order("owner_kind DESC, created_at ASC, id ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = categoryModels[i].ToEntity()
	}
	return categories, nil
}

// Update stores the name and description of a user category.
// Predefined rows are never written.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	ownerID, ok := category.Ownership().OwnerID()
	if !ok {
		return domainerror.NewPredefinedCategoryError()
	}

	result := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ? AND owner_kind = ? AND owner_id = ?", category.ID(), string(entity.OwnerKindOwned), ownerID).
		Updates(map[string]any{
			"name":        category.Name(),
			"description": category.Description(),
			"updated_at":  category.UpdatedAt(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCategoryNotFound
	}
	return nil
}

// Delete removes a user category and moves its bill items to "Other".
func (r *categoryRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.BillItemModel{}).
			Where("category_id = ?", id).
			Updates(map[string]any{
				"category_id": entity.OtherCategoryID,
				"updated_at":  time.Now().UTC(),
			})
		if result.Error != nil {
			return result.Error
		}

		result = tx.Where("id = ? AND owner_kind = ? AND owner_id = ?", id, string(entity.OwnerKindOwned), userID).
			Delete(&model.CategoryModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrCategoryNotFound
		}
		return nil
	})
}

// ExistsByName checks case-insensitively whether the user owns a category with this name.
func (r *categoryRepository) ExistsByName(ctx context.Context, name string, userID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("LOWER(name) = LOWER(?) AND owner_kind = ? AND owner_id = ?", name, string(entity.OwnerKindOwned), userID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// SeedPredefined inserts the predefined categories, leaving existing rows untouched.
func (r *categoryRepository) SeedPredefined(ctx context.Context, categories []*entity.Category) error {
	if len(categories) == 0 {
		return nil
	}
	categoryModels := make([]*model.CategoryModel, len(categories))
	for i, category := range categories {
		categoryModels[i] = model.CategoryFromEntity(category)
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(&categoryModels).Error
}
