package category

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter"
	"github.com/finance-app/backend/internal/application/adapter/adaptertest"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
)

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()
	repo := adaptertest.NewCategoryRepository()
	uc := NewCreateCategoryUseCase(repo)
	userID := uuid.New()

	out, err := uc.Execute(ctx, CreateCategoryInput{UserID: userID, Name: "Food"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Category.Name() != "Food" {
		t.Errorf("expected Food, got %s", out.Category.Name())
	}

	_, err = uc.Execute(ctx, CreateCategoryInput{UserID: userID, Name: "food"})
	if !errors.Is(err, domainerror.ErrCategoryNameExists) {
		t.Errorf("expected ErrCategoryNameExists, got %v", err)
	}

	// Another user may reuse the name.
	if _, err := uc.Execute(ctx, CreateCategoryInput{UserID: uuid.New(), Name: "Food"}); err != nil {
		t.Errorf("unexpected error for a different owner: %v", err)
	}

	_, err = uc.Execute(ctx, CreateCategoryInput{UserID: userID, Name: ""})
	var validationErr *domainerror.ValidationError
	if !errors.As(err, &validationErr) || validationErr.Field != "name" {
		t.Errorf("expected name validation error, got %v", err)
	}
}

func TestGetCategoryScopedToUser(t *testing.T) {
	ctx := context.Background()
	repo := adaptertest.NewCategoryRepository()
	owner := uuid.New()

	created, err := NewCreateCategoryUseCase(repo).Execute(ctx, CreateCategoryInput{UserID: owner, Name: "Food"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	get := NewGetCategoryUseCase(repo)
	if _, err := get.Execute(ctx, GetCategoryInput{CategoryID: created.Category.ID(), UserID: owner}); err != nil {
		t.Errorf("owner must see the category: %v", err)
	}

	_, err = get.Execute(ctx, GetCategoryInput{CategoryID: created.Category.ID(), UserID: uuid.New()})
	var categoryErr *domainerror.CategoryError
	if !errors.As(err, &categoryErr) || categoryErr.Code != domainerror.ErrCodeCategoryNotFound {
		t.Fatalf("expected not-found for another user, got %v", err)
	}

	out, err := get.Execute(ctx, GetCategoryInput{CategoryID: entity.GroceriesCategoryID, UserID: uuid.New()})
	if err != nil || out.Category.Name() != "Groceries" {
		t.Errorf("predefined categories are visible to everyone, got %v", err)
	}
}

func TestUpdateCategory(t *testing.T) {
	ctx := context.Background()
	repo := adaptertest.NewCategoryRepository()
	userID := uuid.New()
	create := NewCreateCategoryUseCase(repo)
	update := NewUpdateCategoryUseCase(repo)

	food, _ := create.Execute(ctx, CreateCategoryInput{UserID: userID, Name: "Food"})
	_, _ = create.Execute(ctx, CreateCategoryInput{UserID: userID, Name: "Travel"})

	tests := []struct {
		name        string
		input       UpdateCategoryInput
		expectedErr error
	}{
		{
			name:  "rename",
			input: UpdateCategoryInput{CategoryID: food.Category.ID(), UserID: userID, Name: "Meals", Description: "eating out"},
		},
		{
			name:        "predefined",
			input:       UpdateCategoryInput{CategoryID: entity.OtherCategoryID, UserID: userID, Name: "Misc"},
			expectedErr: domainerror.ErrPredefinedCategoryImmutable,
		},
		{
			name:        "duplicate name",
			input:       UpdateCategoryInput{CategoryID: food.Category.ID(), UserID: userID, Name: "travel"},
			expectedErr: domainerror.ErrCategoryNameExists,
		},
		{
			name:        "other user",
			input:       UpdateCategoryInput{CategoryID: food.Category.ID(), UserID: uuid.New(), Name: "Mine"},
			expectedErr: domainerror.ErrCategoryNotFound,
		},
		{
			name:        "empty name",
			input:       UpdateCategoryInput{CategoryID: food.Category.ID(), UserID: userID, Name: " "},
			expectedErr: domainerror.ErrNameRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := update.Execute(ctx, tt.input)
			if tt.expectedErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}

	if food.Category.Name() != "Meals" || food.Category.Description() != "eating out" {
		t.Errorf("expected rename to stick, got %q / %q", food.Category.Name(), food.Category.Description())
	}
}

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()
	repo := adaptertest.NewCategoryRepository()
	userID := uuid.New()
	var deleted []uuid.UUID
	repo.OnDelete = func(id, _ uuid.UUID) { deleted = append(deleted, id) }

	food, _ := NewCreateCategoryUseCase(repo).Execute(ctx, CreateCategoryInput{UserID: userID, Name: "Food"})
	uc := NewDeleteCategoryUseCase(repo)

	if err := uc.Execute(ctx, DeleteCategoryInput{CategoryID: entity.GroceriesCategoryID, UserID: userID}); !errors.Is(err, domainerror.ErrPredefinedCategoryImmutable) {
		t.Errorf("expected predefined deletion to fail, got %v", err)
	}
	if err := uc.Execute(ctx, DeleteCategoryInput{CategoryID: food.Category.ID(), UserID: uuid.New()}); !errors.Is(err, domainerror.ErrCategoryNotFound) {
		t.Errorf("expected not-found for another user, got %v", err)
	}
	if err := uc.Execute(ctx, DeleteCategoryInput{CategoryID: food.Category.ID(), UserID: userID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deleted) != 1 || deleted[0] != food.Category.ID() {
		t.Errorf("expected one delete of %s, got %v", food.Category.ID(), deleted)
	}
	if err := uc.Execute(ctx, DeleteCategoryInput{CategoryID: food.Category.ID(), UserID: userID}); !errors.Is(err, domainerror.ErrCategoryNotFound) {
		t.Errorf("expected second delete to report not-found, got %v", err)
	}
}

func TestListCategories(t *testing.T) {
	ctx := context.Background()
	repo := adaptertest.NewCategoryRepository()
	userID := uuid.New()
	_, _ = NewCreateCategoryUseCase(repo).Execute(ctx, CreateCategoryInput{UserID: userID, Name: "Food"})

	out, err := NewListCategoriesUseCase(repo).Execute(ctx, ListCategoriesInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Page.TotalCount != 5 {
		t.Errorf("expected 4 predefined + 1 owned, got %d", out.Page.TotalCount)
	}

	_, err = NewListCategoriesUseCase(repo).Execute(ctx, ListCategoriesInput{
		UserID: userID,
		Query:  adapter.ListQuery{PageSize: 500},
	})
	if !errors.Is(err, domainerror.ErrInvalidPagination) {
		t.Errorf("expected ErrInvalidPagination, got %v", err)
	}
}
