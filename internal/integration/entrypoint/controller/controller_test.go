package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-app/backend/internal/application/adapter/adaptertest"
	billitem "github.com/finance-app/backend/internal/application/usecase/bill_item"
	"github.com/finance-app/backend/internal/application/usecase/category"
	"github.com/finance-app/backend/internal/domain/entity"
	domainerror "github.com/finance-app/backend/internal/domain/error"
	"github.com/finance-app/backend/internal/integration/entrypoint/dto"
	"github.com/finance-app/backend/internal/integration/entrypoint/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"category not found", domainerror.NewCategoryNotFoundError(uuid.New()), http.StatusNotFound, "CAT-010001"},
		{"bill not found", domainerror.NewBillNotFoundError(uuid.New()), http.StatusNotFound, ""},
		{"predefined category", domainerror.NewPredefinedCategoryError(), http.StatusConflict, "CAT-020002"},
		{"validation", domainerror.NewNameRequiredError("name"), http.StatusBadRequest, "VAL-010001"},
		{"suggestion unavailable", fmt.Errorf("suggest: %w", domainerror.ErrSuggestionUnavailable), http.StatusServiceUnavailable, ""},
		{"suggestion failed", domainerror.ErrSuggestionFailed, http.StatusBadGateway, ""},
		{"invalid credentials", domainerror.ErrInvalidCredentials, http.StatusUnauthorized, ""},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(ctx, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var body dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			if tt.wantCode != "" && body.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", body.Code, tt.wantCode)
			}
			if tt.wantStatus == http.StatusInternalServerError && body.Error != internalErrorMessage {
				t.Errorf("internal error leaked message %q", body.Error)
			}
		})
	}
}

func withUser(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(middleware.UserIDKey), userID)
		c.Next()
	}
}

func newCategoryEngine(userID uuid.UUID) *gin.Engine {
	repo := adaptertest.NewCategoryRepository()
	ctrl := NewCategoryController(
		category.NewCreateCategoryUseCase(repo),
		category.NewGetCategoryUseCase(repo),
		category.NewListCategoriesUseCase(repo),
		category.NewUpdateCategoryUseCase(repo),
		category.NewDeleteCategoryUseCase(repo),
	)
	engine := gin.New()
	group := engine.Group("/api/categories", withUser(userID))
	group.POST("", ctrl.Create)
	group.GET("", ctrl.List)
	group.GET("/:id", ctrl.Get)
	group.PUT("/:id", ctrl.Update)
	group.DELETE("/:id", ctrl.Delete)
	return engine
}

func doJSON(engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestCategoryController(t *testing.T) {
	userID := uuid.New()
	engine := newCategoryEngine(userID)
	groceries := entity.PredefinedCategories()[0].ID().String()

	tests := []struct {
		name       string
		method     string
		path       string
		body       any
		wantStatus int
	}{
		{"create", http.MethodPost, "/api/categories", map[string]string{"name": "Travel"}, http.StatusOK},
		{"create without name", http.MethodPost, "/api/categories", map[string]string{"description": "x"}, http.StatusBadRequest},
		{"list", http.MethodGet, "/api/categories?page=1&pageSize=10", nil, http.StatusOK},
		{"get predefined", http.MethodGet, "/api/categories/" + groceries, nil, http.StatusOK},
		{"get invalid id", http.MethodGet, "/api/categories/not-a-uuid", nil, http.StatusBadRequest},
		{"get unknown", http.MethodGet, "/api/categories/" + uuid.NewString(), nil, http.StatusNotFound},
		{"update predefined", http.MethodPut, "/api/categories/" + groceries, map[string]string{"name": "Food"}, http.StatusConflict},
		{"delete predefined", http.MethodDelete, "/api/categories/" + groceries, nil, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(engine, tt.method, tt.path, tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestCategoryValidationFields(t *testing.T) {
	engine := newCategoryEngine(uuid.New())

	w := doJSON(engine, http.MethodPost, "/api/categories", map[string]string{"description": "no name"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(body.Fields) == 0 || body.Fields[0].Field != "name" {
		t.Errorf("fields = %+v, want an entry for name", body.Fields)
	}
}

func TestCategoryListIncludesPredefined(t *testing.T) {
	engine := newCategoryEngine(uuid.New())

	w := doJSON(engine, http.MethodGet, "/api/categories?pageSize=50", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var page dto.PageResponse[dto.CategoryResponse]
	if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if page.TotalCount != int64(len(entity.PredefinedCategories())) {
		t.Errorf("totalCount = %d, want %d", page.TotalCount, len(entity.PredefinedCategories()))
	}
	for _, c := range page.Items {
		if !c.Predefined {
			t.Errorf("category %s should be predefined", c.Name)
		}
	}
}

func TestSuggestCategoryWithoutSuggester(t *testing.T) {
	categories := adaptertest.NewCategoryRepository()
	items := adaptertest.NewBillItemRepository()
	bills := adaptertest.NewBillRepository()
	ctrl := NewBillItemController(
		billitem.NewCreateBillItemUseCase(items, categories),
		billitem.NewGetBillItemUseCase(items),
		billitem.NewListBillItemsUseCase(items),
		billitem.NewUpdateBillItemUseCase(items, categories, bills),
		billitem.NewDeleteBillItemUseCase(items),
		billitem.NewSuggestCategoryUseCase(categories, nil),
	)
	engine := gin.New()
	engine.POST("/api/billItems/suggestCategory", withUser(uuid.New()), ctrl.SuggestCategory)

	w := doJSON(engine, http.MethodPost, "/api/billItems/suggestCategory", map[string]string{"name": "Milk"})
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503 (body %s)", w.Code, w.Body.String())
	}
}

func TestHandlersRequireUser(t *testing.T) {
	repo := adaptertest.NewCategoryRepository()
	ctrl := NewCategoryController(
		category.NewCreateCategoryUseCase(repo),
		category.NewGetCategoryUseCase(repo),
		category.NewListCategoriesUseCase(repo),
		category.NewUpdateCategoryUseCase(repo),
		category.NewDeleteCategoryUseCase(repo),
	)
	engine := gin.New()
	engine.GET("/api/categories", ctrl.List)

	w := doJSON(engine, http.MethodGet, "/api/categories", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
