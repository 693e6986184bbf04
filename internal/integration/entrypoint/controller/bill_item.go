package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	billitem "github.com/finance-app/backend/internal/application/usecase/bill_item"
	"github.com/finance-app/backend/internal/integration/entrypoint/dto"
)

// BillItemController handles bill item endpoints.
type BillItemController struct {
	createUseCase  *billitem.CreateBillItemUseCase
	getUseCase     *billitem.GetBillItemUseCase
	listUseCase    *billitem.ListBillItemsUseCase
	updateUseCase  *billitem.UpdateBillItemUseCase
	deleteUseCase  *billitem.DeleteBillItemUseCase
	suggestUseCase *billitem.SuggestCategoryUseCase
}

// NewBillItemController creates a new bill item controller instance.
func NewBillItemController(
	createUseCase *billitem.CreateBillItemUseCase,
	getUseCase *billitem.GetBillItemUseCase,
	listUseCase *billitem.ListBillItemsUseCase,
	updateUseCase *billitem.UpdateBillItemUseCase,
	deleteUseCase *billitem.DeleteBillItemUseCase,
	suggestUseCase *billitem.SuggestCategoryUseCase,
) *BillItemController {
	return &BillItemController{
		createUseCase:  createUseCase,
		getUseCase:     getUseCase,
		listUseCase:    listUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		suggestUseCase: suggestUseCase,
	}
}

// Create handles POST /billItems requests.
func (c *BillItemController) Create(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateBillItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), billitem.CreateBillItemInput{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Price:       req.Price.ToPriceInput(),
		Quantity:    req.Quantity,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillItemResponse(output.BillItem))
}

// Get handles GET /billItems/:id requests.
func (c *BillItemController) Get(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), billitem.GetBillItemInput{
		BillItemID: id,
		UserID:     userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillItemResponse(output.BillItem))
}

// List handles GET /billItems requests.
func (c *BillItemController) List(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var params dto.ListQueryParams
	if err := ctx.ShouldBindQuery(&params); err != nil {
		respondBindingError(ctx, err)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), billitem.ListBillItemsInput{
		UserID: userID,
		Query:  params.ToListQuery(),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPageResponse(output.Page, dto.ToBillItemResponse))
}

// Update handles PUT and POST /billItems/:id requests.
func (c *BillItemController) Update(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateBillItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	if err := c.updateUseCase.Execute(ctx.Request.Context(), billitem.UpdateBillItemInput{
		BillItemID:  id,
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Price:       req.Price.ToPriceInput(),
		Quantity:    req.Quantity,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Delete handles DELETE /billItems/:id requests.
func (c *BillItemController) Delete(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), billitem.DeleteBillItemInput{
		BillItemID: id,
		UserID:     userID,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SuggestCategory handles POST /billItems/suggestCategory requests.
func (c *BillItemController) SuggestCategory(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.SuggestCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), billitem.SuggestCategoryInput{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuggestCategoryResponse{
		CategoryID:   output.Category.ID().String(),
		CategoryName: output.Category.Name(),
		Confidence:   output.Confidence,
		Reasoning:    output.Reasoning,
	})
}
