package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-app/backend/internal/application/usecase/bill"
	"github.com/finance-app/backend/internal/integration/entrypoint/dto"
)

// BillController handles bill endpoints.
type BillController struct {
	createUseCase     *bill.CreateBillUseCase
	getUseCase        *bill.GetBillUseCase
	listUseCase       *bill.ListBillsUseCase
	updateUseCase     *bill.UpdateBillUseCase
	deleteUseCase     *bill.DeleteBillUseCase
	addItemUseCase    *bill.AddBillItemUseCase
	removeItemUseCase *bill.RemoveBillItemUseCase
}

// NewBillController creates a new bill controller instance.
func NewBillController(
	createUseCase *bill.CreateBillUseCase,
	getUseCase *bill.GetBillUseCase,
	listUseCase *bill.ListBillsUseCase,
	updateUseCase *bill.UpdateBillUseCase,
	deleteUseCase *bill.DeleteBillUseCase,
	addItemUseCase *bill.AddBillItemUseCase,
	removeItemUseCase *bill.RemoveBillItemUseCase,
) *BillController {
	return &BillController{
		createUseCase:     createUseCase,
		getUseCase:        getUseCase,
		listUseCase:       listUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		addItemUseCase:    addItemUseCase,
		removeItemUseCase: removeItemUseCase,
	}
}

// Create handles POST /bills requests.
func (c *BillController) Create(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), bill.CreateBillInput{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		BillItemIDs: req.BillItemIDs,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillResponse(output.Bill))
}

// Get handles GET /bills/:id requests.
func (c *BillController) Get(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), bill.GetBillInput{
		BillID: id,
		UserID: userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillResponse(output.Bill))
}

// List handles GET /bills requests.
func (c *BillController) List(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var params dto.ListQueryParams
	if err := ctx.ShouldBindQuery(&params); err != nil {
		respondBindingError(ctx, err)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), bill.ListBillsInput{
		UserID: userID,
		Query:  params.ToListQuery(),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPageResponse(output.Page, dto.ToBillResponse))
}

// Update handles PUT and POST /bills/:id requests.
func (c *BillController) Update(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	if err := c.updateUseCase.Execute(ctx.Request.Context(), bill.UpdateBillInput{
		BillID:      id,
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Delete handles DELETE /bills/:id requests.
func (c *BillController) Delete(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), bill.DeleteBillInput{
		BillID: id,
		UserID: userID,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AddItem handles POST /bills/:id/items requests.
func (c *BillController) AddItem(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.AddBillItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	if err := c.addItemUseCase.Execute(ctx.Request.Context(), bill.AddBillItemInput{
		BillID:     id,
		BillItemID: req.BillItemID,
		UserID:     userID,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// RemoveItem handles DELETE /bills/:id/items/:itemId requests.
func (c *BillController) RemoveItem(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(ctx, "itemId")
	if !ok {
		return
	}

	if err := c.removeItemUseCase.Execute(ctx.Request.Context(), bill.RemoveBillItemInput{
		BillID:     id,
		BillItemID: itemID,
		UserID:     userID,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
