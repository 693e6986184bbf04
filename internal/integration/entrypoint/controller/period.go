package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-app/backend/internal/application/usecase/period"
	"github.com/finance-app/backend/internal/integration/entrypoint/dto"
)

// PeriodController handles period endpoints.
type PeriodController struct {
	createUseCase     *period.CreatePeriodUseCase
	getUseCase        *period.GetPeriodUseCase
	listUseCase       *period.ListPeriodsUseCase
	updateUseCase     *period.UpdatePeriodUseCase
	deleteUseCase     *period.DeletePeriodUseCase
	addBillUseCase    *period.AddBillUseCase
	removeBillUseCase *period.RemoveBillUseCase
}

// NewPeriodController creates a new period controller instance.
func NewPeriodController(
	createUseCase *period.CreatePeriodUseCase,
	getUseCase *period.GetPeriodUseCase,
	listUseCase *period.ListPeriodsUseCase,
	updateUseCase *period.UpdatePeriodUseCase,
	deleteUseCase *period.DeletePeriodUseCase,
	addBillUseCase *period.AddBillUseCase,
	removeBillUseCase *period.RemoveBillUseCase,
) *PeriodController {
	return &PeriodController{
		createUseCase:     createUseCase,
		getUseCase:        getUseCase,
		listUseCase:       listUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		addBillUseCase:    addBillUseCase,
		removeBillUseCase: removeBillUseCase,
	}
}

// Create handles POST /periods requests.
func (c *PeriodController) Create(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.CreatePeriodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	startDate, endDate, err := dto.ParseDates(req.StartDate, req.EndDate)
	if err != nil {
		respondError(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), period.CreatePeriodInput{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		BillIDs:     req.BillIDs,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPeriodResponse(output.Period))
}

// Get handles GET /periods/:id requests.
func (c *PeriodController) Get(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), period.GetPeriodInput{
		PeriodID: id,
		UserID:   userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPeriodResponse(output.Period))
}

// List handles GET /periods requests.
func (c *PeriodController) List(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var params dto.ListQueryParams
	if err := ctx.ShouldBindQuery(&params); err != nil {
		respondBindingError(ctx, err)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), period.ListPeriodsInput{
		UserID: userID,
		Query:  params.ToListQuery(),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPageResponse(output.Page, dto.ToPeriodResponse))
}

// Update handles PUT and POST /periods/:id requests.
func (c *PeriodController) Update(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdatePeriodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}
	startDate, endDate, err := dto.ParseDates(req.StartDate, req.EndDate)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := c.updateUseCase.Execute(ctx.Request.Context(), period.UpdatePeriodInput{
		PeriodID:    id,
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Delete handles DELETE /periods/:id requests.
func (c *PeriodController) Delete(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), period.DeletePeriodInput{
		PeriodID: id,
		UserID:   userID,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AddBill handles POST /periods/:id/bills requests.
func (c *PeriodController) AddBill(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.AddBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindingError(ctx, err)
		return
	}

	if err := c.addBillUseCase.Execute(ctx.Request.Context(), period.AddBillInput{
		PeriodID: id,
		BillID:   req.BillID,
		UserID:   userID,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// RemoveBill handles DELETE /periods/:id/bills/:billId requests.
func (c *PeriodController) RemoveBill(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	billID, ok := pathID(ctx, "billId")
	if !ok {
		return
	}

	if err := c.removeBillUseCase.Execute(ctx.Request.Context(), period.RemoveBillInput{
		PeriodID: id,
		BillID:   billID,
		UserID:   userID,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
