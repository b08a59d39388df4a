package controller

import (
	"errors"
	"trueinvest_backend/internal/model"
	"trueinvest_backend/internal/service"
	"trueinvest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SaleController struct {
	SaleService *service.SaleService
}

func NewSaleController(saleService *service.SaleService) *SaleController {
	return &SaleController{SaleService: saleService}
}

// Create godoc
// @Summary Record a property sale
// @Tags sales
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.SaleRequest true "sale details"
// @Success 201 {object} util.Response{data=model.Sale}
// @Failure 400 {object} util.Response
// @Router /api/sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sale, err := c.SaleService.CreateSale(claims.UserID, &req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, sale)
}

// Update godoc
// @Summary Edit a sale record
// @Description Brokers may edit their own sales, admins any
// @Tags sales
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "sale id"
// @Param   body body service.SaleRequest true "sale details"
// @Success 200 {object} util.Response{data=model.Sale}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/sales/{id} [put]
func (c *SaleController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req service.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	isAdmin := claims.Role == model.Admin
	sale, err := c.SaleService.UpdateSale(id, claims.UserID, isAdmin, &req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSaleNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.BadRequest(ctx, err.Error())
		}
		return
	}
	util.Success(ctx, sale)
}

// Delete godoc
// @Summary Delete a sale record
// @Tags sales
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "sale id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/sales/{id} [delete]
func (c *SaleController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	isAdmin := claims.Role == model.Admin
	if err := c.SaleService.DeleteSale(id, claims.UserID, isAdmin); err != nil {
		switch {
		case errors.Is(err, util.ErrSaleNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"message": "sale deleted"})
}

// ListMine godoc
// @Summary The caller's sales, newest first
// @Tags sales
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Sale}
// @Router /api/sales [get]
func (c *SaleController) ListMine(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	sales, err := c.SaleService.ListForUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, sales)
}

// ListAll godoc
// @Summary Every sale across all brokers
// @Tags sales
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Sale}
// @Router /api/admin/sales [get]
func (c *SaleController) ListAll(ctx *gin.Context) {
	sales, err := c.SaleService.ListAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, sales)
}

type SaleStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}

// UpdateStatus godoc
// @Summary Confirm or cancel a sale
// @Tags sales
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "sale id"
// @Param   body body SaleStatusRequest true "new status"
// @Success 200 {object} util.Response{data=model.Sale}
// @Failure 404 {object} util.Response
// @Router /api/admin/sales/{id}/status [put]
func (c *SaleController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req SaleStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sale, err := c.SaleService.UpdateStatus(id, model.SaleStatus(req.Status))
	if err != nil {
		if errors.Is(err, util.ErrSaleNotFound) {
			util.NotFound(ctx)
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}
	util.Success(ctx, sale)
}
