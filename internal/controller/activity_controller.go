package controller

import (
	"errors"
	"trueinvest_backend/internal/model"
	"trueinvest_backend/internal/service"
	"trueinvest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	ActivityService *service.ActivityService
}

func NewActivityController(activityService *service.ActivityService) *ActivityController {
	return &ActivityController{ActivityService: activityService}
}

// Create godoc
// @Summary Log a client activity (visit, call, lead)
// @Tags activities
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.ActivityRequest true "activity details"
// @Success 201 {object} util.Response{data=model.Activity}
// @Failure 400 {object} util.Response
// @Router /api/activities [post]
func (c *ActivityController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	activity, err := c.ActivityService.CreateActivity(claims.UserID, &req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, activity)
}

// ListMine godoc
// @Summary The caller's activities, newest first
// @Tags activities
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Activity}
// @Router /api/activities [get]
func (c *ActivityController) ListMine(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	activities, err := c.ActivityService.ListForUser(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, activities)
}

// ListAll godoc
// @Summary Every activity across all brokers
// @Tags activities
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Activity}
// @Router /api/admin/activities [get]
func (c *ActivityController) ListAll(ctx *gin.Context) {
	activities, err := c.ActivityService.ListAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, activities)
}

// Delete godoc
// @Summary Delete an activity
// @Description Brokers may delete their own entries, admins any
// @Tags activities
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "activity id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/activities/{id} [delete]
func (c *ActivityController) Delete(ctx *gin.Context) {
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
	if err := c.ActivityService.DeleteActivity(id, claims.UserID, isAdmin); err != nil {
		switch {
		case errors.Is(err, util.ErrActivityNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"message": "activity deleted"})
}
